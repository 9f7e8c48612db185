package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hall-booking/internal/domain/pricing"
)

// Read models (DTO for read side)

type HallView struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Capacity    int       `json:"capacity"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PriceSetView struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type SeasonRuleView struct {
	ID           int64     `json:"id"`
	PriceSetID   uuid.UUID `json:"price_set_id"`
	PriceSetCode string    `json:"price_set_code"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Weekdays     []int     `json:"weekdays"`
	Priority     int       `json:"priority"`
	Description  *string   `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type RateCardView struct {
	ID           uuid.UUID        `json:"id"`
	HallID       uuid.UUID        `json:"hall_id"`
	PriceSetID   uuid.UUID        `json:"price_set_id"`
	PriceSetCode string           `json:"price_set_code"`
	Rate         pricing.HallRate `json:"rate"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

type ExtraServiceView struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Scheme    string    `json:"scheme"`
	UnitSize  *int      `json:"unit_size,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ExtraPriceView struct {
	ID                  uuid.UUID        `json:"id"`
	ServiceID           uuid.UUID        `json:"service_id"`
	PriceSetID          uuid.UUID        `json:"price_set_id"`
	PriceSetCode        string           `json:"price_set_code"`
	BasePrice           decimal.Decimal  `json:"base_price"`
	AdditionalUnitPrice *decimal.Decimal `json:"additional_unit_price,omitempty"`
	UnitLabel           string           `json:"unit_label"`
}

type BookingRequestView struct {
	ID            uuid.UUID       `json:"id"`
	HallID        uuid.UUID       `json:"hall_id"`
	HallName      string          `json:"hall_name"`
	EventDate     time.Time       `json:"event_date"`
	StartMin      int             `json:"start_min"`
	EndMin        int             `json:"end_min"`
	GuestCount    int             `json:"guest_count"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	Comment       *string         `json:"comment,omitempty"`
	PriceSet      string          `json:"price_set"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type NotificationJobView struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Topic     string    `json:"topic"`
	Payload   []byte    `json:"payload"`
	RunAt     time.Time `json:"run_at"`
	Attempts  int32     `json:"attempts"`
	Status    string    `json:"status"`
	LastError *string   `json:"last_error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type QuoteExtraLine struct {
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
}

type QuoteView struct {
	HallCode            string           `json:"hall_code"`
	PriceSet            string           `json:"price_set"`
	BaseCharge          decimal.Decimal  `json:"base_charge"`
	CleaningFee         decimal.Decimal  `json:"cleaning_fee"`
	AfterHoursSurcharge decimal.Decimal  `json:"after_hours_surcharge"`
	BilledHours         decimal.Decimal  `json:"billed_hours"`
	FoodAlcoholAllowed  bool             `json:"food_alcohol_allowed"`
	Extras              []QuoteExtraLine `json:"extras"`
	Total               decimal.Decimal  `json:"total"`
}
