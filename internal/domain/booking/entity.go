package booking

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCustomerName = errors.New("customer name cannot be empty")
	ErrInvalidPhone      = errors.New("invalid phone number")
	ErrCommentTooLong    = errors.New("comment is too long (max 1000 characters)")
	ErrInvalidStatus     = errors.New("invalid booking request status")
)

const MaxCommentLength = 1000

var phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9\s\-()]{6,19}$`)

type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusClosed    Status = "closed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusClosed:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Request is a customer's booking inquiry together with the quote computed
// for it. It never reserves the slot; managers follow up by phone.
type Request struct {
	id            uuid.UUID
	hallID        uuid.UUID
	eventDate     time.Time
	startMin      int
	endMin        int
	guestCount    int
	customerName  string
	customerPhone string
	comment       string
	priceSet      string
	total         decimal.Decimal
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
}

func NewRequest(hallID uuid.UUID, eventDate time.Time, startMin, endMin, guestCount int, customerName, customerPhone, comment, priceSet string, total decimal.Decimal) (*Request, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return nil, ErrEmptyCustomerName
	}
	if !phoneRegex.MatchString(strings.TrimSpace(customerPhone)) {
		return nil, ErrInvalidPhone
	}
	comment = strings.TrimSpace(comment)
	if len(comment) > MaxCommentLength {
		return nil, ErrCommentTooLong
	}

	return &Request{
		id:            uuid.New(),
		hallID:        hallID,
		eventDate:     eventDate,
		startMin:      startMin,
		endMin:        endMin,
		guestCount:    guestCount,
		customerName:  customerName,
		customerPhone: strings.TrimSpace(customerPhone),
		comment:       comment,
		priceSet:      priceSet,
		total:         total,
		status:        StatusNew,
	}, nil
}

func (r *Request) ID() uuid.UUID          { return r.id }
func (r *Request) HallID() uuid.UUID      { return r.hallID }
func (r *Request) EventDate() time.Time   { return r.eventDate }
func (r *Request) StartMin() int          { return r.startMin }
func (r *Request) EndMin() int            { return r.endMin }
func (r *Request) GuestCount() int        { return r.guestCount }
func (r *Request) CustomerName() string   { return r.customerName }
func (r *Request) CustomerPhone() string  { return r.customerPhone }
func (r *Request) Comment() string        { return r.comment }
func (r *Request) PriceSet() string       { return r.priceSet }
func (r *Request) Total() decimal.Decimal { return r.total }
func (r *Request) Status() Status         { return r.status }
func (r *Request) CreatedAt() time.Time   { return r.createdAt }
func (r *Request) UpdatedAt() time.Time   { return r.updatedAt }
