package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hall-booking/internal/usecase/queries"
)

type HallResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Capacity    int       `json:"capacity"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromHallView(rm *queries.HallView) *HallResponse {
	return &HallResponse{
		ID:          rm.ID,
		Code:        rm.Code,
		Name:        rm.Name,
		Description: rm.Description,
		Capacity:    rm.Capacity,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}

func FromHallViews(rms []*queries.HallView) []*HallResponse {
	result := make([]*HallResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromHallView(rm)
	}
	return result
}

type ExtraServiceResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Scheme    string    `json:"scheme"`
	UnitSize  *int      `json:"unitSize,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromExtraServiceView(rm *queries.ExtraServiceView) *ExtraServiceResponse {
	return &ExtraServiceResponse{
		ID:        rm.ID,
		Code:      rm.Code,
		Name:      rm.Name,
		Scheme:    rm.Scheme,
		UnitSize:  rm.UnitSize,
		CreatedAt: rm.CreatedAt,
	}
}

func FromExtraServiceViews(rms []*queries.ExtraServiceView) []*ExtraServiceResponse {
	result := make([]*ExtraServiceResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromExtraServiceView(rm)
	}
	return result
}

type ExtraPriceResponse struct {
	ID                  uuid.UUID        `json:"id"`
	ServiceID           uuid.UUID        `json:"serviceId"`
	PriceSetID          uuid.UUID        `json:"priceSetId"`
	PriceSetCode        string           `json:"priceSetCode"`
	BasePrice           decimal.Decimal  `json:"basePrice"`
	AdditionalUnitPrice *decimal.Decimal `json:"additionalUnitPrice,omitempty"`
	UnitLabel           string           `json:"unitLabel"`
}

func FromExtraPriceView(rm *queries.ExtraPriceView) *ExtraPriceResponse {
	return &ExtraPriceResponse{
		ID:                  rm.ID,
		ServiceID:           rm.ServiceID,
		PriceSetID:          rm.PriceSetID,
		PriceSetCode:        rm.PriceSetCode,
		BasePrice:           rm.BasePrice,
		AdditionalUnitPrice: rm.AdditionalUnitPrice,
		UnitLabel:           rm.UnitLabel,
	}
}

func FromExtraPriceViews(rms []*queries.ExtraPriceView) []*ExtraPriceResponse {
	result := make([]*ExtraPriceResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromExtraPriceView(rm)
	}
	return result
}
