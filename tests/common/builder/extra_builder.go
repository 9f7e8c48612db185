//go:build unit

package builder

import (
	"time"

	domextra "hall-booking/internal/domain/extra"
	"hall-booking/internal/domain/pricing"
	reqdto "hall-booking/internal/handler/dto/request"
	"hall-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ExtraServiceBuilder struct {
	ID       uuid.UUID
	Code     string
	Name     string
	Scheme   pricing.Scheme
	UnitSize *int
}

func NewExtraServiceBuilder() *ExtraServiceBuilder {
	return &ExtraServiceBuilder{
		ID:     uuid.New(),
		Code:   "projector",
		Name:   "Projector",
		Scheme: pricing.SchemeFixed,
	}
}

func (b *ExtraServiceBuilder) With(mutate func(*ExtraServiceBuilder)) *ExtraServiceBuilder {
	mutate(b)
	return b
}

func (b *ExtraServiceBuilder) BuildDomain() (*domextra.Service, error) {
	return domextra.NewService(uuid.Nil, b.Code, b.Name, b.Scheme, b.UnitSize)
}

func (b *ExtraServiceBuilder) BuildView() *queries.ExtraServiceView {
	return &queries.ExtraServiceView{
		ID:        b.ID,
		Code:      b.Code,
		Name:      b.Name,
		Scheme:    string(b.Scheme),
		UnitSize:  b.UnitSize,
		CreatedAt: time.Now(),
	}
}

func (b *ExtraServiceBuilder) BuildCreateRequestDTO() reqdto.CreateExtraServiceRequest {
	return reqdto.CreateExtraServiceRequest{
		Code:     b.Code,
		Name:     b.Name,
		Scheme:   string(b.Scheme),
		UnitSize: b.UnitSize,
	}
}
