//go:build unit

package builder

import (
	"time"

	domhall "hall-booking/internal/domain/hall"
	reqdto "hall-booking/internal/handler/dto/request"
	"hall-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type HallBuilder struct {
	ID          uuid.UUID
	Code        string
	Name        string
	Description string
	Capacity    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewHallBuilder() *HallBuilder {
	now := time.Now()
	return &HallBuilder{
		ID:          uuid.New(),
		Code:        "grand-hall",
		Name:        "Grand Hall",
		Description: "Main event space",
		Capacity:    80,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *HallBuilder) With(mutate func(*HallBuilder)) *HallBuilder {
	mutate(b)
	return b
}

func (b *HallBuilder) BuildDomain() (*domhall.Hall, error) {
	return domhall.NewHall(uuid.Nil, b.Code, b.Name, b.Description, b.Capacity)
}

func (b *HallBuilder) BuildView() *queries.HallView {
	return &queries.HallView{
		ID:          b.ID,
		Code:        b.Code,
		Name:        b.Name,
		Description: b.Description,
		Capacity:    b.Capacity,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *HallBuilder) BuildCreateRequestDTO() reqdto.CreateHallRequest {
	return reqdto.CreateHallRequest{
		Code:        b.Code,
		Name:        b.Name,
		Description: b.Description,
		Capacity:    b.Capacity,
	}
}
