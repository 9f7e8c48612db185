package extra

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"hall-booking/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidExtraCode = errors.New("extra service code must be lowercase letters, digits and underscores")
	ErrEmptyExtraName   = errors.New("extra service name cannot be empty")
	ErrInvalidScheme    = errors.New("pricing scheme must be fixed, per_unit or complex")
	ErrInvalidUnitSize  = errors.New("unit size must be positive when set")
	ErrNegativePrice    = errors.New("extra service prices cannot be negative")
)

var extraCodeRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_]{0,63}$`)

// Service is an add-on chargeable item (hookah, decoration, photographer).
type Service struct {
	id        uuid.UUID
	code      string
	name      string
	scheme    pricing.Scheme
	unitSize  *int
	createdAt time.Time
	updatedAt time.Time
}

func NewService(id uuid.UUID, code, name string, scheme pricing.Scheme, unitSize *int) (*Service, error) {
	if !extraCodeRegex.MatchString(code) {
		return nil, ErrInvalidExtraCode
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyExtraName
	}
	if !scheme.IsValid() {
		return nil, ErrInvalidScheme
	}
	if unitSize != nil && *unitSize <= 0 {
		return nil, ErrInvalidUnitSize
	}

	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Service{
		id:       id,
		code:     code,
		name:     name,
		scheme:   scheme,
		unitSize: unitSize,
	}, nil
}

func (s *Service) ID() uuid.UUID          { return s.id }
func (s *Service) Code() string           { return s.code }
func (s *Service) Name() string           { return s.name }
func (s *Service) Scheme() pricing.Scheme { return s.scheme }
func (s *Service) UnitSize() *int         { return s.unitSize }
func (s *Service) CreatedAt() time.Time   { return s.createdAt }
func (s *Service) UpdatedAt() time.Time   { return s.updatedAt }

// Price is the configured price of one service under one price set.
type Price struct {
	id                  uuid.UUID
	serviceID           uuid.UUID
	priceSetID          uuid.UUID
	basePrice           decimal.Decimal
	additionalUnitPrice *decimal.Decimal
	unitLabel           string
}

func NewPrice(id, serviceID, priceSetID uuid.UUID, basePrice decimal.Decimal, additionalUnitPrice *decimal.Decimal, unitLabel string) (*Price, error) {
	if basePrice.IsNegative() {
		return nil, ErrNegativePrice
	}
	if additionalUnitPrice != nil && additionalUnitPrice.IsNegative() {
		return nil, ErrNegativePrice
	}

	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Price{
		id:                  id,
		serviceID:           serviceID,
		priceSetID:          priceSetID,
		basePrice:           basePrice,
		additionalUnitPrice: additionalUnitPrice,
		unitLabel:           strings.TrimSpace(unitLabel),
	}, nil
}

func (p *Price) ID() uuid.UUID                         { return p.id }
func (p *Price) ServiceID() uuid.UUID                  { return p.serviceID }
func (p *Price) PriceSetID() uuid.UUID                 { return p.priceSetID }
func (p *Price) BasePrice() decimal.Decimal            { return p.basePrice }
func (p *Price) AdditionalUnitPrice() *decimal.Decimal { return p.additionalUnitPrice }
func (p *Price) UnitLabel() string                     { return p.unitLabel }
