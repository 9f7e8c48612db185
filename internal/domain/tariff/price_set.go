package tariff

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPriceSetCode = errors.New("price set code must be lowercase letters, digits and underscores")
	ErrEmptyPriceSetName   = errors.New("price set name cannot be empty")
)

var priceSetCodeRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_]{0,63}$`)

// PriceSet is a named tariff profile ("standard", "december", ...).
// Immutable once a quote or booking request references its code.
type PriceSet struct {
	id        uuid.UUID
	code      string
	name      string
	createdAt time.Time
	updatedAt time.Time
}

func NewPriceSet(id uuid.UUID, code, name string) (*PriceSet, error) {
	if !priceSetCodeRegex.MatchString(code) {
		return nil, ErrInvalidPriceSetCode
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyPriceSetName
	}

	if id == uuid.Nil {
		id = uuid.New()
	}
	return &PriceSet{id: id, code: code, name: name}, nil
}

func (p *PriceSet) ID() uuid.UUID        { return p.id }
func (p *PriceSet) Code() string         { return p.code }
func (p *PriceSet) Name() string         { return p.name }
func (p *PriceSet) CreatedAt() time.Time { return p.createdAt }
func (p *PriceSet) UpdatedAt() time.Time { return p.updatedAt }
