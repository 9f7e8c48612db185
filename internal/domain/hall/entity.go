package hall

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyHallName   = errors.New("hall name cannot be empty")
	ErrHallNameTooLong = errors.New("hall name is too long (max 255 characters)")
	ErrInvalidHallCode = errors.New("hall code must be lowercase letters, digits and dashes")
	ErrInvalidCapacity = errors.New("hall capacity must be positive")
)

const MaxHallNameLength = 255

var codeRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9\-]{0,63}$`)

type Hall struct {
	id          uuid.UUID
	code        string
	name        string
	description string
	capacity    int
	createdAt   time.Time
	updatedAt   time.Time
}

func NewHall(id uuid.UUID, code, name, description string, capacity int) (*Hall, error) {
	if !codeRegex.MatchString(code) {
		return nil, ErrInvalidHallCode
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyHallName
	}
	if len(name) > MaxHallNameLength {
		return nil, ErrHallNameTooLong
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Hall{
		id:          id,
		code:        code,
		name:        name,
		description: strings.TrimSpace(description),
		capacity:    capacity,
	}, nil
}

func (h *Hall) ID() uuid.UUID        { return h.id }
func (h *Hall) Code() string         { return h.code }
func (h *Hall) Name() string         { return h.name }
func (h *Hall) Description() string  { return h.description }
func (h *Hall) Capacity() int        { return h.capacity }
func (h *Hall) CreatedAt() time.Time { return h.createdAt }
func (h *Hall) UpdatedAt() time.Time { return h.updatedAt }
