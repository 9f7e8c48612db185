//go:build unit

package hall_test

import (
	"strings"
	"testing"

	"hall-booking/internal/domain/hall"
	"hall-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHall(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewHallBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "grand-hall", actual.Code())
		assert.Equal(t, "Grand Hall", actual.Name())
		assert.Equal(t, 80, actual.Capacity())
	})

	t.Run("explicit ID is kept", func(t *testing.T) {
		id := uuid.New()
		actual, err := hall.NewHall(id, "loft", "Loft", "", 20)
		require.NoError(t, err)
		assert.Equal(t, id, actual.ID())
	})

	cases := []struct {
		name   string
		mutate func(*builder.HallBuilder)
		errIs  error
	}{
		{
			name:   "uppercase code",
			mutate: func(b *builder.HallBuilder) { b.Code = "Grand" },
			errIs:  hall.ErrInvalidHallCode,
		},
		{
			name:   "empty code",
			mutate: func(b *builder.HallBuilder) { b.Code = "" },
			errIs:  hall.ErrInvalidHallCode,
		},
		{
			name:   "code starting with a dash",
			mutate: func(b *builder.HallBuilder) { b.Code = "-hall" },
			errIs:  hall.ErrInvalidHallCode,
		},
		{
			name:   "empty name",
			mutate: func(b *builder.HallBuilder) { b.Name = "  " },
			errIs:  hall.ErrEmptyHallName,
		},
		{
			name:   "name over maximum length",
			mutate: func(b *builder.HallBuilder) { b.Name = strings.Repeat("a", hall.MaxHallNameLength+1) },
			errIs:  hall.ErrHallNameTooLong,
		},
		{
			name:   "zero capacity",
			mutate: func(b *builder.HallBuilder) { b.Capacity = 0 },
			errIs:  hall.ErrInvalidCapacity,
		},
		{
			name:   "negative capacity",
			mutate: func(b *builder.HallBuilder) { b.Capacity = -10 },
			errIs:  hall.ErrInvalidCapacity,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewHallBuilder()
			tc.mutate(b)
			_, err := b.BuildDomain()
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}
