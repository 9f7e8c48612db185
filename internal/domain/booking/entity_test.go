//go:build unit

package booking_test

import (
	"strings"
	"testing"

	"hall-booking/internal/domain/booking"
	"hall-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingRequestBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingRequestBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingRequestBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusNew, actual.Status())
		assert.Equal(t, "Anna Petrova", actual.CustomerName())
		assert.Equal(t, "standard", actual.PriceSet())
	})

	t.Run("customer name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.BookingRequestBuilder) { b.CustomerName = "" },
				errIs:  booking.ErrEmptyCustomerName,
			},
			{
				name:   "whitespace-only name",
				mutate: func(b *builder.BookingRequestBuilder) { b.CustomerName = "   " },
				errIs:  booking.ErrEmptyCustomerName,
			},
			{
				name:   "surrounding whitespace is trimmed",
				mutate: func(b *builder.BookingRequestBuilder) { b.CustomerName = "  Anna  " },
			},
		})
	})

	t.Run("phone validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "international format",
				mutate: func(b *builder.BookingRequestBuilder) { b.CustomerPhone = "+79001234567" },
			},
			{
				name:   "local format with separators",
				mutate: func(b *builder.BookingRequestBuilder) { b.CustomerPhone = "8 (900) 123-45-67" },
			},
			{
				name:   "empty phone",
				mutate: func(b *builder.BookingRequestBuilder) { b.CustomerPhone = "" },
				errIs:  booking.ErrInvalidPhone,
			},
			{
				name:   "letters in phone",
				mutate: func(b *builder.BookingRequestBuilder) { b.CustomerPhone = "call me" },
				errIs:  booking.ErrInvalidPhone,
			},
			{
				name:   "too short",
				mutate: func(b *builder.BookingRequestBuilder) { b.CustomerPhone = "12345" },
				errIs:  booking.ErrInvalidPhone,
			},
		})
	})

	t.Run("comment validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty comment is allowed",
				mutate: func(b *builder.BookingRequestBuilder) { b.Comment = "" },
			},
			{
				name: "maximum length comment",
				mutate: func(b *builder.BookingRequestBuilder) {
					b.Comment = strings.Repeat("a", booking.MaxCommentLength)
				},
			},
			{
				name: "over maximum length",
				mutate: func(b *builder.BookingRequestBuilder) {
					b.Comment = strings.Repeat("a", booking.MaxCommentLength+1)
				},
				errIs: booking.ErrCommentTooLong,
			},
		})
	})
}

func TestNewStatus(t *testing.T) {
	t.Run("known statuses", func(t *testing.T) {
		for _, s := range []string{"new", "contacted", "closed"} {
			status, err := booking.NewStatus(s)
			require.NoError(t, err)
			assert.Equal(t, s, string(status))
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := booking.NewStatus("archived")
		assert.ErrorIs(t, err, booking.ErrInvalidStatus)
	})

	t.Run("case sensitive", func(t *testing.T) {
		_, err := booking.NewStatus("New")
		assert.ErrorIs(t, err, booking.ErrInvalidStatus)
	})
}
