//go:build unit

package errs_test

import (
	"errors"
	"strings"
	"testing"

	"hall-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("quote failed")
	cause := errs.New("connection refused")

	t.Run("marked error matches the sentinel with errors.Is", func(t *testing.T) {
		err := errs.Mark(cause, sentinel)
		assert.True(t, errors.Is(err, sentinel))
	})

	t.Run("keeps the cause message", func(t *testing.T) {
		err := errs.Mark(cause, sentinel)
		assert.Contains(t, err.Error(), "connection refused")
		assert.Contains(t, err.Error(), "quote failed")
	})

	t.Run("nil cause returns the sentinel itself", func(t *testing.T) {
		err := errs.Mark(nil, sentinel)
		assert.True(t, errors.Is(err, sentinel))
	})

	t.Run("does not match an unrelated sentinel", func(t *testing.T) {
		other := errs.New("something else")
		err := errs.Mark(cause, sentinel)
		assert.False(t, errors.Is(err, other))
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "context"))
	})

	t.Run("wrapped error stays matchable", func(t *testing.T) {
		base := errs.New("base")
		err := errs.Wrap(base, "context")
		assert.True(t, errors.Is(err, base))
		assert.Contains(t, err.Error(), "context")
	})
}

func TestExtractStackLines(t *testing.T) {
	err := errs.New("boom")
	lines := errs.ExtractStackLines(err, 3)
	assert.Len(t, lines, 3)
	assert.True(t, strings.Contains(lines[0], "boom"))

	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}
