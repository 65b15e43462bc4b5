package storeintel_test

import (
	"errors"
	"testing"

	"github.com/storeintel/storeintel"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := storeintel.Errorf(storeintel.ENOTFOUND, "site %q not found", "example.com")

	assert.Equal(t, storeintel.ENOTFOUND, storeintel.ErrorCode(err))
	assert.Equal(t, `site "example.com" not found`, storeintel.ErrorMessage(err))
}

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, storeintel.ErrorCode(nil))
	})

	t.Run("non-application error maps to internal", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, storeintel.EINTERNAL, storeintel.ErrorCode(errors.New("boom")))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, storeintel.ErrorMessage(nil))
	})

	t.Run("non-application error yields generic message", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Internal error.", storeintel.ErrorMessage(errors.New("boom")))
	})
}
