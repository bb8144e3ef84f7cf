package util

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPipelineError(t *testing.T) {
	t.Run("preserves an existing pipeline error", func(t *testing.T) {
		err := NewFetchFailed("page request failed", errors.New("boom"))
		pe := ToPipelineError(err)
		require.NotNil(t, pe)
		assert.Equal(t, CodeFetchFailed, pe.Code)
	})

	t.Run("finds the pipeline error through wrapping", func(t *testing.T) {
		err := fmt.Errorf("fetch step: %w", NewAuthFailed("bad token", nil))
		assert.Equal(t, CodeAuthFailed, CodeOf(err))
	})

	t.Run("classifies unknown errors as internal", func(t *testing.T) {
		assert.Equal(t, CodeInternal, CodeOf(errors.New("surprise")))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, ToPipelineError(nil))
		assert.Empty(t, CodeOf(nil))
	})
}

func TestPipelineErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewSnapshotIO("failed to read snapshot", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to read snapshot")
	assert.Contains(t, err.Error(), "connection reset")
}
