package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("title", "required")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("goal not found")))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestKindSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("resolver failed: %w", Unauthorized("missing identity"))
	assert.True(t, Is(wrapped, KindUnauthorized))
	assert.False(t, Is(wrapped, KindInternal))
}

func TestValidationMessageNamesField(t *testing.T) {
	err := Validation("roomId", "required")
	assert.Contains(t, err.Error(), "roomId: required")
}
