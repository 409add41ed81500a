package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseErrorWithLine(t *testing.T) {
	underlying := errors.New("mapping values are not allowed")
	err := NewParseError("theme.yaml", 12, underlying)

	assert.Equal(t, "parse error: theme.yaml:12: mapping values are not allowed", err.Error())
	assert.True(t, errors.Is(err, underlying))
}

func TestParseErrorWithoutLine(t *testing.T) {
	err := NewParseError("theme.yaml", 0, errors.New("file truncated"))

	assert.Equal(t, "parse error: theme.yaml: file truncated", err.Error())
}

func TestValidationErrorWithField(t *testing.T) {
	err := NewValidationError("tooltip.placement", "unknown placement \"middle\"", nil)

	assert.Equal(t, "validation error: tooltip.placement: unknown placement \"middle\"", err.Error())
}

func TestValidationErrorUnwrap(t *testing.T) {
	underlying := errors.New("tag failure")
	err := NewValidationError("theme.name", "bad name", underlying)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.True(t, errors.Is(err, underlying))
}
