package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorClassification(t *testing.T) {
	gen := NewGenerationError("model said %q", "nothing")
	require.True(t, IsGeneration(gen))
	require.False(t, IsNotFound(gen))
	require.Contains(t, gen.Error(), `"nothing"`)

	nf := NewNotFoundError("rfp %d not found", 7)
	require.True(t, IsNotFound(nf))
	require.False(t, IsValidation(nf))

	tr := NewTransportError("smtp connect refused")
	require.True(t, IsTransport(tr))

	val := NewValidationError("missing field")
	require.True(t, IsValidation(val))
}

func TestClassificationThroughWrapping(t *testing.T) {
	err := fmt.Errorf("handler: %w", NewNotFoundError("vendor not found"))
	require.True(t, IsNotFound(err))
	require.False(t, IsNotFound(errors.New("plain")))
}
