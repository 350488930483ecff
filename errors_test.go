package paintcore

import (
	"errors"
	"fmt"
	"testing"
)

func TestInvalidBlendModeErrorMessage(t *testing.T) {
	err := &InvalidBlendModeError{Mode: BlendMode(42)}
	if err.Error() == "" {
		t.Error("Error() should not be empty")
	}
}

func TestInvalidLayerIndexErrorMessage(t *testing.T) {
	err := &InvalidLayerIndexError{Index: 5, Count: 2}
	if err.Error() == "" {
		t.Error("Error() should not be empty")
	}
}

func TestErrInvalidDimensionsIsSentinel(t *testing.T) {
	wrapped := fmt.Errorf("resize failed: %w", ErrInvalidDimensions)
	if !errors.Is(wrapped, ErrInvalidDimensions) {
		t.Error("wrapped error should match ErrInvalidDimensions via errors.Is")
	}
}
