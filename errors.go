package paintcore

import (
	"errors"
	"fmt"
)

// Sentinel errors for the handful of operations this engine surfaces as
// fallible rather than silent-no-op. Every other out-of-range access in
// the public surface (layer index, tile/pixel coordinates, adjustment
// index, undo/redo when unavailable) remains a documented silent no-op,
// matching the pinned behavior tests in the engine's test suite.
var (
	// ErrInvalidDimensions is returned when a width or height is
	// non-positive (Canvas construction and Resize).
	ErrInvalidDimensions = errors.New("paintcore: width and height must be positive")

	// ErrUnknownFilter is returned when apply_filter or a registry lookup
	// names a filter that was never registered.
	ErrUnknownFilter = errors.New("paintcore: unknown filter")
)

// InvalidBlendModeError is returned when a caller attempts to set a blend
// mode outside the twelve stable enum values.
type InvalidBlendModeError struct {
	Mode BlendMode
}

func (e *InvalidBlendModeError) Error() string {
	return fmt.Sprintf("paintcore: invalid blend mode %d", int(e.Mode))
}

// InvalidLayerIndexError is returned by Canvas.Layer, the checked
// variant of GetLayer, for callers that want an error instead of a nil
// on out-of-range index.
type InvalidLayerIndexError struct {
	Index int
	Count int
}

func (e *InvalidLayerIndexError) Error() string {
	return fmt.Sprintf("paintcore: layer index %d out of range [0,%d)", e.Index, e.Count)
}
