package paintcore

// CanvasOption configures a Canvas during creation.
// Use functional options to customize Canvas behavior.
//
// Example:
//
//	// Default construction
//	c, err := paintcore.NewCanvas(800, 600)
//
//	// Custom undo depth and worker count (dependency injection)
//	c, err := paintcore.NewCanvas(800, 600,
//	    paintcore.WithMaxUndoStates(100),
//	    paintcore.WithWorkers(4))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	maxUndoStates int
	clock         func() int64
	workers       int
}

// defaultCanvasOptions returns the default canvas options.
func defaultCanvasOptions() canvasOptions {
	return canvasOptions{
		maxUndoStates: 0, // 0 means: let UndoStack apply its own default (50)
		clock:         nil,
		workers:       0, // 0 means: let the worker pool default to GOMAXPROCS
	}
}

// WithMaxUndoStates sets the canvas's undo history ceiling. Non-positive
// values are ignored.
func WithMaxUndoStates(n int) CanvasOption {
	return func(o *canvasOptions) {
		o.maxUndoStates = n
	}
}

// WithCanvasClock overrides the canvas's UndoStack time source. Intended
// for deterministic tests.
func WithCanvasClock(clock func() int64) CanvasOption {
	return func(o *canvasOptions) {
		o.clock = clock
	}
}

// WithWorkers sets the number of goroutines the canvas's render pool
// (used by RenderTo to composite row bands) uses. Non-positive values are ignored (the pool defaults to
// runtime.GOMAXPROCS(0)).
func WithWorkers(n int) CanvasOption {
	return func(o *canvasOptions) {
		o.workers = n
	}
}
