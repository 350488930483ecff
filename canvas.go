package paintcore

import (
	"sync/atomic"

	sharedcache "github.com/inkforge/paintcore/cache"
	"github.com/inkforge/paintcore/internal/parallel"
)

// Canvas orchestrates a Canvas's layers, selection, strokes, and undo
// history. Index 0 of Layers is the bottom of the stack.
//
// Invariant: after construction, len(Layers) >= 1 (the constructor
// inserts an initial layer named "Background"); every layer shares the
// canvas's current (width, height). Resize reallocates each layer as a
// fresh, blank grid of the new size — pixel contents are discarded, a
// documented behavior.
//
// Canvas carries no internal synchronization: all mutation is expected
// from a single driver thread, matching the engine's single-threaded
// cooperative scheduling model. The one place concurrency is introduced
// is RenderTo, which fans each layer's composite out across a worker
// pool in disjoint, tile-aligned row bands; ApplyFilter always calls a
// filter's Process exactly once, since the plugin contract promises one
// full, ordered tile buffer per call.
type Canvas struct {
	width, height int
	layers        []*Layer
	selection     *Selection
	undo          *UndoStack
	registry      *Registry
	pool          *parallel.WorkerPool

	// revision increments on every call that can change the composited
	// result. imageCache memoizes GetCompositedImage keyed by revision,
	// so a UI that calls it once per frame without intervening edits
	// doesn't pay for a fresh tile-by-tile render every time.
	revision   uint64
	imageCache *sharedcache.ShardedCache[uint64, []byte]
}

// NewCanvas constructs a Canvas of the given pixel dimensions with a
// single initial layer named "Background". Non-positive dimensions
// return ErrInvalidDimensions.
func NewCanvas(width, height int, opts ...CanvasOption) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var undoOpts []UndoStackOption
	if o.maxUndoStates > 0 {
		undoOpts = append(undoOpts, WithMaxStates(o.maxUndoStates))
	}
	if o.clock != nil {
		undoOpts = append(undoOpts, WithClock(o.clock))
	}

	c := &Canvas{
		width:      width,
		height:     height,
		undo:       NewUndoStack(undoOpts...),
		registry:   DefaultRegistry(),
		pool:       parallel.NewWorkerPool(o.workers),
		imageCache: sharedcache.NewSharded[uint64, []byte](4, sharedcache.Uint64Hasher),
	}
	c.layers = append(c.layers, NewLayer("Background", width, height))
	return c, nil
}

// Width returns the canvas's current width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas's current height in pixels.
func (c *Canvas) Height() int { return c.height }

// Registry returns the canvas's filter plugin registry, so callers may
// register additional filters beyond the four reference implementations.
func (c *Canvas) Registry() *Registry { return c.registry }

// AddLayer appends a new, blank layer named name to the top of the
// layer stack and returns it.
func (c *Canvas) AddLayer(name string) *Layer {
	l := NewLayer(name, c.width, c.height)
	c.layers = append(c.layers, l)
	c.bumpRevision()
	return l
}

// RemoveLayer removes the layer at index. Out-of-range index is a
// silent no-op. Any clip-mask reference pointing at the removed index,
// or at an index shifted by the removal, is invalidated/renumbered.
func (c *Canvas) RemoveLayer(index int) {
	if index < 0 || index >= len(c.layers) {
		return
	}
	c.layers = append(c.layers[:index], c.layers[index+1:]...)
	for _, l := range c.layers {
		switch {
		case l.clipMaskIndex == index:
			l.clipMaskIndex = -1
		case l.clipMaskIndex > index:
			l.clipMaskIndex--
		}
	}
	c.bumpRevision()
}

// MoveLayer relocates the layer at from to position to, shifting the
// layers in between (an ordered move, not a swap). Out-of-range from or
// to is a silent no-op. Clip-mask references are renumbered so they keep
// pointing at the same layers.
func (c *Canvas) MoveLayer(from, to int) {
	n := len(c.layers)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return
	}
	l := c.layers[from]
	c.layers = append(c.layers[:from], c.layers[from+1:]...)
	c.layers = append(c.layers[:to], append([]*Layer{l}, c.layers[to:]...)...)
	for _, layer := range c.layers {
		switch m := layer.clipMaskIndex; {
		case m < 0:
		case m == from:
			layer.clipMaskIndex = to
		case from < to && m > from && m <= to:
			layer.clipMaskIndex--
		case from > to && m >= to && m < from:
			layer.clipMaskIndex++
		}
	}
	c.bumpRevision()
}

// GetLayer returns the layer at index, or nil on out-of-range index.
func (c *Canvas) GetLayer(index int) *Layer {
	if index < 0 || index >= len(c.layers) {
		return nil
	}
	return c.layers[index]
}

// Layer is the checked variant of GetLayer, for callers that want an
// error instead of a nil to distinguish "no such layer" from every other
// reason a caller might legitimately hold a nil *Layer.
func (c *Canvas) Layer(index int) (*Layer, error) {
	l := c.GetLayer(index)
	if l == nil {
		return nil, &InvalidLayerIndexError{Index: index, Count: len(c.layers)}
	}
	return l, nil
}

// GetLayers returns the ordered layer list. The returned slice is
// shared with the Canvas; callers must not mutate it.
func (c *Canvas) GetLayers() []*Layer {
	return c.layers
}

// Resize reallocates every layer as a fresh, blank grid of the new
// dimensions; pixel contents are discarded. Non-positive dimensions
// return ErrInvalidDimensions and leave the canvas unchanged.
func (c *Canvas) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	Logger().Info("canvas resized",
		"old_width", c.width, "old_height", c.height,
		"new_width", width, "new_height", height)
	c.width, c.height = width, height
	for _, l := range c.layers {
		l.pixels = NewTileGrid(width, height)
	}
	c.bumpRevision()
	return nil
}

// RenderTo clears target, then composites every layer, bottom-to-top,
// onto it at offset (0, 0). Each layer's own composite is fanned out
// across the canvas's worker pool in tile-aligned row bands — safe
// because disjoint bands never touch the same destination tile — while
// layers themselves are still composited strictly in order, since each
// depends on the one below it already being in target.
func (c *Canvas) RenderTo(target *TileGrid) {
	target.Clear()
	for _, l := range c.layers {
		c.renderLayer(l, target)
	}
}

func (c *Canvas) renderLayer(l *Layer, target *TileGrid) {
	if !l.Visible || l.opacity <= 0 {
		return
	}
	h := l.pixels.Height()
	workers := c.pool.Workers()
	tilesY := l.pixels.TileCountY()
	if workers <= 1 || tilesY <= 1 {
		l.renderRows(target, 0, 0, 0, h)
		return
	}
	bandTiles := (tilesY + workers - 1) / workers
	band := bandTiles * TileSize
	jobs := make([]func(), 0, workers)
	for start := 0; start < h; start += band {
		end := start + band
		if end > h {
			end = h
		}
		start, end := start, end
		jobs = append(jobs, func() {
			l.renderRows(target, 0, 0, start, end)
		})
	}
	c.pool.ExecuteAll(jobs)
}

// GetCompositedImage renders the canvas and returns it as an external
// 16-bit BGRA matrix, row-major, pitch 4*2*width bytes.
func (c *Canvas) GetCompositedImage() []byte {
	rev := atomic.LoadUint64(&c.revision)
	if cached, ok := c.imageCache.Get(rev); ok {
		return cached
	}
	target := NewTileGrid(c.width, c.height)
	c.RenderTo(target)
	img := target.ToMatrix()
	c.imageCache.Set(rev, img)
	return img
}

// bumpRevision invalidates the composited-image cache by advancing the
// revision counter. Called by every method that can change RenderTo's
// output.
func (c *Canvas) bumpRevision() {
	atomic.AddUint64(&c.revision, 1)
}

// BeginStroke snapshots every layer's pixel grid into the undo history
// before a caller applies a sequence of mutating kernel calls. The
// snapshot is what undo must restore — recording at stroke begin, not
// end, avoids needing a diff pass.
func (c *Canvas) BeginStroke(description string) {
	c.undo.Push(description, c.currentGrids())
	c.bumpRevision()
}

// EndStroke is a sealing no-op: the undo snapshot already happened at
// BeginStroke.
func (c *Canvas) EndStroke() {}

// Undo restores the pixel grids from the previous undo state, if any,
// after pushing the live grids onto the redo branch so Redo can return
// to the state being left behind. No-op if !CanUndo.
func (c *Canvas) Undo() {
	snaps := c.undo.Undo(c.currentGrids())
	c.restoreSnapshots(snaps)
	c.bumpRevision()
}

// Redo restores the pixel grids from the next undo state, if any, after
// pushing the live grids back onto the undo branch. No-op if !CanRedo.
func (c *Canvas) Redo() {
	snaps := c.undo.Redo(c.currentGrids())
	c.restoreSnapshots(snaps)
	c.bumpRevision()
}

func (c *Canvas) currentGrids() []*TileGrid {
	grids := make([]*TileGrid, len(c.layers))
	for i, l := range c.layers {
		grids[i] = l.pixels
	}
	return grids
}

func (c *Canvas) restoreSnapshots(snaps []*TileGrid) {
	if snaps == nil {
		return
	}
	for i, l := range c.layers {
		if i < len(snaps) {
			l.pixels = snaps[i]
		}
	}
}

// CanUndo reports whether Undo would restore a state.
func (c *Canvas) CanUndo() bool { return c.undo.CanUndo() }

// CanRedo reports whether Redo would restore a state.
func (c *Canvas) CanRedo() bool { return c.undo.CanRedo() }

// DrawBrushStroke paints a union of disk stamps along points onto the
// layer at layerIndex, blending color at the computed per-pixel weight.
// Invalid layer index is a silent no-op.
func (c *Canvas) DrawBrushStroke(layerIndex int, points []Point, size float64, opacity float64, color Pixel) {
	l := c.GetLayer(layerIndex)
	if l == nil {
		return
	}
	drawBrushStroke(l.pixels, points, size, opacity, color)
	c.bumpRevision()
}

// EraseBrushStroke paints a union of disk stamps along points onto the
// layer at layerIndex, scaling alpha by the computed per-pixel weight.
// Invalid layer index is a silent no-op.
func (c *Canvas) EraseBrushStroke(layerIndex int, points []Point, size float64, opacity float64) {
	l := c.GetLayer(layerIndex)
	if l == nil {
		return
	}
	eraseBrushStroke(l.pixels, points, size, opacity)
	c.bumpRevision()
}

// SetSelection replaces the canvas's current selection with one built
// from points.
func (c *Canvas) SetSelection(points []Point) {
	c.selection = NewSelection(points)
}

// ClearSelection empties the current selection.
func (c *Canvas) ClearSelection() {
	c.selection = nil
}

// HasSelection reports whether the canvas currently has a non-empty
// selection.
func (c *Canvas) HasSelection() bool {
	return !c.selection.IsEmpty()
}

// Selection returns the canvas's current selection (possibly nil/empty).
// Selection is advisory metadata only; it does not gate pixel writes.
func (c *Canvas) Selection() *Selection {
	return c.selection
}

// AddAdjustment appends adjustment to the adjustment stack of the layer
// at layerIndex. Invalid layer index is a silent no-op. This is the
// secondary, non-destructive path for the well-defined adjustment kinds;
// ApplyFilter is the primary path for tile-processing plugins.
func (c *Canvas) AddAdjustment(layerIndex int, adjustment Adjustment) {
	l := c.GetLayer(layerIndex)
	if l == nil {
		return
	}
	l.AddAdjustment(adjustment)
	c.bumpRevision()
}

// ApplyFilter looks up filterType in the canvas's plugin registry and
// invokes it once over the full, contiguous, row-major tile buffer of
// the layer at layerIndex, per the Filter contract. Invalid layer index
// is a silent no-op; an unregistered filterType returns ErrUnknownFilter.
//
// The canvas's worker pool is not used here: Process must see every
// tile in one undivided, ordered slice (count-aware and cross-tile
// plugins, like the smudge filter's carried color buffer, depend on
// it), so splitting the call across workers would hand each one a
// partial, reordered view. A filter that wants to parallelize its own
// tile loop internally is free to — progress and cancellation are its
// own single-threaded concern in that case — but ApplyFilter always
// makes one call.
func (c *Canvas) ApplyFilter(layerIndex int, filterType string, params ParamBag, progress ProgressCallback) error {
	l := c.GetLayer(layerIndex)
	if l == nil {
		return nil
	}
	f, err := c.registry.Lookup(filterType)
	if err != nil {
		return err
	}

	tiles := l.pixels.AllTiles()
	if len(tiles) == 0 {
		return nil
	}
	if progress == nil {
		progress = NopProgress
	}

	f.Process(tiles, l.pixels.Width(), l.pixels.Height(), params, progress)
	if progress.Cancelled() {
		Logger().Warn("filter cancelled, partial tiles left mutated",
			"filter", filterType, "layer_index", layerIndex, "tile_count", len(tiles))
	}
	c.bumpRevision()
	return nil
}

// Close releases the canvas's render worker pool. Safe to call multiple
// times.
func (c *Canvas) Close() {
	c.pool.Close()
}
