package paintcore

// Layer is a named tile grid with compositing metadata: opacity, blend
// mode, visibility, an optional clip mask, and an adjustment stack.
// A Layer is owned by exactly one Canvas; it is not safe for concurrent
// mutation, matching the engine's single-threaded driver-thread model
// (see internal/parallel for the one place rendering runs concurrently).
type Layer struct {
	Name      string
	Visible   bool
	opacity   float64
	blendMode BlendMode
	pixels    *TileGrid

	// clipMaskIndex is a stable index into the owning Canvas's layer
	// list, or -1 if this layer has no clip mask. The Canvas is
	// responsible for invalidating this on layer removal/reorder; the
	// Layer itself holds no owning reference to the mask layer.
	clipMaskIndex int

	adjustments []Adjustment
}

// NewLayer constructs a layer of the given name and pixel dimensions,
// initialized to fully opaque, Normal blend, visible, with no clip mask
// and an empty adjustment stack. The pixel grid starts filled with
// DefaultPixel (opaque black), matching TileGrid's own construction
// default.
func NewLayer(name string, w, h int) *Layer {
	return &Layer{
		Name:          name,
		Visible:       true,
		opacity:       1.0,
		blendMode:     BlendNormal,
		pixels:        NewTileGrid(w, h),
		clipMaskIndex: -1,
	}
}

// Opacity returns the layer's current opacity in [0, 1].
func (l *Layer) Opacity() float64 {
	return l.opacity
}

// SetOpacity clamps v to [0, 1] and sets it as the layer's opacity.
func (l *Layer) SetOpacity(v float64) {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	l.opacity = v
}

// BlendMode returns the layer's current blend mode.
func (l *Layer) BlendMode() BlendMode {
	return l.blendMode
}

// SetBlendMode sets the layer's blend mode. An out-of-range mode returns
// InvalidBlendModeError and leaves the current mode unchanged.
func (l *Layer) SetBlendMode(m BlendMode) error {
	if !m.Valid() {
		return &InvalidBlendModeError{Mode: m}
	}
	l.blendMode = m
	return nil
}

// Pixels returns the layer's backing tile grid, for direct pixel access
// by brush/eraser kernels and filter plugins.
func (l *Layer) Pixels() *TileGrid {
	return l.pixels
}

// ClipMaskIndex returns the stable layer-list index of this layer's clip
// mask, or -1 if it has none.
func (l *Layer) ClipMaskIndex() int {
	return l.clipMaskIndex
}

// SetClipMaskIndex sets the clip mask reference to the given layer-list
// index, or -1 to clear it. The Canvas owning this layer is responsible
// for keeping the index valid across removal/reorder.
func (l *Layer) SetClipMaskIndex(idx int) {
	l.clipMaskIndex = idx
}

// Adjustments returns the layer's adjustment stack, in apply order.
// The returned slice is shared with the layer; callers must not mutate
// it directly — use AddAdjustment/RemoveAdjustment/ClearAdjustments.
func (l *Layer) Adjustments() []Adjustment {
	return l.adjustments
}

// AddAdjustment appends an adjustment to the end of the stack.
func (l *Layer) AddAdjustment(a Adjustment) {
	l.adjustments = append(l.adjustments, a)
}

// RemoveAdjustment removes the adjustment at idx. Out-of-range idx is a
// silent no-op.
func (l *Layer) RemoveAdjustment(idx int) {
	if idx < 0 || idx >= len(l.adjustments) {
		return
	}
	l.adjustments = append(l.adjustments[:idx], l.adjustments[idx+1:]...)
}

// ClearAdjustments empties the adjustment stack.
func (l *Layer) ClearAdjustments() {
	l.adjustments = nil
}

// RenderTo composites this layer onto target at pixel offset (dx, dy),
// applying the adjustment stack per pixel before blending, using the
// layer's own blend mode and opacity. A hidden layer or one at zero
// opacity is a no-op.
func (l *Layer) RenderTo(target *TileGrid, dx, dy int) {
	if !l.Visible || l.opacity <= 0 {
		return
	}
	l.renderRows(target, dx, dy, 0, l.pixels.Height())
}

// renderRows is RenderTo restricted to source rows [yStart, yEnd), with
// the visibility/opacity guard already applied by the caller. Used by
// Canvas.RenderTo to fan a single layer's composite across its worker
// pool.
func (l *Layer) renderRows(target *TileGrid, dx, dy, yStart, yEnd int) {
	if len(l.adjustments) == 0 {
		renderGridRowsOnto(target, l.pixels, dx, dy, l.blendMode, l.opacity, yStart, yEnd)
		return
	}

	w := l.pixels.Width()
	for y := yStart; y < yEnd; y++ {
		for x := 0; x < w; x++ {
			s := applyAdjustments(l.adjustments, l.pixels.GetPixel(x, y))
			if s.A == 0 {
				continue
			}
			d := target.GetPixel(x+dx, y+dy)
			target.SetPixel(x+dx, y+dy, blendPixel(d, s, l.blendMode, l.opacity))
		}
	}
}
