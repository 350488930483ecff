package paintcore

// TileSize is the fixed edge length, in pixels, of a Tile. Every tile in a
// TileGrid is exactly TileSize x TileSize, including tiles on the right and
// bottom edge of the grid whose logical coverage extends past the grid's
// width/height — the overhang pixels are simply never addressed through
// pixel-space accessors.
const TileSize = 256

// TilePixelCount is the number of pixels in a full tile.
const TilePixelCount = TileSize * TileSize

// Tile is a fixed TileSize x TileSize block of pixels, the unit of
// dirty-tracking and filter processing.
type Tile struct {
	// X, Y are the tile's origin in pixel space (column*TileSize,
	// row*TileSize).
	X, Y int

	// Dirty is set whenever a pixel in this tile is written through a
	// mutable accessor. Clone does not reset it.
	Dirty bool

	pixels [TilePixelCount]Pixel
}

// newTile creates a tile at the given pixel-space origin, filled with the
// default pixel and marked dirty (a freshly allocated tile counts as
// needing whatever downstream consumer cares about dirty regions).
func newTile(x, y int) *Tile {
	t := &Tile{X: x, Y: y, Dirty: true}
	for i := range t.pixels {
		t.pixels[i] = DefaultPixel
	}
	return t
}

// inBounds reports whether a local coordinate falls within the tile.
func inBounds(lx, ly int) bool {
	return lx >= 0 && lx < TileSize && ly >= 0 && ly < TileSize
}

// GetPixel reads the pixel at local coordinates (lx, ly). Out-of-range
// coordinates yield the default pixel rather than panicking.
func (t *Tile) GetPixel(lx, ly int) Pixel {
	if !inBounds(lx, ly) {
		return DefaultPixel
	}
	return t.pixels[ly*TileSize+lx]
}

// SetPixel writes the pixel at local coordinates (lx, ly) and marks the
// tile dirty. Out-of-range writes are silently discarded (no panic, no
// growth).
func (t *Tile) SetPixel(lx, ly int, p Pixel) {
	if !inBounds(lx, ly) {
		return
	}
	t.pixels[ly*TileSize+lx] = p
	t.Dirty = true
}

// Clear fills the tile with the default pixel and marks it dirty.
func (t *Tile) Clear() {
	for i := range t.pixels {
		t.pixels[i] = DefaultPixel
	}
	t.Dirty = true
}

// Fill fills the tile with the given color and marks it dirty.
func (t *Tile) Fill(p Pixel) {
	for i := range t.pixels {
		t.pixels[i] = p
	}
	t.Dirty = true
}

// Clone returns a deep copy of the tile, including its dirty flag (clone
// does not reset the flag).
func (t *Tile) Clone() *Tile {
	clone := &Tile{X: t.X, Y: t.Y, Dirty: t.Dirty}
	clone.pixels = t.pixels
	return clone
}

// Equal reports whether two tiles hold identical pixel data. The dirty
// flag and origin are not part of the comparison — snapshot tests only
// care about pixel content.
func (t *Tile) Equal(other *Tile) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.pixels == other.pixels
}

// AddInPlace adds other to this tile, channel-wise, with saturation.
func (t *Tile) AddInPlace(other *Tile) {
	for i := range t.pixels {
		t.pixels[i].AddInPlace(other.pixels[i])
	}
	t.Dirty = true
}

// SubInPlace subtracts other from this tile, channel-wise, with saturation.
func (t *Tile) SubInPlace(other *Tile) {
	for i := range t.pixels {
		t.pixels[i].SubInPlace(other.pixels[i])
	}
	t.Dirty = true
}

// MulScalarInPlace multiplies every pixel's channels by f, with saturation.
func (t *Tile) MulScalarInPlace(f float64) {
	for i := range t.pixels {
		t.pixels[i].MulScalarInPlace(f)
	}
	t.Dirty = true
}

// Pixels returns the tile's backing pixel slice in row-major order, length
// TilePixelCount. Filter plugins operate directly on this slice.
func (t *Tile) Pixels() []Pixel {
	return t.pixels[:]
}
