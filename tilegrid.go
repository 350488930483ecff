package paintcore

// TileGrid is a logical image of width W and height H, tiled into
// ceil(W/TileSize) x ceil(H/TileSize) tiles stored contiguously in
// row-major order. The grid is always fully populated — there is no
// sparse representation.
type TileGrid struct {
	width, height int
	tilesX, tilesY int
	tiles         []*Tile
}

// NewTileGrid creates a grid covering width x height pixels, fully
// allocated with default-colored tiles. Non-positive dimensions produce an
// empty (zero-tile) grid.
func NewTileGrid(width, height int) *TileGrid {
	g := &TileGrid{}
	g.alloc(width, height)
	return g
}

func (g *TileGrid) alloc(width, height int) {
	if width <= 0 || height <= 0 {
		g.width, g.height = 0, 0
		g.tilesX, g.tilesY = 0, 0
		g.tiles = nil
		return
	}

	g.width, g.height = width, height
	g.tilesX = (width + TileSize - 1) / TileSize
	g.tilesY = (height + TileSize - 1) / TileSize

	g.tiles = make([]*Tile, g.tilesX*g.tilesY)
	for ty := 0; ty < g.tilesY; ty++ {
		for tx := 0; tx < g.tilesX; tx++ {
			g.tiles[ty*g.tilesX+tx] = newTile(tx*TileSize, ty*TileSize)
		}
	}
}

// Width returns the grid's logical width in pixels.
func (g *TileGrid) Width() int { return g.width }

// Height returns the grid's logical height in pixels.
func (g *TileGrid) Height() int { return g.height }

// TileCountX returns the number of tile columns: ceil(Width/TileSize).
func (g *TileGrid) TileCountX() int { return g.tilesX }

// TileCountY returns the number of tile rows: ceil(Height/TileSize).
func (g *TileGrid) TileCountY() int { return g.tilesY }

// TileAt returns the tile at tile-grid coordinates (tx, ty), or nil if out
// of range.
func (g *TileGrid) TileAt(tx, ty int) *Tile {
	if tx < 0 || tx >= g.tilesX || ty < 0 || ty >= g.tilesY {
		return nil
	}
	return g.tiles[ty*g.tilesX+tx]
}

// tileForPixel returns the tile containing pixel (x, y) and the pixel's
// local coordinates within that tile, or nil if (x, y) is out of range.
func (g *TileGrid) tileForPixel(x, y int) (*Tile, int, int) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return nil, 0, 0
	}
	tx, ty := x/TileSize, y/TileSize
	return g.tiles[ty*g.tilesX+tx], x % TileSize, y % TileSize
}

// GetPixel reads the pixel at canvas-space coordinates (x, y). Out-of-range
// coordinates yield the default pixel.
func (g *TileGrid) GetPixel(x, y int) Pixel {
	tile, lx, ly := g.tileForPixel(x, y)
	if tile == nil {
		return DefaultPixel
	}
	return tile.GetPixel(lx, ly)
}

// SetPixel writes the pixel at canvas-space coordinates (x, y). Out-of-range
// writes are silently discarded.
func (g *TileGrid) SetPixel(x, y int, p Pixel) {
	tile, lx, ly := g.tileForPixel(x, y)
	if tile == nil {
		return
	}
	tile.SetPixel(lx, ly, p)
}

// Clear resets every tile to the default pixel and marks all tiles dirty.
func (g *TileGrid) Clear() {
	for _, t := range g.tiles {
		t.Clear()
	}
}

// Fill sets every pixel in the grid to color and marks all tiles dirty.
func (g *TileGrid) Fill(p Pixel) {
	for _, t := range g.tiles {
		t.Fill(p)
	}
}

// DirtyTiles returns references to every tile whose dirty flag is set, in
// row-major tile order.
func (g *TileGrid) DirtyTiles() []*Tile {
	result := make([]*Tile, 0, len(g.tiles))
	for _, t := range g.tiles {
		if t.Dirty {
			result = append(result, t)
		}
	}
	return result
}

// ClearDirty resets the dirty flag on every tile.
func (g *TileGrid) ClearDirty() {
	for _, t := range g.tiles {
		t.Dirty = false
	}
}

// AllTiles returns every tile in row-major order. The returned slice shares
// storage with the grid and should not be appended to.
func (g *TileGrid) AllTiles() []*Tile {
	return g.tiles
}

// ForEach calls fn for each tile in row-major order.
func (g *TileGrid) ForEach(fn func(*Tile)) {
	for _, t := range g.tiles {
		fn(t)
	}
}

// Clone returns a deep copy of the grid: every tile's pixel data (and dirty
// flag) is duplicated.
func (g *TileGrid) Clone() *TileGrid {
	clone := &TileGrid{
		width: g.width, height: g.height,
		tilesX: g.tilesX, tilesY: g.tilesY,
		tiles: make([]*Tile, len(g.tiles)),
	}
	for i, t := range g.tiles {
		clone.tiles[i] = t.Clone()
	}
	return clone
}

// Equal reports whether two grids hold identical pixel data. Dimensions
// must match; dirty flags are not compared.
func (g *TileGrid) Equal(other *TileGrid) bool {
	if other == nil {
		return false
	}
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, t := range g.tiles {
		if !t.Equal(other.tiles[i]) {
			return false
		}
	}
	return true
}

// ToMatrix converts the grid to a flat BGRA16 byte buffer: channel order
// B, G, R, A, row-major, pitch = 4*2*Width bytes. Each channel is written
// big-endian-free as two little-endian bytes (matching a platform's native
// uint16 layout is not implied by the format; callers decode via the pair
// of bytes per channel that ToMatrix/FromMatrix agree on).
func (g *TileGrid) ToMatrix() []byte {
	buf := make([]byte, g.width*g.height*4*2)
	pitch := g.width * 4 * 2
	for y := 0; y < g.height; y++ {
		row := buf[y*pitch : (y+1)*pitch]
		for x := 0; x < g.width; x++ {
			p := g.GetPixel(x, y)
			off := x * 8
			putU16(row[off:], p.B)
			putU16(row[off+2:], p.G)
			putU16(row[off+4:], p.R)
			putU16(row[off+6:], p.A)
		}
	}
	return buf
}

// FromMatrix populates the grid from a BGRA16 buffer produced by ToMatrix
// (or an equivalent external producer using the same layout). The buffer
// must be at least Height*pitch bytes; extra bytes are ignored.
func (g *TileGrid) FromMatrix(buf []byte) {
	pitch := g.width * 4 * 2
	for y := 0; y < g.height; y++ {
		rowStart := y * pitch
		if rowStart+pitch > len(buf) {
			return
		}
		row := buf[rowStart : rowStart+pitch]
		for x := 0; x < g.width; x++ {
			off := x * 8
			b := getU16(row[off:])
			gc := getU16(row[off+2:])
			r := getU16(row[off+4:])
			a := getU16(row[off+6:])
			g.SetPixel(x, y, Pixel{R: r, G: gc, B: b, A: a})
		}
	}
}

func putU16(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

func getU16(b []byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}
