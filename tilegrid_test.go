package paintcore

import (
	"math/rand"
	"testing"
)

func TestTileGridTileCounts(t *testing.T) {
	tests := []struct {
		w, h       int
		wantX, wantY int
	}{
		{256, 256, 1, 1},
		{257, 256, 2, 1},
		{512, 600, 2, 3},
		{1, 1, 1, 1},
	}
	for _, tt := range tests {
		g := NewTileGrid(tt.w, tt.h)
		if g.TileCountX() != tt.wantX || g.TileCountY() != tt.wantY {
			t.Errorf("NewTileGrid(%d,%d) tiles = (%d,%d), want (%d,%d)",
				tt.w, tt.h, g.TileCountX(), g.TileCountY(), tt.wantX, tt.wantY)
		}
	}
}

func TestTileGridNonPositiveDimensionsIsEmpty(t *testing.T) {
	g := NewTileGrid(0, 10)
	if g.TileCountX() != 0 || g.TileCountY() != 0 {
		t.Error("non-positive dimension should produce an empty grid")
	}
}

func TestTileGridPixelRoundTrip(t *testing.T) {
	g := NewTileGrid(512, 512)
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		x, y := r.Intn(512), r.Intn(512)
		p := Pixel{R: uint16(r.Intn(65536)), G: uint16(r.Intn(65536)), B: uint16(r.Intn(65536)), A: uint16(r.Intn(65536))}
		g.SetPixel(x, y, p)
		if got := g.GetPixel(x, y); got != p {
			t.Fatalf("round-trip at (%d,%d): got %+v, want %+v", x, y, got, p)
		}
	}
}

func TestTileGridOutOfRangeAccess(t *testing.T) {
	g := NewTileGrid(10, 10)
	if got := g.GetPixel(-1, 0); got != DefaultPixel {
		t.Errorf("out-of-range read = %+v, want default", got)
	}
	g.SetPixel(100, 100, Pixel{R: 1}) // must not panic
}

func TestTileGridCloneIsDeep(t *testing.T) {
	g := NewTileGrid(300, 300)
	g.SetPixel(10, 10, Pixel{R: 100})

	clone := g.Clone()
	if got := clone.GetPixel(10, 10); got.R != 100 {
		t.Errorf("clone pixel = %+v, want R=100", got)
	}

	clone.SetPixel(10, 10, Pixel{R: 200})
	if got := g.GetPixel(10, 10); got.R != 100 {
		t.Error("mutating the clone must not affect the original")
	}
}

func TestTileGridEqual(t *testing.T) {
	a := NewTileGrid(300, 300)
	b := NewTileGrid(300, 300)
	if !a.Equal(b) {
		t.Error("two freshly constructed grids of the same size should be equal")
	}
	b.SetPixel(5, 5, Pixel{R: 1})
	if a.Equal(b) {
		t.Error("grids with different pixels should not be equal")
	}
}

func TestTileGridMatrixRoundTrip(t *testing.T) {
	g := NewTileGrid(300, 260)
	r := rand.New(rand.NewSource(2))
	for y := 0; y < g.Height(); y += 7 {
		for x := 0; x < g.Width(); x += 11 {
			g.SetPixel(x, y, Pixel{
				R: uint16(r.Intn(65536)), G: uint16(r.Intn(65536)),
				B: uint16(r.Intn(65536)), A: uint16(r.Intn(65536)),
			})
		}
	}

	buf := g.ToMatrix()

	roundTripped := NewTileGrid(300, 260)
	roundTripped.FromMatrix(buf)

	if !g.Equal(roundTripped) {
		t.Error("from_matrix(to_matrix(g)) should equal g pixel-for-pixel")
	}
}

func TestTileGridDirtyTracking(t *testing.T) {
	g := NewTileGrid(600, 600)
	g.ClearDirty()

	g.SetPixel(10, 10, Pixel{R: 1})
	g.SetPixel(500, 500, Pixel{R: 1})

	dirty := g.DirtyTiles()
	if len(dirty) != 2 {
		t.Errorf("len(DirtyTiles()) = %d, want 2", len(dirty))
	}

	g.ClearDirty()
	if len(g.DirtyTiles()) != 0 {
		t.Error("ClearDirty should clear all dirty flags")
	}
}

func TestTileGridDirtyTilesRowMajorOrder(t *testing.T) {
	g := NewTileGrid(TileSize*2, TileSize*2)
	g.ClearDirty()
	g.TileAt(1, 0).Dirty = true
	g.TileAt(0, 0).Dirty = true
	g.TileAt(1, 1).Dirty = true

	dirty := g.DirtyTiles()
	if len(dirty) != 3 {
		t.Fatalf("len(dirty) = %d, want 3", len(dirty))
	}
	if dirty[0].X != 0 || dirty[0].Y != 0 {
		t.Error("dirty tiles should be returned in row-major order")
	}
	if dirty[1].X != TileSize || dirty[1].Y != 0 {
		t.Error("dirty tiles should be returned in row-major order")
	}
}
