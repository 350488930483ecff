package paintcore

import "testing"

func TestDrawBrushStrokeOpaqueRedDot(t *testing.T) {
	// Scenario S1.
	grid := NewTileGrid(512, 512)
	color := Pixel{R: 65535, G: 0, B: 0, A: 65535}

	drawBrushStroke(grid, []Point{{100, 100}}, 2, 1.0, color)

	if got := grid.GetPixel(100, 100); got != color {
		t.Errorf("center pixel = %+v, want %+v", got, color)
	}
	for _, p := range []Point{{99, 100}, {101, 100}, {100, 99}, {100, 101}} {
		if got := grid.GetPixel(p.X, p.Y); got != DefaultPixel {
			t.Errorf("pixel %+v = %+v, want unchanged default %+v", p, got, DefaultPixel)
		}
	}
}

func TestEraseBrushStrokeOnOpaque(t *testing.T) {
	// Scenario S2.
	grid := NewTileGrid(256, 256)
	grid.Fill(Pixel{R: 0, G: 0, B: 0, A: 65535})

	eraseBrushStroke(grid, []Point{{50, 50}}, 4, 1.0)

	if got := grid.GetPixel(50, 50); got.A != 0 {
		t.Errorf("center alpha = %d, want 0", got.A)
	}
	if got := grid.GetPixel(52, 50); got.A != 65535 {
		t.Errorf("edge alpha (d=r) = %d, want unchanged 65535", got.A)
	}
	if got := grid.GetPixel(50, 50); got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("RGB should be untouched by erase, got %+v", got)
	}
}

func TestDrawBrushStrokeIdempotentAtFullOpacity(t *testing.T) {
	grid := NewTileGrid(16, 16)
	color := Pixel{R: 40000, G: 20000, B: 10000, A: 65535}

	drawBrushStroke(grid, []Point{{8, 8}}, 2, 1.0, color)
	once := grid.GetPixel(8, 8)
	drawBrushStroke(grid, []Point{{8, 8}}, 2, 1.0, color)
	twice := grid.GetPixel(8, 8)

	if once != twice {
		t.Errorf("drawing the same point twice at opacity=1 should be idempotent: %+v vs %+v", once, twice)
	}
	if once != color {
		t.Errorf("first draw at d=0,w=1 should exactly replace: got %+v want %+v", once, color)
	}
}

func TestEraseBrushStrokeMonotonicAlpha(t *testing.T) {
	grid := NewTileGrid(16, 16)
	grid.Fill(Pixel{A: 65535})

	eraseBrushStroke(grid, []Point{{8, 8}}, 1, 0.5) // r=0, w=opacity=0.5 at center
	afterOne := grid.GetPixel(8, 8).A

	want := denormalize(1.0 * (1 - 0.5))
	if diff := abs16(int(afterOne) - int(want)); diff > 1 {
		t.Errorf("alpha after one erase = %v, want ~%v", afterOne, want)
	}

	eraseBrushStroke(grid, []Point{{8, 8}}, 1, 0.5)
	afterTwo := grid.GetPixel(8, 8).A
	wantTwo := denormalize(normalized(want) * (1 - 0.5))
	if diff := abs16(int(afterTwo) - int(wantTwo)); diff > 1 {
		t.Errorf("alpha after two erases = %v, want ~%v (old*(1-w)^2)", afterTwo, wantTwo)
	}
}

func TestStampDiskSkipsOutOfBounds(t *testing.T) {
	grid := NewTileGrid(4, 4)
	color := Pixel{R: 65535, A: 65535}

	// Center stamp near corner (0,0); most of the disk falls out of bounds.
	drawBrushStroke(grid, []Point{{0, 0}}, 6, 1.0, color)

	if got := grid.GetPixel(0, 0); got != color {
		t.Errorf("in-bounds center should still be painted, got %+v", got)
	}
}

func TestDrawBrushStrokeAppliesMultiplePointsInOrder(t *testing.T) {
	grid := NewTileGrid(16, 16)

	drawBrushStroke(grid, []Point{{4, 4}, {10, 10}}, 2, 1.0, Pixel{R: 65535, A: 65535})

	if got := grid.GetPixel(4, 4); got.R != 65535 {
		t.Errorf("first point not painted, got %+v", got)
	}
	if got := grid.GetPixel(10, 10); got.R != 65535 {
		t.Errorf("second point not painted, got %+v", got)
	}
}
