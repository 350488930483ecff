package paintcore

import "testing"

func TestBlendPixelNormalFullOpacityReplacesDest(t *testing.T) {
	dst := Pixel{R: 100, G: 100, B: 100, A: 65535}
	src := Pixel{R: 65535, G: 0, B: 0, A: 65535}

	got := blendPixel(dst, src, BlendNormal, 1.0)
	if got != src {
		t.Errorf("Normal blend at opacity=1, src.a=1 should replace dest exactly: got %+v, want %+v", got, src)
	}
}

func TestBlendPixelMultiplyMidGray(t *testing.T) {
	dst := Pixel{R: 32768, G: 32768, B: 32768, A: 65535}
	src := Pixel{R: 32768, G: 32768, B: 32768, A: 65535}

	got := blendPixel(dst, src, BlendMultiply, 1.0)

	// 0.5 * 0.5 = 0.25 -> ~16384, allow quantization slack.
	if abs16(int(got.R)-16384) > 2 {
		t.Errorf("Multiply(0.5,0.5).R = %d, want ~16384", got.R)
	}
	if got.A != 65535 {
		t.Errorf("Multiply result alpha = %d, want 65535", got.A)
	}
}

func TestBlendPixelZeroSrcAlphaIsNoop(t *testing.T) {
	dst := Pixel{R: 10, G: 20, B: 30, A: 40}
	src := Pixel{R: 65535, G: 65535, B: 65535, A: 0}

	got := blendPixel(dst, src, BlendNormal, 1.0)
	if got != dst {
		t.Errorf("zero src alpha should be a no-op: got %+v, want %+v", got, dst)
	}
}

func TestBlendPixelZeroOpacityIsNoop(t *testing.T) {
	dst := Pixel{R: 10, G: 20, B: 30, A: 40}
	src := Pixel{R: 65535, G: 65535, B: 65535, A: 65535}

	got := blendPixel(dst, src, BlendNormal, 0)
	if got != dst {
		t.Errorf("zero opacity should be a no-op: got %+v, want %+v", got, dst)
	}
}

func TestBlendPixelClosure(t *testing.T) {
	modes := []BlendMode{
		BlendNormal, BlendMultiply, BlendScreen, BlendOverlay, BlendSoftLight,
		BlendHardLight, BlendColorDodge, BlendColorBurn, BlendDarken, BlendLighten,
		BlendDifference, BlendExclusion,
	}
	dst := Pixel{R: 12345, G: 54321, B: 1000, A: 40000}
	src := Pixel{R: 60000, G: 2000, B: 33000, A: 50000}

	for _, m := range modes {
		got := blendPixel(dst, src, m, 0.73)
		// uint16 fields are inherently within [0,65535]; this asserts the
		// blend doesn't produce a NaN-derived wraparound via denormalize.
		if got.R > 65535 || got.G > 65535 || got.B > 65535 || got.A > 65535 {
			t.Errorf("mode %v produced out-of-range pixel %+v", m, got)
		}
	}
}

func TestRenderGridOntoSkipsTransparentSource(t *testing.T) {
	dst := NewTileGrid(4, 4)
	dst.Fill(Pixel{R: 1, G: 2, B: 3, A: 65535})

	src := NewTileGrid(4, 4)
	src.Fill(Pixel{R: 0, G: 0, B: 0, A: 0})

	renderGridOnto(dst, src, 0, 0, BlendNormal, 1.0)

	if got := dst.GetPixel(0, 0); got.R != 1 {
		t.Errorf("transparent source should not alter dest, got %+v", got)
	}
}

func TestRenderGridOntoOffset(t *testing.T) {
	dst := NewTileGrid(8, 8)
	src := NewTileGrid(4, 4)
	src.Fill(Pixel{R: 65535, G: 0, B: 0, A: 65535})

	renderGridOnto(dst, src, 2, 2, BlendNormal, 1.0)

	if got := dst.GetPixel(2, 2); got.R != 65535 {
		t.Errorf("dst(2,2) = %+v, want opaque red", got)
	}
	if got := dst.GetPixel(0, 0); got != DefaultPixel {
		t.Errorf("dst(0,0) should be untouched default, got %+v", got)
	}
}

func abs16(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
