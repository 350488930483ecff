package filter

import "testing"

func solidBuffer(w, h int, p Pixel) []Pixel {
	buf := make([]Pixel, w*h)
	for i := range buf {
		buf[i] = p
	}
	return buf
}

func TestGaussianBlurSolidColorIsUnchanged(t *testing.T) {
	p := Pixel{R: 40000, G: 20000, B: 10000, A: 65535}
	buf := solidBuffer(8, 8, p)

	GaussianBlur(buf, 8, 8, 2.0)

	for i, got := range buf {
		if got != p {
			t.Fatalf("pixel %d = %+v, want unchanged %+v (blurring a solid field is a no-op)", i, got, p)
		}
	}
}

func TestGaussianBlurZeroSigmaIsIdentity(t *testing.T) {
	buf := make([]Pixel, 16)
	for i := range buf {
		buf[i] = Pixel{R: uint16(i * 100), A: 65535}
	}
	before := make([]Pixel, len(buf))
	copy(before, buf)

	GaussianBlur(buf, 4, 4, 0)

	for i := range buf {
		if buf[i] != before[i] {
			t.Errorf("pixel %d changed under sigma=0: got %+v, want %+v", i, buf[i], before[i])
		}
	}
}

func TestGaussianBlurSmoothsSharpEdge(t *testing.T) {
	w, h := 16, 16
	buf := make([]Pixel, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < w/2 {
				buf[y*w+x] = Pixel{R: 0, A: 65535}
			} else {
				buf[y*w+x] = Pixel{R: 65535, A: 65535}
			}
		}
	}

	GaussianBlur(buf, w, h, 3.0)

	mid := buf[8*w+w/2]
	if mid.R == 0 || mid.R == 65535 {
		t.Errorf("pixel at the sharp boundary should be blurred to an intermediate value, got R=%d", mid.R)
	}
}

func TestGaussianBlurMismatchedLengthIsNoop(t *testing.T) {
	buf := make([]Pixel, 4)
	before := make([]Pixel, len(buf))
	copy(before, buf)

	GaussianBlur(buf, 10, 10, 2.0) // length mismatch: 4 != 100

	for i := range buf {
		if buf[i] != before[i] {
			t.Error("mismatched buffer length should be a no-op")
		}
	}
}
