package filter

import "testing"

func TestInpaintFillsMaskedDiskFromSurroundingColor(t *testing.T) {
	w, h := 32, 32
	p := Pixel{R: 10000, G: 20000, B: 30000, A: 65535}
	buf := solidBuffer(w, h, p)

	Inpaint(buf, w, h, 5, "telea")

	center := buf[(h/2)*w+w/2]
	if center.R < 9000 || center.R > 11000 {
		t.Errorf("inpainted center of a solid field should stay near the surrounding color, got %+v", center)
	}
}

func TestInpaintAlgorithmVariants(t *testing.T) {
	w, h := 16, 16
	for _, alg := range []string{"telea", "navier_stokes", "advanced"} {
		p := Pixel{R: 5000, G: 5000, B: 5000, A: 65535}
		buf := solidBuffer(w, h, p)
		Inpaint(buf, w, h, 3, alg)
		// Should not panic and should leave a fully-defined buffer.
		if len(buf) != w*h {
			t.Fatalf("algorithm %q corrupted buffer length", alg)
		}
	}
}

func TestInpaintMismatchedLengthIsNoop(t *testing.T) {
	buf := make([]Pixel, 4)
	before := make([]Pixel, len(buf))
	copy(before, buf)

	Inpaint(buf, 10, 10, 3, "telea")

	for i := range buf {
		if buf[i] != before[i] {
			t.Error("mismatched buffer length should be a no-op")
		}
	}
}
