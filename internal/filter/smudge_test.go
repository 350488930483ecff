package filter

import "testing"

func TestSmudgeNilStateIsNoop(t *testing.T) {
	buf := solidBuffer(8, 8, Pixel{R: 100, A: 65535})
	before := make([]Pixel, len(buf))
	copy(before, buf)

	Smudge(buf, 8, 8, nil, 0.5, 3, "normal")

	for i := range buf {
		if buf[i] != before[i] {
			t.Error("nil state should be a no-op")
		}
	}
}

func TestSmudgeFirstCallPrimesWithoutBlending(t *testing.T) {
	w, h := 16, 16
	buf := solidBuffer(w, h, Pixel{R: 1000, A: 65535})
	state := &SmudgeState{}

	before := make([]Pixel, len(buf))
	copy(before, buf)

	Smudge(buf, w, h, state, 0.8, 4, "normal")

	for i := range buf {
		if buf[i] != before[i] {
			t.Error("first smudge call should only prime the buffer, not blend yet")
		}
	}
	if !state.primed {
		t.Error("state should be primed after first call")
	}
}

func TestSmudgeSecondCallBlendsCarriedColor(t *testing.T) {
	w, h := 16, 16
	buf := solidBuffer(w, h, Pixel{R: 0, A: 65535})
	state := &SmudgeState{}

	Smudge(buf, w, h, state, 1.0, 4, "normal") // prime with R=0

	for i := range buf {
		buf[i] = Pixel{R: 65535, A: 65535} // simulate a fresh, differently-colored tile
	}

	Smudge(buf, w, h, state, 1.0, 4, "normal")

	center := buf[(h/2)*w+w/2]
	if center.R >= 65535 {
		t.Errorf("second smudge call should pull the carried color toward R=0, got %d", center.R)
	}
}
