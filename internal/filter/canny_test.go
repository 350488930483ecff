package filter

import "testing"

func TestCannyEdgesSolidColorHasNoEdges(t *testing.T) {
	w, h := 20, 20
	buf := solidBuffer(w, h, Pixel{R: 30000, G: 30000, B: 30000, A: 65535})

	edges := CannyEdges(buf, w, h, 0.1, 0.3)

	for i, e := range edges {
		if e {
			t.Fatalf("solid color field should have no edges, found one at index %d", i)
		}
	}
}

func TestCannyEdgesDetectsSharpBoundary(t *testing.T) {
	w, h := 32, 32
	buf := make([]Pixel, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < w/2 {
				buf[y*w+x] = Pixel{R: 0, G: 0, B: 0, A: 65535}
			} else {
				buf[y*w+x] = Pixel{R: 65535, G: 65535, B: 65535, A: 65535}
			}
		}
	}

	edges := CannyEdges(buf, w, h, 0.1, 0.3)

	found := false
	for y := 2; y < h-2; y++ {
		for x := w/2 - 2; x <= w/2+2; x++ {
			if edges[y*w+x] {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected an edge to be detected near the sharp boundary")
	}
}

func TestCannyEdgesTooSmallBufferIsEmpty(t *testing.T) {
	buf := solidBuffer(2, 2, Pixel{A: 65535})
	edges := CannyEdges(buf, 2, 2, 0.1, 0.3)
	for _, e := range edges {
		if e {
			t.Error("too-small buffer should produce no edges")
		}
	}
}

func TestDilateEdgesGrowsMask(t *testing.T) {
	w, h := 10, 10
	edges := make([]bool, w*h)
	edges[5*w+5] = true

	dilated := DilateEdges(edges, w, h, 1)

	count := 0
	for _, e := range dilated {
		if e {
			count++
		}
	}
	if count <= 1 {
		t.Errorf("dilation with radius 1 should grow a single pixel to a neighborhood, got %d set", count)
	}
}
