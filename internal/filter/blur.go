package filter

// GaussianBlur approximates a Gaussian blur of the given sigma (clamped
// to [0.1, 50.0]) in place over a single tile's w*h pixel buffer, via
// three successive box-filter passes whose widths are derived from sigma
// by Kovesi's method (see boxPassSizes). Each pass is itself separable:
// a horizontal box pass followed by a vertical one. Edge pixels within
// the tile are handled by clamped (edge-extended) sampling; there is no
// cross-tile halo exchange, so tiles processed independently will show
// seams at their boundaries for any sigma > 0 — a documented limitation
// of per-tile filtering.
func GaussianBlur(buf []Pixel, w, h int, sigma float64) {
	if len(buf) != w*h || w <= 0 || h <= 0 {
		return
	}
	sigma = clampFloat(sigma, 0.1, 50.0)

	sizes := boxPassSizes(sigma)
	tmp := make([]Pixel, w*h)
	for _, size := range sizes {
		if size <= 1 {
			continue
		}
		boxBlurHorizontal(buf, tmp, w, h, size)
		boxBlurVertical(tmp, buf, w, h, size)
	}
}

// boxBlurHorizontal runs a 1D box blur of the given odd size along each
// row of src, writing into dst. Samples past the row's edges are clamped
// to the nearest edge pixel.
func boxBlurHorizontal(src, dst []Pixel, w, h, size int) {
	half := size / 2
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			var r, g, b, a float64
			for k := -half; k <= half; k++ {
				sx := clampInt(x+k, 0, w-1)
				p := src[row+sx]
				r += float64(p.R)
				g += float64(p.G)
				b += float64(p.B)
				a += float64(p.A)
			}
			n := float64(size)
			dst[row+x] = Pixel{
				R: clampU16(r / n),
				G: clampU16(g / n),
				B: clampU16(b / n),
				A: clampU16(a / n),
			}
		}
	}
}

// boxBlurVertical runs a 1D box blur of the given odd size along each
// column of src, writing into dst. Samples past the column's edges are
// clamped to the nearest edge pixel.
func boxBlurVertical(src, dst []Pixel, w, h, size int) {
	half := size / 2
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			var r, g, b, a float64
			for k := -half; k <= half; k++ {
				sy := clampInt(y+k, 0, h-1)
				p := src[sy*w+x]
				r += float64(p.R)
				g += float64(p.G)
				b += float64(p.B)
				a += float64(p.A)
			}
			n := float64(size)
			dst[y*w+x] = Pixel{
				R: clampU16(r / n),
				G: clampU16(g / n),
				B: clampU16(b / n),
				A: clampU16(a / n),
			}
		}
	}
}
