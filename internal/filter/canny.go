package filter

import "math"

// CannyEdges computes a binary edge map for buf using the Canny method:
// grayscale conversion, a light Gaussian smoothing pass, Sobel gradient
// magnitude/direction, non-maximum suppression, and double-threshold
// hysteresis. The result is a w*h slice where true marks an edge pixel.
//
// This is the shared edge-detection helper used by inpaint's "advanced"
// algorithm and smudge's "smart" mode.
func CannyEdges(buf []Pixel, w, h int, lowThreshold, highThreshold float64) []bool {
	edges := make([]bool, w*h)
	if len(buf) != w*h || w < 3 || h < 3 {
		return edges
	}

	gray := make([]float64, w*h)
	for i, p := range buf {
		gray[i] = grayscaleDiff(float64(p.R), float64(p.G), float64(p.B)) / 65535
	}

	smoothed := gaussianSmoothGray(gray, w, h)

	mag := make([]float64, w*h)
	dir := make([]float64, w*h)
	sobel(smoothed, w, h, mag, dir)

	suppressed := nonMaxSuppress(mag, dir, w, h)

	hysteresis(suppressed, w, h, lowThreshold, highThreshold, edges)
	return edges
}

func gaussianSmoothGray(gray []float64, w, h int) []float64 {
	// 3x3 approximate Gaussian kernel, separable into [1,2,1]/4.
	tmp := make([]float64, w*h)
	out := make([]float64, w*h)

	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			l := gray[row+clampInt(x-1, 0, w-1)]
			c := gray[row+x]
			r := gray[row+clampInt(x+1, 0, w-1)]
			tmp[row+x] = (l + 2*c + r) / 4
		}
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			t := tmp[clampInt(y-1, 0, h-1)*w+x]
			c := tmp[y*w+x]
			b := tmp[clampInt(y+1, 0, h-1)*w+x]
			out[y*w+x] = (t + 2*c + b) / 4
		}
	}
	return out
}

func sobel(gray []float64, w, h int, mag, dir []float64) {
	at := func(x, y int) float64 {
		return gray[clampInt(y, 0, h-1)*w+clampInt(x, 0, w-1)]
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gx := -at(x-1, y-1) - 2*at(x-1, y) - at(x-1, y+1) +
				at(x+1, y-1) + 2*at(x+1, y) + at(x+1, y+1)
			gy := -at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1) +
				at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1)
			idx := y*w + x
			mag[idx] = math.Hypot(gx, gy)
			dir[idx] = math.Atan2(gy, gx)
		}
	}
}

// nonMaxSuppress thins gradient ridges down to one-pixel width by
// comparing each pixel's magnitude against its two neighbors along the
// local gradient direction, rounded to the nearest of 4 compass octants.
func nonMaxSuppress(mag, dir []float64, w, h int) []float64 {
	out := make([]float64, w*h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			idx := y*w + x
			angle := dir[idx] * 180 / math.Pi
			if angle < 0 {
				angle += 180
			}

			var n1, n2 float64
			switch {
			case angle < 22.5 || angle >= 157.5:
				n1, n2 = mag[idx-1], mag[idx+1]
			case angle < 67.5:
				n1, n2 = mag[idx-w-1], mag[idx+w+1]
			case angle < 112.5:
				n1, n2 = mag[idx-w], mag[idx+w]
			default:
				n1, n2 = mag[idx-w+1], mag[idx+w-1]
			}

			if mag[idx] >= n1 && mag[idx] >= n2 {
				out[idx] = mag[idx]
			}
		}
	}
	return out
}

// hysteresis classifies suppressed gradient magnitudes into strong edges
// (>= high), weak edges (>= low), and non-edges, then keeps weak edges
// only when connected to a strong edge via an 8-neighborhood flood fill.
func hysteresis(suppressed []float64, w, h int, low, high float64, edges []bool) {
	strong := make([]bool, w*h)
	weak := make([]bool, w*h)
	for i, v := range suppressed {
		if v >= high {
			strong[i] = true
		} else if v >= low {
			weak[i] = true
		}
	}

	stack := make([]int, 0, w*h/4)
	for i, s := range strong {
		if s {
			edges[i] = true
			stack = append(stack, i)
		}
	}

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := idx%w, idx/w
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := x+dx, y+dy
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				nIdx := ny*w + nx
				if weak[nIdx] && !edges[nIdx] {
					edges[nIdx] = true
					stack = append(stack, nIdx)
				}
			}
		}
	}
}

// DilateEdges grows a binary edge map by radius pixels using a square
// structuring element.
func DilateEdges(edges []bool, w, h, radius int) []bool {
	out := make([]bool, len(edges))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !edges[y*w+x] {
				continue
			}
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					out[ny*w+nx] = true
				}
			}
		}
	}
	return out
}
