package paintcore

import "math"

// stampDisk applies fn to every in-bounds pixel within radius r of center
// (inclusive), computing each offset's weight as (1-d/r)*opacity — or
// opacity itself at the center when r == 0, since d/r is otherwise
// undefined. fn receives the target coordinates and the computed weight.
func stampDisk(grid *TileGrid, center Point, sizePixels float64, opacity float64, fn func(x, y int, w float64)) {
	r := int(math.Floor(sizePixels / 2))
	if r < 0 {
		r = 0
	}
	w, h := grid.Width(), grid.Height()

	for dy := -r; dy <= r; dy++ {
		y := center.Y + dy
		if y < 0 || y >= h {
			continue
		}
		for dx := -r; dx <= r; dx++ {
			x := center.X + dx
			if x < 0 || x >= w {
				continue
			}
			d := math.Hypot(float64(dx), float64(dy))
			if d > float64(r) {
				continue
			}
			var weight float64
			if r == 0 {
				weight = opacity
			} else {
				weight = (1 - d/float64(r)) * opacity
			}
			if weight <= 0 {
				continue
			}
			fn(x, y, weight)
		}
	}
}

// drawBrushStroke paints a union of disk stamps along points onto grid,
// blending color into each in-range pixel (including alpha) with weight
// w = (1-d/r)*opacity, per point, per offset. Points are applied in
// order; no interpolation along the polyline is performed.
func drawBrushStroke(grid *TileGrid, points []Point, size float64, opacity float64, color Pixel) {
	for _, p := range points {
		stampDisk(grid, p, size, opacity, func(x, y int, w float64) {
			d := grid.GetPixel(x, y)
			grid.SetPixel(x, y, Pixel{
				R: denormalize(normalized(d.R)*(1-w) + normalized(color.R)*w),
				G: denormalize(normalized(d.G)*(1-w) + normalized(color.G)*w),
				B: denormalize(normalized(d.B)*(1-w) + normalized(color.B)*w),
				A: denormalize(normalized(d.A)*(1-w) + normalized(color.A)*w),
			})
		})
	}
}

// eraseBrushStroke paints a union of disk stamps along points onto grid,
// scaling each in-range pixel's alpha by (1-w); RGB channels are left
// untouched.
func eraseBrushStroke(grid *TileGrid, points []Point, size float64, opacity float64) {
	for _, p := range points {
		stampDisk(grid, p, size, opacity, func(x, y int, w float64) {
			d := grid.GetPixel(x, y)
			d.A = denormalize(normalized(d.A) * (1 - w))
			grid.SetPixel(x, y, d)
		})
	}
}
