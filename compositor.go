package paintcore

import "github.com/inkforge/paintcore/internal/blend"

// blendPixel returns src composited over dst, using mode and opacity, per
// the engine's five-step straight-alpha Porter-Duff "over" algorithm:
//
//  1. srcA = S.a/65535 * alpha; if srcA <= 0, no-op.
//  2. dstA = D.a/65535.
//  3. per-channel rc = f_M(dc, sc) for each of r, g, b.
//  4. outA = srcA + dstA*(1-srcA).
//  5. D.c = (rc*srcA + dc*dstA*(1-srcA)) / outA, D.a = outA, both clamped.
func blendPixel(dst Pixel, src Pixel, mode BlendMode, opacity float64) Pixel {
	sa := normalized(src.A) * opacity
	if sa <= 0 {
		return dst
	}

	r, g, b, a := blend.Over(mode,
		normalized(dst.R), normalized(dst.G), normalized(dst.B), normalized(dst.A),
		normalized(src.R), normalized(src.G), normalized(src.B), normalized(src.A),
		opacity,
	)

	return Pixel{R: denormalize(r), G: denormalize(g), B: denormalize(b), A: denormalize(a)}
}

// renderGridOnto composites src onto dst at pixel offset (dx, dy), covering
// exactly src's logical width/height (both grids are assumed to share the
// canvas's current size, per the Canvas invariant).
func renderGridOnto(dst, src *TileGrid, dx, dy int, mode BlendMode, opacity float64) {
	renderGridRowsOnto(dst, src, dx, dy, mode, opacity, 0, src.Height())
}

// renderGridRowsOnto is renderGridOnto restricted to source rows
// [yStart, yEnd). Splitting a single layer's composite across disjoint,
// tile-aligned row bands is what lets Canvas.RenderTo fan a layer out
// across its worker pool without two workers ever touching the same
// destination tile.
func renderGridRowsOnto(dst, src *TileGrid, dx, dy int, mode BlendMode, opacity float64, yStart, yEnd int) {
	w := src.Width()
	for y := yStart; y < yEnd; y++ {
		for x := 0; x < w; x++ {
			s := src.GetPixel(x, y)
			if s.A == 0 {
				continue
			}
			d := dst.GetPixel(x+dx, y+dy)
			dst.SetPixel(x+dx, y+dy, blendPixel(d, s, mode, opacity))
		}
	}
}
