package paintcore

import "math"

// Named convenience colors, in the engine's native 16-bit straight-alpha
// Pixel representation.
var (
	Black       = Pixel{R: 0, G: 0, B: 0, A: 65535}
	White       = Pixel{R: 65535, G: 65535, B: 65535, A: 65535}
	Red         = Pixel{R: 65535, G: 0, B: 0, A: 65535}
	Green       = Pixel{R: 0, G: 65535, B: 0, A: 65535}
	Blue        = Pixel{R: 0, G: 0, B: 65535, A: 65535}
	Yellow      = Pixel{R: 65535, G: 65535, B: 0, A: 65535}
	Cyan        = Pixel{R: 0, G: 65535, B: 65535, A: 65535}
	Magenta     = Pixel{R: 65535, G: 0, B: 65535, A: 65535}
	Transparent = Pixel{R: 0, G: 0, B: 0, A: 0}
)

// HSL constructs a fully opaque Pixel from HSL values: h is hue in
// [0, 360), s is saturation in [0, 1], l is lightness in [0, 1].
func HSL(h, s, l float64) Pixel {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 1.0/6:
		r, g, b = c, x, 0
	case h < 2.0/6:
		r, g, b = x, c, 0
	case h < 3.0/6:
		r, g, b = 0, c, x
	case h < 4.0/6:
		r, g, b = 0, x, c
	case h < 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return Pixel{
		R: denormalize(r + m),
		G: denormalize(g + m),
		B: denormalize(b + m),
		A: 65535,
	}
}
