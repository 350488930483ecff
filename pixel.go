package paintcore

import "image/color"

// Pixel is a single straight-alpha (non-premultiplied) RGBA color with
// 16-bit-per-channel precision. Channel range is [0, 65535].
//
// The zero value is NOT the engine default color — use DefaultPixel (or
// Tile.Clear) to get opaque black, since the zero Pixel is fully
// transparent black, which is a meaningfully different color from the
// documented tile-clear default.
type Pixel struct {
	R, G, B, A uint16
}

// DefaultPixel is the default pixel value: opaque black.
var DefaultPixel = Pixel{R: 0, G: 0, B: 0, A: 65535}

// NRGBA64 converts the pixel to the standard library's straight-alpha
// 16-bit color model, which is bit-for-bit the same representation this
// engine uses internally. This gives free interop with image.Image/
// image/color consumers without pulling in any codec or color-management
// dependency.
func (p Pixel) NRGBA64() color.NRGBA64 {
	return color.NRGBA64{R: p.R, G: p.G, B: p.B, A: p.A}
}

// PixelFromNRGBA64 converts from the standard library's straight-alpha
// 16-bit color model.
func PixelFromNRGBA64(c color.NRGBA64) Pixel {
	return Pixel{R: c.R, G: c.G, B: c.B, A: c.A}
}

// addChannel saturates a+b to uint16 range without wrapping.
func addChannel(a, b uint16) uint16 {
	sum := uint32(a) + uint32(b)
	if sum > 65535 {
		return 65535
	}
	return uint16(sum)
}

// subChannel saturates a-b to uint16 range without wrapping.
func subChannel(a, b uint16) uint16 {
	if b > a {
		return 0
	}
	return a - b
}

// mulChannelScalar saturates a*f to uint16 range without wrapping.
func mulChannelScalar(a uint16, f float64) uint16 {
	v := float64(a) * f
	if v <= 0 {
		return 0
	}
	if v >= 65535 {
		return 65535
	}
	return uint16(v + 0.5)
}

// AddInPlace performs a channel-wise saturating addition: p += other.
func (p *Pixel) AddInPlace(other Pixel) {
	p.R = addChannel(p.R, other.R)
	p.G = addChannel(p.G, other.G)
	p.B = addChannel(p.B, other.B)
	p.A = addChannel(p.A, other.A)
}

// SubInPlace performs a channel-wise saturating subtraction: p -= other.
func (p *Pixel) SubInPlace(other Pixel) {
	p.R = subChannel(p.R, other.R)
	p.G = subChannel(p.G, other.G)
	p.B = subChannel(p.B, other.B)
	p.A = subChannel(p.A, other.A)
}

// MulScalarInPlace performs a channel-wise saturating scalar multiply:
// p *= f.
func (p *Pixel) MulScalarInPlace(f float64) {
	p.R = mulChannelScalar(p.R, f)
	p.G = mulChannelScalar(p.G, f)
	p.B = mulChannelScalar(p.B, f)
	p.A = mulChannelScalar(p.A, f)
}

// normalized returns the channel as a float64 in [0,1].
func normalized(c uint16) float64 {
	return float64(c) / 65535
}

// denormalize converts a float64 in [0,1] back to a saturated uint16
// channel.
func denormalize(v float64) uint16 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 65535
	}
	return uint16(v*65535 + 0.5)
}
