package filter

// UnsharpMask sharpens buf in place: blurred = GaussianBlur(copy, radius);
// for each pixel, diff = original - blurred; if threshold > 0, diff is
// zeroed where the grayscale magnitude of diff, scaled to the 8-bit range
// (divided by 257), is <= threshold*255;
// result = clamp(original + amount*diff, 0, 65535).
func UnsharpMask(buf []Pixel, w, h int, radius, amount, threshold float64) {
	if len(buf) != w*h || w <= 0 || h <= 0 {
		return
	}
	radius = clampFloat(radius, 0.1, 50.0)
	amount = clampFloat(amount, 0, 5)
	threshold = clampFloat(threshold, 0, 1)

	original := make([]Pixel, len(buf))
	copy(original, buf)
	blurred := make([]Pixel, len(buf))
	copy(blurred, buf)
	GaussianBlur(blurred, w, h, radius)

	thresholdScaled := threshold * 255

	for i := range buf {
		o := original[i]
		bl := blurred[i]

		dr := float64(o.R) - float64(bl.R)
		dg := float64(o.G) - float64(bl.G)
		db := float64(o.B) - float64(bl.B)
		da := float64(o.A) - float64(bl.A)

		if thresholdScaled > 0 {
			gray := grayscaleDiff(dr, dg, db) / 257 // 65535/255 scale to 8-bit domain
			if abs(gray) <= thresholdScaled {
				continue
			}
		}

		buf[i] = Pixel{
			R: clampU16(float64(o.R) + amount*dr),
			G: clampU16(float64(o.G) + amount*dg),
			B: clampU16(float64(o.B) + amount*db),
			A: clampU16(float64(o.A) + amount*da),
		}
	}
}

func grayscaleDiff(r, g, b float64) float64 {
	return 0.299*r + 0.587*g + 0.114*b
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
