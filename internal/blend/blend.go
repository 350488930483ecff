// Package blend implements the per-channel blend functions (f_M) used by
// the compositor, plus the straight-alpha Porter-Duff "over" operator that
// combines them.
//
// The formulas are ported from the photoshop/W3C-compositing math found in
// gogpu/gg's internal/blend package, which operates on premultiplied byte
// channels; here they operate directly on unmultiplied float64 channels in
// [0,1], which is the domain the painting engine's compositor works in.
package blend

import "math"

// Mode identifies a per-channel blend function f_M(d, s).
//
// The order is part of the engine's stable wire contract: do not reorder.
type Mode int

const (
	Normal Mode = iota
	Multiply
	Screen
	Overlay
	SoftLight
	HardLight
	ColorDodge
	ColorBurn
	Darken
	Lighten
	Difference
	Exclusion
)

// String returns the canonical name of the mode.
func (m Mode) String() string {
	switch m {
	case Normal:
		return "Normal"
	case Multiply:
		return "Multiply"
	case Screen:
		return "Screen"
	case Overlay:
		return "Overlay"
	case SoftLight:
		return "SoftLight"
	case HardLight:
		return "HardLight"
	case ColorDodge:
		return "ColorDodge"
	case ColorBurn:
		return "ColorBurn"
	case Darken:
		return "Darken"
	case Lighten:
		return "Lighten"
	case Difference:
		return "Difference"
	case Exclusion:
		return "Exclusion"
	default:
		return "Normal"
	}
}

// Valid reports whether m is one of the twelve defined modes.
func (m Mode) Valid() bool {
	return m >= Normal && m <= Exclusion
}

// Apply evaluates f_M(d, s) for the given mode. d and s are unmultiplied
// channel values in [0,1]. Unknown modes fall back to Normal (s), matching
// the conformance-gap default spec'd for any mode that somehow falls
// outside the twelve defined constants.
func Apply(m Mode, d, s float64) float64 {
	switch m {
	case Multiply:
		return d * s
	case Screen:
		return 1 - (1-d)*(1-s)
	case Overlay:
		return hardLight(s, d)
	case SoftLight:
		return softLight(d, s)
	case HardLight:
		return hardLight(d, s)
	case ColorDodge:
		return colorDodge(d, s)
	case ColorBurn:
		return colorBurn(d, s)
	case Darken:
		return math.Min(d, s)
	case Lighten:
		return math.Max(d, s)
	case Difference:
		return math.Abs(d - s)
	case Exclusion:
		return d + s - 2*d*s
	default: // Normal and anything unrecognized
		return s
	}
}

// hardLight implements HardLight(d, s): Multiply(d, 2s) for s <= 0.5,
// Screen(d, 2s-1) otherwise. Overlay is HardLight with d and s swapped.
func hardLight(d, s float64) float64 {
	if s <= 0.5 {
		return d * (2 * s)
	}
	return 1 - (1-d)*(1-(2*s-1))
}

// softLight implements the W3C Compositing Level 1 SoftLight formula
// (Pegtop variant via the piecewise D(x) helper).
func softLight(d, s float64) float64 {
	if s <= 0.5 {
		return d - (1-2*s)*d*(1-d)
	}
	var dx float64
	if d <= 0.25 {
		dx = ((16*d-12)*d + 4) * d
	} else {
		dx = math.Sqrt(d)
	}
	return d + (2*s-1)*(dx-d)
}

// colorDodge implements ColorDodge(d, s) = d == 0 ? 0 : (s == 1 ? 1 : min(1, d/(1-s))).
func colorDodge(d, s float64) float64 {
	if d == 0 {
		return 0
	}
	if s >= 1 {
		return 1
	}
	return math.Min(1, d/(1-s))
}

// colorBurn implements ColorBurn(d, s) = d == 1 ? 1 : (s == 0 ? 0 : 1 - min(1, (1-d)/s)).
func colorBurn(d, s float64) float64 {
	if d >= 1 {
		return 1
	}
	if s <= 0 {
		return 0
	}
	return 1 - math.Min(1, (1-d)/s)
}

// Over returns the result of compositing src over dst using straight-alpha Porter-Duff
// "over" combined with the per-channel f_M for mode, at opacity alpha.
//
// This implements the five-step algorithm: srcA = S.a*alpha; if srcA<=0,
// no-op; per-channel blend via f_M on unmultiplied d,s; outA = srcA +
// dstA*(1-srcA); normalize the blended channel back by outA.
func Over(mode Mode, dr, dg, db, da, sr, sg, sb, sa, alpha float64) (r, g, b, a float64) {
	srcA := sa * alpha
	if srcA <= 0 {
		return dr, dg, db, da
	}
	dstA := da

	rc := Apply(mode, dr, sr)
	gc := Apply(mode, dg, sg)
	bc := Apply(mode, db, sb)

	invSrcA := 1 - srcA
	outA := srcA + dstA*invSrcA
	if outA <= 0 {
		return 0, 0, 0, 0
	}

	r = (rc*srcA + dr*dstA*invSrcA) / outA
	g = (gc*srcA + dg*dstA*invSrcA) / outA
	b = (bc*srcA + db*dstA*invSrcA) / outA
	return clamp01(r), clamp01(g), clamp01(b), clamp01(outA)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
