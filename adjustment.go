package paintcore

// Adjustment is one entry in a Layer's adjustment stack: a named operation
// plus its parameters. The stack is exposed as typed data regardless of
// whether this build understands how to apply a given Type — unrecognized
// types are preserved (for serialization round-tripping) but are no-ops
// when the stack is applied.
type Adjustment struct {
	Type   string
	Params map[string]float64
}

// applyAdjustments runs every adjustment in stack over pixel, in order,
// returning the resulting pixel. Only the kinds with an explicitly defined
// formula below are applied; every other Type passes the pixel through
// unchanged.
func applyAdjustments(stack []Adjustment, p Pixel) Pixel {
	for _, adj := range stack {
		switch adj.Type {
		case "brightness":
			p = applyBrightness(p, adj.Params["delta"])
		case "contrast":
			p = applyContrast(p, adj.Params["amount"])
		}
	}
	return p
}

// applyBrightness adds delta (clamped to [-1, 1]) to each of R, G, B,
// leaving alpha untouched.
func applyBrightness(p Pixel, delta float64) Pixel {
	if delta > 1 {
		delta = 1
	} else if delta < -1 {
		delta = -1
	}
	return Pixel{
		R: denormalize(normalized(p.R) + delta),
		G: denormalize(normalized(p.G) + delta),
		B: denormalize(normalized(p.B) + delta),
		A: p.A,
	}
}

// applyContrast scales each of R, G, B around the 0.5 midpoint by
// (1 + amount), with amount clamped to [-1, 1]; amount = -1 flattens to
// mid-gray, amount = 1 doubles the distance from mid-gray.
func applyContrast(p Pixel, amount float64) Pixel {
	if amount > 1 {
		amount = 1
	} else if amount < -1 {
		amount = -1
	}
	factor := 1 + amount
	scale := func(c uint16) uint16 {
		v := (normalized(c)-0.5)*factor + 0.5
		return denormalize(v)
	}
	return Pixel{R: scale(p.R), G: scale(p.G), B: scale(p.B), A: p.A}
}
