package paintcore

import (
	"github.com/inkforge/paintcore/internal/filter"
)

// toFilterPixels copies a tile's pixel buffer into internal/filter's own
// Pixel representation, and back. The two types are kept separate so
// internal/filter has no import-cycle dependency on this package.
func toFilterPixels(src []Pixel) []filter.Pixel {
	out := make([]filter.Pixel, len(src))
	for i, p := range src {
		out[i] = filter.Pixel{R: p.R, G: p.G, B: p.B, A: p.A}
	}
	return out
}

func fromFilterPixels(dst []Pixel, src []filter.Pixel) {
	for i, p := range src {
		dst[i] = Pixel{R: p.R, G: p.G, B: p.B, A: p.A}
	}
}

// processTiles runs a per-tile transform over every tile in tiles,
// invoking progress.Progress after each tile and honoring
// progress.Cancelled() between tiles (never mid-tile).
func processTiles(tiles []*Tile, progress ProgressCallback, transform func(buf []filter.Pixel)) {
	if progress == nil {
		progress = NopProgress
	}
	total := len(tiles)
	for i, t := range tiles {
		if progress.Cancelled() {
			return
		}
		buf := toFilterPixels(t.Pixels())
		transform(buf)
		fromFilterPixels(t.Pixels(), buf)
		t.Dirty = true
		if total > 0 {
			progress.Progress(float64(i+1) / float64(total))
		}
	}
}

// GaussianBlurFilter approximates a Gaussian blur via three box-filter
// passes (internal/filter.GaussianBlur), per tile.
type GaussianBlurFilter struct{}

func (GaussianBlurFilter) Name() string        { return "gaussian_blur" }
func (GaussianBlurFilter) Version() string     { return "1.0" }
func (GaussianBlurFilter) Description() string { return "Approximate Gaussian blur via three box-filter passes" }

func (GaussianBlurFilter) Process(tiles []*Tile, w, h int, params ParamBag, progress ProgressCallback) {
	sigma := clampF(params.Float("sigma", 1.0), 0.1, 50.0)
	processTiles(tiles, progress, func(buf []filter.Pixel) {
		filter.GaussianBlur(buf, TileSize, TileSize, sigma)
	})
}

// UnsharpMaskFilter sharpens per tile via internal/filter.UnsharpMask.
type UnsharpMaskFilter struct{}

func (UnsharpMaskFilter) Name() string        { return "unsharp_mask" }
func (UnsharpMaskFilter) Version() string     { return "1.0" }
func (UnsharpMaskFilter) Description() string { return "Sharpen via unsharp masking" }

func (UnsharpMaskFilter) Process(tiles []*Tile, w, h int, params ParamBag, progress ProgressCallback) {
	radius := clampF(params.Float("radius", 1.0), 0.1, 50.0)
	amount := clampF(params.Float("amount", 1.0), 0, 5)
	threshold := clampF(params.Float("threshold", 0.0), 0, 1)
	processTiles(tiles, progress, func(buf []filter.Pixel) {
		filter.UnsharpMask(buf, TileSize, TileSize, radius, amount, threshold)
	})
}

// InpaintFilter fills a per-tile synthetic masked region via
// internal/filter.Inpaint.
type InpaintFilter struct{}

func (InpaintFilter) Name() string        { return "inpaint" }
func (InpaintFilter) Version() string     { return "1.0" }
func (InpaintFilter) Description() string { return "Fill a masked region by inward relaxation" }

func (InpaintFilter) Process(tiles []*Tile, w, h int, params ParamBag, progress ProgressCallback) {
	radius := clampI(params.Int("radius", 3), 1, 50)
	algorithm := params.String("algorithm", "telea")
	switch algorithm {
	case "telea", "navier_stokes", "advanced":
	default:
		algorithm = "telea"
	}
	processTiles(tiles, progress, func(buf []filter.Pixel) {
		filter.Inpaint(buf, TileSize, TileSize, radius, algorithm)
	})
}

// SmudgeFilter stamps a smudge via internal/filter.Smudge. Each
// invocation of Process constructs a fresh SmudgeState, so successive
// tiles in the same Process call see a carried color buffer but separate
// ApplyFilter invocations never share state.
type SmudgeFilter struct{}

func (SmudgeFilter) Name() string        { return "smudge" }
func (SmudgeFilter) Version() string     { return "1.0" }
func (SmudgeFilter) Description() string { return "Smear color outward from a stamp position" }

func (SmudgeFilter) Process(tiles []*Tile, w, h int, params ParamBag, progress ProgressCallback) {
	strength := clampF(params.Float("strength", 0.5), 0, 1)
	radius := clampI(params.Int("radius", 5), 1, 50)
	mode := params.String("mode", "normal")
	if mode != "normal" && mode != "smart" {
		mode = "normal"
	}

	state := &filter.SmudgeState{}
	processTiles(tiles, progress, func(buf []filter.Pixel) {
		filter.Smudge(buf, TileSize, TileSize, state, strength, radius, mode)
	})
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampI(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DefaultRegistry returns a new Registry pre-populated with the engine's
// four reference filters.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(GaussianBlurFilter{})
	r.Register(UnsharpMaskFilter{})
	r.Register(InpaintFilter{})
	r.Register(SmudgeFilter{})
	return r
}
