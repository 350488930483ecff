package paintcore

import "github.com/inkforge/paintcore/internal/blend"

// BlendMode selects the per-channel blend function a Layer uses when
// compositing onto the layer below it. The numeric order is stable and
// part of the engine's external contract — do not reorder these.
type BlendMode = blend.Mode

// The twelve stable blend modes, re-exported from internal/blend so callers
// never need to import the internal package directly.
const (
	BlendNormal     = blend.Normal
	BlendMultiply   = blend.Multiply
	BlendScreen     = blend.Screen
	BlendOverlay    = blend.Overlay
	BlendSoftLight  = blend.SoftLight
	BlendHardLight  = blend.HardLight
	BlendColorDodge = blend.ColorDodge
	BlendColorBurn  = blend.ColorBurn
	BlendDarken     = blend.Darken
	BlendLighten    = blend.Lighten
	BlendDifference = blend.Difference
	BlendExclusion  = blend.Exclusion
)
