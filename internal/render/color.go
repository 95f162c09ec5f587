package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Blend mixes fg over bg with opacity alpha and returns a hex color.
// Unparsable colors fall back to fg unchanged.
func Blend(bg, fg string, alpha float64) string {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	b, err := colorful.Hex(bg)
	if err != nil {
		return fg
	}
	f, err := colorful.Hex(fg)
	if err != nil {
		return fg
	}
	return b.BlendRgb(f, alpha).Clamped().Hex()
}
