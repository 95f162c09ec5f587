package render

import (
	"math"

	"delta-robot.klederson.com/internal/kinematics"
)

// Viewport maps logical canvas units onto the dots of a terminal panel.
type Viewport struct {
	Cols  int
	Rows  int
	Scale float64 // logical units per dot
}

// FitViewport picks the smallest scale at which a designW x designH canvas
// fits into cols x rows cells.
func FitViewport(cols, rows int, designW, designH float64) Viewport {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	dotW := float64(cols * 2)
	dotH := float64(rows * 4)
	scale := math.Max(designW/dotW, designH/dotH)
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}
	return Viewport{Cols: cols, Rows: rows, Scale: scale}
}

// Logical returns the panel size in logical units, the size to report to
// the animator.
func (v Viewport) Logical() (float64, float64) {
	return float64(v.Cols*2) * v.Scale, float64(v.Rows*4) * v.Scale
}

// maxDot bounds dot coordinates so far-off points stay representable.
const maxDot = 1 << 30

// ToDot converts a logical point to dot coordinates. Coordinates are clamped
// to ±maxDot and NaN maps to -maxDot, well off any canvas.
func (v Viewport) ToDot(p kinematics.Point) (int, int) {
	return toDot(p.X / v.Scale), toDot(p.Y / v.Scale)
}

// Dots converts a logical length to a dot count in [1, maxDot].
func (v Viewport) Dots(length float64) int {
	n := toDot(length / v.Scale)
	if n < 1 {
		return 1
	}
	return n
}

func toDot(v float64) int {
	if math.IsNaN(v) {
		return -maxDot
	}
	return int(math.Round(math.Max(-maxDot, math.Min(maxDot, v))))
}
