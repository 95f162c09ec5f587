package render

import "math"

// clipSegment clips the segment (x0,y0)-(x1,y1) to the rectangle
// [minX, maxX] x [minY, maxY] (Liang-Barsky). ok is false when no part of
// the segment lies inside. Results are clamped to the rectangle, which
// absorbs rounding for endpoints far outside it.
func clipSegment(x0, y0, x1, y1, minX, minY, maxX, maxY float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	t0, t1 := 0.0, 1.0
	dx := x1 - x0
	dy := y1 - y0

	edges := [4][2]float64{
		{-dx, x0 - minX},
		{dx, maxX - x0},
		{-dy, y0 - minY},
		{dy, maxY - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			// Parallel to this edge: inside or out for its whole length.
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return clamp(x0+t0*dx, minX, maxX), clamp(y0+t0*dy, minY, maxY),
		clamp(x0+t1*dx, minX, maxX), clamp(y0+t1*dy, minY, maxY), true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
