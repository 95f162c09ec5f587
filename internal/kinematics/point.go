package kinematics

import "math"

// Point is a coordinate in canvas space. Y grows downward.
type Point struct {
	X, Y float64
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Angle returns the direction from p to q in radians (atan2, screen coordinates).
func (p Point) Angle(q Point) float64 {
	return math.Atan2(q.Y-p.Y, q.X-p.X)
}

// Polar returns the point at distance r from p in direction a.
func (p Point) Polar(r, a float64) Point {
	return Point{X: p.X + r*math.Cos(a), Y: p.Y + r*math.Sin(a)}
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
