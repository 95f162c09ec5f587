package kinematics

import "math"

// minReach replaces a zero anchor-target distance.
const minReach = 1e-6

// Solution describes one solved arm.
type Solution struct {
	Elbow    Point
	Shoulder float64 // A1, direction of the upper link (rad)
	Bend     float64 // A2, elbow angle from the law of cosines (rad)
	Reach    float64 // anchor-target distance used by the solver
	Clamped  bool    // target was outside the reachable annulus
}

// Solve returns the elbow position for a 2-link arm rooted at anchor whose
// tip must touch target. Unreachable targets are clamped to the nearest
// reachable pose instead of failing.
func Solve(anchor, target Point, l1, l2 float64) Point {
	return SolveArm(anchor, target, l1, l2).Elbow
}

// SolveArm is Solve with the intermediate angles kept.
func SolveArm(anchor, target Point, l1, l2 float64) Solution {
	v := target.Sub(anchor)
	d := math.Sqrt(v.X*v.X + v.Y*v.Y)
	if d == 0 {
		d = minReach
	}

	c2 := (d*d - l1*l1 - l2*l2) / (2 * l1 * l2)
	clamped := false
	if c2 < -1 {
		c2, clamped = -1, true
	} else if c2 > 1 {
		c2, clamped = 1, true
	}

	a2 := math.Acos(c2)
	a1 := math.Atan2(v.Y, v.X) - math.Atan2(l2*math.Sin(a2), l1+l2*math.Cos(a2))

	return Solution{
		Elbow:    anchor.Polar(l1, a1),
		Shoulder: a1,
		Bend:     a2,
		Reach:    d,
		Clamped:  clamped,
	}
}
