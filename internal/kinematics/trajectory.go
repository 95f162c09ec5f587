package kinematics

import "math"

// Trajectory is a Lissajous path for the end-effector: two out-of-phase
// sinusoids around a reference center.
type Trajectory struct {
	AmpX    float64 // horizontal amplitude
	AmpY    float64 // vertical amplitude
	OmegaX  float64 // horizontal angular speed (rad/s)
	OmegaY  float64 // vertical angular speed (rad/s)
	Phase   float64 // horizontal phase offset (rad)
	YOffset float64 // vertical offset from center, negative is up
}

// DefaultTrajectory returns the reference path.
func DefaultTrajectory() Trajectory {
	return Trajectory{
		AmpX:    90,
		AmpY:    50,
		OmegaX:  0.8,
		OmegaY:  1.3,
		Phase:   math.Pi / 4,
		YOffset: -70,
	}
}

// At returns the target position at elapsed time t (seconds).
func (tr Trajectory) At(t float64, center Point) Point {
	return Point{
		X: center.X + tr.AmpX*math.Sin(t*tr.OmegaX+tr.Phase),
		Y: center.Y + tr.YOffset + tr.AmpY*math.Sin(t*tr.OmegaY),
	}
}

// Bounds returns the axis-aligned box the path can never leave.
func (tr Trajectory) Bounds(center Point) (min, max Point) {
	ax, ay := math.Abs(tr.AmpX), math.Abs(tr.AmpY)
	min = Point{X: center.X - ax, Y: center.Y + tr.YOffset - ay}
	max = Point{X: center.X + ax, Y: center.Y + tr.YOffset + ay}
	return min, max
}
