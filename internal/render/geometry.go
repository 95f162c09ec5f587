package render

import "math"

// NormalizeAngle wraps an angle to [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Degrees converts radians to degrees.
func Degrees(a float64) float64 {
	return a * 180 / math.Pi
}

// Bearing converts a screen-space direction (atan2 with y down, 0=east) to a
// compass bearing in [0, 2π), where 0=north, increasing clockwise.
func Bearing(a float64) float64 {
	return NormalizeAngle(a + math.Pi/2)
}
