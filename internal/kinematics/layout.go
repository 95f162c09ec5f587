package kinematics

import "math"

// ArmCount is the number of arms on a delta robot.
const ArmCount = 3

// BaseLayout places the base joints on a circle below the viewport midpoint.
type BaseLayout struct {
	Radius       float64 // circumradius of the base triangle
	CenterYRatio float64 // center height as a fraction of viewport height
}

// Place returns the robot center and the three base anchors for a viewport.
// The first anchor points straight up (-90°), the rest follow at 120° steps.
func (l BaseLayout) Place(width, height float64) (Point, [ArmCount]Point) {
	center := Point{X: width / 2, Y: height * l.CenterYRatio}

	var anchors [ArmCount]Point
	for i := range anchors {
		a := -math.Pi/2 + float64(i)*2*math.Pi/ArmCount
		anchors[i] = center.Polar(l.Radius, a)
	}
	return center, anchors
}
