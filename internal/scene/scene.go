package scene

import "delta-robot.klederson.com/internal/kinematics"

// Arm is one solved arm for a single frame.
type Arm struct {
	Anchor   kinematics.Point
	Elbow    kinematics.Point
	Target   kinematics.Point
	Solution kinematics.Solution
}

// Scene is everything a surface needs to draw one frame. It owns its slices;
// later ticks never modify a Scene already handed out.
type Scene struct {
	Time      float64 // seconds
	Width     float64
	Height    float64
	Center    kinematics.Point
	Anchors   [kinematics.ArmCount]kinematics.Point
	Arms      [kinematics.ArmCount]Arm
	Target    kinematics.Point
	Trail     []kinematics.Point // oldest first, includes Target
	TrailCap  int
	GridPhase float64 // floor grid scroll offset in [0, spacing)
}

// BasePolygon returns the closed outline of the robot base.
func (s Scene) BasePolygon() []kinematics.Point {
	return []kinematics.Point{s.Anchors[0], s.Anchors[1], s.Anchors[2], s.Anchors[0]}
}

// TrailSegments returns the trail as fading segments.
func (s Scene) TrailSegments() []kinematics.Segment {
	return kinematics.Segments(s.Trail)
}
