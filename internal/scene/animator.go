package scene

import (
	"math"

	"delta-robot.klederson.com/internal/config"
	"delta-robot.klederson.com/internal/kinematics"
)

// Animator turns elapsed time into scenes. It is not safe for concurrent use;
// the host calls Step from a single tick loop.
type Animator struct {
	params config.Params
	layout kinematics.BaseLayout
	path   kinematics.Trajectory
	trail  *kinematics.Trail

	width  float64
	height float64
}

// NewAnimator creates an animator sized to the design canvas.
func NewAnimator(p config.Params) *Animator {
	return &Animator{
		params: p,
		layout: kinematics.BaseLayout{
			Radius:       p.BaseRadius,
			CenterYRatio: p.CenterYRatio,
		},
		path: kinematics.Trajectory{
			AmpX:    p.Trajectory.AmpX,
			AmpY:    p.Trajectory.AmpY,
			OmegaX:  p.Trajectory.OmegaX,
			OmegaY:  p.Trajectory.OmegaY,
			Phase:   p.Trajectory.Phase,
			YOffset: p.Trajectory.YOffset,
		},
		trail:  kinematics.NewTrail(p.TrailLen),
		width:  config.DesignWidth,
		height: config.DesignHeight,
	}
}

// Params returns the parameters the animator was built with.
func (a *Animator) Params() config.Params {
	return a.params
}

// Resize records new viewport dimensions. Sizes that are not finite numbers
// in (0, config.MaxExtent] are ignored and the last known size is kept. The
// change shows on the next Step.
func (a *Animator) Resize(width, height float64) {
	if !validExtent(width) || !validExtent(height) {
		return
	}
	a.width = width
	a.height = height
}

// Size returns the current viewport dimensions.
func (a *Animator) Size() (float64, float64) {
	return a.width, a.height
}

// MayClamp reports whether some arm could fail to reach the path at the
// current size. It tests the path's bounding box, so a path that only comes
// close to the reach limit can report true as well.
func (a *Animator) MayClamp() bool {
	center, anchors := a.layout.Place(a.width, a.height)
	lo, hi := a.path.Bounds(center)
	outer := a.params.L1 + a.params.L2
	inner := math.Abs(a.params.L1 - a.params.L2)

	for _, an := range anchors {
		far := math.Hypot(
			math.Max(math.Abs(an.X-lo.X), math.Abs(an.X-hi.X)),
			math.Max(math.Abs(an.Y-lo.Y), math.Abs(an.Y-hi.Y)),
		)
		if far > outer {
			return true
		}
		near := kinematics.Point{
			X: math.Min(math.Max(an.X, lo.X), hi.X),
			Y: math.Min(math.Max(an.Y, lo.Y), hi.Y),
		}
		if an.Dist(near) < inner {
			return true
		}
	}
	return false
}

// Reset clears the trail.
func (a *Animator) Reset() {
	a.trail.Reset()
}

// TrailLen returns the number of points currently in the trail.
func (a *Animator) TrailLen() int {
	return a.trail.Len()
}

// Step advances the animation to time t (seconds), records the new target in
// the trail and returns the frame.
func (a *Animator) Step(t float64) Scene {
	center, anchors := a.layout.Place(a.width, a.height)
	target := a.path.At(t, center)

	var arms [kinematics.ArmCount]Arm
	for i, anchor := range anchors {
		sol := kinematics.SolveArm(anchor, target, a.params.L1, a.params.L2)
		arms[i] = Arm{
			Anchor:   anchor,
			Elbow:    sol.Elbow,
			Target:   target,
			Solution: sol,
		}
	}

	a.trail.Push(target)

	return Scene{
		Time:      t,
		Width:     a.width,
		Height:    a.height,
		Center:    center,
		Anchors:   anchors,
		Arms:      arms,
		Target:    target,
		Trail:     a.trail.Points(),
		TrailCap:  a.trail.Cap(),
		GridPhase: gridPhase(t, a.params.Grid),
	}
}

func validExtent(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0 && v <= config.MaxExtent
}

func gridPhase(t float64, g config.GridParams) float64 {
	if g.Spacing <= 0 {
		return 0
	}
	p := math.Mod(t*g.Speed, g.Spacing)
	if p < 0 {
		p += g.Spacing
	}
	return p
}
