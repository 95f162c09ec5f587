package render

import (
	"delta-robot.klederson.com/internal/config"
	"delta-robot.klederson.com/internal/kinematics"
	"delta-robot.klederson.com/internal/scene"
)

// Options toggles optional layers.
type Options struct {
	Grid  bool
	Trail bool
}

// DefaultOptions draws everything.
func DefaultOptions() Options {
	return Options{Grid: true, Trail: true}
}

// Render draws a scene into a braille canvas the size of the viewport and
// returns it as a styled string.
func Render(sc scene.Scene, vp Viewport, p config.Params, opts Options) string {
	if vp.Cols < 10 || vp.Rows < 5 {
		return ""
	}
	c := NewCanvas(vp.Cols, vp.Rows)
	Draw(c, sc, vp, p, opts)
	return c.String()
}

// Draw paints a scene onto c, back to front: floor grid, base, arms and
// joints, trail, end-effector.
func Draw(c *Canvas, sc scene.Scene, vp Viewport, p config.Params, opts Options) {
	pal := p.Palette

	if opts.Grid {
		drawGrid(c, sc, vp, p)
	}

	baseColor := Blend(pal.Background, pal.Base, pal.BaseOpacity)
	poly := sc.BasePolygon()
	for i := 1; i < len(poly); i++ {
		line(c, vp, poly[i-1], poly[i], 1, baseColor)
	}

	upper := Blend(pal.Background, pal.Upper, pal.LinkOpacity)
	lower := Blend(pal.Background, pal.Lower, pal.LinkOpacity)
	linkW := vp.Dots(p.Joints.ArmWidth * 0.6)
	for _, arm := range sc.Arms {
		line(c, vp, arm.Anchor, arm.Elbow, linkW, upper)
		line(c, vp, arm.Elbow, arm.Target, linkW, lower)
		joint(c, vp, arm.Anchor, p.Joints.BaseJointR, pal.Joint, pal.JointHub)
		joint(c, vp, arm.Elbow, p.Joints.ElbowJointR, pal.Joint, pal.JointHub)
	}

	if opts.Trail {
		for _, seg := range sc.TrailSegments() {
			line(c, vp, seg.From, seg.To, 1, Blend(pal.Background, pal.Trail, seg.Alpha))
		}
	}

	if sc.Target.IsFinite() {
		x, y := vp.ToDot(sc.Target)
		c.Disc(x, y, vp.Dots(p.Joints.EffectorR), pal.Effector)
	}
}

func drawGrid(c *Canvas, sc scene.Scene, vp Viewport, p config.Params) {
	g := p.Grid
	if !gridDrawable(sc, g) {
		return
	}
	color := Blend(p.Palette.Background, p.Palette.Grid, p.Palette.GridOpacity)
	floor := sc.Center.Y + g.FloorOffset

	for y := floor + g.Spacing - sc.GridPhase; y < sc.Height+g.Spacing; y += g.Spacing {
		line(c, vp, kinematics.Point{X: 0, Y: y}, kinematics.Point{X: sc.Width, Y: y}, 1, color)
	}
	for x := g.Spacing - sc.GridPhase; x < sc.Width+g.Spacing; x += g.Spacing {
		line(c, vp, kinematics.Point{X: x, Y: floor}, kinematics.Point{X: x, Y: sc.Height}, 1, color)
	}
}

// gridDrawable reports whether the grid loops over sc are bounded.
func gridDrawable(sc scene.Scene, g config.GridParams) bool {
	return g.Spacing >= config.MinGridSpacing &&
		sc.Width <= config.MaxExtent && sc.Height <= config.MaxExtent &&
		kinematics.Point{X: sc.Width, Y: sc.Height}.IsFinite() && sc.Center.IsFinite()
}

// line draws the part of a-b that can touch the canvas. Clipping first keeps
// the dot walk bounded by the canvas size whatever the endpoints are.
func line(c *Canvas, vp Viewport, a, b kinematics.Point, width int, color string) {
	if !a.IsFinite() || !b.IsFinite() {
		return
	}
	w, h := c.Size()
	m := float64(width)
	x0, y0, x1, y1, ok := clipSegment(a.X/vp.Scale, a.Y/vp.Scale, b.X/vp.Scale, b.Y/vp.Scale,
		-m, -m, float64(w)+m, float64(h)+m)
	if !ok {
		return
	}
	c.ThickLine(toDot(x0), toDot(y0), toDot(x1), toDot(y1), width, color)
}

// joint draws a housing outline around a filled hub.
func joint(c *Canvas, vp Viewport, at kinematics.Point, r float64, housing, hub string) {
	if !at.IsFinite() {
		return
	}
	x, y := vp.ToDot(at)
	outer := vp.Dots(r)
	c.Ring(x, y, outer, housing)
	c.Disc(x, y, max(outer-2, 0), hub)
}
