package render

import (
	"fmt"
	"io"
	"math"

	"delta-robot.klederson.com/internal/config"
	"delta-robot.klederson.com/internal/kinematics"
	"delta-robot.klederson.com/internal/scene"
	svg "github.com/ajstarks/svgo"
)

// errWriter remembers the first write error so svgo's unchecked writes can be
// reported.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(b []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(b)
	if err != nil {
		e.err = err
	}
	return n, err
}

// WriteSVG writes one frame as an SVG document sized to the scene viewport.
func WriteSVG(w io.Writer, sc scene.Scene, p config.Params, opts Options) error {
	ew := &errWriter{w: w}
	pal := p.Palette
	j := p.Joints

	width := int(math.Round(sc.Width))
	height := int(math.Round(sc.Height))

	canvas := svg.New(ew)
	canvas.Start(width, height)

	canvas.Def()
	cy := uint8(clampPercent(sc.Center.Y / sc.Height * 100))
	canvas.RadialGradient("glow", 50, cy, 80, 50, cy, []svg.Offcolor{
		{Offset: 0, Color: pal.Glow, Opacity: pal.GlowOpacity},
		{Offset: 100, Color: pal.Background, Opacity: 0},
	})
	canvas.DefEnd()

	canvas.Rect(0, 0, width, height, "fill:"+pal.Background)
	canvas.Rect(0, 0, width, height, "fill:url(#glow)")

	if opts.Grid && gridDrawable(sc, p.Grid) {
		canvas.Gstyle(fmt.Sprintf("stroke:%s;stroke-opacity:%.2f;stroke-width:1", pal.Grid, pal.GridOpacity))
		g := p.Grid
		floor := sc.Center.Y + g.FloorOffset
		for y := floor + g.Spacing - sc.GridPhase; y < sc.Height+g.Spacing; y += g.Spacing {
			canvas.Line(0, px(y), width, px(y))
		}
		for x := g.Spacing - sc.GridPhase; x < sc.Width+g.Spacing; x += g.Spacing {
			canvas.Line(px(x), px(floor), px(x), height)
		}
		canvas.Gend()
	}

	xs, ys := polyXY(sc.BasePolygon()[:kinematics.ArmCount])
	canvas.Polygon(xs, ys, fmt.Sprintf("fill:none;stroke:%s;stroke-opacity:%.2f;stroke-width:2", pal.Base, pal.BaseOpacity))

	for _, arm := range sc.Arms {
		svgLink(canvas, arm.Anchor, arm.Elbow, j.ArmWidth+4, j.ArmWidth, pal.Upper, pal)
		svgLink(canvas, arm.Elbow, arm.Target, j.ArmWidth+3, j.ArmWidth*0.9, pal.Lower, pal)
		svgJoint(canvas, arm.Anchor, j.BaseJointR+3, j.BaseJointR-2, 1.4, pal)
		svgJoint(canvas, arm.Elbow, j.ElbowJointR+2, j.ElbowJointR-1, 1.2, pal)
	}

	if opts.Trail {
		canvas.Gstyle("stroke-width:2;stroke-linecap:round")
		for _, seg := range sc.TrailSegments() {
			canvas.Line(px(seg.From.X), px(seg.From.Y), px(seg.To.X), px(seg.To.Y),
				fmt.Sprintf("stroke:%s;stroke-opacity:%.2f", pal.Trail, seg.Alpha))
		}
		canvas.Gend()
	}

	canvas.Circle(px(sc.Target.X), px(sc.Target.Y), px(j.EffectorR),
		fmt.Sprintf("fill:%s;stroke:%s;stroke-opacity:0.85;stroke-width:2.3", pal.Effector, pal.Shadow))

	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("render: write svg: %w", ew.err)
	}
	return nil
}

// svgLink strokes a link three times: dark shadow, translucent core, colored
// highlight.
func svgLink(canvas *svg.SVG, a, b kinematics.Point, shadowW, coreW float64, highlight string, pal config.Palette) {
	x0, y0, x1, y1 := px(a.X), px(a.Y), px(b.X), px(b.Y)
	canvas.Line(x0, y0, x1, y1, fmt.Sprintf("stroke:%s;stroke-opacity:0.95;stroke-width:%.1f;stroke-linecap:round", pal.Shadow, shadowW))
	canvas.Line(x0, y0, x1, y1, fmt.Sprintf("stroke:%s;stroke-opacity:0.30;stroke-width:%.1f;stroke-linecap:round", pal.JointHub, coreW))
	canvas.Line(x0, y0, x1, y1, fmt.Sprintf("stroke:%s;stroke-opacity:%.2f;stroke-width:%.1f;stroke-linecap:round", highlight, pal.LinkOpacity, coreW*0.6))
}

func svgJoint(canvas *svg.SVG, at kinematics.Point, outer, inner, strokeW float64, pal config.Palette) {
	x, y := px(at.X), px(at.Y)
	canvas.Circle(x, y, px(outer), fmt.Sprintf("fill:%s;fill-opacity:0.96;stroke:%s;stroke-opacity:0.9;stroke-width:%.1f", pal.Shadow, pal.Joint, strokeW))
	if inner > 0 {
		canvas.Circle(x, y, px(inner), "fill:"+pal.JointHub)
	}
}

func polyXY(pts []kinematics.Point) ([]int, []int) {
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, p := range pts {
		xs[i] = px(p.X)
		ys[i] = px(p.Y)
	}
	return xs, ys
}

func px(v float64) int {
	return int(math.Round(v))
}

func clampPercent(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
