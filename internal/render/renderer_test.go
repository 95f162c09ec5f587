package render

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"delta-robot.klederson.com/internal/config"
	"delta-robot.klederson.com/internal/kinematics"
	"delta-robot.klederson.com/internal/scene"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitViewport(t *testing.T) {
	vp := FitViewport(100, 30, 800, 420)
	assert.Equal(t, 4.0, vp.Scale)
	w, h := vp.Logical()
	assert.Equal(t, 800.0, w)
	assert.Equal(t, 480.0, h)

	// Height bound.
	vp = FitViewport(200, 21, 800, 420)
	assert.Equal(t, 5.0, vp.Scale)

	vp = FitViewport(0, 0, 800, 420)
	assert.Equal(t, 1, vp.Cols)
	assert.Equal(t, 1, vp.Rows)
}

func TestViewportDots(t *testing.T) {
	vp := Viewport{Cols: 10, Rows: 10, Scale: 4}
	assert.Equal(t, 1, vp.Dots(0.5))
	assert.Equal(t, 3, vp.Dots(12))

	x, y := vp.ToDot(kinematics.Point{X: 40, Y: 18})
	assert.Equal(t, 10, x)
	assert.Equal(t, 5, y)

	x, y = vp.ToDot(kinematics.Point{X: math.Inf(1), Y: math.NaN()})
	assert.Equal(t, maxDot, x)
	assert.Equal(t, -maxDot, y)
	assert.Equal(t, maxDot, vp.Dots(1e300))
}

func TestRenderTooSmall(t *testing.T) {
	sc := scene.NewAnimator(config.Default()).Step(0)
	assert.Equal(t, "", Render(sc, Viewport{Cols: 9, Rows: 20, Scale: 1}, config.Default(), DefaultOptions()))
	assert.Equal(t, "", Render(sc, Viewport{Cols: 20, Rows: 4, Scale: 1}, config.Default(), DefaultOptions()))
}

func TestRenderDrawsRobot(t *testing.T) {
	p := config.Default()
	vp := FitViewport(100, 30, config.DesignWidth, config.DesignHeight)
	a := scene.NewAnimator(p)
	a.Resize(vp.Logical())
	sc := a.Step(1)

	c := NewCanvas(vp.Cols, vp.Rows)
	Draw(c, sc, vp, p, DefaultOptions())

	// End-effector cell carries the effector color.
	x, y := vp.ToDot(sc.Target)
	ch, color := c.Cell(x/2, y/4)
	assert.NotEqual(t, ' ', ch)
	assert.Equal(t, p.Palette.Effector, color)

	// Every anchor and elbow is drawn.
	for _, arm := range sc.Arms {
		for _, pt := range []kinematics.Point{arm.Anchor, arm.Elbow} {
			x, y := vp.ToDot(pt)
			ch, _ := c.Cell(x/2, y/4)
			assert.NotEqual(t, ' ', ch)
		}
	}

	out := Render(sc, vp, p, DefaultOptions())
	lines := strings.Split(out, "\n")
	require.Len(t, lines, vp.Rows)
	for _, l := range lines {
		assert.Equal(t, vp.Cols, lipgloss.Width(l))
	}
}

func TestRenderGridToggle(t *testing.T) {
	p := config.Default()
	vp := FitViewport(100, 30, config.DesignWidth, config.DesignHeight)
	a := scene.NewAnimator(p)
	a.Resize(vp.Logical())
	sc := a.Step(0)

	gridColor := Blend(p.Palette.Background, p.Palette.Grid, p.Palette.GridOpacity)
	count := func(opts Options) int {
		c := NewCanvas(vp.Cols, vp.Rows)
		Draw(c, sc, vp, p, opts)
		n := 0
		for row := 0; row < vp.Rows; row++ {
			for col := 0; col < vp.Cols; col++ {
				if _, color := c.Cell(col, row); color == gridColor {
					n++
				}
			}
		}
		return n
	}

	assert.Greater(t, count(Options{Grid: true}), 0)
	assert.Equal(t, 0, count(Options{}))
}

func TestBlend(t *testing.T) {
	assert.Equal(t, "#000000", Blend("#000000", "#ffffff", 0))
	assert.Equal(t, "#ffffff", Blend("#000000", "#ffffff", 1))
	assert.Equal(t, "#ffffff", Blend("#000000", "#ffffff", 7))
	assert.Equal(t, "#808080", Blend("#000000", "#ffffff", 0.5))
	assert.Equal(t, "#ffffff", Blend("nope", "#ffffff", 0.5))
}

func TestBearing(t *testing.T) {
	assert.InDelta(t, 0, Bearing(-1.5707963267948966), 1e-12)
	assert.InDelta(t, 90, Degrees(Bearing(0)), 1e-9)
	assert.InDelta(t, 180, Degrees(Bearing(1.5707963267948966)), 1e-9)
	assert.InDelta(t, 270, Degrees(Bearing(3.141592653589793)), 1e-9)
}

func TestWriteSVG(t *testing.T) {
	p := config.Default()
	a := scene.NewAnimator(p)
	a.Step(0)
	sc := a.Step(0.5)

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, sc, p, DefaultOptions()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `<svg`)
	assert.Contains(t, out, `</svg>`)
	assert.Contains(t, out, `radialGradient`)
	assert.Contains(t, out, `<polygon`)
	// Two circles per base joint and elbow, one effector.
	assert.Equal(t, 13, strings.Count(out, "<circle"))
	assert.Contains(t, out, "stroke-opacity:0.50")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, os.ErrClosed }

func TestWriteSVGReportsErrors(t *testing.T) {
	sc := scene.NewAnimator(config.Default()).Step(0)
	err := WriteSVG(failWriter{}, sc, config.Default(), DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrClosed)
}

func TestExportFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	a := scene.NewAnimator(config.Default())

	paths, err := ExportFrames(dir, a, 3, 0, 0.1, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, paths, 3)
	assert.Equal(t, filepath.Join(dir, "frame-0002.svg"), paths[2])

	data, err := os.ReadFile(paths[2])
	require.NoError(t, err)
	assert.Contains(t, string(data), "</svg>")
	assert.Equal(t, 3, a.TrailLen())

	_, err = ExportFrames(dir, a, 0, 0, 0.1, DefaultOptions())
	assert.Error(t, err)
}

// within fails the test if fn does not return in d.
func within(t *testing.T, d time.Duration, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatalf("still running after %v", d)
	}
}

func TestClipSegment(t *testing.T) {
	// Fully inside is unchanged.
	x0, y0, x1, y1, ok := clipSegment(1, 2, 8, 9, 0, 0, 10, 10)
	require.True(t, ok)
	assert.Equal(t, [4]float64{1, 2, 8, 9}, [4]float64{x0, y0, x1, y1})

	// Crossing the whole rectangle is cut at both edges.
	x0, y0, x1, y1, ok = clipSegment(-10, 5, 20, 5, 0, 0, 10, 10)
	require.True(t, ok)
	assert.InDelta(t, 0, x0, 1e-12)
	assert.InDelta(t, 10, x1, 1e-12)
	assert.InDelta(t, 5, y0, 1e-12)
	assert.InDelta(t, 5, y1, 1e-12)

	// Far diagonal through the rectangle.
	x0, y0, x1, y1, ok = clipSegment(-1e12, -1e12, 1e12, 1e12, 0, 0, 10, 10)
	require.True(t, ok)
	assert.InDelta(t, 0, x0, 1e-3)
	assert.InDelta(t, 0, y0, 1e-3)
	assert.InDelta(t, 10, x1, 1e-3)
	assert.InDelta(t, 10, y1, 1e-3)

	// Outside, parallel or not.
	_, _, _, _, ok = clipSegment(-5, 20, 15, 20, 0, 0, 10, 10)
	assert.False(t, ok)
	_, _, _, _, ok = clipSegment(20, 0, 30, 10, 0, 0, 10, 10)
	assert.False(t, ok)
}

func TestLineFarOffCanvasReturnsPromptly(t *testing.T) {
	vp := FitViewport(80, 24, config.DesignWidth, config.DesignHeight)
	c := NewCanvas(vp.Cols, vp.Rows)

	within(t, 2*time.Second, func() {
		line(c, vp, kinematics.Point{X: -1e12, Y: 3e11}, kinematics.Point{X: 1e12, Y: 3e11}, 3, "#fff")
		line(c, vp, kinematics.Point{X: -1e300, Y: -1e300}, kinematics.Point{X: 1e300, Y: -1e299}, 1, "#fff")
		line(c, vp, kinematics.Point{X: -1e12, Y: -1e12}, kinematics.Point{X: 1e12, Y: 1e12}, 1, "#fff")
		line(c, vp, kinematics.Point{X: math.Inf(-1)}, kinematics.Point{X: 10, Y: 10}, 1, "#fff")
		line(c, vp, kinematics.Point{X: math.NaN()}, kinematics.Point{X: 10, Y: 10}, 1, "#fff")
		joint(c, vp, kinematics.Point{X: 1e15, Y: -1e15}, 10, "#fff", "#000")
	})

	// The long diagonal still crosses the canvas and is drawn there: dot
	// (40, 40) lives in cell (20, 10).
	ch, _ := c.Cell(0, 0)
	assert.NotEqual(t, ' ', ch)
	ch, _ = c.Cell(20, 10)
	assert.NotEqual(t, ' ', ch)
}

func TestRenderUnvalidatedParamsReturns(t *testing.T) {
	nan := config.Default()
	nan.L1 = math.NaN()
	inf := config.Default()
	inf.Trajectory.AmpX = math.Inf(1)
	huge := config.Default()
	huge.BaseRadius = 1e10

	vp := FitViewport(80, 24, config.DesignWidth, config.DesignHeight)
	for _, p := range []config.Params{nan, inf, huge} {
		require.Error(t, p.Validate())

		a := scene.NewAnimator(p)
		a.Resize(vp.Logical())
		within(t, 2*time.Second, func() {
			for i := 0; i < 3; i++ {
				out := Render(a.Step(float64(i)), vp, p, DefaultOptions())
				assert.Len(t, strings.Split(out, "\n"), vp.Rows)
			}
		})
	}
}
