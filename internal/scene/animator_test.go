package scene

import (
	"math"
	"testing"

	"delta-robot.klederson.com/internal/config"
	"delta-robot.klederson.com/internal/kinematics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepSolvesAllArms(t *testing.T) {
	p := config.Default()
	a := NewAnimator(p)
	a.Resize(800, 450)

	for i := 0; i < 200; i++ {
		sc := a.Step(float64(i) * 0.033)
		for k, arm := range sc.Arms {
			assert.Equal(t, sc.Anchors[k], arm.Anchor)
			assert.Equal(t, sc.Target, arm.Target)
			assert.InDelta(t, p.L1, arm.Elbow.Dist(arm.Anchor), 1e-6)
			assert.InDelta(t, p.L2, arm.Elbow.Dist(arm.Target), 1e-6)
		}
	}
}

func TestStepFollowsTrajectory(t *testing.T) {
	p := config.Default()
	a := NewAnimator(p)
	a.Resize(1000, 600)

	sc := a.Step(2.5)
	assert.InDelta(t, 500, sc.Center.X, 1e-9)
	assert.InDelta(t, 330, sc.Center.Y, 1e-9)

	want := kinematics.DefaultTrajectory().At(2.5, sc.Center)
	assert.InDelta(t, want.X, sc.Target.X, 1e-9)
	assert.InDelta(t, want.Y, sc.Target.Y, 1e-9)
}

func TestStepTrailIsBounded(t *testing.T) {
	p := config.Default()
	p.TrailLen = 10
	a := NewAnimator(p)

	var targets []kinematics.Point
	var sc Scene
	for i := 0; i < 15; i++ {
		sc = a.Step(float64(i) * 0.1)
		targets = append(targets, sc.Target)
	}

	require.Len(t, sc.Trail, 10)
	assert.Equal(t, targets[5:], sc.Trail)
	assert.Equal(t, sc.Target, sc.Trail[len(sc.Trail)-1])
	assert.Equal(t, 10, sc.TrailCap)
	assert.Len(t, sc.TrailSegments(), 9)
}

func TestSceneIsSnapshot(t *testing.T) {
	a := NewAnimator(config.Default())
	first := a.Step(0)
	before := append([]kinematics.Point(nil), first.Trail...)

	for i := 1; i < 100; i++ {
		a.Step(float64(i))
	}
	assert.Equal(t, before, first.Trail)
}

func TestResizeIgnoresInvalidSizes(t *testing.T) {
	a := NewAnimator(config.Default())
	w, h := a.Size()
	assert.Equal(t, config.DesignWidth, w)
	assert.Equal(t, config.DesignHeight, h)

	a.Resize(0, 300)
	a.Resize(300, -1)
	a.Resize(math.NaN(), 100)
	a.Resize(math.Inf(1), 100)
	a.Resize(100, math.Inf(-1))
	a.Resize(config.MaxExtent*2, 100)
	w, h = a.Size()
	assert.Equal(t, config.DesignWidth, w)
	assert.Equal(t, config.DesignHeight, h)

	a.Resize(640, 480)
	sc := a.Step(0)
	assert.Equal(t, 640.0, sc.Width)
	assert.Equal(t, 480.0, sc.Height)
	assert.InDelta(t, 320, sc.Center.X, 1e-9)
	assert.InDelta(t, 264, sc.Center.Y, 1e-9)
}

func TestAnimatorsAreIndependent(t *testing.T) {
	a := NewAnimator(config.Default())
	b := NewAnimator(config.Default())

	for i := 0; i < 5; i++ {
		a.Step(float64(i))
	}
	b.Step(0)

	assert.Equal(t, 5, a.TrailLen())
	assert.Equal(t, 1, b.TrailLen())
}

func TestResetClearsTrail(t *testing.T) {
	a := NewAnimator(config.Default())
	a.Step(0)
	a.Step(1)
	a.Reset()
	assert.Equal(t, 0, a.TrailLen())

	sc := a.Step(2)
	assert.Len(t, sc.Trail, 1)
}

func TestBasePolygonIsClosed(t *testing.T) {
	sc := NewAnimator(config.Default()).Step(0)
	poly := sc.BasePolygon()
	require.Len(t, poly, 4)
	assert.Equal(t, poly[0], poly[3])
}

func TestGridPhaseWraps(t *testing.T) {
	g := config.Default().Grid
	assert.InDelta(t, 0, gridPhase(0, g), 1e-12)
	assert.InDelta(t, 20, gridPhase(1, g), 1e-9)
	assert.InDelta(t, 16, gridPhase(2, g), 1e-9)
	assert.InDelta(t, 4, gridPhase(-1, g), 1e-9)
}

func TestMayClamp(t *testing.T) {
	assert.False(t, NewAnimator(config.Default()).MayClamp())

	short := config.Default()
	short.L1, short.L2 = 60, 60
	assert.True(t, NewAnimator(short).MayClamp())

	// A long upper link cannot fold back to targets close to the top anchor.
	uneven := config.Default()
	uneven.L1, uneven.L2 = 150, 40
	assert.True(t, NewAnimator(uneven).MayClamp())
}
