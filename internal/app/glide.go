package app

import (
	"delta-robot.klederson.com/internal/config"
	"github.com/charmbracelet/harmonica"
)

// glide eases the logical viewport toward its latest size so the robot base
// drifts to its new center after a resize instead of jumping.
type glide struct {
	spring harmonica.Spring
	w, h   float64
	vw, vh float64
	tw, th float64
	ready  bool
}

func newGlide(fps int) *glide {
	return &glide{
		spring: harmonica.NewSpring(harmonica.FPS(fps), config.GlideFrequency, config.GlideDamping),
	}
}

// Target sets the size to move toward. The first target is taken as is.
func (g *glide) Target(w, h float64) {
	g.tw, g.th = w, h
	if !g.ready {
		g.w, g.h = w, h
		g.ready = true
	}
}

// Step advances one frame and returns the current size.
func (g *glide) Step() (float64, float64) {
	g.w, g.vw = g.spring.Update(g.w, g.vw, g.tw)
	g.h, g.vh = g.spring.Update(g.h, g.vh, g.th)
	return g.w, g.h
}
