package ui

import (
	"fmt"
	"strings"

	"delta-robot.klederson.com/internal/kinematics"
	"github.com/charmbracelet/lipgloss"
)

// StatusInfo is what the status bar reports about the current frame.
type StatusInfo struct {
	Time     float64
	Target   kinematics.Point
	TrailLen int
	TrailCap int
	FPS      int
	Paused   bool
	Err      string // last config reload error, empty if none
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, s StatusInfo) string {
	status := StyleStatusRunning.Render("[RUNNING]")
	if s.Paused {
		status = StyleStatusPaused.Render("[PAUSED]")
	}

	info := fmt.Sprintf(" t: %6.2fs  Target: (%6.1f, %6.1f)  Trail: %d/%d  FPS: %d",
		s.Time, s.Target.X, s.Target.Y, s.TrailLen, s.TrailCap, s.FPS)

	content := status + StyleStatusBar.Render(info)
	if s.Err != "" {
		content += "  " + StyleStatusError.Render("config: "+s.Err)
	}

	gap := width - 2 - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}

	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}
