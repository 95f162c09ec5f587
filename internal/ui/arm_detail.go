package ui

import (
	"fmt"
	"math"
	"strings"

	"delta-robot.klederson.com/internal/config"
	"delta-robot.klederson.com/internal/render"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// RenderArmDetail renders the selected arm: reach gauge, elbow angle history
// and a dial along the upper link.
func RenderArmDetail(r ArmRow, history []float64, width, height int) string {
	innerW := width - 4
	if innerW < 20 {
		innerW = 20
	}

	title := StylePanelTitle.Render(fmt.Sprintf("ARM %d DETAIL", r.Index+1))
	sep := StyleRule.Render(strings.Repeat("-", innerW))
	lines := []string{title, sep}

	labelSty := lipgloss.NewStyle().Foreground(ColorMid)
	valSty := lipgloss.NewStyle().Foreground(ColorBright).Bold(true)

	barWidth := innerW - 16
	if barWidth < 6 {
		barWidth = 6
	}
	lines = append(lines, labelSty.Render("  Reach ")+renderReachBar(r.Reach, barWidth)+
		valSty.Render(fmt.Sprintf(" %3.0f%%", r.Reach*100)))

	if chart := RenderTelemetry(history, innerW-2, config.TelemetryRows); chart != "" {
		lines = append(lines, labelSty.Render("  Elbow angle (deg):"))
		for _, l := range strings.Split(chart, "\n") {
			lines = append(lines, " "+l)
		}
	}

	// Dial takes the remaining rows, keeping one for its label.
	dialH := height - 2 - len(lines) - 1
	if dialH > 9 {
		dialH = 9
	}
	dialW := innerW
	if dialW > dialH*3 {
		dialW = dialH * 3
	}
	bearing := render.Bearing(r.Shoulder * math.Pi / 180)
	if dial := RenderDial(dialW, dialH, bearing); dial != "" {
		prefix := strings.Repeat(" ", max(0, (innerW-dialW)/2))
		for _, dl := range strings.Split(dial, "\n") {
			lines = append(lines, prefix+dl)
		}
		label := fmt.Sprintf("upper link %s  %.0f°", bearingToDir(bearing), render.Degrees(bearing))
		lines = append(lines, center(valSty.Render(label), innerW))
	}

	innerH := height - 2
	if innerH < 1 {
		innerH = 1
	}
	for len(lines) < innerH {
		lines = append(lines, "")
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}

	return StylePanelActive.Width(width - 2).Height(innerH).Render(strings.Join(lines, "\n"))
}

// RenderTelemetry plots values with asciigraph. It needs at least two
// samples.
func RenderTelemetry(values []float64, width, height int) string {
	if len(values) < 2 || width < 12 || height < 1 {
		return ""
	}
	// asciigraph adds a label gutter on the left.
	plotW := width - 9
	chart := asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(plotW),
		asciigraph.Precision(0),
	)
	return StyleChart.Render(chart)
}

func renderReachBar(ratio float64, width int) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(math.Round(ratio * float64(width)))

	bar := strings.Repeat("|", filled) + strings.Repeat("-", width-filled)
	color := ColorLink
	if ratio > 0.95 {
		color = ColorWarning
	}
	filledPart := lipgloss.NewStyle().Foreground(color).Render(bar[:filled])
	emptyPart := lipgloss.NewStyle().Foreground(ColorDim).Render(bar[filled:])
	return StyleHelp.Render("[") + filledPart + emptyPart + StyleHelp.Render("]")
}
