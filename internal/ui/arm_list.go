package ui

import (
	"fmt"
	"strings"

	"delta-robot.klederson.com/internal/kinematics"
	"delta-robot.klederson.com/internal/render"
	"delta-robot.klederson.com/internal/scene"
	"github.com/charmbracelet/lipgloss"
)

// ArmRow is the display form of one solved arm.
type ArmRow struct {
	Index    int
	Anchor   kinematics.Point
	Elbow    kinematics.Point
	Shoulder float64 // degrees
	Bend     float64 // degrees
	Reach    float64 // anchor-target distance over L1+L2
	Clamped  bool
}

// ArmRows converts a scene into list rows.
func ArmRows(sc scene.Scene, l1, l2 float64) []ArmRow {
	rows := make([]ArmRow, 0, len(sc.Arms))
	for i, arm := range sc.Arms {
		reach := 0.0
		if l1+l2 > 0 {
			reach = arm.Solution.Reach / (l1 + l2)
		}
		rows = append(rows, ArmRow{
			Index:    i,
			Anchor:   arm.Anchor,
			Elbow:    arm.Elbow,
			Shoulder: render.Degrees(arm.Solution.Shoulder),
			Bend:     render.Degrees(arm.Solution.Bend),
			Reach:    reach,
			Clamped:  arm.Solution.Clamped,
		})
	}
	return rows
}

// Cursor row style: dark text on bright blue
var cursorRowSty = lipgloss.NewStyle().
	Foreground(ColorDeep).
	Background(ColorBright).
	Bold(true)

// armListHeight is the panel height needed for three arms.
const armListHeight = 2 + 2 + 3*3

// ArmListHeight returns the height RenderArmList uses.
func ArmListHeight() int {
	return armListHeight
}

// RenderArmList renders the arm table with the selected arm highlighted.
func RenderArmList(rows []ArmRow, width, cursor int) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}

	title := StylePanelTitle.Render(fmt.Sprintf("ARMS [%d]", len(rows)))
	separator := StyleRule.Render(strings.Repeat("-", innerW))
	lines := []string{title, separator}

	for i, r := range rows {
		lines = append(lines, renderArmEntry(r, innerW, i == cursor)...)
	}

	innerH := armListHeight - 2
	for len(lines) < innerH {
		lines = append(lines, "")
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}

	return StylePanelBorder.Width(width - 2).Height(innerH).Render(strings.Join(lines, "\n"))
}

func renderArmEntry(r ArmRow, maxW int, isCursor bool) []string {
	cursor := "  "
	if isCursor {
		cursor = ">>"
	}
	clamp := " "
	if r.Clamped {
		clamp = "!"
	}

	raw1 := fmt.Sprintf("%s ARM %d %s reach %3.0f%%", cursor, r.Index+1, clamp, r.Reach*100)
	raw2 := fmt.Sprintf("   base  (%5.0f,%5.0f)  A1 %6.1f°", r.Anchor.X, r.Anchor.Y, r.Shoulder)
	raw3 := fmt.Sprintf("   elbow (%5.0f,%5.0f)  A2 %6.1f°", r.Elbow.X, r.Elbow.Y, r.Bend)

	raw1 = truncRaw(raw1, maxW)
	raw2 = truncRaw(raw2, maxW)
	raw3 = truncRaw(raw3, maxW)

	if isCursor {
		return []string{
			cursorRowSty.Render(raw1),
			cursorRowSty.Render(raw2),
			cursorRowSty.Render(raw3),
		}
	}

	name := StyleArmName
	if r.Clamped {
		name = StyleClampMarker
	}
	return []string{
		name.Render(raw1),
		StyleArmCoord.Render(raw2),
		StyleArmAngle.Render(raw3),
	}
}

// truncRaw pads or truncates a raw string to exactly w characters.
func truncRaw(s string, w int) string {
	r := []rune(s)
	if len(r) > w {
		return string(r[:w])
	}
	if len(r) < w {
		return s + strings.Repeat(" ", w-len(r))
	}
	return s
}

// center pads s on the left so it sits in the middle of width columns.
func center(s string, width int) string {
	pad := (width - lipgloss.Width(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}
