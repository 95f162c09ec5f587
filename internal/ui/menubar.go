package ui

import (
	"fmt"
	"strings"

	"delta-robot.klederson.com/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// RenderMenuBar renders the top menu bar. source names where the parameters
// came from: a file path or "defaults".
func RenderMenuBar(width int, source string, paused bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"P", "ause"},
		{"G", "rid"},
		{"T", "rail"},
		{"R", "eset"},
		{"Tab", " arm"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	status := StyleStatusRunning.Render("RUNNING")
	if paused {
		status = StyleStatusPaused.Render("PAUSED")
	}

	sourceInfo := StyleMenuLabel.Render(fmt.Sprintf("Config: %s", source))

	left := StyleMenuKey.Render(title) + menu
	right := status + "  " + sourceInfo + " "

	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return StyleMenuBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
