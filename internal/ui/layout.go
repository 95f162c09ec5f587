package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the scene panel and side column horizontally,
// with menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, scenePanel, side, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, scenePanel, side)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}

// StackPanels joins side panels vertically.
func StackPanels(panels ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, panels...)
}
