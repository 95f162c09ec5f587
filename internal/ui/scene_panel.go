package ui

// RenderScenePanel wraps the rendered robot with a styled border.
// The actual drawing is done by the render package.
func RenderScenePanel(width, height int, content, legend string) string {
	if legend != "" {
		content += "\n" + legend
	}
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(content)
}

// RenderLegend produces the toggle legend shown under the scene.
func RenderLegend(width int, grid, trail bool) string {
	toggle := func(on bool, label string) string {
		if on {
			return StyleToggleOn.Render("[" + label + "]")
		}
		return StyleToggleOff.Render("[" + label + "]")
	}
	legend := StyleLegend.Render("layers ") + toggle(grid, "G:grid") + " " + toggle(trail, "T:trail")
	return center(legend, width)
}
