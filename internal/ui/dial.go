package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderDial draws a compass-style dial with a needle along bearing
// (radians, 0=north, clockwise). Used for the selected arm's upper link.
func RenderDial(width, height int, bearing float64) string {
	if width < 9 || height < 5 {
		return ""
	}

	grid := make([][]byte, height)
	isNeedle := make([][]bool, height)
	for i := range grid {
		grid[i] = make([]byte, width)
		isNeedle[i] = make([]bool, width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	fcx := float64(width) / 2.0
	fcy := float64(height) / 2.0
	rx := fcx - 2.0 // horizontal radius in columns
	ry := fcy - 1.0 // vertical radius in rows
	if rx < 3 {
		rx = 3
	}
	if ry < 2 {
		ry = 2
	}

	// Ring
	steps := 80
	for i := 0; i < steps; i++ {
		a := float64(i) * 2 * math.Pi / float64(steps)
		col := int(math.Round(fcx + rx*math.Sin(a)))
		row := int(math.Round(fcy - ry*math.Cos(a)))
		setGrid(grid, width, height, col, row, dialRingChar(a))
	}

	cx := int(math.Round(fcx))
	cy := int(math.Round(fcy))

	// Tick marks every 90°
	setGrid(grid, width, height, cx, cy-int(math.Round(ry)), '0')
	setGrid(grid, width, height, cx+int(math.Round(rx)), cy, '>')
	setGrid(grid, width, height, cx, cy+int(math.Round(ry)), 'v')
	setGrid(grid, width, height, cx-int(math.Round(rx)), cy, '<')

	// Needle from the hub to 85% of the ring
	sinA := math.Sin(bearing)
	cosA := math.Cos(bearing)
	shaftSteps := int(math.Max(rx, ry) * 2)
	for s := 1; s <= shaftSteps; s++ {
		t := float64(s) / float64(shaftSteps) * 0.85
		col := int(math.Round(fcx + t*rx*sinA))
		row := int(math.Round(fcy - t*ry*cosA))
		if col >= 0 && col < width && row >= 0 && row < height {
			grid[row][col] = shaftChar(bearing)
			isNeedle[row][col] = true
		}
	}
	tipCol := int(math.Round(fcx + 0.85*rx*sinA))
	tipRow := int(math.Round(fcy - 0.85*ry*cosA))
	if tipCol >= 0 && tipCol < width && tipRow >= 0 && tipRow < height {
		grid[tipRow][tipCol] = 'o'
		isNeedle[tipRow][tipCol] = true
	}

	setGrid(grid, width, height, cx, cy, '+')

	needleSty := lipgloss.NewStyle().Foreground(ColorBright).Bold(true)
	ringSty := lipgloss.NewStyle().Foreground(ColorDim)
	markSty := lipgloss.NewStyle().Foreground(ColorLink).Bold(true)

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			ch := grid[row][col]
			switch {
			case ch == '+':
				sb.WriteString(markSty.Render(string(ch)))
			case isNeedle[row][col]:
				sb.WriteString(needleSty.Render(string(ch)))
			case ch == '0' || ch == '>' || ch == 'v' || ch == '<':
				sb.WriteString(markSty.Render(string(ch)))
			case ch != ' ':
				sb.WriteString(ringSty.Render(string(ch)))
			default:
				sb.WriteByte(' ')
			}
		}
		if row < height-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

func setGrid(grid [][]byte, w, h, col, row int, ch byte) {
	if col >= 0 && col < w && row >= 0 && row < h {
		grid[row][col] = ch
	}
}

func sector(a float64) int {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return int(math.Round(a/(math.Pi/4))) % 8
}

func dialRingChar(a float64) byte {
	switch sector(a) {
	case 0, 4:
		return '-'
	case 1, 5:
		return '\\'
	case 2, 6:
		return '|'
	default:
		return '/'
	}
}

// shaftChar returns the line character for a bearing.
func shaftChar(a float64) byte {
	switch sector(a) {
	case 0, 4: // N, S
		return '|'
	case 2, 6: // E, W
		return '-'
	case 1, 5: // NE, SW
		return '/'
	default: // SE, NW
		return '\\'
	}
}

// bearingToDir names the nearest of eight compass directions.
func bearingToDir(a float64) string {
	dirs := []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	return dirs[sector(a)]
}
