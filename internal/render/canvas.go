package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille dot bits, indexed [y][x] within a 2x4 cell.
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const brailleBase = 0x2800

// Canvas is a dot grid backed by braille characters: every terminal cell
// holds 2x4 dots. Each cell takes the color of the last dot painted into it,
// so callers paint back to front.
type Canvas struct {
	cols, rows int
	bits       []uint8
	colors     []string
}

// NewCanvas creates a canvas of cols x rows terminal cells.
func NewCanvas(cols, rows int) *Canvas {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &Canvas{
		cols:   cols,
		rows:   rows,
		bits:   make([]uint8, cols*rows),
		colors: make([]string, cols*rows),
	}
}

// Size returns the canvas size in dots.
func (c *Canvas) Size() (int, int) {
	return c.cols * 2, c.rows * 4
}

// Set lights the dot at (x, y). Dots outside the canvas are dropped.
func (c *Canvas) Set(x, y int, color string) {
	if x < 0 || y < 0 || x >= c.cols*2 || y >= c.rows*4 {
		return
	}
	idx := (y/4)*c.cols + x/2
	c.bits[idx] |= brailleBits[y%4][x%2]
	c.colors[idx] = color
}

// Line draws a one-dot wide line (Bresenham).
func (c *Canvas) Line(x0, y0, x1, y1 int, color string) {
	c.walk(x0, y0, x1, y1, func(x, y int) {
		c.Set(x, y, color)
	})
}

// ThickLine draws a line width dots wide with round caps.
func (c *Canvas) ThickLine(x0, y0, x1, y1, width int, color string) {
	if width <= 1 {
		c.Line(x0, y0, x1, y1, color)
		return
	}
	r := width / 2
	c.walk(x0, y0, x1, y1, func(x, y int) {
		c.Disc(x, y, r, color)
	})
}

// Disc fills a circle of radius r dots.
func (c *Canvas) Disc(cx, cy, r int, color string) {
	if r <= 0 {
		c.Set(cx, cy, color)
		return
	}
	if !c.touches(cx, cy, r) {
		return
	}
	w, h := c.Size()
	rr := r*r + r
	for y := max(cy-r, 0); y <= min(cy+r, h-1); y++ {
		for x := max(cx-r, 0); x <= min(cx+r, w-1); x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= rr {
				c.Set(x, y, color)
			}
		}
	}
}

// Ring draws the outline of a circle of radius r dots.
func (c *Canvas) Ring(cx, cy, r int, color string) {
	if r <= 0 {
		c.Set(cx, cy, color)
		return
	}
	if !c.touches(cx, cy, r) {
		return
	}
	// Midpoint circle
	x, y := r, 0
	err := 1 - r
	for x >= y {
		for _, p := range [8][2]int{
			{x, y}, {y, x}, {-y, x}, {-x, y},
			{-x, -y}, {-y, -x}, {y, -x}, {x, -y},
		} {
			c.Set(cx+p[0], cy+p[1], color)
		}
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

// touches reports whether the box around a circle overlaps the canvas.
func (c *Canvas) touches(cx, cy, r int) bool {
	w, h := c.Size()
	return cx+r >= 0 && cy+r >= 0 && cx-r < w && cy-r < h
}

// Cell returns the character and color of a terminal cell.
func (c *Canvas) Cell(col, row int) (rune, string) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return ' ', ""
	}
	idx := row*c.cols + col
	if c.bits[idx] == 0 {
		return ' ', ""
	}
	return rune(brailleBase + int(c.bits[idx])), c.colors[idx]
}

// String renders the canvas as styled rows separated by newlines.
func (c *Canvas) String() string {
	styles := make(map[string]lipgloss.Style)

	var sb strings.Builder
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			ch, color := c.Cell(col, row)
			if ch == ' ' {
				sb.WriteByte(' ')
				continue
			}
			sty, ok := styles[color]
			if !ok {
				sty = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
				styles[color] = sty
			}
			sb.WriteString(sty.Render(string(ch)))
		}
		if row < c.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (c *Canvas) walk(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
