package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasSetBits(t *testing.T) {
	c := NewCanvas(2, 1)
	w, h := c.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 4, h)

	c.Set(0, 0, "#ffffff")
	ch, color := c.Cell(0, 0)
	assert.Equal(t, '⠁', ch)
	assert.Equal(t, "#ffffff", color)

	c.Set(1, 3, "#000000")
	ch, color = c.Cell(0, 0)
	assert.Equal(t, rune(0x2800+0x01+0x80), ch)
	assert.Equal(t, "#000000", color, "last painted dot sets the cell color")

	// Fully lit cell.
	for y := 0; y < 4; y++ {
		for x := 2; x < 4; x++ {
			c.Set(x, y, "#123456")
		}
	}
	ch, _ = c.Cell(1, 0)
	assert.Equal(t, '⣿', ch)
}

func TestCanvasClipsOutOfRange(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Set(-1, 0, "#fff")
	c.Set(0, -1, "#fff")
	c.Set(6, 0, "#fff")
	c.Set(0, 8, "#fff")

	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			ch, _ := c.Cell(col, row)
			assert.Equal(t, ' ', ch)
		}
	}
}

func TestCanvasLineEndpoints(t *testing.T) {
	c := NewCanvas(10, 5)
	c.Line(0, 0, 19, 19, "#fff")

	// Diagonal touches the first and last cell.
	ch, _ := c.Cell(0, 0)
	assert.NotEqual(t, ' ', ch)
	ch, _ = c.Cell(9, 4)
	assert.NotEqual(t, ' ', ch)
}

func TestCanvasStringShape(t *testing.T) {
	c := NewCanvas(7, 3)
	c.Disc(6, 6, 2, "#abcdef")

	out := c.String()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.NotEqual(t, strings.Repeat(" ", 7), lines[1])
}

func TestCanvasRing(t *testing.T) {
	c := NewCanvas(10, 5)
	c.Ring(10, 10, 6, "#fff")

	// Center stays empty, the ring's rightmost point is lit.
	ch, _ := c.Cell(5, 2)
	assert.Equal(t, ' ', ch)
	ch, _ = c.Cell(8, 2)
	assert.NotEqual(t, ' ', ch)
}

func TestCanvasShapesClipToCanvas(t *testing.T) {
	c := NewCanvas(4, 2)

	// Shapes mostly off the canvas only touch the dots inside it.
	c.Disc(-1000, 3, 1001, "#fff")
	ch, _ := c.Cell(0, 0)
	assert.NotEqual(t, ' ', ch)

	c.Ring(1<<30, 1<<30, 1<<29, "#fff")
	c.Disc(-(1 << 30), 0, 1<<29, "#fff")
	ch, _ = c.Cell(3, 1)
	assert.Equal(t, ' ', ch)
}
