package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille cells hold 2x4 dots:
//
//	1 4
//	2 5
//	3 6
//	7 8
var dotBits = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a Braille dot canvas. Dot coordinates run from (0, 0) at the
// top left to (2·Width-1, 4·Height-1).
type Canvas struct {
	Width, Height int
	cells         [][]rune
	colors        [][]lipgloss.Color
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h}
	c.cells = make([][]rune, h)
	c.colors = make([][]lipgloss.Color, h)
	for i := range c.cells {
		c.cells[i] = make([]rune, w)
		c.colors[i] = make([]lipgloss.Color, w)
	}
	c.Clear()
	return c
}

// Set lights the dot at (x, y) in colour col. An empty colour keeps the
// cell's current colour.
func (c *Canvas) Set(x, y int, col lipgloss.Color) {
	if x < 0 || y < 0 {
		return
	}
	row, cell := y/4, x/2
	if cell >= c.Width || row >= c.Height {
		return
	}
	c.cells[row][cell] |= dotBits[y%4][x%2]
	if col != "" {
		c.colors[row][cell] = col
	}
}

func (c *Canvas) Clear() {
	for i := range c.cells {
		for j := range c.cells[i] {
			c.cells[i][j] = brailleBlank
			c.colors[i][j] = ""
		}
	}
}

// DrawLine draws a line with Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col lipgloss.Color) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Cell returns the Braille rune at row, col and its colour.
func (c *Canvas) Cell(row, col int) (rune, lipgloss.Color) {
	return c.cells[row][col], c.colors[row][col]
}

// Dots reports which of the eight dots of a Braille rune are set, indexed
// [y][x] within the cell.
func Dots(r rune) (dots [4][2]bool) {
	bits := r - brailleBlank
	for y := range dotBits {
		for x := range dotBits[y] {
			dots[y][x] = bits&dotBits[y][x] != 0
		}
	}
	return dots
}

// Rows returns the rendered canvas lines.
func (c *Canvas) Rows() []string {
	rows := make([]string, c.Height)
	for i, row := range c.cells {
		var b strings.Builder
		for j, r := range row {
			if col := c.colors[i][j]; col != "" {
				b.WriteString(lipgloss.NewStyle().Foreground(col).Render(string(r)))
				continue
			}
			b.WriteRune(r)
		}
		rows[i] = b.String()
	}
	return rows
}

func (c *Canvas) String() string {
	return strings.Join(c.Rows(), "\n") + "\n"
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
