package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/circlefun/internal/palette"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a grid of Braille cells with one foreground colour per cell.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]palette.Color

	styles map[palette.Color]lipgloss.Style
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]palette.Color, h),
		styles: make(map[palette.Color]lipgloss.Style),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]palette.Color, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
	return c
}

// SubWidth and SubHeight are the canvas size in sub-pixels.
func (c *Canvas) SubWidth() int  { return c.Width * 2 }
func (c *Canvas) SubHeight() int { return c.Height * 4 }

// Set lights the sub-pixel (x, y) and gives its cell the colour col.
func (c *Canvas) Set(x, y int, col palette.Color) {
	if x < 0 || y < 0 {
		return
	}

	cx := x / 2
	row := y / 4
	if cx >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][cx] |= rune(pixelMap[y%4][x%2])
	c.Colors[row][cx] = col
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
}

// FillCircle lights every sub-pixel whose centre lies within r of
// (cx, cy). Anything off the canvas is clipped.
func (c *Canvas) FillCircle(cx, cy, r float64, col palette.Color) {
	if r <= 0 {
		return
	}
	x0 := max(0, int(math.Floor(cx-r)))
	x1 := min(c.SubWidth()-1, int(math.Ceil(cx+r)))
	y0 := max(0, int(math.Floor(cy-r)))
	y1 := min(c.SubHeight()-1, int(math.Ceil(cy+r)))
	rr := r * r
	for y := y0; y <= y1; y++ {
		dy := float64(y) + 0.5 - cy
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy <= rr {
				c.Set(x, y, col)
			}
		}
	}
}

// String is the uncoloured grid.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render colours the grid, one lipgloss span per run of same-coloured
// lit cells. Rows are joined with newlines, no trailing newline.
func (c *Canvas) Render() string {
	var b strings.Builder
	for row := range c.Grid {
		if row > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for start < c.Width {
			end := start + 1
			lit := c.Grid[row][start] != blank
			for end < c.Width && (c.Grid[row][end] != blank) == lit &&
				(!lit || c.Colors[row][end] == c.Colors[row][start]) {
				end++
			}
			run := string(c.Grid[row][start:end])
			if lit {
				run = c.style(c.Colors[row][start]).Render(run)
			}
			b.WriteString(run)
			start = end
		}
	}
	return b.String()
}

func (c *Canvas) style(col palette.Color) lipgloss.Style {
	s, ok := c.styles[col]
	if !ok {
		s = lipgloss.NewStyle().Foreground(lipgloss.Color(col.Hex()))
		c.styles[col] = s
	}
	return s
}
