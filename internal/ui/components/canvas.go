package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

type cell struct {
	glyph rune
	fg    string
}

// Canvas is a grid of terminal cells drawn in layout coordinates. Each cell
// covers Width/Cols by Height/Rows layout units.
type Canvas struct {
	cols, rows int
	sx, sy     float64
	bg         string
	cells      []cell
}

func NewCanvas(cols, rows int, width, height float64, bg string) *Canvas {
	cols = max(cols, 1)
	rows = max(rows, 1)
	c := &Canvas{
		cols:  cols,
		rows:  rows,
		sx:    float64(cols) / width,
		sy:    float64(rows) / height,
		bg:    bg,
		cells: make([]cell, cols*rows),
	}
	for i := range c.cells {
		c.cells[i] = cell{glyph: ' '}
	}
	return c
}

func (c *Canvas) Size() (int, int) { return c.cols, c.rows }

// Cell maps layout coordinates to the cell that contains them.
func (c *Canvas) Cell(x, y float64) (int, int) {
	return int(math.Floor(x * c.sx)), int(math.Floor(y * c.sy))
}

// Point maps a cell back to the layout coordinates of its centre.
func (c *Canvas) Point(col, row int) (float64, float64) {
	return (float64(col) + 0.5) / c.sx, (float64(row) + 0.5) / c.sy
}

// CellRadius is the layout distance from a cell centre to its farthest edge.
func (c *Canvas) CellRadius() float64 {
	return math.Max(0.5/c.sx, 0.5/c.sy)
}

func (c *Canvas) Set(col, row int, glyph rune, fg string) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return
	}
	c.cells[row*c.cols+col] = cell{glyph: glyph, fg: fg}
}

// Line draws a segment between two layout points with Bresenham's algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 float64, glyph rune, fg string) {
	c0, r0 := c.Cell(x0, y0)
	c1, r1 := c.Cell(x1, y1)
	dc, dr := abs(c1-c0), -abs(r1-r0)
	sc, sr := 1, 1
	if c0 > c1 {
		sc = -1
	}
	if r0 > r1 {
		sr = -1
	}
	e := dc + dr
	for steps := 0; steps <= c.cols+c.rows; steps++ {
		c.Set(c0, r0, glyph, fg)
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * e
		if e2 >= dr {
			e += dr
			c0 += sc
		}
		if e2 <= dc {
			e += dc
			r0 += sr
		}
	}
}

// Disc fills every cell whose centre lies within r layout units of (x, y).
// The cell holding the centre is always drawn.
func (c *Canvas) Disc(x, y, r float64, glyph rune, fg string) {
	cc, cr := c.Cell(x, y)
	c.Set(cc, cr, glyph, fg)
	dc := int(math.Ceil(r * c.sx))
	dr := int(math.Ceil(r * c.sy))
	for row := cr - dr; row <= cr+dr; row++ {
		for col := cc - dc; col <= cc+dc; col++ {
			px, py := c.Point(col, row)
			if math.Hypot(px-x, py-y) <= r {
				c.Set(col, row, glyph, fg)
			}
		}
	}
}

// Render styles runs of equal colour in one pass per row.
func (c *Canvas) Render() string {
	base := lipgloss.NewStyle().Background(lipgloss.Color(c.bg))
	var sb strings.Builder
	for row := 0; row < c.rows; row++ {
		var run strings.Builder
		fg := c.cells[row*c.cols].fg
		flush := func() {
			st := base
			if fg != "" {
				st = st.Foreground(lipgloss.Color(fg))
			}
			sb.WriteString(st.Render(run.String()))
			run.Reset()
		}
		for col := 0; col < c.cols; col++ {
			cl := c.cells[row*c.cols+col]
			if cl.fg != fg && cl.glyph != ' ' {
				flush()
				fg = cl.fg
			}
			run.WriteRune(cl.glyph)
		}
		flush()
		if row < c.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Fade blends fg toward bg so that opacity 1 keeps fg and 0 yields bg.
func Fade(fg, bg string, opacity float64) string {
	f, err := colorful.Hex(fg)
	if err != nil {
		return fg
	}
	b, err := colorful.Hex(bg)
	if err != nil {
		return fg
	}
	opacity = math.Max(0, math.Min(1, opacity))
	return b.BlendRgb(f, opacity).Clamped().Hex()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
