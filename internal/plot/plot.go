// Package plot rasterises solution graph points into a character grid.
package plot

import (
	"fmt"
	"math"
	"strings"

	"github.com/cybercalc/cybercalc/internal/solver"
)

// Placeholder lines shown when there is nothing to plot.
const (
	NoData     = "NO_DATA_STREAM"
	NoDataHint = "Menunggu input persamaan..."
)

const (
	defaultXMin, defaultXMax = -10.0, 10.0
	defaultYMin, defaultYMax = -1.0, 1.0
)

// Domain returns the plotted window. x spans the samples exactly; y is
// padded by a tenth of its span, or by 1 when the span is zero. With no
// usable points the window is [-10,10]×[-1,1].
func Domain(points []solver.GraphPoint) (x0, x1, y0, y1 float64) {
	first := true
	for _, p := range points {
		if !finite(p) {
			continue
		}
		if first {
			x0, x1, y0, y1 = p.X, p.X, p.Y, p.Y
			first = false
			continue
		}
		x0 = math.Min(x0, p.X)
		x1 = math.Max(x1, p.X)
		y0 = math.Min(y0, p.Y)
		y1 = math.Max(y1, p.Y)
	}
	if first {
		return defaultXMin, defaultXMax, defaultYMin, defaultYMax
	}

	pad := (y1 - y0) * 0.1
	if pad == 0 {
		pad = 1
	}
	return x0, x1, y0 - pad, y1 + pad
}

// Render draws points as a w×h grid of runes. Consecutive samples are
// joined so steep segments stay connected. Axes are drawn where x=0 or
// y=0 falls inside the window.
func Render(points []solver.GraphPoint, w, h int) string {
	if w < 4 || h < 3 {
		return ""
	}
	if countFinite(points) == 0 {
		return placeholder(w, h)
	}

	x0, x1, y0, y1 := Domain(points)
	g := newGrid(w, h)

	col := func(x float64) int {
		if x1 == x0 {
			return w / 2
		}
		return int(math.Round((x - x0) / (x1 - x0) * float64(w-1)))
	}
	row := func(y float64) int {
		return int(math.Round((y1 - y) / (y1 - y0) * float64(h-1)))
	}

	if y0 <= 0 && 0 <= y1 {
		r := row(0)
		for c := 0; c < w; c++ {
			g.set(c, r, '─')
		}
	}
	if x0 <= 0 && 0 <= x1 {
		c := col(0)
		for r := 0; r < h; r++ {
			if g.at(c, r) == '─' {
				g.set(c, r, '┼')
			} else {
				g.set(c, r, '│')
			}
		}
	}

	prevC, prevR, havePrev := 0, 0, false
	for _, p := range points {
		if !finite(p) {
			havePrev = false
			continue
		}
		c, r := col(p.X), row(p.Y)
		if havePrev {
			g.line(prevC, prevR, c, r)
		} else {
			g.set(c, r, '•')
		}
		prevC, prevR, havePrev = c, r, true
	}

	return g.String()
}

// Caption describes the window, e.g. "x ∈ [-10, 10]  y ∈ [-1.1, 1.1]".
func Caption(points []solver.GraphPoint) string {
	x0, x1, y0, y1 := Domain(points)
	return fmt.Sprintf("x ∈ [%s, %s]  y ∈ [%s, %s]", num(x0), num(x1), num(y0), num(y1))
}

func num(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.3f", v), "0"), ".")
}

func finite(p solver.GraphPoint) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func countFinite(points []solver.GraphPoint) int {
	n := 0
	for _, p := range points {
		if finite(p) {
			n++
		}
	}
	return n
}

func placeholder(w, h int) string {
	g := newGrid(w, h)
	g.text(h/2-1, NoData)
	g.text(h/2, NoDataHint)
	return g.String()
}

type grid struct {
	w, h  int
	cells [][]rune
}

func newGrid(w, h int) *grid {
	cells := make([][]rune, h)
	for r := range cells {
		cells[r] = []rune(strings.Repeat(" ", w))
	}
	return &grid{w: w, h: h, cells: cells}
}

func (g *grid) at(c, r int) rune {
	if c < 0 || c >= g.w || r < 0 || r >= g.h {
		return 0
	}
	return g.cells[r][c]
}

func (g *grid) set(c, r int, ch rune) {
	if c < 0 || c >= g.w || r < 0 || r >= g.h {
		return
	}
	g.cells[r][c] = ch
}

// line plots a Bresenham segment between two cells.
func (g *grid) line(c0, r0, c1, r1 int) {
	dc := abs(c1 - c0)
	dr := -abs(r1 - r0)
	sc, sr := 1, 1
	if c0 > c1 {
		sc = -1
	}
	if r0 > r1 {
		sr = -1
	}
	err := dc + dr
	for {
		g.set(c0, r0, '•')
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * err
		if e2 >= dr {
			err += dr
			c0 += sc
		}
		if e2 <= dc {
			err += dc
			r0 += sr
		}
	}
}

// text centres s on row r, truncating to the grid width.
func (g *grid) text(r int, s string) {
	rs := []rune(s)
	if len(rs) > g.w {
		rs = rs[:g.w]
	}
	start := (g.w - len(rs)) / 2
	for i, ch := range rs {
		g.set(start+i, r, ch)
	}
}

func (g *grid) String() string {
	lines := make([]string, g.h)
	for r, row := range g.cells {
		lines[r] = string(row)
	}
	return strings.Join(lines, "\n")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
