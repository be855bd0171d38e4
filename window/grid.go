package window

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/npillmayer/canopy/layout"
	"github.com/npillmayer/canopy/raster"
	"github.com/npillmayer/canopy/style"
)

// cellWidthPx and cellHeightPx are the assumed logical pixel size of one
// terminal cell — this package's stand-in for a device pixel ratio,
// since terminals have no native pixel geometry. 8x16 approximates a
// typical monospace terminal font's cell aspect ratio.
const (
	cellWidthPx  = 8.0
	cellHeightPx = 16.0
)

type cell struct {
	r  rune
	fg *style.Color
	bg *style.Color
}

// grid is a terminal-cell canvas built fresh from a display list on
// every render.
type grid struct {
	cols, rows int
	cells      [][]cell
}

func newGrid(cols, rows int) *grid {
	g := &grid{cols: cols, rows: rows}
	g.cells = make([][]cell, rows)
	for y := range g.cells {
		row := make([]cell, cols)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		g.cells[y] = row
	}
	return g
}

func cellRange(r layout.Rect) (x0, y0, x1, y1 int) {
	x0 = int(r.X / cellWidthPx)
	y0 = int(r.Y / cellHeightPx)
	x1 = int((r.X + r.Width) / cellWidthPx)
	y1 = int((r.Y + r.Height) / cellHeightPx)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return
}

func (g *grid) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.cols && y < g.rows
}

func (g *grid) fillRect(r layout.Rect, color style.Color) {
	x0, y0, x1, y1 := cellRange(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if !g.inBounds(x, y) {
				continue
			}
			c := color
			g.cells[y][x] = cell{r: ' ', bg: &c}
		}
	}
}

func (g *grid) drawText(r layout.Rect, text string, color style.Color) {
	x0, y0, _, _ := cellRange(r)
	x := x0
	for _, ru := range text {
		w := runewidth.RuneWidth(ru)
		if w == 0 {
			w = 1
		}
		if g.inBounds(x, y0) {
			c := color
			g.cells[y0][x] = cell{r: ru, fg: &c}
		}
		x += w
	}
}

// apply paints list onto g, rectangles before text within each command's
// own position in the list (display-list order is already paint order).
func (g *grid) apply(list raster.DisplayList) {
	for _, cmd := range list {
		switch cmd.Kind {
		case raster.RectCommand:
			g.fillRect(cmd.Rect, cmd.Color)
		case raster.TextCommand:
			g.drawText(cmd.Rect, cmd.Text, cmd.Color)
		}
	}
}

// render flattens g into a single styled string, one lipgloss-rendered
// cell at a time, joined into rows.
func (g *grid) render() string {
	var out strings.Builder
	for y, row := range g.cells {
		if y > 0 {
			out.WriteByte('\n')
		}
		for _, c := range row {
			st := lipgloss.NewStyle()
			if c.bg != nil {
				st = st.Background(lipgloss.Color(c.bg.String()))
			}
			if c.fg != nil {
				st = st.Foreground(lipgloss.Color(c.fg.String()))
			}
			out.WriteString(st.Render(string(c.r)))
		}
	}
	return out.String()
}
