package wheel

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	cellHalfWidth  = 0.5
	cellHalfHeight = CellAspect / 2
	// Below this |cos| a label is centered on its anchor instead of growing
	// toward the wheel center.
	verticalLabelCos = 0.3
)

// Cell is one terminal character cell.
type Cell struct {
	Ch rune
	Fg lipgloss.Color
	Bg lipgloss.Color
	// wide marks the trailing half of a double-width rune.
	wide bool
}

// Canvas rasterizes Surface calls onto a grid of terminal cells.
type Canvas struct {
	cols  int
	rows  int
	cells []Cell
}

// NewCanvas allocates a blank canvas of cols x rows cells.
func NewCanvas(cols, rows int) *Canvas {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c := &Canvas{cols: cols, rows: rows, cells: make([]Cell, cols*rows)}
	c.Clear()
	return c
}

// NewWheelCanvas allocates a canvas sized for a wheel of the given side.
func NewWheelCanvas(side int) *Canvas {
	return NewCanvas(side, CanvasRows(side))
}

// Size implements Surface.
func (c *Canvas) Size() (float64, float64) {
	return float64(c.cols), float64(c.rows) * CellAspect
}

// Cols returns the canvas width in cells.
func (c *Canvas) Cols() int {
	return c.cols
}

// Rows returns the canvas height in cells.
func (c *Canvas) Rows() int {
	return c.rows
}

// Clear implements Surface.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{Ch: ' '}
	}
}

// At returns the cell at column x, row y.
func (c *Canvas) At(x, y int) Cell {
	if !c.inBounds(x, y) {
		return Cell{}
	}
	return c.cells[y*c.cols+x]
}

func (cell *Cell) paint(bg lipgloss.Color) {
	cell.Ch = ' '
	cell.Bg = bg
	cell.wide = false
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.cols && y < c.rows
}

func (c *Canvas) cell(x, y int) *Cell {
	return &c.cells[y*c.cols+x]
}

func cellCenter(x, y int) (float64, float64) {
	return float64(x) + cellHalfWidth, (float64(y) + 0.5) * CellAspect
}

// cellExtent is the half-size of a cell projected on the unit direction (ux, uy).
func cellExtent(ux, uy float64) float64 {
	return cellHalfWidth*math.Abs(ux) + cellHalfHeight*math.Abs(uy)
}

func (c *Canvas) span(minX, minY, maxX, maxY float64) (x0, y0, x1, y1 int) {
	x0 = clampInt(int(math.Floor(minX)), 0, c.cols-1)
	x1 = clampInt(int(math.Ceil(maxX)), 0, c.cols-1)
	y0 = clampInt(int(math.Floor(minY/CellAspect)), 0, c.rows-1)
	y1 = clampInt(int(math.Ceil(maxY/CellAspect)), 0, c.rows-1)
	return x0, y0, x1, y1
}

// FillSector implements Surface.
func (c *Canvas) FillSector(cx, cy, radius, start, end float64, fill lipgloss.Color) {
	if c.cols == 0 || c.rows == 0 || radius <= 0 {
		return
	}
	x0, y0, x1, y1 := c.span(cx-radius, cy-radius, cx+radius, cy+radius)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			px, py := cellCenter(x, y)
			dx, dy := px-cx, py-cy
			if math.Hypot(dx, dy) > radius {
				continue
			}
			if !angleWithin(math.Atan2(dy, dx), start, end) {
				continue
			}
			c.cell(x, y).paint(fill)
		}
	}
}

// StrokeSector implements Surface. The outline is drawn on the inside of the
// sector: the rim cells and the cells crossed by both bounding rays.
func (c *Canvas) StrokeSector(cx, cy, radius, start, end float64, stroke lipgloss.Color) {
	if c.cols == 0 || c.rows == 0 || radius <= 0 {
		return
	}
	full := end-start >= 2*math.Pi-1e-9
	x0, y0, x1, y1 := c.span(cx-radius, cy-radius, cx+radius, cy+radius)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			px, py := cellCenter(x, y)
			dx, dy := px-cx, py-cy
			dist := math.Hypot(dx, dy)
			if dist > radius {
				continue
			}
			hit := false
			if angleWithin(math.Atan2(dy, dx), start, end) {
				ext := cellHalfHeight
				if dist > 0 {
					ext = cellExtent(dx/dist, dy/dist)
				}
				hit = dist+ext > radius
			}
			if !hit {
				hit = onRay(dx, dy, start, radius) || (!full && onRay(dx, dy, end, radius))
			}
			if hit {
				c.cell(x, y).paint(stroke)
			}
		}
	}
}

func onRay(dx, dy, angle, radius float64) bool {
	ux, uy := math.Cos(angle), math.Sin(angle)
	along := dx*ux + dy*uy
	perp := -dx*uy + dy*ux
	ext := cellExtent(-uy, ux)
	if along < -ext || along > radius {
		return false
	}
	return perp > -ext && perp <= ext
}

// FillText implements Surface. Terminal glyphs cannot rotate, so text is laid
// out horizontally: right-aligned labels grow from the anchor toward the
// side of the wheel center, near-vertical ones are centered on the anchor.
func (c *Canvas) FillText(text string, x, y, angle float64, align Align, _, maxWidth float64, fill lipgloss.Color) {
	row := int(math.Floor(y / CellAspect))
	if row < 0 || row >= c.rows || text == "" {
		return
	}
	cos := math.Cos(angle)
	avail := maxWidth
	horizontal := math.Abs(cos) >= verticalLabelCos
	if horizontal {
		avail = maxWidth * math.Abs(cos)
	}
	limit := int(math.Floor(avail))
	if limit < 1 {
		limit = 1
	}
	text = runewidth.Truncate(text, limit, "…")
	width := float64(runewidth.StringWidth(text))

	var startX float64
	switch {
	case !horizontal || align == AlignCenter:
		startX = x - width/2
	case (align == AlignRight) == (cos > 0):
		startX = x - width
	default:
		startX = x
	}

	col := int(math.Round(startX))
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if w > 1 && col >= 0 && !c.inBounds(col+w-1, row) {
			break
		}
		for k := 0; k < w; k++ {
			if !c.inBounds(col+k, row) {
				continue
			}
			if k == 0 {
				c.detach(col, row)
			} else {
				c.detachNext(col+k, row)
			}
			cell := c.cell(col+k, row)
			cell.Fg = fill
			cell.wide = k > 0
			cell.Ch = r
			if k > 0 {
				cell.Ch = 0
			}
		}
		col += w
	}
}

// detach blanks the other half of a wide rune overlapping cell (x, y), so a
// partial overwrite never leaves half a glyph behind.
func (c *Canvas) detach(x, y int) {
	if c.cell(x, y).wide {
		if c.inBounds(x-1, y) {
			lead := c.cell(x-1, y)
			lead.paint(lead.Bg)
		}
		return
	}
	c.detachNext(x, y)
}

// detachNext blanks the trailing half at x+1 when cell (x, y) leads a wide
// rune.
func (c *Canvas) detachNext(x, y int) {
	if c.cell(x, y).wide {
		return
	}
	if c.inBounds(x+1, y) && c.cell(x+1, y).wide {
		trail := c.cell(x+1, y)
		trail.paint(trail.Bg)
	}
}

// FillTriangle implements Surface.
func (c *Canvas) FillTriangle(a, b, p Point, fill lipgloss.Color) {
	c.eachInTriangle(a, b, p, func(cell *Cell, _, _ float64) {
		cell.paint(fill)
	})
}

// StrokeTriangle implements Surface. The stroke is drawn on the inner edge.
func (c *Canvas) StrokeTriangle(a, b, p Point, width float64, stroke lipgloss.Color) {
	edges := [][2]Point{{a, b}, {b, p}, {p, a}}
	c.eachInTriangle(a, b, p, func(cell *Cell, px, py float64) {
		for _, e := range edges {
			nx, ny := edgeNormal(e[0], e[1])
			if segmentDistance(px, py, e[0], e[1]) <= width/2+cellExtent(nx, ny) {
				cell.paint(stroke)
				return
			}
		}
	})
}

func (c *Canvas) eachInTriangle(a, b, p Point, fn func(cell *Cell, px, py float64)) {
	if c.cols == 0 || c.rows == 0 {
		return
	}
	minX := math.Min(a.X, math.Min(b.X, p.X))
	maxX := math.Max(a.X, math.Max(b.X, p.X))
	minY := math.Min(a.Y, math.Min(b.Y, p.Y))
	maxY := math.Max(a.Y, math.Max(b.Y, p.Y))
	x0, y0, x1, y1 := c.span(minX, minY, maxX, maxY)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			px, py := cellCenter(x, y)
			if !insideTriangle(px, py, a, b, p) {
				continue
			}
			fn(c.cell(x, y), px, py)
		}
	}
}

// FillRoundRect implements Surface.
func (c *Canvas) FillRoundRect(x, y, width, height, radius float64, fill lipgloss.Color) {
	if c.cols == 0 || c.rows == 0 || width <= 0 || height <= 0 {
		return
	}
	radius = math.Min(radius, math.Min(width, height)/2)
	x0, y0, x1, y1 := c.span(x, y, x+width, y+height)
	for row := y0; row <= y1; row++ {
		for col := x0; col <= x1; col++ {
			px, py := cellCenter(col, row)
			if px < x || px > x+width || py < y || py > y+height {
				continue
			}
			qx := clampFloat(px, x+radius, x+width-radius)
			qy := clampFloat(py, y+radius, y+height-radius)
			if math.Hypot(px-qx, py-qy) > radius {
				continue
			}
			c.cell(col, row).paint(fill)
		}
	}
}

// Lines returns the canvas characters without styling, one string per row.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.rows)
	for y := 0; y < c.rows; y++ {
		var b strings.Builder
		for x := 0; x < c.cols; x++ {
			cell := c.cells[y*c.cols+x]
			if cell.wide {
				continue
			}
			b.WriteRune(cell.Ch)
		}
		lines[y] = b.String()
	}
	return lines
}

// Render returns the canvas as styled text, grouping runs of equal colors.
func (c *Canvas) Render() string {
	styles := map[[2]lipgloss.Color]lipgloss.Style{}
	lines := make([]string, c.rows)
	for y := 0; y < c.rows; y++ {
		var line strings.Builder
		var run strings.Builder
		var key [2]lipgloss.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			line.WriteString(styleFor(styles, key).Render(run.String()))
			run.Reset()
		}
		for x := 0; x < c.cols; x++ {
			cell := c.cells[y*c.cols+x]
			if cell.wide {
				continue
			}
			k := [2]lipgloss.Color{cell.Fg, cell.Bg}
			if k != key {
				flush()
				key = k
			}
			run.WriteRune(cell.Ch)
		}
		flush()
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

func styleFor(cache map[[2]lipgloss.Color]lipgloss.Style, key [2]lipgloss.Color) lipgloss.Style {
	if style, ok := cache[key]; ok {
		return style
	}
	style := lipgloss.NewStyle()
	if key[0] != "" {
		style = style.Foreground(key[0])
	}
	if key[1] != "" {
		style = style.Background(key[1])
	}
	cache[key] = style
	return style
}

// angleWithin reports whether angle lies in the sector [start, end).
func angleWithin(angle, start, end float64) bool {
	span := end - start
	if span >= 2*math.Pi-1e-9 {
		return true
	}
	if span <= 0 {
		return false
	}
	return NormalizeAngle(angle-start) < span
}

func insideTriangle(px, py float64, a, b, c Point) bool {
	d1 := cross(px, py, a, b)
	d2 := cross(px, py, b, c)
	d3 := cross(px, py, c, a)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func cross(px, py float64, a, b Point) float64 {
	return (px-b.X)*(a.Y-b.Y) - (a.X-b.X)*(py-b.Y)
}

func edgeNormal(a, b Point) (float64, float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return 0, 0
	}
	return -dy / length, dx / length
}

func segmentDistance(px, py float64, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return math.Hypot(px-a.X, py-a.Y)
	}
	t := clampFloat(((px-a.X)*dx+(py-a.Y)*dy)/lengthSq, 0, 1)
	return math.Hypot(px-(a.X+t*dx), py-(a.Y+t*dy))
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
