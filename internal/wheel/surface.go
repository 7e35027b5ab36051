package wheel

import "github.com/charmbracelet/lipgloss"

// Align controls how text is placed relative to its anchor.
type Align int

const (
	// AlignLeft starts the text at the anchor.
	AlignLeft Align = iota
	// AlignCenter centers the text on the anchor.
	AlignCenter
	// AlignRight ends the text at the anchor.
	AlignRight
)

// Surface is a 2D drawing target. Angles are in radians, clockwise from +x.
type Surface interface {
	// Size returns the surface dimensions in units.
	Size() (width, height float64)
	// Clear erases everything drawn so far.
	Clear()
	// FillSector fills the circular sector [start, end) around (cx, cy).
	FillSector(cx, cy, radius, start, end float64, fill lipgloss.Color)
	// StrokeSector outlines the sector drawn by FillSector.
	StrokeSector(cx, cy, radius, start, end float64, stroke lipgloss.Color)
	// FillText draws text anchored at (x, y) along angle. size is advisory
	// for surfaces with a fixed glyph size; maxWidth bounds the text length.
	FillText(text string, x, y, angle float64, align Align, size, maxWidth float64, fill lipgloss.Color)
	// FillTriangle fills the triangle a-b-c.
	FillTriangle(a, b, c Point, fill lipgloss.Color)
	// StrokeTriangle outlines the triangle a-b-c.
	StrokeTriangle(a, b, c Point, width float64, stroke lipgloss.Color)
	// FillRoundRect fills a rectangle with rounded corners.
	FillRoundRect(x, y, width, height, radius float64, fill lipgloss.Color)
}

const (
	sliceFill     = lipgloss.Color("#FFFFFF")
	sliceBorder   = lipgloss.Color("#BCCCDC")
	labelColor    = lipgloss.Color("#102A43")
	pointerFill   = lipgloss.Color("#FFB703")
	pointerStroke = lipgloss.Color("#FF9F1C")
	pointerBase   = lipgloss.Color("#1F2933")
)
