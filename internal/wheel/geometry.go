// Package wheel draws the prize wheel and resolves which slice the pointer marks.
//
// Geometry is expressed in surface units. On the terminal canvas one unit is
// one column wide and a row is CellAspect units tall, so circles stay round.
package wheel

import "math"

// PointerDirection is the wheel-local angle marked by the pointer: straight
// down, since surface y grows downward and angles grow clockwise on screen.
const PointerDirection = math.Pi / 2

const (
	// CellAspect is the height of a terminal row in surface units.
	CellAspect = 2.0
	// ContainerMargin is the horizontal space kept free around the wheel.
	ContainerMargin = 4
	// DefaultMaxSize caps the wheel side length in columns.
	DefaultMaxSize = 60
	// MinSize is the smallest side length the wheel is drawn at.
	MinSize = 12

	rimMargin  = 1.0
	labelInset = 1.5

	minFontSize = 12.0
	fontScale   = 0.08

	pointerTipOffset     = 0.0
	pointerMinHeight     = 6.0
	pointerHeightScale   = 0.2
	pointerWidthScale    = 0.35
	pointerWidthRatio    = 0.85
	pointerBaseRatio     = 0.35
	pointerBaseMaxHeight = 4.0
	pointerBaseWidth     = 0.6
	pointerStrokeScale   = 0.05
	pointerMinStroke     = 0.5
)

// Point is a position on the surface.
type Point struct {
	X float64
	Y float64
}

// PointerShape describes the fixed pointer below the wheel.
type PointerShape struct {
	Tip         Point
	Width       float64
	Height      float64
	StrokeWidth float64
	BaseX       float64
	BaseY       float64
	BaseWidth   float64
	BaseHeight  float64
}

// Layout holds the wheel geometry for one surface size.
type Layout struct {
	CenterX  float64
	CenterY  float64
	Radius   float64
	FontSize float64
	Pointer  PointerShape
}

// NewLayout computes the geometry for a surface of the given width. The
// wheel is square with side width; the pointer hangs below it and is clipped
// when the surface is not tall enough.
func NewLayout(width, height float64) Layout {
	size := width
	if height > 0 {
		size = math.Min(width, height)
	}
	radius := math.Max(size/2-rimMargin, 0)
	cx := width / 2
	cy := size / 2
	return Layout{
		CenterX:  cx,
		CenterY:  cy,
		Radius:   radius,
		FontSize: FontSize(radius),
		Pointer:  pointerShape(size, cx, cy, radius),
	}
}

// FontSize returns the label size for a wheel radius.
func FontSize(radius float64) float64 {
	return math.Max(minFontSize, radius*fontScale)
}

func pointerShape(size, cx, cy, radius float64) PointerShape {
	height := math.Max(size*pointerHeightScale, pointerMinHeight)
	width := math.Min(size*pointerWidthScale, height*pointerWidthRatio)
	baseHeight := math.Min(height*pointerBaseRatio, pointerBaseMaxHeight)
	baseWidth := width * pointerBaseWidth
	tip := Point{
		X: cx + math.Cos(PointerDirection)*(radius+pointerTipOffset),
		Y: cy + math.Sin(PointerDirection)*(radius+pointerTipOffset),
	}
	baseY := tip.Y + height
	return PointerShape{
		Tip:         tip,
		Width:       width,
		Height:      height,
		StrokeWidth: math.Max(width*pointerStrokeScale, pointerMinStroke),
		BaseX:       tip.X - baseWidth/2,
		BaseY:       baseY,
		BaseWidth:   baseWidth,
		BaseHeight:  baseHeight,
	}
}

// PointerRoom returns the vertical space the pointer needs below a wheel of
// the given side length.
func PointerRoom(size float64) float64 {
	height := math.Max(size*pointerHeightScale, pointerMinHeight)
	baseHeight := math.Min(height*pointerBaseRatio, pointerBaseMaxHeight)
	return pointerTipOffset + height + baseHeight - rimMargin
}

// SurfaceSize picks the wheel side length, in columns, for a container of
// cols x rows terminal cells: min(cols - ContainerMargin, maxSize), shrunk
// until wheel and pointer fit the available rows.
func SurfaceSize(cols, rows, maxSize int) int {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	side := cols - ContainerMargin
	if side > maxSize {
		side = maxSize
	}
	available := float64(rows) * CellAspect
	for side > MinSize && float64(side)+PointerRoom(float64(side)) > available {
		side--
	}
	if side < MinSize {
		side = MinSize
	}
	return side
}

// CanvasRows returns the number of terminal rows needed for a wheel of the
// given side length including its pointer.
func CanvasRows(side int) int {
	total := float64(side) + PointerRoom(float64(side))
	return int(math.Ceil(total / CellAspect))
}
