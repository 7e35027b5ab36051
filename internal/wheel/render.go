package wheel

import "math"

// Render draws the wheel rotated by rotation radians, followed by the fixed
// pointer. An empty name list draws no slices but never fails.
func Render(s Surface, names []string, rotation float64) {
	width, height := s.Size()
	layout := NewLayout(width, height)
	s.Clear()

	sliceCount := len(names)
	if sliceCount < 1 {
		sliceCount = 1
	}
	sliceAngle := 2 * math.Pi / float64(sliceCount)
	labelRadius := layout.Radius - labelInset

	for i, name := range names {
		start := rotation + float64(i)*sliceAngle
		end := start + sliceAngle
		s.FillSector(layout.CenterX, layout.CenterY, layout.Radius, start, end, sliceFill)
		s.StrokeSector(layout.CenterX, layout.CenterY, layout.Radius, start, end, sliceBorder)

		mid := start + sliceAngle/2
		x := layout.CenterX + math.Cos(mid)*labelRadius
		y := layout.CenterY + math.Sin(mid)*labelRadius
		s.FillText(name, x, y, mid, AlignRight, layout.FontSize, labelRadius, labelColor)
	}

	drawPointer(s, layout.Pointer)
}

func drawPointer(s Surface, p PointerShape) {
	s.FillRoundRect(p.BaseX, p.BaseY, p.BaseWidth, p.BaseHeight, p.BaseHeight/2, pointerBase)

	left := Point{X: p.Tip.X - p.Width/2, Y: p.BaseY}
	right := Point{X: p.Tip.X + p.Width/2, Y: p.BaseY}
	s.FillTriangle(p.Tip, left, right, pointerFill)
	s.StrokeTriangle(p.Tip, left, right, p.StrokeWidth, pointerStroke)
}
