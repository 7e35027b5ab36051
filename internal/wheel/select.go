package wheel

import "math"

// NormalizeAngle maps any angle into [0, 2π).
func NormalizeAngle(angle float64) float64 {
	full := 2 * math.Pi
	a := math.Mod(math.Mod(angle, full)+full, full)
	if a >= full {
		return 0
	}
	return a
}

// SelectedIndex returns the index of the slice under the pointer for a wheel
// of count slices rotated by rotation radians, or -1 when count is zero.
// Slice i covers [i·sliceAngle, (i+1)·sliceAngle) in wheel-local angles, the
// same geometry Render draws.
func SelectedIndex(rotation float64, count int) int {
	if count <= 0 {
		return -1
	}
	full := 2 * math.Pi
	sliceAngle := full / float64(count)
	normalized := NormalizeAngle(rotation)
	relative := math.Mod((PointerDirection-normalized)+full, full)
	index := int(math.Floor(relative/sliceAngle)) % count
	if index < 0 {
		index += count
	}
	return index
}

// Selected returns the name under the pointer, or "" for an empty list.
func Selected(names []string, rotation float64) string {
	index := SelectedIndex(rotation, len(names))
	if index < 0 {
		return ""
	}
	return names[index]
}
