package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

func buildStyledRunes(text string, style lipgloss.Style) []styledRune {
	out := make([]styledRune, 0, len(text))
	for _, r := range text {
		out = append(out, styledRune{
			s:       style.Render(string(r)),
			width:   runewidth.RuneWidth(r),
			isSpace: r == ' ',
		})
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes breaks runes into lines of at most width cells, preferring
// the last space on the line.
func wrapStyledRunes(runes []styledRune, width int) []string {
	if width <= 0 {
		return []string{renderStyledRunes(runes)}
	}
	var lines []string
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				lines = append(lines, renderStyledRunes(line[:lastSpaceIdx]))
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				lines = append(lines, renderStyledRunes(line))
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	lines = append(lines, renderStyledRunes(line))
	return lines
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}

// renderPreview lists the wheel names one per entry, wrapped to width and
// cut to height lines. The winner, when >= 0, is highlighted.
func renderPreview(names []string, winner, width, height int) []string {
	var lines []string
	for i, name := range names {
		style := nameStyle
		if i == winner {
			style = winnerStyle
		}
		lines = append(lines, wrapStyledRunes(buildStyledRunes(name, style), width)...)
	}
	if height > 0 && len(lines) > height {
		hidden := len(lines) - height + 1
		lines = append(lines[:height-1], footerStyle.Render(fmt.Sprintf("… +%d", hidden)))
	}
	return lines
}
