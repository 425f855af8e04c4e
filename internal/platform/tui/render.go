package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// colorStyles holds one lipgloss style per core.Color, built once.
var colorStyles = newColorStyles()

// ansiCode returns the 256-color palette index for c. The basic colors map
// onto palette 1-7 in order, the bright ones onto 9-12.
func ansiCode(c core.Color) (string, bool) {
	switch {
	case c >= core.ColorRed && c <= core.ColorWhite:
		return strconv.Itoa(int(c-core.ColorRed) + 1), true
	case c >= core.ColorBrightRed && c <= core.ColorBrightBlue:
		return strconv.Itoa(int(c-core.ColorBrightRed) + 9), true
	case c == core.ColorGray:
		return "245", true
	}
	return "", false
}

func newColorStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, int(core.ColorGray)+1)
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		style := lipgloss.NewStyle()
		if code, ok := ansiCode(c); ok {
			style = style.Foreground(lipgloss.Color(code))
		}
		styles[c] = style
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, n := 0, s.Height(); y < n; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
