package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickwords/internal/core"
)

// palette maps core.Color to ANSI 256 color codes.
var palette = map[core.Color]string{
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorCyan:         "6",
	core.ColorWhite:        "7",
	core.ColorBrightYellow: "11",
	core.ColorBrightCyan:   "14",
	core.ColorBrightWhite:  "15",
	core.ColorGray:         "245",
}

// colorStyles holds one lipgloss style per color. Bright colors are bold so
// the falling piece and banners stand out on low-contrast terminals.
var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for c, code := range palette {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(code))
		switch c {
		case core.ColorBrightYellow, core.ColorBrightCyan, core.ColorBrightWhite:
			style = style.Bold(true)
		}
		styles[c] = style
	}
	return styles
}

// styleFor returns the style for c, falling back to the default style.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color are rendered as one run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
