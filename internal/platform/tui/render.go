package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dn2sim/internal/core"
)

// colorStyles maps the EGA palette to ANSI 256 colours.
var colorStyles = [core.PaletteSize]lipgloss.Style{
	core.ColorBlack:        lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorBrown:        lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	core.ColorLightGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorDarkGray:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	core.ColorLightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorLightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorLightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorLightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorLightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
}

func styleFor(c core.Color) lipgloss.Style {
	if !c.Valid() {
		return colorStyles[core.ColorLightGray]
	}
	return colorStyles[c]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colour share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
