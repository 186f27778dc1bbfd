package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hsmto25519/block-game/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorBlock:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorPlayer:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	core.ColorBorder:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorHUD:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorAlert:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorDim:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// helpStyle frames the key help line under the game.
var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).PaddingLeft(1)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
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
