// Package textpage renders the static pages reached from the menu, such as
// the how-to and the credits.
package textpage

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/berke-bakar/smart-byte-quiz/internal/ui/components"
	"github.com/berke-bakar/smart-byte-quiz/internal/ui/theme"
)

// Render draws heading above body inside a card.
func Render(heading, body string, width int) string {
	cw := components.ContentWidth(width)

	text := lipgloss.NewStyle().
		Width(cw).
		Foreground(theme.Text).
		Render(strings.TrimSpace(body))

	return components.Marquee(heading, components.CardWidth(cw)) + "\n" + components.ArcadeCard(text, cw)
}
