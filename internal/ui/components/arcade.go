package components

import (
	"charm.land/lipgloss/v2"

	"github.com/berke-bakar/smart-byte-quiz/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for all arcade sections.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for cabinet border (2) + inner padding (4)
	return min(max(frameWidth-6, 20), 60)
}

// CabinetFrame wraps content in a double-border cabinet frame that is width
// columns wide overall, centering each line.
func CabinetFrame(content string, width int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// CardWidth is the overall width of a card or frame holding cw columns of
// text: border (2) + padding (4).
func CardWidth(cw int) int {
	return cw + 6
}

// ArcadeCard wraps cw-wide content in a rounded-border card.
func ArcadeCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(CardWidth(cw)).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// Marquee renders a highlighted one-line banner, used for short headings
// such as "Question 3".
func Marquee(text string, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.ArcadeYellow).
		Render(text)
}
