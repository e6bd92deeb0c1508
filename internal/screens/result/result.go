package result

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/berke-bakar/smart-byte-quiz/internal/game"
	"github.com/berke-bakar/smart-byte-quiz/internal/ui/components"
	"github.com/berke-bakar/smart-byte-quiz/internal/ui/theme"
)

// FormatPercentage renders a score with at most two decimals, dropping
// trailing zeros: 100, 50, 33.33.
func FormatPercentage(pct float64) string {
	s := fmt.Sprintf("%.2f", pct)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".") + "%"
}

// Render draws the end-of-round summary.
func Render(v game.ResultView, width int) string {
	cw := components.ContentWidth(width)
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Round complete!"))
	b.WriteString("\n\n")

	if v.Tier != "" {
		b.WriteString(components.Marquee(v.Tier, cw))
		b.WriteString("\n\n")
	}

	correct := theme.Correct.Render(fmt.Sprintf("✓ %d correct", v.Correct))
	incorrect := theme.Incorrect.Render(fmt.Sprintf("✗ %d incorrect", v.Incorrect))
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, correct+"    "+incorrect))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("Score", v.Percentage/100, false, cw-10).View()
	score := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(FormatPercentage(v.Percentage))
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, bar+"  "+score))

	return components.ArcadeCard(b.String(), cw)
}
