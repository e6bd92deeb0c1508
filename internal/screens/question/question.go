// Package question renders the banner shown above every trivia question.
package question

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/berke-bakar/smart-byte-quiz/internal/session"
	"github.com/berke-bakar/smart-byte-quiz/internal/ui/components"
	"github.com/berke-bakar/smart-byte-quiz/internal/ui/layout"
	"github.com/berke-bakar/smart-byte-quiz/internal/ui/theme"
)

// Labels are the display names for a prompt's category and difficulty.
type Labels struct {
	App        string
	Category   string
	Difficulty string
}

// RenderHeader draws the header bar, the "Question N" marquee and the round
// progress for p.
func RenderHeader(p session.Prompt, l Labels, width int) string {
	w := components.CardWidth(components.ContentWidth(width))
	var b strings.Builder

	status := fmt.Sprintf("%d/%d", p.Number, p.Total)
	b.WriteString(layout.RenderHeader(l.App, "", status, w))
	b.WriteString("\n")
	b.WriteString(components.Marquee(fmt.Sprintf("Question %d", p.Number), w))
	b.WriteString("\n")

	done := 0.0
	if p.Total > 0 {
		done = float64(p.Number-1) / float64(p.Total)
	}
	b.WriteString(components.NewProgressBar("", done, false, w).View())

	var tags []string
	for _, s := range []string{l.Category, l.Difficulty} {
		if s != "" {
			tags = append(tags, s)
		}
	}
	if len(tags) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.Join(tags, " · ")))
	}

	return b.String()
}
