package components

import (
	"charm.land/lipgloss/v2"

	"github.com/berke-bakar/smart-byte-quiz/internal/ui/theme"
)

// Button is a styled button component.
type Button struct {
	Label  string
	Active bool
}

// NewButton creates a new button.
func NewButton(label string, active bool) Button {
	return Button{
		Label:  label,
		Active: active,
	}
}

// View renders the button.
func (b Button) View() string {
	if b.Active {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render("  " + b.Label)
}

// ButtonRow renders buttons side by side with the one at active highlighted.
func ButtonRow(labels []string, active int) string {
	views := make([]string, 0, len(labels)*2)
	for i, l := range labels {
		if i > 0 {
			views = append(views, "  ")
		}
		views = append(views, NewButton(l, i == active).View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, views...)
}
