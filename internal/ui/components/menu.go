package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/berke-bakar/smart-byte-quiz/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Key   string // optional hotkey that picks the item directly
	Label string
}

// Menu is a vertical single-choice menu.
type Menu struct {
	Items    []MenuItem
	Selected int
	Chosen   int
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []MenuItem) Menu {
	return Menu{
		Items:  items,
		Chosen: -1,
	}
}

// Done reports whether an item has been picked.
func (m Menu) Done() bool {
	return m.Chosen >= 0
}

// Update handles keyboard navigation, hotkeys and enter.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || m.Done() {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Items)-1 {
			m.Selected++
		}
	case "enter":
		if m.Selected < len(m.Items) {
			m.Chosen = m.Selected
		}
	default:
		for i, item := range m.Items {
			if item.Key != "" && item.Key == key {
				m.Selected = i
				m.Chosen = i
				break
			}
		}
	}

	return m, nil
}

// View renders the menu.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		label := item.Label
		if item.Key != "" {
			label = item.Key + ") " + label
		}
		if i == m.Selected {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.ArcadeYellow).
				Bold(true).
				Render("  ▸ " + label))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    " + label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
