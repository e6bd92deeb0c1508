package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/berke-bakar/smart-byte-quiz/internal/ui/theme"
)

// ChecklistItem is one toggleable entry.
type ChecklistItem struct {
	Label   string
	Checked bool
}

// Checklist is a multi-select list. Space toggles the item under the
// cursor, "a" toggles every item, enter confirms.
type Checklist struct {
	Items     []ChecklistItem
	Cursor    int
	Submitted bool
}

// NewChecklist creates a checklist with the given items.
func NewChecklist(items []ChecklistItem) Checklist {
	return Checklist{Items: items}
}

// Update handles navigation, toggling and submission.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Items)-1 {
			c.Cursor++
		}
	case "space", " ", "x":
		if c.Cursor < len(c.Items) {
			c.Items = cloneItems(c.Items)
			c.Items[c.Cursor].Checked = !c.Items[c.Cursor].Checked
		}
	case "a":
		all := c.allChecked()
		c.Items = cloneItems(c.Items)
		for i := range c.Items {
			c.Items[i].Checked = !all
		}
	case "enter":
		c.Submitted = true
	}

	return c, nil
}

func (c Checklist) allChecked() bool {
	for _, it := range c.Items {
		if !it.Checked {
			return false
		}
	}
	return true
}

// Checked returns the indexes of checked items in list order.
func (c Checklist) Checked() []int {
	var out []int
	for i, it := range c.Items {
		if it.Checked {
			out = append(out, i)
		}
	}
	return out
}

// View renders the checklist.
func (c Checklist) View() string {
	var b strings.Builder
	for i, it := range c.Items {
		box := "[ ]"
		if it.Checked {
			box = "[x]"
		}
		prefix := "    "
		if i == c.Cursor && !c.Submitted {
			prefix = "  ▸ "
		}
		line := prefix + box + " " + it.Label

		switch {
		case i == c.Cursor && !c.Submitted:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(line))
		case it.Checked:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Update runs on a value receiver, so toggles copy the slice instead of
// writing through to the caller's items.
func cloneItems(items []ChecklistItem) []ChecklistItem {
	out := make([]ChecklistItem, len(items))
	copy(out, items)
	return out
}
