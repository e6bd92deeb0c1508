package prompt

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/berke-bakar/smart-byte-quiz/internal/ui/components"
	"github.com/berke-bakar/smart-byte-quiz/internal/ui/layout"
	"github.com/berke-bakar/smart-byte-quiz/internal/ui/theme"
)

// ChecklistModel asks the player to tick any number of items.
type ChecklistModel struct {
	title     string
	list      components.Checklist
	aborted   bool
	cancelled bool
}

// NewChecklist creates a multi-select prompt.
func NewChecklist(title string, items []components.ChecklistItem) *ChecklistModel {
	return &ChecklistModel{
		title: title,
		list:  components.NewChecklist(items),
	}
}

// Checklist shows the list and returns the indexes of the ticked items. ok is
// false if the player backed out with Esc.
func Checklist(ctx context.Context, opts Options, title string, items []components.ChecklistItem) (checked []int, ok bool, err error) {
	m, err := Run(ctx, opts, NewChecklist(title, items))
	if err != nil {
		return nil, false, err
	}
	if m.Cancelled() {
		return nil, false, nil
	}
	return m.Checked(), true, nil
}

func (m *ChecklistModel) Init() tea.Cmd {
	return nil
}

func (m *ChecklistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch {
	case isAbort(msg):
		m.aborted = true
		return m, tea.Quit
	case isCancel(msg):
		m.cancelled = true
		return m, tea.Quit
	}
	m.list, _ = m.list.Update(msg)
	if m.list.Submitted {
		return m, tea.Quit
	}
	return m, nil
}

func (m *ChecklistModel) View() tea.View {
	return tea.NewView(m.Render())
}

// Render returns the prompt as text.
func (m *ChecklistModel) Render() string {
	title := theme.Body.Bold(true).Render("? " + m.title)
	switch {
	case m.cancelled:
		return title + " " + theme.Hint.Render("cancelled") + "\n"
	case m.list.Submitted:
		var labels []string
		for _, i := range m.list.Checked() {
			labels = append(labels, m.list.Items[i].Label)
		}
		summary := "none (all)"
		if len(labels) > 0 {
			summary = strings.Join(labels, ", ")
		}
		return title + " " + theme.Selected.Render(summary) + "\n"
	}
	return layout.RenderPrompt(title+"\n"+m.list.View(), []layout.KeyHint{
		hintMove,
		{Key: "Space", Description: "Toggle"},
		{Key: "a", Description: "All"},
		{Key: "Enter", Description: "Confirm"},
		hintBack,
	})
}

// Aborted reports whether the player pressed Ctrl+C.
func (m *ChecklistModel) Aborted() bool {
	return m.aborted
}

// Cancelled reports whether the player pressed Esc.
func (m *ChecklistModel) Cancelled() bool {
	return m.cancelled
}

// Checked returns the indexes of the ticked items.
func (m *ChecklistModel) Checked() []int {
	return m.list.Checked()
}
