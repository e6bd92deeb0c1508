package prompt

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/berke-bakar/smart-byte-quiz/internal/ui/components"
	"github.com/berke-bakar/smart-byte-quiz/internal/ui/layout"
	"github.com/berke-bakar/smart-byte-quiz/internal/ui/theme"
)

// SelectModel asks the player to pick one item from a menu.
type SelectModel struct {
	title   string
	menu    components.Menu
	aborted bool
}

// NewSelect creates a single-choice prompt.
func NewSelect(title string, items []components.MenuItem) *SelectModel {
	return &SelectModel{
		title: title,
		menu:  components.NewMenu(items),
	}
}

// Select shows the menu and returns the index of the picked item.
func Select(ctx context.Context, opts Options, title string, items []components.MenuItem) (int, error) {
	m, err := Run(ctx, opts, NewSelect(title, items))
	if err != nil {
		return -1, err
	}
	return m.Chosen(), nil
}

func (m *SelectModel) Init() tea.Cmd {
	return nil
}

func (m *SelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if isAbort(msg) {
		m.aborted = true
		return m, tea.Quit
	}
	m.menu, _ = m.menu.Update(msg)
	if m.menu.Done() {
		return m, tea.Quit
	}
	return m, nil
}

func (m *SelectModel) View() tea.View {
	return tea.NewView(m.Render())
}

// Render returns the prompt as text.
func (m *SelectModel) Render() string {
	title := theme.Body.Bold(true).Render("? " + m.title)
	if m.menu.Done() {
		item := m.menu.Items[m.menu.Chosen]
		return title + " " + theme.Selected.Render(item.Label) + "\n"
	}
	return layout.RenderPrompt(title+"\n"+m.menu.View(),
		[]layout.KeyHint{hintMove, hintSelect, hintAbort})
}

// Aborted reports whether the player pressed Ctrl+C.
func (m *SelectModel) Aborted() bool {
	return m.aborted
}

// Chosen returns the picked index, or -1.
func (m *SelectModel) Chosen() int {
	return m.menu.Chosen
}
