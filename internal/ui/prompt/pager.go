package prompt

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/berke-bakar/smart-byte-quiz/internal/ui/layout"
)

// PagerModel shows a block of text until the player presses a key.
type PagerModel struct {
	content string
	done    bool
	aborted bool
}

// NewPager creates a pager over pre-rendered content.
func NewPager(content string) *PagerModel {
	return &PagerModel{content: content}
}

// Pager shows content and waits for acknowledgement.
func Pager(ctx context.Context, opts Options, content string) error {
	_, err := Run(ctx, opts, NewPager(content))
	return err
}

func (m *PagerModel) Init() tea.Cmd {
	return nil
}

func (m *PagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if isAbort(msg) {
		m.aborted = true
		return m, tea.Quit
	}
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "space", " ", "q":
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *PagerModel) View() tea.View {
	return tea.NewView(m.Render())
}

// Render returns the prompt as text.
func (m *PagerModel) Render() string {
	if m.done {
		return m.content + "\n"
	}
	return layout.RenderPrompt(m.content, []layout.KeyHint{
		{Key: "Enter", Description: "Back to title"},
		hintAbort,
	})
}

// Aborted reports whether the player pressed Ctrl+C.
func (m *PagerModel) Aborted() bool {
	return m.aborted
}

// Done reports whether the player acknowledged the page.
func (m *PagerModel) Done() bool {
	return m.done
}
