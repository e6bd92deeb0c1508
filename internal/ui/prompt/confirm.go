package prompt

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/berke-bakar/smart-byte-quiz/internal/ui/components"
	"github.com/berke-bakar/smart-byte-quiz/internal/ui/layout"
	"github.com/berke-bakar/smart-byte-quiz/internal/ui/theme"
)

// ConfirmModel asks a yes/no question.
type ConfirmModel struct {
	question string
	yes      bool
	done     bool
	aborted  bool
}

// NewConfirm creates a yes/no prompt with def preselected.
func NewConfirm(question string, def bool) *ConfirmModel {
	return &ConfirmModel{question: question, yes: def}
}

// Confirm asks question and returns the answer.
func Confirm(ctx context.Context, opts Options, question string, def bool) (bool, error) {
	m, err := Run(ctx, opts, NewConfirm(question, def))
	if err != nil {
		return false, err
	}
	return m.Yes(), nil
}

func (m *ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m *ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if isAbort(msg) {
		m.aborted = true
		return m, tea.Quit
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "y", "Y":
		m.yes, m.done = true, true
	case "n", "N", "esc":
		m.yes, m.done = false, true
	case "left", "right", "tab", "h", "l":
		m.yes = !m.yes
	case "enter":
		m.done = true
	}
	if m.done {
		return m, tea.Quit
	}
	return m, nil
}

func (m *ConfirmModel) View() tea.View {
	return tea.NewView(m.Render())
}

// Render returns the prompt as text.
func (m *ConfirmModel) Render() string {
	q := theme.Body.Bold(true).Render("? " + m.question)
	if m.done {
		answer := "No"
		if m.yes {
			answer = "Yes"
		}
		return q + " " + theme.Selected.Render(answer) + "\n"
	}

	active := 1
	if m.yes {
		active = 0
	}
	return layout.RenderPrompt(q+"\n\n"+components.ButtonRow([]string{"Yes", "No"}, active),
		[]layout.KeyHint{{Key: "y/n", Description: "Answer"}, {Key: "←→", Description: "Switch"}, hintSelect, hintAbort})
}

// Aborted reports whether the player pressed Ctrl+C.
func (m *ConfirmModel) Aborted() bool {
	return m.aborted
}

// Done reports whether the player answered.
func (m *ConfirmModel) Done() bool {
	return m.done
}

// Yes returns the current answer.
func (m *ConfirmModel) Yes() bool {
	return m.yes
}
