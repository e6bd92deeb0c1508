package prompt

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/berke-bakar/smart-byte-quiz/internal/ui/components"
	"github.com/berke-bakar/smart-byte-quiz/internal/ui/layout"
)

// QuestionModel shows a trivia question with lettered answers.
type QuestionModel struct {
	header  string
	choice  components.MultiChoice
	aborted bool
}

// NewQuestion creates a question prompt. header is rendered above the
// question as is.
func NewQuestion(header, question string, choices []string) *QuestionModel {
	return &QuestionModel{
		header: header,
		choice: components.NewMultiChoice(question, choices),
	}
}

// Question asks the player to pick one of choices and returns its value.
func Question(ctx context.Context, opts Options, header, question string, choices []string) (string, error) {
	m, err := Run(ctx, opts, NewQuestion(header, question, choices))
	if err != nil {
		return "", err
	}
	answer, _ := m.Answer()
	return answer, nil
}

func (m *QuestionModel) Init() tea.Cmd {
	return nil
}

func (m *QuestionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if isAbort(msg) {
		m.aborted = true
		return m, tea.Quit
	}
	m.choice, _ = m.choice.Update(msg)
	if m.choice.Submitted {
		return m, tea.Quit
	}
	return m, nil
}

func (m *QuestionModel) View() tea.View {
	return tea.NewView(m.Render())
}

// Render returns the prompt as text.
func (m *QuestionModel) Render() string {
	body := m.header + "\n\n" + m.choice.View()
	if m.choice.Submitted {
		return body
	}
	return layout.RenderPrompt(body, []layout.KeyHint{
		{Key: "a-d", Description: "Answer"},
		hintMove,
		hintSelect,
		hintAbort,
	})
}

// Aborted reports whether the player pressed Ctrl+C.
func (m *QuestionModel) Aborted() bool {
	return m.aborted
}

// Answer returns the picked choice.
func (m *QuestionModel) Answer() (string, bool) {
	return m.choice.Chosen()
}
