package prompt

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/berke-bakar/smart-byte-quiz/internal/ui/components"
	"github.com/berke-bakar/smart-byte-quiz/internal/ui/layout"
	"github.com/berke-bakar/smart-byte-quiz/internal/ui/theme"
)

// InputModel asks for a line of text and re-prompts until it validates.
type InputModel struct {
	label     string
	input     components.TextInput
	aborted   bool
	cancelled bool
}

// InputConfig configures an input prompt.
type InputConfig struct {
	Label       string
	Initial     string
	NumericOnly bool
	MaxLength   int
	Validate    func(string) error
}

// NewInput creates a text input prompt.
func NewInput(cfg InputConfig) *InputModel {
	ti := components.NewTextInput("", cfg.NumericOnly, cfg.MaxLength)
	ti.Validate = cfg.Validate
	ti.SetValue(cfg.Initial)
	return &InputModel{label: cfg.Label, input: ti}
}

// Input shows the prompt and returns the accepted value. ok is false if the
// player backed out with Esc.
func Input(ctx context.Context, opts Options, cfg InputConfig) (value string, ok bool, err error) {
	m, err := Run(ctx, opts, NewInput(cfg))
	if err != nil {
		return "", false, err
	}
	if m.Cancelled() {
		return "", false, nil
	}
	return m.Value(), true, nil
}

func (m *InputModel) Init() tea.Cmd {
	return m.input.Init()
}

func (m *InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch {
	case isAbort(msg):
		m.aborted = true
		return m, tea.Quit
	case isCancel(msg):
		m.cancelled = true
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Submitted() {
		return m, tea.Quit
	}
	return m, cmd
}

func (m *InputModel) View() tea.View {
	return tea.NewView(m.Render())
}

// Render returns the prompt as text.
func (m *InputModel) Render() string {
	label := theme.Body.Bold(true).Render("? " + m.label)
	switch {
	case m.cancelled:
		return label + " " + theme.Hint.Render("cancelled") + "\n"
	case m.input.Submitted():
		return label + " " + theme.Selected.Render(m.input.Value()) + "\n"
	}
	return layout.RenderPrompt(label+"\n"+m.input.View(), []layout.KeyHint{
		{Key: "Enter", Description: "Confirm"},
		hintBack,
	})
}

// Aborted reports whether the player pressed Ctrl+C.
func (m *InputModel) Aborted() bool {
	return m.aborted
}

// Cancelled reports whether the player pressed Esc.
func (m *InputModel) Cancelled() bool {
	return m.cancelled
}

// Value returns the current text.
func (m *InputModel) Value() string {
	return m.input.Value()
}
