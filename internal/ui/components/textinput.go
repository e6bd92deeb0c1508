package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/berke-bakar/smart-byte-quiz/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with game styling and an optional
// validator that gates submission.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool
	Validate    func(string) error
	submitted   bool
	err         error
}

// NewTextInput creates a new styled text input.
func NewTextInput(placeholder string, numericOnly bool, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{
		Model:       ti,
		NumericOnly: numericOnly,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages. Enter submits if the value validates.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.submitted {
		return t, nil
	}

	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		key := kmsg.String()
		if key == "enter" {
			t.Submit()
			return t, nil
		}
		if t.NumericOnly && len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return t, nil
		}
		t.err = nil
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input and the last validation error.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.submitted {
		view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	}
	if t.err != nil {
		view += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("✗ "+t.err.Error())
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the current input value.
func (t *TextInput) SetValue(s string) {
	t.Model.SetValue(s)
	t.Model.CursorEnd()
}

// Submit validates the value and marks the input submitted if it passes.
func (t *TextInput) Submit() {
	if t.Validate != nil {
		if err := t.Validate(t.Value()); err != nil {
			t.err = err
			return
		}
	}
	t.err = nil
	t.submitted = true
}

// Submitted reports whether a valid value was entered.
func (t TextInput) Submitted() bool {
	return t.submitted
}

// Err returns the last validation error, if any.
func (t TextInput) Err() error {
	return t.err
}
