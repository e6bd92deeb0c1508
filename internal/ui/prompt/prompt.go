// Package prompt runs one short-lived Bubble Tea program per question put to
// the player. Each prompt renders inline, returns the player's answer and
// leaves its final frame on screen.
package prompt

import (
	"context"
	"errors"
	"io"

	tea "charm.land/bubbletea/v2"

	"github.com/berke-bakar/smart-byte-quiz/internal/ui/layout"
)

// ErrAborted is returned when the player presses Ctrl+C or the context is
// cancelled while a prompt is open.
var ErrAborted = errors.New("prompt aborted")

// Options selects the terminal a prompt talks to. Nil fields mean the
// process's stdin and stdout.
type Options struct {
	Input  io.Reader
	Output io.Writer
}

// abortable is implemented by every prompt model.
type abortable interface {
	tea.Model
	Aborted() bool
}

// Run runs m to completion and returns the final model.
func Run[M abortable](ctx context.Context, opts Options, m M) (M, error) {
	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}

	var zero M
	final, err := tea.NewProgram(m, progOpts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
			return zero, ErrAborted
		}
		return zero, err
	}

	out, ok := final.(M)
	if !ok {
		return zero, errors.New("prompt: unexpected model type")
	}
	if out.Aborted() {
		return zero, ErrAborted
	}
	return out, nil
}

func isAbort(msg tea.Msg) bool {
	kmsg, ok := msg.(tea.KeyPressMsg)
	return ok && kmsg.String() == "ctrl+c"
}

func isCancel(msg tea.Msg) bool {
	kmsg, ok := msg.(tea.KeyPressMsg)
	return ok && kmsg.String() == "esc"
}

var (
	hintAbort  = layout.KeyHint{Key: "Ctrl+C", Description: "Quit"}
	hintBack   = layout.KeyHint{Key: "Esc", Description: "Back"}
	hintSelect = layout.KeyHint{Key: "Enter", Description: "Select"}
	hintMove   = layout.KeyHint{Key: "↑↓", Description: "Navigate"}
)
