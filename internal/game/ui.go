package game

import (
	"context"
	"errors"

	"github.com/berke-bakar/smart-byte-quiz/internal/catalog"
	"github.com/berke-bakar/smart-byte-quiz/internal/session"
	"github.com/berke-bakar/smart-byte-quiz/internal/store"
)

// ErrInterrupted is returned by a UI when the player aborts a prompt
// (Ctrl+C). The controller treats it as a request to quit.
var ErrInterrupted = errors.New("interrupted by player")

// ResultView is what the result screen shows.
type ResultView struct {
	Tier       string
	Correct    int
	Incorrect  int
	Percentage float64
}

// UI is everything the controller needs from the terminal. Every method
// blocks until the player has finished with that screen.
type UI interface {
	session.Asker

	// ShowTitle draws the title banner.
	ShowTitle(ctx context.Context, title, tagline string) error

	// ChooseMenu returns the option the player picked.
	ChooseMenu(ctx context.Context, options []MenuOption) (MenuOption, error)

	// EditSettings lets the player edit a copy of current. ok is false if
	// the player backed out without confirming.
	EditSettings(ctx context.Context, current store.Settings, cat *catalog.Catalog) (edited store.Settings, ok bool, err error)

	// ShowText shows a titled page and waits for acknowledgement.
	ShowText(ctx context.Context, heading, body string) error

	// ShowResult shows the final score and asks whether to play again.
	ShowResult(ctx context.Context, v ResultView) (again bool, err error)

	// Notify shows a one-line message that needs no answer.
	Notify(msg string)
}
