package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/berke-bakar/smart-byte-quiz/internal/catalog"
	"github.com/berke-bakar/smart-byte-quiz/internal/session"
	"github.com/berke-bakar/smart-byte-quiz/internal/store"
	"github.com/berke-bakar/smart-byte-quiz/internal/trivia"
)

// Notices shown to the player.
const (
	NoticeNoChanges       = "No changes."
	NoticeSettingsUpdated = "Settings updated."
	noticeSettingsFailed  = "Settings update failed: %v"

	NoticeNoMatch     = "No questions matched your settings. Try widening them in Settings."
	NoticeUnreachable = "Could not reach the trivia service. Check your connection and try again."
	NoticeBadResponse = "The trivia service sent a response that could not be read. Try again later."
	noticeBadStatus   = "The trivia service answered with HTTP %d. Try again later."
)

// SettingsStore is the part of the settings store the controller uses.
type SettingsStore interface {
	Get() store.Settings
	SetBatch(p store.Patch) error
}

// Options configures a Controller.
type Options struct {
	Store    SettingsStore
	Provider trivia.Provider
	Catalog  *catalog.Catalog
	UI       UI

	// Rand drives answer shuffling. Defaults to a randomly seeded source.
	Rand *rand.Rand

	Logger *slog.Logger
}

// Controller runs the game loop: it performs the active state's action,
// feeds the resulting event to Transition and moves on.
type Controller struct {
	store    SettingsStore
	provider trivia.Provider
	catalog  *catalog.Catalog
	ui       UI
	session  *session.Session
	logger   *slog.Logger

	state State
	last  *session.Result
}

// New creates a Controller positioned at the title screen.
func New(opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		store:    opts.Store,
		provider: opts.Provider,
		catalog:  opts.Catalog,
		ui:       opts.UI,
		session:  session.New(opts.UI, session.Options{Rand: opts.Rand, Logger: logger}),
		logger:   logger.With("component", "game"),
		state:    StateTitle,
	}
}

// State returns the active state.
func (c *Controller) State() State {
	return c.state
}

// LastResult returns the result of the most recent finished session, if the
// current game has one.
func (c *Controller) LastResult() (session.Result, bool) {
	if c.last == nil {
		return session.Result{}, false
	}
	return *c.last, true
}

// Run steps the game until it reaches Quit. It returns nil on a normal quit
// or player interrupt, and the first fatal error otherwise.
func (c *Controller) Run(ctx context.Context) error {
	for c.state != StateQuit {
		if err := c.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Step performs exactly one state's action and transition.
func (c *Controller) Step(ctx context.Context) error {
	if c.state == StateQuit {
		return nil
	}

	var ev Event
	if ctx.Err() != nil {
		ev = EventInterrupt
	} else {
		var err error
		ev, err = c.act(ctx)
		if err != nil {
			if !errors.Is(err, ErrInterrupted) && ctx.Err() == nil {
				return fmt.Errorf("%s: %w", c.state, err)
			}
			ev = EventInterrupt
		}
	}

	next := Transition(c.state, ev)
	c.logger.Debug("transition", "from", c.state, "event", ev, "to", next)
	c.state = next
	return nil
}

func (c *Controller) act(ctx context.Context) (Event, error) {
	switch c.state {
	case StateTitle:
		return EventDone, c.ui.ShowTitle(ctx, c.catalog.Title, c.catalog.Tagline)
	case StateMenu:
		return c.menu(ctx)
	case StateSettings:
		return EventDone, c.settings(ctx)
	case StateHowTo:
		return EventDone, c.ui.ShowText(ctx, MenuHowTo.Label(), c.catalog.HowTo)
	case StateCredits:
		return EventDone, c.ui.ShowText(ctx, MenuCredits.Label(), c.catalog.Credits)
	case StatePlay:
		return c.play(ctx)
	case StateResult:
		return c.result(ctx)
	default:
		return eventInvalid, nil
	}
}

func (c *Controller) menu(ctx context.Context) (Event, error) {
	opt, err := c.ui.ChooseMenu(ctx, MenuOptions())
	if err != nil {
		return eventInvalid, err
	}
	return opt.Event(), nil
}

func (c *Controller) settings(ctx context.Context) error {
	current := c.store.Get()
	edited, ok, err := c.ui.EditSettings(ctx, current, c.catalog)
	if err != nil || !ok {
		return err
	}

	patch := store.Diff(current, edited)
	if patch.IsEmpty() {
		c.ui.Notify(NoticeNoChanges)
		return nil
	}

	if err := c.store.SetBatch(patch); err != nil {
		c.logger.Warn("settings update failed", "error", err)
		c.ui.Notify(fmt.Sprintf(noticeSettingsFailed, err))
		return nil
	}
	c.ui.Notify(NoticeSettingsUpdated)
	return nil
}

func (c *Controller) play(ctx context.Context) (Event, error) {
	c.last = nil

	s := c.store.Get()
	questions, err := c.provider.Fetch(ctx, trivia.Filter{
		Difficulties: s.Difficulties,
		Categories:   s.Categories,
		Limit:        s.Limit,
	})
	if len(questions) == 0 {
		if ctx.Err() != nil {
			return eventInvalid, ctx.Err()
		}
		c.ui.Notify(fetchNotice(err))
		return EventNoQuestions, nil
	}

	res, err := c.session.Run(ctx, questions)
	if err != nil {
		return eventInvalid, err
	}
	c.last = &res
	return EventSessionComplete, nil
}

func (c *Controller) result(ctx context.Context) (Event, error) {
	if c.last == nil {
		return eventInvalid, nil
	}

	pct := c.last.Percentage()
	again, err := c.ui.ShowResult(ctx, ResultView{
		Tier:       session.Tier(pct, c.catalog.Tiers),
		Correct:    c.last.Correct,
		Incorrect:  c.last.Incorrect,
		Percentage: pct,
	})
	if err != nil {
		return eventInvalid, err
	}
	if again {
		return EventPlayAgain, nil
	}
	return EventDecline, nil
}

// fetchNotice explains an empty fetch to the player.
func fetchNotice(err error) string {
	var statusErr *trivia.StatusError
	switch {
	case err == nil:
		return NoticeNoMatch
	case errors.Is(err, trivia.ErrUnavailable):
		return NoticeUnreachable
	case errors.As(err, &statusErr):
		return fmt.Sprintf(noticeBadStatus, statusErr.StatusCode)
	case errors.Is(err, trivia.ErrMalformed):
		return NoticeBadResponse
	default:
		return NoticeUnreachable
	}
}
