package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/berke-bakar/smart-byte-quiz/internal/catalog"
	"github.com/berke-bakar/smart-byte-quiz/internal/config"
	"github.com/berke-bakar/smart-byte-quiz/internal/game"
	"github.com/berke-bakar/smart-byte-quiz/internal/session"
	"github.com/berke-bakar/smart-byte-quiz/internal/store"
	"github.com/berke-bakar/smart-byte-quiz/internal/trivia"
)

// scriptedUI picks menu entries in order and answers every question with
// its first choice.
type scriptedUI struct {
	menu    []game.MenuOption
	menuErr error
	asked   int
	notices []string
}

func (u *scriptedUI) ShowTitle(context.Context, string, string) error { return nil }

func (u *scriptedUI) ChooseMenu(context.Context, []game.MenuOption) (game.MenuOption, error) {
	if len(u.menu) == 0 {
		if u.menuErr != nil {
			return 0, u.menuErr
		}
		return game.MenuQuit, nil
	}
	opt := u.menu[0]
	u.menu = u.menu[1:]
	return opt, nil
}

func (u *scriptedUI) EditSettings(_ context.Context, cur store.Settings, _ *catalog.Catalog) (store.Settings, bool, error) {
	return cur, false, nil
}

func (u *scriptedUI) ShowText(context.Context, string, string) error { return nil }

func (u *scriptedUI) ShowResult(context.Context, game.ResultView) (bool, error) { return false, nil }

func (u *scriptedUI) AskQuestion(_ context.Context, p session.Prompt) (string, error) {
	u.asked++
	return p.Choices[0], nil
}

func (u *scriptedUI) Notify(msg string) { u.notices = append(u.notices, msg) }

type stubProvider struct {
	questions []trivia.Question
	err       error
	filter    trivia.Filter
}

func (p *stubProvider) Fetch(_ context.Context, f trivia.Filter) ([]trivia.Question, error) {
	p.filter = f
	return p.questions, p.err
}

func testConfig(t *testing.T) config.Config {
	cfg := config.DefaultConfig()
	cfg.SettingsPath = filepath.Join(t.TempDir(), "wait-trivia", store.FileName)
	return cfg
}

func TestRunQuitWritesDefaultSettings(t *testing.T) {
	cfg := testConfig(t)
	ui := &scriptedUI{}

	err := Run(context.Background(), Options{Config: cfg, UI: ui, Provider: &stubProvider{}})
	require.NoError(t, err)
	assert.FileExists(t, cfg.SettingsPath)
}

func TestRunPlaysWithStoredLimit(t *testing.T) {
	cfg := testConfig(t)
	ui := &scriptedUI{menu: []game.MenuOption{game.MenuPlay}}
	provider := &stubProvider{questions: []trivia.Question{
		{ID: "q1", Prompt: "2 + 2?", CorrectAnswer: "4", IncorrectAnswers: []string{"3", "5"}},
	}}

	require.NoError(t, Run(context.Background(), Options{Config: cfg, UI: ui, Provider: provider}))
	assert.Equal(t, 10, provider.filter.Limit)
	assert.Equal(t, 1, ui.asked)
}

func TestRunReportsFetchFailure(t *testing.T) {
	ui := &scriptedUI{menu: []game.MenuOption{game.MenuPlay}}
	provider := &stubProvider{err: trivia.ErrUnavailable}

	require.NoError(t, Run(context.Background(), Options{Config: testConfig(t), UI: ui, Provider: provider}))
	assert.Equal(t, []string{game.NoticeUnreachable}, ui.notices)
	assert.Zero(t, ui.asked)
}

func TestRunInterruptIsCleanExit(t *testing.T) {
	ui := &scriptedUI{menuErr: game.ErrInterrupted}
	assert.NoError(t, Run(context.Background(), Options{Config: testConfig(t), UI: ui, Provider: &stubProvider{}}))
}

func TestRunFatalUIError(t *testing.T) {
	boom := errors.New("terminal gone")
	ui := &scriptedUI{menuErr: boom}

	err := Run(context.Background(), Options{Config: testConfig(t), UI: ui, Provider: &stubProvider{}})
	assert.ErrorIs(t, err, boom)
}
