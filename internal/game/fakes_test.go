package game

import (
	"context"
	"errors"
	"slices"

	"github.com/berke-bakar/smart-byte-quiz/internal/catalog"
	"github.com/berke-bakar/smart-byte-quiz/internal/session"
	"github.com/berke-bakar/smart-byte-quiz/internal/store"
	"github.com/berke-bakar/smart-byte-quiz/internal/trivia"
)

var errScriptExhausted = errors.New("fake ui: script exhausted")

// fakeUI replays scripted player input.
type fakeUI struct {
	menu  []MenuOption
	again []bool
	edit  func(store.Settings) (store.Settings, bool)

	// interruptAt makes the named method return ErrInterrupted.
	interruptAt string
	failWith    error

	prompts  []session.Prompt
	notices  []string
	texts    []string
	titles   int
	results  []ResultView
	answerOf func(session.Prompt) string
}

func (u *fakeUI) fail(method string) error {
	if u.interruptAt == method {
		return ErrInterrupted
	}
	if u.failWith != nil {
		return u.failWith
	}
	return nil
}

func (u *fakeUI) AskQuestion(_ context.Context, p session.Prompt) (string, error) {
	if err := u.fail("AskQuestion"); err != nil {
		return "", err
	}
	u.prompts = append(u.prompts, p)
	if u.answerOf != nil {
		return u.answerOf(p), nil
	}
	return p.Choices[0], nil
}

func (u *fakeUI) ShowTitle(context.Context, string, string) error {
	if err := u.fail("ShowTitle"); err != nil {
		return err
	}
	u.titles++
	return nil
}

func (u *fakeUI) ChooseMenu(_ context.Context, options []MenuOption) (MenuOption, error) {
	if err := u.fail("ChooseMenu"); err != nil {
		return 0, err
	}
	if len(u.menu) == 0 {
		return 0, errScriptExhausted
	}
	opt := u.menu[0]
	u.menu = u.menu[1:]
	if !slices.Contains(options, opt) {
		return 0, errors.New("fake ui: option not offered")
	}
	return opt, nil
}

func (u *fakeUI) EditSettings(_ context.Context, current store.Settings, _ *catalog.Catalog) (store.Settings, bool, error) {
	if err := u.fail("EditSettings"); err != nil {
		return store.Settings{}, false, err
	}
	if u.edit == nil {
		return current, false, nil
	}
	edited, ok := u.edit(current)
	return edited, ok, nil
}

func (u *fakeUI) ShowText(_ context.Context, heading, _ string) error {
	if err := u.fail("ShowText"); err != nil {
		return err
	}
	u.texts = append(u.texts, heading)
	return nil
}

func (u *fakeUI) ShowResult(_ context.Context, v ResultView) (bool, error) {
	if err := u.fail("ShowResult"); err != nil {
		return false, err
	}
	u.results = append(u.results, v)
	if len(u.again) == 0 {
		return false, nil
	}
	again := u.again[0]
	u.again = u.again[1:]
	return again, nil
}

func (u *fakeUI) Notify(msg string) {
	u.notices = append(u.notices, msg)
}

// answerCorrectly returns an answer function that picks the right answer for
// the questions whose number is listed and a wrong one otherwise.
func answerCorrectly(qs []trivia.Question, numbers ...int) func(session.Prompt) string {
	return func(p session.Prompt) string {
		want := qs[p.Number-1].CorrectAnswer
		if slices.Contains(numbers, p.Number) {
			return want
		}
		for _, c := range p.Choices {
			if c != want {
				return c
			}
		}
		return ""
	}
}

// fakeProvider returns a fixed batch and records the filters it was asked for.
type fakeProvider struct {
	questions []trivia.Question
	err       error
	filters   []trivia.Filter
}

func (p *fakeProvider) Fetch(_ context.Context, f trivia.Filter) ([]trivia.Question, error) {
	p.filters = append(p.filters, f)
	if p.err != nil {
		return []trivia.Question{}, p.err
	}
	return slices.Clone(p.questions), nil
}

// memStore is an in-memory SettingsStore whose writes can be made to fail.
type memStore struct {
	settings store.Settings
	failErr  error
	patches  []store.Patch
}

func newMemStore() *memStore {
	return &memStore{settings: store.Defaults()}
}

func (m *memStore) Get() store.Settings {
	s := m.settings
	s.Difficulties = slices.Clone(s.Difficulties)
	s.Categories = slices.Clone(s.Categories)
	return s
}

func (m *memStore) SetBatch(p store.Patch) error {
	m.patches = append(m.patches, p)
	if m.failErr != nil {
		return m.failErr
	}
	if p.Difficulties != nil {
		m.settings.Difficulties = slices.Clone(*p.Difficulties)
	}
	if p.Categories != nil {
		m.settings.Categories = slices.Clone(*p.Categories)
	}
	if p.Limit != nil {
		m.settings.Limit = *p.Limit
	}
	return nil
}

func threeQuestions() []trivia.Question {
	return []trivia.Question{
		{ID: "q1", Prompt: "Capital of Japan?", CorrectAnswer: "Tokyo", IncorrectAnswers: []string{"Osaka", "Kyoto", "Nagoya"}},
		{ID: "q2", Prompt: "Chemical symbol for gold?", CorrectAnswer: "Au", IncorrectAnswers: []string{"Ag", "Gd", "Go"}},
		{ID: "q3", Prompt: "Who painted the Mona Lisa?", CorrectAnswer: "Leonardo da Vinci", IncorrectAnswers: []string{"Michelangelo", "Raphael", "Donatello"}},
	}
}
