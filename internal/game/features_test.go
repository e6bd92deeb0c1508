package game

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/cucumber/godog"

	"github.com/berke-bakar/smart-byte-quiz/internal/catalog"
	"github.com/berke-bakar/smart-byte-quiz/internal/store"
	"github.com/berke-bakar/smart-byte-quiz/internal/trivia"
)

// TestGameFeatures runs the Gherkin scenarios under features/.
func TestGameFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "game",
		ScenarioInitializer: InitializeGameScenario,
		Options: &godog.Options{
			Format:   "progress",
			Paths:    []string{"features"},
			Strict:   true,
			TestingT: t,
			Output:   io.Discard,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeGameScenario wires the game steps.
func InitializeGameScenario(ctx *godog.ScenarioContext) {
	state := &gameScenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		return ctx, state.reset()
	})
	ctx.After(func(ctx context.Context, _ *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, err
	})

	ctx.Step(`^no settings file exists$`, state.givenNoSettingsFile)
	ctx.Step(`^the settings store is opened$`, state.whenStoreOpened)
	ctx.Step(`^the settings file exists$`, state.thenSettingsFileExists)
	ctx.Step(`^the question limit is (\d+)$`, state.thenLimitIs)
	ctx.Step(`^no difficulties or categories are selected$`, state.thenNoTagsSelected)

	ctx.Step(`^the trivia service is unreachable$`, state.givenServiceUnreachable)
	ctx.Step(`^the trivia service returns (\d+) questions$`, state.givenServiceReturns)
	ctx.Step(`^the player answers question (\d+) correctly and the rest wrong$`, state.givenAnswersOneCorrect)
	ctx.Step(`^the player will answer "(yes|no)" to play again$`, state.givenPlayAgain)
	ctx.Step(`^the player picks "([^"]+)" from the menu$`, state.givenMenuPick)
	ctx.Step(`^the game is on the "([^"]+)" screen$`, state.gameIsOn)
	ctx.Step(`^the game advances$`, state.whenAdvance)
	ctx.Step(`^the game advances (\d+) times$`, state.whenAdvanceTimes)
	ctx.Step(`^no question was asked$`, state.thenNoQuestionAsked)
	ctx.Step(`^the player was told "([^"]+)"$`, state.thenNotified)
	ctx.Step(`^the score is (\d+) correct and (\d+) incorrect$`, state.thenScore)
	ctx.Step(`^the percentage is ([\d.]+)$`, state.thenPercentage)
}

type gameScenarioState struct {
	dir      string
	path     string
	settings *store.Store

	ui       *fakeUI
	provider *fakeProvider
	ctrl     *Controller
	stepped  int
}

// reset builds a fresh controller over fakes for each scenario.
func (s *gameScenarioState) reset() error {
	dir, err := os.MkdirTemp("", "wait-trivia-features-*")
	if err != nil {
		return err
	}
	s.dir = dir
	s.path = filepath.Join(dir, store.FileName)
	s.settings = nil
	s.stepped = 0
	s.ui = &fakeUI{}
	s.provider = &fakeProvider{}
	s.ctrl = New(Options{
		Store:    newMemStore(),
		Provider: s.provider,
		Catalog:  catalog.MustLoad(),
		UI:       s.ui,
		Rand:     rand.New(rand.NewPCG(9, 9)),
	})
	return nil
}

func (s *gameScenarioState) cleanup() {
	if s.dir != "" {
		os.RemoveAll(s.dir)
	}
}

func (s *gameScenarioState) givenNoSettingsFile() error {
	if _, err := os.Stat(s.path); !os.IsNotExist(err) {
		return fmt.Errorf("expected %s to be absent", s.path)
	}
	return nil
}

func (s *gameScenarioState) whenStoreOpened() error {
	s.settings = store.Open(s.path, store.Options{Catalog: catalog.MustLoad()})
	return nil
}

func (s *gameScenarioState) thenSettingsFileExists() error {
	_, err := os.Stat(s.path)
	return err
}

func (s *gameScenarioState) thenLimitIs(n int) error {
	if got := s.settings.Limit(); got != n {
		return fmt.Errorf("limit = %d, want %d", got, n)
	}
	return nil
}

func (s *gameScenarioState) thenNoTagsSelected() error {
	if d, c := s.settings.Difficulties(), s.settings.Categories(); len(d) != 0 || len(c) != 0 {
		return fmt.Errorf("expected no tags, got difficulties=%v categories=%v", d, c)
	}
	return nil
}

func (s *gameScenarioState) givenServiceUnreachable() error {
	s.provider.err = fmt.Errorf("%w: connection refused", trivia.ErrUnavailable)
	return nil
}

func (s *gameScenarioState) givenServiceReturns(n int) error {
	qs := threeQuestions()
	if n > len(qs) {
		return fmt.Errorf("only %d canned questions", len(qs))
	}
	s.provider.questions = qs[:n]
	return nil
}

func (s *gameScenarioState) givenAnswersOneCorrect(n int) error {
	s.ui.answerOf = answerCorrectly(s.provider.questions, n)
	return nil
}

func (s *gameScenarioState) givenPlayAgain(answer string) error {
	s.ui.again = append(s.ui.again, answer == "yes")
	return nil
}

func (s *gameScenarioState) givenMenuPick(label string) error {
	for _, opt := range MenuOptions() {
		if opt.Label() == label {
			s.ui.menu = append(s.ui.menu, opt)
			return nil
		}
	}
	return fmt.Errorf("no menu option %q", label)
}

// gameIsOn positions the controller before any step has run and asserts the
// active state afterwards.
func (s *gameScenarioState) gameIsOn(name string) error {
	want, err := parseState(name)
	if err != nil {
		return err
	}
	if s.stepped == 0 {
		s.ctrl.state = want
		return nil
	}
	if got := s.ctrl.State(); got != want {
		return fmt.Errorf("state = %v, want %v", got, want)
	}
	return nil
}

func (s *gameScenarioState) whenAdvance() error {
	return s.whenAdvanceTimes(1)
}

func (s *gameScenarioState) whenAdvanceTimes(n int) error {
	for range n {
		if err := s.ctrl.Step(context.Background()); err != nil {
			return err
		}
		s.stepped++
	}
	return nil
}

func (s *gameScenarioState) thenNoQuestionAsked() error {
	if len(s.ui.prompts) != 0 {
		return fmt.Errorf("%d questions were asked", len(s.ui.prompts))
	}
	return nil
}

func (s *gameScenarioState) thenNotified(msg string) error {
	for _, n := range s.ui.notices {
		if n == msg {
			return nil
		}
	}
	return fmt.Errorf("notice %q not shown, got %q", msg, s.ui.notices)
}

func (s *gameScenarioState) thenScore(correct, incorrect int) error {
	res, ok := s.ctrl.LastResult()
	if !ok {
		return fmt.Errorf("no result recorded")
	}
	if res.Correct != correct || res.Incorrect != incorrect {
		return fmt.Errorf("score = %d/%d, want %d/%d", res.Correct, res.Incorrect, correct, incorrect)
	}
	return nil
}

func (s *gameScenarioState) thenPercentage(want float64) error {
	res, ok := s.ctrl.LastResult()
	if !ok {
		return fmt.Errorf("no result recorded")
	}
	if got := res.Percentage(); math.Abs(got-want) > 0.01 {
		return fmt.Errorf("percentage = %.4f, want %.2f", got, want)
	}
	return nil
}

func parseState(name string) (State, error) {
	for _, st := range AllStates() {
		if st.String() == name {
			return st, nil
		}
	}
	return stateInvalid, fmt.Errorf("unknown state %q", name)
}
