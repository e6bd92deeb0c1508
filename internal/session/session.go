package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/berke-bakar/smart-byte-quiz/internal/trivia"
)

// ErrInvalidInput is returned when Run is given no questions. Callers are
// expected to check for an empty batch before starting a session.
var ErrInvalidInput = errors.New("session needs at least one question")

// Prompt is what the player sees for one question.
type Prompt struct {
	Number     int // 1-based
	Total      int
	Text       string
	Choices    []string // display order
	Category   string
	Difficulty string
}

// Asker presents a question and blocks until the player picks one of
// p.Choices, returning the chosen value.
type Asker interface {
	AskQuestion(ctx context.Context, p Prompt) (string, error)
}

// Options configures a Session.
type Options struct {
	// Rand drives answer shuffling. Defaults to a randomly seeded PCG.
	Rand *rand.Rand

	Logger *slog.Logger
}

// Session runs batches of questions through an Asker.
type Session struct {
	asker  Asker
	rng    *rand.Rand
	logger *slog.Logger
}

// New creates a Session that asks questions through asker.
func New(asker Asker, opts Options) *Session {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		asker:  asker,
		rng:    rng,
		logger: logger.With("component", "session"),
	}
}

// Run asks every question once, in order, and returns the final tally.
// Answers are shuffled once per question; the same order is shown and
// matched against. If the asker fails the run stops and no result is
// returned.
func (s *Session) Run(ctx context.Context, questions []trivia.Question) (Result, error) {
	if len(questions) == 0 {
		return Result{}, ErrInvalidInput
	}

	log := s.logger.With("session_id", uuid.New().String())
	log.Info("session started", "questions", len(questions))

	var res Result
	for i, q := range questions {
		p := Prompt{
			Number:     i + 1,
			Total:      len(questions),
			Text:       q.Prompt,
			Choices:    Shuffle(s.rng, q.Choices()),
			Category:   q.Category,
			Difficulty: q.Difficulty,
		}

		answer, err := s.asker.AskQuestion(ctx, p)
		if err != nil {
			log.Info("session aborted", "question", p.Number, "error", err)
			return Result{}, fmt.Errorf("question %d: %w", p.Number, err)
		}

		if answer == q.CorrectAnswer {
			res.Correct++
		} else {
			res.Incorrect++
		}
		log.Debug("answered", "question", p.Number, "id", q.ID, "correct", answer == q.CorrectAnswer)
	}

	log.Info("session finished", "correct", res.Correct, "incorrect", res.Incorrect)
	return res, nil
}
