package trivia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/berke-bakar/smart-byte-quiz/internal/catalog"
)

// DefaultBaseURL is The Trivia API v2 questions endpoint.
const DefaultBaseURL = "https://the-trivia-api.com/v2/questions"

// maxBodyBytes caps how much of a response is read. 50 questions are ~30KB.
const maxBodyBytes = 4 << 20

// Question is a single multiple-choice trivia item.
type Question struct {
	ID               string
	Category         string
	Difficulty       string
	Prompt           string
	CorrectAnswer    string
	IncorrectAnswers []string
}

// Choices returns the correct answer followed by the incorrect ones.
func (q Question) Choices() []string {
	out := make([]string, 0, len(q.IncorrectAnswers)+1)
	out = append(out, q.CorrectAnswer)
	return append(out, q.IncorrectAnswers...)
}

// Filter narrows which questions are requested. Empty tag sets mean "all".
type Filter struct {
	Difficulties []string
	Categories   []string
	Limit        int
}

// Provider fetches a batch of questions.
//
// On failure Fetch returns an empty slice together with an error describing
// why. An empty slice with a nil error means the service had nothing matching
// the filter.
type Provider interface {
	Fetch(ctx context.Context, f Filter) ([]Question, error)
}

// Config configures a Client.
type Config struct {
	BaseURL string

	// HTTPClient defaults to a client with Timeout.
	HTTPClient *http.Client

	// Timeout bounds a single request. Zero means no timeout.
	Timeout time.Duration

	// Catalog supplies the tag lists empty filters expand to.
	Catalog *catalog.Catalog

	Logger *slog.Logger
}

// Client is a Provider backed by The Trivia API.
type Client struct {
	baseURL string
	client  *http.Client
	catalog *catalog.Catalog
	logger  *slog.Logger
}

var _ Provider = (*Client)(nil)

// NewClient creates a Client, filling unset Config fields with defaults.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	cat := cfg.Catalog
	if cat == nil {
		cat = catalog.MustLoad()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		baseURL: baseURL,
		client:  hc,
		catalog: cat,
		logger:  logger.With("component", "trivia"),
	}
}

// Fetch requests up to f.Limit questions. The limit is expected to be
// validated by the caller.
func (c *Client) Fetch(ctx context.Context, f Filter) ([]Question, error) {
	reqURL, err := c.requestURL(f)
	if err != nil {
		c.logger.Error("build trivia request", "error", err)
		return nil, err
	}

	start := time.Now()
	questions, err := c.get(ctx, reqURL)
	if err != nil {
		c.logger.Warn("an error happened while getting questions from the trivia service",
			"url", reqURL, "latency_ms", time.Since(start).Milliseconds(), "error", err)
		return nil, err
	}

	c.logger.Debug("fetched questions",
		"url", reqURL, "count", len(questions), "latency_ms", time.Since(start).Milliseconds())
	return questions, nil
}

// requestURL encodes the filter as query parameters, expanding empty tag
// sets to every known tag.
func (c *Client) requestURL(f Filter) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base URL: %w", err)
	}

	difficulties := f.Difficulties
	if len(difficulties) == 0 {
		difficulties = c.catalog.DifficultyIDs()
	}
	categories := f.Categories
	if len(categories) == 0 {
		categories = c.catalog.CategoryIDs()
	}

	q := u.Query()
	q.Set("difficulties", strings.Join(difficulties, ","))
	q.Set("categories", strings.Join(categories, ","))
	q.Set("limit", strconv.Itoa(f.Limit))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) get(ctx context.Context, reqURL string) ([]Question, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: reqURL}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}
	return c.parse(raw)
}

// apiQuestion mirrors the subset of The Trivia API v2 item this client uses.
type apiQuestion struct {
	ID               string   `json:"id"`
	Category         string   `json:"category"`
	Difficulty       string   `json:"difficulty"`
	CorrectAnswer    string   `json:"correctAnswer"`
	IncorrectAnswers []string `json:"incorrectAnswers"`
	Question         struct {
		Text string `json:"text"`
	} `json:"question"`
}

// parse validates and decodes a response body, preserving service order.
// Items whose correct answer is also listed as incorrect are dropped.
func (c *Client) parse(raw []byte) ([]Question, error) {
	if err := validateResponse(raw); err != nil {
		return nil, err
	}

	var items []apiQuestion
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	questions := make([]Question, 0, len(items))
	for _, it := range items {
		if slices.Contains(it.IncorrectAnswers, it.CorrectAnswer) {
			c.logger.Warn("dropping question with ambiguous answers", "id", it.ID)
			continue
		}
		questions = append(questions, Question{
			ID:               it.ID,
			Category:         it.Category,
			Difficulty:       it.Difficulty,
			Prompt:           it.Question.Text,
			CorrectAnswer:    it.CorrectAnswer,
			IncorrectAnswers: slices.Clone(it.IncorrectAnswers),
		})
	}
	return questions, nil
}
