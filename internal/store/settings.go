package store

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const (
	// DefaultLimit is the question count used when none has been stored.
	DefaultLimit = 10

	// MinLimit and MaxLimit bound the question count per game.
	MinLimit = 1
	MaxLimit = 50
)

// ErrInvalidSettings is returned for values that can never be stored.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings are the persisted user preferences. Empty tag sets mean "all".
type Settings struct {
	Difficulties []string `json:"difficulties"`
	Categories   []string `json:"categories"`
	Limit        int      `json:"limit"`
}

// Defaults returns the object written on first run.
func Defaults() Settings {
	return Settings{
		Difficulties: []string{},
		Categories:   []string{},
		Limit:        DefaultLimit,
	}
}

func (s Settings) clone() Settings {
	return Settings{
		Difficulties: cloneTags(s.Difficulties),
		Categories:   cloneTags(s.Categories),
		Limit:        s.Limit,
	}
}

// Patch is a partial update. Nil fields are left unchanged.
type Patch struct {
	Difficulties *[]string
	Categories   *[]string
	Limit        *int
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Difficulties == nil && p.Categories == nil && p.Limit == nil
}

// Diff returns a patch holding only the keys that differ between current and
// edited. Tag lists are compared as sets.
func Diff(current, edited Settings) Patch {
	var p Patch
	if !sameTags(current.Difficulties, edited.Difficulties) {
		d := cloneTags(edited.Difficulties)
		p.Difficulties = &d
	}
	if !sameTags(current.Categories, edited.Categories) {
		c := cloneTags(edited.Categories)
		p.Categories = &c
	}
	if current.Limit != edited.Limit {
		l := edited.Limit
		p.Limit = &l
	}
	return p
}

// ParseLimit validates user input for the question count.
func ParseLimit(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("enter a whole number between %d and %d", MinLimit, MaxLimit)
	}
	if err := checkLimit(n); err != nil {
		return 0, err
	}
	return n, nil
}

func checkLimit(n int) error {
	if n < MinLimit || n > MaxLimit {
		return fmt.Errorf("%w: limit must be between %d and %d, got %d", ErrInvalidSettings, MinLimit, MaxLimit, n)
	}
	return nil
}

// cloneTags copies tags, dropping duplicates. The result is never nil so it
// encodes as [] rather than null.
func cloneTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}

func sameTags(a, b []string) bool {
	a, b = cloneTags(a), cloneTags(b)
	if len(a) != len(b) {
		return false
	}
	for _, t := range a {
		if !slices.Contains(b, t) {
			return false
		}
	}
	return true
}
