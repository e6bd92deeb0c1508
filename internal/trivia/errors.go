package trivia

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable indicates the trivia service could not be reached.
	ErrUnavailable = errors.New("trivia service unavailable")

	// ErrMalformed indicates the response body was not a valid question list.
	ErrMalformed = errors.New("malformed trivia response")
)

// StatusError reports a non-200 response from the trivia service.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("trivia service returned HTTP %d for %s", e.StatusCode, e.URL)
}
