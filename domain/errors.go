package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownUser         = errors.New("unknown user")
	ErrUnknownCategory     = errors.New("unknown category")
	ErrInvalidDate         = errors.New("date must be YYYY-MM-DD")
	ErrUnknownFeedItemKind = errors.New("unknown feed item type")
	ErrBookNotFound        = errors.New("book not found")
	ErrMathTopicNotFound   = errors.New("math topic not found")
)

// ExternalHTTPError represents an unexpected HTTP status from an upstream source.
type ExternalHTTPError struct {
	StatusCode int
	URL        string
}

func (e *ExternalHTTPError) Error() string {
	return fmt.Sprintf("unexpected status code %d for %q", e.StatusCode, e.URL)
}
