package feed

import (
	"errors"
	"fmt"
)

// ErrInvalidPayload is returned when the body parses as JSON but is neither
// a bare event array nor an object carrying an "events" array.
var ErrInvalidPayload = errors.New("invalid events payload")

// StatusError reports a non-success response from an HTTP feed source.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("feed source returned status %d", e.StatusCode)
}
