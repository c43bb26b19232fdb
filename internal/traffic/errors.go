package traffic

import (
	"errors"
	"fmt"
)

var (
	ErrFetch             = errors.New("traffic fetch failed")
	ErrUnexpectedStatus  = errors.New("unexpected status")
	ErrMalformedPayload  = errors.New("malformed traffic payload")
	ErrMalformedSnapshot = errors.New("malformed traffic snapshot")
)

// FetchError describes a failed lookup for one domain. It matches ErrFetch
// with errors.Is, and whatever it wraps.
type FetchError struct {
	Domain string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetching traffic for %q: status %d: %v", e.Domain, e.Status, e.Err)
	}
	return fmt.Sprintf("fetching traffic for %q: %v", e.Domain, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}
