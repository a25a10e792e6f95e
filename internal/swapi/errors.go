package swapi

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound matches a FetchError for a record the origin does not have.
var ErrNotFound = errors.New("not found")

// FetchError reports a failed read from the origin API: a transport failure,
// a non-2xx response, or a body that could not be decoded.
type FetchError struct {
	Op         string // "list" or "get"
	URL        string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.StatusCode == http.StatusNotFound:
		return fmt.Sprintf("%s %s: not found", e.Op, e.URL)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s %s: api returned status %d", e.Op, e.URL, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
	default:
		return fmt.Sprintf("%s %s: fetch failed", e.Op, e.URL)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *FetchError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}
