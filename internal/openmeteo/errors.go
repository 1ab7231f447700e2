package openmeteo

import (
	"errors"
	"fmt"
)

// ErrMissingCurrent is returned when a forecast response has no current block
var ErrMissingCurrent = errors.New("response has no current conditions")

// NotFoundError is returned when the geocoding endpoint has no match for a query
// or answers with a non-success status.
type NotFoundError struct {
	Query      string
	StatusCode int // 0 when the request succeeded but returned no results
}

func (e *NotFoundError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("location %q not found: geocoding API returned status %d", e.Query, e.StatusCode)
	}
	return fmt.Sprintf("location %q not found", e.Query)
}

// FetchError is returned when the forecast endpoint answers with a non-success status
type FetchError struct {
	StatusCode int
	Body       string
}

func (e *FetchError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("forecast API returned status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("forecast API returned status %d", e.StatusCode)
}

// NetworkError wraps a transport-level failure
type NetworkError struct {
	Op  string // "geocoding" or "forecast"
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
