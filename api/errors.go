package api

import "fmt"

// FetchError is returned when fetching wallet data fails: a transport
// failure, an unexpected HTTP status, or an unparseable response body.
// Exactly one of StatusCode and Err is set.
type FetchError struct {
	StatusCode int   // set when the server replied with an unexpected status
	Err        error // underlying transport or decode error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch wallet data: server returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("failed to fetch wallet data: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// SaveError is returned when writing wallet data to disk fails.
type SaveError struct {
	Filename string
	Err      error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save wallet data to %s: %v", e.Filename, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}
