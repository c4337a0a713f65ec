package provider

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrStatus indicates the provider answered with a non-2xx status.
type ErrStatus struct {
	Code int
	Body string
}

func (e *ErrStatus) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("roadmap provider returned status %d", e.Code)
	}
	return fmt.Sprintf("roadmap provider returned status %d: %s", e.Code, e.Body)
}

// ErrUnavailable indicates the provider could not be reached.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("roadmap provider unavailable: %v", e.Err)
	}
	return "roadmap provider unavailable"
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates a response body that does not decode into
// roadmap steps.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid roadmap response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// StatusCode returns the HTTP status carried by err, or 0 when err did
// not come from a provider response.
func StatusCode(err error) int {
	var se *ErrStatus
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}
