package cif

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure modes.
var (
	ErrNoToken       = errors.New("cif: no token configured")
	ErrNoObservables = errors.New("cif: no observables to submit")
)

// APIError represents a failed read request. The remote's response body is
// carried verbatim in Body; it is never parsed as JSON because failure
// bodies are not guaranteed to be valid JSON.
type APIError struct {
	StatusCode int
	Reason     string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("cif: API error %d %s: %s", e.StatusCode, e.Reason, e.Body)
	}
	return fmt.Sprintf("cif: API error %d %s", e.StatusCode, e.Reason)
}

// SubmissionError represents a failed write request (status >= 399).
// Write failures are more severe than read failures: the client logs them
// at fatal level before returning, and callers must not continue as if the
// submission succeeded.
type SubmissionError struct {
	APIError
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("cif: submission failed (%d %s): contact the service administrator", e.StatusCode, e.Reason)
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *SubmissionError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// DecodeError indicates a JSON parse failure on an otherwise-successful
// response. It is distinct from an application error: the remote accepted
// the request but returned a body the client could not decode.
type DecodeError struct {
	Resource string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cif: decoding %s response: %v", e.Resource, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TransportError indicates a connection, timeout, or TLS failure before a
// response was received.
type TransportError struct {
	Resource string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("cif: transport failure on %s: %v", e.Resource, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
