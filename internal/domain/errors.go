package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgRequestFailed = "request failed"
	ErrMsgParse         = "failed to parse response"
	ErrMsgNoMatch       = "no city found starting with the expected letters"
	ErrMsgTransport     = "transport error"
)

// Pipeline errors.
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrRequestFailed = errors.New(ErrMsgRequestFailed)
	ErrParse         = errors.New(ErrMsgParse)
	ErrNoMatch       = errors.New(ErrMsgNoMatch)
	ErrTransport     = errors.New(ErrMsgTransport)
)

// RequestFailedError is returned when the API answers with a non-2xx status.
type RequestFailedError struct {
	StatusCode int
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("%s with status: %d", ErrMsgRequestFailed, e.StatusCode)
}

// Unwrap lets errors.Is match ErrRequestFailed.
func (e *RequestFailedError) Unwrap() error {
	return ErrRequestFailed
}

// ErrorKind names the category of a pipeline error for logs and metrics.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrRequestFailed):
		return ErrorKindRequestFailed
	case errors.Is(err, ErrParse):
		return ErrorKindParse
	case errors.Is(err, ErrNoMatch):
		return ErrorKindNoMatch
	case errors.Is(err, ErrTransport):
		return ErrorKindTransport
	default:
		return ErrorKindUnknown
	}
}
