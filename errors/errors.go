// Package errors defines the error taxonomy shared by all z/OSMF service
// packages. Callers can branch on the reason without parsing messages.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusReason classifies an error returned by the SDK.
type StatusReason string

const (
	// StatusReasonInvalid means a required parameter was missing or held
	// an unsupported value. Detected before any network call.
	StatusReasonInvalid StatusReason = "Invalid"

	// StatusReasonNotFound means the remote query matched nothing.
	StatusReasonNotFound StatusReason = "NotFound"

	// StatusReasonRemote means z/OSMF answered with a non-2xx status or an
	// unparsable body.
	StatusReasonRemote StatusReason = "Remote"

	// StatusReasonExhausted means a poll loop ran out of attempts before
	// the desired condition was observed.
	StatusReasonExhausted StatusReason = "Exhausted"

	// StatusReasonUnknown is everything else.
	StatusReasonUnknown StatusReason = "Unknown"
)

// Status describes a failed SDK operation.
type Status struct {
	Reason  StatusReason
	Code    int
	Message string
}

// APIStatus is implemented by errors that carry a Status.
type APIStatus interface {
	Status() *Status
}

// StatusError is the concrete error type produced by this package.
type StatusError struct {
	ErrStatus Status
}

var _ error = &StatusError{}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return e.ErrStatus.Message
}

// Status returns the underlying status.
func (e *StatusError) Status() *Status {
	return &e.ErrStatus
}

// NewInvalid returns a validation error.
func NewInvalid(message string) *StatusError {
	return &StatusError{
		Status{
			Reason:  StatusReasonInvalid,
			Code:    http.StatusBadRequest,
			Message: message,
		},
	}
}

// NewNotFound returns a not-found error for the named resource.
func NewNotFound(kind, name string) *StatusError {
	return &StatusError{
		Status{
			Reason:  StatusReasonNotFound,
			Code:    http.StatusNotFound,
			Message: fmt.Sprintf("%s %s not found", kind, name),
		},
	}
}

// NewRemote returns an error for a failed z/OSMF request. The response body,
// when present, usually holds the server's diagnostic message.
func NewRemote(code int, statusText, body string) *StatusError {
	message := fmt.Sprintf("z/OSMF request failed: %d %s", code, statusText)
	if body != "" {
		message = fmt.Sprintf("%s: %s", message, body)
	}
	return &StatusError{
		Status{
			Reason:  StatusReasonRemote,
			Code:    code,
			Message: message,
		},
	}
}

// NewUnparsable returns a remote error for a z/OSMF reply whose body could
// not be decoded.
func NewUnparsable(err error) *StatusError {
	return &StatusError{
		Status{
			Reason:  StatusReasonRemote,
			Code:    http.StatusBadGateway,
			Message: fmt.Sprintf("failed to decode z/OSMF response: %v", err),
		},
	}
}

// NewExhausted returns the gave-up error for a poll loop that ran out of
// attempts.
func NewExhausted(message string) *StatusError {
	return &StatusError{
		Status{
			Reason:  StatusReasonExhausted,
			Code:    http.StatusRequestTimeout,
			Message: message,
		},
	}
}

// NewUnknown wraps an arbitrary error.
func NewUnknown(err error) *StatusError {
	return &StatusError{
		Status{
			Reason:  StatusReasonUnknown,
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		},
	}
}

// NewFromError returns err as a StatusError, wrapping it when needed.
func NewFromError(err error) *StatusError {
	var statusError *StatusError
	if errors.As(err, &statusError) {
		return statusError
	}
	return NewUnknown(err)
}

// ReasonForError returns the reason carried by err, or Unknown.
func ReasonForError(err error) StatusReason {
	var apiStatus APIStatus
	if errors.As(err, &apiStatus) {
		return apiStatus.Status().Reason
	}
	return StatusReasonUnknown
}

// IsInvalid reports whether err is a validation error.
func IsInvalid(err error) bool {
	return ReasonForError(err) == StatusReasonInvalid
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return ReasonForError(err) == StatusReasonNotFound
}

// IsRemote reports whether err is a remote z/OSMF failure.
func IsRemote(err error) bool {
	return ReasonForError(err) == StatusReasonRemote
}

// IsExhausted reports whether err is a poll-exhaustion error.
func IsExhausted(err error) bool {
	return ReasonForError(err) == StatusReasonExhausted
}
