package httpx

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
)

// Kind classifies a request failure. Each kind maps to one HTTP status.
type Kind int

const (
	KindInternal Kind = iota
	KindMissingParameter
	KindBadRequest
	KindInvalidIdentifier
	KindNotFound
	KindNotConfigured
	KindUpstreamUnavailable
)

func (k Kind) status() int {
	switch k {
	case KindMissingParameter, KindBadRequest, KindInvalidIdentifier:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) code() string {
	switch k {
	case KindMissingParameter:
		return "MISSING_PARAMETER"
	case KindBadRequest:
		return "BAD_REQUEST"
	case KindInvalidIdentifier:
		return "INVALID_IDENTIFIER"
	case KindNotFound:
		return "NOT_FOUND"
	case KindNotConfigured:
		return "NOT_CONFIGURED"
	case KindUpstreamUnavailable:
		return "UPSTREAM_UNAVAILABLE"
	default:
		return "INTERNAL_ERROR"
	}
}

// Error is a classified failure. Message is safe to show to clients; Err is
// only logged.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Status returns the HTTP status code for the error.
func (e *Error) Status() int { return e.Kind.status() }

func MissingParameter(field string) *Error {
	return &Error{Kind: KindMissingParameter, Message: fmt.Sprintf("Missing required parameter: %s", field)}
}

func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

func InvalidIdentifier(message string, err error) *Error {
	return &Error{Kind: KindInvalidIdentifier, Message: message, Err: err}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NotConfigured reports a missing credential. setting names the environment
// variable an operator has to provide.
func NotConfigured(provider, setting string) *Error {
	return &Error{
		Kind:    KindNotConfigured,
		Message: fmt.Sprintf("%s is not configured. Set %s in the server environment.", provider, setting),
	}
}

func UpstreamUnavailable(provider string, err error) *Error {
	return &Error{Kind: KindUpstreamUnavailable, Message: fmt.Sprintf("Failed to fetch data from %s", provider), Err: err}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error", Err: err}
}

// WriteError maps err onto the JSON error envelope. The wrapped cause is logged
// server-side and never written to the client.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = Internal(err)
	}

	details := ""
	switch appErr.Kind {
	case KindUpstreamUnavailable, KindInternal:
		details = "see server logs for request " + RequestIDFrom(r)
		zerolog.Ctx(r.Context()).Error().Err(appErr.Err).
			Str("path", r.URL.Path).
			Msg(appErr.Message)
	}

	JSONError(w, r, appErr.Status(), appErr.Kind.code(), appErr.Message, details)
}
