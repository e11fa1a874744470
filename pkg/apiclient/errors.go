package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidBaseURL = errors.New("apiclient: invalid base URL")
	ErrEncodeRequest  = errors.New("apiclient: failed to encode request body")
	ErrDecodeResponse = errors.New("apiclient: failed to decode response body")
	ErrRequestFailed  = errors.New("apiclient: request failed")
	ErrTimeout        = errors.New("apiclient: request timeout")
)

// APIError is a non-2xx answer from the API. Message is already suitable
// for showing to the user.
type APIError struct {
	Status    int    `json:"-"`
	Code      string `json:"code,omitempty"`
	Message   string `json:"message,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

func newAPIError(status int, payload *APIError) *APIError {
	e := &APIError{Status: status}
	if payload != nil {
		e.Code = payload.Code
		e.Message = payload.Message
		e.Timestamp = payload.Timestamp
	}
	if e.Message == "" {
		e.Message = fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
	}
	return e
}

// AsAPIError unwraps an *APIError from err.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsStatus reports whether err is an *APIError with the given status.
func IsStatus(err error, status int) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Status == status
}

// MessageOr returns the API message carried by err, or fallback when err
// did not come from the API.
func MessageOr(err error, fallback string) string {
	if apiErr, ok := AsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
