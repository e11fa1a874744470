package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/dmitrymomot/enroll/pkg/validator"
)

var (
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrNotDataStar is returned by responses that only make sense as
	// server-sent events.
	ErrNotDataStar = HTTPError{Code: http.StatusBadRequest, Key: "errors.datastar_required"}
)

type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error hands err to the error handler of the route.
func Error(err error) Response {
	return errorResponse{err: err}
}

// HTTPError carries a status code and a translation key. The error handler
// shows the translated key to the user.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

var (
	ErrBadRequest          = HTTPError{Code: http.StatusBadRequest, Key: "errors.bad_request"}
	ErrUnauthorized        = HTTPError{Code: http.StatusUnauthorized, Key: "errors.unauthorized"}
	ErrForbidden           = HTTPError{Code: http.StatusForbidden, Key: "errors.forbidden"}
	ErrNotFound            = HTTPError{Code: http.StatusNotFound, Key: "errors.not_found"}
	ErrMethodNotAllowed    = HTTPError{Code: http.StatusMethodNotAllowed, Key: "errors.method_not_allowed"}
	ErrConflict            = HTTPError{Code: http.StatusConflict, Key: "errors.conflict"}
	ErrUnprocessableEntity = HTTPError{Code: http.StatusUnprocessableEntity, Key: "errors.unprocessable_entity"}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Key: "errors.internal"}
	ErrBadGateway          = HTTPError{Code: http.StatusBadGateway, Key: "errors.bad_gateway"}
	ErrServiceUnavailable  = HTTPError{Code: http.StatusServiceUnavailable, Key: "errors.service_unavailable"}
)

// ValidationError maps field names to messages. It is what a request fails
// with before it reaches the API, never the state of an interactive form.
type ValidationError url.Values

func NewValidationError() ValidationError {
	return make(ValidationError)
}

// ValidationErrorFrom converts the aggregate returned by validator.Apply.
// It returns nil when err carries no validation errors.
func ValidationErrorFrom(err error) ValidationError {
	ve := validator.ExtractValidationErrors(err)
	if len(ve) == 0 {
		return nil
	}
	out := NewValidationError()
	for _, e := range ve {
		out.Add(e.Field, e.Message)
	}
	return out
}

func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if msgs := e[field]; len(msgs) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, msgs[0]))
		}
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first message for field.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}
