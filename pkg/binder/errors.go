package binder

import "errors"

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidForm          = errors.New("failed to parse form data")
	ErrInvalidQuery         = errors.New("failed to parse query parameters")
	ErrInvalidPath          = errors.New("failed to parse path parameters")
	ErrInvalidSignals       = errors.New("failed to parse datastar signals")

	// ErrBinderNotApplicable tells the caller to skip this binder for the
	// request, e.g. a form binder on a datastar request.
	ErrBinderNotApplicable = errors.New("binder not applicable to request")
)
