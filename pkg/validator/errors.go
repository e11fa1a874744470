package validator

import "errors"

var (
	// ErrValidationFailed is matched by every ValidationErrors value and by Verdict.Err.
	ErrValidationFailed = errors.New("validation failed")
)
