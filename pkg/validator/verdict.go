package validator

import "fmt"

// Verdict is the outcome of one rule: either OK, or a failure carrying a
// user-facing reason.
type Verdict struct {
	OK     bool
	Reason string
}

// Pass returns a successful verdict.
func Pass() Verdict {
	return Verdict{OK: true}
}

// Fail returns a failed verdict with the given reason.
func Fail(reason string) Verdict {
	return Verdict{Reason: reason}
}

// Err returns nil for a passing verdict, otherwise an error wrapping
// ErrValidationFailed with the reason as its message.
func (v Verdict) Err() error {
	if v.OK {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrValidationFailed, v.Reason)
}

// Message returns the reason of a failed verdict and "" for a passing one.
func (v Verdict) Message() string {
	if v.OK {
		return ""
	}
	return v.Reason
}
