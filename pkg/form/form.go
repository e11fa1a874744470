package form

import (
	"context"
	"maps"
	"sync"
)

// Form tracks values, errors, touched flags and submission status for a fixed
// set of fields, and decides when validation runs.
//
// A Form is safe for concurrent use. The lock is released while the submit
// callback runs, so state stays readable during a submit; preventing a second
// submit while IsSubmitting is true is up to the caller.
type Form[K ~string] struct {
	mu sync.Mutex

	initial    Values[K]
	values     Values[K]
	errors     Errors[K]
	touched    Touched[K]
	submitting bool

	validate         ValidateFunc[K]
	validateOnChange bool
	validateOnBlur   bool
	onSubmit         SubmitFunc[K]
}

// New creates a form whose field set is the key set of initial.
func New[K ~string](initial Values[K], onSubmit SubmitFunc[K], opts ...Option[K]) *Form[K] {
	f := &Form[K]{
		initial:        maps.Clone(initial),
		values:         maps.Clone(initial),
		errors:         Errors[K]{},
		touched:        Touched[K]{},
		validateOnBlur: true,
		onSubmit:       onSubmit,
	}
	if f.initial == nil {
		f.initial = Values[K]{}
		f.values = Values[K]{}
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// HandleChange returns the change handler for field. The handler stores the
// value carried by its input. When validation on change is enabled and the
// field is already touched, the validator runs over all values and only the
// entry for field is written back.
func (f *Form[K]) HandleChange(field K) func(Input) {
	return func(in Input) {
		if in == nil {
			return
		}

		f.mu.Lock()
		defer f.mu.Unlock()

		if _, ok := f.values[field]; !ok {
			return
		}
		f.values[field] = in.inputValue()

		if f.validateOnChange && f.touched[field] {
			f.validateField(field)
		}
	}
}

// HandleBlur returns the blur handler for field. The handler marks the field
// touched and, when validation on blur is enabled, refreshes its error entry.
func (f *Form[K]) HandleBlur(field K) func() {
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()

		if _, ok := f.values[field]; !ok {
			return
		}
		f.touched[field] = true

		if f.validateOnBlur {
			f.validateField(field)
		}
	}
}

// validateField runs the validator over every value and writes back the
// result for field only. Callers hold the lock.
func (f *Form[K]) validateField(field K) {
	if f.validate == nil {
		return
	}
	result := f.validate(maps.Clone(f.values))
	f.errors[field] = result[field]
}

// HandleSubmit prevents the default action of ev when given, marks every
// field touched and validates all values. If any field has an error the
// submit callback is not called and nil is returned. Otherwise IsSubmitting
// is set for the duration of the callback and its error is returned after
// the flag is cleared.
func (f *Form[K]) HandleSubmit(ctx context.Context, ev Event) error {
	if ev != nil {
		ev.PreventDefault()
	}

	f.mu.Lock()
	for field := range f.values {
		f.touched[field] = true
	}
	if f.validate != nil {
		result := f.validate(maps.Clone(f.values))
		f.errors = Errors[K]{}
		for field, msg := range result {
			f.errors[field] = msg
		}
		if f.errors.Any() {
			f.mu.Unlock()
			return nil
		}
	}
	f.submitting = true
	values := maps.Clone(f.values)
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	if f.onSubmit == nil {
		return nil
	}
	return f.onSubmit(ctx, values)
}

// SetFieldValue overrides the value of field without validating.
func (f *Form[K]) SetFieldValue(field K, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.values[field]; ok {
		f.values[field] = value
	}
}

// SetFieldError overrides the error of field, e.g. with a message reported
// by the server after a failed submit.
func (f *Form[K]) SetFieldError(field K, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.values[field]; ok {
		f.errors[field] = message
	}
}

// Reset restores the initial values and clears errors, touched flags and
// the submitting flag.
func (f *Form[K]) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values = maps.Clone(f.initial)
	f.errors = Errors[K]{}
	f.touched = Touched[K]{}
	f.submitting = false
}

// FieldProps bundles what an input control needs to bind to one field.
type FieldProps struct {
	Name     string
	Value    string
	Error    string
	OnChange func(Input)
	OnBlur   func()
}

// FieldProps returns the current value and handlers for field. Error is
// filled only once the field is touched.
func (f *Form[K]) FieldProps(field K) FieldProps {
	f.mu.Lock()
	value := f.values[field]
	var msg string
	if f.touched[field] {
		msg = f.errors[field]
	}
	f.mu.Unlock()

	return FieldProps{
		Name:     string(field),
		Value:    value,
		Error:    msg,
		OnChange: f.HandleChange(field),
		OnBlur:   f.HandleBlur(field),
	}
}

// State returns a copy of the current state.
func (f *Form[K]) State() State[K] {
	f.mu.Lock()
	defer f.mu.Unlock()

	return State[K]{
		Values:       f.values,
		Errors:       f.errors,
		Touched:      f.touched,
		IsSubmitting: f.submitting,
	}.clone()
}

// Values returns a copy of the current values.
func (f *Form[K]) Values() Values[K] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return maps.Clone(f.values)
}

// Errors returns a copy of the error entries, touched or not.
func (f *Form[K]) Errors() Errors[K] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return maps.Clone(f.errors)
}

// Touched returns a copy of the touched flags.
func (f *Form[K]) Touched() Touched[K] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return maps.Clone(f.touched)
}

// IsSubmitting reports whether the submit callback is running.
func (f *Form[K]) IsSubmitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// HasErrors reports whether any field currently carries a non-empty error.
func (f *Form[K]) HasErrors() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errors.Any()
}

// VisibleError returns the error of field if it is touched, "" otherwise.
func (f *Form[K]) VisibleError(field K) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.touched[field] {
		return ""
	}
	return f.errors[field]
}
