package form

import "context"

// ValidateFunc checks the full value set and returns per-field messages.
type ValidateFunc[K ~string] func(values Values[K]) Errors[K]

// SubmitFunc receives the values once submission validation passed.
type SubmitFunc[K ~string] func(ctx context.Context, values Values[K]) error

// Option configures a Form.
type Option[K ~string] func(*Form[K])

// WithValidate sets the cross-field validator.
func WithValidate[K ~string](fn ValidateFunc[K]) Option[K] {
	return func(f *Form[K]) {
		f.validate = fn
	}
}

// WithValidateOnChange toggles validation on change of a touched field. Off by default.
func WithValidateOnChange[K ~string](enabled bool) Option[K] {
	return func(f *Form[K]) {
		f.validateOnChange = enabled
	}
}

// WithValidateOnBlur toggles validation on blur. On by default.
func WithValidateOnBlur[K ~string](enabled bool) Option[K] {
	return func(f *Form[K]) {
		f.validateOnBlur = enabled
	}
}

// WithState resumes a previously captured snapshot. Entries for fields that
// are not declared by the initial values are dropped. IsSubmitting is not
// restored: an in-flight submit belongs to the caller that started it.
func WithState[K ~string](s State[K]) Option[K] {
	return func(f *Form[K]) {
		for field, v := range s.Values {
			if _, ok := f.values[field]; ok {
				f.values[field] = v
			}
		}
		for field, msg := range s.Errors {
			if _, ok := f.values[field]; ok {
				f.errors[field] = msg
			}
		}
		for field, touched := range s.Touched {
			if _, ok := f.values[field]; ok && touched {
				f.touched[field] = true
			}
		}
	}
}
