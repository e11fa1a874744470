package form

import "maps"

// Values maps every declared field to its current value.
type Values[K ~string] map[K]string

// Errors maps fields to error messages. A missing or empty entry means no error.
type Errors[K ~string] map[K]string

// Touched marks fields that were blurred or part of a submit attempt.
type Touched[K ~string] map[K]bool

// Any reports whether at least one entry is non-empty.
func (e Errors[K]) Any() bool {
	for _, msg := range e {
		if msg != "" {
			return true
		}
	}
	return false
}

// State is a snapshot of a form. It is safe to keep, serialise and feed back
// through WithState.
type State[K ~string] struct {
	Values       Values[K]  `json:"values"`
	Errors       Errors[K]  `json:"errors"`
	Touched      Touched[K] `json:"touched"`
	IsSubmitting bool       `json:"isSubmitting"`
}

// VisibleError returns the error for field only once it has been touched.
func (s State[K]) VisibleError(field K) string {
	if !s.Touched[field] {
		return ""
	}
	return s.Errors[field]
}

func (s State[K]) clone() State[K] {
	return State[K]{
		Values:       maps.Clone(s.Values),
		Errors:       maps.Clone(s.Errors),
		Touched:      maps.Clone(s.Touched),
		IsSubmitting: s.IsSubmitting,
	}
}
