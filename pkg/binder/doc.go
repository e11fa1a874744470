// Package binder fills request structs from HTTP requests.
//
// Each constructor returns a func(r *http.Request, v any) error that binds
// one source by struct tag: Form (`form`), Query (`query`), Path (`path`)
// and Signals (datastar signals, `json`). Binders are applied in order by
// handler.Wrap; a binder that does not apply to a request returns
// ErrBinderNotApplicable and is skipped, so one handler can serve both a
// plain form post and a datastar request:
//
//	type EnrollRequest struct {
//		CourseIDs []int64 `form:"course_ids" json:"courseIds"`
//	}
//
//	r.Post("/enrollments/batch", handler.Wrap(h,
//		handler.WithBinders(binder.Form(), binder.Signals()),
//	))
//
// Supported field types are strings, integers, floats, bools, pointers to
// those and slices of those.
package binder
