package binder

import "net/http"

// Query binds URL query parameters using `query` struct tags.
//
//	type ListRequest struct {
//		Sort string `query:"sort"`
//		Page int    `query:"page"`
//	}
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrInvalidQuery)
	}
}
