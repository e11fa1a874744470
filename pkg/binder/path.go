package binder

import (
	"net/http"
	"reflect"
)

// Path binds path parameters using `path` struct tags. The extractor
// returns the raw value of a named parameter, e.g. chi.URLParam.
//
//	r.Get("/courses/{id}", handler.Wrap(h, handler.WithBinders(binder.Path(chi.URLParam))))
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		values := make(map[string][]string)

		rt := reflect.TypeOf(v)
		if rt == nil || rt.Kind() != reflect.Ptr || rt.Elem().Kind() != reflect.Struct {
			return bindToStruct(v, "path", values, ErrInvalidPath)
		}

		rt = rt.Elem()
		for i := range rt.NumField() {
			name, skip := parseFieldTag(rt.Field(i), "path")
			if skip || name == "" {
				continue
			}
			if val := extractor(r, name); val != "" {
				values[name] = []string{val}
			}
		}

		return bindToStruct(v, "path", values, ErrInvalidPath)
	}
}
