package binder

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

var textUnmarshaler = reflect.TypeFor[encoding.TextUnmarshaler]()

// bindToStruct copies values into the fields of the struct v points to,
// matching keys against the tag struct tag. Failures wrap kind.
func bindToStruct(v any, tag string, values map[string][]string, kind error) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a non-nil pointer to struct", kind)
	}

	rv = rv.Elem()
	rt := rv.Type()
	for i := range rt.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() || sf.Anonymous {
			continue
		}
		key, skip := parseFieldTag(sf, tag)
		if skip {
			continue
		}
		raw := values[key]
		if len(raw) == 0 {
			continue
		}
		if err := assign(rv.Field(i), raw); err != nil {
			return fmt.Errorf("%w: field %s: %v", kind, sf.Name, err)
		}
	}
	return nil
}

// parseFieldTag returns the key bound to field. Untagged fields bind by
// their lowercased name; "-" skips the field.
func parseFieldTag(field reflect.StructField, tag string) (key string, skip bool) {
	switch t := field.Tag.Get(tag); t {
	case "":
		return strings.ToLower(field.Name), false
	case "-":
		return "", true
	default:
		key, _, _ = strings.Cut(t, ",")
		return key, false
	}
}

// assign stores raw into dst. Slices take every value, with comma-separated
// values split (course_ids=1,2&course_ids=3); everything else takes the
// first.
func assign(dst reflect.Value, raw []string) error {
	if dst.Kind() == reflect.Slice && !dst.Addr().Type().Implements(textUnmarshaler) {
		var parts []string
		for _, r := range raw {
			for p := range strings.SplitSeq(r, ",") {
				parts = append(parts, strings.TrimSpace(p))
			}
		}
		out := reflect.MakeSlice(dst.Type(), len(parts), len(parts))
		for i, p := range parts {
			if err := assignOne(out.Index(i), p); err != nil {
				return err
			}
		}
		dst.Set(out)
		return nil
	}
	return assignOne(dst, raw[0])
}

func assignOne(dst reflect.Value, s string) error {
	if dst.Kind() == reflect.Pointer {
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		return assignOne(dst.Elem(), s)
	}

	if u, ok := dst.Addr().Interface().(encoding.TextUnmarshaler); ok {
		return u.UnmarshalText([]byte(s))
	}

	switch dst.Kind() {
	case reflect.String:
		dst.SetString(s)
	case reflect.Bool:
		b, err := parseBool(s)
		if err != nil {
			return err
		}
		dst.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, dst.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid integer %q", s)
		}
		dst.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, dst.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid unsigned integer %q", s)
		}
		dst.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, dst.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid number %q", s)
		}
		dst.SetFloat(f)
	default:
		return fmt.Errorf("unsupported type %s", dst.Type())
	}
	return nil
}

// parseBool also accepts what HTML checkboxes post.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes", "checked":
		return true, nil
	case "off", "no", "":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid bool %q", s)
	}
	return b, nil
}
