package prompt

import (
	"context"
	"slices"

	"github.com/dmitrymomot/enroll/pkg/form"
)

// Kind selects the prompt used for a field.
type Kind int

const (
	KindText Kind = iota
	KindPassword
	KindTextArea
	KindSelect
)

// Choice is one option of a select field. Value is what the form stores.
type Choice struct {
	Label string
	Value string
}

// Field describes how a form field is asked for on the terminal.
type Field[K ~string] struct {
	Key     K
	Label   string
	Help    string
	Kind    Kind
	Choices []Choice
	// Normalize rewrites an answer before it reaches the form.
	Normalize func(string) string
}

// ErrorPrefix is printed in front of a field error.
const ErrorPrefix = "  ✗ "

// Fill asks for every field in order. Each answer goes through the change
// and blur handlers of f, so the field is validated exactly as an input
// losing focus would be. A field with a visible error is asked again until
// it is clear or the driver fails.
func Fill[K ~string](ctx context.Context, d Driver, f *form.Form[K], fields ...Field[K]) error {
	for _, fd := range fields {
		if err := ask(ctx, d, f, fd); err != nil {
			return err
		}
	}
	return nil
}

// Run fills the fields and submits f. When the submit leaves field errors
// behind, for example cross-field errors or errors set by the submit
// callback, only those fields are asked again before the next submit.
// The error of the submit callback is returned as is.
func Run[K ~string](ctx context.Context, d Driver, f *form.Form[K], fields ...Field[K]) error {
	pending := fields
	for {
		if err := Fill(ctx, d, f, pending...); err != nil {
			return err
		}
		if err := f.HandleSubmit(ctx, nil); err != nil {
			return err
		}
		if !f.HasErrors() {
			return nil
		}

		errs := f.Errors()
		pending = slices.DeleteFunc(slices.Clone(fields), func(fd Field[K]) bool {
			return errs[fd.Key] == ""
		})
		if len(pending) == 0 {
			return nil
		}
		for _, fd := range pending {
			if err := d.Info(ctx, ErrorPrefix+fd.Label+": "+errs[fd.Key]); err != nil {
				return err
			}
		}
	}
}

func ask[K ~string](ctx context.Context, d Driver, f *form.Form[K], fd Field[K]) error {
	for {
		v, err := answer(ctx, d, f.Values()[fd.Key], fd)
		if err != nil {
			return err
		}
		if fd.Normalize != nil {
			v = fd.Normalize(v)
		}
		f.HandleChange(fd.Key)(form.Value(v))
		f.HandleBlur(fd.Key)()

		msg := f.VisibleError(fd.Key)
		if msg == "" {
			return nil
		}
		if err := d.Info(ctx, ErrorPrefix+msg); err != nil {
			return err
		}
	}
}

func answer[K ~string](ctx context.Context, d Driver, current string, fd Field[K]) (string, error) {
	switch fd.Kind {
	case KindPassword:
		return d.Password(ctx, InputConfig{Message: fd.Label, Help: fd.Help})
	case KindTextArea:
		return d.TextArea(ctx, InputConfig{Message: fd.Label, Help: fd.Help, Default: current})
	case KindSelect:
		labels := make([]string, len(fd.Choices))
		def := 0
		for i, c := range fd.Choices {
			labels[i] = c.Label
			if c.Value == current {
				def = i
			}
		}
		idx, err := d.Select(ctx, SelectConfig{Message: fd.Label, Help: fd.Help, Options: labels, DefaultIndex: def})
		if err != nil {
			return "", err
		}
		if idx < 0 || idx >= len(fd.Choices) {
			return "", nil
		}
		return fd.Choices[idx].Value, nil
	default:
		return d.Input(ctx, InputConfig{Message: fd.Label, Help: fd.Help, Default: current})
	}
}
