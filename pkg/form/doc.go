// Package form implements a generic form controller: per-field values,
// touched flags and errors, plus a submission lifecycle gated on validation.
//
// A form is created from its initial values, which also fix its field set:
//
//	type field string
//
//	f := form.New(form.Values[field]{"email": "", "password": ""},
//		func(ctx context.Context, v form.Values[field]) error {
//			return api.Login(ctx, v["email"], v["password"])
//		},
//		form.WithValidate(validate),
//	)
//
// Hosts forward UI interactions to the handlers and re-render from State:
//
//	f.HandleChange("email")(form.Value("me@example.com"))
//	f.HandleBlur("email")()
//	if err := f.HandleSubmit(ctx, nil); err != nil {
//		// the submit callback failed
//	}
//
// Validation failures are kept in the state and never returned as errors.
// HandleSubmit only returns what the submit callback returned.
//
// By default validation runs on blur and not on change. With
// WithValidateOnChange(true) a change re-validates a field that is already
// touched. Both on change and on blur, only the error entry of the field in
// question is updated even though the validator sees every value; entries
// for other fields keep what the last full validation left there.
//
// State snapshots are plain maps with JSON tags, so a host that cannot keep
// the Form alive between interactions (an HTTP handler, for instance) can
// store State and resume with WithState.
package form
