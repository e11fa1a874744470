package prompt_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/enroll/pkg/form"
	"github.com/dmitrymomot/enroll/pkg/prompt"
)

type field string

const (
	email   field = "email"
	pass    field = "password"
	confirm field = "confirm"
	role    field = "role"
)

func validate(v form.Values[field]) form.Errors[field] {
	errs := form.Errors[field]{}
	if !strings.Contains(v[email], "@") {
		errs[email] = "bad email"
	}
	if len(v[pass]) < 4 {
		errs[pass] = "too short"
	}
	if v[confirm] != v[pass] {
		errs[confirm] = "mismatch"
	}
	return errs
}

func newForm(submit form.SubmitFunc[field]) *form.Form[field] {
	return form.New(
		form.Values[field]{email: "", pass: "", confirm: "", role: "STUDENT"},
		submit,
		form.WithValidate(validate),
	)
}

var fields = []prompt.Field[field]{
	{Key: email, Label: "email"},
	{Key: pass, Label: "password", Kind: prompt.KindPassword},
	{Key: confirm, Label: "confirm", Kind: prompt.KindPassword},
	{Key: role, Label: "role", Kind: prompt.KindSelect, Choices: []prompt.Choice{
		{Label: "Student", Value: "STUDENT"},
		{Label: "Instructor", Value: "INSTRUCTOR"},
	}},
}

func TestFill(t *testing.T) {
	t.Parallel()

	t.Run("reasks until field is valid", func(t *testing.T) {
		t.Parallel()
		d := prompt.NewScripted("nope", "a@b.c", "pw12", "pw12", "1")
		f := newForm(nil)

		require.NoError(t, prompt.Fill(context.Background(), d, f, fields...))

		assert.Equal(t, []string{prompt.ErrorPrefix + "bad email"}, d.Messages)
		assert.Equal(t, []string{"email", "email", "password", "confirm", "role"}, d.Asked)
		assert.Equal(t, "INSTRUCTOR", f.Values()[role])
		assert.False(t, f.HasErrors())
	})

	t.Run("driver error stops filling", func(t *testing.T) {
		t.Parallel()
		d := prompt.NewScripted("a@b.c")
		f := newForm(nil)

		err := prompt.Fill(context.Background(), d, f, fields...)
		require.ErrorIs(t, err, prompt.ErrScriptExhausted)
		assert.Equal(t, "a@b.c", f.Values()[email])
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := prompt.Fill(ctx, prompt.NewScripted("x"), newForm(nil), fields...)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("submits valid values", func(t *testing.T) {
		t.Parallel()
		var got form.Values[field]
		f := newForm(func(_ context.Context, v form.Values[field]) error {
			got = v
			return nil
		})
		d := prompt.NewScripted("a@b.c", "pw12", "pw12", "0")

		require.NoError(t, prompt.Run(context.Background(), d, f, fields...))
		assert.Equal(t, "a@b.c", got[email])
		assert.Equal(t, "STUDENT", got[role])
		assert.Zero(t, d.Remaining())
	})

	t.Run("reasks fields the submit callback rejects", func(t *testing.T) {
		t.Parallel()
		var f *form.Form[field]
		calls := 0
		f = newForm(func(_ context.Context, v form.Values[field]) error {
			calls++
			if v[email] == "taken@b.c" {
				f.SetFieldError(email, "already used")
			}
			return nil
		})
		d := prompt.NewScripted("taken@b.c", "pw12", "pw12", "0", "free@b.c")

		require.NoError(t, prompt.Run(context.Background(), d, f, fields...))
		assert.Equal(t, 2, calls)
		assert.Equal(t, "free@b.c", f.Values()[email])
		assert.Contains(t, d.Messages, prompt.ErrorPrefix+"email: already used")
	})

	t.Run("returns submit error", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		f := newForm(func(context.Context, form.Values[field]) error { return boom })
		d := prompt.NewScripted("a@b.c", "pw12", "pw12", "0")

		require.ErrorIs(t, prompt.Run(context.Background(), d, f, fields...), boom)
	})
}

func TestScriptedMultiSelect(t *testing.T) {
	t.Parallel()

	d := prompt.NewScripted("0,2", "")
	got, err := d.MultiSelect(context.Background(), prompt.SelectConfig{Message: "pick"})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, got)

	got, err = d.MultiSelect(context.Background(), prompt.SelectConfig{Message: "pick"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFill_Normalize(t *testing.T) {
	t.Parallel()

	f := newForm(nil)
	d := prompt.NewScripted("  A@B.C  ")
	err := prompt.Fill(context.Background(), d, f, prompt.Field[field]{
		Key:       email,
		Label:     "email",
		Normalize: func(s string) string { return strings.ToLower(strings.TrimSpace(s)) },
	})
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", f.Values()[email])
}
