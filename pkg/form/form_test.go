package form_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/enroll/pkg/form"
)

type field string

const (
	email    field = "email"
	password field = "password"
)

func requireBoth(v form.Values[field]) form.Errors[field] {
	errs := form.Errors[field]{}
	if v[email] == "" {
		errs[email] = "email required"
	}
	if v[password] == "" {
		errs[password] = "password required"
	}
	return errs
}

func noopSubmit(context.Context, form.Values[field]) error { return nil }

func TestNew(t *testing.T) {
	t.Parallel()

	initial := form.Values[field]{email: "test@example.com", password: "123456"}
	f := form.New(initial, noopSubmit)

	want := form.State[field]{
		Values:  form.Values[field]{email: "test@example.com", password: "123456"},
		Errors:  form.Errors[field]{},
		Touched: form.Touched[field]{},
	}
	if diff := cmp.Diff(want, f.State()); diff != "" {
		t.Errorf("initial state mismatch (-want +got):\n%s", diff)
	}

	initial[email] = "mutated"
	assert.Equal(t, "test@example.com", f.Values()[email], "initial values are copied")
}

func TestHandleChange(t *testing.T) {
	t.Parallel()

	t.Run("stores raw value", func(t *testing.T) {
		f := form.New(form.Values[field]{email: "", password: ""}, noopSubmit)
		f.HandleChange(email)(form.Value("new@example.com"))
		assert.Equal(t, "new@example.com", f.Values()[email])
	})

	t.Run("extracts value from change event", func(t *testing.T) {
		f := form.New(form.Values[field]{email: ""}, noopSubmit)
		f.HandleChange(email)(form.ChangeEvent{Target: form.EventTarget{Name: "email", Value: "event@example.com"}})
		assert.Equal(t, "event@example.com", f.Values()[email])
	})

	t.Run("ignores undeclared fields", func(t *testing.T) {
		f := form.New(form.Values[field]{email: ""}, noopSubmit)
		f.HandleChange(password)(form.Value("secret"))
		_, ok := f.Values()[password]
		assert.False(t, ok)
	})

	t.Run("validates touched field when enabled", func(t *testing.T) {
		calls := 0
		validate := func(v form.Values[field]) form.Errors[field] {
			calls++
			return requireBoth(v)
		}
		f := form.New(form.Values[field]{email: "", password: ""}, noopSubmit,
			form.WithValidate(validate), form.WithValidateOnChange[field](true))

		f.HandleBlur(email)()
		require.Equal(t, 1, calls)
		assert.Equal(t, "email required", f.Errors()[email])

		f.HandleChange(email)(form.Value("test@example.com"))
		assert.Equal(t, 2, calls)
		assert.Equal(t, "", f.Errors()[email])
	})

	t.Run("does not validate untouched field", func(t *testing.T) {
		calls := 0
		validate := func(v form.Values[field]) form.Errors[field] {
			calls++
			return requireBoth(v)
		}
		f := form.New(form.Values[field]{email: "", password: ""}, noopSubmit,
			form.WithValidate(validate), form.WithValidateOnChange[field](true))

		f.HandleChange(email)(form.Value("x"))
		assert.Zero(t, calls)
		assert.Empty(t, f.Errors())
	})

	t.Run("does not validate when disabled", func(t *testing.T) {
		calls := 0
		validate := func(v form.Values[field]) form.Errors[field] {
			calls++
			return nil
		}
		f := form.New(form.Values[field]{email: ""}, noopSubmit,
			form.WithValidate(validate), form.WithValidateOnChange[field](false))

		f.HandleBlur(email)()
		f.HandleChange(email)(form.Value("test@example.com"))
		assert.Equal(t, 1, calls, "only the blur validates")
	})

	t.Run("writes back only the changed field", func(t *testing.T) {
		f := form.New(form.Values[field]{email: "", password: ""}, noopSubmit,
			form.WithValidate(requireBoth), form.WithValidateOnChange[field](true))

		require.NoError(t, f.HandleSubmit(context.Background(), nil))
		require.Equal(t, "password required", f.Errors()[password])

		f.HandleChange(password)(form.Value("secret"))
		f.SetFieldError(email, "stale")
		f.HandleChange(password)(form.Value("secret2"))

		assert.Equal(t, "", f.Errors()[password])
		assert.Equal(t, "stale", f.Errors()[email], "other entries are left alone")
	})

	t.Run("validator sees the updated value set", func(t *testing.T) {
		var seen form.Values[field]
		validate := func(v form.Values[field]) form.Errors[field] {
			seen = v
			return nil
		}
		f := form.New(form.Values[field]{email: "a", password: "b"}, noopSubmit,
			form.WithValidate(validate), form.WithValidateOnChange[field](true))

		f.HandleBlur(email)()
		f.HandleChange(email)(form.Value("c"))
		assert.Equal(t, form.Values[field]{email: "c", password: "b"}, seen)
	})
}

func TestHandleBlur(t *testing.T) {
	t.Parallel()

	t.Run("marks field touched", func(t *testing.T) {
		f := form.New(form.Values[field]{email: ""}, noopSubmit)
		f.HandleBlur(email)()
		assert.True(t, f.Touched()[email])
	})

	t.Run("validates by default", func(t *testing.T) {
		f := form.New(form.Values[field]{email: "", password: ""}, noopSubmit, form.WithValidate(requireBoth))
		f.HandleBlur(email)()

		assert.Equal(t, "email required", f.Errors()[email])
		_, ok := f.Errors()[password]
		assert.False(t, ok, "only the blurred field is written")
	})

	t.Run("skips validation when disabled", func(t *testing.T) {
		f := form.New(form.Values[field]{email: ""}, noopSubmit,
			form.WithValidate(requireBoth), form.WithValidateOnBlur[field](false))
		f.HandleBlur(email)()

		assert.True(t, f.Touched()[email])
		assert.Empty(t, f.Errors())
	})

	t.Run("missing result is normalised to empty", func(t *testing.T) {
		f := form.New(form.Values[field]{email: "x"}, noopSubmit, form.WithValidate(requireBoth))
		f.SetFieldError(email, "server says no")
		f.HandleBlur(email)()

		msg, ok := f.Errors()[email]
		assert.True(t, ok)
		assert.Equal(t, "", msg)
	})

	t.Run("is idempotent", func(t *testing.T) {
		f := form.New(form.Values[field]{email: ""}, noopSubmit, form.WithValidate(requireBoth))
		f.HandleBlur(email)()
		first := f.State()
		f.HandleBlur(email)()

		if diff := cmp.Diff(first, f.State()); diff != "" {
			t.Errorf("second blur changed state (-first +second):\n%s", diff)
		}
	})
}

func TestHandleSubmit(t *testing.T) {
	t.Parallel()

	t.Run("calls onSubmit once with current values", func(t *testing.T) {
		var calls []form.Values[field]
		f := form.New(form.Values[field]{email: "a@b.c", password: "Abc123"},
			func(_ context.Context, v form.Values[field]) error {
				calls = append(calls, v)
				return nil
			}, form.WithValidate(requireBoth))

		require.NoError(t, f.HandleSubmit(context.Background(), nil))
		require.Len(t, calls, 1)
		assert.Equal(t, form.Values[field]{email: "a@b.c", password: "Abc123"}, calls[0])
		assert.False(t, f.IsSubmitting())
	})

	t.Run("blocks on validation errors", func(t *testing.T) {
		called := false
		f := form.New(form.Values[field]{email: "", password: "x"},
			func(context.Context, form.Values[field]) error {
				called = true
				return nil
			}, form.WithValidate(requireBoth))

		require.NoError(t, f.HandleSubmit(context.Background(), nil))
		assert.False(t, called)
		assert.False(t, f.IsSubmitting())
		assert.Equal(t, form.Touched[field]{email: true, password: true}, f.Touched())
		assert.Equal(t, form.Errors[field]{email: "email required"}, f.Errors())
	})

	t.Run("replaces errors wholesale", func(t *testing.T) {
		f := form.New(form.Values[field]{email: "a", password: "b"}, noopSubmit, form.WithValidate(requireBoth))
		f.SetFieldError(email, "server error")

		require.NoError(t, f.HandleSubmit(context.Background(), nil))
		assert.Empty(t, f.Errors())
	})

	t.Run("submits without validator", func(t *testing.T) {
		called := false
		f := form.New(form.Values[field]{email: ""}, func(context.Context, form.Values[field]) error {
			called = true
			return nil
		})
		f.SetFieldError(email, "kept")

		require.NoError(t, f.HandleSubmit(context.Background(), nil))
		assert.True(t, called)
		assert.Equal(t, "kept", f.Errors()[email])
		assert.True(t, f.Touched()[email])
	})

	t.Run("prevents default", func(t *testing.T) {
		f := form.New(form.Values[field]{email: "x"}, noopSubmit)
		ev := &form.SubmitEvent{}

		require.NoError(t, f.HandleSubmit(context.Background(), ev))
		assert.True(t, ev.DefaultPrevented())
	})

	t.Run("is submitting during callback", func(t *testing.T) {
		var f *form.Form[field]
		var during bool
		f = form.New(form.Values[field]{email: "x"}, func(context.Context, form.Values[field]) error {
			during = f.IsSubmitting()
			return nil
		})

		require.NoError(t, f.HandleSubmit(context.Background(), nil))
		assert.True(t, during)
		assert.False(t, f.IsSubmitting())
	})

	t.Run("propagates callback error after clearing flag", func(t *testing.T) {
		boom := errors.New("boom")
		f := form.New(form.Values[field]{email: "x"}, func(context.Context, form.Values[field]) error {
			return boom
		})

		err := f.HandleSubmit(context.Background(), nil)
		assert.ErrorIs(t, err, boom)
		assert.False(t, f.IsSubmitting())
	})

	t.Run("passes context through", func(t *testing.T) {
		type key struct{}
		ctx := context.WithValue(context.Background(), key{}, "v")
		var got any
		f := form.New(form.Values[field]{email: "x"}, func(ctx context.Context, _ form.Values[field]) error {
			got = ctx.Value(key{})
			return nil
		})

		require.NoError(t, f.HandleSubmit(ctx, nil))
		assert.Equal(t, "v", got)
	})
}

func TestSetters(t *testing.T) {
	t.Parallel()

	calls := 0
	validate := func(v form.Values[field]) form.Errors[field] {
		calls++
		return requireBoth(v)
	}
	f := form.New(form.Values[field]{email: "", password: ""}, noopSubmit, form.WithValidate(validate))

	f.SetFieldValue(email, "direct@example.com")
	f.SetFieldError(password, "wrong password")

	assert.Equal(t, "direct@example.com", f.Values()[email])
	assert.Equal(t, "wrong password", f.Errors()[password])
	assert.Zero(t, calls)
	assert.True(t, f.HasErrors())
	assert.Empty(t, f.VisibleError(password), "untouched errors stay hidden")
}

func TestReset(t *testing.T) {
	t.Parallel()

	initial := form.Values[field]{email: "start@example.com", password: ""}
	f := form.New(initial, noopSubmit, form.WithValidate(requireBoth), form.WithValidateOnChange[field](true))

	f.HandleChange(email)(form.Value("changed"))
	f.HandleBlur(email)()
	f.HandleBlur(password)()
	f.SetFieldError(email, "boom")
	require.NoError(t, f.HandleSubmit(context.Background(), nil))

	f.Reset()

	want := form.State[field]{
		Values:  form.Values[field]{email: "start@example.com", password: ""},
		Errors:  form.Errors[field]{},
		Touched: form.Touched[field]{},
	}
	if diff := cmp.Diff(want, f.State()); diff != "" {
		t.Errorf("state after reset mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldProps(t *testing.T) {
	t.Parallel()

	f := form.New(form.Values[field]{email: "", password: ""}, noopSubmit, form.WithValidate(requireBoth))

	props := f.FieldProps(email)
	assert.Equal(t, "email", props.Name)
	assert.Equal(t, "", props.Value)
	assert.Empty(t, props.Error)

	props.OnChange(form.Value("a@b.c"))
	props.OnBlur()

	props = f.FieldProps(email)
	assert.Equal(t, "a@b.c", props.Value)
	assert.Empty(t, props.Error)

	f.FieldProps(password).OnBlur()
	assert.Equal(t, "password required", f.FieldProps(password).Error)
}

func TestWithState(t *testing.T) {
	t.Parallel()

	prev := form.New(form.Values[field]{email: "", password: ""}, noopSubmit, form.WithValidate(requireBoth))
	prev.HandleChange(email)(form.Value("a@b.c"))
	prev.HandleBlur(password)()
	snapshot := prev.State()
	snapshot.Values["unknown"] = "dropped"
	snapshot.IsSubmitting = true

	f := form.New(form.Values[field]{email: "", password: ""}, noopSubmit,
		form.WithValidate(requireBoth), form.WithState(snapshot))

	want := form.State[field]{
		Values:  form.Values[field]{email: "a@b.c", password: ""},
		Errors:  form.Errors[field]{password: "password required"},
		Touched: form.Touched[field]{password: true},
	}
	if diff := cmp.Diff(want, f.State()); diff != "" {
		t.Errorf("restored state mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "password required", f.State().VisibleError(password))
	assert.Empty(t, f.State().VisibleError(email))
}

func TestStateIsACopy(t *testing.T) {
	t.Parallel()

	f := form.New(form.Values[field]{email: ""}, noopSubmit)
	s := f.State()
	s.Values[email] = "changed"
	s.Touched[email] = true

	assert.Equal(t, "", f.Values()[email])
	assert.False(t, f.Touched()[email])
}

func TestUntouchedFieldsStayClean(t *testing.T) {
	t.Parallel()

	for _, onChange := range []bool{true, false} {
		f := form.New(form.Values[field]{email: "", password: ""}, noopSubmit,
			form.WithValidate(requireBoth), form.WithValidateOnChange[field](onChange))

		f.HandleChange(email)(form.Value("x"))
		f.HandleChange(email)(form.Value(""))
		f.HandleChange(password)(form.Value(""))

		assert.Empty(t, f.Touched(), "validateOnChange=%v", onChange)
		assert.Empty(t, f.Errors(), "validateOnChange=%v", onChange)
	}
}

func TestConcurrentUse(t *testing.T) {
	t.Parallel()

	f := form.New(form.Values[field]{email: "", password: ""}, noopSubmit,
		form.WithValidate(requireBoth), form.WithValidateOnChange[field](true))

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.HandleChange(email)(form.Value("a@b.c"))
			f.HandleBlur(email)()
			_ = f.State()
		}()
	}
	wg.Wait()

	assert.Equal(t, "a@b.c", f.Values()[email])
	assert.Equal(t, "", f.Errors()[email])
}

func TestLoginScenario(t *testing.T) {
	t.Parallel()

	var submitted []form.Values[field]
	f := form.New(form.Values[field]{email: "", password: ""},
		func(_ context.Context, v form.Values[field]) error {
			submitted = append(submitted, v)
			return nil
		},
		form.WithValidate(requireBoth),
		form.WithValidateOnBlur[field](true),
	)
	ctx := context.Background()

	require.NoError(t, f.HandleSubmit(ctx, nil))
	assert.Empty(t, submitted)
	assert.Equal(t, form.Touched[field]{email: true, password: true}, f.Touched())
	assert.Equal(t, "email required", f.VisibleError(email))
	assert.Equal(t, "password required", f.VisibleError(password))

	f.HandleChange(email)(form.Value("test@example.com"))
	f.HandleBlur(email)()
	assert.Empty(t, f.VisibleError(email))

	f.HandleChange(password)(form.Value("Abc123"))
	f.HandleBlur(password)()
	assert.Empty(t, f.VisibleError(password))

	require.NoError(t, f.HandleSubmit(ctx, nil))
	require.Len(t, submitted, 1)
	assert.Equal(t, form.Values[field]{email: "test@example.com", password: "Abc123"}, submitted[0])
}
