package handler

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/enroll/pkg/form"
	"github.com/dmitrymomot/enroll/pkg/toast"
)

// RestoreForm resumes the form snapshot kept in the session under key.
// Without a snapshot the returned option leaves the form as created.
func RestoreForm[K ~string](ctx Context, key string) form.Option[K] {
	sess := ctx.Session()
	if sess == nil {
		return func(*form.Form[K]) {}
	}
	var st form.State[K]
	if found, err := sess.Decode(key, &st); err != nil || !found {
		return func(*form.Form[K]) {}
	}
	return form.WithState(st)
}

// KeepForm stores the current snapshot of f in the session under key.
// Values of the secret fields are left out; their errors and touched flags
// are kept. The caller saves the session.
func KeepForm[K ~string](ctx Context, key string, f *form.Form[K], secret ...K) error {
	sess := ctx.Session()
	if sess == nil {
		return nil
	}
	st := f.State()
	for _, field := range secret {
		delete(st.Values, field)
	}
	return sess.Put(key, st)
}

func DropForm(ctx Context, key string) {
	if sess := ctx.Session(); sess != nil {
		sess.Delete(key)
	}
}

// PopToasts takes the pending toasts out of the session. Undecodable
// leftovers are dropped. The caller saves the session.
func PopToasts(ctx Context) []toast.Toast {
	sess := ctx.Session()
	if sess == nil {
		return nil
	}
	ts, _ := toast.Pop(sess)
	return ts
}

// ToastsPatch appends rendered toasts to the toast container of the page.
func ToastsPatch(toasts templ.Component) TemplPatch {
	return Patch(toasts, WithTarget(DefaultToastTarget), WithPatchMode(PatchAppend))
}
