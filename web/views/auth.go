package views

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/enroll/modules/auth"
	"github.com/dmitrymomot/enroll/modules/user"
)

// AuthViews wires the account pages into the auth module.
func (v *Views) AuthViews() auth.Views {
	return auth.Views{
		SignupPage:   v.SignupPage,
		SignupForm:   v.SignupForm,
		LoginPage:    v.LoginPage,
		LoginModal:   v.LoginModal,
		LoginForm:    v.LoginForm,
		FieldError:   v.FieldError,
		SubmitButton: v.SubmitButton,
		Toasts:       v.Toasts,
	}
}

func (v *Views) SignupPage(p auth.SignupPageParams) templ.Component {
	body := component(func(w *writer) {
		w.element("h1", v.tr(w.ctx, "signup.title"))
		w.render(v.SignupForm(p.Form))
		w.open("p")
		w.text(v.tr(w.ctx, "signup.has_account") + " ")
		w.element("a", v.tr(w.ctx, "nav.login"), "href", "/login", "data-on:click__prevent", "@get('/login')")
		w.close("p")
	})
	return component(func(w *writer) {
		w.render(v.page(pageParams{Title: v.tr(w.ctx, "signup.title"), Toasts: p.Toasts, Body: body}))
	})
}

// SignupForm never writes the password back into the page.
func (v *Views) SignupForm(p auth.SignupFormParams) templ.Component {
	return component(func(w *writer) {
		s := p.State
		signals := map[string]any{}
		for _, f := range auth.SignupFields {
			signals[string(f)] = s.Values[f]
		}
		signals[string(auth.SignupPassword)] = ""

		const events = "/signup/fields"
		openForm(w, auth.SignupFormID, "/signup", signals, false)
		for _, f := range []struct {
			name  auth.SignupField
			typ   string
			attrs []string
		}{
			{auth.SignupName, "text", []string{"autocomplete", "name"}},
			{auth.SignupEmail, "email", []string{"autocomplete", "email"}},
			{auth.SignupPhone, "tel", []string{"autocomplete", "tel", "inputmode", "numeric", "placeholder", "010-1234-5678"}},
			{auth.SignupPassword, "password", []string{"autocomplete", "new-password"}},
		} {
			value := s.Values[f.name]
			help := ""
			if f.name == auth.SignupPassword {
				value = ""
				help = v.tr(w.ctx, "signup.password_help")
			}
			v.field(w, field{
				FormID: auth.SignupFormID,
				Name:   string(f.name),
				Label:  v.tr(w.ctx, "signup."+string(f.name)),
				Type:   f.typ,
				Value:  value,
				Error:  s.VisibleError(f.name),
				Help:   help,
				Events: events,
				Attrs:  f.attrs,
			})
		}
		v.roleChoice(w, s.Values[auth.SignupRole], events)
		w.render(v.SubmitButton(auth.SignupFormID, p.CanSubmit))
		w.close("form")
	})
}

func (v *Views) roleChoice(w *writer, current, events string) {
	name := string(auth.SignupRole)
	w.open("fieldset", "class", "field")
	w.element("legend", v.tr(w.ctx, "signup.role"))
	for _, r := range []user.Role{user.RoleStudent, user.RoleInstructor} {
		w.open("label")
		w.raw("<input")
		w.attr("type", "radio")
		w.attr("name", name)
		w.attr("value", r.String())
		w.attr("data-bind", name)
		w.attr("data-on:change", "@post('"+events+"/"+name+"/change')")
		w.flag("checked", current == r.String())
		w.raw(">")
		w.text(" " + r.Label())
		w.close("label")
	}
	w.close("fieldset")
}

func (v *Views) LoginPage(p auth.LoginPageParams) templ.Component {
	body := component(func(w *writer) {
		w.element("h1", v.tr(w.ctx, "login.title"))
		v.loginBody(w, p.Form)
	})
	return component(func(w *writer) {
		w.render(v.page(pageParams{Title: v.tr(w.ctx, "login.title"), Toasts: p.Toasts, Body: body}))
	})
}

// LoginModal is patched over the signup page.
func (v *Views) LoginModal(p auth.LoginFormParams) templ.Component {
	return v.modal(func(w *writer) {
		w.element("h2", v.tr(w.ctx, "login.title"))
		v.loginBody(w, p)
	})
}

func (v *Views) loginBody(w *writer, p auth.LoginFormParams) {
	w.render(v.LoginForm(p))
	w.open("p")
	w.text(v.tr(w.ctx, "login.no_account") + " ")
	w.element("a", v.tr(w.ctx, "nav.signup"), "href", "/signup")
	w.close("p")
}

// LoginForm shares the email signal with the signup form when both are on
// the page, so it only declares signals that are missing.
func (v *Views) LoginForm(p auth.LoginFormParams) templ.Component {
	return component(func(w *writer) {
		s := p.State
		openForm(w, auth.LoginFormID, "/login", map[string]any{
			string(auth.LoginEmail):    s.Values[auth.LoginEmail],
			string(auth.LoginPassword): "",
		}, true)
		v.field(w, field{
			FormID: auth.LoginFormID,
			Name:   string(auth.LoginEmail),
			Label:  v.tr(w.ctx, "login.email"),
			Type:   "email",
			Value:  s.Values[auth.LoginEmail],
			Error:  s.VisibleError(auth.LoginEmail),
			Events: "/login/fields",
			Attrs:  []string{"autocomplete", "email"},
		})
		v.field(w, field{
			FormID: auth.LoginFormID,
			Name:   string(auth.LoginPassword),
			Label:  v.tr(w.ctx, "login.password"),
			Type:   "password",
			Error:  s.VisibleError(auth.LoginPassword),
			Events: "/login/fields",
			Attrs:  []string{"autocomplete", "current-password"},
		})
		w.render(v.SubmitButton(auth.LoginFormID, p.CanSubmit))
		w.close("form")
	})
}
