package views

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/enroll/modules/user"
	"github.com/dmitrymomot/enroll/pkg/toast"
)

const styles = `
body{font-family:system-ui,sans-serif;margin:0;background:#f6f7f9;color:#1f2328}
header{display:flex;justify-content:space-between;align-items:center;padding:12px 24px;background:#fff;border-bottom:1px solid #e5e7eb}
main{max-width:880px;margin:24px auto;padding:0 16px}
form.stack{display:flex;flex-direction:column;gap:12px;background:#fff;padding:24px;border-radius:8px}
label{font-weight:600}
input,textarea{width:100%;padding:8px;box-sizing:border-box}
.field-error{color:#d1242f;min-height:1em;margin:4px 0 0;font-size:.9em}
.help{color:#656d76;font-size:.85em}
.course-card{background:#fff;border-radius:8px;padding:16px;margin-bottom:12px;display:flex;gap:12px}
.course-card.full{opacity:.6}
.badge{display:inline-block;padding:2px 6px;border-radius:4px;font-size:.8em;background:#eef}
.badge.full{background:#ffebe9;color:#d1242f}
.badge.few{background:#fff8c5}
#toast-container{position:fixed;top:16px;right:16px;display:flex;flex-direction:column;gap:8px;z-index:20}
.toast{padding:12px 16px;border-radius:6px;background:#fff;box-shadow:0 2px 8px rgba(0,0,0,.15)}
.toast-success{border-left:4px solid #1a7f37}
.toast-error{border-left:4px solid #d1242f}
.toast-warning{border-left:4px solid #9a6700}
.toast-info{border-left:4px solid #0969da}
.modal{position:fixed;inset:0;background:rgba(0,0,0,.4);display:flex;align-items:center;justify-content:center;z-index:10}
.modal>section{background:#fff;border-radius:8px;padding:24px;min-width:320px;max-width:560px}
`

type pageParams struct {
	Title  string
	User   *user.User
	Toasts []toast.Toast
	Body   templ.Component
}

// page is the document shell. It always carries the toast container and an
// empty modal slot so patches have somewhere to land.
func (v *Views) page(p pageParams) templ.Component {
	return component(func(w *writer) {
		w.raw("<!doctype html>")
		w.open("html", "lang", v.lang(w.ctx))
		w.raw("<head>", `<meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		title := v.tr(w.ctx, "app.title")
		if p.Title != "" {
			title = p.Title + " | " + title
		}
		w.element("title", title)
		w.open("script", "type", "module", "src", DatastarScript)
		w.close("script")
		w.raw("<style>", styles, "</style></head><body>")

		v.header(w, p.User)

		w.open("main")
		w.render(p.Body)
		w.close("main")

		w.open("div", "id", ToastContainerID)
		w.render(v.Toasts(p.Toasts))
		w.close("div")
		w.open("div", "id", ModalID)
		w.close("div")
		w.raw("</body></html>")
	})
}

func (v *Views) header(w *writer, u *user.User) {
	w.open("header")
	w.open("a", "href", "/")
	w.text(v.tr(w.ctx, "app.title"))
	w.close("a")
	w.open("nav")
	if u == nil {
		w.element("a", v.tr(w.ctx, "nav.signup"), "href", "/signup")
		w.raw(" ")
		w.element("a", v.tr(w.ctx, "nav.login"), "href", "/login")
	} else {
		w.element("span", v.tr(w.ctx, "nav.greeting", "name", u.Name, "role", u.Role.Label()))
		w.raw(" ")
		if u.IsInstructor() {
			w.element("a", v.tr(w.ctx, "nav.new_course"), "href", "/courses/new")
			w.raw(" ")
		}
		w.open("form", "method", "post", "action", "/logout", "style", "display:inline")
		w.element("button", v.tr(w.ctx, "nav.logout"), "type", "submit")
		w.close("form")
	}
	w.close("nav")
	w.close("header")
}

// modal wraps body in the overlay that replaces the empty modal slot.
func (v *Views) modal(body func(w *writer)) templ.Component {
	return component(func(w *writer) {
		w.open("div", "id", ModalID)
		w.open("div", "class", "modal",
			"data-on:click", "evt.target === el && el.parentElement.replaceChildren()")
		w.open("section")
		w.element("button", v.tr(w.ctx, "common.close"), "type", "button", "class", "close",
			"data-on:click", "document.getElementById('"+ModalID+"').replaceChildren()")
		body(w)
		w.close("section")
		w.close("div")
		w.close("div")
	})
}
