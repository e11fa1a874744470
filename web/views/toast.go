package views

import (
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/enroll/handler"
	"github.com/dmitrymomot/enroll/pkg/toast"
)

// Toasts renders each toast; they remove themselves after their duration.
// Used both inside the layout and as an append patch into the container.
func (v *Views) Toasts(toasts []toast.Toast) templ.Component {
	return component(func(w *writer) {
		for _, t := range toasts {
			writeToast(w, t)
		}
	})
}

func writeToast(w *writer, t toast.Toast) {
	d := t.Duration
	if d <= 0 {
		d = toast.DefaultDuration
	}
	ms := strconv.FormatInt(d.Milliseconds(), 10)
	w.element("div", t.Message,
		"id", t.ID,
		"class", "toast toast-"+string(t.Kind),
		"role", "status",
		"data-init", "setTimeout(() => el.remove(), "+ms+")",
	)
}

// ErrorToast shows a handler error as a toast.
func (v *Views) ErrorToast(p handler.ErrorToastParams) templ.Component {
	kind := toast.Kind(p.Type)
	switch kind {
	case toast.Success, toast.Error, toast.Warning, toast.Info:
	default:
		kind = toast.Error
	}
	msg := p.Message
	if msg == "" {
		msg = http.StatusText(http.StatusInternalServerError)
	}
	return component(func(w *writer) {
		t, err := toast.New(kind, msg)
		if err != nil {
			w.err = err
			return
		}
		writeToast(w, t)
	})
}

// ErrorPage is the full page shown for failed regular requests.
func (v *Views) ErrorPage(p handler.ErrorPageParams) templ.Component {
	body := component(func(w *writer) {
		w.open("section", "class", "error-page")
		w.element("h1", v.tr(w.ctx, "error.title"))
		w.element("p", strconv.Itoa(p.StatusCode)+" "+http.StatusText(p.StatusCode), "class", "status")
		w.element("p", p.Error, "class", "message")
		if p.RequestID != "" {
			w.element("p", v.tr(w.ctx, "error.request_id", "id", p.RequestID), "class", "help")
		}
		if p.RetryURL != "" {
			w.element("a", v.tr(w.ctx, "error.retry"), "href", p.RetryURL)
			w.raw(" ")
		}
		w.element("a", v.tr(w.ctx, "error.home"), "href", "/")
		w.close("section")
	})
	return v.page(pageParams{Body: body})
}
