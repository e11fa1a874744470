package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// writer accumulates the first write error so components read top to
// bottom without an error check after every tag.
type writer struct {
	ctx context.Context
	w   io.Writer
	err error
}

func component(fn func(w *writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{ctx: ctx, w: out}
		fn(w)
		return w.err
	})
}

// raw writes trusted markup.
func (w *writer) raw(parts ...string) {
	for _, p := range parts {
		if w.err != nil {
			return
		}
		_, w.err = io.WriteString(w.w, p)
	}
}

// text writes escaped text content.
func (w *writer) text(s string) {
	w.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (w *writer) attr(name, value string) {
	w.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// flag writes a boolean attribute when on.
func (w *writer) flag(name string, on bool) {
	if on {
		w.raw(" ", name)
	}
}

func (w *writer) open(tag string, attrs ...string) {
	w.raw("<", tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		w.attr(attrs[i], attrs[i+1])
	}
	w.raw(">")
}

func (w *writer) close(tag string) {
	w.raw("</", tag, ">")
}

// element writes <tag attrs...>text</tag>.
func (w *writer) element(tag, text string, attrs ...string) {
	w.open(tag, attrs...)
	w.text(text)
	w.close(tag)
}

func (w *writer) render(c templ.Component) {
	if w.err != nil || c == nil {
		return
	}
	w.err = c.Render(w.ctx, w.w)
}

// jsString quotes s for use inside a datastar expression.
func jsString(s string) string {
	return strconv.Quote(s)
}
