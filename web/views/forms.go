package views

import (
	"encoding/json"

	"github.com/a-h/templ"
)

type field struct {
	FormID string
	Name   string
	Label  string
	// Type is an input type or "textarea".
	Type  string
	Value string
	Error string
	Help  string
	// Events is the base url of the field endpoint; change and blur are
	// posted to Events/{name}/{event}.
	Events string
	Attrs  []string
}

func fieldID(formID, name string) string { return formID + "-" + name }

func errorID(formID, name string) string { return formID + "-" + name + "-error" }

func submitID(formID string) string { return formID + "-submit" }

func (v *Views) field(w *writer, f field) {
	id := fieldID(f.FormID, f.Name)
	w.open("div", "class", "field")
	w.element("label", f.Label, "for", id)

	attrs := []string{"id", id, "name", f.Name, "data-bind", f.Name}
	if f.Events != "" {
		url := f.Events + "/" + f.Name
		attrs = append(attrs,
			"data-on:input__debounce.300ms", "@post('"+url+"/change')",
			"data-on:blur", "@post('"+url+"/blur')",
		)
	}
	attrs = append(attrs, f.Attrs...)

	if f.Type == "textarea" {
		w.open("textarea", attrs...)
		w.text(f.Value)
		w.close("textarea")
	} else {
		w.open("input", append(attrs, "type", f.Type, "value", f.Value)...)
	}
	if f.Help != "" {
		w.element("p", f.Help, "class", "help")
	}
	w.render(v.FieldError(f.FormID, f.Name, f.Error))
	w.close("div")
}

// FieldError is always rendered, empty or not, so the handlers can patch it
// by id.
func (v *Views) FieldError(formID, field, message string) templ.Component {
	return component(func(w *writer) {
		w.element("p", message, "id", errorID(formID, field), "class", "field-error", "role", "alert")
	})
}

// SubmitButton is the submit button of formID. Its label comes from
// form.{formID}.submit.
func (v *Views) SubmitButton(formID string, enabled bool) templ.Component {
	return component(func(w *writer) {
		w.raw("<button")
		w.attr("id", submitID(formID))
		w.attr("type", "submit")
		w.flag("disabled", !enabled)
		w.raw(">")
		w.text(v.tr(w.ctx, "form."+formID+".submit"))
		w.raw("</button>")
	})
}

// openForm starts a form that posts its signals through datastar and still
// works as a plain form post without scripts.
func openForm(w *writer, id, action string, signals map[string]any, ifMissing bool) {
	data, err := json.Marshal(signals)
	if err != nil {
		w.err = err
		return
	}
	key := "data-signals"
	if ifMissing {
		key += "__ifmissing"
	}
	w.open("form",
		"id", id,
		"class", "stack",
		"method", "post",
		"action", action,
		key, string(data),
		"data-on:submit__prevent", "@post('"+action+"')",
	)
}
