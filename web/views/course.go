package views

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/enroll/modules/course"
	"github.com/dmitrymomot/enroll/modules/user"
	"github.com/dmitrymomot/enroll/pkg/format"
)

// CourseViews wires the course pages into the course module.
func (v *Views) CourseViews() course.Views {
	return course.Views{
		ListPage:      v.ListPage,
		Items:         v.Items,
		More:          v.More,
		Detail:        v.Detail,
		DetailPage:    v.DetailPage,
		NewCoursePage: v.NewCoursePage,
		CourseForm:    v.CourseForm,
		FieldError:    v.FieldError,
		SubmitButton:  v.SubmitButton,
		Toasts:        v.Toasts,
	}
}

func courseURL(id int64) string {
	return "/courses/" + strconv.FormatInt(id, 10)
}

func (v *Views) ListPage(p course.ListPageParams) templ.Component {
	body := component(func(w *writer) {
		w.element("h1", v.tr(w.ctx, "course.list_title"))
		v.sortNav(w, p.Sort)

		if p.User.IsStudent() {
			w.open("div", "data-signals", `{"`+course.SelectionSignal+`":[]}`)
			w.raw("<button")
			w.attr("id", "batch-enroll")
			w.attr("type", "button")
			w.attr("data-show", "$"+course.SelectionSignal+".length > 0")
			w.attr("data-on:click", "@post('/enrollments/batch')")
			w.raw(">")
			w.text(v.tr(w.ctx, "course.batch_enroll") + " ")
			w.raw("<span")
			w.attr("data-text", "$"+course.SelectionSignal+".length")
			w.raw("></span></button>")
		}

		var courses []course.Course
		if p.Page != nil {
			courses = p.Page.Content
		}
		if len(courses) == 0 {
			w.element("p", v.tr(w.ctx, "course.empty"), "class", "empty")
		}
		w.open("div", "id", course.ListID)
		w.render(v.Items(course.ItemsParams{User: p.User, Courses: courses, Enrolled: p.Enrolled}))
		w.close("div")
		w.render(v.More(p.NextURL))

		if p.User.IsStudent() {
			w.close("div")
		}
	})
	return component(func(w *writer) {
		w.render(v.page(pageParams{Title: v.tr(w.ctx, "course.list_title"), User: p.User, Toasts: p.Toasts, Body: body}))
	})
}

func (v *Views) sortNav(w *writer, current course.Sort) {
	w.open("nav", "class", "sort")
	for _, s := range course.Sorts {
		w.raw("<a")
		w.attr("href", "/?sort="+string(s))
		if s == current {
			w.attr("aria-current", "true")
		}
		w.raw(">")
		w.text(v.tr(w.ctx, "course.sort."+string(s)))
		w.raw("</a> ")
	}
	w.close("nav")
}

// Items renders course cards. Students get a checkbox bound to the
// selection signal; full and already enrolled courses cannot be checked.
func (v *Views) Items(p course.ItemsParams) templ.Component {
	return component(func(w *writer) {
		for _, c := range p.Courses {
			v.card(w, p.User, c, p.Enrolled.Has(c.ID))
		}
	})
}

func (v *Views) card(w *writer, u *user.User, c course.Course, enrolled bool) {
	class := "course-card"
	if c.IsFull {
		class += " full"
	}
	id := strconv.FormatInt(c.ID, 10)
	w.open("article", "id", "course-"+id, "class", class)
	if u.IsStudent() {
		w.raw("<input")
		w.attr("type", "checkbox")
		w.attr("value", id)
		w.attr("data-bind", course.SelectionSignal)
		w.attr("aria-label", c.Title)
		w.flag("disabled", c.IsFull || enrolled)
		w.raw(">")
	}
	w.open("div")
	w.open("h3")
	w.element("a", c.Title, "href", courseURL(c.ID), "data-on:click__prevent", "@get('"+courseURL(c.ID)+"')")
	w.close("h3")
	w.element("p", v.tr(w.ctx, "course.instructor", "name", c.InstructorName))
	w.open("p")
	v.seats(w, c)
	if enrolled {
		w.raw(" ")
		w.element("span", v.tr(w.ctx, "course.enrolled"), "class", "badge")
	}
	w.close("p")
	w.element("p", format.Price(c.Price), "class", "price")
	w.close("div")
	w.close("article")
}

func (v *Views) seats(w *writer, c course.Course) {
	w.element("span", v.tr(w.ctx, "course.seats",
		"current", format.Number(c.CurrentStudents),
		"max", format.Number(c.MaxStudents)))
	w.raw(" ")
	switch {
	case c.IsFull:
		w.element("span", v.tr(w.ctx, "course.full"), "class", "badge full")
	case c.FewSeats():
		w.element("span", v.tr(w.ctx, "course.available", "count", format.Number(c.AvailableSeats)), "class", "badge few")
	}
}

// More is the infinite scroll sentinel. Without a url it renders empty and
// stops loading.
func (v *Views) More(nextURL string) templ.Component {
	return component(func(w *writer) {
		if nextURL == "" {
			w.open("div", "id", course.MoreID)
		} else {
			w.open("div", "id", course.MoreID, "data-on-intersect__once", "@get('"+nextURL+"')")
		}
		w.close("div")
	})
}

// Detail is the course modal.
func (v *Views) Detail(p course.DetailParams) templ.Component {
	return v.modal(func(w *writer) {
		v.detail(w, p)
	})
}

func (v *Views) DetailPage(p course.DetailPageParams) templ.Component {
	body := component(func(w *writer) {
		w.element("a", v.tr(w.ctx, "common.back"), "href", "/")
		v.detail(w, p.Detail)
	})
	return component(func(w *writer) {
		title := ""
		if p.Detail.Course != nil {
			title = p.Detail.Course.Title
		}
		w.render(v.page(pageParams{Title: title, User: p.Detail.User, Toasts: p.Toasts, Body: body}))
	})
}

func (v *Views) detail(w *writer, p course.DetailParams) {
	c := p.Course
	if c == nil {
		return
	}
	w.open("article", "class", "course-detail")
	w.element("h2", c.Title)
	w.element("p", v.tr(w.ctx, "course.instructor", "name", c.InstructorName))
	if c.Description != "" {
		w.element("p", c.Description, "class", "description", "style", "white-space:pre-line")
	}
	w.open("dl")
	w.element("dt", v.tr(w.ctx, "course.price"))
	w.element("dd", format.Price(c.Price))
	w.element("dt", v.tr(w.ctx, "course.students"))
	w.open("dd")
	v.seats(w, *c)
	w.close("dd")
	if t, ok := c.Created(); ok {
		w.element("dt", v.tr(w.ctx, "course.created"))
		w.element("dd", t.Format("2006.01.02"))
	}
	w.close("dl")

	if p.User.IsStudent() {
		v.enrollButton(w, c, p.Enrolled)
	}
	w.close("article")
}

func (v *Views) enrollButton(w *writer, c *course.Course, enrolled bool) {
	w.raw("<button")
	w.attr("id", "enroll-"+strconv.FormatInt(c.ID, 10))
	w.attr("type", "button")
	switch {
	case enrolled:
		w.flag("disabled", true)
		w.raw(">")
		w.text(v.tr(w.ctx, "course.enrolled"))
	case c.IsFull:
		w.flag("disabled", true)
		w.raw(">")
		w.text(v.tr(w.ctx, "course.full"))
	default:
		confirm := v.tr(w.ctx, "course.confirm_enroll", "title", c.Title)
		w.attr("data-on:click", "confirm("+jsString(confirm)+") && @post('"+courseURL(c.ID)+"/enroll')")
		w.raw(">")
		w.text(v.tr(w.ctx, "course.enroll"))
	}
	w.raw("</button>")
}

func (v *Views) NewCoursePage(p course.NewCoursePageParams) templ.Component {
	body := component(func(w *writer) {
		w.element("h1", v.tr(w.ctx, "course.new.title"))
		w.render(v.CourseForm(p.Form))
	})
	return component(func(w *writer) {
		w.render(v.page(pageParams{Title: v.tr(w.ctx, "course.new.title"), User: p.User, Toasts: p.Toasts, Body: body}))
	})
}

func (v *Views) CourseForm(p course.CourseFormParams) templ.Component {
	return component(func(w *writer) {
		s := p.State
		signals := make(map[string]any, len(course.CourseFields))
		for _, f := range course.CourseFields {
			signals[string(f)] = s.Values[f]
		}
		openForm(w, course.CourseFormID, "/courses/new", signals, false)
		for _, f := range []struct {
			name  course.CourseField
			label string
			typ   string
			attrs []string
		}{
			{course.FieldTitle, "course.new.course_title", "text", []string{"maxlength", "100"}},
			{course.FieldDescription, "course.new.description", "textarea", []string{"rows", "5"}},
			{course.FieldMaxStudents, "course.new.max_students", "number", []string{"min", "1", "max", "100", "inputmode", "numeric"}},
			{course.FieldPrice, "course.new.price", "number", []string{"min", "0", "max", "1000000", "step", "100", "inputmode", "numeric"}},
		} {
			v.field(w, field{
				FormID: course.CourseFormID,
				Name:   string(f.name),
				Label:  v.tr(w.ctx, f.label),
				Type:   f.typ,
				Value:  s.Values[f.name],
				Error:  s.VisibleError(f.name),
				Events: "/courses/new/fields",
				Attrs:  f.attrs,
			})
		}
		w.render(v.SubmitButton(course.CourseFormID, p.CanSubmit))
		w.close("form")
	})
}
