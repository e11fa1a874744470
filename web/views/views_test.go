package views_test

import (
	"bytes"
	"context"
	"reflect"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/enroll/handler"
	"github.com/dmitrymomot/enroll/modules/auth"
	"github.com/dmitrymomot/enroll/modules/course"
	"github.com/dmitrymomot/enroll/modules/user"
	"github.com/dmitrymomot/enroll/pkg/form"
	"github.com/dmitrymomot/enroll/pkg/i18n"
	"github.com/dmitrymomot/enroll/pkg/toast"
	"github.com/dmitrymomot/enroll/web/locales"
	"github.com/dmitrymomot/enroll/web/views"
)

func newViews(t *testing.T) *views.Views {
	t.Helper()
	tr, err := i18n.NewTranslator(context.Background(),
		i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "."),
		i18n.WithDefaultLanguage("ko"),
	)
	require.NoError(t, err)
	return views.New(tr)
}

func render(t *testing.T, c templ.Component, lang ...string) string {
	t.Helper()
	ctx := context.Background()
	if len(lang) > 0 {
		ctx = i18n.WithLanguage(ctx, lang[0])
	}
	var buf bytes.Buffer
	require.NoError(t, c.Render(ctx, &buf))
	return buf.String()
}

func assertAllSet(t *testing.T, v any) {
	t.Helper()
	rv := reflect.ValueOf(v)
	for i := range rv.NumField() {
		assert.False(t, rv.Field(i).IsNil(), rv.Type().Field(i).Name)
	}
}

var (
	student    = &user.User{ID: 1, Name: "김학생", Role: user.RoleStudent}
	instructor = &user.User{ID: 2, Name: "박강사", Role: user.RoleInstructor}

	catalog = []course.Course{
		{ID: 1, Title: "Go 입문", InstructorName: "박강사", MaxStudents: 30, CurrentStudents: 3, AvailableSeats: 27, Price: 10000, CreatedAt: "2026-03-01T10:00:00"},
		{ID: 2, Title: "마감 강의", InstructorName: "이강사", MaxStudents: 10, CurrentStudents: 10, IsFull: true, Price: 0},
	}
)

func TestViews_AllFunctionsSet(t *testing.T) {
	t.Parallel()
	v := newViews(t)
	assertAllSet(t, v.AuthViews())
	assertAllSet(t, v.CourseViews())
}

func TestFieldError(t *testing.T) {
	t.Parallel()
	v := newViews(t)

	out := render(t, v.FieldError("signup-form", "email", "<b>bad</b>"))
	assert.Contains(t, out, `id="signup-form-email-error"`)
	assert.Contains(t, out, "&lt;b&gt;bad&lt;/b&gt;")

	out = render(t, v.FieldError("signup-form", "email", ""))
	assert.Contains(t, out, `id="signup-form-email-error"`, "empty errors keep their patch target")
}

func TestSubmitButton(t *testing.T) {
	t.Parallel()
	v := newViews(t)

	out := render(t, v.SubmitButton(auth.SignupFormID, false))
	assert.Contains(t, out, `id="signup-form-submit"`)
	assert.Contains(t, out, " disabled")
	assert.Contains(t, out, "회원가입")

	out = render(t, v.SubmitButton(course.CourseFormID, true), "en")
	assert.NotContains(t, out, "disabled")
	assert.Contains(t, out, "Create")
}

func TestToasts(t *testing.T) {
	t.Parallel()
	v := newViews(t)

	ok, err := toast.New(toast.Success, "완료")
	require.NoError(t, err)
	out := render(t, v.Toasts([]toast.Toast{ok}))
	assert.Contains(t, out, `id="`+ok.ID+`"`)
	assert.Contains(t, out, "toast-success")
	assert.Contains(t, out, "setTimeout(() =&gt; el.remove(), 3000)")

	out = render(t, v.ErrorToast(handler.ErrorToastParams{Message: "서버 오류", Type: "bogus"}))
	assert.Contains(t, out, "toast-error")
	assert.Contains(t, out, "서버 오류")
}

func TestErrorPage(t *testing.T) {
	t.Parallel()
	v := newViews(t)

	out := render(t, v.ErrorPage(handler.ErrorPageParams{
		Error:      "페이지를 찾을 수 없습니다.",
		StatusCode: 404,
		RequestID:  "req-1",
		RetryURL:   "/courses/9",
	}))
	assert.Contains(t, out, "<!doctype html>")
	assert.Contains(t, out, "404 Not Found")
	assert.Contains(t, out, "요청 ID: req-1")
	assert.Contains(t, out, `href="/courses/9"`)
	assert.Contains(t, out, `id="toast-container"`)
}

func TestSignupForm(t *testing.T) {
	t.Parallel()
	v := newViews(t)

	state := form.State[auth.SignupField]{
		Values: form.Values[auth.SignupField]{
			auth.SignupEmail:    "bad",
			auth.SignupPassword: "secret1",
			auth.SignupName:     "홍길동",
			auth.SignupPhone:    "010-1234",
			auth.SignupRole:     string(user.RoleInstructor),
		},
		Errors:  form.Errors[auth.SignupField]{auth.SignupEmail: "이메일 오류", auth.SignupPhone: "번호 오류"},
		Touched: form.Touched[auth.SignupField]{auth.SignupEmail: true},
	}
	out := render(t, v.SignupForm(auth.SignupFormParams{State: state}))

	assert.Contains(t, out, `id="signup-form"`)
	assert.NotContains(t, out, "secret1")
	assert.Contains(t, out, "이메일 오류")
	assert.NotContains(t, out, "번호 오류", "untouched fields hide their error")
	assert.Contains(t, out, `data-on:blur="@post(&#39;/signup/fields/email/blur&#39;)"`)
	assert.Contains(t, out, `value="INSTRUCTOR" data-bind="role" data-on:change="@post(&#39;/signup/fields/role/change&#39;)" checked`)
	assert.Contains(t, out, " disabled")
}

func TestLoginModal(t *testing.T) {
	t.Parallel()
	v := newViews(t)

	out := render(t, v.LoginModal(auth.LoginFormParams{CanSubmit: true}))
	assert.Contains(t, out, `id="modal"`)
	assert.Contains(t, out, `id="login-form"`)
	assert.Contains(t, out, "data-signals__ifmissing")
	assert.NotContains(t, out, "disabled")
}

func TestListPage(t *testing.T) {
	t.Parallel()
	v := newViews(t)

	page := &course.Page{Content: catalog}
	out := render(t, v.ListPage(course.ListPageParams{
		User:     student,
		Sort:     course.SortPopular,
		Page:     page,
		NextURL:  course.PageURL(course.SortPopular, 1),
		Enrolled: course.EnrolledSet{1: {}},
	}))

	assert.Contains(t, out, `id="course-list"`)
	assert.Contains(t, out, `data-bind="courseIds"`)
	assert.Contains(t, out, `id="batch-enroll"`)
	assert.Contains(t, out, `href="/?sort=popular" aria-current="true"`)
	assert.Contains(t, out, "10,000원")
	assert.Contains(t, out, "마감")
	assert.Contains(t, out, "신청 완료")
	assert.Contains(t, out, `data-on-intersect__once="@get(&#39;/courses/page?`)
	assert.Contains(t, out, "김학생님 (수강생)")
	assert.NotContains(t, out, `href="/courses/new"`)

	out = render(t, v.ListPage(course.ListPageParams{User: instructor, Sort: course.SortRecent, Page: page}))
	assert.NotContains(t, out, `data-bind="courseIds"`)
	assert.Contains(t, out, `href="/courses/new"`)
	assert.NotContains(t, out, "data-on-intersect")
}

func TestItems_DisablesFullAndEnrolled(t *testing.T) {
	t.Parallel()
	v := newViews(t)

	out := render(t, v.Items(course.ItemsParams{User: student, Courses: catalog}))
	assert.Contains(t, out, `value="1" data-bind="courseIds" aria-label="Go 입문">`)
	assert.Contains(t, out, `value="2" data-bind="courseIds" aria-label="마감 강의" disabled>`)

	out = render(t, v.Items(course.ItemsParams{User: student, Courses: catalog[:1], Enrolled: course.EnrolledSet{1: {}}}))
	assert.Contains(t, out, `aria-label="Go 입문" disabled>`)
}

func TestDetail(t *testing.T) {
	t.Parallel()
	v := newViews(t)

	c := catalog[0]
	out := render(t, v.Detail(course.DetailParams{User: student, Course: &c}))
	assert.Contains(t, out, `id="modal"`)
	assert.Contains(t, out, "2026.03.01")
	assert.Contains(t, out, `@post(&#39;/courses/1/enroll&#39;)`)

	out = render(t, v.Detail(course.DetailParams{User: student, Course: &c, Enrolled: true}))
	assert.Contains(t, out, "신청 완료")
	assert.NotContains(t, out, "/enroll")

	full := catalog[1]
	out = render(t, v.Detail(course.DetailParams{User: instructor, Course: &full}))
	assert.NotContains(t, out, `id="enroll-2"`)
}

func TestCourseForm(t *testing.T) {
	t.Parallel()
	v := newViews(t)

	out := render(t, v.NewCoursePage(course.NewCoursePageParams{
		User: instructor,
		Form: course.CourseFormParams{State: form.State[course.CourseField]{
			Values: form.Values[course.CourseField]{course.FieldDescription: "<i>소개</i>"},
		}},
	}))
	assert.Contains(t, out, `id="course-form"`)
	assert.Contains(t, out, "&lt;i&gt;소개&lt;/i&gt;</textarea>")
	assert.Contains(t, out, `@post(&#39;/courses/new/fields/maxStudents/change&#39;)`)
	assert.Contains(t, out, "강의 개설")
}
