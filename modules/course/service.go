package course

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strconv"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/enroll/handler"
	"github.com/dmitrymomot/enroll/modules/user"
	"github.com/dmitrymomot/enroll/pkg/apiclient"
	"github.com/dmitrymomot/enroll/pkg/binder"
	"github.com/dmitrymomot/enroll/pkg/form"
	"github.com/dmitrymomot/enroll/pkg/logger"
	"github.com/dmitrymomot/enroll/pkg/session"
	"github.com/dmitrymomot/enroll/pkg/toast"
)

// Element ids the views must use for patches to land.
const (
	ListID       = "course-list"
	MoreID       = "course-list-more"
	CourseFormID = "course-form"

	// SelectionSignal holds the ids checked for batch enrollment.
	SelectionSignal = "courseIds"

	courseStateKey = "form." + CourseFormID
)

type ListPageParams struct {
	User     *user.User
	Sort     Sort
	Page     *Page
	NextURL  string
	Enrolled EnrolledSet
	Toasts   []toast.Toast
}

type ItemsParams struct {
	User     *user.User
	Courses  []Course
	Enrolled EnrolledSet
}

type DetailParams struct {
	User     *user.User
	Course   *Course
	Enrolled bool
}

type DetailPageParams struct {
	Detail DetailParams
	Toasts []toast.Toast
}

type CourseFormParams struct {
	State     form.State[CourseField]
	CanSubmit bool
}

type NewCoursePageParams struct {
	User   *user.User
	Form   CourseFormParams
	Toasts []toast.Toast
}

// Views renders the course pages. Every function must be set.
type Views struct {
	ListPage func(ListPageParams) templ.Component
	// Items renders cards appended to the element with ListID.
	Items func(ItemsParams) templ.Component
	// More renders the scroll sentinel with MoreID. An empty url ends the
	// list.
	More       func(nextURL string) templ.Component
	Detail     func(DetailParams) templ.Component
	DetailPage func(DetailPageParams) templ.Component

	NewCoursePage func(NewCoursePageParams) templ.Component
	CourseForm    func(CourseFormParams) templ.Component
	FieldError    func(formID, field, message string) templ.Component
	SubmitButton  func(formID string, enabled bool) templ.Component
	Toasts        func([]toast.Toast) templ.Component
}

// Service serves the course list, course details, enrollment and course
// creation.
type Service struct {
	api          *API
	sessions     *session.Manager
	views        Views
	errorHandler handler.ErrorHandler[handler.Context]
	log          *slog.Logger
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func NewService(api *API, sessions *session.Manager, views Views, errorHandler handler.ErrorHandler[handler.Context], opts ...Option) *Service {
	s := &Service{
		api:          api,
		sessions:     sessions,
		views:        views,
		errorHandler: errorHandler,
		log:          slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("course"))
	return s
}

// Routes registers the course pages on r. Every page needs a signed-in
// user; the user middleware must already be installed.
func (s *Service) Routes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(user.RequireAuth("/signup"))

		r.Get("/", handler.Wrap(s.list,
			handler.WithBinders[handler.Context, listRequest](binder.Query()),
			handler.WithErrorHandler[handler.Context, listRequest](s.errorHandler),
		))
		r.Get("/courses/page", handler.Wrap(s.more,
			handler.WithBinders[handler.Context, listRequest](binder.Query()),
			handler.WithErrorHandler[handler.Context, listRequest](s.errorHandler),
		))
		r.Get("/courses/{id}", handler.Wrap(s.detail,
			handler.WithBinders[handler.Context, courseRequest](binder.Path(chi.URLParam)),
			handler.WithErrorHandler[handler.Context, courseRequest](s.errorHandler),
		))

		r.Group(func(r chi.Router) {
			r.Use(user.RequireRole("/", user.RoleStudent))

			r.Post("/courses/{id}/enroll", handler.Wrap(s.enroll,
				handler.WithBinders[handler.Context, courseRequest](binder.Path(chi.URLParam)),
				handler.WithErrorHandler[handler.Context, courseRequest](s.errorHandler),
			))
			r.Post("/enrollments/batch", handler.Wrap(s.batch,
				handler.WithBinders[handler.Context, batchEnrollRequest](binder.Form(), binder.Signals()),
				handler.WithErrorHandler[handler.Context, batchEnrollRequest](s.errorHandler),
			))
		})

		r.Group(func(r chi.Router) {
			r.Use(user.RequireRole("/", user.RoleInstructor))

			r.Get("/courses/new", handler.Wrap(s.newCoursePage,
				handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
			))
			r.Post("/courses/new", handler.Wrap(s.newCourseSubmit,
				handler.WithBinders[handler.Context, courseFormRequest](binder.Form(), binder.Signals()),
				handler.WithErrorHandler[handler.Context, courseFormRequest](s.errorHandler),
			))
			r.Post("/courses/new/fields/{field}/{event}", handler.Wrap(s.newCourseField,
				handler.WithBinders[handler.Context, courseFormRequest](binder.Path(chi.URLParam), binder.Signals()),
				handler.WithErrorHandler[handler.Context, courseFormRequest](s.errorHandler),
			))
		})
	})
}

type listRequest struct {
	Sort string `query:"sort"`
	Page int    `query:"page"`
}

type courseRequest struct {
	ID int64 `path:"id"`
}

type batchEnrollRequest struct {
	CourseIDs IDs `form:"course_ids" json:"courseIds"`
}

type courseFormRequest struct {
	Field       string `path:"field" form:"-" json:"-"`
	Event       string `path:"event" form:"-" json:"-"`
	Title       string `path:"-" form:"title" json:"title"`
	Description string `path:"-" form:"description" json:"description"`
	MaxStudents string `path:"-" form:"maxStudents" json:"maxStudents"`
	Price       string `path:"-" form:"price" json:"price"`
}

func (r courseFormRequest) value(f CourseField) string {
	switch f {
	case FieldTitle:
		return r.Title
	case FieldDescription:
		return r.Description
	case FieldMaxStudents:
		return r.MaxStudents
	case FieldPrice:
		return r.Price
	}
	return ""
}

// PageURL is where the list page after page is fetched from.
func PageURL(sort Sort, page int) string {
	q := url.Values{"sort": {string(sort)}, "page": {strconv.Itoa(page)}}
	return "/courses/page?" + q.Encode()
}

func nextURL(p *Page, sort Sort) string {
	next, ok := p.NextPage()
	if !ok {
		return ""
	}
	return PageURL(sort, next)
}

func (s *Service) list(ctx handler.Context, req listRequest) handler.Response {
	sort := ParseSort(req.Sort)
	page, err := s.api.List(ctx, ListParams{Page: req.Page, Sort: sort})
	if err != nil {
		return handler.Error(err)
	}

	toasts := handler.PopToasts(ctx)
	if err := s.sessions.Save(ctx, ctx.Session()); err != nil {
		return handler.Error(err)
	}

	u, _ := user.FromContext(ctx)
	return handler.Templ(s.views.ListPage(ListPageParams{
		User:     u,
		Sort:     sort,
		Page:     page,
		NextURL:  nextURL(page, sort),
		Enrolled: Enrolled(ctx.Session()),
		Toasts:   toasts,
	}))
}

// more appends the next page of the list for infinite scroll.
func (s *Service) more(ctx handler.Context, req listRequest) handler.Response {
	sort := ParseSort(req.Sort)
	page, err := s.api.List(ctx, ListParams{Page: req.Page, Sort: sort})
	if err != nil {
		return handler.Error(err)
	}

	u, _ := user.FromContext(ctx)
	items := s.views.Items(ItemsParams{User: u, Courses: page.Content, Enrolled: Enrolled(ctx.Session())})
	return handler.TemplMulti(
		handler.Patch(items, handler.WithTarget("#"+ListID), handler.WithPatchMode(handler.PatchAppend)),
		handler.Patch(s.views.More(nextURL(page, sort))),
	)
}

func (s *Service) detail(ctx handler.Context, req courseRequest) handler.Response {
	c, err := s.api.Get(ctx, req.ID)
	if err != nil {
		return handler.Error(err)
	}

	u, _ := user.FromContext(ctx)
	params := DetailParams{User: u, Course: c, Enrolled: Enrolled(ctx.Session()).Has(c.ID)}
	if handler.IsDataStar(ctx.Request()) {
		return handler.Templ(s.views.Detail(params))
	}

	toasts := handler.PopToasts(ctx)
	if err := s.sessions.Save(ctx, ctx.Session()); err != nil {
		return handler.Error(err)
	}
	return handler.Templ(s.views.DetailPage(DetailPageParams{Detail: params, Toasts: toasts}))
}

func (s *Service) enroll(ctx handler.Context, req courseRequest) handler.Response {
	sess := ctx.Session()
	log := s.log.With(logger.CourseID(req.ID), logger.Event("enroll"))

	enrollment, err := s.api.Enroll(ctx, req.ID)
	if err != nil {
		log.WarnContext(ctx, "enrollment failed", logger.Error(err))
		if err := toast.PushError(sess, apiclient.MessageOr(err, MsgEnrollError)); err != nil {
			return handler.Error(err)
		}
		return s.finish(ctx, "/courses/"+strconv.FormatInt(req.ID, 10), nil)
	}

	if err := MarkEnrolled(sess, req.ID); err != nil {
		return handler.Error(err)
	}
	msg := enrollment.Message
	if msg == "" {
		msg = MsgEnrolled
	}
	if err := toast.PushSuccess(sess, msg); err != nil {
		return handler.Error(err)
	}
	log.InfoContext(ctx, "enrolled")

	// fresh seat counts for the modal
	c, err := s.api.Get(ctx, req.ID)
	if err != nil {
		log.WarnContext(ctx, "reload after enrollment failed", logger.Error(err))
		return s.finish(ctx, "/courses/"+strconv.FormatInt(req.ID, 10), nil)
	}
	u, _ := user.FromContext(ctx)
	return s.finish(ctx, "/courses/"+strconv.FormatInt(req.ID, 10), func(st *handler.Stream) error {
		return st.Patch(s.views.Detail(DetailParams{User: u, Course: c, Enrolled: true}))
	})
}

func (s *Service) batch(ctx handler.Context, req batchEnrollRequest) handler.Response {
	sess := ctx.Session()
	ids := req.CourseIDs.Unique()

	if len(ids) == 0 {
		if err := toast.PushWarning(sess, MsgSelectCourses); err != nil {
			return handler.Error(err)
		}
		return s.finish(ctx, "/", nil)
	}

	result, err := s.api.BatchEnroll(ctx, ids)
	if err != nil {
		s.log.WarnContext(ctx, "batch enrollment failed", logger.Error(err), logger.Event("batch_enroll"))
		if err := toast.PushError(sess, apiclient.MessageOr(err, MsgEnrollError)); err != nil {
			return handler.Error(err)
		}
		return s.finish(ctx, "/", nil)
	}

	if err := MarkEnrolled(sess, result.EnrolledIDs()...); err != nil {
		return handler.Error(err)
	}
	for _, n := range result.Notices() {
		if err := toast.Push(sess, n.Kind, n.Message); err != nil {
			return handler.Error(err)
		}
	}
	s.log.InfoContext(ctx, "batch enrollment done",
		logger.Event("batch_enroll"),
		slog.Int("succeeded", len(result.Success)),
		slog.Int("failed", len(result.Failed)),
	)

	return s.finish(ctx, "/", func(st *handler.Stream) error {
		return st.Signal(SelectionSignal, []int64{})
	})
}

// finish ends an action. Regular requests go back to the referring page,
// which shows the queued toasts. Datastar requests stay on the page and get
// the toasts patched in after whatever patch writes.
func (s *Service) finish(ctx handler.Context, fallback string, patch func(*handler.Stream) error) handler.Response {
	if !handler.IsDataStar(ctx.Request()) {
		if err := s.sessions.Save(ctx, ctx.Session()); err != nil {
			return handler.Error(err)
		}
		return handler.RedirectBack(fallback)
	}

	toasts := handler.PopToasts(ctx)
	if err := s.sessions.Save(ctx, ctx.Session()); err != nil {
		return handler.Error(err)
	}
	return handler.SSE(func(st *handler.Stream) error {
		if patch != nil {
			if err := patch(st); err != nil {
				return err
			}
		}
		t := handler.ToastsPatch(s.views.Toasts(toasts))
		return st.Patch(t.Component, t.Options...)
	})
}

func (s *Service) newCoursePage(ctx handler.Context, _ struct{}) handler.Response {
	f := NewCourseForm(nil, handler.RestoreForm[CourseField](ctx, courseStateKey))
	toasts := handler.PopToasts(ctx)
	if err := s.sessions.Save(ctx, ctx.Session()); err != nil {
		return handler.Error(err)
	}

	u, _ := user.FromContext(ctx)
	st := f.State()
	return handler.Templ(s.views.NewCoursePage(NewCoursePageParams{
		User:   u,
		Form:   CourseFormParams{State: st, CanSubmit: CanSubmitCourse(st)},
		Toasts: toasts,
	}))
}

func (s *Service) newCourseField(ctx handler.Context, req courseFormRequest) handler.Response {
	field := CourseField(req.Field)
	if !slices.Contains(CourseFields, field) || (req.Event != "change" && req.Event != "blur") {
		s.log.DebugContext(ctx.Request().Context(), "unknown field event", logger.Field(req.Field), logger.Event(req.Event))
		return handler.Error(handler.ErrNotFound)
	}

	f := NewCourseForm(nil, handler.RestoreForm[CourseField](ctx, courseStateKey))
	f.HandleChange(field)(form.Value(req.value(field)))
	if req.Event == "blur" {
		f.HandleBlur(field)()
	}
	if err := handler.KeepForm(ctx, courseStateKey, f); err != nil {
		return handler.Error(err)
	}
	if err := s.sessions.Save(ctx, ctx.Session()); err != nil {
		return handler.Error(err)
	}

	st := f.State()
	return handler.TemplMulti(
		handler.Patch(s.views.FieldError(CourseFormID, string(field), st.VisibleError(field))),
		handler.Patch(s.views.SubmitButton(CourseFormID, CanSubmitCourse(st))),
	)
}

func (s *Service) newCourseSubmit(ctx handler.Context, req courseFormRequest) handler.Response {
	u := user.MustFromContext(ctx)

	var created *Course
	f := NewCourseForm(func(c context.Context, v form.Values[CourseField]) error {
		course, err := s.api.Create(c, CreateRequestFrom(v, u.Name))
		if err != nil {
			return err
		}
		created = course
		return nil
	}, handler.RestoreForm[CourseField](ctx, courseStateKey))

	for _, field := range CourseFields {
		f.HandleChange(field)(form.Value(req.value(field)))
	}
	submitErr := f.HandleSubmit(ctx, nil)
	sess := ctx.Session()

	if submitErr == nil && created != nil {
		handler.DropForm(ctx, courseStateKey)
		if err := toast.PushSuccess(sess, MsgCourseCreated); err != nil {
			return handler.Error(err)
		}
		if err := s.sessions.Save(ctx, sess); err != nil {
			return handler.Error(err)
		}
		s.log.InfoContext(ctx, "course created", logger.CourseID(created.ID), logger.UserID(&u.ID))
		return handler.Redirect("/")
	}

	if submitErr != nil {
		s.log.WarnContext(ctx, "course creation failed", logger.Error(submitErr), logger.Event("create_course"))
		if err := toast.PushError(sess, apiclient.MessageOr(submitErr, MsgCreateFailed)); err != nil {
			return handler.Error(err)
		}
	}
	if err := handler.KeepForm(ctx, courseStateKey, f); err != nil {
		return handler.Error(err)
	}

	toasts := handler.PopToasts(ctx)
	if err := s.sessions.Save(ctx, sess); err != nil {
		return handler.Error(err)
	}

	st := f.State()
	params := CourseFormParams{State: st, CanSubmit: CanSubmitCourse(st)}
	if handler.IsDataStar(ctx.Request()) {
		return handler.TemplMulti(
			handler.Patch(s.views.CourseForm(params)),
			handler.ToastsPatch(s.views.Toasts(toasts)),
		)
	}
	return handler.TemplStatus(http.StatusUnprocessableEntity, s.views.NewCoursePage(NewCoursePageParams{
		User:   u,
		Form:   params,
		Toasts: toasts,
	}))
}
