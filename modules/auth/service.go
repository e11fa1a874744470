package auth

import (
	"context"
	"log/slog"
	"net/http"
	"slices"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/enroll/handler"
	"github.com/dmitrymomot/enroll/modules/user"
	"github.com/dmitrymomot/enroll/pkg/apiclient"
	"github.com/dmitrymomot/enroll/pkg/binder"
	"github.com/dmitrymomot/enroll/pkg/form"
	"github.com/dmitrymomot/enroll/pkg/format"
	"github.com/dmitrymomot/enroll/pkg/logger"
	"github.com/dmitrymomot/enroll/pkg/session"
	"github.com/dmitrymomot/enroll/pkg/toast"
)

// Toast messages shown by the account pages.
const (
	MsgSignupSuccess = "회원가입이 완료되었습니다!"
	MsgSignupFailed  = "이미 가입된 이메일입니다. 다른 이메일을 사용해주세요."
	MsgLoginSuccess  = "로그인되었습니다!"
	MsgLoginFailed   = "로그인에 실패했습니다. 다시 시도해주세요."
	MsgLogout        = "로그아웃되었습니다."
)

// Form ids used by the views and as session keys for form snapshots.
const (
	SignupFormID = "signup-form"
	LoginFormID  = "login-form"

	signupStateKey = "form." + SignupFormID
	loginStateKey  = "form." + LoginFormID
)

const (
	EventChange = "change"
	EventBlur   = "blur"
)

type SignupFormParams struct {
	State     form.State[SignupField]
	CanSubmit bool
}

type SignupPageParams struct {
	Form   SignupFormParams
	Toasts []toast.Toast
}

type LoginFormParams struct {
	State     form.State[LoginField]
	CanSubmit bool
}

type LoginPageParams struct {
	Form   LoginFormParams
	Toasts []toast.Toast
}

// Views renders the account pages. Every function must be set.
type Views struct {
	SignupPage func(SignupPageParams) templ.Component
	SignupForm func(SignupFormParams) templ.Component
	LoginPage  func(LoginPageParams) templ.Component
	// LoginModal is the login form patched over the signup page.
	LoginModal func(LoginFormParams) templ.Component
	LoginForm  func(LoginFormParams) templ.Component

	FieldError   func(formID, field, message string) templ.Component
	SubmitButton func(formID string, enabled bool) templ.Component
	Toasts       func([]toast.Toast) templ.Component
}

// Service serves signup, login and logout.
type Service struct {
	api          *API
	sessions     *session.Manager
	views        Views
	errorHandler handler.ErrorHandler[handler.Context]
	log          *slog.Logger
	onLogout     []func(*session.Session)
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithLogoutHook runs fn on the session of a user who logs out, so other
// modules can forget per-user data.
func WithLogoutHook(fn func(*session.Session)) Option {
	return func(s *Service) {
		if fn != nil {
			s.onLogout = append(s.onLogout, fn)
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
	s.log = s.log.With(logger.Component("auth"))
	return s
}

// Routes registers the account pages on r. The user middleware must
// already be installed.
func (s *Service) Routes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(user.RequireGuest("/"))

		r.Get("/signup", handler.Wrap(s.signupPage,
			handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
		))
		r.Post("/signup", handler.Wrap(s.signupSubmit,
			handler.WithBinders[handler.Context, signupRequest](binder.Form(), binder.Signals()),
			handler.WithErrorHandler[handler.Context, signupRequest](s.errorHandler),
		))
		r.Post("/signup/fields/{field}/{event}", handler.Wrap(s.signupField,
			handler.WithBinders[handler.Context, signupRequest](binder.Path(chi.URLParam), binder.Signals()),
			handler.WithErrorHandler[handler.Context, signupRequest](s.errorHandler),
		))

		r.Get("/login", handler.Wrap(s.loginPage,
			handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
		))
		r.Post("/login", handler.Wrap(s.loginSubmit,
			handler.WithBinders[handler.Context, loginRequest](binder.Form(), binder.Signals()),
			handler.WithErrorHandler[handler.Context, loginRequest](s.errorHandler),
		))
		r.Post("/login/fields/{field}/{event}", handler.Wrap(s.loginField,
			handler.WithBinders[handler.Context, loginRequest](binder.Path(chi.URLParam), binder.Signals()),
			handler.WithErrorHandler[handler.Context, loginRequest](s.errorHandler),
		))
	})

	r.With(user.RequireAuth("/signup")).Post("/logout", handler.Wrap(s.logout,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
}

// signupRequest carries the signup values either as a posted form or as
// datastar signals. Field and Event are set on field endpoints only.
type signupRequest struct {
	Field    string `path:"field" form:"-" json:"-"`
	Event    string `path:"event" form:"-" json:"-"`
	Email    string `path:"-" form:"email" json:"email"`
	Password string `path:"-" form:"password" json:"password"`
	Name     string `path:"-" form:"name" json:"name"`
	Phone    string `path:"-" form:"phone" json:"phone"`
	Role     string `path:"-" form:"role" json:"role"`
}

func (r signupRequest) value(f SignupField) string {
	switch f {
	case SignupEmail:
		return r.Email
	case SignupPassword:
		return r.Password
	case SignupName:
		return r.Name
	case SignupPhone:
		return format.Phone(r.Phone)
	case SignupRole:
		return r.Role
	}
	return ""
}

type loginRequest struct {
	Field    string `path:"field" form:"-" json:"-"`
	Event    string `path:"event" form:"-" json:"-"`
	Email    string `path:"-" form:"email" json:"email"`
	Password string `path:"-" form:"password" json:"password"`
}

func (r loginRequest) value(f LoginField) string {
	switch f {
	case LoginEmail:
		return r.Email
	case LoginPassword:
		return r.Password
	}
	return ""
}

// applySignupInput feeds one posted value into f. Role is a fixed choice
// and bypasses the change handler; unknown roles are ignored.
func applySignupInput(f *form.Form[SignupField], field SignupField, value string) {
	if field == SignupRole {
		if role, err := user.ParseRole(value); err == nil {
			f.SetFieldValue(SignupRole, string(role))
		}
		return
	}
	f.HandleChange(field)(form.Value(value))
}

func (s *Service) signupPage(ctx handler.Context, _ struct{}) handler.Response {
	f := NewSignupForm(nil, handler.RestoreForm[SignupField](ctx, signupStateKey))
	toasts := handler.PopToasts(ctx)
	if err := s.sessions.Save(ctx, ctx.Session()); err != nil {
		return handler.Error(err)
	}

	st := f.State()
	return handler.Templ(s.views.SignupPage(SignupPageParams{
		Form:   SignupFormParams{State: st, CanSubmit: CanSubmitSignup(st)},
		Toasts: toasts,
	}))
}

func (s *Service) signupField(ctx handler.Context, req signupRequest) handler.Response {
	field := SignupField(req.Field)
	if !slices.Contains(SignupFields, field) || (req.Event != EventChange && req.Event != EventBlur) {
		s.log.DebugContext(ctx.Request().Context(), "unknown field event", logger.Field(req.Field), logger.Event(req.Event))
		return handler.Error(handler.ErrNotFound)
	}

	f := NewSignupForm(nil, handler.RestoreForm[SignupField](ctx, signupStateKey))
	if field != SignupPassword {
		f.SetFieldValue(SignupPassword, req.Password)
	}
	before := f.State()

	value := req.value(field)
	applySignupInput(f, field, value)
	if req.Event == EventBlur {
		f.HandleBlur(field)()
	}
	if err := keepForm(ctx, s.sessions, signupStateKey, f, SignupPassword); err != nil {
		return handler.Error(err)
	}

	st := f.State()
	reformatted := field == SignupPhone && value != req.Phone
	if !reformatted && st.VisibleError(field) == before.VisibleError(field) && CanSubmitSignup(st) == CanSubmitSignup(before) {
		return handler.Empty()
	}
	return handler.SSE(func(stream *handler.Stream) error {
		if err := stream.Patch(s.views.FieldError(SignupFormID, string(field), st.VisibleError(field))); err != nil {
			return err
		}
		if err := stream.Patch(s.views.SubmitButton(SignupFormID, CanSubmitSignup(st))); err != nil {
			return err
		}
		if reformatted {
			return stream.Signal(string(SignupPhone), value)
		}
		return nil
	})
}

func (s *Service) signupSubmit(ctx handler.Context, req signupRequest) handler.Response {
	var (
		login   *LoginResponse
		failMsg string
	)
	f := NewSignupForm(func(c context.Context, v form.Values[SignupField]) error {
		payload := SignupRequestFrom(v)
		if _, err := s.api.Signup(c, payload); err != nil {
			failMsg = MsgSignupFailed
			return err
		}
		resp, err := s.api.Login(c, LoginRequest{Email: payload.Email, Password: payload.Password})
		if err != nil {
			failMsg = apiclient.MessageOr(err, MsgLoginFailed)
			return err
		}
		login = resp
		return nil
	}, handler.RestoreForm[SignupField](ctx, signupStateKey))

	for _, field := range SignupFields {
		applySignupInput(f, field, req.value(field))
	}
	submitErr := f.HandleSubmit(ctx, nil)

	if login != nil {
		handler.DropForm(ctx, signupStateKey)
		if err := s.signIn(ctx, login, MsgSignupSuccess); err != nil {
			return handler.Error(err)
		}
		return handler.Redirect("/")
	}

	if submitErr != nil {
		s.log.WarnContext(ctx, "signup failed", logger.Error(submitErr), logger.Event("signup"))
		if err := toast.PushError(ctx.Session(), failMsg); err != nil {
			return handler.Error(err)
		}
	}
	if err := handler.KeepForm(ctx, signupStateKey, f, SignupPassword); err != nil {
		return handler.Error(err)
	}

	st := f.State()
	params := SignupFormParams{State: st, CanSubmit: CanSubmitSignup(st)}
	return s.formResponse(ctx, s.views.SignupForm(params), func(toasts []toast.Toast) templ.Component {
		return s.views.SignupPage(SignupPageParams{Form: params, Toasts: toasts})
	})
}

func (s *Service) loginPage(ctx handler.Context, _ struct{}) handler.Response {
	f := NewLoginForm(nil, handler.RestoreForm[LoginField](ctx, loginStateKey))
	st := f.State()
	params := LoginFormParams{State: st, CanSubmit: CanSubmitLogin(st)}

	if handler.IsDataStar(ctx.Request()) {
		return handler.Templ(s.views.LoginModal(params))
	}

	toasts := handler.PopToasts(ctx)
	if err := s.sessions.Save(ctx, ctx.Session()); err != nil {
		return handler.Error(err)
	}
	return handler.Templ(s.views.LoginPage(LoginPageParams{Form: params, Toasts: toasts}))
}

func (s *Service) loginField(ctx handler.Context, req loginRequest) handler.Response {
	field := LoginField(req.Field)
	if !slices.Contains(LoginFields, field) || (req.Event != EventChange && req.Event != EventBlur) {
		s.log.DebugContext(ctx.Request().Context(), "unknown field event", logger.Field(req.Field), logger.Event(req.Event))
		return handler.Error(handler.ErrNotFound)
	}

	f := NewLoginForm(nil, handler.RestoreForm[LoginField](ctx, loginStateKey))
	if field != LoginPassword {
		f.SetFieldValue(LoginPassword, req.Password)
	}
	before := f.State()

	f.HandleChange(field)(form.Value(req.value(field)))
	if req.Event == EventBlur {
		f.HandleBlur(field)()
	}
	if err := keepForm(ctx, s.sessions, loginStateKey, f, LoginPassword); err != nil {
		return handler.Error(err)
	}

	st := f.State()
	if CanSubmitLogin(st) == CanSubmitLogin(before) {
		return handler.Empty()
	}
	return handler.Templ(s.views.SubmitButton(LoginFormID, CanSubmitLogin(st)))
}

func (s *Service) loginSubmit(ctx handler.Context, req loginRequest) handler.Response {
	var login *LoginResponse
	f := NewLoginForm(func(c context.Context, v form.Values[LoginField]) error {
		resp, err := s.api.Login(c, LoginRequestFrom(v))
		if err != nil {
			return err
		}
		login = resp
		return nil
	}, handler.RestoreForm[LoginField](ctx, loginStateKey))

	for _, field := range LoginFields {
		f.HandleChange(field)(form.Value(req.value(field)))
	}
	submitErr := f.HandleSubmit(ctx, nil)

	if submitErr == nil && login != nil {
		handler.DropForm(ctx, loginStateKey)
		if err := s.signIn(ctx, login, MsgLoginSuccess); err != nil {
			return handler.Error(err)
		}
		return handler.Redirect("/")
	}

	if submitErr != nil {
		s.log.WarnContext(ctx, "login failed", logger.Error(submitErr), logger.Event("login"))
		if err := toast.PushError(ctx.Session(), apiclient.MessageOr(submitErr, MsgLoginFailed)); err != nil {
			return handler.Error(err)
		}
	}
	if err := handler.KeepForm(ctx, loginStateKey, f, LoginPassword); err != nil {
		return handler.Error(err)
	}

	st := f.State()
	params := LoginFormParams{State: st, CanSubmit: CanSubmitLogin(st)}
	return s.formResponse(ctx, s.views.LoginForm(params), func(toasts []toast.Toast) templ.Component {
		return s.views.LoginPage(LoginPageParams{Form: params, Toasts: toasts})
	})
}

func (s *Service) logout(ctx handler.Context, _ struct{}) handler.Response {
	sess := ctx.Session()
	user.Forget(sess)
	for _, fn := range s.onLogout {
		fn(sess)
	}
	if err := toast.PushInfo(sess, MsgLogout); err != nil {
		return handler.Error(err)
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return handler.Error(err)
	}
	s.log.InfoContext(ctx, "user logged out", logger.Event("logout"))
	return handler.Redirect("/signup")
}

// signIn rotates the session token, keeps the user and token in the
// session and queues the success toast for the next page.
func (s *Service) signIn(ctx handler.Context, login *LoginResponse, message string) error {
	if err := s.sessions.Save(ctx, ctx.Session()); err != nil {
		return err
	}
	sess, err := s.sessions.Authenticate(ctx, ctx.ResponseWriter(), ctx.Request(), login.User.ID)
	if err != nil {
		return err
	}
	if err := user.Store(sess, &login.User, login.AccessToken); err != nil {
		return err
	}
	if err := toast.PushSuccess(sess, message); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "user signed in", logger.UserID(&login.User.ID), logger.Role(string(login.User.Role)))
	return s.sessions.Save(ctx, sess)
}

// keepForm stores the snapshot of f without the secret values and saves
// the session.
func keepForm[K ~string](ctx handler.Context, sessions *session.Manager, key string, f *form.Form[K], secret ...K) error {
	if err := handler.KeepForm(ctx, key, f, secret...); err != nil {
		return err
	}
	return sessions.Save(ctx, ctx.Session())
}

// formResponse re-renders a rejected form with the pending toasts: a page
// for regular requests, the form and toast patches for datastar.
func (s *Service) formResponse(ctx handler.Context, formView templ.Component, page func([]toast.Toast) templ.Component) handler.Response {
	toasts := handler.PopToasts(ctx)
	if err := s.sessions.Save(ctx, ctx.Session()); err != nil {
		return handler.Error(err)
	}
	if handler.IsDataStar(ctx.Request()) {
		return handler.TemplMulti(
			handler.Patch(formView),
			handler.ToastsPatch(s.views.Toasts(toasts)),
		)
	}
	return handler.TemplStatus(http.StatusUnprocessableEntity, page(toasts))
}
