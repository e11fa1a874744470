package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/enroll/handler"
	"github.com/dmitrymomot/enroll/modules/auth"
	"github.com/dmitrymomot/enroll/modules/course"
	"github.com/dmitrymomot/enroll/modules/user"
	"github.com/dmitrymomot/enroll/pkg/apiclient"
	"github.com/dmitrymomot/enroll/pkg/httpserver"
	"github.com/dmitrymomot/enroll/pkg/i18n"
	"github.com/dmitrymomot/enroll/pkg/requestid"
	"github.com/dmitrymomot/enroll/pkg/session"
	"github.com/dmitrymomot/enroll/web/views"
)

type routerDeps struct {
	log        *slog.Logger
	translator *i18n.Translator
	sessions   *session.Manager
	api        *apiclient.Client
	checks     []httpserver.Check
}

func newRouter(d routerDeps) http.Handler {
	v := views.New(d.translator)
	errorHandler := handler.NewErrorHandler(d.log, handler.ErrorHandlerConfig{
		ErrorPage:  v.ErrorPage,
		ErrorToast: v.ErrorToast,
		Translate: func(ctx context.Context, key string) string {
			return d.translator.Tc(ctx, key)
		},
	})

	authSvc := auth.NewService(auth.NewAPI(d.api), d.sessions, v.AuthViews(), errorHandler,
		auth.WithLogger(d.log),
		auth.WithLogoutHook(course.ForgetEnrolled),
	)
	courseSvc := course.NewService(course.NewAPI(d.api), d.sessions, v.CourseViews(), errorHandler,
		course.WithLogger(d.log),
	)

	r := chi.NewRouter()
	r.Use(middleware.RealIP, requestid.Middleware, middleware.Recoverer)

	r.Get("/health/live", httpserver.HealthCheckHandler(d.log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(d.log, d.checks...))

	r.Group(func(r chi.Router) {
		r.Use(i18n.Middleware(d.translator), d.sessions.Middleware, user.Middleware)

		authSvc.Routes(r)
		courseSvc.Routes(r)

		notFound := handler.Wrap(func(handler.Context, struct{}) handler.Response {
			return handler.Error(handler.ErrNotFound)
		}, handler.WithErrorHandler[handler.Context, struct{}](errorHandler))
		r.NotFound(notFound)
	})

	return r
}
