// Package handler turns typed functions into http.HandlerFuncs for the web
// client.
//
// A HandlerFunc receives a Context and a request struct filled by binders,
// and returns a Response:
//
//	type loginRequest struct {
//		Email    string `form:"email" json:"email"`
//		Password string `form:"password" json:"password"`
//	}
//
//	r.Post("/login", handler.Wrap(login,
//		handler.WithBinders[handler.Context, loginRequest](binder.Form(), binder.Signals()),
//		handler.WithErrorHandler[handler.Context, loginRequest](errorHandler),
//	))
//
// Binders that do not apply to a request, such as the form binder on a
// datastar JSON post, return binder.ErrBinderNotApplicable and are skipped.
//
// # Responses
//
// Every response adapts to the request. Regular requests get full HTML
// pages and 303 redirects; datastar requests get server-sent events with
// element patches, signal patches or a client-side redirect.
//
//   - Templ, TemplStatus, TemplPartial and TemplMulti render templ components.
//   - Redirect and RedirectBack navigate.
//   - SSE writes arbitrary patches to one stream.
//   - Empty acknowledges without changing the page.
//
// # Errors
//
// NewErrorHandler classifies HTTPError, ValidationError, the validator's
// aggregate and errors returned by the REST API client, logs them with the
// request id and renders either an error page or an error toast.
package handler
