// Package user holds the signed-in user of the web client: its type, where
// it lives in the session, how it reaches the request context and the
// guards that keep pages to the right audience.
//
//	r.Use(sessions.Middleware, user.Middleware)
//	r.With(user.RequireGuest("/")).Get("/signup", ...)
//	r.With(user.RequireRole("/", user.RoleInstructor)).Get("/courses/new", ...)
package user
