// Package auth implements account signup, login and logout.
//
// It holds the signup and login form definitions built on pkg/form, the
// REST calls for the account endpoints and the web service that serves the
// pages. Form snapshots live in the session between requests, so each field
// event posted by the browser resumes the same form state:
//
//	api := auth.NewAPI(client)
//	svc := auth.NewService(api, sessions, views, errorHandler,
//		auth.WithLogoutHook(course.ForgetEnrolled),
//	)
//	svc.Routes(r)
//
// The terminal client reuses NewSignupForm and NewLoginForm with its own
// prompts.
package auth
