// Package apiclient is the JSON transport to the enrollment REST API.
//
// A Client joins request paths to its base URL, encodes bodies as JSON and
// decodes responses into the given value. Authenticated requests pass
// WithAuth and get a bearer token from the client's TokenSource; by default
// the token is read from the request context, where the web client stores
// it with WithToken.
//
//	c, err := apiclient.New("http://localhost:8080/api")
//	var course Course
//	err = c.Get(ctx, "/courses/1", &course)
//	err = c.Post(apiclient.WithToken(ctx, token), "/courses/1/enroll", nil, nil, apiclient.WithAuth())
//
// Error responses come back as *APIError. Its message is the one the API
// sent in its {code, message, timestamp} payload or, if there was none,
// "HTTP <status>: <status text>".
package apiclient
