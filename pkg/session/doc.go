// Package session keeps server-side browser state for the web client.
//
// A Manager resolves the session token through a Transport (an HMAC-signed
// cookie by default) and loads the session from a Store. Two stores ship
// with the package: MemoryStore for single-instance deployments and tests,
// and RedisStore for anything that runs more than one replica.
//
// Anonymous sessions hold in-progress form state and pending toasts.
// Authenticate rotates the token and binds the user ID returned by the
// backend; Destroy removes the session on logout.
//
// # Usage
//
//	mgr, err := session.New(
//		session.WithSecret(cfg.Secret),
//		session.WithStore(session.NewRedisStore(rdb, "")),
//	)
//	if err != nil {
//		return err
//	}
//	defer mgr.Close()
//
//	r.Use(mgr.Middleware)
//
// Inside a handler:
//
//	sess, _ := session.FromContext(r.Context())
//	if err := sess.Put("signup.form", state); err != nil {
//		return err
//	}
//	return mgr.Save(r.Context(), sess)
//
// Values stored with Put are encoded as JSON, so every Store returns them in
// the same shape. Read them back with Decode.
package session
