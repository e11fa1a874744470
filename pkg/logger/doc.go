// Package logger builds *slog.Logger instances for the web client and the
// terminal client.
//
// New takes functional options. WithEnvironment maps APP_ENV to a preset:
// text at debug level in development, JSON at info level in staging and
// production. Context extractors registered with WithContextExtractors run
// on every record, which is how the request id reaches handler and API
// client logs:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.AppEnv, cfg.ServiceName),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "enrolled",
//		logger.UserID(sess.UserID),
//		logger.CourseID(id),
//		logger.Duration(time.Since(start)),
//	)
//
// The attribute helpers keep key names consistent. Error, UserID, Role and
// RequestID return an empty Attr for zero input, so they can be passed
// unconditionally.
package logger
