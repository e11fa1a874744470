// Package httpserver runs the web client's HTTP server and stops it
// gracefully when the run context is cancelled.
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// The default write timeout is zero because datastar responses are
// long-lived SSE streams. HealthCheckHandler serves liveness and readiness
// probes.
package httpserver
