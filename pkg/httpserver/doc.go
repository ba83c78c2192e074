// Package httpserver runs the toast demo's HTTP server with graceful
// shutdown.
//
// Long-lived SSE streams never go idle, so http.Server.Shutdown would wait
// for them until the shutdown timeout. Register a drain hook that ends them
// instead:
//
//	srv := httpserver.New(
//		httpserver.WithAddr(":8080"),
//		httpserver.WithLogger(log),
//		httpserver.WithDrainHook(func() { _ = provider.Close() }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Run returns when ctx is done, when SIGINT or SIGTERM arrives, or when
// Shutdown is called from another goroutine.
//
// Health probes are served by HealthHandler: with no checks it answers
// "ALIVE"; with checks it answers "READY" or 503 "NOT_READY".
package httpserver
