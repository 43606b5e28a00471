// Package httpserver runs an http.Handler with graceful shutdown.
//
//	srv := httpserver.NewFromConfig(cfg,
//		httpserver.WithLogger(log),
//		httpserver.WithOnShutdown(func(context.Context) error { return rdb.Close() }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run returns after the context is cancelled or SIGINT/SIGTERM arrives.
// HealthCheckHandler serves liveness and readiness checks.
package httpserver
