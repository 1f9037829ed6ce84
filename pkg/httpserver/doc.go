// Package httpserver provides a lightweight wrapper around net/http that
// adds graceful shutdown, configurable server timeouts, health-check
// handlers, and structured logging via slog.
//
// The core type is Server:
//
//   - Graceful Shutdown – Run blocks until the context is cancelled or an
//     interrupt/TERM signal is received and then shuts the server down
//     using http.Server.Shutdown with a configurable deadline.
//
//   - Functional Options – Construction is done through New or
//     NewFromConfig together with Option helpers such as WithAddr,
//     WithReadTimeout and WithLogger.
//
//   - Hooks – WithStartHook and WithStopHook let callers execute
//     side-effects around the server life-cycle.
//
//   - Health Checks – HealthCheckHandler returns an http.HandlerFunc that
//     can be mounted as both liveness and readiness probes.
//
// # Usage
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.HealthCheckHandler(ctx, log, redisconn.Healthcheck(client)))
//
//	srv := httpserver.NewFromConfig(cfg,
//		httpserver.WithLogger(log),
//	)
//
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// # Errors
//
// Run wraps all listen errors with ErrStart, while Shutdown wraps
// underlying shutdown errors with ErrShutdown. Use errors.Is to
// distinguish them.
package httpserver
