// Package redisconn establishes Redis connections from environment
// configuration, with retries at startup and a readiness healthcheck.
//
//	var cfg redisconn.Config
//	config.MustLoad(&cfg)
//
//	client, err := redisconn.Connect(ctx, cfg)
//	if err != nil {
//		// Redis never became reachable
//	}
//
//	r.Get("/healthz", httpserver.HealthCheckHandler(ctx, log, redisconn.Healthcheck(client)))
package redisconn
