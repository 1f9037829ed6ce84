package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/waveshop/internal/httpapi"
	"github.com/dmitrymomot/waveshop/internal/session"
	"github.com/dmitrymomot/waveshop/internal/shop"
	"github.com/dmitrymomot/waveshop/pkg/config"
	"github.com/dmitrymomot/waveshop/pkg/httpserver"
	"github.com/dmitrymomot/waveshop/pkg/logger"
	"github.com/dmitrymomot/waveshop/pkg/redisconn"
)

type appConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

func main() {
	ctx := context.Background()

	var (
		appCfg   appConfig
		httpCfg  httpserver.Config
		redisCfg redisconn.Config
		sessCfg  session.Config
		shopCfg  shop.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&httpCfg)
	config.MustLoad(&redisCfg)
	config.MustLoad(&sessCfg)
	config.MustLoad(&shopCfg)

	log := logger.New(logger.WithEnvironment(appCfg.Env, "waveshop"))
	logger.SetAsDefault(log)

	redisClient, err := redisconn.Connect(ctx, redisCfg)
	if err != nil {
		log.Error("failed to connect to redis", logger.Error(err))
		os.Exit(1)
	}
	defer redisClient.Close()

	sessions := session.NewManager(
		session.NewRedisStore(redisClient),
		sessCfg,
		session.WithLogger(log.With("component", "session")),
	)
	shopSvc := shop.NewService(sessions, shopCfg, log.With("component", "shop"))

	router := httpapi.NewRouter(httpapi.Deps{
		Sessions:     sessions,
		Shop:         shopSvc,
		Log:          log.With("component", "httpapi"),
		Healthchecks: []func(context.Context) error{redisconn.Healthcheck(redisClient)},
	})

	srv := httpserver.NewFromConfig(httpCfg,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("server started", slog.String("addr", httpCfg.Addr))
		}),
		httpserver.WithStopHook(func(l *slog.Logger) {
			l.Info("server stopped")
		}),
	)

	if err := srv.Run(ctx, router); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}
