package httpapi

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/waveshop/internal/session"
	"github.com/dmitrymomot/waveshop/internal/shop"
	"github.com/dmitrymomot/waveshop/pkg/httpserver"
)

// Deps carries the wiring for the HTTP surface. Everything is
// constructed once at process start and shared; there is no global
// state in this package.
type Deps struct {
	Sessions *session.Manager
	Shop     *shop.Service
	Log      *slog.Logger

	// Healthchecks are readiness probes for /healthz, typically the
	// session store connection.
	Healthchecks []func(context.Context) error
}

// NewRouter builds the full HTTP surface of the storefront.
func NewRouter(deps Deps) http.Handler {
	if deps.Sessions == nil || deps.Shop == nil {
		panic("httpapi: sessions and shop are required")
	}
	log := deps.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	h := &handlers{
		sessions: deps.Sessions,
		shop:     deps.Shop,
		log:      log,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	r.Get("/", h.index)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(staticFS())))
	r.Get("/healthz", httpserver.HealthCheckHandler(context.Background(), log, deps.Healthchecks...))

	r.Route("/api", func(api chi.Router) {
		api.Get("/session", h.getSession)
		api.Get("/products", h.products)
		api.Post("/logout", h.logout)

		api.Group(func(protected chi.Router) {
			protected.Use(h.requireSession)
			protected.Post("/apply-bonus", h.applyBonus)
			protected.Post("/checkout", h.checkout)
		})
	})

	return r
}

// staticFS exposes the embedded static assets rooted at their URL path.
func staticFS() fs.FS {
	sub, err := fs.Sub(webFS, "web/static")
	if err != nil {
		panic(err)
	}
	return sub
}
