package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/word-teacher/internal/config"
	"github.com/heartmarshall/word-teacher/internal/metrics"
	"github.com/heartmarshall/word-teacher/internal/transport/middleware"
	"github.com/heartmarshall/word-teacher/internal/transport/rest"
)

const (
	routeTeach      = "/api/word-teacher"
	routeHealth     = "/api/health"
	routeHealthRoot = "/health"
)

// newRouter builds the HTTP handler tree. Every request passes through the
// request id, logging, recovery and CORS middleware in that order.
func newRouter(
	cfg *config.Config,
	teach *rest.TeachHandler,
	health *rest.HealthHandler,
	m *metrics.Metrics,
	logger *slog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	route := func(pattern, label string, h http.HandlerFunc) {
		var instrument middleware.Middleware
		if cfg.Metrics.Enabled {
			instrument = middleware.Metrics(m, label)
		}
		mux.Handle(pattern, middleware.Chain(instrument)(h))
	}

	route("POST "+routeTeach, routeTeach, teach.Teach)
	route("GET "+routeHealth, routeHealth, health.Health)
	route("GET "+routeHealthRoot, routeHealthRoot, health.Health)

	if cfg.Metrics.Enabled {
		mux.Handle("GET "+cfg.Metrics.Path, m.Handler())
	}

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(mux)
}
