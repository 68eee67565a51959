package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/word-teacher/internal/config"
	"github.com/heartmarshall/word-teacher/internal/metrics"
	"github.com/heartmarshall/word-teacher/internal/service/teacher"
	"github.com/heartmarshall/word-teacher/internal/transport/rest"
)

// App is the HTTP server for the word teaching service.
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	handler http.Handler
	server  *http.Server
}

// New wires every component from cfg.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	m := metrics.New()

	svc, err := NewTeacherService(cfg, logger, teacher.WithRecorder(m))
	if err != nil {
		return nil, fmt.Errorf("build teaching pipeline: %w", err)
	}

	handler := newRouter(
		cfg,
		rest.NewTeachHandler(svc, cfg.Server.MaxBodyBytes, logger),
		rest.NewHealthHandler(Version),
		m,
		logger,
	)

	return &App{
		cfg:     cfg,
		log:     logger,
		handler: handler,
		server: &http.Server{
			Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
			Handler:      handler,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
			ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
	}, nil
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler { return a.handler }

// Serve accepts connections on ln until ctx is canceled, then shuts the
// server down gracefully within the configured shutdown timeout.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info("http server listening", slog.String("addr", ln.Addr().String()))
		if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("shutting down http server", slog.Duration("timeout", a.cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// ListenAndServe listens on the configured address and calls Serve.
func (a *App) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", a.server.Addr, err)
	}
	return a.Serve(ctx, ln)
}

// Run loads the configuration, builds the App and serves until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	a, err := New(cfg, logger)
	if err != nil {
		return err
	}

	return a.ListenAndServe(ctx)
}
