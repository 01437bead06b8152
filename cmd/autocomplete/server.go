package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/bluesky-social/autocomplete/vocab"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	slogecho "github.com/samber/slog-echo"
	"golang.org/x/time/rate"
)

type Server struct {
	store  *vocab.Store
	echo   *echo.Echo
	httpd  *http.Server
	logger *slog.Logger
}

type Config struct {
	Logger *slog.Logger
	Bind   string
	// Requests per second, per client IP. Zero disables rate limiting.
	RateLimit float64
	// Where per-request HTTP metrics are registered. Defaults to [prometheus.DefaultRegisterer].
	MetricsRegisterer prometheus.Registerer
}

func NewServer(store *vocab.Store, config Config) (*Server, error) {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	e := echo.New()

	// httpd
	var (
		httpTimeout        = 1 * time.Minute
		httpMaxHeaderBytes = 1 * (1024 * 1024)
	)

	srv := &Server{
		store:  store,
		echo:   e,
		logger: logger,
	}
	srv.httpd = &http.Server{
		Handler:        srv,
		Addr:           config.Bind,
		WriteTimeout:   httpTimeout,
		ReadTimeout:    httpTimeout,
		MaxHeaderBytes: httpMaxHeaderBytes,
	}

	reqMetrics, err := echoprometheus.MiddlewareConfig{
		Subsystem:  "autocomplete",
		Registerer: config.MetricsRegisterer,
	}.ToMiddleware()
	if err != nil {
		return nil, fmt.Errorf("registering request metrics: %w", err)
	}

	e.HideBanner = true
	e.Use(slogecho.New(logger))
	e.Use(reqMetrics)
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("4M"))
	if config.RateLimit > 0 {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(config.RateLimit))))
	}
	e.HTTPErrorHandler = srv.errorHandler
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
		HSTSMaxAge:         31536000, // 365 days
	}))

	e.GET("/_health", srv.HandleHealthCheck)
	e.GET("/words", srv.HandleSearch)
	e.POST("/words", srv.HandleAddWords)
	e.DELETE("/words", srv.HandleClear)
	e.GET("/words/:word", srv.HandleContains)
	e.DELETE("/words/:word", srv.HandleRemove)
	e.GET("/complete", srv.HandleComplete)
	e.GET("/display", srv.HandleDisplay)
	e.GET("/stats", srv.HandleStats)

	return srv, nil
}

func (srv *Server) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	srv.echo.ServeHTTP(rw, req)
}

// Serves the API until ctx is done, then shuts down gracefully.
func (srv *Server) RunAPI(ctx context.Context) error {
	srv.logger.Info("starting server", "bind", srv.httpd.Addr)
	errc := make(chan error, 1)
	go func() {
		if err := srv.httpd.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			srv.logger.Error("HTTP server shutting down unexpectedly", "err", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	if err := srv.Shutdown(); err != nil {
		srv.logger.Error("HTTP server shutdown error", "err", err)
		return err
	}
	srv.logger.Info("graceful shutdown complete")
	return nil
}

func (srv *Server) Shutdown() error {
	srv.logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.httpd.Shutdown(ctx)
}
