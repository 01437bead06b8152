package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "go.uber.org/automaxprocs"

	"github.com/bluesky-social/autocomplete/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	cli "github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

var cmdServe = &cli.Command{
	Name:  "serve",
	Usage: "run the vocabulary HTTP API daemon",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "bind",
			Usage:   "Specify the local IP/port to bind to",
			Value:   ":7070",
			EnvVars: []string{"AUTOCOMPLETE_BIND"},
		},
		&cli.StringFlag{
			Name:    "metrics-listen",
			Usage:   "IP or address, and port, to listen on for metrics APIs",
			Value:   ":7071",
			EnvVars: []string{"AUTOCOMPLETE_METRICS_LISTEN"},
		},
		&cli.Float64Flag{
			Name:    "api-rate-limit",
			Usage:   "max API requests per second, per client IP (0 to disable)",
			Value:   50,
			EnvVars: []string{"AUTOCOMPLETE_API_RATE_LIMIT"},
		},
	},
	Action: func(cctx *cli.Context) error {
		logger := configLogger(cctx, os.Stdout, slog.LevelInfo)

		store, err := configStore(cctx, logger)
		if err != nil {
			return err
		}

		srv, err := NewServer(store, Config{
			Logger:    logger,
			Bind:      cctx.String("bind"),
			RateLimit: cctx.Float64("api-rate-limit"),

			MetricsRegisterer: prometheus.DefaultRegisterer,
		})
		if err != nil {
			return fmt.Errorf("failed to construct server: %v", err)
		}

		ctx, cancel := context.WithCancel(cctx.Context)
		defer cancel()

		// the first listener to fail takes the others down with it
		eg, ctx := errgroup.WithContext(ctx)

		// prometheus HTTP endpoint: /metrics
		eg.Go(func() error {
			if err := metrics.RunServer(ctx, cancel, "autocomplete", cctx.String("metrics-listen")); err != nil {
				return fmt.Errorf("metrics endpoint: %w", err)
			}
			return nil
		})

		// Trap SIGINT to trigger a shutdown.
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(signals)
		eg.Go(func() error {
			select {
			case sig := <-signals:
				slog.Info("received OS exit signal", "signal", sig)
			case <-ctx.Done():
			}
			cancel()
			return nil
		})

		eg.Go(func() error {
			return srv.RunAPI(ctx)
		})

		return eg.Wait()
	},
}
