package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cli "github.com/urfave/cli/v2"
)

func TestConfigLoggerLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	tests := []struct {
		args         []string
		defaultLevel slog.Level
		expected     slog.Level
	}{
		{args: nil, defaultLevel: slog.LevelInfo, expected: slog.LevelInfo},
		{args: nil, defaultLevel: slog.LevelWarn, expected: slog.LevelWarn},
		{args: []string{"--log-level", "debug"}, defaultLevel: slog.LevelWarn, expected: slog.LevelDebug},
		{args: []string{"--log-level", "ERROR"}, defaultLevel: slog.LevelInfo, expected: slog.LevelError},
		{args: []string{"--log-level", "loud"}, defaultLevel: slog.LevelWarn, expected: slog.LevelWarn},
	}

	for _, tc := range tests {
		var logger *slog.Logger
		app := cli.App{
			Flags: []cli.Flag{&cli.StringFlag{Name: "log-level"}},
			Action: func(cctx *cli.Context) error {
				logger = configLogger(cctx, io.Discard, tc.defaultLevel)
				return nil
			},
		}
		require.NoError(t, app.Run(append([]string{"autocomplete"}, tc.args...)))
		require.NotNil(t, logger)

		ctx := context.Background()
		assert.True(t, logger.Enabled(ctx, tc.expected), "args %v", tc.args)
		assert.False(t, logger.Enabled(ctx, tc.expected-1), "args %v", tc.args)
	}
}
