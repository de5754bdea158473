package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/rentaldeploy/config"
	"github.com/shashiranjanraj/rentaldeploy/pkg/logger"
	"github.com/shashiranjanraj/rentaldeploy/pkg/runid"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, logger.ParseLevel(in), in)
	}
}

func TestInitWriterProductionEmitsJSONWithRunID(t *testing.T) {
	prev := logger.L
	t.Cleanup(func() { logger.L = prev; slog.SetDefault(prev) })

	var buf bytes.Buffer
	closer, err := logger.InitWriter(&buf, config.App{Env: "production"}, config.Log{Level: "info"})
	require.NoError(t, err)
	defer closer()

	ctx := runid.WithValue(context.Background(), "run-42")
	logger.WithCtx(ctx).Info("seeded", "name", "Canon RF")
	logger.Debug("hidden")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "seeded", line["msg"])
	assert.Equal(t, "run-42", line["run_id"])
	assert.Equal(t, "Canon RF", line["name"])
}

func TestInitWriterLocalUsesText(t *testing.T) {
	prev := logger.L
	t.Cleanup(func() { logger.L = prev; slog.SetDefault(prev) })

	var buf bytes.Buffer
	_, err := logger.InitWriter(&buf, config.App{Env: "local"}, config.Log{Level: "debug"})
	require.NoError(t, err)

	logger.Debug("visible", "k", "v")
	assert.Contains(t, buf.String(), "msg=visible")
	assert.Contains(t, buf.String(), "k=v")
}

func TestMultiHandlerFansOut(t *testing.T) {
	var a, b bytes.Buffer
	h := logger.NewMultiHandler(
		slog.NewTextHandler(&a, nil),
		slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	log := slog.New(h).With("step", "seed")

	log.Info("info line")
	log.Error("error line")

	assert.Contains(t, a.String(), "info line")
	assert.Contains(t, a.String(), "error line")
	assert.NotContains(t, b.String(), "info line")
	assert.Contains(t, b.String(), "step=seed")
}
