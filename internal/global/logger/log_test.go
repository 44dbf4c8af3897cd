package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"volunteer-board/config"

	"github.com/stretchr/testify/assert"
)

func TestNewHandler_RedactsPasswords(t *testing.T) {
	cfg := config.Default()
	var buf bytes.Buffer
	l := slog.New(newHandler(&cfg, &buf))

	l.Info("编辑被拒绝", "record_id", 7, "password", "hunter2", "admin_secret", "s3cret")

	out := buf.String()
	assert.Contains(t, out, "record_id=7")
	assert.NotContains(t, out, "hunter2")
	assert.NotContains(t, out, "s3cret")
}

func TestNewHandler_Level(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "warn"
	var buf bytes.Buffer
	l := slog.New(newHandler(&cfg, &buf))

	l.Info("skip")
	l.Warn("keep")
	assert.NotContains(t, buf.String(), "skip")
	assert.Contains(t, buf.String(), "keep")
}

func TestGetLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, getLogLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, getLogLevel("bogus"))
}
