package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/assetstamp/stamp/internal/adapters/logger"
	"github.com/stretchr/testify/assert"
)

func newTestHandler(t *testing.T) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return slog.New(logger.NewPrettyHandler(buf, nil)), buf
}

func TestPrettyHandler_Attrs(t *testing.T) {
	lg, buf := newTestHandler(t)

	lg.Info("resolved", "unit", "web", "tag", "00000000deadbeef")
	assert.Equal(t, "resolved unit=web tag=00000000deadbeef\n", buf.String())
}

func TestPrettyHandler_WithAttrs(t *testing.T) {
	lg, buf := newTestHandler(t)

	lg.With("unit", "web").Warn("input missing")
	assert.Equal(t, "! input missing unit=web\n", buf.String())
}

func TestPrettyHandler_WithGroup(t *testing.T) {
	lg, buf := newTestHandler(t)

	lg.WithGroup("manifest").Info("written", "path", ".stamp/manifest.json")
	assert.Equal(t, "written manifest.path=.stamp/manifest.json\n", buf.String())
}

func TestPrettyHandler_LevelFiltering(t *testing.T) {
	lg, buf := newTestHandler(t)

	lg.Debug("too detailed")
	assert.Empty(t, buf.String())
}
