package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFanoutHandlerCollapses(t *testing.T) {
	_, ok := newFanoutHandler(nil, nil).(NoopHandler)
	assert.True(t, ok, "all-nil handlers should collapse to NoopHandler")

	var buf bytes.Buffer
	inner := slog.NewJSONHandler(&buf, nil)
	assert.Same(t, inner, newFanoutHandler(nil, inner, nil))
}

func TestFanoutHandlerRespectsPerHandlerLevel(t *testing.T) {
	var infoBuf, debugBuf bytes.Buffer
	h := newFanoutHandler(
		slog.NewTextHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	require.True(t, h.Enabled(context.Background(), slog.LevelDebug))

	logger := slog.New(h)
	logger.Debug("scan detail")
	logger.Info("playlist written")

	assert.NotContains(t, infoBuf.String(), "scan detail")
	assert.Contains(t, infoBuf.String(), "playlist written")
	assert.Contains(t, debugBuf.String(), "scan detail")
	assert.Contains(t, debugBuf.String(), "playlist written")
}

func TestFanoutHandlerPropagatesAttrsAndGroups(t *testing.T) {
	var a, b bytes.Buffer
	h := newFanoutHandler(slog.NewTextHandler(&a, nil), slog.NewTextHandler(&b, nil))

	slog.New(h).With("run_id", "r1").WithGroup("track").Info("added", "title", "Song")

	for _, out := range []string{a.String(), b.String()} {
		assert.Contains(t, out, "run_id=r1")
		assert.Contains(t, out, "track.title=Song")
	}
}
