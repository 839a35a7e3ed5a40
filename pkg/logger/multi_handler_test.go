package logger

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureHandler struct {
	mu      sync.Mutex
	level   slog.Level
	err     error
	records []slog.Record
}

func (h *captureHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r.Clone())
	return h.err
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *captureHandler) WithGroup(string) slog.Handler      { return h }

func (h *captureHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.records)
}

func TestMultiHandler_FanOut(t *testing.T) {
	t.Parallel()

	a := &captureHandler{level: slog.LevelDebug}
	b := &captureHandler{level: slog.LevelDebug}
	log := slog.New(newMultiHandler(a, b))

	log.Info("hello")

	assert.Equal(t, 1, a.count())
	assert.Equal(t, 1, b.count())
}

func TestMultiHandler_RespectsPerHandlerLevel(t *testing.T) {
	t.Parallel()

	verbose := &captureHandler{level: slog.LevelDebug}
	quiet := &captureHandler{level: slog.LevelError}
	log := slog.New(newMultiHandler(verbose, quiet))

	log.Info("routine")

	assert.Equal(t, 1, verbose.count())
	assert.Equal(t, 0, quiet.count(), "handler below its level is skipped")
}

func TestMultiHandler_DeliversDespiteErrors(t *testing.T) {
	t.Parallel()

	failing := &captureHandler{level: slog.LevelDebug, err: errors.New("sink down")}
	healthy := &captureHandler{level: slog.LevelDebug}
	h := newMultiHandler(failing, healthy)

	rec := slog.NewRecord(time.Now(), slog.LevelInfo, "msg", 0)
	err := h.Handle(context.Background(), rec)

	require.Error(t, err)
	assert.Equal(t, 1, healthy.count(), "one failing destination never silences the others")
}
