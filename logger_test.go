package crcfold

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerFallback(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	SetLogger(l)
	defer SetLogger(nil)

	_ = New(WithBackend(Backend(200)))
	assert.Contains(t, buf.String(), "crc32 backend unavailable")
	assert.Contains(t, buf.String(), "requested=unknown")
	assert.Contains(t, buf.String(), "backend=braid")
}

func TestLoggerSelection(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.LogSelection(BackendCLMUL, true)
	assert.Contains(t, buf.String(), `"backend":"clmul"`)
	assert.Contains(t, buf.String(), `"overridden":true`)
}

func TestSetLoggerReportsSelectionAfterUse(t *testing.T) {
	_ = CRC32(make([]byte, 4*ShortInputThreshold), InitialValue)

	var buf bytes.Buffer
	SetLogger(NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	assert.Contains(t, buf.String(), "crc32 backend selected")
	assert.Contains(t, buf.String(), "backend="+ActiveBackend().String())
}

func TestLoggerWithBackend(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, nil)).WithBackend(BackendHardware)
	l.Info("hello")
	assert.Contains(t, buf.String(), "backend=hardware")
}

func TestNoopLogger(t *testing.T) {
	SetLogger(nil)
	assert.NotNil(t, currentLogger())
	assert.False(t, NoopLogger().Enabled(context.Background(), slog.LevelError))
}
