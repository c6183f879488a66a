package logger

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	mu   sync.Mutex
	msgs []string
}

func (r *recordingSender) SendMessage(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func TestTelegramHandler_ForwardsFromLevel(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	sender := &recordingSender{}
	log := SetupTelegramHandler(base, sender, slog.LevelError).With(slog.String("module", "core"))

	log.Info("booking created")
	log.Error("save booking", slog.String("error", "timeout"))

	require.Len(t, sender.msgs, 1)
	assert.Contains(t, sender.msgs[0], "ERROR: save booking")
	assert.Contains(t, sender.msgs[0], "module: core")
	assert.Contains(t, sender.msgs[0], "error: timeout")

	assert.Contains(t, buf.String(), "booking created")
	assert.Contains(t, buf.String(), "save booking")
}

func TestSetupTelegramHandler_NilSender(t *testing.T) {
	base := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, base, SetupTelegramHandler(base, nil, slog.LevelError))
}

func TestSetupLogger_Levels(t *testing.T) {
	assert.True(t, SetupLogger("local", "").Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, SetupLogger("dev", "").Enabled(context.Background(), slog.LevelDebug))
	assert.False(t, SetupLogger("prod", "").Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, SetupLogger("prod", t.TempDir()).Enabled(context.Background(), slog.LevelInfo))
}
