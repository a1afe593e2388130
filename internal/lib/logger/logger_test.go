package logger

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu   sync.Mutex
	msgs []string
}

func (r *recorder) SendMessage(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func TestTelegramHandlerForwardsOnlyAboveLevel(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	rec := &recorder{}

	log := SetupTelegramHandler(base, rec, slog.LevelError)
	log = log.With(slog.String("mod", "test"))

	log.Info("just info")
	log.Error("went wrong", slog.String("error", "boom"))

	require.Len(t, rec.msgs, 1)
	assert.Contains(t, rec.msgs[0], "ERROR: went wrong")
	assert.Contains(t, rec.msgs[0], "mod: test")
	assert.Contains(t, rec.msgs[0], "error: boom")

	assert.Contains(t, buf.String(), "just info")
	assert.Contains(t, buf.String(), "went wrong")
}

func TestSetupTelegramHandlerWithoutSender(t *testing.T) {
	base := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, base, SetupTelegramHandler(base, nil, slog.LevelError))
}
