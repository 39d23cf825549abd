package bootstrap

import (
	"context"
	"testing"
	"time"

	"go-hrm/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStdoutAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := NewStdoutAuditLogger(zap.New(core))
	l.now = func() time.Time { return time.Date(2026, 10, 14, 3, 0, 0, 0, time.UTC) }

	l.Log(context.Background(), AuditLog{Action: "SERVER_SHUTDOWN", Message: "bye", Meta: map[string]any{"signal": "terminated"}})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "audit", entries[0].LoggerName)
	fields := entries[0].ContextMap()
	assert.Equal(t, "SERVER_SHUTDOWN", fields["action"])
	assert.Equal(t, "2026-10-14T03:00:00Z", fields["timestamp"])
}

func TestDefaultServerConfig(t *testing.T) {
	cfg := DefaultServerConfig("3000")
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestStdoutAuditLogger_CarriesRequestMetadata(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := NewStdoutAuditLogger(zap.New(core))

	ctx := contextutil.WithRequestID(context.Background(), "rid-9")
	ctx = contextutil.WithUserID(ctx, "user-1")
	ctx = contextutil.WithRole(ctx, "hr")
	l.Log(ctx, AuditLog{Action: "SERVER_START"})

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "rid-9", fields["request_id"])
	assert.Equal(t, "hr", fields["role"])
}
