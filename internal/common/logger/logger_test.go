// internal/common/logger/logger_test.go
package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapAdapter_Fields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapAdapter(zap.New(core)).With(map[string]interface{}{"component": "places-client"})

	log.WithError(errors.New("dial tcp: timeout")).Warn("upstream failed", map[string]interface{}{
		"operation": "text_search",
		"cause":     errors.New("boom"),
	})

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "upstream failed", entries[0].Message)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
		assert.Equal(t, "places-client", fields["component"])
		assert.Equal(t, "text_search", fields["operation"])
		assert.Equal(t, "dial tcp: timeout", fields["error"])
		assert.Equal(t, "boom", fields["cause"])
	}
}

func TestNew_Level(t *testing.T) {
	assert.False(t, New("warn", "json", "stderr").Core().Enabled(zapcore.InfoLevel))
	assert.True(t, New("debug", "console", "stderr").Core().Enabled(zapcore.DebugLevel))
	assert.True(t, New("unknown", "json", "").Core().Enabled(zapcore.InfoLevel))
}

func TestNoOpLogger(t *testing.T) {
	log := NewNoOpLogger()
	log.Info("discarded", nil)
	log.WithFields(map[string]interface{}{"k": "v"}).Error("discarded", nil)
}

func TestContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := NewZapAdapter(zap.New(core))

	assert.Same(t, base, ForContext(context.Background(), base))

	ctx := ContextWithFields(context.Background(), map[string]interface{}{"requestId": "req-1"})
	ctx = ContextWithFields(ctx, map[string]interface{}{"route": "/search/"})
	assert.Equal(t, map[string]interface{}{"requestId": "req-1", "route": "/search/"}, FieldsFromContext(ctx))

	ForContext(ctx, base).Info("served", nil)
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "req-1", fields["requestId"])
	assert.Equal(t, "/search/", fields["route"])
}
