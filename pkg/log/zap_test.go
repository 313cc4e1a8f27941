package log_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"weekly-checklist/pkg/log"
)

func TestRequestID(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", log.RequestID(ctx))
	assert.Equal(t, "", log.RequestID(context.Background()))
}

func TestLoggerAttachesRequestID(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := log.New(zap.New(core))

	l.Infof(log.WithRequestID(context.Background(), "abc"), "loaded %d checklists", 3)
	l.Warn(context.Background(), "no id")

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "loaded 3 checklists", entries[0].Message)
		assert.Equal(t, "abc", entries[0].ContextMap()["request_id"])
		_, ok := entries[1].ContextMap()["request_id"]
		assert.False(t, ok)
	}
}

func TestInitDoesNotPanicOnBadLevel(t *testing.T) {
	l := log.Init(log.ZapConfig{Level: "loud", Mode: log.ModeProduction, Encoding: log.EncodingJSON})
	l.Info(context.Background(), "ok")

	nop := log.NewNop()
	nop.Errorf(context.Background(), "discarded %s", "message")
}
