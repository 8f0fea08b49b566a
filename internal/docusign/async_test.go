package docusign

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wurt83ow/docusign-skill/internal/logger"
)

type signerFunc func(ctx context.Context, req SignatureRequest) (*EnvelopeSummary, error)

func (f signerFunc) Send(ctx context.Context, req SignatureRequest) (*EnvelopeSummary, error) {
	return f(ctx, req)
}

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })
	return logs
}

func TestAsyncSenderDoesNotBlock(t *testing.T) {
	logs := observeLogs(t)

	release := make(chan struct{})
	a := NewAsyncSender(signerFunc(func(ctx context.Context, req SignatureRequest) (*EnvelopeSummary, error) {
		<-release
		return &EnvelopeSummary{EnvelopeID: "env-1", Status: EnvelopeStatusSent}, nil
	}))

	// отменённый контекст входящего запроса не должен влиять на отправку
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		a.RequestSignature(ctx, SignatureRequest{RequestID: "req-1"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("RequestSignature blocked on the signer")
	}

	close(release)
	a.Wait()

	entries := logs.FilterMessage("envelope sent").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "env-1", entries[0].ContextMap()["envelope_id"])
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
}

func TestAsyncSenderLogsFailure(t *testing.T) {
	logs := observeLogs(t)

	a := NewAsyncSender(signerFunc(func(ctx context.Context, req SignatureRequest) (*EnvelopeSummary, error) {
		return nil, errors.New("login failed")
	}))
	a.RequestSignature(context.Background(), SignatureRequest{RequestID: "req-2", Receiver: "John Doe"})
	a.Wait()

	entries := logs.FilterMessage("cannot send envelope").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "John Doe", entries[0].ContextMap()["receiver"])
}

func TestAsyncSenderOpensCircuit(t *testing.T) {
	observeLogs(t)

	calls := 0
	a := NewAsyncSender(signerFunc(func(ctx context.Context, req SignatureRequest) (*EnvelopeSummary, error) {
		calls++
		return nil, errors.New("unavailable")
	}))

	// запросы выполняются последовательно, чтобы счётчик выключателя был детерминирован
	for i := 0; i < 8; i++ {
		a.RequestSignature(context.Background(), SignatureRequest{})
		a.Wait()
	}

	assert.Equal(t, 5, calls)
}
