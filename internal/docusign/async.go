package docusign

import (
	"context"
	"sync"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/wurt83ow/docusign-skill/internal/logger"
	"github.com/wurt83ow/docusign-skill/internal/metrics"
)

// Signer отправляет конверт и возвращает результат.
type Signer interface {
	Send(ctx context.Context, req SignatureRequest) (*EnvelopeSummary, error)
}

// AsyncSender отправляет конверты в фоне, не задерживая ответ пользователю.
// Исход отправки виден только в логах и метриках.
type AsyncSender struct {
	signer  Signer
	breaker *gobreaker.CircuitBreaker
	wg      sync.WaitGroup
}

// NewAsyncSender возвращает AsyncSender с автоматическим выключателем вокруг signer.
func NewAsyncSender(signer Signer) *AsyncSender {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "docusign",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Log.Warn("circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &AsyncSender{signer: signer, breaker: cb}
}

// RequestSignature запускает отправку конверта и сразу возвращает управление.
// Отправка не привязана к контексту входящего запроса и не отменяется вместе с ним.
func (a *AsyncSender) RequestSignature(_ context.Context, req SignatureRequest) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.send(req)
	}()
}

// Wait блокируется до завершения всех начатых отправок.
func (a *AsyncSender) Wait() {
	a.wg.Wait()
}

func (a *AsyncSender) send(req SignatureRequest) {
	start := time.Now()
	res, err := a.breaker.Execute(func() (interface{}, error) {
		return a.signer.Send(context.Background(), req)
	})
	metrics.SignatureLatency.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.SignatureRequestsTotal.WithLabelValues(metrics.StatusFailed).Inc()
		logger.Log.Error("cannot send envelope",
			zap.String("request_id", req.RequestID),
			zap.String("template", req.Template),
			zap.String("receiver", req.Receiver),
			zap.Error(err),
		)
		return
	}

	metrics.SignatureRequestsTotal.WithLabelValues(metrics.StatusSent).Inc()
	fields := []zap.Field{zap.String("request_id", req.RequestID)}
	if summary, ok := res.(*EnvelopeSummary); ok && summary != nil {
		fields = append(fields,
			zap.String("envelope_id", summary.EnvelopeID),
			zap.String("status", summary.Status),
		)
	}
	logger.Log.Info("envelope sent", fields...)
}
