package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Статусы запросов на подпись.
const (
	StatusSent    = "sent"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

var (
	// ActionsTotal считает обработанные действия по имени выбранного обработчика.
	ActionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skill_actions_total",
		Help: "Количество обработанных действий Dialogflow",
	}, []string{"action"})

	// SignatureRequestsTotal — единственный внешний канал, по которому видны исходы
	// отправки конвертов: пользователю результат не сообщается.
	SignatureRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skill_signature_requests_total",
		Help: "Количество запросов на подпись по статусу",
	}, []string{"status"})

	SignatureLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "skill_signature_request_duration_seconds",
		Help:    "Длительность отправки конверта в DocuSign",
		Buckets: prometheus.DefBuckets,
	})
)
