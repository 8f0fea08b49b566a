// Package actions выбирает обработчик действия Dialogflow и вызывает его.
package actions

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/wurt83ow/docusign-skill/internal/logger"
	"github.com/wurt83ow/docusign-skill/internal/metrics"
	"github.com/wurt83ow/docusign-skill/internal/models"
	"github.com/wurt83ow/docusign-skill/internal/reply"
)

// DefaultAction — имя обработчика для неизвестных и пустых действий.
const DefaultAction = "default"

// Conversation — контекст одного запроса, который получает обработчик.
type Conversation struct {
	RequestID  string
	Action     string
	Parameters models.Parameters
	Contexts   []json.RawMessage
	Channel    models.Channel
	Responder  reply.Responder
}

// Reply отправляет ответ пользователю.
func (c *Conversation) Reply(p reply.Payload) {
	c.Responder.Respond(p)
}

// Handler обрабатывает действие.
type Handler interface {
	Handle(ctx context.Context, conv *Conversation)
}

// HandlerFunc позволяет использовать обычную функцию как Handler.
type HandlerFunc func(ctx context.Context, conv *Conversation)

func (f HandlerFunc) Handle(ctx context.Context, conv *Conversation) {
	f(ctx, conv)
}

// Registry сопоставляет действиям обработчики.
// Новое действие добавляется вызовом Register, без изменения логики выбора.
type Registry struct {
	handlers map[string]Handler
	fallback Handler
}

// NewRegistry возвращает реестр, в котором fallback обрабатывает все незарегистрированные действия.
func NewRegistry(fallback Handler) *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
		fallback: fallback,
	}
}

// Register регистрирует обработчик действия, заменяя предыдущий.
func (r *Registry) Register(action string, h Handler) {
	r.handlers[action] = h
}

// Lookup возвращает имя выбранного обработчика и сам обработчик. Поиск всегда успешен.
func (r *Registry) Lookup(action string) (string, Handler) {
	if h, ok := r.handlers[action]; ok {
		return action, h
	}
	return DefaultAction, r.fallback
}

// Dispatch синхронно вызывает ровно один обработчик для действия из conv.
func (r *Registry) Dispatch(ctx context.Context, conv *Conversation) string {
	name, h := r.Lookup(conv.Action)

	logger.Log.Debug("dispatching action",
		zap.String("request_id", conv.RequestID),
		zap.String("action", conv.Action),
		zap.String("handler", name),
		zap.Stringer("channel", conv.Channel),
	)
	metrics.ActionsTotal.WithLabelValues(name).Inc()

	h.Handle(ctx, conv)
	return name
}
