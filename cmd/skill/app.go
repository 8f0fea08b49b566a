package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wurt83ow/docusign-skill/internal/actions"
	"github.com/wurt83ow/docusign-skill/internal/logger"
	"github.com/wurt83ow/docusign-skill/internal/models"
	"github.com/wurt83ow/docusign-skill/internal/reply"
)

// HeaderRequestID — заголовок с идентификатором запроса.
const HeaderRequestID = "X-Request-Id"

// app инкапсулирует в себя все зависимости и логику приложения
type app struct {
	registry *actions.Registry
}

// newApp принимает на вход внешние зависимости приложения и возвращает новый объект app
func newApp(registry *actions.Registry) *app {
	return &app{registry: registry}
}

func (a *app) webhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		logger.Log.Debug("got request with bad method", zap.String("method", r.Method))
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	requestID := r.Header.Get(HeaderRequestID)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	w.Header().Set(HeaderRequestID, requestID)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Log.Debug("cannot read request body", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	logger.Log.Debug("request",
		zap.String("request_id", requestID),
		zap.Any("headers", r.Header),
		zap.ByteString("body", body),
	)

	logger.Log.Debug("decoding request")
	var req models.Request
	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(&req); err != nil {
		logger.Log.Debug("cannot decode request JSON body", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// формат ответа определяется один раз, по источнику запроса
	channel := req.Channel()
	var responder reply.Responder = reply.NewJSONResponder(w)
	if channel == models.ChannelVoiceAssistant {
		responder = reply.NewAssistantResponder(w)
	}

	a.registry.Dispatch(ctx, &actions.Conversation{
		RequestID:  requestID,
		Action:     req.Result.Action,
		Parameters: req.Result.Parameters,
		Contexts:   req.Result.Contexts,
		Channel:    channel,
		Responder:  responder,
	})
}
