package reply

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/wurt83ow/docusign-skill/internal/logger"
	"github.com/wurt83ow/docusign-skill/internal/models"
)

// HeaderAssistantAPIVersion — заголовок версии протокола Actions on Google.
const HeaderAssistantAPIVersion = "Google-Assistant-API-Version"

// Responder отправляет ответ пользователю. На один запрос отправляется ровно один ответ.
type Responder interface {
	Respond(p Payload)
}

// JSONResponder отвечает обычным клиентам Dialogflow.
type JSONResponder struct {
	w    http.ResponseWriter
	sent bool
}

// NewJSONResponder возвращает Responder для обычных клиентов.
func NewJSONResponder(w http.ResponseWriter) *JSONResponder {
	return &JSONResponder{w: w}
}

func (r *JSONResponder) Respond(p Payload) {
	if r.sent {
		logger.Log.Warn("response already sent, dropping payload")
		return
	}
	r.sent = true
	write(r.w, JSON(p))
}

// AssistantResponder отвечает Google Assistant примитивом ask.
type AssistantResponder struct {
	w    http.ResponseWriter
	sent bool
}

// NewAssistantResponder возвращает Responder для Google Assistant.
func NewAssistantResponder(w http.ResponseWriter) *AssistantResponder {
	return &AssistantResponder{w: w}
}

func (r *AssistantResponder) Respond(p Payload) {
	if r.sent {
		logger.Log.Warn("response already sent, dropping payload")
		return
	}
	r.sent = true
	r.w.Header().Set(HeaderAssistantAPIVersion, "v1")
	write(r.w, Ask(p))
}

func write(w http.ResponseWriter, resp models.Response) {
	w.Header().Set("Content-Type", "application/json")

	// сериализуем ответ сервера
	enc := json.NewEncoder(w)
	if err := enc.Encode(resp); err != nil {
		logger.Log.Debug("error encoding response", zap.Error(err))
		return
	}
	logger.Log.Debug("sending HTTP 200 response")
}
