package actions

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/wurt83ow/docusign-skill/internal/docusign"
	"github.com/wurt83ow/docusign-skill/internal/logger"
	"github.com/wurt83ow/docusign-skill/internal/metrics"
	"github.com/wurt83ow/docusign-skill/internal/reply"
)

//go:generate mockgen -destination=mock/requester.go -package=mock github.com/wurt83ow/docusign-skill/internal/actions SignatureRequester

// Действия, которые Dialogflow передаёт для стандартных интентов.
const (
	ActionWelcome = "input.welcome"
	ActionUnknown = "input.unknown"
)

// Сущности, которые настроены в агенте Dialogflow.
const (
	ParamTemplate = "TemplateEntity"
	ParamReceiver = "ReceiverEntity"
)

const (
	WelcomeText = "Welcome to DocuSign！To whom will you send what?"
	UnknownText = "Sorry, would you let me know To whom will you send what?"
)

// SignatureRequester запускает отправку документа на подпись, не дожидаясь результата.
type SignatureRequester interface {
	RequestSignature(ctx context.Context, req docusign.SignatureRequest)
}

// NewDefaultRegistry возвращает реестр с приветствием, восстановлением после
// нераспознанной реплики и отправкой документа на подпись для всех остальных действий.
func NewDefaultRegistry(requester SignatureRequester) *Registry {
	r := NewRegistry(SendDocument(requester))
	r.Register(ActionWelcome, Say(reply.Text(WelcomeText)))
	r.Register(ActionUnknown, Say(reply.Text(UnknownText)))
	return r
}

// Say возвращает обработчик, который отвечает фиксированным текстом.
func Say(p reply.Payload) Handler {
	return HandlerFunc(func(_ context.Context, conv *Conversation) {
		conv.Reply(p)
	})
}

// SendDocument возвращает обработчик, который отправляет документ на подпись
// и сразу сообщает об этом пользователю. Ответ не зависит от исхода отправки.
func SendDocument(requester SignatureRequester) Handler {
	return HandlerFunc(func(ctx context.Context, conv *Conversation) {
		template := conv.Parameters[ParamTemplate]
		receiver := conv.Parameters[ParamReceiver]

		// без распознанных сущностей отправлять нечего
		if conv.Parameters != nil {
			requester.RequestSignature(ctx, docusign.SignatureRequest{
				RequestID: conv.RequestID,
				Template:  template,
				Receiver:  receiver,
			})
		} else {
			logger.Log.Debug("no parameters, skipping signature request", zap.String("request_id", conv.RequestID))
			metrics.SignatureRequestsTotal.WithLabelValues(metrics.StatusSkipped).Inc()
		}

		text := fmt.Sprintf("DocuSign sent %s to %s", template, receiver)
		conv.Reply(reply.Simple(text, text+":-)"))
	})
}
