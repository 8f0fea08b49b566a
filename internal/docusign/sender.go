package docusign

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/wurt83ow/docusign-skill/internal/logger"
	"github.com/wurt83ow/docusign-skill/internal/store"
)

// DefaultEmailSubject — тема письма с приглашением подписать документ.
const DefaultEmailSubject = "Please sign this document sent from Google Home"

// ErrNoLoginAccounts возвращается, если у пользователя нет ни одного аккаунта DocuSign.
var ErrNoLoginAccounts = errors.New("docusign: no login accounts")

// PlaceholderSigner — подписант для получателей, которых нет в справочнике.
var PlaceholderSigner = store.Recipient{
	Name:  "Default Signer",
	Email: "default.signer@example.com",
}

// SignatureRequest — параметры запроса на подпись, извлечённые Dialogflow.
type SignatureRequest struct {
	// RequestID связывает запрос на подпись с входящим запросом вебхука
	RequestID string
	Template  string
	Receiver  string
}

// Template — шаблон DocuSign, из которого создаются конверты.
type Template struct {
	ID           string
	RoleName     string
	EmailSubject string
}

// API описывает используемые методы REST API DocuSign.
type API interface {
	Login(ctx context.Context) (*LoginInformation, error)
	CreateEnvelope(ctx context.Context, accountID string, def EnvelopeDefinition) (*EnvelopeSummary, error)
}

// Sender создаёт и отправляет конверты из шаблона.
type Sender struct {
	api        API
	recipients store.Store
	template   Template
}

// NewSender возвращает Sender, использующий справочник recipients для поиска подписантов.
func NewSender(api API, recipients store.Store, template Template) *Sender {
	if template.EmailSubject == "" {
		template.EmailSubject = DefaultEmailSubject
	}
	return &Sender{api: api, recipients: recipients, template: template}
}

// ResolveSigner возвращает подписанта по имени получателя.
// Неизвестные получатели и ошибки справочника дают PlaceholderSigner.
func (s *Sender) ResolveSigner(ctx context.Context, receiver string) store.Recipient {
	r, err := s.recipients.FindRecipient(ctx, receiver)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logger.Log.Warn("cannot look up recipient", zap.String("receiver", receiver), zap.Error(err))
		}
		return PlaceholderSigner
	}
	return r
}

// Send авторизуется в DocuSign и отправляет конверт подписанту.
func (s *Sender) Send(ctx context.Context, req SignatureRequest) (*EnvelopeSummary, error) {
	signer := s.ResolveSigner(ctx, req.Receiver)

	info, err := s.api.Login(ctx)
	if err != nil {
		return nil, err
	}
	if len(info.LoginAccounts) == 0 {
		return nil, ErrNoLoginAccounts
	}
	logger.Log.Debug("login information",
		zap.String("request_id", req.RequestID),
		zap.Any("accounts", info.LoginAccounts),
	)

	// шаблонная роль связывает шаблон с конкретным подписантом
	def := EnvelopeDefinition{
		EmailSubject: s.template.EmailSubject,
		TemplateID:   s.template.ID,
		TemplateRoles: []TemplateRole{{
			RoleName: s.template.RoleName,
			Name:     signer.Name,
			Email:    signer.Email,
		}},
		Status: EnvelopeStatusSent,
	}

	// конверт создаётся в первом аккаунте пользователя
	summary, err := s.api.CreateEnvelope(ctx, info.LoginAccounts[0].AccountID, def)
	if err != nil {
		return nil, fmt.Errorf("account %s: %w", info.LoginAccounts[0].AccountID, err)
	}
	return summary, nil
}
