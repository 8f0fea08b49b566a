package store

import (
	"context"
	"errors"
)

//go:generate mockgen -destination=mock/store.go -package=mock github.com/wurt83ow/docusign-skill/internal/store Store

// ErrConflict указывает на конфликт данных в хранилище.
var ErrConflict = errors.New("data conflict")

// ErrNotFound возвращается, если получатель не найден в справочнике.
var ErrNotFound = errors.New("recipient not found")

// KnownRecipients — получатели, которыми заполняется пустой справочник.
var KnownRecipients = []Recipient{
	{Name: "John Doe", Email: "john.doe@example.com"},
}

// Store описывает справочник получателей документов.
type Store interface {
	// FindRecipient ищет получателя по имени, которое распознал Dialogflow
	FindRecipient(ctx context.Context, name string) (Recipient, error)
	// RegisterRecipient добавляет получателя в справочник
	RegisterRecipient(ctx context.Context, r Recipient) error
}

// Recipient описывает подписанта документа.
type Recipient struct {
	Name  string
	Email string
}
