package docusign

import "fmt"

// Статусы конверта при создании.
const (
	// EnvelopeStatusSent — конверт сразу отправляется получателям
	EnvelopeStatusSent = "sent"
	// EnvelopeStatusCreated — конверт сохраняется как черновик
	EnvelopeStatusCreated = "created"
)

// LoginInformation — ответ метода login_information.
// Пользователь может состоять в нескольких аккаунтах.
type LoginInformation struct {
	APIPassword   string         `json:"apiPassword,omitempty"`
	LoginAccounts []LoginAccount `json:"loginAccounts"`
}

type LoginAccount struct {
	AccountID     string `json:"accountId"`
	AccountIDGUID string `json:"accountIdGuid,omitempty"`
	BaseURL       string `json:"baseUrl,omitempty"`
	Email         string `json:"email,omitempty"`
	IsDefault     string `json:"isDefault,omitempty"`
	Name          string `json:"name,omitempty"`
	UserID        string `json:"userId,omitempty"`
	UserName      string `json:"userName,omitempty"`
}

// EnvelopeDefinition описывает запрос на подпись, создаваемый из шаблона.
type EnvelopeDefinition struct {
	EmailSubject  string         `json:"emailSubject,omitempty"`
	TemplateID    string         `json:"templateId,omitempty"`
	TemplateRoles []TemplateRole `json:"templateRoles,omitempty"`
	Status        string         `json:"status,omitempty"`
}

// TemplateRole связывает роль шаблона с конкретным подписантом.
type TemplateRole struct {
	RoleName string `json:"roleName"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// EnvelopeSummary — ответ на создание конверта.
type EnvelopeSummary struct {
	EnvelopeID     string `json:"envelopeId"`
	Status         string `json:"status"`
	StatusDateTime string `json:"statusDateTime,omitempty"`
	URI            string `json:"uri,omitempty"`
}

// APIError — ошибка, которую вернул REST API DocuSign.
type APIError struct {
	StatusCode int    `json:"-"`
	ErrorCode  string `json:"errorCode"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.ErrorCode == "" {
		return fmt.Sprintf("docusign: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("docusign: %s: %s (status %d)", e.ErrorCode, e.Message, e.StatusCode)
}
