// Package docusign отправляет документы на подпись через REST API DocuSign.
package docusign

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// HeaderAuthentication — заголовок устаревшей схемы авторизации DocuSign (legacy header).
const HeaderAuthentication = "X-DocuSign-Authentication"

// DefaultBaseURL — адрес демонстрационного окружения DocuSign.
const DefaultBaseURL = "https://demo.docusign.net/restapi"

// Credentials — учётные данные аккаунта DocuSign.
type Credentials struct {
	Username      string `json:"Username"`
	Password      string `json:"Password"`
	IntegratorKey string `json:"IntegratorKey"`
}

// Client — клиент REST API DocuSign.
type Client struct {
	http *resty.Client
}

// NewClient возвращает клиент, авторизующий каждый запрос переданными учётными данными.
func NewClient(baseURL string, creds Credentials, timeout time.Duration) (*Client, error) {
	// заголовок авторизации — JSON с учётными данными
	auth, err := json.Marshal(creds)
	if err != nil {
		return nil, err
	}

	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader(HeaderAuthentication, string(auth))

	return &Client{http: rc}, nil
}

// Login возвращает список аккаунтов пользователя.
func (c *Client) Login(ctx context.Context) (*LoginInformation, error) {
	var info LoginInformation
	var apiErr APIError

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"api_password":            "true",
			"include_account_id_guid": "true",
		}).
		SetResult(&info).
		SetError(&apiErr).
		Get("/v2/login_information")
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if resp.IsError() {
		apiErr.StatusCode = resp.StatusCode()
		return nil, &apiErr
	}
	return &info, nil
}

// CreateEnvelope создаёт конверт в аккаунте accountID.
func (c *Client) CreateEnvelope(ctx context.Context, accountID string, def EnvelopeDefinition) (*EnvelopeSummary, error) {
	var summary EnvelopeSummary
	var apiErr APIError

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("accountId", accountID).
		SetBody(def).
		SetResult(&summary).
		SetError(&apiErr).
		Post("/v2/accounts/{accountId}/envelopes")
	if err != nil {
		return nil, fmt.Errorf("create envelope: %w", err)
	}
	if resp.IsError() {
		apiErr.StatusCode = resp.StatusCode()
		return nil, &apiErr
	}
	return &summary, nil
}
