package models

import (
	"encoding/json"
	"strings"
)

// SourceGoogle — значение originalRequest.source для запросов от Google Assistant.
const SourceGoogle = "google"

// Request описывает запрос Dialogflow к вебхуку выполнения (fulfillment).
// См. https://dialogflow.com/docs/fulfillment
type Request struct {
	ID              string           `json:"id,omitempty"`
	SessionID       string           `json:"sessionId,omitempty"`
	Lang            string           `json:"lang,omitempty"`
	Result          Result           `json:"result"`
	OriginalRequest *OriginalRequest `json:"originalRequest,omitempty"`
}

// Result описывает распознанный интент.
type Result struct {
	// action — строка, определяющая, что нужно сделать навыку
	Action        string     `json:"action"`
	ResolvedQuery string     `json:"resolvedQuery,omitempty"`
	Parameters    Parameters `json:"parameters"`
	// контексты диалога навыку не нужны, но передаются обработчикам как есть
	Contexts []json.RawMessage `json:"contexts"`
}

// OriginalRequest описывает исходный запрос платформы, из которой пришёл пользователь.
type OriginalRequest struct {
	Source string `json:"source"`
}

// Source возвращает источник запроса или пустую строку, если он не указан.
func (r Request) Source() string {
	if r.OriginalRequest == nil {
		return ""
	}
	return r.OriginalRequest.Source
}

// Channel определяет, в каком формате нужно отвечать на запрос.
func (r Request) Channel() Channel {
	if r.Source() == SourceGoogle {
		return ChannelVoiceAssistant
	}
	return ChannelGeneric
}

// Channel — поверхность, с которой пришёл запрос.
type Channel int

const (
	ChannelGeneric Channel = iota
	ChannelVoiceAssistant
)

func (c Channel) String() string {
	if c == ChannelVoiceAssistant {
		return "voice-assistant"
	}
	return "generic"
}

// Parameters — сущности, извлечённые Dialogflow из реплики пользователя.
type Parameters map[string]string

// UnmarshalJSON принимает значения любого типа: строки сохраняются как есть,
// остальные значения (числа, списки, объекты) — в виде исходного JSON.
func (p *Parameters) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*p = nil
		return nil
	}

	params := make(Parameters, len(raw))
	for k, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			params[k] = s
			continue
		}
		if trimmed := strings.TrimSpace(string(v)); trimmed != "null" {
			params[k] = trimmed
		}
	}
	*p = params
	return nil
}

// Response описывает ответ вебхука.
// Для обычных клиентов заполняются только Speech и DisplayText,
// для Google Assistant дополнительно Data.
type Response struct {
	Speech      string        `json:"speech,omitempty"`
	DisplayText string        `json:"displayText,omitempty"`
	Data        *ResponseData `json:"data,omitempty"`
}

// ResponseData содержит ответы, специфичные для платформ.
type ResponseData struct {
	Google *GoogleResponse `json:"google,omitempty"`
}

// GoogleResponse описывает ответ Actions on Google.
type GoogleResponse struct {
	// true — после ответа ассистент продолжает слушать пользователя (ask, а не tell)
	ExpectUserResponse bool             `json:"expectUserResponse"`
	IsSSML             bool             `json:"isSsml"`
	NoInputPrompts     []SimpleResponse `json:"noInputPrompts"`
	RichResponse       *RichResponse    `json:"richResponse,omitempty"`
}

// RichResponse — составной ответ Google Assistant.
type RichResponse struct {
	Items       []RichResponseItem `json:"items"`
	Suggestions []Suggestion       `json:"suggestions"`
}

type RichResponseItem struct {
	SimpleResponse *SimpleResponse `json:"simpleResponse,omitempty"`
}

// SimpleResponse — озвучиваемый и отображаемый текст.
type SimpleResponse struct {
	TextToSpeech string `json:"textToSpeech,omitempty"`
	SSML         string `json:"ssml,omitempty"`
	DisplayText  string `json:"displayText,omitempty"`
}

type Suggestion struct {
	Title string `json:"title"`
}
