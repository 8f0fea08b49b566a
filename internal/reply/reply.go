// Package reply формирует ответы навыка для обычных клиентов Dialogflow и для Google Assistant.
package reply

import (
	"strings"

	"github.com/wurt83ow/docusign-skill/internal/models"
)

// Payload — ответ пользователю: либо простой текст, либо пара «озвучить/показать».
type Payload struct {
	Speech      string
	DisplayText string
	// plain выставляется для простого текста, который озвучивается и показывается одинаково
	plain bool
}

// Text возвращает ответ из простого текста.
func Text(s string) Payload {
	return Payload{Speech: s, DisplayText: s, plain: true}
}

// Simple возвращает ответ с раздельными текстами для озвучивания и отображения.
// Незаполненное поле заменяется значением второго.
func Simple(speech, displayText string) Payload {
	return Payload{Speech: speech, DisplayText: displayText}
}

// IsText сообщает, что ответ задан простым текстом.
func (p Payload) IsText() bool {
	return p.plain
}

// resolve применяет взаимную подстановку полей.
func (p Payload) resolve() (speech, displayText string) {
	speech, displayText = p.Speech, p.DisplayText
	if speech == "" {
		speech = p.DisplayText
	}
	if displayText == "" {
		displayText = p.Speech
	}
	return speech, displayText
}

// JSON формирует плоский ответ для обычных клиентов: ровно два поля, speech и displayText.
func JSON(p Payload) models.Response {
	speech, displayText := p.resolve()
	return models.Response{
		Speech:      speech,
		DisplayText: displayText,
	}
}

// Ask формирует ответ Google Assistant, после которого ассистент ждёт реплику пользователя.
func Ask(p Payload) models.Response {
	if p.IsText() {
		text := p.Speech
		return models.Response{
			Speech: text,
			Data: &models.ResponseData{
				Google: &models.GoogleResponse{
					ExpectUserResponse: true,
					IsSSML:             isSSML(text),
					NoInputPrompts:     []models.SimpleResponse{},
				},
			},
		}
	}

	speech, displayText := p.resolve()
	simple := models.SimpleResponse{DisplayText: displayText}
	if isSSML(speech) {
		simple.SSML = speech
	} else {
		simple.TextToSpeech = speech
	}

	return models.Response{
		Speech: speech,
		Data: &models.ResponseData{
			Google: &models.GoogleResponse{
				ExpectUserResponse: true,
				NoInputPrompts:     []models.SimpleResponse{},
				RichResponse: &models.RichResponse{
					Items:       []models.RichResponseItem{{SimpleResponse: &simple}},
					Suggestions: []models.Suggestion{},
				},
			},
		},
	}
}

func isSSML(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "<speak>")
}
