package reply

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshal(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestJSON(t *testing.T) {
	testCases := []struct {
		name    string
		payload Payload
		want    string
	}{
		{name: "plain text", payload: Text("Hello"), want: `{"speech":"Hello","displayText":"Hello"}`},
		{name: "speech only", payload: Simple("A", ""), want: `{"speech":"A","displayText":"A"}`},
		{name: "display text only", payload: Simple("", "B"), want: `{"speech":"B","displayText":"B"}`},
		{name: "both distinct", payload: Simple("S", "D"), want: `{"speech":"S","displayText":"D"}`},
		{name: "both absent", payload: Simple("", ""), want: `{}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.JSONEq(t, tc.want, marshal(t, JSON(tc.payload)))
		})
	}
}

func TestAsk(t *testing.T) {
	testCases := []struct {
		name    string
		payload Payload
		want    string
	}{
		{
			name:    "plain text",
			payload: Text("Welcome"),
			want: `{
				"speech": "Welcome",
				"data": {"google": {"expectUserResponse": true, "isSsml": false, "noInputPrompts": []}}
			}`,
		},
		{
			name:    "plain ssml",
			payload: Text("<speak>Hi</speak>"),
			want: `{
				"speech": "<speak>Hi</speak>",
				"data": {"google": {"expectUserResponse": true, "isSsml": true, "noInputPrompts": []}}
			}`,
		},
		{
			name:    "simple response with fallback",
			payload: Simple("S", ""),
			want: `{
				"speech": "S",
				"data": {"google": {
					"expectUserResponse": true,
					"isSsml": false,
					"noInputPrompts": [],
					"richResponse": {
						"items": [{"simpleResponse": {"textToSpeech": "S", "displayText": "S"}}],
						"suggestions": []
					}
				}}
			}`,
		},
		{
			name:    "simple response keeps both",
			payload: Simple("S", "D"),
			want: `{
				"speech": "S",
				"data": {"google": {
					"expectUserResponse": true,
					"isSsml": false,
					"noInputPrompts": [],
					"richResponse": {
						"items": [{"simpleResponse": {"textToSpeech": "S", "displayText": "D"}}],
						"suggestions": []
					}
				}}
			}`,
		},
		{
			name:    "simple response with ssml speech",
			payload: Simple("<speak>S</speak>", "D"),
			want: `{
				"speech": "<speak>S</speak>",
				"data": {"google": {
					"expectUserResponse": true,
					"isSsml": false,
					"noInputPrompts": [],
					"richResponse": {
						"items": [{"simpleResponse": {"ssml": "<speak>S</speak>", "displayText": "D"}}],
						"suggestions": []
					}
				}}
			}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.JSONEq(t, tc.want, marshal(t, Ask(tc.payload)))
		})
	}
}

func TestRespondersWriteOnce(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := NewJSONResponder(w)
		r.Respond(Text("first"))
		r.Respond(Text("second"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"speech":"first","displayText":"first"}`, w.Body.String())
	})

	t.Run("assistant", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := NewAssistantResponder(w)
		r.Respond(Text("first"))
		r.Respond(Text("second"))

		assert.Equal(t, "v1", w.Header().Get(HeaderAssistantAPIVersion))
		var got map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "first", got["speech"])
	})
}
