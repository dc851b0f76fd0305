package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"Mainu/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatServer(t *testing.T, status int, content string) (*httptest.Server, *map[string]any) {
	t.Helper()
	received := map[string]any{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"rate limited","type":"requests"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  "gpt-4o",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv, &received
}

func TestOpenAISubmit_BuildsTemplate(t *testing.T) {
	srv, received := newChatServer(t, http.StatusOK, "```json\n"+sampleMenuPayload+"\n```")
	svc := NewOpenAIMenuService("sk-test", srv.URL, "gpt-4o", Languages{In: "auto", Out: "en"}, nil)

	req := models.NewProcessingRequest(1, "PANE 5", "it", "")
	template, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, req.UploadID, template.ID)
	assert.Equal(t, 2, template.DishCount())

	assert.Equal(t, "gpt-4o", (*received)["model"])
	format, ok := (*received)["response_format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "json_schema", format["type"])
}

func TestOpenAISubmit_StatusError(t *testing.T) {
	srv, _ := newChatServer(t, http.StatusTooManyRequests, "")
	svc := NewOpenAIMenuService("sk-test", srv.URL, "gpt-4o", Languages{}, nil)

	_, err := svc.Submit(context.Background(), models.NewProcessingRequest(1, "menu", "", ""))
	var statusErr *InvalidStatusCodeError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusTooManyRequests, statusErr.Code)
}

func TestOpenAISubmit_EmptyMenu(t *testing.T) {
	srv, _ := newChatServer(t, http.StatusOK, `{"items":[]}`)
	svc := NewOpenAIMenuService("sk-test", srv.URL, "gpt-4o", Languages{}, nil)

	_, err := svc.Submit(context.Background(), models.NewProcessingRequest(1, "menu", "", ""))
	assert.ErrorIs(t, err, ErrEmptyMenu)
}

func TestOpenAISubmit_EmptyText(t *testing.T) {
	svc := NewOpenAIMenuService("sk-test", "http://127.0.0.1:1", "gpt-4o", Languages{}, nil)
	_, err := svc.Submit(context.Background(), models.NewProcessingRequest(1, "", "", ""))
	assert.ErrorIs(t, err, ErrEmptyRecognizedText)
}
