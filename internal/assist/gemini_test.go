// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package assist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-grocery-list/internal/config"
	"github.com/MKhiriev/go-grocery-list/internal/logger"
	"github.com/MKhiriev/go-grocery-list/models"
)

func geminiReply(t *testing.T, text string) []byte {
	t.Helper()
	var resp generateResponse
	resp.Candidates = append(resp.Candidates, struct {
		Content content `json:"content"`
	}{Content: content{Role: "model", Parts: []part{{Text: text}}}})

	b, err := json.Marshal(resp)
	require.NoError(t, err)
	return b
}

func newTestGemini(t *testing.T, handler http.HandlerFunc) Assistant {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewGeminiAssistant(config.ClientAssist{
		APIKey:  "secret",
		Model:   "test-model",
		BaseURL: srv.URL + "/",
		Timeout: 2 * time.Second,
	}, logger.Nop())
}

func TestGeminiAssistant_Suggest(t *testing.T) {
	a := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-goog-api-key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "application/json", req.GenerationConfig.ResponseMimeType)
		require.Len(t, req.Contents, 1)
		require.Len(t, req.Contents[0].Parts, 1)
		assert.Contains(t, req.Contents[0].Parts[0].Text, `"Greek yogurt"`)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "Produce, Dairy, Meat")

		_, _ = w.Write(geminiReply(t, "```json\n{\"category\":\"Dairy\",\"priority\":\"High\"}\n```"))
	})

	got, ok := a.Suggest(context.Background(), " Greek yogurt ")

	assert.True(t, ok)
	assert.Equal(t, models.Suggestion{Category: models.CategoryDairy, Priority: models.PriorityHigh}, got)
}

func TestGeminiAssistant_SuggestBlankNameSkipsRequest(t *testing.T) {
	called := false
	a := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) { called = true })

	_, ok := a.Suggest(context.Background(), "   ")

	assert.False(t, ok)
	assert.False(t, called)
}

func TestGeminiAssistant_FailuresBecomeEmpty(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "quota exceeded", http.StatusTooManyRequests)
			},
		},
		{
			name: "not json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>"))
			},
		},
		{
			name: "no candidates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"candidates":[]}`))
			},
		},
		{
			name: "prose answer",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write(geminiReply(t, "Sorry, I cannot help with that."))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestGemini(t, tt.handler)

			s, ok := a.Suggest(context.Background(), "milk")
			assert.False(t, ok)
			assert.Zero(t, s)

			assert.Empty(t, a.Expand(context.Background(), "pancakes"))
		})
	}
}

func TestGeminiAssistant_Expand(t *testing.T) {
	a := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req.Contents[0].Parts[0].Text, `"Pancakes for four"`)

		_, _ = w.Write(geminiReply(t, `[
			{"name":"Flour","category":"Pantry","quantity":"2 cups","priority":"High"},
			{"name":"Milk","category":"Dairy","quantity":"1.5 cups","priority":"High"},
			{"name":"Blueberries","category":"Fruit","quantity":"1 pack","priority":"Low"}
		]`))
	})

	drafts := a.Expand(context.Background(), "Pancakes for four")

	require.Len(t, drafts, 3)
	assert.Equal(t, "Flour", drafts[0].Name)
	assert.Equal(t, models.CategoryDairy, drafts[1].Category)
	assert.Equal(t, models.CategoryOther, drafts[2].Category)
	assert.Equal(t, models.PriorityLow, drafts[2].Priority)
}

func TestGeminiAssistant_DefaultsFromConfig(t *testing.T) {
	a := NewGeminiAssistant(config.ClientAssist{APIKey: "k"}, logger.Nop()).(*geminiAssistant)

	assert.Equal(t, config.DefaultAssistModel, a.model)
	assert.Equal(t, config.DefaultAssistBaseURL, a.client.BaseURL)
}
