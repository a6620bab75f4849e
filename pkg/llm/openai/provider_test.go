package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"legal-chat-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChat_SendsPayloadAndReturnsContent(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"hello there"}}]}`))
	}))
	defer server.Close()

	provider := NewOpenAIProvider("test-key", server.URL, "gpt-4o-mini")

	result, err := provider.Chat(context.Background(), []llm.Message{
		{Role: "system", Content: "You are helpful."},
		{Role: "user", Content: "Hi"},
	}, llm.WithTemperature(0.5), llm.WithMaxTokens(2000))

	require.NoError(t, err)
	assert.Equal(t, "hello there", result)
	assert.Equal(t, "gpt-4o-mini", captured.Model)
	assert.Len(t, captured.Messages, 2)
	assert.Equal(t, 0.5, captured.Temperature)
	assert.Equal(t, 2000, captured.MaxTokens)
	assert.Nil(t, captured.ResponseFormat)
}

func TestChat_JSONModeSetsResponseFormat(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{"choices":[{"message":{"content":"{\"documentIds\":[]}"}}]}`))
	}))
	defer server.Close()

	provider := NewOpenAIProvider("", server.URL, "gpt-4o-mini")

	_, err := provider.Chat(context.Background(), []llm.Message{
		{Role: "user", Content: "pick"},
	}, llm.WithJSONMode())

	require.NoError(t, err)
	require.NotNil(t, captured.ResponseFormat)
	assert.Equal(t, "json_object", captured.ResponseFormat.Type)
}

func TestChat_EmptyChoicesReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	provider := NewOpenAIProvider("", server.URL, "gpt-4o-mini")

	_, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "Hi"}})
	assert.Error(t, err)
}

func TestChat_NonOKStatusReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer server.Close()

	provider := NewOpenAIProvider("", server.URL, "gpt-4o-mini")

	_, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "Hi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestGenerate_WrapsPromptAsUserMessage(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer server.Close()

	provider := NewOpenAIProvider("", server.URL, "gpt-4o-mini")

	_, err := provider.Generate(context.Background(), "summarize this")
	require.NoError(t, err)
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "user", captured.Messages[0].Role)
	assert.Equal(t, "summarize this", captured.Messages[0].Content)
}
