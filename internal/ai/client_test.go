package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aftercare-app-server/internal/config"
)

func newTestClient(serverURL string) *Client {
	return NewClient(config.AIConfig{
		APIKey:      "test-key",
		BaseURL:     serverURL,
		Model:       "test-model",
		Temperature: 0.5,
	})
}

func completionBody(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
}

func TestClientComplete(t *testing.T) {
	var gotReq chatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(completionBody("generated text"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	content, err := client.Complete(context.Background(), []Message{
		{Role: "system", Content: "be helpful"},
		{Role: "user", Content: "hello"},
	}, 0)

	require.NoError(t, err)
	assert.Equal(t, "generated text", content)
	assert.Equal(t, "test-model", gotReq.Model)
	assert.Equal(t, 0.5, gotReq.Temperature)
	assert.Equal(t, DefaultMaxTokens, gotReq.MaxTokens)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
}

func TestClientCompleteOverridesMaxTokens(t *testing.T) {
	var gotReq chatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(completionBody("ok"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}}, 800)

	require.NoError(t, err)
	assert.Equal(t, 800, gotReq.MaxTokens)
}

func TestClientCompleteServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}}, 0)

	var gatewayErr *GatewayError
	require.ErrorAs(t, err, &gatewayErr)
	assert.Contains(t, gatewayErr.Error(), "429")
}

func TestClientCompleteNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}}, 0)

	var gatewayErr *GatewayError
	assert.ErrorAs(t, err, &gatewayErr)
}

func TestClientCompleteMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}}, 0)

	var gatewayErr *GatewayError
	assert.ErrorAs(t, err, &gatewayErr)
}

// The provider's concurrency budget is one request; under N concurrent
// callers the server must never observe more than one in-flight call.
func TestClientCompleteSerializesCalls(t *testing.T) {
	var inFlight, maxInFlight int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		current := atomic.AddInt64(&inFlight, 1)
		for {
			observed := atomic.LoadInt64(&maxInFlight)
			if current <= observed || atomic.CompareAndSwapInt64(&maxInFlight, observed, current) {
				break
			}
		}
		json.NewEncoder(w).Encode(completionBody("ok"))
		atomic.AddInt64(&inFlight, -1)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}}, 0)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt64(&maxInFlight), int64(1))
}
