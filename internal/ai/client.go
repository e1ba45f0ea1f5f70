package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"aftercare-app-server/internal/config"
)

// Message is one chat message sent to the model endpoint.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer is the single choke point through which all model calls pass.
// Orchestrators depend on this interface so tests can substitute a fake.
type Completer interface {
	Complete(ctx context.Context, messages []Message, maxTokens int) (string, error)
}

// DefaultMaxTokens is applied when a call does not override the token budget.
const DefaultMaxTokens = 500

// Client calls an OpenAI-compatible chat completions endpoint. The provider's
// concurrency budget is one request, so every call holds mu for the duration
// of the network round trip; correctness depends on no caller bypassing the
// client.
type Client struct {
	cfg        config.AIConfig
	httpClient *http.Client
	mu         sync.Mutex
}

// NewClient creates a model gateway from explicit provider configuration.
func NewClient(cfg config.AIConfig) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type chatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the messages to the model and returns the first completion's
// content. maxTokens <= 0 selects DefaultMaxTokens. Failures propagate
// immediately as a GatewayError; there is no retry or backoff.
func (c *Client) Complete(ctx context.Context, messages []Message, maxTokens int) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	reqBody := chatCompletionRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		Temperature: c.cfg.Temperature,
		MaxTokens:   maxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", &GatewayError{Message: "marshaling request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return "", &GatewayError{Message: "creating request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &GatewayError{Message: "calling model endpoint", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &GatewayError{Message: fmt.Sprintf("model endpoint returned status %d", resp.StatusCode)}
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", &GatewayError{Message: "decoding response", Err: err}
	}
	if len(completion.Choices) == 0 {
		return "", &GatewayError{Message: "model response contained no choices"}
	}

	return completion.Choices[0].Message.Content, nil
}
