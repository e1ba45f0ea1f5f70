// Package streaming mints short-lived tokens for the realtime transcription
// provider so the browser can open a streaming session without seeing the
// API key.
package streaming

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"aftercare-app-server/internal/config"
)

// Token lifetimes are clamped to the provider's allowed range.
const (
	MinExpirySeconds = 60
	MaxExpirySeconds = 600
)

// ErrPaymentRequired signals the provider rejected the request because the
// account lacks a payment method; callers surface this distinctly.
var ErrPaymentRequired = errors.New("streaming provider requires an upgraded account with a payment method")

// ErrNotConfigured signals the provider API key is absent.
var ErrNotConfigured = errors.New("streaming provider API key is not configured")

// TokenResponse is the minted token together with its effective lifetime.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
}

// Client requests temporary streaming tokens from the provider.
type Client struct {
	cfg        config.StreamingConfig
	httpClient *http.Client
}

// NewClient creates a streaming token client.
func NewClient(cfg config.StreamingConfig) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// MintToken requests a temporary token valid for expiresInSeconds, clamped to
// [MinExpirySeconds, MaxExpirySeconds].
func (c *Client) MintToken(ctx context.Context, expiresInSeconds int) (*TokenResponse, error) {
	if c.cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}

	expires := expiresInSeconds
	if expires < MinExpirySeconds {
		expires = MinExpirySeconds
	}
	if expires > MaxExpirySeconds {
		expires = MaxExpirySeconds
	}

	url := fmt.Sprintf("%s/token?expires_in_seconds=%d", c.cfg.BaseURL, expires)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling streaming provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusPaymentRequired {
		return nil, ErrPaymentRequired
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("streaming provider returned status %d", resp.StatusCode)
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if body.Token == "" {
		return nil, errors.New("no token in response")
	}

	return &TokenResponse{Token: body.Token, ExpiresIn: expires}, nil
}
