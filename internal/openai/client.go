// Package openai is a small transport client for the OpenAI HTTP API. It
// covers the two calls this service makes: chat completions and the
// responses API with hosted web search. Transient failures are retried a
// bounded number of times; classification of the final error is left to
// the caller.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/hashicorp/go-hclog"
	"github.com/sethvargo/go-retry"
	"io"
	"net/http"
	"strings"
	"time"
)

const DefaultBaseURL = "https://api.openai.com/v1"

// ErrMissingAPIKey is returned before any request is made when no key is set
var ErrMissingAPIKey = errors.New("OpenAI API key is not configured")

// ErrMalformedResponse wraps a 2xx body that could not be decoded
var ErrMalformedResponse = errors.New("malformed response body")

// Config configures a Client
type Config struct {
	APIKey  string
	BaseURL string
	// Timeout bounds a single attempt
	Timeout time.Duration
	// MaxRetries is the number of extra attempts after a transient failure
	MaxRetries int
	// Backoff is the first retry delay; it doubles per retry up to 8s
	Backoff time.Duration
}

// Client is safe for concurrent use. It holds only the credential and
// transport configuration.
type Client struct {
	apiKey     string
	baseURL    string
	maxRetries int
	backoff    time.Duration
	httpClient *http.Client
	log        hclog.Logger
}

func NewClient(cfg Config, logger hclog.Logger) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	backoff := cfg.Backoff
	if backoff <= 0 {
		backoff = 500 * time.Millisecond
	}
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		maxRetries: maxRetries,
		backoff:    backoff,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: logger,
	}
}

// APIError is a non-2xx answer from the API
type APIError struct {
	StatusCode int
	Message    string
	Type       string
	Code       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Message)
}

// retryable reports whether the status is worth another attempt
func (e *APIError) retryable() bool {
	switch {
	case e.StatusCode == http.StatusRequestTimeout,
		e.StatusCode == http.StatusConflict,
		e.StatusCode == http.StatusTooManyRequests,
		e.StatusCode >= http.StatusInternalServerError:
		return true
	}
	return false
}

// CreateChatCompletion calls POST /chat/completions
func (c *Client) CreateChatCompletion(ctx context.Context, req ChatCompletionRequest) (*ChatCompletionResponse, error) {
	var resp ChatCompletionResponse
	if err := c.post(ctx, "/chat/completions", req, &resp); err != nil {
		return nil, err
	}

	c.log.Debug("Chat completion finished",
		"model", resp.Model,
		"choices", len(resp.Choices),
		"total_tokens", resp.Usage.TotalTokens)
	return &resp, nil
}

// CreateResponse calls POST /responses
func (c *Client) CreateResponse(ctx context.Context, req ResponseRequest) (*Response, error) {
	var resp Response
	if err := c.post(ctx, "/responses", req, &resp); err != nil {
		return nil, err
	}

	c.log.Debug("Response finished", "model", resp.Model, "status", resp.Status, "output_items", len(resp.Output))
	return &resp, nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	backoff := retry.WithMaxRetries(uint64(c.maxRetries),
		retry.WithCappedDuration(8*time.Second, retry.NewExponential(c.backoff)))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if attempt > 1 {
			c.log.Warn("Retrying request", "path", path, "attempt", attempt)
		}

		err := c.do(ctx, path, payload, out)
		if err == nil {
			return nil
		}

		if errors.Is(err, ErrMalformedResponse) {
			return err
		}

		var apiErr *APIError
		if errors.As(err, &apiErr) {
			if apiErr.retryable() {
				return retry.RetryableError(err)
			}
			return err
		}

		// Transport failures are retried unless the caller gave up
		if ctx.Err() != nil {
			return err
		}
		return retry.RetryableError(err)
	})
}

func (c *Client) do(ctx context.Context, path string, payload []byte, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, data)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Message: strings.TrimSpace(string(body))}

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
		apiErr.Message = envelope.Error.Message
		apiErr.Type = envelope.Error.Type
		if envelope.Error.Code != nil {
			apiErr.Code = fmt.Sprint(envelope.Error.Code)
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}
