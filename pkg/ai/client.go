// Package ai is the chat-completions client used to parse, score and
// rewrite resume content. Callers treat a nil *Client as "completion
// service unavailable"; nothing in this package reads global state.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"resume-composer/internal/model"
)

// ModelParams selects the model and sampling knobs for one request kind.
type ModelParams struct {
	Model       string
	MaxTokens   int
	Temperature float64
}

type Config struct {
	BaseURL           string
	APIKey            string
	Timeout           time.Duration
	MaxRetries        int
	RequestsPerMinute int
	Parse             ModelParams
	Optimize          ModelParams
}

// Client talks to an OpenAI-compatible chat-completions endpoint with
// client-side rate limiting and exponential-backoff retries.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 60
	}
	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(float64(rpm))/60, 1),
	}
}

// HTTPError is a non-2xx reply from the completion service.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("completion service http %d: %s", e.StatusCode, e.Body)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
}

// ParseResume asks the model to structure raw resume text. The returned
// string is the raw completion payload; sanitizing it is the caller's job.
func (c *Client) ParseResume(ctx context.Context, resumeText string) (string, error) {
	system, user := parsePrompt(resumeText)
	return c.complete(ctx, c.cfg.Parse, system, user)
}

// AnalyzeResume scores a structured resume against a job description.
func (c *Client) AnalyzeResume(ctx context.Context, doc *model.ResumeDocument, jobDescription string) (string, error) {
	system, user := analyzePrompt(doc, jobDescription)
	return c.complete(ctx, c.cfg.Optimize, system, user)
}

// OptimizeSection rewrites a single resume section for a job description.
func (c *Client) OptimizeSection(ctx context.Context, in OptimizeInput) (string, error) {
	system, user := optimizePrompt(in)
	return c.complete(ctx, c.cfg.Optimize, system, user)
}

func (c *Client) complete(ctx context.Context, params ModelParams, system, user string) (string, error) {
	req := chatRequest{
		Model:       params.Model,
		MaxTokens:   params.MaxTokens,
		Temperature: params.Temperature,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encode completion request: %w", err)
	}

	raw, err := c.doPostWithRetry(ctx, "/chat/completions", body)
	if err != nil {
		return "", err
	}

	var resp chatResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion response has no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// doPostWithRetry posts body to path, honoring the rate limiter and
// retrying retryable failures with exponential backoff.
func (c *Client) doPostWithRetry(ctx context.Context, path string, body []byte) ([]byte, error) {
	attempts := c.cfg.MaxRetries + 1
	var lastErr error
	for i := 0; i < attempts; i++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		raw, err := c.doOnce(ctx, path, body)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !retryable(err) {
			return nil, err
		}
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}

func (c *Client) doOnce(ctx context.Context, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, readErr
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: truncateBody(string(raw))}
	}
	return raw, nil
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode == http.StatusTooManyRequests || he.StatusCode >= 500
	}
	// transport-level failure
	return true
}

const maxErrorBody = 512

func truncateBody(s string) string {
	if len(s) <= maxErrorBody {
		return s
	}
	return s[:maxErrorBody] + "..."
}
