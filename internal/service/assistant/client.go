// Package assistant wraps the generative-AI endpoint behind the orchestrator
// features: intent analysis, plan orchestration, and specialist chat replies.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"brandistry/pkg/circuitbreaker"
	"brandistry/pkg/metrics"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Fallback chain: speed first, then reliability.
var defaultModels = []string{
	"gemini-2.5-flash",
	"gemini-3-pro-preview",
}

var ErrMissingAPIKey = errors.New("assistant api key missing")

type Client struct {
	baseURL    string
	apiKey     string
	models     []string
	httpClient *http.Client
	breaker    *circuitbreaker.CircuitBreaker
	logger     *zap.Logger
}

func NewClient(apiKey string, models []string, logger *zap.Logger) *Client {
	if len(models) == 0 {
		models = defaultModels
	}
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		models:  models,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		breaker: circuitbreaker.NewCircuitBreaker(circuitbreaker.DefaultConfig()),
		logger:  logger,
	}
}

// WithBaseURL points the client at a different endpoint. Used by tests.
func (c *Client) WithBaseURL(url string) *Client {
	c.baseURL = url
	return c
}

// --- wire shapes ---

type genPart struct {
	Text string `json:"text"`
}

type genContent struct {
	Role  string    `json:"role,omitempty"`
	Parts []genPart `json:"parts"`
}

type genConfig struct {
	Temperature      float64 `json:"temperature,omitempty"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
}

type genRequest struct {
	SystemInstruction *genContent  `json:"system_instruction,omitempty"`
	Contents          []genContent `json:"contents"`
	GenerationConfig  *genConfig   `json:"generationConfig,omitempty"`
}

type genResponse struct {
	Candidates []struct {
		Content genContent `json:"content"`
	} `json:"candidates"`
}

// generateWithFallback tries each model in the chain in order; any error moves
// to the next model, and only the last error surfaces.
func (c *Client) generateWithFallback(ctx context.Context, req genRequest) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	var lastErr error
	for _, m := range c.models {
		text, err := c.generate(ctx, m, req)
		if err == nil {
			return text, nil
		}
		c.logger.Warn("model call failed, trying next in chain",
			zap.String("model", m),
			zap.Error(err),
		)
		lastErr = err
	}

	if lastErr == nil {
		lastErr = errors.New("no models configured")
	}
	return "", fmt.Errorf("all fallback models failed: %w", lastErr)
}

func (c *Client) generate(ctx context.Context, modelName string, req genRequest) (string, error) {
	var text string

	err := c.breaker.Execute(func() error {
		start := time.Now()

		body, err := json.Marshal(req)
		if err != nil {
			return err
		}

		url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, modelName)
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return err
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("x-goog-api-key", c.apiKey)

		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			metrics.RecordAssistantCallLatency(modelName, "error", time.Since(start))
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			metrics.RecordAssistantCallLatency(modelName, fmt.Sprintf("%d", resp.StatusCode), time.Since(start))
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			return fmt.Errorf("model endpoint returned %d: %s", resp.StatusCode, string(b))
		}

		var decoded genResponse
		if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
			metrics.RecordAssistantCallLatency(modelName, "decode_error", time.Since(start))
			return err
		}
		if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
			metrics.RecordAssistantCallLatency(modelName, "empty", time.Since(start))
			return errors.New("empty model response")
		}

		metrics.RecordAssistantCallLatency(modelName, "ok", time.Since(start))
		text = decoded.Candidates[0].Content.Parts[0].Text
		return nil
	})

	return text, err
}
