package together_insights

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/go-resty/resty/v2"

	"github.com/status-im/crypto-insight-hub/config"
	"github.com/status-im/crypto-insight-hub/interfaces"
	"github.com/status-im/crypto-insight-hub/metrics"
)

const (
	// Base URL of the Together AI API
	TOGETHER_PUBLIC_URL = "https://api.together.xyz"
	// Chat completions endpoint
	CHAT_COMPLETIONS_PATH = "/v1/chat/completions"
	// Raw completions endpoint
	COMPLETIONS_PATH = "/v1/completions"

	maxErrorBodyLength = 512
)

//go:generate mockgen -destination=mocks/api_client.go . APIClient

// APIClient sends a single prompt to the hosted model
type APIClient interface {
	// Complete returns the trimmed generated text for prompt
	Complete(ctx context.Context, prompt string) (string, error)
	// Healthy reports whether at least one completion succeeded
	Healthy() bool
}

// TogetherClient implements APIClient on top of the Together AI HTTP API
type TogetherClient struct {
	settings        config.TogetherInsightsConfig
	client          *resty.Client
	metricsWriter   *metrics.MetricsWriter
	successfulFetch atomic.Bool
}

// GetApiBaseUrl returns the Together AI base URL, honouring the config override
func GetApiBaseUrl(cfg *config.Config) string {
	if cfg != nil && cfg.OverrideTogetherURL != "" {
		log.Printf("Together: Using overridden API URL: %s", cfg.OverrideTogetherURL)
		return cfg.OverrideTogetherURL
	}
	return TOGETHER_PUBLIC_URL
}

// NewTogetherClient creates a new Together AI client
func NewTogetherClient(cfg *config.Config) *TogetherClient {
	client := resty.New()
	client.SetBaseURL(strings.TrimRight(GetApiBaseUrl(cfg), "/"))
	client.SetTimeout(cfg.TogetherInsights.RequestTimeout)
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("Accept", "application/json")
	client.SetAuthToken(cfg.TogetherAPIKey)

	return &TogetherClient{
		settings:      cfg.TogetherInsights,
		client:        client,
		metricsWriter: metrics.NewMetricsWriter(metrics.ServiceInsights),
	}
}

// Healthy checks if the client has had at least one successful completion
func (c *TogetherClient) Healthy() bool {
	return c.successfulFetch.Load()
}

// Complete issues exactly one completion request
func (c *TogetherClient) Complete(ctx context.Context, prompt string) (string, error) {
	path, payload := c.buildRequest(prompt)

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post(path)
	if resp != nil {
		c.metricsWriter.RecordRequestLatency(resp.Time())
	}
	if err != nil {
		log.Printf("Together: Request to %s failed: %v", path, err)
		c.metricsWriter.RecordUpstreamRequest("error")
		return "", &interfaces.FetchError{
			Kind:    interfaces.FailureTransport,
			Message: fmt.Sprintf("request failed: %v", err),
			Err:     err,
		}
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		status := "error"
		if resp.StatusCode() == http.StatusTooManyRequests {
			status = "rate_limited"
		}
		c.metricsWriter.RecordUpstreamRequest(status)

		body := resp.String()
		if len(body) > maxErrorBodyLength {
			body = body[:maxErrorBodyLength]
		}
		log.Printf("Together: API error: %d - %s", resp.StatusCode(), body)
		return "", &interfaces.FetchError{
			Kind:       interfaces.FailureStatus,
			StatusCode: resp.StatusCode(),
			Message:    fmt.Sprintf("API request failed with status %d: %s", resp.StatusCode(), body),
		}
	}
	c.metricsWriter.RecordUpstreamRequest("success")

	var completion CompletionResponse
	if err := json.Unmarshal(resp.Body(), &completion); err != nil {
		return "", &interfaces.FetchError{
			Kind:    interfaces.FailureMalformed,
			Message: "unexpected response format: " + err.Error(),
			Err:     err,
		}
	}

	text, err := c.extractText(completion)
	if err != nil {
		return "", err
	}

	log.Printf("Together: Received %d characters from %s in %.2fs", len(text), c.settings.Model, resp.Time().Seconds())
	c.successfulFetch.Store(true)

	return text, nil
}

func (c *TogetherClient) buildRequest(prompt string) (string, interface{}) {
	if c.settings.APIVariant == config.APIVariantCompletion {
		return COMPLETIONS_PATH, CompletionRequest{
			Model:       c.settings.Model,
			Prompt:      prompt,
			Temperature: c.settings.Temperature,
			MaxTokens:   c.settings.MaxTokens,
		}
	}

	return CHAT_COMPLETIONS_PATH, ChatRequest{
		Model: c.settings.Model,
		Messages: []Message{
			{Role: "user", Content: prompt},
		},
		Temperature: c.settings.Temperature,
		MaxTokens:   c.settings.MaxTokens,
	}
}

// extractText reads choices[0] according to the configured API variant
func (c *TogetherClient) extractText(completion CompletionResponse) (string, error) {
	if len(completion.Choices) == 0 {
		return "", &interfaces.FetchError{
			Kind:    interfaces.FailureMalformed,
			Message: "response has no choices",
		}
	}

	choice := completion.Choices[0]
	var text *string
	field := "choices[0].message.content"
	if c.settings.APIVariant == config.APIVariantCompletion {
		field = "choices[0].text"
		text = choice.Text
	} else if choice.Message != nil {
		text = &choice.Message.Content
	}

	if text == nil {
		return "", &interfaces.FetchError{
			Kind:    interfaces.FailureMalformed,
			Message: "response is missing " + field,
		}
	}

	trimmed := strings.TrimSpace(*text)
	if trimmed == "" {
		return "", &interfaces.FetchError{
			Kind:    interfaces.FailureEmpty,
			Message: "model returned an empty " + field,
		}
	}

	return trimmed, nil
}
