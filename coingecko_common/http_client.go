package coingecko_common

import (
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/status-im/crypto-insight-hub/config"
	"github.com/status-im/crypto-insight-hub/interfaces"
)

const maxErrorBodyLength = 512

// IHttpStatusHandler is an interface for handling HTTP request statuses
type IHttpStatusHandler interface {
	// OnRequest handles a request with its status result
	OnRequest(status string)
	// OnLatency handles the duration of a finished request
	OnLatency(duration time.Duration)
}

// ClientOptions configures the HTTP client
type ClientOptions struct {
	LogPrefix         string
	ConnectionTimeout time.Duration // Timeout for establishing connection
	RequestTimeout    time.Duration // Total request timeout including reading response
}

// DefaultClientOptions returns default client options
func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		LogPrefix:         "HTTP",
		ConnectionTimeout: 10 * time.Second,
		RequestTimeout:    30 * time.Second,
	}
}

// ClientOptionsFromConfig builds client options from the CoinGecko fetcher settings
func ClientOptionsFromConfig(cfg *config.Config, logPrefix string) ClientOptions {
	opts := DefaultClientOptions()
	opts.LogPrefix = logPrefix
	if cfg != nil {
		if cfg.CoingeckoMarkets.ConnectionTimeout > 0 {
			opts.ConnectionTimeout = cfg.CoingeckoMarkets.ConnectionTimeout
		}
		if cfg.CoingeckoMarkets.RequestTimeout > 0 {
			opts.RequestTimeout = cfg.CoingeckoMarkets.RequestTimeout
		}
	}
	return opts
}

// HTTPClient wraps an HTTP Client and issues every request exactly once
type HTTPClient struct {
	Client        *http.Client
	Opts          ClientOptions
	StatusHandler IHttpStatusHandler
}

// NewHTTPClient creates a new HTTP Client
func NewHTTPClient(opts ClientOptions, handler IHttpStatusHandler) *HTTPClient {
	client := &http.Client{
		Timeout: opts.RequestTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: opts.ConnectionTimeout,
			}).DialContext,
		},
	}

	return &HTTPClient{
		Client:        client,
		Opts:          opts,
		StatusHandler: handler,
	}
}

// ExecuteRequest executes an HTTP request and returns the body of a 2xx response.
// Failures are returned as *interfaces.FetchError.
func (c *HTTPClient) ExecuteRequest(req *http.Request) ([]byte, time.Duration, error) {
	requestStart := time.Now()
	resp, err := c.Client.Do(req)
	requestDuration := time.Since(requestStart)
	c.onLatency(requestDuration)

	if err != nil {
		log.Printf("%s: Request to %s failed after %.2fs: %v", c.Opts.LogPrefix, req.URL.Path, requestDuration.Seconds(), err)
		c.onRequest("error")
		return nil, requestDuration, &interfaces.FetchError{
			Kind:    interfaces.FailureTransport,
			Message: fmt.Sprintf("request failed after %.2fs: %v", requestDuration.Seconds(), err),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	body, err := processResponse(resp, requestDuration)
	if err != nil {
		if resp.StatusCode == http.StatusTooManyRequests {
			c.onRequest("rate_limited")
		} else {
			c.onRequest("error")
		}
		log.Printf("%s: %v", c.Opts.LogPrefix, err)
		return nil, requestDuration, err
	}

	c.onRequest("success")
	return body, requestDuration, nil
}

func (c *HTTPClient) onRequest(status string) {
	if c.StatusHandler != nil {
		c.StatusHandler.OnRequest(status)
	}
}

func (c *HTTPClient) onLatency(duration time.Duration) {
	if c.StatusHandler != nil {
		c.StatusHandler.OnLatency(duration)
	}
}

// processResponse reads and processes the HTTP response
func processResponse(resp *http.Response, requestDuration time.Duration) ([]byte, error) {
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLength))

		message := fmt.Sprintf("API request failed with status %d after %.2fs: %s",
			resp.StatusCode, requestDuration.Seconds(), string(body))
		if resp.StatusCode == http.StatusTooManyRequests {
			message = fmt.Sprintf("rate limit exceeded (status %d), retry after %s: %s",
				resp.StatusCode, resp.Header.Get("Retry-After"), string(body))
		}

		return nil, &interfaces.FetchError{
			Kind:       interfaces.FailureStatus,
			StatusCode: resp.StatusCode,
			Message:    message,
		}
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &interfaces.FetchError{
			Kind:    interfaces.FailureTransport,
			Message: fmt.Sprintf("error reading response: %v", err),
			Err:     err,
		}
	}

	return responseBody, nil
}
