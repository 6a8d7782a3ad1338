package e2etest

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/status-im/crypto-insight-hub/core"
)

// TestEnv represents a test environment
type TestEnv struct {
	Registry      *core.Registry
	MockServer    *MockServer
	Context       context.Context
	CancelFunc    context.CancelFunc
	ConfigPath    string
	ServerBaseURL string
}

// SetupTest sets up the test environment
func SetupTest(t *testing.T) *TestEnv {
	// Create a context with cancellation capability
	ctx, cancel := context.WithCancel(context.Background())

	// Create a mock server
	mockServer := NewMockServer()

	// Make sure the process environment does not shadow the env file
	t.Setenv("TOGETHER_API_KEY", "")
	t.Setenv("PORT", "")
	os.Unsetenv("TOGETHER_API_KEY")

	// Load test configuration with URLs from the mock server
	cfg, configPath, err := loadTestConfig(mockServer.GetURL())
	if err != nil {
		mockServer.Close()
		cancel()
		t.Fatalf("Failed to load test config: %v", err)
	}

	// Initialize services
	registry, err := core.Setup(ctx, cfg)
	if err != nil {
		cleanupTestConfig(configPath)
		mockServer.Close()
		cancel()
		t.Fatalf("Failed to setup services: %v", err)
	}

	// Start services
	if err := registry.StartAll(ctx); err != nil {
		cleanupTestConfig(configPath)
		mockServer.Close()
		cancel()
		t.Fatalf("Failed to start services: %v", err)
	}

	serverBaseURL := fmt.Sprintf("http://localhost:%s", cfg.Server.Port)

	// Wait for the server to fully start
	ready := false
	for i := 0; i < 50 && !ready; i++ {
		resp, err := http.Get(serverBaseURL + "/health")
		if err == nil {
			ready = resp.StatusCode == http.StatusOK
			resp.Body.Close()
		}
		if !ready {
			time.Sleep(100 * time.Millisecond)
		}
	}
	if !ready {
		registry.StopAll()
		cleanupTestConfig(configPath)
		mockServer.Close()
		cancel()
		t.Fatalf("Server not responding at %s", serverBaseURL)
	}

	return &TestEnv{
		Registry:      registry,
		MockServer:    mockServer,
		Context:       ctx,
		CancelFunc:    cancel,
		ConfigPath:    configPath,
		ServerBaseURL: serverBaseURL,
	}
}

// TearDown releases test environment resources
func (env *TestEnv) TearDown() {
	if env.Registry != nil {
		env.Registry.StopAll()
	}
	if env.MockServer != nil {
		env.MockServer.Close()
	}
	if env.CancelFunc != nil {
		env.CancelFunc()
	}
	if env.ConfigPath != "" {
		cleanupTestConfig(env.ConfigPath)
	}
}

// getJSON requests path and decodes the JSON body into v, returning the status code
func (env *TestEnv) getJSON(t *testing.T, path string, v interface{}) int {
	resp, err := http.Get(env.ServerBaseURL + path)
	require.NoError(t, err, "Should be able to make a request to %s", path)
	defer resp.Body.Close()

	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v), "Response should be valid JSON")
	return resp.StatusCode
}

// postJSON posts to path and decodes the JSON body into v, returning the status code
func (env *TestEnv) postJSON(t *testing.T, path string, v interface{}) int {
	resp, err := http.Post(env.ServerBaseURL+path, "application/json", nil)
	require.NoError(t, err, "Should be able to make a request to %s", path)
	defer resp.Body.Close()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(v), "Response should be valid JSON")
	return resp.StatusCode
}

// getBody requests path and returns the body with HTML entities decoded
func (env *TestEnv) getBody(t *testing.T, path string) (int, string) {
	resp, err := http.Get(env.ServerBaseURL + path)
	require.NoError(t, err, "Should be able to make a request to %s", path)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Should be able to read response body")
	return resp.StatusCode, html.UnescapeString(string(body))
}
