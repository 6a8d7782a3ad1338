package e2etest

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

const testAPIKey = "test-together-key"

// MockServer serves the CoinGecko and Together AI endpoints used by the dashboard
type MockServer struct {
	server *httptest.Server

	mu sync.RWMutex
	// Markets maps coin id to its /coins/markets entry, kept in market cap order
	Markets []map[string]interface{}
	// ChartStatus overrides the market_chart status per coin id
	ChartStatus map[string]int
	// InsightStatus overrides the status of the completions endpoint when non-zero
	InsightStatus int
	// MarketsStatus overrides the status of the markets endpoint when non-zero
	MarketsStatus int

	requests map[string]int
}

// NewMockServer creates and returns a new mock server
func NewMockServer() *MockServer {
	ms := &MockServer{
		Markets:     defaultMarketsData(),
		ChartStatus: make(map[string]int),
		requests:    make(map[string]int),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/coins/markets", ms.handleMarkets)
	mux.HandleFunc("/api/v3/coins/", ms.handleMarketChart)
	mux.HandleFunc("/v1/chat/completions", ms.handleChatCompletions)

	// Note: httptest.Server automatically selects a free port
	ms.server = httptest.NewServer(mux)
	return ms
}

// GetURL returns the base URL of the mock server
func (ms *MockServer) GetURL() string {
	return ms.server.URL
}

// Close closes the mock server
func (ms *MockServer) Close() {
	if ms.server != nil {
		ms.server.Close()
	}
}

// SetMarketsStatus makes the markets endpoint answer with status
func (ms *MockServer) SetMarketsStatus(status int) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.MarketsStatus = status
}

// SetChartStatus makes the market_chart endpoint of coinID answer with status
func (ms *MockServer) SetChartStatus(coinID string, status int) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.ChartStatus[coinID] = status
}

// SetInsightStatus makes the completions endpoint answer with status
func (ms *MockServer) SetInsightStatus(status int) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.InsightStatus = status
}

// Requests returns how many times path was requested
func (ms *MockServer) Requests(path string) int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return ms.requests[path]
}

func (ms *MockServer) track(r *http.Request) {
	ms.mu.Lock()
	ms.requests[r.URL.Path]++
	ms.mu.Unlock()
	log.Printf("MockServer: Received request for path: %s", r.URL.Path)
}

func (ms *MockServer) handleMarkets(w http.ResponseWriter, r *http.Request) {
	ms.track(r)

	ms.mu.RLock()
	defer ms.mu.RUnlock()

	if ms.MarketsStatus != 0 {
		http.Error(w, `{"error":"mock failure"}`, ms.MarketsStatus)
		return
	}

	requested := make(map[string]bool)
	for _, id := range strings.Split(r.URL.Query().Get("ids"), ",") {
		requested[id] = true
	}

	result := make([]map[string]interface{}, 0)
	for _, entry := range ms.Markets {
		if requested[entry["id"].(string)] {
			result = append(result, entry)
		}
	}
	writeJSON(w, result)
}

func (ms *MockServer) handleMarketChart(w http.ResponseWriter, r *http.Request) {
	ms.track(r)

	coinID, ok := strings.CutSuffix(strings.TrimPrefix(r.URL.Path, "/api/v3/coins/"), "/market_chart")
	if !ok {
		http.NotFound(w, r)
		return
	}

	ms.mu.RLock()
	status := ms.ChartStatus[coinID]
	ms.mu.RUnlock()

	if status != 0 {
		http.Error(w, `{"error":"mock failure"}`, status)
		return
	}
	if r.URL.Query().Get("days") != "7" || r.URL.Query().Get("vs_currency") != "usd" {
		http.Error(w, `{"error":"unexpected query"}`, http.StatusBadRequest)
		return
	}

	prices := make([][]float64, 0, 7)
	for day := 0; day < 7; day++ {
		prices = append(prices, []float64{float64(1700000000000 + day*86400000), 100 + float64(day)})
	}
	writeJSON(w, map[string]interface{}{
		"prices":        prices,
		"market_caps":   [][]float64{},
		"total_volumes": [][]float64{},
	})
}

func (ms *MockServer) handleChatCompletions(w http.ResponseWriter, r *http.Request) {
	ms.track(r)

	ms.mu.RLock()
	status := ms.InsightStatus
	ms.mu.RUnlock()

	if status != 0 {
		http.Error(w, `{"error":"mock failure"}`, status)
		return
	}
	if r.Header.Get("Authorization") != "Bearer "+testAPIKey {
		http.Error(w, `{"error":"invalid api key"}`, http.StatusUnauthorized)
		return
	}

	var request struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || len(request.Messages) == 0 {
		http.Error(w, `{"error":"bad request"}`, http.StatusBadRequest)
		return
	}

	writeJSON(w, map[string]interface{}{
		"id":    "mock-completion",
		"model": request.Model,
		"choices": []map[string]interface{}{
			{
				"index": 0,
				"message": map[string]string{
					"role":    "assistant",
					"content": fmt.Sprintf("Mock answer to: %s", request.Messages[0].Content),
				},
			},
		},
	})
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("MockServer: Error writing response: %v", err)
	}
}

// defaultMarketsData returns mock /coins/markets entries in market cap order
func defaultMarketsData() []map[string]interface{} {
	return []map[string]interface{}{
		{
			"id":                          "bitcoin",
			"symbol":                      "btc",
			"name":                        "Bitcoin",
			"current_price":               65000.5,
			"market_cap":                  1280000000000,
			"market_cap_rank":             1,
			"total_volume":                35000000000,
			"price_change_percentage_24h": 2.5,
			"circulating_supply":          19700000,
		},
		{
			"id":                          "ethereum",
			"symbol":                      "eth",
			"name":                        "Ethereum",
			"current_price":               3500,
			"market_cap":                  420000000000,
			"market_cap_rank":             2,
			"total_volume":                15000000000,
			"price_change_percentage_24h": -1.25,
			"circulating_supply":          120000000,
		},
		{
			"id":                          "dogecoin",
			"symbol":                      "doge",
			"name":                        "Dogecoin",
			"current_price":               0.15,
			"market_cap":                  21000000000,
			"market_cap_rank":             9,
			"total_volume":                900000000,
			"price_change_percentage_24h": 0,
			"circulating_supply":          143000000000,
		},
	}
}
