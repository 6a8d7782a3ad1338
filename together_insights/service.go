package together_insights

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/status-im/crypto-insight-hub/config"
	"github.com/status-im/crypto-insight-hub/interfaces"
)

const (
	opRetrieveResponse = "retrieving response"
	promptTemplate     = "Tell me about %s."
)

// Service produces free-text insights about a coin
type Service struct {
	config    *config.Config
	apiClient APIClient
}

// NewService creates a new insights service backed by Together AI
func NewService(cfg *config.Config) *Service {
	return NewServiceWithClient(cfg, NewTogetherClient(cfg))
}

// NewServiceWithClient creates an insights service on top of the given API client
func NewServiceWithClient(cfg *config.Config, apiClient APIClient) *Service {
	return &Service{
		config:    cfg,
		apiClient: apiClient,
	}
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if s.apiClient == nil {
		return fmt.Errorf("api client not provided")
	}
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {}

// Healthy checks if the service is operational
func (s *Service) Healthy() bool {
	if s.apiClient != nil {
		return s.apiClient.Healthy()
	}
	return false
}

// Prompt builds the question sent to the model for a coin
func Prompt(coinID string) string {
	return fmt.Sprintf(promptTemplate, coinID)
}

// Insight implements interfaces.IInsightsService
func (s *Service) Insight(ctx context.Context, coinID string) (string, error) {
	coinID = strings.TrimSpace(coinID)
	if coinID == "" {
		return "", interfaces.NewFetchError(opRetrieveResponse, interfaces.FailureEmpty, "no coin identifier given")
	}

	log.Printf("Requesting insights for %s", coinID)

	text, err := s.apiClient.Complete(ctx, Prompt(coinID))
	if err != nil {
		log.Printf("apiClient.Complete failed for %s: %v", coinID, err)
		return "", interfaces.WithOp(err, opRetrieveResponse)
	}

	return text, nil
}
