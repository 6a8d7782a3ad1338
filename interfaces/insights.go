package interfaces

import "context"

//go:generate mockgen -destination=mocks/insights.go . IInsightsService

// IInsightsService defines the interface for the LLM insight fetcher
type IInsightsService interface {
	// Insight returns generated free text about the coin.
	// On failure the returned error is a *FetchError whose message starts with ErrorMarker.
	Insight(ctx context.Context, coinID string) (string, error)
}
