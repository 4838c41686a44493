// File: services/intelligence/interface.go
package intelligence

import (
	"context"

	"stayflow/models"
)

// AIService wraps the generative backend behind task-shaped operations so
// handlers never build prompts themselves.
type AIService interface {
	// ExtractReceipt downloads the image at the given URL and parses it into
	// a structured expense record.
	ExtractReceipt(ctx context.Context, staffID, imageURL string) (*models.ReceiptExtraction, error)

	// ForecastInventory projects expected consumption for the given items
	// over the horizon, using recent stock movements as evidence.
	ForecastInventory(ctx context.Context, staffID string, items []models.InventoryItem, movements []models.StockMovement, horizonDays int) (*models.InventoryForecast, error)

	// GenerateOffer drafts a personalised retention offer for a guest
	// profile, tone-matched to their loyalty tier.
	GenerateOffer(ctx context.Context, staffID string, profile models.GuestProfile) (*models.GuestOffer, error)

	// ClearContext drops the staff member's stored prompt history.
	ClearContext(ctx context.Context, staffID string) error
}

type DefaultAIService struct {
	Client *GeminiClient
	Store  *RedisContextStore
}
