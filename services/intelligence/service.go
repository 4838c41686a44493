// File: services/intelligence/service.go
package intelligence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"stayflow/models"
	"stayflow/utils"

	"go.uber.org/zap"
)

var ErrMalformedResponse = errors.New("model returned a response that does not match the expected schema")

const maxImageBytes = 8 << 20

func (s *DefaultAIService) ExtractReceipt(ctx context.Context, staffID, imageURL string) (*models.ReceiptExtraction, error) {
	mimeType, image, err := fetchImage(ctx, imageURL)
	if err != nil {
		return nil, err
	}

	prompt := `You are an OCR assistant for a hospitality back office.
Extract the following fields from the attached receipt image and reply with ONLY a JSON object, no prose:
{"guest": string, "date": "YYYY-MM-DD", "type": string, "amount": integer (whole currency units), "currency": string, "vendor": string}
If a field is not printed on the receipt, use an empty string (or 0 for amount).`

	var extraction models.ReceiptExtraction
	raw, err := s.generateJSON(ctx, &extraction, func(c context.Context) (string, error) {
		return s.Client.GenerateWithImage(c, prompt, mimeType, image)
	})
	if err != nil {
		return nil, err
	}
	if extraction.Date != "" {
		if _, err := models.ParseDate(extraction.Date); err != nil {
			return nil, ErrMalformedResponse
		}
	}

	s.record(ctx, staffID, "receipt", imageURL, raw)
	return &extraction, nil
}

func (s *DefaultAIService) ForecastInventory(ctx context.Context, staffID string, items []models.InventoryItem, movements []models.StockMovement, horizonDays int) (*models.InventoryForecast, error) {
	if horizonDays <= 0 {
		return nil, fmt.Errorf("horizon must be positive, got %d", horizonDays)
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode items: %w", err)
	}
	movementsJSON, err := json.Marshal(movements)
	if err != nil {
		return nil, fmt.Errorf("failed to encode movements: %w", err)
	}

	prompt := fmt.Sprintf(`You are an inventory planner for a hotel and restaurant operation.
Current stock items:
%s
Recent stock movements (negative delta = consumption):
%s
Project consumption over the next %d days and reply with ONLY a JSON object, no prose:
{"horizonDays": %d, "items": [{"itemId": string, "name": string, "projectedUsage": number, "suggestedOrder": number, "stockoutRisk": "low"|"medium"|"high", "reasoning": string}]}
Include every item exactly once.`, itemsJSON, movementsJSON, horizonDays, horizonDays)

	var forecast models.InventoryForecast
	raw, err := s.generateJSON(ctx, &forecast, func(c context.Context) (string, error) {
		return s.Client.GenerateContent(c, prompt)
	})
	if err != nil {
		return nil, err
	}
	if forecast.HorizonDays != horizonDays {
		forecast.HorizonDays = horizonDays
	}
	for _, it := range forecast.Items {
		switch it.StockoutRisk {
		case "low", "medium", "high":
		default:
			return nil, ErrMalformedResponse
		}
	}

	s.record(ctx, staffID, "forecast", prompt, raw)
	return &forecast, nil
}

func (s *DefaultAIService) GenerateOffer(ctx context.Context, staffID string, profile models.GuestProfile) (*models.GuestOffer, error) {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile: %w", err)
	}

	prompt := fmt.Sprintf(`You write retention offers for a hospitality group.
Guest profile:
%s
Write a short personalised offer matched to the guest's loyalty tier. Richer tiers get more generous perks. Reply with ONLY a JSON object, no prose:
{"email": string, "tier": string, "title": string, "body": string, "validDays": integer}
Use the email and tier from the profile verbatim.`, profileJSON)

	var offer models.GuestOffer
	raw, err := s.generateJSON(ctx, &offer, func(c context.Context) (string, error) {
		return s.Client.GenerateContent(c, prompt)
	})
	if err != nil {
		return nil, err
	}
	// The model occasionally paraphrases identifiers. Pin them.
	offer.Email = profile.Email
	offer.Tier = profile.Tier
	if offer.Title == "" || offer.Body == "" {
		return nil, ErrMalformedResponse
	}

	s.record(ctx, staffID, "offer", prompt, raw)
	return &offer, nil
}

func (s *DefaultAIService) ClearContext(ctx context.Context, staffID string) error {
	return s.Store.Clear(ctx, staffID)
}

// generateJSON runs the generation once, and retries once if the response
// does not decode into the target schema.
func (s *DefaultAIService) generateJSON(ctx context.Context, target any, generate func(context.Context) (string, error)) (string, error) {
	raw, err := generate(ctx)
	if err != nil {
		return "", err
	}
	if err := json.Unmarshal([]byte(stripFences(raw)), target); err == nil {
		return raw, nil
	}

	utils.GetLogger().Warn("AI response failed schema decode, retrying once",
		zap.String("response", truncate(raw, 200)))
	raw, err = generate(ctx)
	if err != nil {
		return "", err
	}
	if err := json.Unmarshal([]byte(stripFences(raw)), target); err != nil {
		return "", ErrMalformedResponse
	}
	return raw, nil
}

func (s *DefaultAIService) record(ctx context.Context, staffID, kind, prompt, response string) {
	if staffID == "" {
		return
	}
	rec := PromptRecord{
		Kind:      kind,
		Prompt:    truncate(prompt, 500),
		Response:  truncate(response, 2000),
		Timestamp: time.Now().Unix(),
	}
	if err := s.Store.Append(ctx, staffID, rec); err != nil {
		utils.GetLogger().Warn("failed to append AI context", zap.Error(err))
	}
}

// stripFences removes markdown code fences the model sometimes wraps JSON in,
// then trims to the outermost object.
func stripFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start >= 0 && end > start {
		cleaned = cleaned[start : end+1]
	}
	return strings.TrimSpace(cleaned)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func fetchImage(ctx context.Context, url string) (string, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", nil, fmt.Errorf("invalid image URL: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("failed to fetch image: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return "", nil, fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) > maxImageBytes {
		return "", nil, fmt.Errorf("image exceeds %d bytes", maxImageBytes)
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" || !strings.HasPrefix(mimeType, "image/") {
		mimeType = http.DetectContentType(data)
	}
	return mimeType, data, nil
}
