package models

// ReceiptExtraction is the schema the OCR prompt asks Gemini to fill from
// a receipt or invoice image. It maps straight onto a transaction draft.
type ReceiptExtraction struct {
	Guest    string `json:"guest"`    // guest or payer name as printed
	Date     string `json:"date"`     // "YYYY-MM-DD"
	Type     string `json:"type"`     // category, e.g. "Restaurant"
	Amount   int64  `json:"amount"`   // whole currency units
	Currency string `json:"currency"` // ISO code as printed, if any
	Vendor   string `json:"vendor"`   // issuing outlet
}

// ForecastItem is one per-item line in an inventory forecast response.
type ForecastItem struct {
	ItemID         string  `json:"itemId"`
	Name           string  `json:"name"`
	ProjectedUsage float64 `json:"projectedUsage"` // units over the horizon
	SuggestedOrder float64 `json:"suggestedOrder"` // units to reorder now
	StockoutRisk   string  `json:"stockoutRisk"`   // low | medium | high
	Reasoning      string  `json:"reasoning"`      // one-line justification
}

// InventoryForecast is the schema-validated forecast response.
type InventoryForecast struct {
	HorizonDays int            `json:"horizonDays"`
	Items       []ForecastItem `json:"items"`
}

// GuestOffer is a generated, tier-aware offer for a loyal guest.
type GuestOffer struct {
	Email     string `json:"email"`
	Tier      string `json:"tier"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	ValidDays int    `json:"validDays"`
}
