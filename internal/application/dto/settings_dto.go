package dto

import "github.com/shopspring/decimal"

// SettingsResponse mirrors the store settings row.
type SettingsResponse struct {
	EURRate    string `json:"eur_rate"`
	HidePrices bool   `json:"hide_prices"`
}

// UpdateSettingsRequest overwrites the store settings.
type UpdateSettingsRequest struct {
	EURRate    decimal.Decimal `json:"eur_rate"`
	HidePrices bool            `json:"hide_prices"`
}

// DescribeProductRequest asks for an AI-generated product description.
type DescribeProductRequest struct {
	Name      string `json:"name"`
	LatinName string `json:"latin_name,omitempty"`
	Category  string `json:"category,omitempty"`
	Keywords  string `json:"keywords,omitempty"`
}

// DescribeProductResponse carries the generated Bulgarian description.
type DescribeProductResponse struct {
	Description string `json:"description"`
}
