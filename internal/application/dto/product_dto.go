package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest creates or replaces catalog fields.
type CreateProductRequest struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	LatinName   string          `json:"latin_name,omitempty"`
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url,omitempty"`
	B2BVisible  bool            `json:"b2b_visible"`
}

// ProductResponse is the admin view of a product.
type ProductResponse struct {
	ID          string    `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	LatinName   string    `json:"latin_name,omitempty"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
	Price       string    `json:"price"`
	ImageURL    string    `json:"image_url,omitempty"`
	Active      bool      `json:"active"`
	B2BVisible  bool      `json:"b2b_visible"`
	CreatedAt   time.Time `json:"created_at"`
}

// CatalogItemDTO is the storefront view. PriceBGN/PriceEUR are empty when
// the store hides prices; B2BPrice is set only for authenticated partners.
type CatalogItemDTO struct {
	ID        string `json:"id"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	LatinName string `json:"latin_name,omitempty"`
	Category  string `json:"category,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
	PriceBGN  string `json:"price_bgn,omitempty"`
	PriceEUR  string `json:"price_eur,omitempty"`
	B2BPrice  string `json:"b2b_price,omitempty"`
}
