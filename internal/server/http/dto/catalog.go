package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CatalogItemRequest describes an item create/update payload.
type CatalogItemRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"base_price"`
	Image       string          `json:"image"`
	Toppings    []string        `json:"toppings"`
	Category    string          `json:"category"`
	IsAvailable *bool           `json:"is_available"`
}

// CatalogItemResponse describes a menu item.
type CatalogItemResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"base_price"`
	Image       string          `json:"image"`
	Toppings    []string        `json:"toppings"`
	Category    string          `json:"category"`
	IsAvailable bool            `json:"is_available"`
	CreatedAt   time.Time       `json:"created_at"`
}
