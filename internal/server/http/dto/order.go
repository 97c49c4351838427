package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddressPayload carries a delivery address over the wire.
type AddressPayload struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

// LineItemPayload describes one configured item in a create-order request.
type LineItemPayload struct {
	CatalogItemID string   `json:"catalog_item_id"`
	Size          string   `json:"size"`
	Crust         string   `json:"crust"`
	Toppings      []string `json:"toppings"`
	Quantity      int      `json:"quantity"`
}

// CreateOrderRequest describes the create-order payload.
type CreateOrderRequest struct {
	Items           []LineItemPayload `json:"items"`
	DeliveryMethod  string            `json:"delivery_method"`
	PaymentMethod   string            `json:"payment_method"`
	DeliveryAddress *AddressPayload   `json:"delivery_address,omitempty"`
}

// OrderLineItemResponse describes one priced line of an order.
type OrderLineItemResponse struct {
	CatalogItemID string          `json:"catalog_item_id"`
	Size          string          `json:"size"`
	Crust         string          `json:"crust"`
	Toppings      []string        `json:"toppings"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

// OrderResponse describes a stored order. IsFavorite is derived from the
// account's favorite reference at response time, it is not a stored field.
type OrderResponse struct {
	ID              string                  `json:"id"`
	Items           []OrderLineItemResponse `json:"items"`
	DeliveryMethod  string                  `json:"delivery_method"`
	PaymentMethod   string                  `json:"payment_method"`
	DeliveryAddress *AddressPayload         `json:"delivery_address,omitempty"`
	Total           decimal.Decimal         `json:"total"`
	Status          string                  `json:"status"`
	IsFavorite      bool                    `json:"is_favorite"`
	CreatedAt       time.Time               `json:"created_at"`
}

// SurpriseResponse describes a randomly composed configuration, priced but
// not persisted.
type SurpriseResponse struct {
	Item           LineItemPayload `json:"item"`
	DeliveryMethod string          `json:"delivery_method"`
	PaymentMethod  string          `json:"payment_method"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
}
