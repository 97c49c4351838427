package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SizeOption selects pizza size and drives the base price multiplier.
type SizeOption string

const (
	SizeSmall  SizeOption = "Small"
	SizeMedium SizeOption = "Medium"
	SizeLarge  SizeOption = "Large"
)

// Valid reports whether the size is one of the known options.
func (s SizeOption) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// CrustOption selects crust style.
type CrustOption string

const (
	CrustThin    CrustOption = "Thin Crust"
	CrustThick   CrustOption = "Thick Crust"
	CrustStuffed CrustOption = "Stuffed Crust"
)

// Valid reports whether the crust is one of the known options.
func (c CrustOption) Valid() bool {
	switch c {
	case CrustThin, CrustThick, CrustStuffed:
		return true
	}
	return false
}

// DeliveryMethod describes how the order reaches the buyer.
type DeliveryMethod string

const (
	DeliveryCarryOut DeliveryMethod = "CarryOut"
	DeliveryCourier  DeliveryMethod = "Delivery"
)

// Valid reports whether the delivery method is known.
func (d DeliveryMethod) Valid() bool {
	return d == DeliveryCarryOut || d == DeliveryCourier
}

// PaymentMethod describes how the buyer pays.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "Cash"
	PaymentCard PaymentMethod = "Card"
)

// Valid reports whether the payment method is known.
func (p PaymentMethod) Valid() bool {
	return p == PaymentCash || p == PaymentCard
}

// OrderStatus describes order fulfilment lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusPreparing OrderStatus = "Preparing"
	OrderStatusReady     OrderStatus = "Ready"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCompleted OrderStatus = "Completed"
)

// DeliveryAddress is required for courier delivery.
type DeliveryAddress struct {
	Street  string
	City    string
	State   string
	ZipCode string
}

// Complete reports whether the address carries the fields delivery requires.
func (a DeliveryAddress) Complete() bool {
	return a.Street != "" && a.City != "" && a.State != ""
}

// LineItemConfig is a buyer's customization of one catalog item. It is
// request-scoped: pricing turns it into an OrderLineItem.
type LineItemConfig struct {
	CatalogItemID uuid.UUID
	Size          SizeOption
	Crust         CrustOption
	Toppings      []string
	Quantity      int
}

// OrderLineItem is a priced line of an order, immutable once created.
// Subtotal always equals UnitPrice times Quantity, it is never stored
// apart from that relation.
type OrderLineItem struct {
	CatalogItemID uuid.UUID
	Size          SizeOption
	Crust         CrustOption
	Toppings      []string
	Quantity      int
	UnitPrice     decimal.Decimal
	Subtotal      decimal.Decimal
}

// Order is a placed, priced order. Total always equals the sum of the
// line item subtotals. There is no favorite flag on the order itself:
// it is derived from the account's favorite order reference at read time.
type Order struct {
	ID              uuid.UUID
	AccountID       int64
	Items           []OrderLineItem
	DeliveryMethod  DeliveryMethod
	PaymentMethod   PaymentMethod
	DeliveryAddress *DeliveryAddress
	Total           decimal.Decimal
	Status          OrderStatus
	CreatedAt       time.Time
}

// SurpriseSelection is a randomly composed, fully valid configuration.
// It is returned to the buyer for review and is never persisted directly.
type SurpriseSelection struct {
	Item           LineItemConfig
	DeliveryMethod DeliveryMethod
	PaymentMethod  PaymentMethod
	UnitPrice      decimal.Decimal
}
