package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category groups catalog items on the menu.
type Category string

const (
	CategoryClassic    Category = "Classic"
	CategorySpecialty  Category = "Specialty"
	CategoryVegetarian Category = "Vegetarian"
	CategoryMeatLovers Category = "Meat Lovers"
)

// Valid reports whether the category is one of the known menu groups.
func (c Category) Valid() bool {
	switch c {
	case CategoryClassic, CategorySpecialty, CategoryVegetarian, CategoryMeatLovers:
		return true
	}
	return false
}

// Categories lists all known menu groups.
func Categories() []Category {
	return []Category{CategoryClassic, CategorySpecialty, CategoryVegetarian, CategoryMeatLovers}
}

// ToppingVocabulary is the fixed set of extra toppings offered with any
// catalog item that does not restrict toppings itself.
var ToppingVocabulary = []string{
	"Pepperoni", "Mushrooms", "Onions", "Sausage",
	"Bacon", "Extra cheese", "Green peppers", "Black olives",
}

// CatalogItem is a sellable base pizza. Read-only for pricing: a pricing
// computation treats the item as an immutable value object.
type CatalogItem struct {
	ID          uuid.UUID
	Name        string
	Description string
	BasePrice   decimal.Decimal
	Image       string
	Toppings    []string
	Category    Category
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AllowedToppings returns the topping vocabulary permitted for the item:
// the item's own list when it declares one, the global vocabulary otherwise.
func (i CatalogItem) AllowedToppings() []string {
	if len(i.Toppings) > 0 {
		return i.Toppings
	}
	return ToppingVocabulary
}
