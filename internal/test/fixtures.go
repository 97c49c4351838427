package test

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chlagouGhassen/pizza-petes/internal/domain/model"
)

// CatalogItemFixture builds an available catalog item with the given price.
func CatalogItemFixture(name, price string) model.CatalogItem {
	return model.CatalogItem{
		ID:          uuid.New(),
		Name:        name,
		Description: name + " description",
		BasePrice:   decimal.RequireFromString(price),
		Category:    model.CategoryClassic,
		IsAvailable: true,
	}
}

// SeedCatalog returns the standard menu used across tests.
func SeedCatalog() []model.CatalogItem {
	items := []model.CatalogItem{
		CatalogItemFixture("Margherita Classic", "12.999"),
		CatalogItemFixture("Pepperoni Supreme", "15.999"),
		CatalogItemFixture("Veggie Garden", "14.499"),
		CatalogItemFixture("Meat Feast", "17.999"),
		CatalogItemFixture("Hawaiian Paradise", "14.999"),
		CatalogItemFixture("BBQ Chicken Deluxe", "16.499"),
	}
	items[1].Category = model.CategorySpecialty
	items[2].Category = model.CategoryVegetarian
	items[3].Category = model.CategoryMeatLovers
	return items
}

// LineItemFixture builds a minimal valid line configuration for the item.
func LineItemFixture(itemID uuid.UUID) model.LineItemConfig {
	return model.LineItemConfig{
		CatalogItemID: itemID,
		Size:          model.SizeMedium,
		Crust:         model.CrustThin,
		Quantity:      1,
	}
}
