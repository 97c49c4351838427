package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	domainErrors "github.com/chlagouGhassen/pizza-petes/internal/domain/errors"
	"github.com/chlagouGhassen/pizza-petes/internal/domain/model"
)

var (
	sizeMultiplierSmall  = decimal.RequireFromString("0.8")
	sizeMultiplierMedium = decimal.RequireFromString("0.9")
	sizeMultiplierLarge  = decimal.RequireFromString("1.0")

	toppingSurcharge      = decimal.RequireFromString("1.50")
	stuffedCrustSurcharge = decimal.RequireFromString("2.0")
)

// PriceConfiguration computes the unit price of one configured item:
//
//	basePrice * sizeMultiplier + |toppings| * 1.50 + crustSurcharge
//
// It is a pure function of the full configuration and is recomputed from
// scratch on every call; nothing is accumulated between edits, so two edit
// sequences reaching the same configuration always price identically.
// All arithmetic stays in decimals, rounding is left to presentation.
func PriceConfiguration(item model.CatalogItem, size model.SizeOption, crust model.CrustOption, toppings []string) (decimal.Decimal, error) {
	multiplier, err := sizeMultiplier(size)
	if err != nil {
		return decimal.Zero, err
	}
	if !crust.Valid() {
		return decimal.Zero, fmt.Errorf("%w: unknown crust %q", domainErrors.ErrInvalidConfiguration, crust)
	}
	if err := validateToppings(item, toppings); err != nil {
		return decimal.Zero, err
	}

	price := item.BasePrice.Mul(multiplier)
	price = price.Add(toppingSurcharge.Mul(decimal.NewFromInt(int64(len(toppings)))))
	if crust == model.CrustStuffed {
		price = price.Add(stuffedCrustSurcharge)
	}
	return price, nil
}

func sizeMultiplier(size model.SizeOption) (decimal.Decimal, error) {
	switch size {
	case model.SizeSmall:
		return sizeMultiplierSmall, nil
	case model.SizeMedium:
		return sizeMultiplierMedium, nil
	case model.SizeLarge:
		return sizeMultiplierLarge, nil
	}
	return decimal.Zero, fmt.Errorf("%w: unknown size %q", domainErrors.ErrInvalidConfiguration, size)
}

func validateToppings(item model.CatalogItem, toppings []string) error {
	allowed := make(map[string]struct{})
	for _, t := range item.AllowedToppings() {
		allowed[t] = struct{}{}
	}
	seen := make(map[string]struct{}, len(toppings))
	for _, t := range toppings {
		if _, ok := allowed[t]; !ok {
			return fmt.Errorf("%w: topping %q not offered for %s", domainErrors.ErrInvalidConfiguration, t, item.Name)
		}
		if _, ok := seen[t]; ok {
			return fmt.Errorf("%w: duplicate topping %q", domainErrors.ErrInvalidConfiguration, t)
		}
		seen[t] = struct{}{}
	}
	return nil
}
