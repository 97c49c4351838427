package usecase_test

import (
	. "github.com/chlagouGhassen/pizza-petes/internal/usecase"

	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/chlagouGhassen/pizza-petes/internal/domain/errors"
	"github.com/chlagouGhassen/pizza-petes/internal/domain/model"
	"github.com/chlagouGhassen/pizza-petes/internal/test"
)

func TestPriceConfiguration(t *testing.T) {
	item := test.CatalogItemFixture("Margherita Classic", "12.999")

	tests := []struct {
		name     string
		size     model.SizeOption
		crust    model.CrustOption
		toppings []string
		want     string
	}{
		{
			name:  "medium thin no toppings",
			size:  model.SizeMedium,
			crust: model.CrustThin,
			want:  "11.6991",
		},
		{
			name:     "medium thin one topping",
			size:     model.SizeMedium,
			crust:    model.CrustThin,
			toppings: []string{"Mushrooms"},
			want:     "13.1991",
		},
		{
			name:  "small stuffed",
			size:  model.SizeSmall,
			crust: model.CrustStuffed,
			want:  "12.3992",
		},
		{
			name:     "large thick three toppings",
			size:     model.SizeLarge,
			crust:    model.CrustThick,
			toppings: []string{"Pepperoni", "Onions", "Bacon"},
			want:     "17.499",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := PriceConfiguration(item, tc.size, tc.crust, tc.toppings)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if want := decimal.RequireFromString(tc.want); !got.Equal(want) {
				t.Fatalf("price = %s, want %s", got, want)
			}
		})
	}
}

func TestPriceConfigurationIsPathIndependent(t *testing.T) {
	item := test.CatalogItemFixture("Pepperoni Supreme", "15.999")
	toppings := []string{"Bacon", "Onions"}

	// The same configuration must price identically no matter how many
	// intermediate edits preceded it, so repeated calls with the final
	// state are the whole contract.
	first, err := PriceConfiguration(item, model.SizeLarge, model.CrustStuffed, toppings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		_, _ = PriceConfiguration(item, model.SizeSmall, model.CrustThin, nil)
		again, err := PriceConfiguration(item, model.SizeLarge, model.CrustStuffed, toppings)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !again.Equal(first) {
			t.Fatalf("price drifted across calls: %s vs %s", again, first)
		}
	}
}

func TestPriceConfigurationRejectsUnknownOptions(t *testing.T) {
	item := test.CatalogItemFixture("Margherita Classic", "12.999")

	if _, err := PriceConfiguration(item, "Gigantic", model.CrustThin, nil); !errors.Is(err, domainErrors.ErrInvalidConfiguration) {
		t.Fatalf("expected invalid configuration for unknown size, got %v", err)
	}
	if _, err := PriceConfiguration(item, model.SizeSmall, "Deep Dish", nil); !errors.Is(err, domainErrors.ErrInvalidConfiguration) {
		t.Fatalf("expected invalid configuration for unknown crust, got %v", err)
	}
}

func TestPriceConfigurationRejectsBadToppings(t *testing.T) {
	item := test.CatalogItemFixture("Margherita Classic", "12.999")

	if _, err := PriceConfiguration(item, model.SizeMedium, model.CrustThin, []string{"Pineapple"}); !errors.Is(err, domainErrors.ErrInvalidConfiguration) {
		t.Fatalf("expected invalid configuration for unknown topping, got %v", err)
	}
	if _, err := PriceConfiguration(item, model.SizeMedium, model.CrustThin, []string{"Bacon", "Bacon"}); !errors.Is(err, domainErrors.ErrInvalidConfiguration) {
		t.Fatalf("expected invalid configuration for duplicate topping, got %v", err)
	}
}

func TestPriceConfigurationItemToppingsOverrideVocabulary(t *testing.T) {
	item := test.CatalogItemFixture("Hawaiian Paradise", "14.999")
	item.Toppings = []string{"Ham", "Pineapple"}

	if _, err := PriceConfiguration(item, model.SizeLarge, model.CrustThin, []string{"Pineapple"}); err != nil {
		t.Fatalf("item-listed topping rejected: %v", err)
	}
	if _, err := PriceConfiguration(item, model.SizeLarge, model.CrustThin, []string{"Bacon"}); !errors.Is(err, domainErrors.ErrInvalidConfiguration) {
		t.Fatalf("expected vocabulary topping to be rejected when item restricts, got %v", err)
	}
}
