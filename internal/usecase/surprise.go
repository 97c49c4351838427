package usecase

import (
	"context"
	"fmt"
	"math/rand"

	domainErrors "github.com/chlagouGhassen/pizza-petes/internal/domain/errors"
	"github.com/chlagouGhassen/pizza-petes/internal/domain/model"
	"github.com/chlagouGhassen/pizza-petes/internal/domain/repository"
)

const (
	surpriseMaxQuantity = 3
	surpriseMaxToppings = 4
)

var (
	surpriseSizes      = []model.SizeOption{model.SizeSmall, model.SizeMedium, model.SizeLarge}
	surpriseCrusts     = []model.CrustOption{model.CrustThin, model.CrustThick, model.CrustStuffed}
	surpriseDeliveries = []model.DeliveryMethod{model.DeliveryCarryOut, model.DeliveryCourier}
	surprisePayments   = []model.PaymentMethod{model.PaymentCash, model.PaymentCard}
)

// SurpriseUseCase composes randomized, fully valid configurations.
type SurpriseUseCase struct {
	catalog repository.CatalogRepository
}

// NewSurpriseUseCase constructs SurpriseUseCase.
func NewSurpriseUseCase(catalog repository.CatalogRepository) *SurpriseUseCase {
	return &SurpriseUseCase{catalog: catalog}
}

// Compose builds a random configuration from the available catalog. The
// random source is supplied by the caller so a fixed seed reproduces the
// selection exactly. The composed configuration is priced through the
// regular pricing calculator, never by the composer itself, so a surprise
// order can never take a pricing path a manual order could not.
func (u *SurpriseUseCase) Compose(ctx context.Context, rng *rand.Rand) (*model.SurpriseSelection, error) {
	items, err := u.catalog.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	return ComposeSurprise(items, rng)
}

// ComposeSurprise picks one catalog item and uniform random size, crust,
// delivery method, payment method, a quantity in [1,3] and up to four
// distinct toppings sampled without replacement from the item's allowed
// vocabulary.
func ComposeSurprise(items []model.CatalogItem, rng *rand.Rand) (*model.SurpriseSelection, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: empty catalog", domainErrors.ErrInvalidConfiguration)
	}

	item := items[rng.Intn(len(items))]
	size := surpriseSizes[rng.Intn(len(surpriseSizes))]
	crust := surpriseCrusts[rng.Intn(len(surpriseCrusts))]
	toppings := sampleToppings(item.AllowedToppings(), rng)

	config := model.LineItemConfig{
		CatalogItemID: item.ID,
		Size:          size,
		Crust:         crust,
		Toppings:      toppings,
		Quantity:      1 + rng.Intn(surpriseMaxQuantity),
	}

	unitPrice, err := PriceConfiguration(item, config.Size, config.Crust, config.Toppings)
	if err != nil {
		return nil, err
	}

	return &model.SurpriseSelection{
		Item:           config,
		DeliveryMethod: surpriseDeliveries[rng.Intn(len(surpriseDeliveries))],
		PaymentMethod:  surprisePayments[rng.Intn(len(surprisePayments))],
		UnitPrice:      unitPrice,
	}, nil
}

func sampleToppings(vocabulary []string, rng *rand.Rand) []string {
	limit := surpriseMaxToppings
	if len(vocabulary) < limit {
		limit = len(vocabulary)
	}
	count := rng.Intn(limit + 1)
	if count == 0 {
		return nil
	}

	shuffled := make([]string, len(vocabulary))
	copy(shuffled, vocabulary)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:count]
}
