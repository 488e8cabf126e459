package pricing

import (
	"context"
	"fmt"

	"agromart/internal/model"

	"github.com/rs/zerolog"
)

// Item resolution failure details, distinguished for the caller.
const (
	DetailMissingPackingID = "Items without packing_id, but the product is packed"
	DetailPackingNotFound  = "Item packing not found"
	DetailProductNotFound  = "Item product not found"
)

// Catalog is the product collaborator consulted during price resolution.
// Lookups are read-only; resolution never reserves or locks anything.
type Catalog interface {
	// GetByID returns the full product record, packings included, or nil when
	// the product does not exist.
	GetByID(ctx context.Context, id int64) (*model.FullProduct, error)

	// ListPackings returns all known packing definitions.
	ListPackings(ctx context.Context) ([]model.Packing, error)
}

// Resolver computes the authoritative unit price of each order item from the
// current catalogue state.
type Resolver struct {
	catalog Catalog
	logger  zerolog.Logger
}

// NewResolver creates a price resolver backed by the given catalogue.
func NewResolver(catalog Catalog, logger zerolog.Logger) *Resolver {
	return &Resolver{
		catalog: catalog,
		logger:  logger.With().Str("component", "price-resolver").Logger(),
	}
}

// ResolvePrices resolves each item's product and, for packed products, its
// packing, and overwrites the item's unit price with the catalogue value.
// Items are priced in order; the first failure rejects the whole batch.
func (r *Resolver) ResolvePrices(ctx context.Context, items []model.OrderItem) ([]model.OrderItem, error) {
	if len(items) == 0 {
		return items, nil
	}

	// One packing lookup per batch, not one per item.
	packings, err := r.catalog.ListPackings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list packings: %w", err)
	}

	known := make(map[int64]model.Packing, len(packings))
	for _, k := range packings {
		known[k.ID] = k
	}

	resolved := make([]model.OrderItem, len(items))
	for i, item := range items {
		product, err := r.catalog.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch product %d: %w", item.ProductID, err)
		}
		if product == nil {
			r.logger.Warn().Int64("product_id", item.ProductID).Msg("order item references unknown product")
			return nil, model.InvalidItems(DetailProductNotFound)
		}

		if product.IsPacked {
			if item.PackingID == nil {
				r.logger.Warn().Int64("product_id", item.ProductID).Msg("packed product ordered without packing")
				return nil, model.InvalidItems(DetailMissingPackingID)
			}

			price, ok := packedPrice(product, known, *item.PackingID)
			if !ok {
				r.logger.Warn().
					Int64("product_id", item.ProductID).
					Int64("packing_id", *item.PackingID).
					Msg("packing does not belong to product")
				return nil, model.InvalidItems(DetailPackingNotFound)
			}
			item.UnitPrice = price
		} else {
			// Flat-priced product: its own unit price governs and any packing
			// reference on the item is irrelevant for pricing.
			if product.UnitPrice != nil {
				item.UnitPrice = *product.UnitPrice
			} else {
				item.UnitPrice = 0
			}
		}

		resolved[i] = item
	}

	return resolved, nil
}

// packedPrice finds the price of the product-packing association matching the
// requested packing. The packing must be a known definition and its pricing
// entry must belong to this product.
func packedPrice(product *model.FullProduct, known map[int64]model.Packing, packingID int64) (float64, bool) {
	if _, ok := known[packingID]; !ok {
		return 0, false
	}

	for _, fp := range product.Packings {
		if fp.ID == packingID && fp.ProductPacking.ProductID == product.ID {
			return fp.ProductPacking.Price, true
		}
	}

	return 0, false
}
