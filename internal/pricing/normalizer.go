package pricing

import (
	"errors"

	"agromart/internal/model"
)

// Item-level validation failures. The order service surfaces these as an
// invalid-items rejection of the whole submission.
var (
	ErrItemAmountRequired  = errors.New("Item amount is required")
	ErrItemAmountNegative  = errors.New("Item amount must not be negative")
	ErrItemProductRequired = errors.New("Item product_id is required")
)

// NormalizeItems validates raw line items and projects them onto the
// recognised item fields. An explicit zero amount or product id is valid;
// absence is not. A single invalid item invalidates the whole batch.
// Client-supplied unit prices are dropped here and resolved later.
func NormalizeItems(payloads []model.OrderItemPayload) ([]model.OrderItem, error) {
	items := make([]model.OrderItem, 0, len(payloads))

	for _, p := range payloads {
		if p.Amount == nil {
			return nil, ErrItemAmountRequired
		}
		if *p.Amount < 0 {
			return nil, ErrItemAmountNegative
		}
		if p.ProductID == nil {
			return nil, ErrItemProductRequired
		}

		items = append(items, model.OrderItem{
			ProductID: *p.ProductID,
			PackingID: p.PackingID,
			Amount:    *p.Amount,
		})
	}

	return items, nil
}
