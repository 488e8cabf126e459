package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agromart/internal/model"
	"agromart/internal/pricing"
	"agromart/internal/repository"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	resolver     *pricing.Resolver
	now          func() time.Time
	logger       zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		resolver:     pricing.NewResolver(productRepo, logger),
		now:          time.Now,
		logger:       logger.With().Str("service", "order").Logger(),
	}
}

// Create validates, prices and persists a new order.
func (s *orderService) Create(ctx context.Context, payload *model.OrderPayload) error {
	order, err := s.assemble(ctx, payload)
	if err != nil {
		return err
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.orderRepo.CreateOrder(ctx, tx, &order.Order); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	if err = s.orderRepo.ReplaceItems(ctx, tx, order.ID, order.Items); err != nil {
		return fmt.Errorf("failed to create order items: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Int64("order_id", order.ID).
		Int64("customer_id", order.CustomerID).
		Int("item_count", len(order.Items)).
		Msg("order created")

	return nil
}

// Update validates, prices and rewrites an existing order. Items are
// replaced wholesale, never merged.
func (s *orderService) Update(ctx context.Context, id int64, payload *model.OrderPayload) error {
	order, err := s.assemble(ctx, payload)
	if err != nil {
		return err
	}
	order.ID = id

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.orderRepo.UpdateOrder(ctx, tx, &order.Order); err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	if err = s.orderRepo.ReplaceItems(ctx, tx, order.ID, order.Items); err != nil {
		return fmt.Errorf("failed to update order items: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	s.logger.Info().
		Int64("order_id", id).
		Int("item_count", len(order.Items)).
		Msg("order updated")

	return nil
}

// assemble turns a raw order payload into a persistable order: order-level
// validation, defaults for the optional fields, and item normalization and
// pricing. The assembled order is not persisted here.
func (s *orderService) assemble(ctx context.Context, payload *model.OrderPayload) (*model.FullOrder, error) {
	if payload == nil {
		return nil, model.NotProvided("Order not provided")
	}

	if payload.CustomerID == nil {
		return nil, model.Validation("Invalid order", "Customer's id is required")
	}

	now := s.now()
	order := &model.FullOrder{
		Order: model.Order{
			CustomerID:   *payload.CustomerID,
			OrderDate:    now,
			DeliveryDate: now,
			Status:       model.OrderStatusRegistered,
			Observation:  payload.Observation,
		},
	}
	if payload.OrderDate != nil {
		order.OrderDate = *payload.OrderDate
	}
	if payload.DeliveryDate != nil {
		order.DeliveryDate = *payload.DeliveryDate
	}
	if payload.Status != nil {
		order.Status = *payload.Status
	}
	if payload.Discount != nil {
		order.Discount = *payload.Discount
	}
	if payload.Shipping != nil {
		order.Shipping = *payload.Shipping
	}

	items, err := pricing.NormalizeItems(payload.Items)
	if err != nil {
		return nil, model.InvalidItems(err.Error())
	}

	priced, err := s.resolver.ResolvePrices(ctx, items)
	if err != nil {
		var apiErr *model.Error
		if errors.As(err, &apiErr) {
			return nil, apiErr
		}
		return nil, fmt.Errorf("failed to resolve item prices: %w", err)
	}
	order.Items = priced

	return order, nil
}

// Get retrieves an order enriched with its customer and each item's product
// and packing records.
func (s *orderService) Get(ctx context.Context, id int64) (*model.FullOrder, error) {
	order, items, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		return nil, model.NotFound("Order not found")
	}

	full := &model.FullOrder{Order: *order, Items: items}
	if err := s.enrich(ctx, full); err != nil {
		return nil, err
	}

	return full, nil
}

// List retrieves all orders, enriched like Get.
func (s *orderService) List(ctx context.Context) ([]model.FullOrder, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	for i := range orders {
		if err := s.enrich(ctx, &orders[i]); err != nil {
			return nil, err
		}
	}

	return orders, nil
}

// enrich attaches the customer and per-item product/packing records to an
// order read from storage. A dangling reference leaves the field unset
// rather than failing the read.
func (s *orderService) enrich(ctx context.Context, order *model.FullOrder) error {
	customer, err := s.customerRepo.GetByID(ctx, order.CustomerID)
	if err != nil {
		return fmt.Errorf("failed to fetch order customer: %w", err)
	}
	order.Customer = customer

	var packings map[int64]model.Packing
	for i := range order.Items {
		item := &order.Items[i]

		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return fmt.Errorf("failed to fetch item product: %w", err)
		}
		if product != nil {
			p := product.Product
			item.Product = &p
		}

		if item.PackingID == nil {
			continue
		}

		if packings == nil {
			list, err := s.productRepo.ListPackings(ctx)
			if err != nil {
				return fmt.Errorf("failed to list packings: %w", err)
			}
			packings = make(map[int64]model.Packing, len(list))
			for _, k := range list {
				packings[k.ID] = k
			}
		}

		if k, ok := packings[*item.PackingID]; ok {
			packing := k
			item.Packing = &packing
		}
	}

	return nil
}

// Delete removes an order and its items.
func (s *orderService) Delete(ctx context.Context, id int64) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	s.logger.Info().Int64("order_id", id).Msg("order deleted")

	return nil
}

// Finish moves a Registered order to Finished.
func (s *orderService) Finish(ctx context.Context, id int64) error {
	return s.transition(ctx, id, model.OrderStatusFinished)
}

// Cancel moves a Registered order to Canceled.
func (s *orderService) Cancel(ctx context.Context, id int64) error {
	return s.transition(ctx, id, model.OrderStatusCanceled)
}

// transition applies the status machine: only a Registered order may move,
// and the write touches nothing but the status. The conditional write in the
// repository backstops the window between the read and the write.
func (s *orderService) transition(ctx context.Context, id int64, target model.OrderStatus) error {
	order, _, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return model.NotFound("Order not found")
	}

	if err := terminalConflict(order.Status); err != nil {
		return err
	}

	updated, err := s.orderRepo.UpdateStatus(ctx, id, target)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	if !updated {
		// A concurrent transition won between our read and write; report the
		// state it left behind.
		current, _, err := s.orderRepo.GetByID(ctx, id)
		if err == nil && current != nil {
			if cErr := terminalConflict(current.Status); cErr != nil {
				return cErr
			}
		}
		return model.InvalidState("The order is no longer registered")
	}

	s.logger.Info().
		Int64("order_id", id).
		Str("status", string(target)).
		Msg("order status updated")

	return nil
}

// terminalConflict reports the rejection for an order already in a terminal
// status, or nil when a transition is still allowed.
func terminalConflict(status model.OrderStatus) error {
	switch status {
	case model.OrderStatusFinished:
		return model.InvalidState("The order is already finished")
	case model.OrderStatusCanceled:
		return model.InvalidState("The order is already canceled")
	}
	return nil
}

// Statuses returns every status an order can take.
func (s *orderService) Statuses() []model.OrderStatus {
	return model.OrderStatuses()
}
