package service

import (
	"context"
	"fmt"

	"agromart/internal/model"
	"agromart/internal/repository"

	"github.com/rs/zerolog"
)

// customerService implements CustomerService.
type customerService struct {
	repo   repository.CustomerRepository
	logger zerolog.Logger
}

// NewCustomerService creates a new customer service.
func NewCustomerService(repo repository.CustomerRepository, logger zerolog.Logger) CustomerService {
	return &customerService{
		repo:   repo,
		logger: logger.With().Str("service", "customer").Logger(),
	}
}

// Create validates and persists a new customer.
func (s *customerService) Create(ctx context.Context, payload *model.CustomerPayload) error {
	customer, err := buildCustomer(payload)
	if err != nil {
		return err
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		s.logger.Error().Err(err).Msg("failed to create customer")
		return fmt.Errorf("failed to create customer: %w", err)
	}

	s.logger.Info().Int64("customer_id", customer.ID).Msg("customer created")

	return nil
}

// Update validates and rewrites an existing customer.
func (s *customerService) Update(ctx context.Context, id int64, payload *model.CustomerPayload) error {
	customer, err := buildCustomer(payload)
	if err != nil {
		return err
	}
	customer.ID = id

	if err := s.repo.Update(ctx, customer); err != nil {
		s.logger.Error().Err(err).Int64("customer_id", id).Msg("failed to update customer")
		return fmt.Errorf("failed to update customer: %w", err)
	}

	return nil
}

// Get retrieves a single customer.
func (s *customerService) Get(ctx context.Context, id int64) (*model.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("customer_id", id).Msg("failed to get customer")
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer == nil {
		return nil, model.NotFound("Customer not found")
	}

	return customer, nil
}

// List retrieves all customers.
func (s *customerService) List(ctx context.Context) ([]model.Customer, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list customers")
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, nil
}

// Delete removes a customer.
func (s *customerService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("customer_id", id).Msg("failed to delete customer")
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	return nil
}

// buildCustomer projects a payload onto a customer record, enforcing the
// required fields. Anything the client sent outside the payload schema was
// already dropped at decode time.
func buildCustomer(payload *model.CustomerPayload) (*model.Customer, error) {
	if payload == nil {
		return nil, model.NotProvided("Customer not provided")
	}

	if payload.Name == nil || *payload.Name == "" {
		return nil, model.Validation("Invalid customer", "Name is required")
	}
	if payload.Email == nil || *payload.Email == "" {
		return nil, model.Validation("Invalid customer", "Email is required")
	}
	if payload.Address == nil || *payload.Address == "" {
		return nil, model.Validation("Invalid customer", "Address is required")
	}
	if payload.Phone == nil || *payload.Phone == "" {
		return nil, model.Validation("Invalid customer", "Phone is required")
	}

	return &model.Customer{
		Name:        *payload.Name,
		Email:       *payload.Email,
		Address:     *payload.Address,
		Phone:       *payload.Phone,
		Observation: payload.Observation,
	}, nil
}
