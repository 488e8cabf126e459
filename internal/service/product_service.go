package service

import (
	"context"
	"fmt"

	"agromart/internal/model"
	"agromart/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	repo   repository.ProductRepository
	logger zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		repo:   repo,
		logger: logger.With().Str("service", "product").Logger(),
	}
}

// Create validates and persists a new product.
func (s *productService) Create(ctx context.Context, payload *model.ProductPayload) error {
	product, err := buildProduct(payload)
	if err != nil {
		return err
	}

	if err := s.repo.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().Int64("product_id", product.ID).Msg("product created")

	return nil
}

// Update validates and rewrites an existing product.
func (s *productService) Update(ctx context.Context, id int64, payload *model.ProductPayload) error {
	product, err := buildProduct(payload)
	if err != nil {
		return err
	}
	product.ID = id

	if err := s.repo.Update(ctx, product); err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update product")
		return fmt.Errorf("failed to update product: %w", err)
	}

	return nil
}

// Get retrieves a product with its category, features and packings.
func (s *productService) Get(ctx context.Context, id int64) (*model.FullProduct, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		return nil, model.NotFound("Product not found")
	}

	return product, nil
}

// List retrieves all products.
func (s *productService) List(ctx context.Context) ([]model.FullProduct, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

// Delete removes a product.
func (s *productService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

// CreateCategory validates and persists a new category.
func (s *productService) CreateCategory(ctx context.Context, payload *model.CategoryPayload) error {
	category, err := buildCategory(payload)
	if err != nil {
		return err
	}

	if err := s.repo.CreateCategory(ctx, category); err != nil {
		s.logger.Error().Err(err).Msg("failed to create category")
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

// UpdateCategory validates and rewrites an existing category.
func (s *productService) UpdateCategory(ctx context.Context, id int64, payload *model.CategoryPayload) error {
	category, err := buildCategory(payload)
	if err != nil {
		return err
	}
	category.ID = id

	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		s.logger.Error().Err(err).Int64("category_id", id).Msg("failed to update category")
		return fmt.Errorf("failed to update category: %w", err)
	}

	return nil
}

// ListCategories retrieves all categories.
func (s *productService) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// DeleteCategory removes a category.
func (s *productService) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("category_id", id).Msg("failed to delete category")
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}

// CreateFeature validates and persists a new feature.
func (s *productService) CreateFeature(ctx context.Context, payload *model.FeaturePayload) error {
	feature, err := buildFeature(payload)
	if err != nil {
		return err
	}

	if err := s.repo.CreateFeature(ctx, feature); err != nil {
		s.logger.Error().Err(err).Msg("failed to create feature")
		return fmt.Errorf("failed to create feature: %w", err)
	}

	return nil
}

// UpdateFeature validates and rewrites an existing feature.
func (s *productService) UpdateFeature(ctx context.Context, id int64, payload *model.FeaturePayload) error {
	feature, err := buildFeature(payload)
	if err != nil {
		return err
	}
	feature.ID = id

	if err := s.repo.UpdateFeature(ctx, feature); err != nil {
		s.logger.Error().Err(err).Int64("feature_id", id).Msg("failed to update feature")
		return fmt.Errorf("failed to update feature: %w", err)
	}

	return nil
}

// ListFeatures retrieves all features.
func (s *productService) ListFeatures(ctx context.Context) ([]model.Feature, error) {
	features, err := s.repo.ListFeatures(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list features")
		return nil, fmt.Errorf("failed to list features: %w", err)
	}

	return features, nil
}

// DeleteFeature removes a feature.
func (s *productService) DeleteFeature(ctx context.Context, id int64) error {
	if err := s.repo.DeleteFeature(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("feature_id", id).Msg("failed to delete feature")
		return fmt.Errorf("failed to delete feature: %w", err)
	}

	return nil
}

// CreatePacking validates and persists a new packing definition.
func (s *productService) CreatePacking(ctx context.Context, payload *model.PackingPayload) error {
	packing, err := buildPacking(payload)
	if err != nil {
		return err
	}

	if err := s.repo.CreatePacking(ctx, packing); err != nil {
		s.logger.Error().Err(err).Msg("failed to create packing")
		return fmt.Errorf("failed to create packing: %w", err)
	}

	return nil
}

// UpdatePacking validates and rewrites an existing packing definition.
func (s *productService) UpdatePacking(ctx context.Context, id int64, payload *model.PackingPayload) error {
	packing, err := buildPacking(payload)
	if err != nil {
		return err
	}
	packing.ID = id

	if err := s.repo.UpdatePacking(ctx, packing); err != nil {
		s.logger.Error().Err(err).Int64("packing_id", id).Msg("failed to update packing")
		return fmt.Errorf("failed to update packing: %w", err)
	}

	return nil
}

// ListPackings retrieves all packing definitions.
func (s *productService) ListPackings(ctx context.Context) ([]model.Packing, error) {
	packings, err := s.repo.ListPackings(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list packings")
		return nil, fmt.Errorf("failed to list packings: %w", err)
	}

	return packings, nil
}

// DeletePacking removes a packing definition.
func (s *productService) DeletePacking(ctx context.Context, id int64) error {
	if err := s.repo.DeletePacking(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("packing_id", id).Msg("failed to delete packing")
		return fmt.Errorf("failed to delete packing: %w", err)
	}

	return nil
}

func buildProduct(payload *model.ProductPayload) (*model.Product, error) {
	if payload == nil {
		return nil, model.NotProvided("Product not provided")
	}

	if payload.Name == nil || *payload.Name == "" {
		return nil, model.Validation("Invalid product", "Name is required")
	}
	if payload.CategoryID == nil {
		return nil, model.Validation("Invalid product", "Category's id is required")
	}

	product := &model.Product{
		Name:       *payload.Name,
		CategoryID: *payload.CategoryID,
		UnitPrice:  payload.UnitPrice,
	}
	if payload.Description != nil {
		product.Description = *payload.Description
	}
	if payload.IsPacked != nil {
		product.IsPacked = *payload.IsPacked
	}
	if payload.UnitCost != nil {
		product.UnitCost = *payload.UnitCost
	}
	if payload.IsActivated != nil {
		product.IsActivated = *payload.IsActivated
	} else {
		product.IsActivated = true
	}

	return product, nil
}

func buildCategory(payload *model.CategoryPayload) (*model.Category, error) {
	if payload == nil {
		return nil, model.NotProvided("Category not provided")
	}

	if payload.Name == nil || *payload.Name == "" {
		return nil, model.Validation("Invalid category", "Name is required")
	}
	if payload.ImageURL == nil || *payload.ImageURL == "" {
		return nil, model.Validation("Invalid category", "Image URL is required")
	}

	return &model.Category{
		Name:     *payload.Name,
		ImageURL: *payload.ImageURL,
		ParentID: payload.ParentID,
	}, nil
}

func buildFeature(payload *model.FeaturePayload) (*model.Feature, error) {
	if payload == nil {
		return nil, model.NotProvided("Feature not provided")
	}

	if payload.Name == nil || *payload.Name == "" {
		return nil, model.Validation("Invalid feature", "Name is required")
	}

	return &model.Feature{Name: *payload.Name}, nil
}

func buildPacking(payload *model.PackingPayload) (*model.Packing, error) {
	if payload == nil {
		return nil, model.NotProvided("Packing not provided")
	}

	if payload.Name == nil || *payload.Name == "" {
		return nil, model.Validation("Invalid packing", "Name is required")
	}
	if payload.Unit == nil || *payload.Unit == "" {
		return nil, model.Validation("Invalid packing", "Unit is required")
	}

	packing := &model.Packing{
		Name: *payload.Name,
		Unit: *payload.Unit,
	}
	if payload.Size != nil {
		packing.Size = *payload.Size
	}
	if payload.UnitAbbreviation != nil {
		packing.UnitAbbreviation = *payload.UnitAbbreviation
	}
	if payload.Cost != nil {
		packing.Cost = *payload.Cost
	}

	return packing, nil
}
