package service

import (
	"context"
	"fmt"

	"catalog-api/internal/model"
	"catalog-api/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves up to limit products in insertion order, skipping skip rows.
// Negative values fall back to the defaults (10 and 0). No upper bound is
// enforced on limit; a limit of zero yields an empty page.
func (s *productService) List(ctx context.Context, limit, skip int) ([]model.Product, error) {
	if limit < 0 {
		limit = 10
	}
	if skip < 0 {
		skip = 0
	}

	products, err := s.productRepo.List(ctx, limit, skip)
	if err != nil {
		s.logger.Error().Err(err).
			Int("limit", limit).
			Int("skip", skip).
			Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.logger.Debug().
		Int("count", len(products)).
		Int("limit", limit).
		Int("skip", skip).
		Msg("listed products")

	return products, nil
}

// Get retrieves a single product by ID.
func (s *productService) Get(ctx context.Context, id int) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Create inserts a new product and returns it with its assigned ID.
func (s *productService) Create(ctx context.Context, title, description string, price float64) (*model.Product, error) {
	product := model.Product{
		Title:       title,
		Description: description,
		Price:       price,
	}

	created, err := s.productRepo.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("title", title).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().Int("product_id", created.ID).Str("title", title).Msg("product created")
	return created, nil
}

// Update overwrites title and price of an existing product; description is
// overwritten only when non-nil (an explicit empty string still overwrites).
func (s *productService) Update(ctx context.Context, id int, title string, description *string, price float64) (*model.Product, error) {
	existing, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to get product for update")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if existing == nil {
		s.logger.Debug().Int("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	existing.Title = title
	existing.Price = price
	if description != nil {
		existing.Description = *description
	}

	updated, err := s.productRepo.Update(ctx, *existing)
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	// The row vanished between the read and the write.
	if updated == nil {
		s.logger.Debug().Int("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	s.logger.Info().Int("product_id", id).Msg("product updated")
	return updated, nil
}

// Delete removes a product by ID.
func (s *productService) Delete(ctx context.Context, id int) error {
	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if !deleted {
		s.logger.Debug().Int("product_id", id).Msg("product not found")
		return model.ErrProductNotFound
	}

	s.logger.Info().Int("product_id", id).Msg("product deleted")
	return nil
}
