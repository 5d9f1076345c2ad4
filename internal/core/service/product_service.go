package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/freshmart/inventory-api/internal/api/metrics"
	"github.com/freshmart/inventory-api/internal/core/domain"
	"github.com/freshmart/inventory-api/internal/core/ports"
)

type ProductService struct {
	repo   ports.ProductRepository
	cache  SummaryCache // optional; stale owner summaries are dropped on writes
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, cache SummaryCache, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, logger: logger}
}

func (s *ProductService) invalidateSummary(ctx context.Context, ownerIDs ...string) {
	if s.cache == nil {
		return
	}
	for _, id := range ownerIDs {
		if id == "" {
			continue
		}
		if err := s.cache.Invalidate(ctx, id); err != nil {
			s.logger.Warn().Err(err).Str("owner_id", id).Msg("summary cache invalidation failed")
		}
	}
}

// Create validates the input, derives the initial status from the stock
// level, and persists the product under the given owner.
func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if err := validateProductFields(input.Name, input.Category, input.Price, input.Stock); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:        strings.TrimSpace(input.Name),
		Category:    domain.Category(input.Category),
		Price:       input.Price,
		Description: strings.TrimSpace(input.Description),
		UserID:      input.OwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	product.SetStock(input.Stock)

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, err
	}

	metrics.ProductsCreatedTotal.WithLabelValues(string(created.Category)).Inc()
	s.invalidateSummary(ctx, created.UserID)
	s.logger.Info().Str("product_id", created.ID).Str("owner_id", input.OwnerID).Msg("product created")
	return created, nil
}

// Get retrieves a single product. Reads are visible to every authenticated
// user, so no owner filter is applied.
func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns every product regardless of owner.
func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.FindAll(ctx)
}

// Update applies the patch verbatim: any field present overwrites the stored
// value, including the owner. Status is recomputed only when the patch
// changes the stock level; UpdatedAt is refreshed on every save.
func (s *ProductService) Update(ctx context.Context, id string, patch ports.UpdateProductInput) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previousOwner := product.UserID

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", domain.ErrValidation)
		}
		product.Name = name
	}
	if patch.Category != nil {
		category := domain.Category(*patch.Category)
		if !category.IsValid() {
			return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, *patch.Category)
		}
		product.Category = category
	}
	if patch.Price != nil {
		if *patch.Price < 0 {
			return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
		}
		product.Price = *patch.Price
	}
	if patch.Description != nil {
		product.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.OwnerID != nil {
		product.UserID = *patch.OwnerID
	}
	if patch.Stock != nil {
		if *patch.Stock < 0 {
			return nil, fmt.Errorf("%w: stock must not be negative", domain.ErrValidation)
		}
		product.SetStock(*patch.Stock)
	}

	product.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		return nil, err
	}
	if product.UserID != previousOwner {
		s.invalidateSummary(ctx, previousOwner, product.UserID)
	} else {
		s.invalidateSummary(ctx, product.UserID)
	}
	return product, nil
}

// Delete removes the product. Historical sales keep their denormalized name
// and amount snapshots, so the ledger is untouched.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return err
	}
	metrics.ProductsDeletedTotal.Inc()
	s.invalidateSummary(ctx, product.UserID)
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func validateProductFields(name, category string, price float64, stock int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !domain.Category(category).IsValid() {
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, category)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", domain.ErrValidation)
	}
	return nil
}
