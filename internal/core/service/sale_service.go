package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/freshmart/inventory-api/internal/api/metrics"
	"github.com/freshmart/inventory-api/internal/core/domain"
	"github.com/freshmart/inventory-api/internal/core/ports"
)

type SaleService struct {
	productRepo ports.ProductRepository
	saleRepo    ports.SaleRepository
	// atomicStock selects the conditional single-document decrement instead
	// of the baseline read-then-save path. The baseline leaves a window
	// where two concurrent sales can both pass the stock check before
	// either decrement lands.
	atomicStock bool
	cache       SummaryCache // optional
	log         zerolog.Logger
}

func NewSaleService(productRepo ports.ProductRepository, saleRepo ports.SaleRepository, atomicStock bool, cache SummaryCache, log zerolog.Logger) *SaleService {
	return &SaleService{
		productRepo: productRepo,
		saleRepo:    saleRepo,
		atomicStock: atomicStock,
		cache:       cache,
		log:         log,
	}
}

// Record validates and persists a sale, then adjusts the product's stock.
func (s *SaleService) Record(ctx context.Context, in ports.RecordSaleInput) (*domain.Sale, error) {
	// 1. Quantity must be a positive integer.
	if in.Quantity <= 0 {
		metrics.SalesErrorsTotal.WithLabelValues("invalid_quantity").Inc()
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidQuantity)
	}

	// 2. Find the product without an owner filter — cashiers record sales
	// for inventory they did not create.
	product, err := s.productRepo.FindByID(ctx, in.ProductID)
	if err != nil {
		metrics.SalesErrorsTotal.WithLabelValues("product_not_found").Inc()
		return nil, fmt.Errorf("record sale: %w", err)
	}

	// 3. Stock check.
	if in.Quantity > product.Stock {
		metrics.SalesErrorsTotal.WithLabelValues("insufficient_stock").Inc()
		return nil, fmt.Errorf("record sale: %w", domain.ErrInsufficientStock)
	}

	// 4. Snapshot the sale at the current price and name; later product
	// edits or deletion never rewrite ledger entries.
	sale := &domain.Sale{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    in.Quantity,
		TotalAmount: product.Price * float64(in.Quantity),
		UserID:      in.RecorderID,
		Date:        time.Now().UTC(),
	}

	created, err := s.saleRepo.Create(ctx, sale)
	if err != nil {
		metrics.SalesErrorsTotal.WithLabelValues("store_error").Inc()
		s.log.Error().Err(err).Str("product_id", in.ProductID).Msg("failed to persist sale")
		return nil, err
	}

	// 5. Adjust stock and sales count, recomputing the status tier.
	if s.atomicStock {
		product, err = s.productRepo.DecrementStock(ctx, product.ID, in.Quantity)
	} else {
		// Baseline read-modify-write: the check in step 3 and this save are
		// two separate store operations with no compare-and-swap between
		// them, so concurrent sales can drive stock below zero.
		product.SetStock(product.Stock - in.Quantity)
		product.SalesCount += in.Quantity
		product.UpdatedAt = time.Now().UTC()
		err = s.productRepo.Save(ctx, product)
	}
	if err != nil {
		metrics.SalesErrorsTotal.WithLabelValues("store_error").Inc()
		s.log.Error().Err(err).
			Str("product_id", in.ProductID).
			Str("sale_id", created.ID).
			Msg("sale recorded but stock update failed")
		return nil, err
	}

	metrics.SalesRecordedTotal.WithLabelValues(string(product.Status)).Inc()
	metrics.SaleAmount.Observe(created.TotalAmount)

	// A sale changes the recorder's totals and the product owner's stock
	// figures; drop both cached summaries.
	if s.cache != nil {
		for _, ownerID := range []string{in.RecorderID, product.UserID} {
			if err := s.cache.Invalidate(ctx, ownerID); err != nil {
				s.log.Warn().Err(err).Str("owner_id", ownerID).Msg("summary cache invalidation failed")
			}
		}
	}

	s.log.Info().
		Str("sale_id", created.ID).
		Str("product_id", product.ID).
		Int("quantity", in.Quantity).
		Float64("total_amount", created.TotalAmount).
		Str("recorder_id", in.RecorderID).
		Msg("sale recorded")

	return created, nil
}

// ListByRecorder returns the sales recorded by the given user, newest first.
func (s *SaleService) ListByRecorder(ctx context.Context, userID string) ([]*domain.Sale, error) {
	return s.saleRepo.FindByRecorder(ctx, userID)
}
