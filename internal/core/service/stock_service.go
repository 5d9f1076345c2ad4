package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/freshmart/inventory-api/internal/api/metrics"
	"github.com/freshmart/inventory-api/internal/core/domain"
	"github.com/freshmart/inventory-api/internal/core/ports"
)

// SummaryCache abstracts the read-side cache for stock summaries (Redis).
type SummaryCache interface {
	Get(ctx context.Context, ownerID string) (*ports.StockSummary, error)
	Set(ctx context.Context, ownerID string, summary *ports.StockSummary) error
	Invalidate(ctx context.Context, ownerID string) error
}

type stockService struct {
	productRepo ports.ProductRepository
	saleRepo    ports.SaleRepository
	cache       SummaryCache // optional
	log         zerolog.Logger
}

// NewStockService returns a StockService. cache may be nil to disable the
// read-side cache.
func NewStockService(productRepo ports.ProductRepository, saleRepo ports.SaleRepository, cache SummaryCache, log zerolog.Logger) ports.StockService {
	return &stockService{
		productRepo: productRepo,
		saleRepo:    saleRepo,
		cache:       cache,
		log:         log,
	}
}

// Summarize builds the per-owner stock summary. Product figures are scoped
// to the products the user owns; sale figures are scoped to the sales the
// user recorded. The two scopes differ on purpose (point-of-sale model).
func (s *stockService) Summarize(ctx context.Context, ownerID string) (*ports.StockSummary, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, ownerID)
		if err != nil {
			s.log.Warn().Err(err).Str("owner_id", ownerID).Msg("summary cache read failed, computing")
		} else if cached != nil {
			metrics.SummaryCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		}
		metrics.SummaryCacheTotal.WithLabelValues("miss").Inc()
	}

	products, err := s.productRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	totals, err := s.saleRepo.TotalsByRecorder(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	summary := &ports.StockSummary{
		TotalSold:          totals.Quantity,
		TotalRevenue:       totals.Revenue,
		LowStockProducts:   []*domain.Product{},
		OutOfStockProducts: []*domain.Product{},
	}
	for _, p := range products {
		summary.TotalStock += p.Stock
		switch p.Status {
		case domain.StatusLowStock:
			summary.LowStockProducts = append(summary.LowStockProducts, p)
		case domain.StatusOutOfStock:
			summary.OutOfStockProducts = append(summary.OutOfStockProducts, p)
		}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, ownerID, summary); err != nil {
			s.log.Warn().Err(err).Str("owner_id", ownerID).Msg("summary cache write failed")
		}
	}

	return summary, nil
}
