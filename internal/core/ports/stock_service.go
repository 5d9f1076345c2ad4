package ports

import (
	"context"

	"github.com/freshmart/inventory-api/internal/core/domain"
)

// StockSummary is the per-owner rollup returned by the stock endpoint.
//
// TotalStock and the low/out lists cover the products the user owns, while
// TotalSold/TotalRevenue cover the sales the user recorded (which may be for
// products they do not own). The asymmetry mirrors the point-of-sale model.
type StockSummary struct {
	TotalStock         int               `json:"totalStock"`
	TotalSold          int               `json:"totalSold"`
	TotalRevenue       float64           `json:"totalRevenue"`
	LowStockProducts   []*domain.Product `json:"lowStockProducts"`
	OutOfStockProducts []*domain.Product `json:"outOfStockProducts"`
}

// StockService produces stock summaries.
type StockService interface {
	Summarize(ctx context.Context, ownerID string) (*StockSummary, error)
}
