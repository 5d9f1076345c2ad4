package ports

import (
	"context"

	"github.com/freshmart/inventory-api/internal/core/domain"
)

// SaleTotals is the rollup of every sale recorded by one user.
type SaleTotals struct {
	Quantity int
	Revenue  float64
}

// SaleRepository defines persistence operations for the sale ledger.
// The ledger is append-only: there is no update or delete.
type SaleRepository interface {
	Create(ctx context.Context, s *domain.Sale) (*domain.Sale, error)
	// FindByRecorder returns the sales recorded by the given user, newest first.
	FindByRecorder(ctx context.Context, userID string) ([]*domain.Sale, error)
	// TotalsByRecorder aggregates quantity and revenue over the sales
	// recorded by the given user.
	TotalsByRecorder(ctx context.Context, userID string) (SaleTotals, error)
}
