package ports

import (
	"context"

	"github.com/freshmart/inventory-api/internal/core/domain"
)

// RecordSaleInput carries the parameters for recording a sale.
// RecorderID is the authenticated identity performing the sale; it is not
// required to match the product's owner (point-of-sale model).
type RecordSaleInput struct {
	ProductID  string
	Quantity   int
	RecorderID string
}

// SaleService defines use-case operations for the sale ledger.
type SaleService interface {
	Record(ctx context.Context, input RecordSaleInput) (*domain.Sale, error)
	ListByRecorder(ctx context.Context, userID string) ([]*domain.Sale, error)
}
