package ports

import (
	"context"

	"github.com/freshmart/inventory-api/internal/core/domain"
)

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	// FindByID retrieves a product by id. Lookup is never scoped by owner:
	// any authenticated user may read (and sell) any product.
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// FindAll returns every product regardless of owner.
	FindAll(ctx context.Context) ([]*domain.Product, error)
	// FindByOwner returns the products created by the given user.
	FindByOwner(ctx context.Context, userID string) ([]*domain.Product, error)
	// Save overwrites the full product document (read-modify-write).
	Save(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
	// DecrementStock applies stock -= quantity and salesCount += quantity in
	// a single conditional update that only matches when stock >= quantity,
	// and returns the updated product. Returns domain.ErrInsufficientStock
	// when the condition fails for an existing product.
	DecrementStock(ctx context.Context, id string, quantity int) (*domain.Product, error)
}
