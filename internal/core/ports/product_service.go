package ports

import (
	"context"

	"github.com/freshmart/inventory-api/internal/core/domain"
)

// CreateProductInput carries all data needed to create a new product.
// OwnerID is taken from the authenticated identity, never from the payload.
type CreateProductInput struct {
	Name        string
	Category    string
	Price       float64
	Stock       int
	Description string
	OwnerID     string
}

// UpdateProductInput is a partial patch. Nil fields are left untouched;
// non-nil fields overwrite the stored value verbatim. Changing Stock
// triggers a status recomputation; nothing else does.
type UpdateProductInput struct {
	Name        *string
	Category    *string
	Price       *float64
	Stock       *int
	Description *string
	OwnerID     *string
}

// ProductService defines use-case operations for products.
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, id string, patch UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
