package domain

import (
	"errors"
	"time"
)

// ProductStatus is the stock tier derived from the current stock level.
type ProductStatus string

const (
	StatusInStock    ProductStatus = "In Stock"
	StatusLowStock   ProductStatus = "Low Stock"
	StatusOutOfStock ProductStatus = "Out of Stock"
)

// lowStockThreshold is the stock level at or below which a product is
// considered low on stock (when above zero).
const lowStockThreshold = 10

// Category is the closed set of product categories.
type Category string

const (
	CategoryGroceries Category = "Groceries"
	CategoryDairy     Category = "Dairy"
	CategoryBakery    Category = "Bakery"
	CategoryMeat      Category = "Meat"
	CategoryProduce   Category = "Produce"
	CategoryBeverages Category = "Beverages"
	CategorySnacks    Category = "Snacks"
	CategoryHousehold Category = "Household"
	CategoryOther     Category = "Other"
)

// Categories lists every valid product category.
var Categories = []Category{
	CategoryGroceries, CategoryDairy, CategoryBakery, CategoryMeat,
	CategoryProduce, CategoryBeverages, CategorySnacks, CategoryHousehold,
	CategoryOther,
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

var ErrProductNotFound = errors.New("product not found")
var ErrValidation = errors.New("validation failed")
var ErrInsufficientStock = errors.New("insufficient stock")
var ErrInvalidQuantity = errors.New("invalid quantity")
var ErrForbidden = errors.New("access forbidden")

// StatusForStock derives the stock tier for a given stock level.
// It is the single source of truth for the status field.
func StatusForStock(stock int) ProductStatus {
	switch {
	case stock <= 0:
		return StatusOutOfStock
	case stock <= lowStockThreshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// Product is the core inventory aggregate. Status is always derived from
// Stock via StatusForStock and recomputed whenever Stock changes.
type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Category    Category      `json:"category"`
	Price       float64       `json:"price"`
	Stock       int           `json:"stock"`
	Description string        `json:"description,omitempty"`
	SalesCount  int           `json:"sales_count"`
	Status      ProductStatus `json:"status"`
	UserID      string        `json:"user_id"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// SetStock assigns a new stock level and recomputes the derived status.
// All stock mutations must go through here so the invariant holds.
func (p *Product) SetStock(stock int) {
	p.Stock = stock
	p.Status = StatusForStock(stock)
}
