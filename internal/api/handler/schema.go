package handler

type createProductRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Category    string  `json:"category"    validate:"required,oneof=Groceries Dairy Bakery Meat Produce Beverages Snacks Household Other"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Stock       int     `json:"stock"       validate:"gte=0"`
	Description string  `json:"description"`
}

// updateProductRequest is a partial patch: nil fields are left untouched.
type updateProductRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,min=1"`
	Category    *string  `json:"category"    validate:"omitempty,oneof=Groceries Dairy Bakery Meat Produce Beverages Snacks Household Other"`
	Price       *float64 `json:"price"       validate:"omitempty,gte=0"`
	Stock       *int     `json:"stock"       validate:"omitempty,gte=0"`
	Description *string  `json:"description"`
}

type recordSaleRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"   validate:"required,gt=0"`
}

type messageResponse struct {
	Message string `json:"message"`
}
