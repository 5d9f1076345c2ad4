package domain

import "time"

// Sale is a single entry in the append-only sale ledger. ProductName and
// TotalAmount are snapshots taken at sale time so that later product edits
// or deletion never rewrite history.
type Sale struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	TotalAmount float64   `json:"total_amount"`
	UserID      string    `json:"user_id"` // the recorder, not necessarily the product owner
	Date        time.Time `json:"date"`
}
