package entities

import "time"

// Plan is a healthcare-plan offering sold through the checkout.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - Price is the recurring monthly price of the subscription.
type Plan struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Features  []string  `json:"features"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
