package models

import "time"

// SupplyPack bundles catalog supplies sold together at a discount.
// BasePrice and TotalPrice are both USD; TotalPrice ≤ BasePrice whenever the
// discount is non-negative.
type SupplyPack struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	SupplyIDs  []string  `json:"supplyIds"`
	BasePrice  float64   `json:"basePrice"`
	TotalPrice float64   `json:"totalPrice"`
	CreatedBy  string    `json:"createdBy"`
	CreatedAt  time.Time `json:"createdAt"`
}
