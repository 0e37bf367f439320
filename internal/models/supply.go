package models

// Supply is a catalog item maintained by a supply provider.
type Supply struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Unit        string  `json:"unit"`
	Stock       int     `json:"stock"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
}
