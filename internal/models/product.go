package models

// Product represents a catalog entry available for purchase
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Size     string  `json:"size"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}
