package models

// CartItem is a product line in the local cart.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	SellerID string  `json:"sellerId,omitempty"`
}
