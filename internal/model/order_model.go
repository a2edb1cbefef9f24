package model

import "time"

// Order is a finalized purchase record. It is immutable once constructed:
// the stored TotalAmount is the authoritative number and the summary view
// derives its breakdown from it rather than re-summing the items.
type Order struct {
	OrderCode       string      `json:"orderCode"`
	Items           []OrderItem `json:"items"`
	ShippingAddress string      `json:"shippingAddress,omitempty"`
	ShippingCost    float64     `json:"shippingCost"`
	DiscountAmount  float64     `json:"discountAmount"`
	PromoCode       string      `json:"promoCode,omitempty"`
	TotalAmount     float64     `json:"totalAmount"`
	CreatedAt       *time.Time  `json:"created_at,omitempty"`
}

// OrderItem is a snapshot of a purchased line item, carrying the price
// and quantity at time of purchase.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Color    string  `json:"color,omitempty"`
	Size     string  `json:"size,omitempty"`
	Image    string  `json:"image,omitempty"`
}
