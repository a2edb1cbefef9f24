package model

// LineItem is one product entry in an active cart. Exactly one of
// AccountCartID / GuestCartID is set, depending on whether the session
// belongs to an authenticated account or a guest.
type LineItem struct {
	AccountCartID string  `json:"accountCartId,omitempty"`
	GuestCartID   string  `json:"guestCartId,omitempty"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	RawPrice      float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	Color         string  `json:"color,omitempty"`
	Size          string  `json:"size,omitempty"`
	Image         string  `json:"image,omitempty"`
}

// CartViewItem is what the API exposes: a line item plus its converted
// per-unit display price. Quantity is never folded into DisplayPrice;
// order totals come from the persisted order record, not from here.
type CartViewItem struct {
	Key          string  `json:"key"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	DisplayPrice float64 `json:"displayPrice"`
	Quantity     int     `json:"quantity"`
	Color        string  `json:"color,omitempty"`
	Size         string  `json:"size,omitempty"`
	Image        string  `json:"image,omitempty"`
}

// CartResponse is returned when calling GET /store/cart
type CartResponse struct {
	Items []CartViewItem `json:"items"`
}
