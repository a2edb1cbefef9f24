package model

// Product is one catalog entry on the store-management screen.
// IDs are assigned at creation as catalog length + 1 and are never
// rewritten by edits or compacted by deletes.
type Product struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
