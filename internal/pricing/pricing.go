package pricing

import (
	"math"

	"KitStoreAPI/internal/model"
)

// SafePrice returns v, or 0 when v is NaN, infinite, or negative.
func SafePrice(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// SafeRate returns v, or the identity rate 1 when v is NaN, infinite,
// or not strictly positive. A missing exchange rate must never zero out
// the whole cart.
func SafeRate(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 1
	}
	return v
}

// SafeQuantity returns n, floored at 1.
func SafeQuantity(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// Valuate computes the per-unit display price for a line item under the
// given exchange rate. Quantity is deliberately NOT multiplied in: the
// cart shows unit prices, and order totals are carried by the persisted
// order record instead.
func Valuate(item model.LineItem, rate float64) float64 {
	return SafePrice(item.RawPrice) * SafeRate(rate)
}
