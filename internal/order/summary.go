package order

import (
	"fmt"

	"KitStoreAPI/internal/model"
	"KitStoreAPI/internal/pricing"
)

// MissingOrderCode is shown when the confirmation view is reached
// without a completed checkout behind it.
const MissingOrderCode = "N/A"

// Summary is the confirmation-view breakdown of a finalized order.
// All monetary fields are formatted display-currency strings.
type Summary struct {
	OrderCode    string `json:"orderCode"`
	Subtotal     string `json:"subtotal"`
	Shipping     string `json:"shipping"`
	Discount     string `json:"discount"`
	Total        string `json:"total"`
	PromoMessage string `json:"promoMessage,omitempty"`
}

// SubtotalOf back-derives the item subtotal from the stored total:
// subtotal = total - shipping + discount. The order record carries the
// authoritative total, and the breakdown is reconstructed from it
// rather than re-summed from the items, so the two can never drift.
func SubtotalOf(o *model.Order) float64 {
	if o == nil {
		return 0
	}
	return o.TotalAmount - o.ShippingCost + o.DiscountAmount
}

// Summarize builds the confirmation breakdown for an order. A nil order
// (direct navigation without a checkout) yields zeroed amounts and the
// MissingOrderCode sentinel instead of an error.
func Summarize(o *model.Order, f *pricing.Formatter) Summary {
	if o == nil {
		zero := f.Format(0)
		return Summary{
			OrderCode: MissingOrderCode,
			Subtotal:  zero,
			Shipping:  zero,
			Discount:  zero,
			Total:     zero,
		}
	}

	s := Summary{
		OrderCode: o.OrderCode,
		Subtotal:  f.Format(SubtotalOf(o)),
		Shipping:  f.Format(o.ShippingCost),
		Discount:  f.Format(o.DiscountAmount),
		Total:     f.Format(o.TotalAmount),
	}
	// a promo code with a zero discount is no effective promotion
	if o.PromoCode != "" && o.DiscountAmount > 0 {
		s.PromoMessage = fmt.Sprintf("Promo code %s applied: -%s", o.PromoCode, s.Discount)
	}
	return s
}
