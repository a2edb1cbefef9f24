package order

import (
	"testing"

	"KitStoreAPI/internal/model"
	"KitStoreAPI/internal/pricing"

	"golang.org/x/text/language"
)

func testOrder() *model.Order {
	return &model.Order{
		OrderCode:      "KS-20250901-0001",
		ShippingCost:   45000,
		DiscountAmount: 50000,
		PromoCode:      "GUNPLA10",
		TotalAmount:    595000,
		Items: []model.OrderItem{
			{Name: "RX-78-2", Price: 200000, Quantity: 3},
		},
	}
}

func TestSubtotalOf_BackDerivedFromTotal(t *testing.T) {
	if got := SubtotalOf(testOrder()); got != 600000 {
		t.Errorf("expected 600000, got %v", got)
	}
}

func TestSummarize_TotalMatchesFormatterExactly(t *testing.T) {
	f := pricing.NewFormatter(1, language.English)
	o := testOrder()
	s := Summarize(o, f)
	if s.Total != f.Format(o.TotalAmount) {
		t.Errorf("expected %q, got %q", f.Format(o.TotalAmount), s.Total)
	}
	if s.Subtotal != "600,000" {
		t.Errorf("expected 600,000, got %q", s.Subtotal)
	}
	if s.Shipping != "45,000" {
		t.Errorf("expected 45,000, got %q", s.Shipping)
	}
	if s.Discount != "50,000" {
		t.Errorf("expected 50,000, got %q", s.Discount)
	}
}

func TestSummarize_PromoMessageNeedsCodeAndDiscount(t *testing.T) {
	f := pricing.NewFormatter(1, language.English)

	s := Summarize(testOrder(), f)
	if s.PromoMessage == "" {
		t.Error("expected promo message when code and discount are present")
	}

	// a promo code with no effective discount is suppressed
	o := testOrder()
	o.DiscountAmount = 0
	if s := Summarize(o, f); s.PromoMessage != "" {
		t.Errorf("expected no promo message, got %q", s.PromoMessage)
	}

	// a discount with no code is suppressed too
	o = testOrder()
	o.PromoCode = ""
	if s := Summarize(o, f); s.PromoMessage != "" {
		t.Errorf("expected no promo message, got %q", s.PromoMessage)
	}
}

func TestSummarize_MissingOrder(t *testing.T) {
	f := pricing.NewFormatter(25000, language.English)
	s := Summarize(nil, f)
	if s.OrderCode != MissingOrderCode {
		t.Errorf("expected sentinel code, got %q", s.OrderCode)
	}
	if s.Total != "0" || s.Subtotal != "0" || s.Shipping != "0" || s.Discount != "0" {
		t.Errorf("expected zeroed amounts, got %+v", s)
	}
	if s.PromoMessage != "" {
		t.Errorf("expected no promo message, got %q", s.PromoMessage)
	}
}

func TestSummarize_ConvertsUnderRate(t *testing.T) {
	f := pricing.NewFormatter(2, language.English)
	s := Summarize(testOrder(), f)
	if s.Total != "1,190,000" {
		t.Errorf("expected 1,190,000, got %q", s.Total)
	}
}
