package services

import (
	"context"
	"testing"

	"KitStoreAPI/internal/model"
	"KitStoreAPI/internal/order"
	"KitStoreAPI/internal/pricing"
	"KitStoreAPI/internal/repository"

	"golang.org/x/text/language"
)

type fakeOrderReader struct {
	orders map[string]*model.Order
}

func (f *fakeOrderReader) GetByCode(_ context.Context, code string) (*model.Order, error) {
	if o, ok := f.orders[code]; ok {
		return o, nil
	}
	return nil, repository.ErrOrderNotFound
}

func TestOrderService_Summary(t *testing.T) {
	reader := &fakeOrderReader{orders: map[string]*model.Order{
		"KS-1": {
			OrderCode:      "KS-1",
			ShippingCost:   45000,
			DiscountAmount: 50000,
			PromoCode:      "GUNPLA10",
			TotalAmount:    595000,
		},
	}}
	svc := NewOrderService(reader, nil, pricing.NewFormatter(1, language.English))

	s, err := svc.Summary(context.Background(), "KS-1")
	if err != nil {
		t.Fatal(err)
	}
	if s.OrderCode != "KS-1" {
		t.Errorf("expected KS-1, got %q", s.OrderCode)
	}
	if s.Subtotal != "600,000" {
		t.Errorf("expected 600,000, got %q", s.Subtotal)
	}
	if s.Total != "595,000" {
		t.Errorf("expected 595,000, got %q", s.Total)
	}
	if s.PromoMessage == "" {
		t.Error("expected promo message")
	}
}

func TestOrderService_SummaryUnknownCode(t *testing.T) {
	svc := NewOrderService(&fakeOrderReader{orders: map[string]*model.Order{}}, nil,
		pricing.NewFormatter(25000, language.English))

	s, err := svc.Summary(context.Background(), "nope")
	if err != nil {
		t.Fatal(err)
	}
	if s.OrderCode != order.MissingOrderCode {
		t.Errorf("expected sentinel code, got %q", s.OrderCode)
	}
	if s.Total != "0" {
		t.Errorf("expected 0, got %q", s.Total)
	}
	if s.PromoMessage != "" {
		t.Errorf("expected no promo message, got %q", s.PromoMessage)
	}
}
