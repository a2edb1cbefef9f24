package pricing

import (
	"math"
	"testing"

	"KitStoreAPI/internal/model"

	"golang.org/x/text/language"
)

func TestValuate_UnitPriceUnderRate(t *testing.T) {
	item := model.LineItem{RawPrice: 20, Quantity: 3}
	got := Valuate(item, 25000)
	if got != 500000 {
		t.Errorf("expected 500000, got %v", got)
	}
}

func TestValuate_IndependentOfQuantity(t *testing.T) {
	a := model.LineItem{RawPrice: 12.5, Quantity: 1}
	b := model.LineItem{RawPrice: 12.5, Quantity: 40}
	if Valuate(a, 25000) != Valuate(b, 25000) {
		t.Error("display price must not depend on quantity")
	}
}

func TestValuate_BadPriceFallsBackToZero(t *testing.T) {
	for _, raw := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -3} {
		item := model.LineItem{RawPrice: raw, Quantity: 1}
		if got := Valuate(item, 25000); got != 0 {
			t.Errorf("raw=%v: expected 0, got %v", raw, got)
		}
	}
}

func TestValuate_BadRateFallsBackToIdentity(t *testing.T) {
	item := model.LineItem{RawPrice: 42, Quantity: 2}
	for _, rate := range []float64{math.NaN(), math.Inf(1), 0, -25000} {
		if got := Valuate(item, rate); got != 42 {
			t.Errorf("rate=%v: expected 42, got %v", rate, got)
		}
	}
}

func TestValuate_NeverNaN(t *testing.T) {
	item := model.LineItem{RawPrice: math.NaN()}
	if got := Valuate(item, math.NaN()); math.IsNaN(got) {
		t.Error("valuate must never return NaN")
	}
}

func TestSafeQuantity(t *testing.T) {
	cases := map[int]int{-5: 1, 0: 1, 1: 1, 7: 7}
	for in, want := range cases {
		if got := SafeQuantity(in); got != want {
			t.Errorf("SafeQuantity(%d): expected %d, got %d", in, want, got)
		}
	}
}

func TestFormatter_GroupsDigits(t *testing.T) {
	f := NewFormatter(25000, language.English)
	if got := f.Format(24); got != "600,000" {
		t.Errorf("expected 600,000, got %q", got)
	}
}

func TestFormatter_RoundsAtFormatTime(t *testing.T) {
	f := NewFormatter(1, language.English)
	if got := f.Format(2.6); got != "3" {
		t.Errorf("expected 3, got %q", got)
	}
	if got := f.Format(2.4); got != "2" {
		t.Errorf("expected 2, got %q", got)
	}
	// Convert stays unrounded
	if got := f.Convert(2.6); got != 2.6 {
		t.Errorf("expected 2.6, got %v", got)
	}
}

func TestFormatter_BadRateIsIdentity(t *testing.T) {
	f := NewFormatter(math.NaN(), language.English)
	if f.Rate() != 1 {
		t.Errorf("expected identity rate, got %v", f.Rate())
	}
	if got := f.Format(1500); got != "1,500" {
		t.Errorf("expected 1,500, got %q", got)
	}
}
