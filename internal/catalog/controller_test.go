package catalog

import (
	"reflect"
	"testing"

	"KitStoreAPI/internal/model"
)

func seeded(ids ...int64) *Controller {
	c := NewController(Silent)
	var products []model.Product
	for _, id := range ids {
		products = append(products, model.Product{ID: id, Name: "Kit", Price: 10, Quantity: 1})
	}
	c.Load(products)
	return c
}

func productIDs(c *Controller) []int64 {
	var ids []int64
	for _, p := range c.Products() {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestAdd_IDFollowsCatalogLength(t *testing.T) {
	c := NewController(Silent)
	p1 := c.Add()
	p2 := c.Add()
	if p1.ID != 1 || p2.ID != 2 {
		t.Errorf("expected ids 1,2, got %d,%d", p1.ID, p2.ID)
	}
	if len(c.Products()) != 2 {
		t.Errorf("expected 2 products, got %d", len(c.Products()))
	}
	if len(c.Selection()) != 0 {
		t.Error("add must not touch the selection")
	}
}

func TestEdit_RewritesMatchingProductOnly(t *testing.T) {
	c := seeded(1, 2, 3)
	c.Edit(2)
	products := c.Products()
	if products[1].Name == "Kit" || products[1].Price != 11 {
		t.Errorf("expected product 2 rewritten, got %+v", products[1])
	}
	if products[0].Name != "Kit" || products[2].Name != "Kit" {
		t.Error("non-matching products must be untouched")
	}
	if products[1].ID != 2 {
		t.Error("edit must preserve the id")
	}
}

func TestEdit_UnknownIDIsNoop(t *testing.T) {
	c := seeded(1, 2)
	missed := c.Edit(9)
	if missed != nil {
		t.Errorf("silent policy must not report misses, got %v", missed)
	}
	if !reflect.DeepEqual(productIDs(c), []int64{1, 2}) {
		t.Error("unknown id must leave the catalog untouched")
	}
}

func TestEdit_ReportPolicySurfacesMiss(t *testing.T) {
	c := NewController(Report)
	c.Load([]model.Product{{ID: 1, Name: "Kit"}})
	if missed := c.Edit(9); !reflect.DeepEqual(missed, []int64{9}) {
		t.Errorf("expected [9], got %v", missed)
	}
	if missed := c.Edit(1); missed != nil {
		t.Errorf("expected no misses, got %v", missed)
	}
}

func TestEditAll(t *testing.T) {
	c := seeded(1, 2)
	c.EditAll()
	for _, p := range c.Products() {
		if p.Price != 11 {
			t.Errorf("expected every price bumped, got %+v", p)
		}
	}
}

func TestToggleSelect_Parity(t *testing.T) {
	c := seeded(1, 2)
	c.ToggleSelect(2)
	if !c.Selected(2) {
		t.Fatal("expected 2 selected")
	}
	c.ToggleSelect(2)
	if c.Selected(2) {
		t.Error("double toggle must restore the original set")
	}
}

func TestToggleSelect_UnknownIDStaysOutOfSet(t *testing.T) {
	c := seeded(1, 2)
	c.ToggleSelect(9)
	if len(c.Selection()) != 0 {
		t.Error("selection must stay a subset of the catalog")
	}
}

func TestDeleteSelected(t *testing.T) {
	c := seeded(1, 2, 3, 4, 5, 6)
	c.ToggleSelect(2)
	c.ToggleSelect(5)
	removed, _ := c.DeleteSelected()
	if !reflect.DeepEqual(removed, []int64{2, 5}) {
		t.Errorf("expected removed [2 5], got %v", removed)
	}
	if !reflect.DeepEqual(productIDs(c), []int64{1, 3, 4, 6}) {
		t.Errorf("expected catalog [1 3 4 6], got %v", productIDs(c))
	}
	if len(c.Selection()) != 0 {
		t.Error("selection must be cleared after delete-selected")
	}
}

func TestDeleteSelected_EmptySelection(t *testing.T) {
	c := seeded(1, 2)
	removed, missed := c.DeleteSelected()
	if removed != nil || missed != nil {
		t.Errorf("expected nothing, got %v %v", removed, missed)
	}
	if len(c.Products()) != 2 {
		t.Error("empty selection must not delete anything")
	}
}

func TestDeleteAll(t *testing.T) {
	c := seeded(1, 2, 3)
	c.ToggleSelect(1)
	c.DeleteAll()
	if len(c.Products()) != 0 {
		t.Error("expected empty catalog")
	}
	if len(c.Selection()) != 0 {
		t.Error("expected empty selection")
	}

	// and again from an already empty state
	c.DeleteAll()
	if len(c.Products()) != 0 || len(c.Selection()) != 0 {
		t.Error("delete-all must hold from any prior state")
	}
}
