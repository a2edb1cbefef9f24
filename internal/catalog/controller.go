package catalog

import (
	"sort"

	"KitStoreAPI/internal/model"
)

// MissPolicy decides whether bulk operations report the ids they could
// not find. The storefront historically swallowed them; Report makes
// the misses visible to the caller without changing what happens to
// the catalog.
type MissPolicy int

const (
	Silent MissPolicy = iota
	Report
)

const (
	editMarker    = " (edited)"
	editPriceStep = 1.0
)

const defaultProductName = "New Product"

// Controller owns the store-management state: the product list and the
// multi-select set targeted by bulk actions. Every id in the selection
// refers to a product currently in the catalog; all delete paths keep
// that invariant.
type Controller struct {
	products  []model.Product
	selection map[int64]struct{}
	policy    MissPolicy
}

func NewController(policy MissPolicy) *Controller {
	return &Controller{
		selection: make(map[int64]struct{}),
		policy:    policy,
	}
}

// Load replaces the catalog with items fetched from the store and
// clears any stale selection.
func (c *Controller) Load(products []model.Product) {
	c.products = products
	c.selection = make(map[int64]struct{})
}

// Products returns the catalog in order.
func (c *Controller) Products() []model.Product {
	return c.products
}

// Selection returns the selected ids in ascending order.
func (c *Controller) Selection() []int64 {
	ids := make([]int64, 0, len(c.selection))
	for id := range c.selection {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Selected reports whether id is in the selection set.
func (c *Controller) Selected(id int64) bool {
	_, ok := c.selection[id]
	return ok
}

// Add appends a new product with id = catalog length + 1 and default
// fields. The id sequence follows the current count, not a compacted
// or reused one. Selection is untouched.
func (c *Controller) Add() model.Product {
	p := model.Product{
		ID:       int64(len(c.products)) + 1,
		Name:     defaultProductName,
		Price:    0,
		Quantity: 1,
	}
	c.products = append(c.products, p)
	return p
}

// Edit rewrites the product matching id: the name gets the edit marker
// appended and the price goes up by a fixed step. Id and position are
// preserved. Unknown ids are a no-op; under the Report policy the miss
// is returned to the caller.
func (c *Controller) Edit(id int64) (missed []int64) {
	found := false
	for i := range c.products {
		if c.products[i].ID == id {
			c.products[i].Name += editMarker
			c.products[i].Price += editPriceStep
			found = true
		}
	}
	if !found && c.policy == Report {
		missed = []int64{id}
	}
	return missed
}

// EditAll applies the Edit rewrite to every product in the catalog.
func (c *Controller) EditAll() {
	for i := range c.products {
		c.products[i].Name += editMarker
		c.products[i].Price += editPriceStep
	}
}

// ToggleSelect flips id's membership in the selection set. Toggling an
// id that is not in the catalog is a no-op, keeping the selection a
// subset of the catalog. Applying it twice with the same id restores
// the original set.
func (c *Controller) ToggleSelect(id int64) {
	if _, ok := c.selection[id]; ok {
		delete(c.selection, id)
		return
	}
	for _, p := range c.products {
		if p.ID == id {
			c.selection[id] = struct{}{}
			return
		}
	}
}

// DeleteSelected removes every product whose id is in the selection and
// clears the selection unconditionally afterwards, even when some ids
// matched nothing. Under the Report policy the unmatched ids are
// returned.
func (c *Controller) DeleteSelected() (removed, missed []int64) {
	if len(c.selection) == 0 {
		return nil, nil
	}
	kept := c.products[:0]
	hit := make(map[int64]struct{}, len(c.selection))
	for _, p := range c.products {
		if _, ok := c.selection[p.ID]; ok {
			hit[p.ID] = struct{}{}
			removed = append(removed, p.ID)
			continue
		}
		kept = append(kept, p)
	}
	if c.policy == Report {
		for id := range c.selection {
			if _, ok := hit[id]; !ok {
				missed = append(missed, id)
			}
		}
		sort.Slice(missed, func(i, j int) bool { return missed[i] < missed[j] })
	}
	c.products = kept
	c.selection = make(map[int64]struct{})
	return removed, missed
}

// DeleteAll empties the catalog and the selection together; no caller
// ever observes one empty and the other not.
func (c *Controller) DeleteAll() {
	c.products = nil
	c.selection = make(map[int64]struct{})
}
