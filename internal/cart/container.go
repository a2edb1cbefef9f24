package cart

import (
	"KitStoreAPI/internal/model"
	"KitStoreAPI/internal/pricing"
)

// SessionKind says which kind of shopper owns a cart. It is resolved
// once per request by the session middleware and passed explicitly into
// every cart operation, so account and guest items can never be looked
// up by the wrong key.
type SessionKind int

const (
	Guest SessionKind = iota
	Account
)

func (k SessionKind) String() string {
	if k == Account {
		return "account"
	}
	return "guest"
}

// Outcome reports whether a mutation actually touched the cart.
// NotFound is recoverable: callers may log it but should carry on.
type Outcome int

const (
	Applied Outcome = iota
	NotFound
)

// IdentityKeyFor returns the cart-scoped identifier for an item under
// the given session kind: the account cart id for authenticated
// sessions, the guest cart id otherwise.
func IdentityKeyFor(kind SessionKind, item model.LineItem) string {
	if kind == Account {
		return item.AccountCartID
	}
	return item.GuestCartID
}

// Container holds the ordered line items of one cart. A container is
// built for exactly one session kind; mixing account and guest items in
// one cart is not possible through its API.
type Container struct {
	kind  SessionKind
	items []model.LineItem
}

func NewContainer(kind SessionKind, items []model.LineItem) *Container {
	return &Container{kind: kind, items: items}
}

func (c *Container) Kind() SessionKind {
	return c.kind
}

// Items returns the current line items in order.
func (c *Container) Items() []model.LineItem {
	return c.items
}

// Len reports the number of line items.
func (c *Container) Len() int {
	return len(c.items)
}

func (c *Container) indexOf(key string) int {
	for i, it := range c.items {
		if IdentityKeyFor(c.kind, it) == key {
			return i
		}
	}
	return -1
}

// ChangeQuantity applies a quantity delta to the item matching key.
// The resulting quantity is floored at 1: decrementing at the floor is
// a no-op, never a removal. An unknown key leaves the cart untouched
// and reports NotFound.
func (c *Container) ChangeQuantity(key string, delta int) Outcome {
	i := c.indexOf(key)
	if i < 0 {
		return NotFound
	}
	q := pricing.SafeQuantity(c.items[i].Quantity) + delta
	if q < 1 {
		q = 1
	}
	c.items[i].Quantity = q
	return Applied
}

// Remove deletes the item matching key regardless of its quantity.
// Removal is the only way an item leaves the cart.
func (c *Container) Remove(key string) Outcome {
	i := c.indexOf(key)
	if i < 0 {
		return NotFound
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return Applied
}

// View derives the rendered cart: every line item paired with its
// per-unit display price under rate. Safe to call on every render.
func (c *Container) View(rate float64) model.CartResponse {
	items := make([]model.CartViewItem, 0, len(c.items))
	for _, it := range c.items {
		items = append(items, model.CartViewItem{
			Key:          IdentityKeyFor(c.kind, it),
			Name:         it.Name,
			Description:  it.Description,
			DisplayPrice: pricing.Valuate(it, rate),
			Quantity:     pricing.SafeQuantity(it.Quantity),
			Color:        it.Color,
			Size:         it.Size,
			Image:        it.Image,
		})
	}
	return model.CartResponse{Items: items}
}
