package services

import (
	"context"
	"os"
	"sync"

	"KitStoreAPI/internal/cart"
	"KitStoreAPI/internal/model"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// CartStore is the persistence collaborator for carts: it hands over
// the current line items and is told the resulting snapshot after each
// mutation. Account and guest carts use different backends.
type CartStore interface {
	Load(ctx context.Context, key string) ([]model.LineItem, error)
	Save(ctx context.Context, key string, items []model.LineItem) error
}

type CartService struct {
	mu           sync.Mutex
	accountStore CartStore
	guestStore   CartStore
	rate         float64
}

func NewCartService(accountStore, guestStore CartStore, rate float64) *CartService {
	return &CartService{
		accountStore: accountStore,
		guestStore:   guestStore,
		rate:         rate,
	}
}

func (s *CartService) storeFor(kind cart.SessionKind) CartStore {
	if kind == cart.Account {
		return s.accountStore
	}
	return s.guestStore
}

// container builds the session's container from the stored snapshot.
// The store is the source of truth between requests: items are added
// to a cart outside this core, so every request starts from a fresh
// load. Account and guest sessions can never collide here: the kind
// picks the backend.
func (s *CartService) container(ctx context.Context, kind cart.SessionKind, sessionKey string) (*cart.Container, error) {
	var items []model.LineItem
	if store := s.storeFor(kind); store != nil {
		loaded, err := store.Load(ctx, sessionKey)
		if err != nil {
			return nil, err
		}
		items = loaded
	}
	return cart.NewContainer(kind, items), nil
}

// persist writes the container snapshot back. Durability is the
// store's problem; a failed write is logged and the request still
// reports the mutation it applied.
func (s *CartService) persist(ctx context.Context, kind cart.SessionKind, sessionKey string, c *cart.Container) {
	store := s.storeFor(kind)
	if store == nil {
		return
	}
	if err := store.Save(ctx, sessionKey, c.Items()); err != nil {
		logger.Warn().Err(err).Str("session", kind.String()).Msg("cart snapshot write failed")
	}
}

// Get returns the session's cart view with converted unit prices.
func (s *CartService) Get(ctx context.Context, kind cart.SessionKind, sessionKey string) (model.CartResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.container(ctx, kind, sessionKey)
	if err != nil {
		return model.CartResponse{Items: []model.CartViewItem{}}, err
	}
	return c.View(s.rate), nil
}

// ChangeQuantity applies a quantity delta to one line item, floored at
// 1. A stale item key reports NotFound without failing the request.
func (s *CartService) ChangeQuantity(ctx context.Context, kind cart.SessionKind, sessionKey, itemKey string, delta int) (cart.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.container(ctx, kind, sessionKey)
	if err != nil {
		return cart.NotFound, err
	}
	out := c.ChangeQuantity(itemKey, delta)
	if out == cart.NotFound {
		logger.Debug().Str("session", kind.String()).Str("item", itemKey).Msg("quantity change on unknown item")
		return out, nil
	}
	s.persist(ctx, kind, sessionKey, c)
	return out, nil
}

// Remove deletes one line item from the session's cart.
func (s *CartService) Remove(ctx context.Context, kind cart.SessionKind, sessionKey, itemKey string) (cart.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.container(ctx, kind, sessionKey)
	if err != nil {
		return cart.NotFound, err
	}
	out := c.Remove(itemKey)
	if out == cart.NotFound {
		logger.Debug().Str("session", kind.String()).Str("item", itemKey).Msg("remove on unknown item")
		return out, nil
	}
	s.persist(ctx, kind, sessionKey, c)
	return out, nil
}
