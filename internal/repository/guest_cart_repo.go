package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"KitStoreAPI/internal/model"

	"github.com/redis/go-redis/v9"
)

const guestCartTTL = 30 * 24 * time.Hour

// GuestCartRepository keeps anonymous carts in redis, keyed by the
// guest cart id. Guests have no account row to hang a cart off, and
// their carts are allowed to expire.
type GuestCartRepository struct {
	RDB *redis.Client
}

func NewGuestCartRepository(rdb *redis.Client) *GuestCartRepository {
	return &GuestCartRepository{RDB: rdb}
}

func guestCartKey(guestID string) string {
	return "guest_cart:" + guestID
}

// Load returns the guest's line items; a missing key is an empty cart.
func (r *GuestCartRepository) Load(ctx context.Context, guestID string) ([]model.LineItem, error) {
	raw, err := r.RDB.Get(ctx, guestCartKey(guestID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var items []model.LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Save overwrites the guest's cart snapshot and refreshes its TTL.
func (r *GuestCartRepository) Save(ctx context.Context, guestID string, items []model.LineItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.RDB.Set(ctx, guestCartKey(guestID), raw, guestCartTTL).Err()
}
