package repository

import (
	"context"
	"encoding/json"
	"errors"

	"KitStoreAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrOrderNotFound is returned when no finalized order matches a code.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository reads finalized orders. Orders are written by the
// checkout collaborator and are immutable here; the item snapshots
// live in a jsonb column alongside the authoritative totals.
type OrderRepository struct {
	DB *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{DB: db}
}

// GetByCode fetches one order by its opaque code.
func (r *OrderRepository) GetByCode(ctx context.Context, code string) (*model.Order, error) {
	query := `
		SELECT ordercode, items, shippingaddress, shippingcost, discountamount,
		       COALESCE(promocode, ''), totalamount, created_at
		FROM orders
		WHERE ordercode=$1
	`
	var o model.Order
	var rawItems []byte
	err := r.DB.QueryRow(ctx, query, code).Scan(&o.OrderCode, &rawItems, &o.ShippingAddress,
		&o.ShippingCost, &o.DiscountAmount, &o.PromoCode, &o.TotalAmount, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(rawItems) > 0 {
		if err := json.Unmarshal(rawItems, &o.Items); err != nil {
			return nil, err
		}
	}
	return &o, nil
}
