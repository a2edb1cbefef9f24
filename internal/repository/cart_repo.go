package repository

import (
	"context"

	"KitStoreAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AccountCartRepository persists authenticated-account carts. The cart
// core mutates in memory; this store is told the resulting snapshot
// after each mutation.
type AccountCartRepository struct {
	DB *pgxpool.Pool
}

func NewAccountCartRepository(db *pgxpool.Pool) *AccountCartRepository {
	return &AccountCartRepository{DB: db}
}

// Load returns the line items for an account, in insertion order.
func (r *AccountCartRepository) Load(ctx context.Context, accountID string) ([]model.LineItem, error) {
	query := `
		SELECT accountcartid, name, description, price, quantity, color, size, image
		FROM account_cart_items
		WHERE accountid=$1
		ORDER BY position
	`
	rows, err := r.DB.Query(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.LineItem
	for rows.Next() {
		var it model.LineItem
		if err := rows.Scan(&it.AccountCartID, &it.Name, &it.Description, &it.RawPrice,
			&it.Quantity, &it.Color, &it.Size, &it.Image); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Save replaces the account's cart with the given snapshot in one tx.
func (r *AccountCartRepository) Save(ctx context.Context, accountID string, items []model.LineItem) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM account_cart_items WHERE accountid=$1`, accountID); err != nil {
		return err
	}
	query := `
		INSERT INTO account_cart_items
			(accountid, accountcartid, name, description, price, quantity, color, size, image, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	for i, it := range items {
		if _, err := tx.Exec(ctx, query, accountID, it.AccountCartID, it.Name, it.Description,
			it.RawPrice, it.Quantity, it.Color, it.Size, it.Image, i); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
