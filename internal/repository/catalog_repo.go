package repository

import (
	"context"

	"KitStoreAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogRepository persists the management-screen catalog. The
// controller owns the working copy; after each mutation the whole
// snapshot is written back, which keeps edit-all and delete-all as
// single round trips.
type CatalogRepository struct {
	DB *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// LoadAll returns the catalog in stored order.
func (r *CatalogRepository) LoadAll(ctx context.Context) ([]model.Product, error) {
	query := `SELECT id, name, price, quantity FROM products ORDER BY position`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Quantity); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// ReplaceAll swaps the stored catalog for the given snapshot in one tx.
func (r *CatalogRepository) ReplaceAll(ctx context.Context, products []model.Product) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM products`); err != nil {
		return err
	}
	query := `INSERT INTO products (id, name, price, quantity, position) VALUES ($1, $2, $3, $4, $5)`
	for i, p := range products {
		if _, err := tx.Exec(ctx, query, p.ID, p.Name, p.Price, p.Quantity, i); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
