package catalog

import (
	"context"
	"database/sql"
	"time"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
)

// LoadPostgres reads the products table once and returns an immutable
// snapshot. Later changes to the table are not observed.
func LoadPostgres(ctx context.Context, db *sql.DB) (*Catalog, error) {
	if err := withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return db.PingContext(ctx)
	}); err != nil {
		return nil, err
	}

	var products []Product

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := db.QueryContext(ctx, `
			SELECT id, name, price, color
			FROM products
			ORDER BY id ASC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		products = make([]Product, 0, 16)
		for rows.Next() {
			var p Product
			if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Color); err != nil {
				return err
			}
			products = append(products, p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return New(products)
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
