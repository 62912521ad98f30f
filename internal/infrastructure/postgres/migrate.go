package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate crea el esquema si no existe. Idempotente: seguro de ejecutar en cada arranque.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            UUID PRIMARY KEY,
			username      TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role          TEXT NOT NULL DEFAULT 'staff',
			status        TEXT NOT NULL DEFAULT 'active',
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id          UUID PRIMARY KEY,
			name        TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id            UUID PRIMARY KEY,
			category_id   UUID NOT NULL REFERENCES categories(id),
			name          TEXT NOT NULL,
			unit_type     TEXT NOT NULL,
			opening_stock NUMERIC(14,3) NOT NULL DEFAULT 0,
			current_stock NUMERIC(14,3) NOT NULL DEFAULT 0,
			closing_stock NUMERIC(14,3) NOT NULL DEFAULT 0,
			total_added   NUMERIC(14,3) NOT NULL DEFAULT 0,
			total_used    NUMERIC(14,3) NOT NULL DEFAULT 0,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_products_category ON products (category_id)`,
		`CREATE TABLE IF NOT EXISTS stock_movements (
			id         UUID PRIMARY KEY,
			product_id UUID NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			type       TEXT NOT NULL CHECK (type IN ('IN', 'OUT', 'ADJUSTMENT')),
			quantity   NUMERIC(14,3) NOT NULL CHECK (quantity >= 0),
			unit_type  TEXT NOT NULL,
			created_by UUID NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_movements_product ON stock_movements (product_id)`,
		`CREATE INDEX IF NOT EXISTS idx_movements_created_at ON stock_movements (created_at)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
