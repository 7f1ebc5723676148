package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Bootstrap crea las tablas e índices si no existen. Se corre al arranque;
// todos los statements son idempotentes.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			first_name    TEXT NOT NULL DEFAULT '',
			last_name     TEXT NOT NULL DEFAULT '',
			username      TEXT NOT NULL UNIQUE,
			email         TEXT NOT NULL DEFAULT '',
			phone         TEXT NOT NULL DEFAULT '',
			business_name TEXT NOT NULL DEFAULT '',
			whatsapp      TEXT NOT NULL DEFAULT '',
			referral      TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL,
			role          TEXT NOT NULL DEFAULT 'customer',
			status        TEXT NOT NULL DEFAULT 'active',
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		// Email único solo cuando viene (el registro permite email vacío).
		`CREATE UNIQUE INDEX IF NOT EXISTS users_email_uq ON users (email) WHERE email <> ''`,

		`CREATE TABLE IF NOT EXISTS balances (
			user_id    TEXT PRIMARY KEY REFERENCES users(id),
			amount     NUMERIC(12,2) NOT NULL DEFAULT 0,
			currency   TEXT NOT NULL DEFAULT 'GHS',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS services (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			image_url  TEXT NOT NULL DEFAULT '',
			offers     JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS orders (
			id             TEXT PRIMARY KEY,
			user_id        TEXT NOT NULL REFERENCES users(id),
			order_id       TEXT NOT NULL,
			items          JSONB NOT NULL DEFAULT '[]',
			total_amount   NUMERIC(12,2) NOT NULL DEFAULT 0,
			charged_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			status         TEXT NOT NULL,
			paid_from      TEXT NOT NULL DEFAULT 'wallet',
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS orders_user_created_idx ON orders (user_id, created_at DESC)`,
		// El número legible NAN puede repetirse: se indexa para búsquedas pero no se exige único.
		`CREATE INDEX IF NOT EXISTS orders_order_id_idx ON orders (order_id)`,

		`CREATE TABLE IF NOT EXISTS transactions (
			id          TEXT PRIMARY KEY,
			user_id     TEXT NOT NULL REFERENCES users(id),
			amount      NUMERIC(12,2) NOT NULL,
			reference   TEXT NOT NULL UNIQUE,
			status      TEXT NOT NULL,
			type        TEXT NOT NULL,
			gateway     TEXT NOT NULL,
			currency    TEXT NOT NULL DEFAULT 'GHS',
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
			verified_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS transactions_user_created_idx ON transactions (user_id, created_at DESC)`,

		`CREATE TABLE IF NOT EXISTS checkers (
			id         TEXT PRIMARY KEY,
			type       TEXT NOT NULL,
			message    TEXT NOT NULL,
			amount     NUMERIC(12,2) NOT NULL,
			profit     NUMERIC(12,2) NOT NULL DEFAULT 0,
			status     TEXT NOT NULL DEFAULT 'not_sold',
			sold_to    TEXT NOT NULL DEFAULT '',
			sold_at    TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS checkers_status_type_idx ON checkers (status, type)`,

		`CREATE TABLE IF NOT EXISTS purchases (
			id           TEXT PRIMARY KEY,
			user_id      TEXT NOT NULL REFERENCES users(id),
			checker_id   TEXT NOT NULL,
			type         TEXT NOT NULL,
			amount       NUMERIC(12,2) NOT NULL,
			message      TEXT NOT NULL,
			purchased_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS purchases_user_idx ON purchases (user_id, purchased_at DESC)`,

		`CREATE TABLE IF NOT EXISTS complaints (
			id           TEXT PRIMARY KEY,
			user_id      TEXT NOT NULL REFERENCES users(id),
			order_id     TEXT NOT NULL,
			service_name TEXT NOT NULL DEFAULT '',
			offer        TEXT NOT NULL DEFAULT '',
			order_date   TIMESTAMPTZ NOT NULL,
			description  TEXT NOT NULL,
			whatsapp     TEXT NOT NULL,
			status       TEXT NOT NULL DEFAULT 'pending',
			submitted_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS referrals (
			id         TEXT PRIMARY KEY,
			user_id    TEXT NOT NULL UNIQUE REFERENCES users(id),
			ref_code   TEXT NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return nil
}
