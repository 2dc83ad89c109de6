package store

import "context"

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id TEXT PRIMARY KEY,
		email   TEXT NOT NULL UNIQUE,
		name    TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		item_id     TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price       NUMERIC(10,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		order_id   TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL REFERENCES users(user_id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		status     TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id       TEXT PRIMARY KEY,
		order_id TEXT NOT NULL REFERENCES orders(order_id),
		item_id  TEXT NOT NULL REFERENCES items(item_id),
		quantity INTEGER NOT NULL
	)`,
}

// CreateSchema creates the four tables if they do not exist. Called once at
// startup; the caller treats failure as non-fatal.
func (s *Store) CreateSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
