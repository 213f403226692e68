package storage

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"cotador/internal"
)

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS items (
  id TEXT PRIMARY KEY,
  description TEXT NOT NULL,
  normalized TEXT NOT NULL,
  cost REAL NOT NULL,
  category TEXT NOT NULL,
  sourceSheet TEXT,
  inStock INTEGER NOT NULL,
  pricingRule TEXT NOT NULL,
  importedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_items_normalized ON items(normalized);

CREATE TABLE IF NOT EXISTS metadata (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := d.conn.Exec(schema)
	return err
}

// ReplaceItems swaps the persisted snapshot for the given item set in one
// transaction. Readers either see the old snapshot or the new one.
func (d *DB) ReplaceItems(items []internal.InventoryItem) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM items`); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
INSERT INTO items (id, description, normalized, cost, category, sourceSheet, inStock, pricingRule)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, item := range items {
		inStock := 0
		if item.InStock {
			inStock = 1
		}
		if _, err := stmt.Exec(
			item.ID, item.Description, item.Normalized, item.Cost,
			string(item.Category), item.SourceSheet, inStock, string(item.Rule),
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (d *DB) ListItems() ([]internal.InventoryItem, error) {
	rows, err := d.conn.Query(`
SELECT id, description, normalized, cost, category, sourceSheet, inStock, pricingRule
FROM items`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.InventoryItem
	for rows.Next() {
		var item internal.InventoryItem
		var category, rule string
		var inStock int
		if err := rows.Scan(
			&item.ID, &item.Description, &item.Normalized, &item.Cost,
			&category, &item.SourceSheet, &inStock, &rule,
		); err != nil {
			return nil, err
		}
		item.Category = internal.Category(category)
		item.Rule = internal.PricingRule(rule)
		item.InStock = inStock != 0
		out = append(out, item)
	}

	return out, rows.Err()
}

func (d *DB) ClearItems() error {
	_, err := d.conn.Exec(`DELETE FROM items`)
	return err
}

func (d *DB) SetMetadata(key, value string) error {
	_, err := d.conn.Exec(`
INSERT INTO metadata (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updatedAt = CURRENT_TIMESTAMP
`, key, value)
	return err
}

func (d *DB) GetMetadata(key string) (*string, error) {
	var value string
	err := d.conn.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}
