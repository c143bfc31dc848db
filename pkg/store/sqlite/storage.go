package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const ClientsTableSchema = `
	CREATE TABLE IF NOT EXISTS clients (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT,
		phone TEXT,
		company TEXT,
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	);
`

const ProductsTableSchema = `
	CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		code TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		category TEXT,
		base_price REAL NOT NULL DEFAULT 0,
		tax_rate REAL NOT NULL DEFAULT 0,
		stock INTEGER,
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	);
`

const UsersTableSchema = `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	);
`

const QuotesTableSchema = `
	CREATE TABLE IF NOT EXISTS quotes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		quote_number TEXT NOT NULL UNIQUE,
		client_id INTEGER NOT NULL REFERENCES clients(id),
		user_id INTEGER REFERENCES users(id),
		quote_date TEXT NOT NULL,
		valid_until TEXT,
		status INTEGER NOT NULL DEFAULT 1,
		total_amount REAL NOT NULL DEFAULT 0,
		discount_percent REAL NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL DEFAULT (datetime('now')),
		updated_at TEXT
	);
`

const QuoteItemsTableSchema = `
	CREATE TABLE IF NOT EXISTS quote_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		quote_id INTEGER NOT NULL REFERENCES quotes(id),
		product_id INTEGER NOT NULL REFERENCES products(id),
		quantity REAL NOT NULL DEFAULT 1,
		unit_price REAL NOT NULL DEFAULT 0
	);
`

var bootQueries = []string{
	ClientsTableSchema,
	ProductsTableSchema,
	UsersTableSchema,
	QuotesTableSchema,
	QuoteItemsTableSchema,
}

type Settings struct {
	DbPath string
}

// NewDB opens the CRM database and applies the boot schema. The driver
// is pure Go, so `:memory:` works in tests without CGO.
func NewDB(settings Settings) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)", settings.DbPath)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	for _, query := range bootQueries {
		if _, err := db.Exec(query); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply boot schema: %w", err)
		}
	}

	return db, nil
}
