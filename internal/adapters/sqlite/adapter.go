// Package sqlite provides a SQLite-backed implementation of the art cache repository port.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // Import the driver anonymously

	"github.com/vaibhavuttam8/jam-rating/internal/core/ports"
)

// Adapter implements the art cache repository port for SQLite
type Adapter struct {
	db *sql.DB
}

var _ ports.ArtCacheRepository = (*Adapter)(nil)

// NewAdapter creates a connection and runs the schema migration
func NewAdapter(storagePath string) (*Adapter, error) {
	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	// a single connection keeps ":memory:" databases shared and serializes writers
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	adapter := &Adapter{db: db}
	if err := adapter.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return adapter, nil
}

// Close ensures the DB connection is closed gracefully
func (a *Adapter) Close() error {
	return a.db.Close()
}

// Load reads the whole entry-id -> image-URL mapping.
func (a *Adapter) Load(ctx context.Context) (map[string]string, error) {
	rows, err := a.db.QueryContext(ctx, "SELECT entry_id, url FROM album_art_cache")
	if err != nil {
		return nil, fmt.Errorf("failed to load art cache: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var id, url string
		if err := rows.Scan(&id, &url); err != nil {
			return nil, fmt.Errorf("failed to scan art cache row: %w", err)
		}
		out[id] = url
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate art cache: %w", err)
	}
	return out, nil
}

// SaveAll replaces the stored mapping with entries in one transaction.
func (a *Adapter) SaveAll(ctx context.Context, entries map[string]string) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM album_art_cache"); err != nil {
		return fmt.Errorf("failed to clear art cache: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO album_art_cache (entry_id, url) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare art cache insert: %w", err)
	}
	defer stmt.Close()

	for id, url := range entries {
		if _, err := stmt.ExecContext(ctx, id, url); err != nil {
			return fmt.Errorf("failed to save art for %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit art cache: %w", err)
	}
	return nil
}

func (a *Adapter) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS album_art_cache (
		entry_id TEXT PRIMARY KEY,
		url TEXT NOT NULL
	);`
	if _, err := a.db.Exec(query); err != nil {
		return err
	}
	return nil
}
