package fetch

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultCacheTTL is how long a cached document stays fresh. Style and
// locale documents change rarely; a day keeps repeated runs off the network
// without pinning stale styles forever.
const DefaultCacheTTL = 24 * time.Hour

// Cache is a SQLite-backed store of fetched documents keyed by URL.
type Cache struct {
	db  *sql.DB
	ttl time.Duration
}

// OpenCache opens or creates the cache database at path.
func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	schema := `
		CREATE TABLE IF NOT EXISTS documents (
			url        TEXT PRIMARY KEY,
			body       TEXT NOT NULL,
			fetched_at INTEGER NOT NULL
		);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}

	return &Cache{db: db, ttl: DefaultCacheTTL}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached body for url if present and fresh.
func (c *Cache) Get(url string) (string, bool, error) {
	var body string
	var fetchedAt int64
	err := c.db.QueryRow(
		`SELECT body, fetched_at FROM documents WHERE url = ?`, url,
	).Scan(&body, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading cache: %w", err)
	}

	if time.Since(time.Unix(fetchedAt, 0)) > c.ttl {
		return "", false, nil
	}
	return body, true, nil
}

// Put stores or refreshes the cached body for url.
func (c *Cache) Put(url, body string) error {
	_, err := c.db.Exec(
		`INSERT INTO documents (url, body, fetched_at) VALUES (?, ?, ?)
		 ON CONFLICT(url) DO UPDATE SET body = excluded.body, fetched_at = excluded.fetched_at`,
		url, body, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}
	return nil
}
