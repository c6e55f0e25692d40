// ABOUTME: SQLite-backed cache that survives application restarts
// ABOUTME: Keeps scraped pages and classifier verdicts across deploys of a single node

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ErrKeyNotFound is returned on a cache miss or an expired entry.
var ErrKeyNotFound = errors.New("key not found or expired")

const cleanupInterval = 5 * time.Minute

// Client implements the Cache interface using SQLite.
type Client struct {
	db       *sql.DB
	filePath string
}

// NewSQLiteCache opens (or creates) the cache database at filePath.
func NewSQLiteCache(filePath string) (*Client, error) {
	if filePath == "" {
		filePath = "brochure-cache.db"
	}

	db, err := sql.Open("sqlite3", filePath+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	client := &Client{
		db:       db,
		filePath: filePath,
	}

	if err := client.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	go client.cleanupRoutine()

	return client, nil
}

func (c *Client) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS cache (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			expiry INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_expiry ON cache(expiry);
	`
	_, err := c.db.Exec(query)
	return err
}

// Get retrieves a non-expired value.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}

	var value []byte
	query := "SELECT value FROM cache WHERE key = ? AND expiry > ?"
	err := c.db.QueryRowContext(ctx, query, key, time.Now().Unix()).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get value: %w", err)
	}

	return value, nil
}

// Set stores a value with the given TTL. A zero TTL stores for a year;
// persistent backends need some expiry to keep the file bounded.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	if ttl == 0 {
		ttl = 365 * 24 * time.Hour
	}

	expiry := time.Now().Add(ttl).Unix()
	query := "INSERT OR REPLACE INTO cache (key, value, expiry) VALUES (?, ?, ?)"

	if _, err := c.db.ExecContext(ctx, query, key, value, expiry); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}
	return nil
}

// Delete removes a key.
func (c *Client) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if _, err := c.db.ExecContext(ctx, "DELETE FROM cache WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}
	return nil
}

// cleanupRoutine periodically removes expired entries.
func (c *Client) cleanupRoutine() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		_, _ = c.db.Exec("DELETE FROM cache WHERE expiry <= ?", time.Now().Unix())
	}
}

// Close closes the database connection.
func (c *Client) Close() error {
	return c.db.Close()
}
