// package repositories provides the local persistence layer for the client.
//
// The only persistent state the client owns is the working feed cache: one
// serialized item list per identity key. Writes are full overwrites and
// reads of absent or corrupted rows yield an empty list, never an error —
// a broken cache degrades to an empty feed, nothing worse.
package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rkhatta1/TheVersusProject/internal/models"
)

// GuestCacheKey partitions feed state for unauthenticated sessions.
const GuestCacheKey = "news_guest"

// CacheKey derives the feed cache partition key for an identity token.
//
// The key is a pure function of the token; every cache access must go
// through it so one identity can never read another's rows.
func CacheKey(token string) string {
	if token == "" {
		return GuestCacheKey
	}
	return "news_" + token
}

// FeedCacheRepository persists per-identity feed snapshots in the feed_cache table.
type FeedCacheRepository struct {
	db *sql.DB
}

// NewFeedCacheRepository creates a new [FeedCacheRepository] with the given database connection
func NewFeedCacheRepository(db *sql.DB) *FeedCacheRepository {
	return &FeedCacheRepository{db: db}
}

// Read returns the item list stored under key.
//
// An absent row or an unparseable payload both yield an empty list.
func (r *FeedCacheRepository) Read(key string) []models.NewsItem {
	var payload string
	err := r.db.QueryRow("SELECT payload FROM feed_cache WHERE cache_key = ?", key).Scan(&payload)
	if err != nil {
		return []models.NewsItem{}
	}

	var items []models.NewsItem
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		return []models.NewsItem{}
	}
	if items == nil {
		items = []models.NewsItem{}
	}

	return items
}

// Write stores the item list under key, replacing any previous snapshot.
func (r *FeedCacheRepository) Write(key string, items []models.NewsItem) error {
	if items == nil {
		items = []models.NewsItem{}
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode feed snapshot: %w", err)
	}

	query := `
		INSERT INTO feed_cache (cache_key, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(cache_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`
	if _, err := r.db.Exec(query, key, string(payload), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to write feed snapshot: %w", err)
	}

	return nil
}

// Clear removes the snapshot stored under key, if any.
func (r *FeedCacheRepository) Clear(key string) error {
	if _, err := r.db.Exec("DELETE FROM feed_cache WHERE cache_key = ?", key); err != nil {
		return fmt.Errorf("failed to clear feed snapshot: %w", err)
	}
	return nil
}

// Keys lists every cache key with a stored snapshot, for diagnostics.
func (r *FeedCacheRepository) Keys() ([]string, error) {
	rows, err := r.db.Query("SELECT cache_key FROM feed_cache ORDER BY cache_key")
	if err != nil {
		return nil, fmt.Errorf("failed to list cache keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan cache key: %w", err)
		}
		keys = append(keys, key)
	}

	return keys, rows.Err()
}
