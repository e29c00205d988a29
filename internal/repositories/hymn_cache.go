package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kimandshin/hymn/internal/models"
	"github.com/kimandshin/hymn/internal/shared"
)

// HymnCacheRepository caches the remote hymn collection for offline browsing.
//
// The cache is a snapshot: Replace swaps the whole table inside one
// transaction so readers never observe a half-synced collection.
type HymnCacheRepository struct {
	db *sql.DB
}

// NewHymnCacheRepository creates a new HymnCacheRepository with the given database connection
func NewHymnCacheRepository(db *sql.DB) *HymnCacheRepository {
	return &HymnCacheRepository{db: db}
}

// Replace atomically replaces the cached collection with hymns,
// preserving collection order via the position column.
func (r *HymnCacheRepository) Replace(hymns []models.Hymn) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM hymns"); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	now := time.Now()
	for i, h := range hymns {
		payload, err := json.Marshal(h)
		if err != nil {
			return fmt.Errorf("failed to marshal hymn %s: %w", h.ID, err)
		}

		_, err = tx.Exec(
			"INSERT INTO hymns (id, hymn_id, position, payload, fetched_at) VALUES (?, ?, ?, ?, ?)",
			shared.GenerateID(), h.ID.String(), i, string(payload), now,
		)
		if err != nil {
			return fmt.Errorf("failed to insert hymn %s: %w", h.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cache replace: %w", err)
	}

	return nil
}

// List returns the cached collection in its original order.
// An empty cache returns zero hymns, not an error.
func (r *HymnCacheRepository) List() ([]models.Hymn, error) {
	rows, err := r.db.Query("SELECT payload FROM hymns ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query cache: %w", err)
	}
	defer rows.Close()

	var hymns []models.Hymn
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan cached hymn: %w", err)
		}

		var h models.Hymn
		if err := json.Unmarshal([]byte(payload), &h); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cached hymn: %w", err)
		}
		hymns = append(hymns, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cache rows: %w", err)
	}

	return hymns, nil
}

// FetchedAt returns when the cache was last synced, or the zero time for
// an empty cache.
func (r *HymnCacheRepository) FetchedAt() (time.Time, error) {
	var fetched sql.NullTime
	err := r.db.QueryRow("SELECT MAX(fetched_at) FROM hymns").Scan(&fetched)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read cache age: %w", err)
	}
	if !fetched.Valid {
		return time.Time{}, nil
	}
	return fetched.Time, nil
}

// Clear empties the cache.
func (r *HymnCacheRepository) Clear() error {
	if _, err := r.db.Exec("DELETE FROM hymns"); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}
