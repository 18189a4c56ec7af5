package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"lockedin-cli/internal/logging"
)

// SQLiteCache implements Cache on a session-scoped SQLite file. It also
// carries the preferences table, which outlives the session (the theme
// setting persists across runs; cache entries expire via TTL).
type SQLiteCache struct {
	db     *sql.DB
	ttl    time.Duration
	logger zerolog.Logger
	now    func() time.Time
}

// NewSQLiteCache opens (or creates) the cache database at dbPath.
func NewSQLiteCache(dbPath string, ttl time.Duration, logger zerolog.Logger) (*SQLiteCache, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	c := &SQLiteCache{
		db:     db,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}

	if err := c.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize cache schema: %w", err)
	}

	return c, nil
}

func (c *SQLiteCache) initSchema() error {
	schema := `
	-- Session cache entries, one row per fixed view key
	CREATE TABLE IF NOT EXISTS session_cache (
		cache_key TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		timestamp INTEGER NOT NULL
	);

	-- User preferences, persisted across sessions
	CREATE TABLE IF NOT EXISTS preferences (
		name TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := c.db.Exec(schema)
	return err
}

// SetClock overrides the cache clock for tests.
func (c *SQLiteCache) SetClock(now func() time.Time) {
	c.now = now
}

// Read deserializes the entry for key into into. Any failure along the
// way (no row, stale timestamp, bad payload) is a plain miss; the caller
// falls through to a live fetch.
func (c *SQLiteCache) Read(key string, into interface{}) bool {
	var payload string
	var ts int64
	err := c.db.QueryRow(
		"SELECT payload, timestamp FROM session_cache WHERE cache_key = ?", key,
	).Scan(&payload, &ts)
	if err != nil {
		if err != sql.ErrNoRows {
			logging.LogCacheMiss(c.logger, key, err.Error())
		}
		return false
	}

	if !fresh(ts, c.ttl, c.now()) {
		logging.LogCacheMiss(c.logger, key, "stale")
		return false
	}

	if err := json.Unmarshal([]byte(payload), into); err != nil {
		logging.LogCacheMiss(c.logger, key, "unparsable payload")
		return false
	}

	logging.LogCacheHit(c.logger, key)
	return true
}

// Write stores data under key, overwriting any prior entry for that key.
func (c *SQLiteCache) Write(key string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	_, err = c.db.Exec(`
		INSERT INTO session_cache (cache_key, payload, timestamp) VALUES (?, ?, ?)
		ON CONFLICT(cache_key) DO UPDATE SET payload = excluded.payload, timestamp = excluded.timestamp`,
		key, string(payload), c.now().UnixMilli(),
	)
	return err
}

// Preference returns a persisted preference value, or fallback if unset.
func (c *SQLiteCache) Preference(name, fallback string) string {
	var value string
	err := c.db.QueryRow("SELECT value FROM preferences WHERE name = ?", name).Scan(&value)
	if err != nil {
		return fallback
	}
	return value
}

// SetPreference persists a preference value.
func (c *SQLiteCache) SetPreference(name, value string) error {
	_, err := c.db.Exec(`
		INSERT INTO preferences (name, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		name, value,
	)
	return err
}

// Theme preference helpers. The theme is the one preference that
// survives across sessions.
const prefTheme = "theme"

// Theme returns the persisted theme name.
func (c *SQLiteCache) Theme() string {
	return c.Preference(prefTheme, "dark")
}

// SetTheme persists the theme name.
func (c *SQLiteCache) SetTheme(theme string) error {
	return c.SetPreference(prefTheme, theme)
}

// Close closes the underlying database.
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}
