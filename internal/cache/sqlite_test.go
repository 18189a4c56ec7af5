package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestSQLiteCache(t *testing.T, ttl time.Duration) *SQLiteCache {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "session.db")
	c, err := NewSQLiteCache(dbPath, ttl, zerolog.Nop())
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestSQLiteCacheRoundTrip(t *testing.T) {
	c := newTestSQLiteCache(t, DefaultTTL)

	written := []cachedQuote{{Ticker: "AAPL", Price: "182.50"}}
	if err := c.Write(KeyTrendingStocks, written); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var read []cachedQuote
	if !c.Read(KeyTrendingStocks, &read) {
		t.Fatal("expected a cache hit straight after write")
	}
	if len(read) != 1 || read[0].Ticker != "AAPL" {
		t.Errorf("round trip mismatch: %+v", read)
	}
}

func TestSQLiteCacheExpiry(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	current := base

	c := newTestSQLiteCache(t, 5*time.Minute)
	c.SetClock(func() time.Time { return current })

	if err := c.Write(KeyMutualFunds, []cachedQuote{{Ticker: "F1"}}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var into []cachedQuote

	current = base.Add(2 * time.Minute)
	if !c.Read(KeyMutualFunds, &into) {
		t.Error("entry inside the TTL should hit")
	}

	current = base.Add(6 * time.Minute)
	if c.Read(KeyMutualFunds, &into) {
		t.Error("stale entry should miss")
	}
}

func TestSQLiteCacheKeysAreIndependent(t *testing.T) {
	c := newTestSQLiteCache(t, DefaultTTL)

	if err := c.Write(KeyTrendingStocks, []cachedQuote{{Ticker: "T"}}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var into []cachedQuote
	if c.Read(KeyExploreFunds, &into) {
		t.Error("writing one key must not populate another")
	}
	if !c.Read(KeyTrendingStocks, &into) {
		t.Error("written key should hit")
	}
}

func TestSQLiteCachePreferences(t *testing.T) {
	c := newTestSQLiteCache(t, DefaultTTL)

	if got := c.Preference("unset", "fallback"); got != "fallback" {
		t.Errorf("Preference for unset name = %q, want fallback", got)
	}

	if err := c.SetPreference("greeting", "hello"); err != nil {
		t.Fatalf("SetPreference failed: %v", err)
	}
	if got := c.Preference("greeting", "fallback"); got != "hello" {
		t.Errorf("Preference = %q, want hello", got)
	}

	if err := c.SetPreference("greeting", "hi"); err != nil {
		t.Fatalf("SetPreference overwrite failed: %v", err)
	}
	if got := c.Preference("greeting", "fallback"); got != "hi" {
		t.Errorf("Preference after overwrite = %q, want hi", got)
	}
}

func TestSQLiteCacheThemeDefaultsDark(t *testing.T) {
	c := newTestSQLiteCache(t, DefaultTTL)

	if got := c.Theme(); got != "dark" {
		t.Errorf("Theme default = %q, want dark", got)
	}

	if err := c.SetTheme("light"); err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}
	if got := c.Theme(); got != "light" {
		t.Errorf("Theme = %q, want light", got)
	}
}

func TestSQLiteCacheThemeSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "session.db")

	c, err := NewSQLiteCache(dbPath, DefaultTTL, zerolog.Nop())
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}
	if err := c.SetTheme("light"); err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}
	c.Close()

	reopened, err := NewSQLiteCache(dbPath, DefaultTTL, zerolog.Nop())
	if err != nil {
		t.Fatalf("Failed to reopen cache: %v", err)
	}
	defer reopened.Close()

	if got := reopened.Theme(); got != "light" {
		t.Errorf("Theme after reopen = %q, want light", got)
	}
}
