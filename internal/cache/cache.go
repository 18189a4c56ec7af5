// Package cache provides the TTL-based session cache used by the
// trending-stocks and mutual-fund views.
package cache

import (
	"encoding/json"
	"time"
)

// DefaultTTL is the fixed freshness window for cached entries.
const DefaultTTL = 5 * time.Minute

// Fixed cache keys, one per distinct view.
const (
	KeyTrendingStocks = "trending_stocks_cache"
	KeyExploreFunds   = "explore_mf_cache"
	KeyMutualFunds    = "mutualfunds_cache"
)

// Cache is the session cache capability handed to views. Read never
// fails: an absent, unparsable or stale entry is reported as a miss and
// the caller re-fetches. Write overwrites unconditionally.
type Cache interface {
	Read(key string, into interface{}) bool
	Write(key string, data interface{}) error
}

// envelope is the stored entry shape: the payload plus its write time in
// epoch milliseconds.
type envelope struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}

// fresh reports whether an entry written at ts is still inside the TTL.
func fresh(ts int64, ttl time.Duration, now time.Time) bool {
	age := now.UnixMilli() - ts
	return age >= 0 && age < ttl.Milliseconds()
}
