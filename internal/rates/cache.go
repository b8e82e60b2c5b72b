package rates

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/koboapp/kobo/internal/metrics"
)

// DefaultTTL is the freshness window for a cached snapshot.
const DefaultTTL = time.Hour

// Fetcher retrieves a fresh rate snapshot.
type Fetcher interface {
	Fetch(ctx context.Context) (Snapshot, error)
}

// SharedStore is an optional second-level store (redis) so multiple
// instances share one snapshot instead of each fetching independently.
type SharedStore interface {
	Get(ctx context.Context) ([]byte, error)
	Set(ctx context.Context, value []byte, ttl time.Duration) error
}

// Cache serves rate snapshots with a TTL. Construct one per process and
// inject it wherever conversion happens.
//
// The read-check-refresh sequence releases the lock around the network
// fetch, so concurrent callers at expiry may trigger duplicate fetches.
// The fetch is idempotent and cheap, so this is accepted rather than
// paying for single-flight locking.
type Cache struct {
	fetcher Fetcher
	shared  SharedStore
	ttl     time.Duration
	log     zerolog.Logger

	// now is swappable for tests.
	now func() time.Time

	mu       sync.Mutex
	snapshot Snapshot
	loaded   bool
}

// NewCache creates a rate cache. shared may be nil.
func NewCache(fetcher Fetcher, shared SharedStore, ttl time.Duration, log zerolog.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Cache{
		fetcher: fetcher,
		shared:  shared,
		ttl:     ttl,
		log:     log.With().Str("component", "rate_cache").Logger(),
		now:     time.Now,
	}
}

// Get returns the current snapshot: the cached one while fresh, a refreshed
// one after expiry, the previous (stale) one when the refresh fails, and
// the static fallback when nothing was ever fetched.
func (c *Cache) Get(ctx context.Context) Snapshot {
	now := c.now()

	c.mu.Lock()
	if c.loaded && now.Sub(c.snapshot.FetchedAt) < c.ttl {
		snapshot := c.snapshot
		c.mu.Unlock()
		return snapshot
	}
	stale, hasStale := c.snapshot, c.loaded
	c.mu.Unlock()

	if snapshot, ok := c.fromShared(ctx, now); ok {
		c.store(snapshot)
		return snapshot
	}

	snapshot, err := c.fetcher.Fetch(ctx)
	if err != nil {
		metrics.RateFetch("error")
		if hasStale {
			c.log.Warn().Err(err).Msg("rate refresh failed, serving stale snapshot")
			return stale
		}
		c.log.Warn().Err(err).Msg("rate fetch failed, serving static fallback")
		return Fallback(now)
	}

	metrics.RateFetch("success")
	c.store(snapshot)
	c.toShared(ctx, snapshot)

	return snapshot
}

func (c *Cache) store(snapshot Snapshot) {
	c.mu.Lock()
	c.snapshot = snapshot
	c.loaded = true
	c.mu.Unlock()
}

func (c *Cache) fromShared(ctx context.Context, now time.Time) (Snapshot, bool) {
	if c.shared == nil {
		return Snapshot{}, false
	}

	raw, err := c.shared.Get(ctx)
	if err != nil || len(raw) == 0 {
		return Snapshot{}, false
	}

	var snapshot Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return Snapshot{}, false
	}

	if now.Sub(snapshot.FetchedAt) >= c.ttl {
		return Snapshot{}, false
	}

	return snapshot, true
}

func (c *Cache) toShared(ctx context.Context, snapshot Snapshot) {
	if c.shared == nil {
		return
	}

	raw, err := json.Marshal(snapshot)
	if err != nil {
		return
	}

	if err := c.shared.Set(ctx, raw, c.ttl); err != nil {
		c.log.Debug().Err(err).Msg("failed to write snapshot to shared store")
	}
}
