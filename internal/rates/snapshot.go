// Package rates fetches and caches the USD-based exchange rate table the
// currency converter depends on.
package rates

import "time"

// Snapshot is one capture of the USD-based rate table. NGN and GBP are
// units per USD.
type Snapshot struct {
	USD       float64   `json:"usd"`
	NGN       float64   `json:"ngn"`
	GBP       float64   `json:"gbp"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Fallback returns the static snapshot used when the rate service is
// unreachable and no earlier capture exists.
func Fallback(now time.Time) Snapshot {
	return Snapshot{
		USD:       1,
		NGN:       1550,
		GBP:       0.79,
		FetchedAt: now,
	}
}
