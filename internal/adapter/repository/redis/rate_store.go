package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const rateSnapshotKey = "rates:snapshot"

// RateStore implements rates.SharedStore using Redis so all instances
// share one exchange-rate snapshot.
type RateStore struct {
	client *redis.Client
}

// NewRateStore creates a new RateStore.
func NewRateStore(client *redis.Client) *RateStore {
	return &RateStore{client: client}
}

// Get retrieves the stored snapshot. A missing key returns nil, nil.
func (s *RateStore) Get(ctx context.Context) ([]byte, error) {
	raw, err := s.client.Get(ctx, rateSnapshotKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return raw, nil
}

// Set stores a snapshot with TTL.
func (s *RateStore) Set(ctx context.Context, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, rateSnapshotKey, value, ttl).Err()
}
