package redis

import (
	"context"
	"testing"
	"time"
)

func TestRateStoreSetAndGet(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewRateStore(client)
	ctx := context.Background()

	payload := []byte(`{"ngn":1550,"gbp":0.79}`)
	if err := store.Set(ctx, payload, time.Hour); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("expected %s, got %s", payload, got)
	}
}

func TestRateStoreGetMissing(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewRateStore(client)

	got, err := store.Get(context.Background())
	if err != nil {
		t.Fatalf("expected no error for missing key, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil payload, got %s", got)
	}
}

func TestRateStoreExpiry(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewRateStore(client)
	ctx := context.Background()

	if err := store.Set(ctx, []byte(`{}`), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	got, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("get after expiry failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected expired key to read as missing, got %s", got)
	}
}
