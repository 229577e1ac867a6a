package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func setupTestRedis(t *testing.T, prefix string) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	store, err := NewRedisStore(context.Background(), mr.Addr(), "", 0, prefix)
	if err != nil {
		t.Fatalf("failed to create redis store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, mr
}

func TestRedisStore_KeyValue(t *testing.T) {
	store, _ := setupTestRedis(t, "gtd")
	testKeyValue(t, store)
}

func TestRedisStore_PrefixesKeys(t *testing.T) {
	store, mr := setupTestRedis(t, "gtd")

	if err := store.Set(context.Background(), "todos", `[]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := mr.Get("gtd:todos")
	if err != nil {
		t.Fatalf("expected prefixed key in redis: %v", err)
	}
	if got != `[]` {
		t.Errorf("expected %q, got %q", `[]`, got)
	}
	if mr.TTL("gtd:todos") != 0 {
		t.Error("expected key without expiry")
	}
}

func TestNewRedisStore_Unreachable(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	addr := mr.Addr()
	mr.Close()

	if _, err := NewRedisStore(context.Background(), addr, "", 0, ""); err == nil {
		t.Fatal("expected error connecting to a closed server")
	}
}
