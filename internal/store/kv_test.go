package store

import (
	"context"
	"errors"
	"testing"
)

// testKeyValue exercises the behavior every KeyValue backend shares.
func testKeyValue(t *testing.T, kv KeyValue) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		value, ok, err := kv.Get(ctx, "absent")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if ok || value != "" {
			t.Errorf("expected missing key, got ok=%v value=%q", ok, value)
		}
	})

	t.Run("set then get", func(t *testing.T) {
		if err := kv.Set(ctx, "todos", `[]`); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		value, ok, err := kv.Get(ctx, "todos")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !ok || value != `[]` {
			t.Errorf("expected %q, got ok=%v value=%q", `[]`, ok, value)
		}
	})

	t.Run("overwrite", func(t *testing.T) {
		if err := kv.Set(ctx, "todos", `[{"id":"1"}]`); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if err := kv.Set(ctx, "todos", `[{"id":"2"}]`); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		value, _, err := kv.Get(ctx, "todos")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if value != `[{"id":"2"}]` {
			t.Errorf("expected last write to win, got %q", value)
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		if err := kv.Set(ctx, "other", "x"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		value, _, _ := kv.Get(ctx, "todos")
		if value == "x" {
			t.Error("expected writes to other keys not to affect todos")
		}
	})

	t.Run("empty key", func(t *testing.T) {
		if err := kv.Set(ctx, "", "x"); !errors.Is(err, ErrEmptyKey) {
			t.Errorf("expected ErrEmptyKey from Set, got %v", err)
		}
		if _, _, err := kv.Get(ctx, ""); !errors.Is(err, ErrEmptyKey) {
			t.Errorf("expected ErrEmptyKey from Get, got %v", err)
		}
	})
}

func TestMemoryStore_KeyValue(t *testing.T) {
	testKeyValue(t, NewMemoryStore())
}
