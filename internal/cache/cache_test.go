package cache

import (
	"testing"
	"time"
)

func TestCache_PutGet_NoTTL(t *testing.T) {
	c := New[string, int](0)
	c.Put("a", 1)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("expected hit with value 1, got ok=%v v=%v", ok, v)
	}
	if c.Len() != 1 {
		t.Fatalf("expected Len=1, got %d", c.Len())
	}
}

func TestCache_TTLExpiry(t *testing.T) {
	c := New[string, string](time.Second)

	// Freeze time via now indirection
	base := time.Now()
	now = func() time.Time { return base }
	t.Cleanup(func() { now = time.Now })

	c.Put("k", "v")
	if v, ok := c.Get("k"); !ok || v != "v" {
		t.Fatalf("expected hit before expiry")
	}

	base = base.Add(2 * time.Second)
	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected miss after expiry")
	}
	if c.Len() != 0 {
		t.Fatalf("expected Len=0 after expiry, got %d", c.Len())
	}
}

func TestCache_InvalidateAndFlush(t *testing.T) {
	c := New[int, int](0)
	c.Put(1, 10)
	c.Put(2, 20)

	c.Invalidate(1)
	if _, ok := c.Get(1); ok {
		t.Fatalf("expected key 1 to be invalidated")
	}
	if _, ok := c.Get(2); !ok {
		t.Fatalf("expected key 2 to survive")
	}

	c.Flush()
	if c.Len() != 0 {
		t.Fatalf("expected empty cache after Flush, got %d", c.Len())
	}
}
