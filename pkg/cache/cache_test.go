package cache

import (
	"testing"
	"time"
)

// fakeClock advances only when told to, so expiry is deterministic.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func TestCache_PutGet(t *testing.T) {
	c := New[string](time.Minute)

	c.Put("k", "v")
	got, ok := c.Get("k")
	if !ok || got != "v" {
		t.Fatalf("Get(k) = %q, %v; want v, true", got, ok)
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("expected miss for unknown key")
	}
}

func TestCache_EntriesExpire(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewWithClock[int](time.Hour, clock.now)

	c.Put("k", 42)

	clock.advance(59 * time.Minute)
	if _, ok := c.Get("k"); !ok {
		t.Fatal("entry expired before its TTL")
	}

	clock.advance(2 * time.Minute)
	if _, ok := c.Get("k"); ok {
		t.Fatal("entry survived past its TTL")
	}
	// The expired entry is dropped on access.
	if c.Len() != 0 {
		t.Errorf("expected empty cache after expired read, got %d entries", c.Len())
	}
}

func TestCache_PutRefreshesExpiry(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewWithClock[int](time.Hour, clock.now)

	c.Put("k", 1)
	clock.advance(50 * time.Minute)
	c.Put("k", 2)
	clock.advance(50 * time.Minute)

	got, ok := c.Get("k")
	if !ok || got != 2 {
		t.Fatalf("Get(k) = %d, %v; want 2, true after re-put", got, ok)
	}
}

func TestCache_Delete(t *testing.T) {
	c := New[string](time.Minute)

	c.Put("k", "v")
	c.Delete("k")

	if _, ok := c.Get("k"); ok {
		t.Error("expected miss after Delete")
	}
}

func TestCache_ZeroValueOnMiss(t *testing.T) {
	c := New[[]float64](time.Minute)

	got, ok := c.Get("absent")
	if ok || got != nil {
		t.Errorf("expected nil slice on miss, got %v, %v", got, ok)
	}
}
