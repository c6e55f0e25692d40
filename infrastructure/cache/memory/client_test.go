package memory

import (
	"context"
	"testing"
	"time"
)

func newTestCache() *MemoryCache {
	return NewMemoryCache(5*time.Minute, 10*time.Minute)
}

func TestNewMemoryCache(t *testing.T) {
	if cache := newTestCache(); cache == nil {
		t.Error("NewMemoryCache returned nil")
	}
}

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "test-key", []byte("test-value"), time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := cache.Get(ctx, "test-key")
	if err != nil {
		t.Errorf("Get returned error: %v", err)
	}
	if string(got) != "test-value" {
		t.Errorf("Get returned %s, want test-value", got)
	}
}

func TestMemoryCache_Get_NonExistentKey(t *testing.T) {
	cache := newTestCache()

	_, err := cache.Get(context.Background(), "missing")
	if err != ErrKeyNotFound {
		t.Errorf("Get returned %v, want ErrKeyNotFound", err)
	}
}

func TestMemoryCache_Get_Expired(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()

	cache.Set(ctx, "short-lived", []byte("v"), 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	if _, err := cache.Get(ctx, "short-lived"); err != ErrKeyNotFound {
		t.Errorf("Get returned %v, want ErrKeyNotFound after expiry", err)
	}
}

func TestMemoryCache_Set_ZeroTTLUsesDefault(t *testing.T) {
	cache := NewMemoryCache(time.Hour, time.Hour)
	ctx := context.Background()

	cache.Set(ctx, "default-ttl", []byte("v"), 0)

	if _, err := cache.Get(ctx, "default-ttl"); err != nil {
		t.Errorf("Get returned %v, want the default expiration applied", err)
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()

	cache.Set(ctx, "doomed", []byte("v"), time.Hour)
	if err := cache.Delete(ctx, "doomed"); err != nil {
		t.Errorf("Delete returned error: %v", err)
	}

	if _, err := cache.Get(ctx, "doomed"); err != ErrKeyNotFound {
		t.Error("deleted key still retrievable")
	}

	if err := cache.Delete(ctx, "never-existed"); err != nil {
		t.Errorf("deleting a missing key returned error: %v", err)
	}
}

func TestMemoryCache_GetReturnsCopy(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()

	cache.Set(ctx, "k", []byte("original"), time.Hour)

	first, _ := cache.Get(ctx, "k")
	first[0] = 'X'

	second, _ := cache.Get(ctx, "k")
	if string(second) != "original" {
		t.Error("mutating a returned value changed the cached bytes")
	}
}

func TestMemoryCache_CancelledContext(t *testing.T) {
	cache := newTestCache()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := cache.Get(ctx, "k"); err == nil {
		t.Error("Get with cancelled context should fail")
	}
	if err := cache.Set(ctx, "k", []byte("v"), time.Hour); err == nil {
		t.Error("Set with cancelled context should fail")
	}
}

func TestMemoryCache_Count(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()

	cache.Set(ctx, "a", []byte("1"), time.Hour)
	cache.Set(ctx, "b", []byte("2"), time.Hour)

	if count := cache.Count(); count != 2 {
		t.Errorf("Count = %d, want 2", count)
	}
}
