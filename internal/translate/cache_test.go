package translate

import (
	"fmt"
	"testing"
)

func TestCacheKeyEmbedsContentHash(t *testing.T) {
	a := CacheKey("en", "hi", "hello")
	b := CacheKey("en", "hi", "hello there")
	if a == b {
		t.Fatalf("different texts produced the same key")
	}
	if a != CacheKey("en", "hi", "hello") {
		t.Fatalf("same input produced different keys")
	}
}

func TestCachePutGet(t *testing.T) {
	c := NewCache(10)
	c.Put("k1", "v1")
	got, ok := c.Get("k1")
	if !ok || got != "v1" {
		t.Fatalf("got (%q,%v), want (v1,true)", got, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Fatalf("unexpected hit for missing key")
	}
}

func TestCacheFIFOEviction(t *testing.T) {
	c := NewCache(defaultCacheCapacity)
	for i := 0; i < defaultCacheCapacity; i++ {
		c.Put(fmt.Sprintf("k%04d", i), "v")
	}
	if c.Len() != defaultCacheCapacity {
		t.Fatalf("len=%d, want %d", c.Len(), defaultCacheCapacity)
	}

	c.Put("overflow", "v")

	if c.Len() != defaultCacheCapacity-cacheEvictBatch+1 {
		t.Fatalf("len=%d after eviction, want %d", c.Len(), defaultCacheCapacity-cacheEvictBatch+1)
	}
	// The 100 insertion-oldest entries are gone; the 101st and the new
	// entry survive.
	if _, ok := c.Get("k0000"); ok {
		t.Fatalf("oldest entry survived eviction")
	}
	if _, ok := c.Get(fmt.Sprintf("k%04d", cacheEvictBatch-1)); ok {
		t.Fatalf("entry inside eviction batch survived")
	}
	if _, ok := c.Get(fmt.Sprintf("k%04d", cacheEvictBatch)); !ok {
		t.Fatalf("entry just past eviction batch was evicted")
	}
	if _, ok := c.Get("overflow"); !ok {
		t.Fatalf("new entry missing after eviction")
	}
}

func TestCacheOverwriteDoesNotEvict(t *testing.T) {
	c := NewCache(defaultCacheCapacity)
	for i := 0; i < defaultCacheCapacity; i++ {
		c.Put(fmt.Sprintf("k%04d", i), "v")
	}
	c.Put("k0000", "v2")
	if c.Len() != defaultCacheCapacity {
		t.Fatalf("len=%d after overwrite, want %d", c.Len(), defaultCacheCapacity)
	}
	got, _ := c.Get("k0000")
	if got != "v2" {
		t.Fatalf("overwrite lost: got %q", got)
	}
}
