package translate

import (
	"testing"
	"time"
)

func TestKeyPoolRotatesOnRateLimit(t *testing.T) {
	p := NewKeyPool([]string{"k1", "k2", "k3"})

	key, ok := p.Current()
	if !ok || key != "k1" {
		t.Fatalf("current=(%q,%v), want (k1,true)", key, ok)
	}

	key, ok = p.MarkRateLimited("k1")
	if !ok || key != "k2" {
		t.Fatalf("after k1 limited: (%q,%v), want (k2,true)", key, ok)
	}

	// k2 also limited while k1 is still cooling: k3 takes over.
	key, ok = p.MarkRateLimited("k2")
	if !ok || key != "k3" {
		t.Fatalf("after k2 limited: (%q,%v), want (k3,true)", key, ok)
	}
}

func TestKeyPoolExhaustion(t *testing.T) {
	p := NewKeyPool([]string{"k1", "k2"})
	if _, ok := p.MarkRateLimited("k1"); !ok {
		t.Fatalf("k2 should still be eligible")
	}
	if _, ok := p.MarkRateLimited("k2"); ok {
		t.Fatalf("rotation succeeded with every key cooling down")
	}
	if _, ok := p.Current(); ok {
		t.Fatalf("Current returned a cooling key")
	}
}

func TestKeyPoolSingleKeyNeverRotates(t *testing.T) {
	p := NewKeyPool([]string{"only"})
	if _, ok := p.MarkRateLimited("only"); ok {
		t.Fatalf("single-key pool rotated onto its cooling key")
	}
}

func TestKeyPoolCooldownExpires(t *testing.T) {
	now := time.Now()
	p := NewKeyPool([]string{"k1", "k2"})
	p.now = func() time.Time { return now }

	p.MarkRateLimited("k1")
	p.MarkRateLimited("k2")
	if _, ok := p.Current(); ok {
		t.Fatalf("keys available while cooling")
	}

	now = now.Add(defaultKeyCooldown + time.Second)
	key, ok := p.Current()
	if !ok {
		t.Fatalf("no key after cooldown expired")
	}
	if key != "k1" && key != "k2" {
		t.Fatalf("unexpected key %q", key)
	}
}
