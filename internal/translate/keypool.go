package translate

import (
	"errors"
	"sync"
	"time"
)

// ErrAllKeysCoolingDown is the one failure this package propagates upward:
// every configured credential is rate-limited, so the caller must decide
// whether to serve English instead.
var ErrAllKeysCoolingDown = errors.New("all translation credentials are cooling down")

const defaultKeyCooldown = 60 * time.Second

// KeyPool rotates through an ordered list of backend credentials, skipping
// keys that recently hit a rate limit. Read-check-then-write sequences are
// guarded by the mutex; safe for concurrent use.
type KeyPool struct {
	mu            sync.Mutex
	keys          []string
	current       int
	cooldownUntil map[string]time.Time
	cooldown      time.Duration
	now           func() time.Time
}

func NewKeyPool(keys []string) *KeyPool {
	return &KeyPool{
		keys:          keys,
		cooldownUntil: make(map[string]time.Time),
		cooldown:      defaultKeyCooldown,
		now:           time.Now,
	}
}

func (p *KeyPool) Size() int {
	return len(p.keys)
}

// Current returns the active credential. If the active key is cooling down,
// it rotates to the next eligible one first.
func (p *KeyPool) Current() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.keys) == 0 {
		return "", false
	}
	key := p.keys[p.current]
	if p.cooldownUntil[key].After(p.now()) {
		return p.rotateLocked()
	}
	return key, true
}

// MarkRateLimited stamps a cooldown on the key and rotates. Returns the next
// eligible credential, or false when every key is cooling down.
func (p *KeyPool) MarkRateLimited(key string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cooldownUntil[key] = p.now().Add(p.cooldown)
	return p.rotateLocked()
}

// rotateLocked scans forward from the slot after current, wrapping once
// around the full list, and activates the first key whose cooldown expired.
func (p *KeyPool) rotateLocked() (string, bool) {
	n := len(p.keys)
	if n == 0 {
		return "", false
	}
	now := p.now()
	for step := 1; step <= n; step++ {
		idx := (p.current + step) % n
		key := p.keys[idx]
		if !p.cooldownUntil[key].After(now) {
			p.current = idx
			return key, true
		}
	}
	return "", false
}
