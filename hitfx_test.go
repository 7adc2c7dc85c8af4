package driftwood

import (
	"math"
	"math/rand/v2"
	"testing"
)

func newTestHitFX() *hitFXCache {
	return newHitFXCache(DefaultTuning(), rand.New(rand.NewPCG(1, 2)))
}

func TestHitFXStartsOnNewToken(t *testing.T) {
	c := newTestHitFX()
	key := EntityKey{Kind: KindStone, ID: 1}

	c.Observe(key, 5000, 1000)
	off := c.ShakeOffset(key, 1001)
	if off.X == 0 && off.Y == 0 {
		t.Error("shake offset should be nonzero right after a hit")
	}
	a := c.amplitude
	if math.Abs(off.X) > a || math.Abs(off.Y) > a {
		t.Errorf("offset %+v exceeds amplitude %f", off, a)
	}
	if !c.Flash(key, 1001) {
		t.Error("flash should be active right after a hit")
	}
}

func TestHitFXIdempotentWithinFrame(t *testing.T) {
	c := newTestHitFX()
	key := EntityKey{Kind: KindStone, ID: 1}

	c.Observe(key, 5000, 1000)
	start := c.states[key].startMs

	// Same token again, same frame and later frames: timer untouched.
	c.Observe(key, 5000, 1000)
	c.Observe(key, 5000, 1250)
	if got := c.states[key].startMs; got != start {
		t.Errorf("startMs = %f after duplicate tokens, want %f", got, start)
	}
}

func TestHitFXStaleTokenIgnored(t *testing.T) {
	c := newTestHitFX()
	key := EntityKey{Kind: KindStone, ID: 1}

	// Tokens are server timestamps; the network can redeliver an older one
	// after a newer one. That must not restart the effect.
	c.Observe(key, 5000, 1000)
	c.Observe(key, 4000, 1200)
	if got := c.states[key].startMs; got != 1000 {
		t.Errorf("startMs = %f after stale token, want 1000", got)
	}
	if got := c.states[key].token; got != 5000 {
		t.Errorf("token = %f after stale token, want 5000 retained", got)
	}
}

func TestHitFXNewTokenRestarts(t *testing.T) {
	c := newTestHitFX()
	key := EntityKey{Kind: KindTree, ID: 3}

	c.Observe(key, 5000, 1000)
	c.Observe(key, 7000, 1400)
	if got := c.states[key].startMs; got != 1400 {
		t.Errorf("startMs = %f after fresh token, want 1400", got)
	}
}

func TestHitFXExpiry(t *testing.T) {
	c := newTestHitFX()
	key := EntityKey{Kind: KindStone, ID: 1}
	c.Observe(key, 5000, 1000)

	shakeEnd := 1000 + c.shakeDurMs
	flashEnd := 1000 + c.flashDurMs

	if off := c.ShakeOffset(key, shakeEnd-1); off.X == 0 && off.Y == 0 {
		t.Error("shake should still run one frame before expiry")
	}
	if off := c.ShakeOffset(key, shakeEnd); off != (Vec2{}) {
		t.Errorf("offset %+v at expiry, want zero", off)
	}
	if !c.Flash(key, flashEnd-1) {
		t.Error("flash should still be on one frame before its expiry")
	}
	if c.Flash(key, flashEnd) {
		t.Error("flash should be off at its expiry")
	}
	// Flash ends before shake.
	if !(c.flashDurMs < c.shakeDurMs) {
		t.Fatal("default tuning must keep flash shorter than shake")
	}
}

func TestHitFXClearedTokenDeletes(t *testing.T) {
	c := newTestHitFX()
	key := EntityKey{Kind: KindStone, ID: 1}
	c.Observe(key, 5000, 1000)
	c.Observe(key, 0, 1100)
	if _, ok := c.states[key]; ok {
		t.Error("zero token should delete the cache entry")
	}
	if off := c.ShakeOffset(key, 1101); off != (Vec2{}) {
		t.Errorf("offset %+v after clear, want zero", off)
	}
}

func TestHitFXPrune(t *testing.T) {
	c := newTestHitFX()
	a := EntityKey{Kind: KindStone, ID: 1}
	b := EntityKey{Kind: KindStone, ID: 2}
	c.Observe(a, 5000, 1000)
	c.Observe(b, 5000, 1000)

	live := map[EntityKey]struct{}{a: {}}
	c.prune(live)
	if _, ok := c.states[b]; ok {
		t.Error("pruned entity should be gone from the hit cache")
	}
	if _, ok := c.states[a]; !ok {
		t.Error("live entity should survive pruning")
	}
}

func TestHitFXOffsetResampled(t *testing.T) {
	c := newTestHitFX()
	key := EntityKey{Kind: KindStone, ID: 1}
	c.Observe(key, 5000, 1000)

	first := c.ShakeOffset(key, 1001)
	different := false
	for i := 0; i < 16; i++ {
		if c.ShakeOffset(key, 1001) != first {
			different = true
			break
		}
	}
	if !different {
		t.Error("shake offset should be resampled on every call")
	}
}
