package driftwood

import "math/rand/v2"

// hitState tracks one entity's in-flight hit effect. The effect clock is the
// local observation time of the token change, not the server timestamp, so
// the on-screen duration is immune to network jitter and out-of-order
// delivery.
type hitState struct {
	token   float64 // last server hit token processed
	startMs float64 // local time the effect started
}

// hitFXCache runs the hit shake/flash state machine for all entities.
// Owned by a RenderContext; all access is from the render goroutine.
type hitFXCache struct {
	states map[EntityKey]hitState

	shakeDurMs float64
	flashDurMs float64
	amplitude  float64

	rng *rand.Rand
}

func newHitFXCache(t Tuning, rng *rand.Rand) *hitFXCache {
	return &hitFXCache{
		states:     make(map[EntityKey]hitState),
		shakeDurMs: t.ShakeDurationMS,
		flashDurMs: t.FlashDurationMS,
		amplitude:  t.ShakeAmplitude,
		rng:        rng,
	}
}

// Observe feeds one frame's server hit token for an entity. A non-zero token
// newer than the last one processed starts the effect at nowMs. Tokens are
// server timestamps, so a token equal to or older than the last-seen one is
// a duplicate or out-of-order redelivery and is a strict no-op — it neither
// restarts nor extends the timer. A zero token means the server cleared the
// hit and the entry is dropped.
func (c *hitFXCache) Observe(key EntityKey, token, nowMs float64) {
	if token == 0 {
		delete(c.states, key)
		return
	}
	s, ok := c.states[key]
	if ok && token <= s.token {
		return
	}
	c.states[key] = hitState{token: token, startMs: nowMs}
}

// ShakeOffset returns this frame's random shake displacement, resampled every
// call while the shake window is open, and zero afterwards.
func (c *hitFXCache) ShakeOffset(key EntityKey, nowMs float64) Vec2 {
	s, ok := c.states[key]
	if !ok || nowMs-s.startMs >= c.shakeDurMs || nowMs < s.startMs {
		return Vec2{}
	}
	a := c.amplitude
	return Vec2{
		X: (c.rng.Float64()*2 - 1) * a,
		Y: (c.rng.Float64()*2 - 1) * a,
	}
}

// Flash reports whether the sprite should be whitened this frame. The flash
// window is shorter than the shake window.
func (c *hitFXCache) Flash(key EntityKey, nowMs float64) bool {
	s, ok := c.states[key]
	return ok && nowMs >= s.startMs && nowMs-s.startMs < c.flashDurMs
}

// prune drops state for entities no longer present in the snapshot.
func (c *hitFXCache) prune(live map[EntityKey]struct{}) {
	for key := range c.states {
		if _, ok := live[key]; !ok {
			delete(c.states, key)
		}
	}
}

func (c *hitFXCache) len() int {
	return len(c.states)
}
