package driftwood

import "math"

// Sway shape constants. Amplitudes are radians.
const (
	idleSwayAmplitude = 0.06 // ambient breeze
	idleSwayHz        = 0.8
	disturbAmplitude  = 0.35 // peak lean when walked through
	disturbHz         = 6.0  // disturbed foliage whips faster than idle sway

	jitterRotationMax = 0.15 // static per-entity rotation, ±
	jitterScaleSpread = 0.2  // static per-entity scale in [0.9, 1.1]

	swaySweepIntervalMs = 1000
)

// SwayResult is the derived visual state for one swaying entity this frame.
type SwayResult struct {
	// Angle is the current lean in radians, positive leaning right.
	Angle float64
	// Rotation and Scale are the static seed-derived jitter, identical
	// every frame for a given entity. Scale is 1 and Rotation 0 for kinds
	// not flagged for jitter.
	Rotation float64
	Scale    float64
}

// swayKey includes the disturbance token so a fresh disturbance invalidates
// the cached result instantly instead of waiting out the TTL.
type swayKey struct {
	key   EntityKey
	token float64
}

type swayEntry struct {
	computedAt float64
	result     SwayResult
}

// swayCache evaluates foliage disturbance and ambient sway, memoizing
// results for a short TTL. Recomputing trig for thousands of foliage
// entities sixty times a second is wasteful and sub-TTL staleness is
// invisible at these frequencies.
type swayCache struct {
	entries map[swayKey]swayEntry

	ttlMs       float64
	durationMs  float64
	fadeFactor  float64
	lastSweepMs float64
}

func newSwayCache(t Tuning) *swayCache {
	return &swayCache{
		entries:    make(map[swayKey]swayEntry),
		ttlMs:      t.SwayCacheTTLMS,
		durationMs: t.DisturbDurationMS,
		fadeFactor: t.DisturbFadeFactor,
	}
}

// Evaluate returns the sway state for e at nowMs, serving a cached result
// when one is fresh enough. Also runs the periodic expired-entry sweep so
// the cache stays bounded without per-entity deletes.
func (c *swayCache) Evaluate(e *Entity, nowMs float64) SwayResult {
	c.maybeSweep(nowMs)

	k := swayKey{key: e.Key(), token: e.DisturbedAt}
	if entry, ok := c.entries[k]; ok && nowMs-entry.computedAt < c.ttlMs {
		return entry.result
	}

	r := c.compute(e, nowMs)
	c.entries[k] = swayEntry{computedAt: nowMs, result: r}
	return r
}

func (c *swayCache) compute(e *Entity, nowMs float64) SwayResult {
	seed := entitySeed(e.Key())
	r := SwayResult{Scale: 1}

	if e.Kind < kindCount && kindTable[e.Kind].jitter {
		r.Rotation = (seedFloat(seed)*2 - 1) * jitterRotationMax
		r.Scale = 1 - jitterScaleSpread/2 + seedFloat(seed^0x9e3779b97f4a7c15)*jitterScaleSpread
	}

	elapsed := nowMs - e.DisturbedAt
	if e.DisturbedAt > 0 && elapsed >= 0 && elapsed < c.durationMs {
		// Directional disturbance, settling as (1-progress)^fade. The
		// lateral lean scales with the direction's X component, so a
		// walk-through along the Y axis barely tips the plant sideways.
		progress := elapsed / c.durationMs
		strength := math.Pow(1-progress, c.fadeFactor)
		osc := math.Sin(nowMs / 1000 * 2 * math.Pi * disturbHz)
		r.Angle = e.DisturbDir.X * strength * disturbAmplitude * osc
		return r
	}

	// Idle sway: phase comes from the entity seed so neighboring plants
	// desynchronize without storing per-entity phase.
	phase := seedFloat(seed^0x6a09e667f3bcc909) * 2 * math.Pi
	r.Angle = idleSwayAmplitude * math.Sin(nowMs/1000*2*math.Pi*idleSwayHz+phase)
	return r
}

// maybeSweep drops expired entries at a coarse interval, bounding the cache
// without tracking entity removal explicitly.
func (c *swayCache) maybeSweep(nowMs float64) {
	if nowMs-c.lastSweepMs < swaySweepIntervalMs {
		return
	}
	c.lastSweepMs = nowMs
	for k, entry := range c.entries {
		if nowMs-entry.computedAt >= c.ttlMs {
			delete(c.entries, k)
		}
	}
}

// prune drops entries for entities no longer present in the snapshot.
func (c *swayCache) prune(live map[EntityKey]struct{}) {
	for k := range c.entries {
		if _, ok := live[k.key]; !ok {
			delete(c.entries, k)
		}
	}
}

func (c *swayCache) len() int {
	return len(c.entries)
}

// entitySeed hashes an entity key into a stable 64-bit seed (splitmix64
// finalizer). The same entity gets the same seed every frame and process.
func entitySeed(key EntityKey) uint64 {
	z := key.ID ^ (uint64(key.Kind) << 56)
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// seedFloat maps a seed to [0, 1).
func seedFloat(seed uint64) float64 {
	return float64(seed>>11) / (1 << 53)
}
