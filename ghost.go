package driftwood

// GhostSample is one afterimage along a dodge roll's recent path.
type GhostSample struct {
	Pos    Vec2
	Alpha  float64
	TimeMs float64
}

// ghostStartAlpha is the alpha a freshly appended afterimage starts at.
const ghostStartAlpha = 0.55

// ghostState is one player's trail: a fixed-capacity ring buffer of samples
// plus the roll session it belongs to. The direction is pinned at roll start
// — the player's live facing can change mid-roll and the trail must not turn
// with it.
type ghostState struct {
	startMs    float64
	durationMs float64
	dir        Vec2

	samples []GhostSample // ring storage, len == capacity
	head    int           // index of oldest sample
	count   int
}

func (s *ghostState) push(sample GhostSample) {
	if s.count == len(s.samples) {
		// Full: overwrite the oldest.
		s.samples[s.head] = sample
		s.head = (s.head + 1) % len(s.samples)
		return
	}
	s.samples[(s.head+s.count)%len(s.samples)] = sample
	s.count++
}

// ghostCache maintains dodge-roll afterimage trails per player.
type ghostCache struct {
	states map[EntityKey]*ghostState

	capacity   int
	fadeStep   float64
	alphaFloor float64
	bufferMs   float64
}

func newGhostCache(t Tuning) *ghostCache {
	return &ghostCache{
		states:     make(map[EntityKey]*ghostState),
		capacity:   t.GhostCapacity,
		fadeStep:   t.GhostFadeStep,
		alphaFloor: t.GhostAlphaFloor,
		bufferMs:   t.RollBufferMS,
	}
}

// rolling reports whether the entity is visually dodging at nowMs, from the
// server's authoritative roll session only. Movement speed and sprint flags
// must never feed this — ordinary sprinting would false-positive.
func (c *ghostCache) rolling(e *Entity, nowMs float64) bool {
	if e.RollStart == 0 || e.RollDuration <= 0 {
		return false
	}
	elapsed := nowMs - e.RollStart
	return elapsed >= 0 && elapsed < e.RollDuration+c.bufferMs
}

// Advance steps the entity's trail one frame: while rolling, append the
// current render position with a fresh alpha; every frame, fade existing
// samples and drop the spent ones. The state is deleted once the roll is
// over and the buffer has emptied. Surviving samples are appended to buf
// oldest first and the grown buffer is returned (unchanged when there is no
// trail).
func (c *ghostCache) Advance(e *Entity, pos Vec2, nowMs float64, buf []GhostSample) []GhostSample {
	key := e.Key()
	s, ok := c.states[key]
	active := c.rolling(e, nowMs)

	if !ok {
		if !active {
			return buf
		}
		s = &ghostState{
			startMs:    e.RollStart,
			durationMs: e.RollDuration,
			dir:        e.RollDir,
			samples:    make([]GhostSample, c.capacity),
		}
		c.states[key] = s
	} else if active && s.startMs != e.RollStart {
		// New roll session: re-pin direction, keep surviving samples so
		// back-to-back rolls chain visually.
		s.startMs = e.RollStart
		s.durationMs = e.RollDuration
		s.dir = e.RollDir
	}

	// Fade before appending so the newest sample keeps its fresh alpha for
	// one full frame.
	s.fade(c.fadeStep, c.alphaFloor)

	if active {
		s.push(GhostSample{Pos: pos, Alpha: ghostStartAlpha, TimeMs: nowMs})
	}

	if s.count == 0 {
		if !active {
			delete(c.states, key)
		}
		return buf
	}

	for i := 0; i < s.count; i++ {
		buf = append(buf, s.samples[(s.head+i)%len(s.samples)])
	}
	return buf
}

// fade decays every sample and evicts those at or below the floor. Samples
// age oldest-first, so eviction only ever advances head.
func (s *ghostState) fade(step, floor float64) {
	n := len(s.samples)
	for i := 0; i < s.count; i++ {
		s.samples[(s.head+i)%n].Alpha -= step
	}
	for s.count > 0 && s.samples[s.head].Alpha <= floor {
		s.head = (s.head + 1) % n
		s.count--
	}
}

// Direction returns the pinned roll direction for the entity's active trail.
func (c *ghostCache) Direction(key EntityKey) (Vec2, bool) {
	s, ok := c.states[key]
	if !ok {
		return Vec2{}, false
	}
	return s.dir, true
}

// prune drops state for entities no longer present in the snapshot.
func (c *ghostCache) prune(live map[EntityKey]struct{}) {
	for key := range c.states {
		if _, ok := live[key]; !ok {
			delete(c.states, key)
		}
	}
}

func (c *ghostCache) len() int {
	return len(c.states)
}
