package driftwood

import "math"

// interpState holds one entity's movement-smoothing values: the last server
// position seen, the smoothing target, and the position actually rendered.
type interpState struct {
	lastServer   Vec2
	target       Vec2
	interp       Vec2
	lastUpdateMs float64
}

// interpCache smooths server position updates for kinds flagged as
// interpolated. Server snapshots arrive at a coarser cadence than the render
// loop, so raw positions stutter; the smoother converges exponentially on
// the latest target, except that implausibly large jumps (teleports,
// respawns) snap immediately to avoid a visible glide across the map.
type interpCache struct {
	states map[EntityKey]*interpState

	noise    float64 // deltas below this are ignored as jitter
	teleport float64 // deltas above this snap instead of smoothing
	k        float64 // per-frame exponential smoothing factor
}

func newInterpCache(t Tuning) *interpCache {
	return &interpCache{
		states:   make(map[EntityKey]*interpState),
		noise:    t.MovementNoise,
		teleport: t.TeleportDistance,
		k:        t.SmoothingFactor,
	}
}

// Advance ingests this frame's server position and runs one smoothing step,
// returning the position to render. First sighting of an entity snaps.
func (c *interpCache) Advance(key EntityKey, serverPos Vec2, nowMs float64) Vec2 {
	s, ok := c.states[key]
	if !ok {
		s = &interpState{lastServer: serverPos, target: serverPos, interp: serverPos}
		c.states[key] = s
	}

	dx := serverPos.X - s.lastServer.X
	dy := serverPos.Y - s.lastServer.Y
	if math.Abs(dx) > c.noise || math.Abs(dy) > c.noise {
		if math.Hypot(dx, dy) > c.teleport {
			// Teleport or respawn: no smoothing artifact.
			s.target = serverPos
			s.interp = serverPos
		} else {
			s.target = serverPos
		}
		s.lastServer = serverPos
	}

	s.interp.X += (s.target.X - s.interp.X) * c.k
	s.interp.Y += (s.target.Y - s.interp.Y) * c.k
	s.lastUpdateMs = nowMs
	return s.interp
}

// prune drops state for entities no longer present in the snapshot.
func (c *interpCache) prune(live map[EntityKey]struct{}) {
	for key := range c.states {
		if _, ok := live[key]; !ok {
			delete(c.states, key)
		}
	}
}

func (c *interpCache) len() int {
	return len(c.states)
}
