package driftwood

// MoveState is the locomotion phase reported to draw routines for walk-cycle
// selection. It is derived from observed displacement with a buffered exit,
// replacing scattered speed/sprint booleans. Never use it to detect dodge
// rolls — roll state is authoritative session data (see ghost.go).
type MoveState uint8

const (
	// MoveIdle: no displacement above the threshold recently.
	MoveIdle MoveState = iota
	// MoveMoving: displaced above the threshold this frame.
	MoveMoving
	// MoveBuffered: motion stopped within the grace window; draw routines
	// keep playing the walk cycle so one dropped snapshot doesn't freeze
	// the animation mid-stride.
	MoveBuffered
)

// String returns a short name for logging and tests.
func (m MoveState) String() string {
	switch m {
	case MoveMoving:
		return "moving"
	case MoveBuffered:
		return "buffered"
	default:
		return "idle"
	}
}

type moveTrack struct {
	lastPos    Vec2
	state      MoveState
	lastMoveMs float64
}

// locomotionCache runs the Idle/Moving/MovingBuffered machine per entity.
type locomotionCache struct {
	states    map[EntityKey]*moveTrack
	threshold float64
	bufferMs  float64
}

func newLocomotionCache(t Tuning) *locomotionCache {
	return &locomotionCache{
		states:    make(map[EntityKey]*moveTrack),
		threshold: t.MoveThreshold,
		bufferMs:  t.MoveBufferMS,
	}
}

// Advance ingests this frame's rendered position and returns the current
// locomotion state. Pass the position the entity is drawn at (interpolated
// where applicable) so the walk cycle matches what the player sees.
func (c *locomotionCache) Advance(key EntityKey, pos Vec2, nowMs float64) MoveState {
	s, ok := c.states[key]
	if !ok {
		s = &moveTrack{lastPos: pos, state: MoveIdle}
		c.states[key] = s
		return MoveIdle
	}

	dx := pos.X - s.lastPos.X
	dy := pos.Y - s.lastPos.Y
	s.lastPos = pos

	if dx*dx+dy*dy > c.threshold*c.threshold {
		s.state = MoveMoving
		s.lastMoveMs = nowMs
		return MoveMoving
	}

	switch s.state {
	case MoveMoving, MoveBuffered:
		if nowMs-s.lastMoveMs < c.bufferMs {
			s.state = MoveBuffered
		} else {
			s.state = MoveIdle
		}
	}
	return s.state
}

// prune drops state for entities no longer present in the snapshot.
func (c *locomotionCache) prune(live map[EntityKey]struct{}) {
	for key := range c.states {
		if _, ok := live[key]; !ok {
			delete(c.states, key)
		}
	}
}
