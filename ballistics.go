package driftwood

// Gravity is the vertical acceleration applied to ballistic trajectories,
// in px/s². Screen Y grows downward, so gravity is positive.
const Gravity = 600.0

// TrajectoryPosition returns the current position of a time-parameterized
// entity: spawn position plus velocity times elapsed seconds, plus the
// gravity term for ballistic kinds. For kinds without a trajectory it returns
// the stored position unchanged.
//
// Pure: the result depends only on the entity fields and nowMs. Events whose
// StartTime lies in the future (clock skew) clamp to the spawn position
// rather than extrapolating backwards.
func TrajectoryPosition(e *Entity, nowMs float64) Vec2 {
	mode := trajectoryNone
	if e.Kind < kindCount {
		mode = kindTable[e.Kind].trajectory
	}
	if mode == trajectoryNone {
		return e.Pos
	}
	t := (nowMs - e.StartTime) / 1000
	if t < 0 {
		t = 0
	}
	p := Vec2{
		X: e.Pos.X + e.Velocity.X*t,
		Y: e.Pos.Y + e.Velocity.Y*t,
	}
	if mode == trajectoryBallistic {
		p.Y += 0.5 * Gravity * t * t
	}
	return p
}
