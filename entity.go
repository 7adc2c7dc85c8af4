package driftwood

// Entity is one replicated world object. It is a tagged union: Kind selects
// which of the optional fields are meaningful (the kind registry decides, the
// core never sniffs field presence). Entities are owned by the state-sync
// layer; driftwood only reads them and keeps its own per-entity caches.
//
// All timestamps are local-clock milliseconds. The state-sync layer converts
// server epochs before the snapshot reaches the renderer.
type Entity struct {
	// ID is stable for the entity's lifetime and unique within its kind.
	ID   uint64
	Kind Kind

	// Pos is the server-authoritative position. Kinds flagged as
	// interpolated or time-parameterized are rendered elsewhere; for
	// trajectory kinds Pos is the spawn point.
	Pos Vec2

	Health      float64
	IsBurning   bool
	IsDestroyed bool

	// Direction is the facing unit vector, for kinds that have one.
	Direction Vec2

	// Velocity (px/s) and StartTime (ms) parameterize projectile flight.
	Velocity  Vec2
	StartTime float64

	// DisturbedAt is the last foliage disturbance timestamp (0 = never);
	// DisturbDir is the direction the disturber was moving.
	DisturbedAt float64
	DisturbDir  Vec2

	// HitToken is the server's opaque last-hit marker (a timestamp in
	// practice). Zero means no hit pending; any change to a non-zero value
	// is a fresh hit event.
	HitToken float64

	// RollStart/RollDuration describe the authoritative dodge-roll session
	// (RollStart zero = none); RollDir is the direction the roll began in.
	RollStart    float64
	RollDuration float64
	RollDir      Vec2

	Sprinting bool
}

// Key returns the cache key for an entity.
func (e *Entity) Key() EntityKey {
	return EntityKey{Kind: e.Kind, ID: e.ID}
}

// EntityMap holds one kind's live entities, keyed by ID.
type EntityMap map[uint64]*Entity

// Snapshot is the per-frame world state: one map per kind. Snapshots are
// immutable from driftwood's point of view and are not retained across
// frames.
type Snapshot map[Kind]EntityMap
