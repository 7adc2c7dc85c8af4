package driftwood

// Vec2 is a 2D vector used for positions, offsets, velocities, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Bounds is the margin-expanded visible region in world coordinates,
// recomputed every frame by the viewport culler. Unlike Rect it stores
// edges rather than origin+size because the culler only ever compares edges.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Overlaps reports whether the AABB [minX, maxX] x [minY, maxY] overlaps b.
// Touching edges count as overlapping.
func (b Bounds) Overlaps(minX, minY, maxX, maxY float64) bool {
	return maxX >= b.MinX && minX <= b.MaxX &&
		maxY >= b.MinY && minY <= b.MaxY
}

// EntityKey identifies an entity across frames. Entity IDs are only unique
// within a kind, so every per-entity cache is keyed by the pair.
type EntityKey struct {
	Kind Kind
	ID   uint64
}
