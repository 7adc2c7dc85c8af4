package driftwood

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// testEntity builds a minimal entity of the given kind at (x, y).
func testEntity(kind Kind, id uint64, x, y float64) *Entity {
	return &Entity{ID: id, Kind: kind, Pos: Vec2{X: x, Y: y}}
}

// testSnapshot groups entities into the per-kind map shape Advance expects.
func testSnapshot(entities ...*Entity) Snapshot {
	snap := make(Snapshot)
	for _, e := range entities {
		m, ok := snap[e.Kind]
		if !ok {
			m = make(EntityMap)
			snap[e.Kind] = m
		}
		m[e.ID] = e
	}
	return snap
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	if !r.Contains(10, 20) {
		t.Error("top-left corner should be inside")
	}
	if !r.Contains(110, 70) {
		t.Error("bottom-right corner should be inside")
	}
	if r.Contains(9.99, 20) {
		t.Error("point left of rect should be outside")
	}
	if r.Contains(50, 70.01) {
		t.Error("point below rect should be outside")
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	b := Rect{X: 50, Y: 50, Width: 100, Height: 100}
	if !a.Intersects(b) || !b.Intersects(a) {
		t.Error("overlapping rects should intersect")
	}
	c := Rect{X: 100, Y: 0, Width: 10, Height: 10}
	if !a.Intersects(c) {
		t.Error("edge-adjacent rects should intersect")
	}
	d := Rect{X: 200, Y: 200, Width: 10, Height: 10}
	if a.Intersects(d) {
		t.Error("disjoint rects should not intersect")
	}
}

func TestBoundsOverlaps(t *testing.T) {
	b := Bounds{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
	if !b.Overlaps(50, 50, 150, 150) {
		t.Error("partially overlapping AABB should overlap")
	}
	if !b.Overlaps(100, 100, 200, 200) {
		t.Error("touching AABB should overlap")
	}
	if b.Overlaps(101, 0, 200, 100) {
		t.Error("AABB past the right edge should not overlap")
	}
	if b.Overlaps(0, -50, 100, -1) {
		t.Error("AABB above the top edge should not overlap")
	}
}

func TestEntityKey(t *testing.T) {
	// IDs are only unique per kind; keys must differ across kinds.
	player := testEntity(KindPlayer, 7, 0, 0)
	animal := testEntity(KindWildAnimal, 7, 0, 0)
	if player.Key() == animal.Key() {
		t.Error("same ID in different kinds must produce distinct keys")
	}
	if player.Key() != (EntityKey{Kind: KindPlayer, ID: 7}) {
		t.Errorf("Key() = %+v, want {KindPlayer 7}", player.Key())
	}
}
