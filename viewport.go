package driftwood

// ComputeBounds derives the world-space culling rectangle for this frame:
// the camera-offset canvas rectangle expanded by margin on every side.
// A derived value with no lifecycle of its own; recompute it each frame.
func ComputeBounds(cameraOffset Vec2, canvasW, canvasH, margin float64) Bounds {
	return Bounds{
		MinX: cameraOffset.X - margin,
		MinY: cameraOffset.Y - margin,
		MaxX: cameraOffset.X + canvasW + margin,
		MaxY: cameraOffset.Y + canvasH + margin,
	}
}

// IsVisible reports whether the entity's kind-specific AABB overlaps the
// culling bounds at nowMs. Time-parameterized kinds (projectiles, spittle)
// are tested at their computed flight position, not their spawn position.
//
// Pure: no hidden state, so identical arguments always give identical
// results and callers may safely memoize. Unknown kinds are never visible;
// the caller is responsible for logging them.
func IsVisible(e *Entity, b Bounds, nowMs float64) bool {
	if !e.Kind.Known() {
		return false
	}
	info := &kindTable[e.Kind]

	anchor := e.Pos
	if info.trajectory != trajectoryNone {
		anchor = TrajectoryPosition(e, nowMs)
	}

	halfW := info.width / 2
	halfH := info.height / 2
	return b.Overlaps(anchor.X-halfW, anchor.Y-halfH, anchor.X+halfW, anchor.Y+halfH)
}

// cullSnapshot fills ctx.visible with the entities overlapping bounds,
// grouped by kind with IDs ascending so downstream work is deterministic
// regardless of map iteration order. Reuses the per-kind slices and the ID
// scratch buffer; the only steady-state allocations are map growth inside
// the live-key set.
//
// Every live entity — visible or not — is recorded in ctx.live so cache
// pruning sees the full snapshot.
func (ctx *RenderContext) cullSnapshot(snap Snapshot, b Bounds, nowMs float64) {
	for k := range ctx.visible {
		ctx.visible[k] = ctx.visible[k][:0]
	}
	clear(ctx.live)
	ctx.stats.entityCount = 0
	ctx.stats.visibleCount = 0

	for kind, entities := range snap {
		if !kind.Known() {
			warnf("cull: unknown entity kind %d (%d entities skipped)", kind, len(entities))
			continue
		}
		ctx.stats.entityCount += len(entities)

		ids := ctx.idBuf[:0]
		for id, e := range entities {
			ctx.live[EntityKey{Kind: kind, ID: id}] = struct{}{}
			if e == nil || e.Kind != kind {
				continue
			}
			if IsVisible(e, b, nowMs) {
				ids = append(ids, id)
			}
		}
		sortIDs(ids)
		ctx.idBuf = ids[:0]

		vis := ctx.visible[kind]
		for _, id := range ids {
			vis = append(vis, entities[id])
		}
		ctx.visible[kind] = vis
		ctx.stats.visibleCount += len(vis)
	}
}

// sortIDs sorts in place. Insertion sort: zero allocations and O(n) for the
// nearly-sorted ID runs that sequentially-assigned entity IDs produce.
func sortIDs(ids []uint64) {
	for i := 1; i < len(ids); i++ {
		key := ids[i]
		j := i - 1
		for j >= 0 && ids[j] > key {
			ids[j+1] = ids[j]
			j--
		}
		ids[j+1] = key
	}
}
