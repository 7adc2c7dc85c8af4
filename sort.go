package driftwood

// sortEpsilon is the sort-Y band within which two entities are treated as
// depth ties and ordered by kind priority instead.
const sortEpsilon = 0.1

// SortEntry is one slot in the frame's ordered draw list. Ephemeral: built
// fresh each Advance and invalid once the next frame starts.
type SortEntry struct {
	// SortY is the entity's world Y plus its kind's anchor offset,
	// using the rendered (interpolated or in-flight) position.
	SortY  float64
	Entity *Entity
	// FX carries the derived per-entity effect values for the draw call.
	FX DerivedEffects
}

// entryLessOrEqual reports whether a sorts before or at the same position as
// b: ascending sort-Y, with near-ties (within sortEpsilon) broken by kind
// priority so the higher-priority kind draws later, in front. Returning true
// on full ties keeps the underlying sort stable.
func entryLessOrEqual(a, b *SortEntry) bool {
	dy := a.SortY - b.SortY
	if dy < -sortEpsilon {
		return true
	}
	if dy > sortEpsilon {
		return false
	}
	return a.Entity.Kind.Priority() <= b.Entity.Kind.Priority()
}

// sortEntries orders ctx.entries in place using ctx.sortBuf as scratch.
// Bottom-up merge sort: stable and zero allocations once the scratch buffer
// reaches its high-water mark.
//
// Stability matters beyond performance: the epsilon tie-break is not a
// transitive relation, so the draw list is only deterministic because the
// input order is already canonical (kind declaration order, IDs ascending —
// guaranteed by the culler) and the sort never reorders ties. Identical
// snapshots therefore produce byte-identical draw lists regardless of map
// iteration order.
func (ctx *RenderContext) sortEntries() {
	n := len(ctx.entries)
	if n <= 1 {
		return
	}
	if cap(ctx.sortBuf) < n {
		ctx.sortBuf = make([]SortEntry, n)
	}
	ctx.sortBuf = ctx.sortBuf[:n]

	a := ctx.entries
	b := ctx.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeEntries(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(ctx.entries, ctx.sortBuf)
	}
}

// mergeEntries merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeEntries(src, dst []SortEntry, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if entryLessOrEqual(&src[i], &src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}
