package driftwood

import (
	"math/rand/v2"
	"time"
)

const defaultEntryCap = 1024

// RenderContext owns every piece of mutable rendering state: the effect
// caches, the camera, the draw registries, and the reusable frame buffers.
// Nothing here is a package global, so independent contexts (tests,
// split-screen views) never cross-contaminate.
//
// All methods must be called from the render goroutine. Snapshots passed to
// Advance are read, never written.
type RenderContext struct {
	tuning Tuning
	camera *Camera
	rng    *rand.Rand

	hits   *hitFXCache
	motion *interpCache
	loco   *locomotionCache
	sway   *swayCache
	ghosts *ghostCache

	// Reusable frame buffers.
	visible  [kindCount][]*Entity
	idBuf    []uint64
	live     map[EntityKey]struct{}
	entries  []SortEntry
	sortBuf  []SortEntry
	ghostBuf []GhostSample

	draws       [kindCount]DrawFunc
	shadows     [kindCount]DrawFunc
	warnedKinds [kindCount]bool

	debug bool
	stats frameStats
}

// NewRenderContext creates a context with the given tuning. The shake RNG is
// seeded from the wall clock; visual randomness needs no reproducibility
// across runs.
func NewRenderContext(t Tuning) *RenderContext {
	t.applyDefaults()
	t.clamp()
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15))
	return &RenderContext{
		tuning:  t,
		camera:  NewCamera(),
		rng:     rng,
		hits:    newHitFXCache(t, rng),
		motion:  newInterpCache(t),
		loco:    newLocomotionCache(t),
		sway:    newSwayCache(t),
		ghosts:  newGhostCache(t),
		live:    make(map[EntityKey]struct{}),
		entries: make([]SortEntry, 0, defaultEntryCap),
		sortBuf: make([]SortEntry, 0, defaultEntryCap),
	}
}

// Camera returns the context's camera.
func (ctx *RenderContext) Camera() *Camera {
	return ctx.camera
}

// Tuning returns the constants the context was built with.
func (ctx *RenderContext) Tuning() Tuning {
	return ctx.tuning
}

// Advance runs the per-frame pipeline: cull the snapshot against the camera
// view, step every effect state machine for the visible entities, prune the
// caches against the full live set, and build the depth-ordered draw list.
// nowMs is the frame timestamp in local-clock milliseconds.
//
// Each per-entity step is isolated: a malformed record degrades to a skip,
// and a cache is never left half-updated for an entity.
func (ctx *RenderContext) Advance(snap Snapshot, canvasW, canvasH, nowMs float64) {
	bounds := ctx.camera.ViewBounds(canvasW, canvasH, ctx.tuning.ViewportMargin)

	start := time.Now()
	ctx.cullSnapshot(snap, bounds, nowMs)
	cullDone := time.Now()

	ctx.buildEntries(nowMs)
	ctx.pruneCaches()
	effectsDone := time.Now()

	ctx.sortEntries()

	if ctx.debug {
		ctx.stats.cullTime = cullDone.Sub(start)
		ctx.stats.effectsTime = effectsDone.Sub(cullDone)
		ctx.stats.sortTime = time.Since(effectsDone)
		ctx.stats.hitStates = ctx.hits.len()
		ctx.stats.motionStates = ctx.motion.len()
		ctx.stats.swayEntries = ctx.sway.len()
		ctx.stats.ghostStates = ctx.ghosts.len()
	}
}

// DrawList returns this frame's ordered entries. Valid until the next
// Advance; callers must not retain it.
func (ctx *RenderContext) DrawList() []SortEntry {
	return ctx.entries
}

// buildEntries steps the effect machines for every visible entity and emits
// one SortEntry per entity. Kinds iterate in declaration order and the
// culler keeps IDs ascending, so the pre-sort entry order is canonical.
func (ctx *RenderContext) buildEntries(nowMs float64) {
	ctx.entries = ctx.entries[:0]
	ctx.ghostBuf = ctx.ghostBuf[:0]

	for kind := Kind(1); kind < kindCount; kind++ {
		info := &kindTable[kind]
		for _, e := range ctx.visible[kind] {
			key := e.Key()
			fx := DerivedEffects{Pos: e.Pos, Sway: SwayResult{Scale: 1}}

			switch {
			case info.trajectory != trajectoryNone:
				fx.Pos = TrajectoryPosition(e, nowMs)
			case info.interpolated:
				fx.Pos = ctx.motion.Advance(key, e.Pos, nowMs)
			}

			ctx.hits.Observe(key, e.HitToken, nowMs)
			fx.ShakeOffset = ctx.hits.ShakeOffset(key, nowMs)
			fx.Flash = ctx.hits.Flash(key, nowMs)

			if info.sways {
				fx.Sway = ctx.sway.Evaluate(e, nowMs)
			}
			if info.mobile {
				fx.Move = ctx.loco.Advance(key, fx.Pos, nowMs)
			}
			if kind == KindPlayer {
				mark := len(ctx.ghostBuf)
				ctx.ghostBuf = ctx.ghosts.Advance(e, fx.Pos, nowMs, ctx.ghostBuf)
				if len(ctx.ghostBuf) > mark {
					fx.Ghost = ctx.ghostBuf[mark:len(ctx.ghostBuf):len(ctx.ghostBuf)]
					fx.GhostDir, _ = ctx.ghosts.Direction(key)
				}
			}

			ctx.entries = append(ctx.entries, SortEntry{
				SortY:  fx.Pos.Y + info.yAnchor,
				Entity: e,
				FX:     fx,
			})
		}
	}
}

// pruneCaches drops per-entity state for every ID absent from the current
// snapshot. Leaked cache entries are a correctness bug, not just memory
// growth: a reused ID must never inherit a dead entity's effect state.
func (ctx *RenderContext) pruneCaches() {
	ctx.hits.prune(ctx.live)
	ctx.motion.prune(ctx.live)
	ctx.loco.prune(ctx.live)
	ctx.sway.prune(ctx.live)
	ctx.ghosts.prune(ctx.live)
}
