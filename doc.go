// Package driftwood is the rendering core for a top-down 2D multiplayer
// survival game built on [Ebitengine].
//
// Each frame the game hands driftwood an immutable snapshot of the replicated
// world (players, foliage, animals, structures, projectiles) and driftwood
// answers three questions: which entities are on screen, in what order their
// sprites must be drawn so overlaps occlude correctly, and what transient
// visual state (hit shake, smoothed positions, foliage sway, dodge-roll
// afterimages) feeds each draw call. It does not load assets or push pixels
// itself — per-kind draw routines are registered by the caller.
//
// # Quick start
//
//	ctx := driftwood.NewRenderContext(driftwood.DefaultTuning())
//	ctx.RegisterDraw(driftwood.KindPlayer, drawPlayer)
//	// ... register the remaining kinds ...
//
//	// each frame:
//	ctx.Camera().Update(1.0/60, canvasW, canvasH)
//	ctx.Advance(snapshot, canvasW, canvasH, nowMs)
//	ctx.Draw(screen)
//
// Advance culls the snapshot against the camera view, steps every effect
// state machine, prunes per-entity caches against the live entity set, and
// builds the frame's depth-ordered draw list. Draw walks that list twice:
// once for entity bodies and once for ground shadows that must composite on
// top of neighbors drawn behind them.
//
// All methods on a RenderContext must be called from a single goroutine —
// the render loop. Snapshots are never mutated; all mutable state lives in
// caches owned by the context, so independent contexts (tests, split-screen)
// never share state.
//
// [Ebitengine]: https://ebitengine.org
package driftwood
