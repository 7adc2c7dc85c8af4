package driftwood

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrMissingAsset is returned by a DrawFunc when the sprite it needs has not
// finished loading. The dispatcher skips the body silently — effect timers
// were already advanced in Advance, so the animation stays in sync with the
// wall clock and picks up mid-effect once the asset arrives.
var ErrMissingAsset = errors.New("driftwood: draw asset not loaded")

// DerivedEffects carries every transient value the core computed for one
// entity this frame. Draw routines consume these instead of reading raw
// server fields.
type DerivedEffects struct {
	// Pos is the position to render at: interpolated for smoothed kinds,
	// the in-flight position for trajectory kinds, the server position
	// otherwise. ShakeOffset is not folded in; apply it at draw time so
	// shadows can stay still while the body shakes.
	Pos         Vec2
	ShakeOffset Vec2
	Flash       bool
	Sway        SwayResult
	Move        MoveState

	// Ghost holds the dodge-roll afterimages oldest first (nil when no
	// trail is active); GhostDir is the direction pinned at roll start.
	// Both are only valid until the next Advance.
	Ghost    []GhostSample
	GhostDir Vec2
}

// DrawFunc renders one entity. Implementations own all sprite/image
// resources; driftwood only decides order and effect state. Returning
// ErrMissingAsset skips the entity for this pass without a warning; any
// other error warns and skips.
type DrawFunc func(screen *ebiten.Image, e *Entity, fx *DerivedEffects) error

// RegisterDraw installs the body draw routine for a kind.
func (ctx *RenderContext) RegisterDraw(kind Kind, fn DrawFunc) {
	if !kind.Known() {
		warnf("register draw: unknown kind %d", kind)
		return
	}
	ctx.draws[kind] = fn
}

// RegisterShadow installs the deferred ground-shadow routine for a kind.
// Only consulted for kinds whose shadow is deferred to pass 2 (stone).
func (ctx *RenderContext) RegisterShadow(kind Kind, fn DrawFunc) {
	if !kind.Known() {
		warnf("register shadow: unknown kind %d", kind)
		return
	}
	ctx.shadows[kind] = fn
}

// Draw walks the ordered draw list twice. Pass 1 draws entity bodies in
// depth order; kinds with deferred shadows draw everything but their ground
// shadow. Pass 2 revisits the same order and draws only those deferred
// shadows, compositing them over neighbors that were drawn behind in pass 1.
//
// A failing or unregistered entry is skipped, never fatal — one malformed
// entity must not take the frame down.
func (ctx *RenderContext) Draw(screen *ebiten.Image) {
	start := time.Now()

	for i := range ctx.entries {
		entry := &ctx.entries[i]
		kind := entry.Entity.Kind
		fn := ctx.draws[kind]
		if fn == nil {
			ctx.warnUnregistered(kind, "draw")
			continue
		}
		if err := fn(screen, entry.Entity, &entry.FX); err != nil && !errors.Is(err, ErrMissingAsset) {
			warnf("draw %s %d: %v", kind, entry.Entity.ID, err)
		}
	}

	for i := range ctx.entries {
		entry := &ctx.entries[i]
		kind := entry.Entity.Kind
		if !kindTable[kind].deferShadow {
			continue
		}
		fn := ctx.shadows[kind]
		if fn == nil {
			ctx.warnUnregistered(kind, "shadow")
			continue
		}
		if err := fn(screen, entry.Entity, &entry.FX); err != nil && !errors.Is(err, ErrMissingAsset) {
			warnf("shadow %s %d: %v", kind, entry.Entity.ID, err)
		}
	}

	if ctx.debug {
		ctx.stats.dispatchTime = time.Since(start)
		ctx.debugLog()
	}
}

// warnUnregistered logs a missing routine once per kind per context to keep
// a 60Hz loop from flooding stderr.
func (ctx *RenderContext) warnUnregistered(kind Kind, what string) {
	if ctx.warnedKinds[kind] {
		return
	}
	ctx.warnedKinds[kind] = true
	warnf("dispatch: no %s routine registered for kind %s", what, kind)
}
