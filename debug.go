package driftwood

import (
	"fmt"
	"os"
	"time"
)

// warnf prints a non-fatal warning to stderr. Per-entity problems (unknown
// kinds, failed draws) warn and skip; they never abort the frame.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[driftwood] warning: "+format+"\n", args...)
}

// frameStats holds per-frame timing and volume metrics.
// Only populated when RenderContext.debug is true.
type frameStats struct {
	cullTime     time.Duration
	effectsTime  time.Duration
	sortTime     time.Duration
	dispatchTime time.Duration

	entityCount  int // entities in the snapshot
	visibleCount int // entities surviving the cull
	hitStates    int
	motionStates int
	swayEntries  int
	ghostStates  int
}

// debugLog prints timing and cache metrics to stderr.
func (ctx *RenderContext) debugLog() {
	if !ctx.debug {
		return
	}
	s := &ctx.stats
	total := s.cullTime + s.effectsTime + s.sortTime + s.dispatchTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[driftwood] cull: %v | effects: %v | sort: %v | dispatch: %v | total: %v\n",
		s.cullTime, s.effectsTime, s.sortTime, s.dispatchTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[driftwood] entities: %d | visible: %d | hit: %d | motion: %d | sway: %d | ghost: %d\n",
		s.entityCount, s.visibleCount, s.hitStates, s.motionStates, s.swayEntries, s.ghostStates)
}

// SetDebugMode enables per-frame stats logging to stderr.
func (ctx *RenderContext) SetDebugMode(enabled bool) {
	ctx.debug = enabled
}

// Stats returns the entity and visible counts from the last Advance.
// Always populated, independent of debug mode.
func (ctx *RenderContext) Stats() (entities, visible int) {
	return ctx.stats.entityCount, ctx.stats.visibleCount
}
