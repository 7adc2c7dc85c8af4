package driftwood

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera is the world-space view origin: X, Y is the top-left corner of the
// canvas in world coordinates. The culler and dispatcher consume its offset;
// follow, scroll animation, and bounds clamping are conveniences for the
// game layer.
type Camera struct {
	// X and Y are the world-space position of the canvas's top-left corner.
	X, Y float64

	followTarget  *Entity
	followOffsetX float64
	followOffsetY float64
	followLerp    float64

	// BoundsEnabled clamps the camera so the canvas stays within Bounds
	// (the world rectangle, e.g. the island).
	BoundsEnabled bool
	Bounds        Rect

	scrollTween *scrollAnim
}

// NewCamera creates a camera at the world origin.
func NewCamera() *Camera {
	return &Camera{}
}

// Offset returns the camera's world offset for this frame.
func (c *Camera) Offset() Vec2 {
	return Vec2{X: c.X, Y: c.Y}
}

// Follow makes the camera keep the target entity centered (plus offset),
// easing toward it with the given lerp factor. A lerp of 1.0 snaps
// immediately; lower values give smoother following. The target's raw
// server position is followed; smoothing jitter is absorbed by the lerp.
func (c *Camera) Follow(target *Entity, offsetX, offsetY, lerp float64) {
	c.followTarget = target
	c.followOffsetX = offsetX
	c.followOffsetY = offsetY
	c.followLerp = lerp
}

// Unfollow stops tracking the current target entity.
func (c *Camera) Unfollow() {
	c.followTarget = nil
}

// ScrollTo animates the camera offset to the given world position over
// duration seconds. An active follow target fights the animation, so callers
// should Unfollow first if one is set.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// SetBounds enables camera bounds clamping to the given world rectangle.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// Update advances follow easing, scroll animation, and bounds clamping.
// Call once per frame before Advance. canvasW and canvasH are needed to
// center the follow target and to clamp against Bounds.
func (c *Camera) Update(dt float32, canvasW, canvasH float64) {
	if c.followTarget != nil {
		targetX := c.followTarget.Pos.X + c.followOffsetX - canvasW/2
		targetY := c.followTarget.Pos.Y + c.followOffsetY - canvasH/2
		c.X += (targetX - c.X) * c.followLerp
		c.Y += (targetY - c.Y) * c.followLerp
	}

	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	if c.BoundsEnabled {
		c.clampToBounds(canvasW, canvasH)
	}
}

// clampToBounds restricts the camera so the canvas stays within Bounds.
// If the bounds are smaller than the canvas, the view is centered on them.
func (c *Camera) clampToBounds(canvasW, canvasH float64) {
	maxX := c.Bounds.X + c.Bounds.Width - canvasW
	maxY := c.Bounds.Y + c.Bounds.Height - canvasH

	if maxX < c.Bounds.X {
		c.X = c.Bounds.X + (c.Bounds.Width-canvasW)/2
	} else {
		c.X = math.Max(c.Bounds.X, math.Min(c.X, maxX))
	}
	if maxY < c.Bounds.Y {
		c.Y = c.Bounds.Y + (c.Bounds.Height-canvasH)/2
	} else {
		c.Y = math.Max(c.Bounds.Y, math.Min(c.Y, maxY))
	}
}

// ViewBounds returns the margin-expanded world rectangle this camera can see,
// ready for the culler.
func (c *Camera) ViewBounds(canvasW, canvasH, margin float64) Bounds {
	return ComputeBounds(c.Offset(), canvasW, canvasH, margin)
}
