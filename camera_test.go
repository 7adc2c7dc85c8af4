package driftwood

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestCameraFollowSnap(t *testing.T) {
	cam := NewCamera()
	target := testEntity(KindPlayer, 1, 1000, 800)

	cam.Follow(target, 0, 0, 1.0) // lerp=1 snaps immediately
	cam.Update(1.0/60, 800, 600)

	if !approxEqual(cam.X, 600, epsilon) || !approxEqual(cam.Y, 500, epsilon) {
		t.Errorf("after follow snap: cam = (%f,%f), want (600,500)", cam.X, cam.Y)
	}
}

func TestCameraFollowLerp(t *testing.T) {
	cam := NewCamera()
	target := testEntity(KindPlayer, 1, 400, 300) // centered target => offset (0,0)
	cam.X = 100

	cam.Follow(target, 0, 0, 0.5)
	cam.Update(1.0/60, 800, 600)

	// Halfway from 100 toward 0.
	if !approxEqual(cam.X, 50, epsilon) {
		t.Errorf("after one lerp step: cam.X = %f, want 50", cam.X)
	}
}

func TestCameraUnfollow(t *testing.T) {
	cam := NewCamera()
	target := testEntity(KindPlayer, 1, 1000, 800)
	cam.Follow(target, 0, 0, 1.0)
	cam.Unfollow()
	cam.Update(1.0/60, 800, 600)
	if cam.X != 0 || cam.Y != 0 {
		t.Error("unfollowed camera must not move")
	}
}

func TestCameraScrollTo(t *testing.T) {
	cam := NewCamera()
	cam.ScrollTo(100, 50, 1.0, ease.Linear)

	for i := 0; i < 60; i++ {
		cam.Update(1.0/60, 800, 600)
	}
	// Allow float32 tween accumulation error.
	if !approxEqual(cam.X, 100, 0.01) || !approxEqual(cam.Y, 50, 0.01) {
		t.Errorf("after scroll: cam = (%f,%f), want (100,50)", cam.X, cam.Y)
	}
	if cam.scrollTween != nil {
		t.Error("finished scroll animation should be released")
	}

	halfway := NewCamera()
	halfway.ScrollTo(100, 0, 1.0, ease.Linear)
	for i := 0; i < 30; i++ {
		halfway.Update(1.0/60, 800, 600)
	}
	if halfway.X < 40 || halfway.X > 60 {
		t.Errorf("linear scroll at t=0.5: cam.X = %f, want ~50", halfway.X)
	}
}

func TestCameraBoundsClamp(t *testing.T) {
	cam := NewCamera()
	cam.SetBounds(Rect{X: 0, Y: 0, Width: 2000, Height: 1500})

	cam.X = -50
	cam.Y = 1400
	cam.Update(1.0/60, 800, 600)

	if cam.X != 0 {
		t.Errorf("cam.X = %f, want clamped 0", cam.X)
	}
	if cam.Y != 900 {
		t.Errorf("cam.Y = %f, want clamped 900 (1500-600)", cam.Y)
	}

	cam.ClearBounds()
	cam.X = -50
	cam.Update(1.0/60, 800, 600)
	if cam.X != -50 {
		t.Error("cleared bounds must not clamp")
	}
}

func TestCameraBoundsSmallerThanCanvas(t *testing.T) {
	cam := NewCamera()
	cam.SetBounds(Rect{X: 0, Y: 0, Width: 400, Height: 300})
	cam.Update(1.0/60, 800, 600)

	// View centered on the undersized bounds.
	if !approxEqual(cam.X, -200, epsilon) || !approxEqual(cam.Y, -150, epsilon) {
		t.Errorf("cam = (%f,%f), want centered (-200,-150)", cam.X, cam.Y)
	}
}

func TestCameraViewBounds(t *testing.T) {
	cam := NewCamera()
	cam.X = 100
	cam.Y = 200
	b := cam.ViewBounds(800, 600, 64)
	want := ComputeBounds(Vec2{X: 100, Y: 200}, 800, 600, 64)
	if b != want {
		t.Errorf("ViewBounds = %+v, want %+v", b, want)
	}
}
