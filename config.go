package driftwood

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning holds every named rendering constant. Values are read at context
// construction; there is no live reload. Zero values are replaced by the
// defaults and out-of-range values are clamped (with a stderr warning), so a
// partial YAML file only overrides what it names.
type Tuning struct {
	// ViewportMargin expands the culling rectangle on every side so sprites
	// don't pop in at the screen edge. At least one tile.
	ViewportMargin float64 `yaml:"viewport_margin"`

	// MovementNoise is the server-position delta below which movement
	// updates are ignored as jitter.
	MovementNoise float64 `yaml:"movement_noise"`
	// TeleportDistance is the position delta above which smoothing is
	// bypassed and the rendered position snaps.
	TeleportDistance float64 `yaml:"teleport_distance"`
	// SmoothingFactor is the per-frame exponential smoothing coefficient.
	SmoothingFactor float64 `yaml:"smoothing_factor"`

	// MoveThreshold and MoveBufferMS drive the locomotion state machine:
	// per-frame displacement above the threshold means Moving, and Moving
	// lingers as MovingBuffered for the buffer window after motion stops.
	MoveThreshold float64 `yaml:"move_threshold"`
	MoveBufferMS  float64 `yaml:"move_buffer_ms"`

	// ShakeDurationMS / ShakeAmplitude / FlashDurationMS shape the hit
	// effect. The flash window is shorter than the shake window.
	ShakeDurationMS float64 `yaml:"shake_duration_ms"`
	ShakeAmplitude  float64 `yaml:"shake_amplitude"`
	FlashDurationMS float64 `yaml:"flash_duration_ms"`

	// DisturbDurationMS is how long a foliage disturbance takes to settle;
	// DisturbFadeFactor is the exponent on the settle curve.
	DisturbDurationMS float64 `yaml:"disturb_duration_ms"`
	DisturbFadeFactor float64 `yaml:"disturb_fade_factor"`
	// SwayCacheTTLMS bounds how stale a cached sway result may be.
	SwayCacheTTLMS float64 `yaml:"sway_cache_ttl_ms"`

	// Ghost trail: ring capacity, per-frame alpha fade, the alpha at which
	// a sample is dropped, and the grace window appended to the server's
	// roll duration so the animation finishes cleanly.
	GhostCapacity   int     `yaml:"ghost_capacity"`
	GhostFadeStep   float64 `yaml:"ghost_fade_step"`
	GhostAlphaFloor float64 `yaml:"ghost_alpha_floor"`
	RollBufferMS    float64 `yaml:"roll_buffer_ms"`
}

// DefaultTuning returns the stock constants the game ships with.
func DefaultTuning() Tuning {
	return Tuning{
		ViewportMargin:    64,
		MovementNoise:     1,
		TeleportDistance:  100,
		SmoothingFactor:   0.15,
		MoveThreshold:     0.5,
		MoveBufferMS:      150,
		ShakeDurationMS:   300,
		ShakeAmplitude:    4,
		FlashDurationMS:   120,
		DisturbDurationMS: 800,
		DisturbFadeFactor: 2,
		SwayCacheTTLMS:    50,
		GhostCapacity:     12,
		GhostFadeStep:     0.05,
		GhostAlphaFloor:   0.05,
		RollBufferMS:      100,
	}
}

// LoadTuning reads a YAML tunables file, fills unset fields from the
// defaults, and clamps invalid values.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("load tuning: %w", err)
	}
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("parse tuning %s: %w", path, err)
	}
	t.applyDefaults()
	t.clamp()
	return t, nil
}

// applyDefaults fills zero-valued fields from DefaultTuning. A zero is never
// a meaningful tuning value for any field here.
func (t *Tuning) applyDefaults() {
	d := DefaultTuning()
	if t.ViewportMargin == 0 {
		t.ViewportMargin = d.ViewportMargin
	}
	if t.MovementNoise == 0 {
		t.MovementNoise = d.MovementNoise
	}
	if t.TeleportDistance == 0 {
		t.TeleportDistance = d.TeleportDistance
	}
	if t.SmoothingFactor == 0 {
		t.SmoothingFactor = d.SmoothingFactor
	}
	if t.MoveThreshold == 0 {
		t.MoveThreshold = d.MoveThreshold
	}
	if t.MoveBufferMS == 0 {
		t.MoveBufferMS = d.MoveBufferMS
	}
	if t.ShakeDurationMS == 0 {
		t.ShakeDurationMS = d.ShakeDurationMS
	}
	if t.ShakeAmplitude == 0 {
		t.ShakeAmplitude = d.ShakeAmplitude
	}
	if t.FlashDurationMS == 0 {
		t.FlashDurationMS = d.FlashDurationMS
	}
	if t.DisturbDurationMS == 0 {
		t.DisturbDurationMS = d.DisturbDurationMS
	}
	if t.DisturbFadeFactor == 0 {
		t.DisturbFadeFactor = d.DisturbFadeFactor
	}
	if t.SwayCacheTTLMS == 0 {
		t.SwayCacheTTLMS = d.SwayCacheTTLMS
	}
	if t.GhostCapacity == 0 {
		t.GhostCapacity = d.GhostCapacity
	}
	if t.GhostFadeStep == 0 {
		t.GhostFadeStep = d.GhostFadeStep
	}
	if t.GhostAlphaFloor == 0 {
		t.GhostAlphaFloor = d.GhostAlphaFloor
	}
	if t.RollBufferMS == 0 {
		t.RollBufferMS = d.RollBufferMS
	}
}

// clamp pins values that would misbehave at runtime and warns about each one.
func (t *Tuning) clamp() {
	clampMin := func(name string, v *float64, min float64) {
		if *v < min {
			warnf("tuning: %s %.3f below minimum, clamped to %.3f", name, *v, min)
			*v = min
		}
	}
	clampMin("viewport_margin", &t.ViewportMargin, 0)
	clampMin("movement_noise", &t.MovementNoise, 0)
	clampMin("teleport_distance", &t.TeleportDistance, t.MovementNoise)
	if t.SmoothingFactor <= 0 || t.SmoothingFactor > 1 {
		warnf("tuning: smoothing_factor %.3f outside (0, 1], clamped", t.SmoothingFactor)
		if t.SmoothingFactor <= 0 {
			t.SmoothingFactor = DefaultTuning().SmoothingFactor
		} else {
			t.SmoothingFactor = 1
		}
	}
	clampMin("shake_duration_ms", &t.ShakeDurationMS, 0)
	clampMin("shake_amplitude", &t.ShakeAmplitude, 0)
	if t.FlashDurationMS > t.ShakeDurationMS {
		warnf("tuning: flash_duration_ms %.0f exceeds shake_duration_ms, clamped", t.FlashDurationMS)
		t.FlashDurationMS = t.ShakeDurationMS
	}
	clampMin("disturb_duration_ms", &t.DisturbDurationMS, 1)
	clampMin("disturb_fade_factor", &t.DisturbFadeFactor, 0)
	clampMin("sway_cache_ttl_ms", &t.SwayCacheTTLMS, 0)
	if t.GhostCapacity < 1 {
		warnf("tuning: ghost_capacity %d below 1, clamped", t.GhostCapacity)
		t.GhostCapacity = 1
	}
	if t.GhostFadeStep <= 0 {
		warnf("tuning: ghost_fade_step %.3f must be positive, using default", t.GhostFadeStep)
		t.GhostFadeStep = DefaultTuning().GhostFadeStep
	}
	clampMin("ghost_alpha_floor", &t.GhostAlphaFloor, 0)
	clampMin("roll_buffer_ms", &t.RollBufferMS, 0)
}
