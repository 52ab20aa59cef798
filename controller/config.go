package controller

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/milk9111/platformer/common"
)

var ErrInvalidConfig = errors.New("controller: invalid config")

const (
	// NoHitDistance is reported by the probe when a cast hits nothing.
	NoHitDistance = 500.0

	// WallsLayer is the obstacle layer every probe cast runs against.
	WallsLayer = "walls"

	groundCastRange = 100.0
	wallCastRange   = 100.0
)

// Config holds every tunable of the player controller. Velocities are in
// world units per second, accelerations in units per second per tick, and
// all *Frames fields are tick counts.
type Config struct {
	// combat
	Health                int
	MeleeDamage           int
	RangedDamage          int
	ImpactFrames          int
	TimeBetweenShots      int
	InvulnerabilityFrames int

	// movement
	WalkSpeed        float64
	WalkAcceleration float64

	// jump & gravity
	JumpPower            float64
	WallJumpPower        float64
	WallJumpPushBack     float64
	MaxFallSpeed         float64
	Gravity              float64
	JumpNotHeldModifier  float64
	HalfGravityVelocity  float64
	MaxWallSlideVelocity float64

	// dash
	NumDashes         int
	DashVelocity      float64
	DashStartPause    int
	DashFrames        int
	TimeBetweenDashes int

	// systems
	CoyoteTime         int
	InputBufferFrames  int
	DistanceToWallJump float64
	StickDeadZone      float64
	GroundProbeDelay   int

	// collider
	ColliderOffset float64
	ColliderWidth  float64
	ColliderHeight float64

	MeleeLifetime time.Duration
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		Health:                3,
		MeleeDamage:           2,
		RangedDamage:          1,
		ImpactFrames:          10,
		TimeBetweenShots:      15,
		InvulnerabilityFrames: 75,

		WalkSpeed:        4,
		WalkAcceleration: 1,

		JumpPower:            22,
		WallJumpPower:        18,
		WallJumpPushBack:     18,
		MaxFallSpeed:         20,
		Gravity:              1,
		JumpNotHeldModifier:  3,
		HalfGravityVelocity:  2.5,
		MaxWallSlideVelocity: 0.5,

		NumDashes:         1,
		DashVelocity:      10,
		DashStartPause:    3,
		DashFrames:        10,
		TimeBetweenDashes: 30,

		CoyoteTime:         5,
		InputBufferFrames:  5,
		DistanceToWallJump: 0.5,
		StickDeadZone:      0.01,
		GroundProbeDelay:   3,

		ColliderOffset: 0.1,
		ColliderWidth:  0.8,
		ColliderHeight: 1.6,

		MeleeLifetime: 200 * time.Millisecond,
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	frames := []struct {
		name string
		v    int
	}{
		{"impact_frames", c.ImpactFrames},
		{"time_between_shots", c.TimeBetweenShots},
		{"invulnerability_frames", c.InvulnerabilityFrames},
		{"dash_start_pause", c.DashStartPause},
		{"dash_frames", c.DashFrames},
		{"time_between_dashes", c.TimeBetweenDashes},
		{"coyote_time", c.CoyoteTime},
		{"input_buffer_frames", c.InputBufferFrames},
		{"ground_probe_delay", c.GroundProbeDelay},
	}
	for _, f := range frames {
		if f.v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidConfig, f.name, f.v)
		}
	}
	if c.Health <= 0 {
		return fmt.Errorf("%w: health must be positive, got %d", ErrInvalidConfig, c.Health)
	}
	if c.NumDashes < 0 || c.NumDashes > 5 {
		return fmt.Errorf("%w: num_dashes must be in [0,5], got %d", ErrInvalidConfig, c.NumDashes)
	}
	if c.StickDeadZone < 0 || c.StickDeadZone > 0.5 {
		return fmt.Errorf("%w: stick_dead_zone must be in [0,0.5], got %v", ErrInvalidConfig, c.StickDeadZone)
	}
	if c.ColliderOffset < 0 {
		return fmt.Errorf("%w: collider_offset must not be negative, got %v", ErrInvalidConfig, c.ColliderOffset)
	}
	if c.ColliderWidth <= 0 || c.ColliderHeight <= 0 {
		return fmt.Errorf("%w: collider size must be positive, got %vx%v", ErrInvalidConfig, c.ColliderWidth, c.ColliderHeight)
	}
	if c.MeleeLifetime < 0 {
		return fmt.Errorf("%w: melee_lifetime must not be negative, got %s", ErrInvalidConfig, c.MeleeLifetime)
	}
	return nil
}

// MeleeLifetimeTicks converts the real-time melee lifetime to whole ticks.
func (c Config) MeleeLifetimeTicks() int {
	ticks := int(math.Round(c.MeleeLifetime.Seconds() * common.TickRate))
	if ticks < 1 {
		return 1
	}
	return ticks
}
