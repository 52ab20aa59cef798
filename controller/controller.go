package controller

import (
	"fmt"
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
)

// State is the kinematic and gameplay state owned by a Controller.
type State struct {
	Position cp.Vector
	Velocity cp.Vector

	Health              int
	TimeSinceLastDamage int
	TimeSinceLastShot   int
	TimeSinceLastDash   int

	IsGrounded       bool
	CanJump          bool
	CurrentlyDashing bool
	InImpactFrames   bool
	ShouldFindGround bool

	RemainingCoyoteTime int
	RemainingDashes     int

	// GroundDistance is only refreshed while ShouldFindGround is set.
	GroundDistance float64
	Probe          ProbeResult
}

// Deps are the collaborators a Controller talks to.
type Deps struct {
	Probe   Prober
	Spawner Spawner
	OnDeath func()
	Logger  *slog.Logger
}

// Controller drives one player character, one fixed tick at a time.
type Controller struct {
	cfg     Config
	probe   Prober
	spawner Spawner
	onDeath func()
	log     *slog.Logger

	state  State
	input  FrameInput
	buffer InputBuffer

	tick           uint64
	facingLeft     bool
	colliderHeight float64
	dead           bool

	groundProbeDelay int
	dash             dashSequence
	impactLeft       int
	hitZones         []hitZoneTimer
}

// New creates a controller for a character spawned at pos.
func New(cfg Config, pos cp.Vector, deps Deps) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("controller: new: %w", err)
	}
	c := &Controller{
		cfg:            cfg,
		probe:          deps.Probe,
		spawner:        deps.Spawner,
		onDeath:        deps.OnDeath,
		log:            deps.Logger,
		colliderHeight: cfg.ColliderHeight,
	}
	if c.spawner == nil {
		c.spawner = noopSpawner{}
	}
	if c.log == nil {
		c.log = slog.New(slog.DiscardHandler)
	}
	c.state = State{
		Position:          pos,
		Health:            cfg.Health,
		TimeSinceLastDash: common.TickRate,
		TimeSinceLastShot: common.TickRate,
		ShouldFindGround:  true,
		GroundDistance:    NoHitDistance,
	}
	return c, nil
}

// Advance runs one simulation tick. The stage order matters: every stage only
// reads state written by the stages before it.
func (c *Controller) Advance(raw RawInput) {
	if c == nil {
		return
	}
	c.tick++
	c.incrementCounters()
	c.input = NewFrameInput(raw, c.cfg.StickDeadZone)
	c.resumeTimers()
	c.castProbe()
	c.processJump()
	c.processGravity()
	c.processMovement()
	c.processDash()
	c.processAttack()
	c.processRangedAttack()
	c.commitVelocity()
	c.buffer.Tick()
	c.processFacing()
	c.finishTimers()
}

func (c *Controller) incrementCounters() {
	c.state.TimeSinceLastDamage++
	c.state.TimeSinceLastDash++
	c.state.TimeSinceLastShot++
}

// resumeTimers runs the delayed continuations that were armed on earlier
// ticks, before any subsystem looks at this tick's state.
func (c *Controller) resumeTimers() {
	if c.groundProbeDelay > 0 {
		c.groundProbeDelay--
		if c.groundProbeDelay == 0 {
			c.state.ShouldFindGround = true
		}
	}
	c.resumeDash()
}

// finishTimers counts down the timers that expire at the end of a tick.
func (c *Controller) finishTimers() {
	if c.impactLeft > 0 {
		c.impactLeft--
		if c.impactLeft == 0 {
			c.state.InImpactFrames = false
		}
	}
	c.expireHitZones()
}

func (c *Controller) castProbe() {
	r := probe(c.probe, c.state.Position, c.cfg.ColliderWidth, c.colliderHeight, c.cfg.ColliderOffset)
	c.state.Probe = r
	if c.state.ShouldFindGround {
		c.state.GroundDistance = r.Ground
		c.state.IsGrounded = r.Ground < c.cfg.ColliderOffset
	}
}

// commitVelocity integrates one tick of motion, never moving further than
// the free space around the collider. Horizontal motion resolves first with
// a full-height sweep; the floor and ceiling are then re-measured under the
// new column before vertical motion is clamped.
func (c *Controller) commitVelocity() {
	delta := c.state.Velocity.Mult(1.0 / common.TickRate)
	r := c.state.Probe
	pos := c.state.Position
	width, height, offset := c.cfg.ColliderWidth, c.colliderHeight, c.cfg.ColliderOffset

	switch {
	case delta.X > 0:
		delta.X = min(delta.X, max(r.RightWall, 0), sideClearance(c.probe, pos, width, height, offset, dirRight, delta.X))
	case delta.X < 0:
		delta.X = max(delta.X, -max(r.LeftWall, 0), -sideClearance(c.probe, pos, width, height, offset, dirLeft, -delta.X))
	}
	pos.X += delta.X
	if delta.X != 0 {
		r.Ground, r.Headroom = verticalClearance(c.probe, pos, width, height, offset)
	}

	switch {
	case delta.Y > 0:
		delta.Y = min(delta.Y, max(r.Headroom, 0))
	case delta.Y < 0:
		delta.Y = max(delta.Y, -max(r.Ground, 0))
	}
	pos.Y += delta.Y
	c.state.Position = pos
}

func (c *Controller) processFacing() {
	if c.input.Move.X > 0 {
		c.facingLeft = false
	} else if c.input.Move.X < 0 {
		c.facingLeft = true
	}
}

func (c *Controller) facing() float64 {
	if c.facingLeft {
		return -1
	}
	return 1
}

func (c *Controller) nearLeftWall() bool {
	return c.state.Probe.LeftWall < c.cfg.DistanceToWallJump
}

func (c *Controller) nearRightWall() bool {
	return c.state.Probe.RightWall < c.cfg.DistanceToWallJump
}

// State returns a copy of the current state.
func (c *Controller) State() State { return c.state }

func (c *Controller) Position() cp.Vector { return c.state.Position }

func (c *Controller) Velocity() cp.Vector { return c.state.Velocity }

func (c *Controller) Health() int { return c.state.Health }

func (c *Controller) Dead() bool { return c.dead }

func (c *Controller) FacingLeft() bool { return c.facingLeft }

// InImpactFrames reports whether the hit-stun freeze is active. Other
// entities read this to pause themselves.
func (c *Controller) InImpactFrames() bool {
	return c != nil && c.state.InImpactFrames
}

// Collider returns the current collider size; it shrinks while dashing.
func (c *Controller) Collider() (width, height float64) {
	return c.cfg.ColliderWidth, c.colliderHeight
}

// Input returns the frame input as the subsystems last saw it, including any
// facing direction forced in by dash or attack.
func (c *Controller) Input() FrameInput { return c.input }

// BufferedInputs returns the input buffer contents, oldest first.
func (c *Controller) BufferedInputs() []BufferedInput { return c.buffer.Entries() }

func (c *Controller) Config() Config { return c.cfg }

// SetConfig swaps the tuning without resetting state.
func (c *Controller) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("controller: set config: %w", err)
	}
	c.cfg = cfg
	if !c.state.CurrentlyDashing {
		c.colliderHeight = cfg.ColliderHeight
	}
	if c.state.RemainingDashes > cfg.NumDashes {
		c.state.RemainingDashes = cfg.NumDashes
	}
	return nil
}
