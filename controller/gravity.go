package controller

import (
	"math"

	"github.com/milk9111/platformer/common"
)

func (c *Controller) processGravity() {
	offset := c.cfg.ColliderOffset
	if c.state.Probe.Ceiling < offset && c.state.Velocity.Y > 0 {
		c.state.Velocity.Y = 0
	}

	if c.state.IsGrounded && !c.input.JumpDown {
		c.state.RemainingCoyoteTime = c.cfg.CoyoteTime
		c.state.Velocity.Y = 0
		c.state.Position.Y -= c.state.GroundDistance
		return
	}

	// dash and hit-stun own vertical velocity
	if c.state.CurrentlyDashing || c.state.InImpactFrames {
		return
	}

	accel := c.cfg.Gravity
	targetFall := c.cfg.MaxFallSpeed
	vy := c.state.Velocity.Y

	switch {
	case vy < 0 && c.pressingIntoWall():
		targetFall = c.cfg.MaxWallSlideVelocity
	case math.Abs(vy) <= c.cfg.HalfGravityVelocity:
		accel /= 2
	case vy > 0 && !c.input.JumpHeld:
		accel *= c.cfg.JumpNotHeldModifier
	}

	c.state.Velocity.Y = common.MoveTowards(vy, -targetFall, accel)
}

func (c *Controller) pressingIntoWall() bool {
	offset := c.cfg.ColliderOffset
	return (c.state.Probe.LeftWall < offset && c.input.Move.X < 0) ||
		(c.state.Probe.RightWall < offset && c.input.Move.X > 0)
}
