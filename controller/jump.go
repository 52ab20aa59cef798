package controller

func (c *Controller) processJump() {
	c.state.RemainingCoyoteTime--
	c.state.CanJump = c.state.IsGrounded || c.state.RemainingCoyoteTime > 0

	nearLeft, nearRight := c.nearLeftWall(), c.nearRightWall()

	// An early press is kept around until the jump becomes legal.
	if c.input.JumpDown && !c.state.CanJump && !nearLeft && !nearRight {
		c.buffer.Record(InputJump, c.cfg.InputBufferFrames)
	}
	if c.buffer.HasPending(InputJump) {
		c.input.JumpDown = true
	}
	if !c.input.JumpDown {
		return
	}

	switch {
	case c.state.CanJump:
		c.jump()
	case nearLeft && nearRight:
		c.wallJump(0)
	case nearLeft:
		c.wallJump(1)
	case nearRight:
		c.wallJump(-1)
	}
}

// startJump is shared by normal and wall jumps.
func (c *Controller) startJump() {
	c.buffer.Consume(InputJump)
	c.spawner.SpawnEffect(EffectJump, c.state.Position, 180)
	c.state.CurrentlyDashing = false
	c.state.IsGrounded = false
	// ground probing stays off for a few ticks so a character sitting
	// slightly inside the floor is not re-grounded mid-jump
	if c.cfg.GroundProbeDelay > 0 {
		c.state.ShouldFindGround = false
		c.groundProbeDelay = c.cfg.GroundProbeDelay
	}
	c.state.RemainingCoyoteTime = -1
}

func (c *Controller) jump() {
	c.startJump()
	c.state.Velocity.Y = c.cfg.JumpPower
	c.log.Debug("jump", "tick", c.tick, "pos", c.state.Position)
}

// wallJump pushes off along direction: 1 away from a left wall, -1 away from
// a right wall, 0 straight up.
func (c *Controller) wallJump(direction float64) {
	c.startJump()
	c.state.Velocity.Y = c.cfg.WallJumpPower
	c.state.Velocity.X = c.cfg.WallJumpPushBack * direction
	c.log.Debug("wall jump", "tick", c.tick, "direction", direction)
}
