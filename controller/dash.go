package controller

type dashPhase uint8

const (
	dashIdle dashPhase = iota
	dashPause
	dashBurst
)

// dashSequence is the countdown state of an active dash: a short freeze
// followed by the burst itself.
type dashSequence struct {
	phase     dashPhase
	pauseLeft int
	burstLeft int
	dir       float64
}

func (c *Controller) processDash() {
	if c.state.IsGrounded || c.nearLeftWall() || c.nearRightWall() {
		c.state.RemainingDashes = c.cfg.NumDashes
	}

	if !c.input.DashPressed {
		return
	}
	if c.state.RemainingDashes <= 0 || c.state.CurrentlyDashing || c.state.InImpactFrames {
		return
	}
	if c.state.TimeSinceLastDash < c.cfg.TimeBetweenDashes {
		return
	}

	c.state.TimeSinceLastDash = 0
	c.startDash()
}

func (c *Controller) startDash() {
	c.spawner.SpawnEffect(EffectDash, c.state.Position, 270)
	c.state.CurrentlyDashing = true
	c.state.RemainingDashes--

	if c.input.Move.X == 0 {
		c.input.Move.X = c.facing()
	}
	c.dash = dashSequence{
		phase:     dashPause,
		pauseLeft: c.cfg.DashStartPause,
		dir:       c.input.Move.X,
	}
	c.log.Debug("dash", "tick", c.tick, "dir", c.dash.dir, "remaining", c.state.RemainingDashes)
	c.stepDashPause()
}

// resumeDash advances an active dash by one tick. Clearing CurrentlyDashing
// from anywhere else cancels the sequence here.
func (c *Controller) resumeDash() {
	switch c.dash.phase {
	case dashPause:
		if !c.state.CurrentlyDashing {
			c.endDash()
			return
		}
		c.stepDashPause()
	case dashBurst:
		c.dash.burstLeft--
		if c.dash.burstLeft <= 0 || !c.state.CurrentlyDashing {
			c.endDash()
		}
	}
}

func (c *Controller) stepDashPause() {
	if c.dash.pauseLeft > 0 {
		c.state.Velocity.X, c.state.Velocity.Y = 0, 0
		c.dash.pauseLeft--
		return
	}
	c.beginDashBurst()
}

func (c *Controller) beginDashBurst() {
	dir := c.input.Move.X
	if dir == 0 {
		dir = c.dash.dir
	}
	c.state.Velocity.X = dir * c.cfg.DashVelocity
	c.state.Velocity.Y = 0
	c.colliderHeight = c.cfg.ColliderHeight / 3

	c.dash.phase = dashBurst
	c.dash.burstLeft = c.cfg.DashFrames
	if c.dash.burstLeft <= 0 {
		c.endDash()
	}
}

func (c *Controller) endDash() {
	c.state.CurrentlyDashing = false
	c.colliderHeight = c.cfg.ColliderHeight
	c.dash = dashSequence{}
}
