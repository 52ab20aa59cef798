package controller

import "github.com/milk9111/platformer/common"

func (c *Controller) processMovement() {
	if !c.state.CurrentlyDashing && !c.state.InImpactFrames {
		target := c.input.Move.X * c.cfg.WalkSpeed
		c.state.Velocity.X = common.MoveTowards(c.state.Velocity.X, target, c.cfg.WalkAcceleration)
	}

	offset := c.cfg.ColliderOffset
	vx := c.state.Velocity.X
	if (c.state.Probe.RightWall < offset && vx > 0) || (c.state.Probe.LeftWall < offset && vx < 0) {
		c.state.Velocity.X = 0
	}
}
