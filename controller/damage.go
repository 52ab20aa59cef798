package controller

// TakeDamage is called by enemies and hazards on contact. Damage inside the
// invulnerability window is ignored.
func (c *Controller) TakeDamage(amount int) {
	if c == nil {
		return
	}
	if c.state.TimeSinceLastDamage < c.cfg.InvulnerabilityFrames {
		return
	}

	c.state.Health -= amount
	c.state.TimeSinceLastDamage = 0
	c.startImpactFrames(c.cfg.ImpactFrames)
	c.spawner.SpawnEffect(EffectDamage, c.state.Position, 0)
	c.log.Debug("damage", "tick", c.tick, "amount", amount, "health", c.state.Health)

	if c.state.Health <= 0 && !c.dead {
		c.dead = true
		c.log.Info("player died", "tick", c.tick)
		if c.onDeath != nil {
			c.onDeath()
		}
	}
}

// startImpactFrames freezes the character for frames ticks of Advance.
func (c *Controller) startImpactFrames(frames int) {
	c.state.Velocity.X, c.state.Velocity.Y = 0, 0
	if frames <= 0 {
		return
	}
	c.state.InImpactFrames = true
	c.impactLeft = frames
}
