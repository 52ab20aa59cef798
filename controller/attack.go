package controller

type hitZoneTimer struct {
	id        HitZoneID
	ticksLeft int
}

// resolveFacing forces a horizontal direction into this tick's input when
// none is held.
func (c *Controller) resolveFacing() float64 {
	if c.input.Move.X == 0 {
		c.input.Move.X = c.facing()
	}
	return c.input.Move.X
}

func (c *Controller) processAttack() {
	if !c.input.AttackPressed {
		return
	}
	if c.state.CurrentlyDashing || c.state.InImpactFrames {
		return
	}

	facing := c.resolveFacing()
	id := c.spawner.SpawnHitZone(facing)
	c.hitZones = append(c.hitZones, hitZoneTimer{id: id, ticksLeft: c.cfg.MeleeLifetimeTicks()})
}

func (c *Controller) processRangedAttack() {
	if !c.input.RangedPressed {
		return
	}
	if c.state.InImpactFrames || c.state.TimeSinceLastShot < c.cfg.TimeBetweenShots {
		return
	}

	facing := c.resolveFacing()
	c.state.TimeSinceLastShot = 0
	c.spawner.SpawnProjectile(c.state.Position, facing)
}

func (c *Controller) expireHitZones() {
	if len(c.hitZones) == 0 {
		return
	}
	kept := c.hitZones[:0]
	for _, hz := range c.hitZones {
		hz.ticksLeft--
		if hz.ticksLeft <= 0 {
			c.spawner.DespawnHitZone(hz.id)
			continue
		}
		kept = append(kept, hz)
	}
	c.hitZones = kept
}

// ActiveHitZones returns the number of melee hit-zones still alive.
func (c *Controller) ActiveHitZones() int { return len(c.hitZones) }
