package component

// Projectile travels Speed units per second along Direction (-1 or 1).
type Projectile struct {
	Direction float64
	Speed     float64
	Damage    int
}

var ProjectileComponent = NewComponent[Projectile]()
