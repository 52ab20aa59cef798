package component

import "github.com/jakecoffman/cp"

// Enemy is a ground patroller. Direction is -1 or 1.
type Enemy struct {
	MoveSpeed     float64
	Gravity       float64
	MaxFallSpeed  float64
	ContactDamage int
	Direction     float64
	Script        string

	Grounded bool

	// Frozen is set while the player's hit-stun holds the world still;
	// HeldVelocity is restored when it ends.
	Frozen       bool
	HeldVelocity cp.Vector
}

var EnemyComponent = NewComponent[Enemy]()
