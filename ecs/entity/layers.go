package entity

// Draw order of entity bodies.
const (
	layerEnemy = iota + 1
	layerProjectile
	layerPlayer
	layerHitZone
	layerEffect
)
