package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/controller"
)

// HitZone is a melee damage box that follows its owner. Offset is relative
// to the owner's position for a right-facing owner and is mirrored by
// Facing.
type HitZone struct {
	ID     controller.HitZoneID
	Owner  uint64
	Facing float64
	Offset cp.Vector
	Damage int
	// Hit records entities already damaged so a zone hits each target once.
	Hit map[uint64]bool
}

var HitZoneComponent = NewComponent[HitZone]()
