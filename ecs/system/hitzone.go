package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// HitZoneSystem keeps melee hit zones attached to their owners. A zone whose
// owner is gone is destroyed.
type HitZoneSystem struct{}

func NewHitZoneSystem() *HitZoneSystem {
	return &HitZoneSystem{}
}

func (s *HitZoneSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.HitZoneComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, zone *component.HitZone, transform *component.Transform) {
		owner, ok := ecs.Get(w, ecs.Entity(zone.Owner), component.TransformComponent.Kind())
		if !ok {
			ecs.DestroyEntity(w, e)
			return
		}
		transform.Position = owner.Position.Add(cp.Vector{X: zone.Offset.X * zone.Facing, Y: zone.Offset.Y})
	})
}
