package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// PlayerControllerSystem advances every player's controller by one tick and
// mirrors its position, velocity and collider into the entity.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, player *component.Player, input *component.Input, transform *component.Transform) {
		c := player.Controller
		if c == nil || c.Dead() {
			return
		}

		c.Advance(input.Raw)
		transform.Position = c.Position()

		if body, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok {
			body.Width, body.Height = c.Collider()
			body.Velocity = c.Velocity()
		}
	})
}

// PlayerInImpactFrames reports whether any player is inside its hit-stun
// window.
func PlayerInImpactFrames(w *ecs.World) bool {
	_, player, ok := ecs.First(w, component.PlayerComponent.Kind())
	return ok && player.Controller != nil && player.Controller.InImpactFrames()
}
