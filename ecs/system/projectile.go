package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/controller"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// ProjectileSystem flies projectiles in a straight line and destroys them on
// the first wall they reach.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	pw := w.PhysicsWorld()
	ecs.ForEach3(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, p *component.Projectile, transform *component.Transform, body *component.Body) {
		dir := cp.Vector{X: p.Direction}
		step := p.Speed / common.TickRate
		size := cp.Vector{X: body.Width, Y: body.Height}

		if d, hit := pw.Boxcast(transform.Position, size, dir, step, controller.WallsLayer); hit && d <= step {
			ecs.DestroyEntity(w, e)
			return
		}

		body.Velocity = dir.Mult(p.Speed)
		transform.Position = transform.Position.Add(dir.Mult(step))
	})
}
