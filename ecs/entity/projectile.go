package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

// NewProjectile spawns a projectile at pos heading along direction (-1 or 1).
func NewProjectile(w *ecs.World, spec prefabs.ProjectileSpec, pos cp.Vector, direction float64, damage int) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.ProjectileComponent.Kind(), &component.Projectile{
		Direction: direction,
		Speed:     spec.Speed,
		Damage:    damage,
	}); err != nil {
		return 0, fmt.Errorf("projectile: add projectile: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos}); err != nil {
		return 0, fmt.Errorf("projectile: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{
		Width:    spec.Collider.Width,
		Height:   spec.Collider.Height,
		Velocity: cp.Vector{X: direction * spec.Speed},
	}); err != nil {
		return 0, fmt.Errorf("projectile: add body: %w", err)
	}
	if err := ecs.Add(w, e, component.AppearanceComponent.Kind(), &component.Appearance{
		Color: spec.Color.ToRGBA(defaultProjectileColor),
		Layer: layerProjectile,
	}); err != nil {
		return 0, fmt.Errorf("projectile: add appearance: %w", err)
	}
	if spec.LifetimeFrames > 0 {
		if err := ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: spec.LifetimeFrames}); err != nil {
			return 0, fmt.Errorf("projectile: add ttl: %w", err)
		}
	}

	return e, nil
}
