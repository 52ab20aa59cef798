package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

// NewEnemy spawns a ground patroller at pos. direction picks the initial
// heading and defaults to left when zero.
func NewEnemy(w *ecs.World, spec prefabs.EnemySpec, pos cp.Vector, direction float64) (ecs.Entity, error) {
	if direction == 0 {
		direction = -1
	}

	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.EnemyComponent.Kind(), &component.Enemy{
		MoveSpeed:     spec.MoveSpeed,
		Gravity:       spec.Gravity,
		MaxFallSpeed:  spec.MaxFallSpeed,
		ContactDamage: spec.ContactDamage,
		Direction:     direction,
		Script:        spec.Script,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add enemy component: %w", err)
	}
	if err := ecs.Add(w, e, component.HealthComponent.Kind(), component.NewHealth(spec.Health)); err != nil {
		return 0, fmt.Errorf("enemy: add health: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos}); err != nil {
		return 0, fmt.Errorf("enemy: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{Width: spec.Collider.Width, Height: spec.Collider.Height}); err != nil {
		return 0, fmt.Errorf("enemy: add body: %w", err)
	}
	if err := ecs.Add(w, e, component.AppearanceComponent.Kind(), &component.Appearance{
		Color: spec.Color.ToRGBA(defaultEnemyColor),
		Layer: layerEnemy,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add appearance: %w", err)
	}

	return e, nil
}
