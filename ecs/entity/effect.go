package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

// NewEffect spawns a short-lived particle named after the event that caused
// it. rotation is in degrees.
func NewEffect(w *ecs.World, spec prefabs.ParticleSpec, name string, pos cp.Vector, rotation float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.EffectComponent.Kind(), &component.Effect{Name: name, Rotation: rotation}); err != nil {
		return 0, fmt.Errorf("effect: add effect: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos, Rotation: rotation}); err != nil {
		return 0, fmt.Errorf("effect: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{Width: spec.Size, Height: spec.Size}); err != nil {
		return 0, fmt.Errorf("effect: add body: %w", err)
	}
	if err := ecs.Add(w, e, component.AppearanceComponent.Kind(), &component.Appearance{Color: spec.ColorFor(name), Layer: layerEffect}); err != nil {
		return 0, fmt.Errorf("effect: add appearance: %w", err)
	}
	if err := ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: spec.LifetimeFrames}); err != nil {
		return 0, fmt.Errorf("effect: add ttl: %w", err)
	}

	return e, nil
}
