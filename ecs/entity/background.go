package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

func NewBackground(w *ecs.World, spec prefabs.BackgroundSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.BackgroundComponent.Kind(), &component.Background{Visible: spec.Visible}); err != nil {
		return 0, fmt.Errorf("background: add background: %w", err)
	}
	if err := ecs.Add(w, e, component.AppearanceComponent.Kind(), &component.Appearance{
		Color:  spec.Color.ToRGBA(defaultBackgroundColor),
		Hidden: !spec.Visible,
	}); err != nil {
		return 0, fmt.Errorf("background: add appearance: %w", err)
	}

	return e, nil
}
