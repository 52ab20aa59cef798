package entity

import (
	"fmt"
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/controller"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// NewPlayer spawns the player at pos with a controller wired to the world's
// physics and to entity spawning. The controller's death pushes
// EventPlayerDied.
func NewPlayer(w *ecs.World, catalog Catalog, pos cp.Vector, logger *slog.Logger) (ecs.Entity, error) {
	if logger == nil {
		logger = slog.Default()
	}

	e := ecs.CreateEntity(w)
	spawner := &worldSpawner{
		w:          w,
		log:        logger,
		owner:      e,
		hitZone:    catalog.Player.HitZone,
		projectile: catalog.Projectile,
		particles:  catalog.Particle,
		zones:      make(map[controller.HitZoneID]ecs.Entity),
	}

	var probe controller.Prober
	if pw := w.PhysicsWorld(); pw != nil {
		probe = pw
	}
	ctrl, err := controller.New(catalog.Player.ControllerConfig(), pos, controller.Deps{
		Probe:   probe,
		Spawner: spawner,
		OnDeath: func() { w.Events().Push(ecs.Event{Kind: ecs.EventPlayerDied, Entity: e}) },
		Logger:  logger.With("entity", e),
	})
	if err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("player: %w", err)
	}
	spawner.ctrl = ctrl

	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{Controller: ctrl}); err != nil {
		return 0, fmt.Errorf("player: add player component: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	width, height := ctrl.Collider()
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{Width: width, Height: height}); err != nil {
		return 0, fmt.Errorf("player: add body: %w", err)
	}
	if err := ecs.Add(w, e, component.AppearanceComponent.Kind(), &component.Appearance{
		Color: catalog.Player.Color.ToRGBA(defaultPlayerColor),
		Layer: layerPlayer,
	}); err != nil {
		return 0, fmt.Errorf("player: add appearance: %w", err)
	}

	return e, nil
}
