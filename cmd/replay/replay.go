package main

import (
	"fmt"
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/levels"
)

// Result summarises a finished replay.
type Result struct {
	Ticks         int
	Position      cp.Vector
	Health        int
	Dead          bool
	EnemiesKilled int
	EnemiesLeft   int
}

// Run plays frames against lvl without a window. It stops early when the
// player dies.
func Run(frames []system.InputFrame, lvl *levels.Level, catalog entity.Catalog, logger *slog.Logger) (Result, error) {
	w := ecs.NewWorld()
	player, err := entity.BuildLevel(w, lvl, catalog, logger)
	if err != nil {
		return Result{}, fmt.Errorf("replay: %w", err)
	}
	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	c := p.Controller

	tick := 0
	scheduler := ecs.NewScheduler(
		system.NewInputSystem(func() system.InputFrame { return frames[tick] }),
		system.NewPlayerControllerSystem(),
		system.NewHitZoneSystem(),
		system.NewEnemySystem(nil, logger),
		system.NewProjectileSystem(),
		system.NewCombatSystem(catalog.Particle, logger),
		system.NewTTLSystem(),
		system.NewBackgroundSystem(),
	)

	var res Result
	for ; tick < len(frames); tick++ {
		scheduler.Update(w)

		st := c.State()
		logger.Debug("tick",
			"n", tick,
			"pos", st.Position,
			"vel", st.Velocity,
			"grounded", st.IsGrounded,
			"dashing", st.CurrentlyDashing,
			"impact", st.InImpactFrames,
			"health", st.Health,
		)

		for _, evt := range w.Events().Drain() {
			switch evt.Kind {
			case ecs.EventEnemyKilled:
				res.EnemiesKilled++
				logger.Info("enemy killed", "tick", tick, "entity", evt.Entity)
			case ecs.EventPlayerDied:
				res.Dead = true
				logger.Info("player died", "tick", tick)
			}
		}
		if res.Dead {
			tick++
			break
		}
	}

	res.Ticks = tick
	res.Position = c.Position()
	res.Health = c.Health()
	res.EnemiesLeft = ecs.Count(w, component.EnemyComponent.Kind())
	return res, nil
}
