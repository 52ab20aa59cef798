package entity

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/controller"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/levels"
)

const spawnClearance = 0.01

// BuildLevel installs lvl's walls as the world's physics and spawns its
// placements. A level without a player placement gets one at its spawn
// position. It returns the player entity.
func BuildLevel(w *ecs.World, lvl *levels.Level, catalog Catalog, logger *slog.Logger) (ecs.Entity, error) {
	if w == nil || lvl == nil {
		return 0, fmt.Errorf("level: nil world or level")
	}
	if logger == nil {
		logger = slog.Default()
	}

	w.SetPhysicsWorld(ecs.NewPhysicsWorldFromLevel(lvl))

	background := false
	for _, placement := range lvl.Entities {
		switch placement.Type {
		case levels.EntityEnemy:
			spec := catalog.Enemy
			spec.MoveSpeed = placement.Prop("move_speed", spec.MoveSpeed)
			spec.Health = int(placement.Prop("health", float64(spec.Health)))
			if _, err := NewEnemy(w, spec, lvl.WorldPosition(placement), placement.Prop("direction", -1)); err != nil {
				return 0, fmt.Errorf("level: %w", err)
			}
		case levels.EntityBackground:
			if _, err := NewBackground(w, catalog.Background); err != nil {
				return 0, fmt.Errorf("level: %w", err)
			}
			background = true
		case levels.EntityPlayer:
		default:
			logger.Warn("unknown level entity", "type", placement.Type, "x", placement.X, "y", placement.Y)
		}
	}
	if !background {
		if _, err := NewBackground(w, catalog.Background); err != nil {
			return 0, fmt.Errorf("level: %w", err)
		}
	}

	// Placements are cell centres; stand taller colliders on the cell floor.
	spawn := lvl.SpawnPosition()
	spawn.Y += math.Max(catalog.Player.Collider.Height-1, 0) / 2

	// Shrunk so resting on the floor does not count as touching it.
	hw, hh := catalog.Player.Collider.Width/2-spawnClearance, catalog.Player.Collider.Height/2-spawnClearance
	if w.PhysicsWorld().Overlaps(cp.NewBBForExtents(spawn, hw, hh), controller.WallsLayer) {
		logger.Warn("player spawn overlaps walls", "x", spawn.X, "y", spawn.Y)
	}

	player, err := NewPlayer(w, catalog, spawn, logger)
	if err != nil {
		return 0, fmt.Errorf("level: %w", err)
	}
	logger.Info("level built", "size", fmt.Sprintf("%dx%d", lvl.Width, lvl.Height), "entities", len(ecs.Entities(w)))
	return player, nil
}
