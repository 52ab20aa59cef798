package system

import (
	"log/slog"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/controller"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

const (
	enemyGroundSnap  = 0.02
	enemyLedgeProbe  = 2.0
	enemyWallProbe   = 2.0
	enemyLookahead   = 0.05
	enemyLedgeDepth  = 0.5
	enemyWallMargin  = 0.05
	enemyDefaultSide = -1
)

// ScriptLoader returns a patrol script's source by name.
type ScriptLoader func(name string) ([]byte, error)

// EnemySystem moves ground patrollers. Enemies fall under gravity and walk
// along Direction; a patrol script decides when to turn around. While a
// player is in hit-stun every enemy holds still and resumes its velocity
// afterwards.
type EnemySystem struct {
	log     *slog.Logger
	load    ScriptLoader
	scripts map[string]*patrolScript
	failed  map[string]bool
}

// NewEnemySystem loads scripts with load, or from the prefabs when load is
// nil.
func NewEnemySystem(load ScriptLoader, logger *slog.Logger) *EnemySystem {
	if load == nil {
		load = prefabs.LoadScript
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &EnemySystem{
		log:     logger,
		load:    load,
		scripts: make(map[string]*patrolScript),
		failed:  make(map[string]bool),
	}
}

// InvalidateScript drops a cached script so the next update recompiles it.
func (s *EnemySystem) InvalidateScript(name string) {
	delete(s.scripts, name)
	delete(s.failed, name)
}

func (s *EnemySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	frozen := PlayerInImpactFrames(w)
	pw := w.PhysicsWorld()

	ecs.ForEach3(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy, transform *component.Transform, body *component.Body) {
		if frozen {
			if !enemy.Frozen {
				enemy.Frozen = true
				enemy.HeldVelocity = body.Velocity
			}
			body.Velocity = cp.Vector{}
			return
		}
		if enemy.Frozen {
			enemy.Frozen = false
			body.Velocity = enemy.HeldVelocity
		}
		if enemy.Direction == 0 {
			enemy.Direction = enemyDefaultSide
		}

		size := cp.Vector{X: body.Width, Y: body.Height}
		dist, hit := pw.Boxcast(transform.Position, size, cp.Vector{Y: -1}, enemyGroundSnap, controller.WallsLayer)
		enemy.Grounded = hit && dist <= enemyGroundSnap
		if enemy.Grounded && body.Velocity.Y <= 0 {
			body.Velocity.Y = 0
		} else {
			body.Velocity.Y = math.Max(body.Velocity.Y-enemy.Gravity, -enemy.MaxFallSpeed)
		}

		enemy.Direction = s.patrol(e, enemy, s.sense(pw, enemy, transform.Position, size))
		body.Velocity.X = enemy.Direction * enemy.MoveSpeed

		next, _, blockedY := pw.MoveBox(transform.Position, size, body.Velocity.Mult(1.0/common.TickRate), controller.WallsLayer)
		if blockedY {
			body.Velocity.Y = 0
		}
		transform.Position = next
	})
}

func (s *EnemySystem) sense(pw *ecs.PhysicsWorld, enemy *component.Enemy, pos, size cp.Vector) patrolInput {
	halfW, halfH := size.X/2, size.Y/2
	down := cp.Vector{Y: -1}
	floor := func(x float64) float64 {
		d, ok := pw.Raycast(cp.Vector{X: x, Y: pos.Y - halfH}, down, enemyLedgeProbe, controller.WallsLayer)
		if !ok {
			return controller.NoHitDistance
		}
		return d
	}
	wall := func(side float64) float64 {
		origin := cp.Vector{X: pos.X + side*halfW, Y: pos.Y}
		d, ok := pw.Raycast(origin, cp.Vector{X: side}, enemyWallProbe, controller.WallsLayer)
		if !ok {
			return controller.NoHitDistance
		}
		return d
	}

	return patrolInput{
		Direction:  enemy.Direction,
		Grounded:   enemy.Grounded,
		FloorLeft:  floor(pos.X - halfW - enemyLookahead),
		FloorRight: floor(pos.X + halfW + enemyLookahead),
		WallLeft:   wall(-1),
		WallRight:  wall(1),
		LedgeDepth: enemyLedgeDepth,
		WallMargin: enemyWallMargin,
	}
}

func (s *EnemySystem) patrol(e ecs.Entity, enemy *component.Enemy, in patrolInput) float64 {
	if enemy.Script == "" || s.failed[enemy.Script] {
		return defaultPatrol(in)
	}

	script, err := s.script(enemy.Script)
	if err == nil {
		var dir float64
		if dir, err = script.run(in); err == nil {
			return dir
		}
	}

	s.failed[enemy.Script] = true
	s.log.Warn("patrol script disabled, using built-in rule", "entity", e, "script", enemy.Script, "err", err)
	return defaultPatrol(in)
}

func (s *EnemySystem) script(name string) (*patrolScript, error) {
	if script, ok := s.scripts[name]; ok {
		return script, nil
	}
	src, err := s.load(name)
	if err != nil {
		return nil, err
	}
	script, err := compilePatrolScript(name, src)
	if err != nil {
		return nil, err
	}
	s.scripts[name] = script
	return script, nil
}
