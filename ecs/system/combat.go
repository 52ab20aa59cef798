package system

import (
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/prefabs"
)

const enemyDeathEffect = "enemy_death"

// CombatSystem resolves overlaps between damage sources and targets:
// melee zones and projectiles against enemies, and enemy bodies against the
// player.
type CombatSystem struct {
	log       *slog.Logger
	particles prefabs.ParticleSpec
}

func NewCombatSystem(particles prefabs.ParticleSpec, logger *slog.Logger) *CombatSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &CombatSystem{log: logger, particles: particles}
}

func (s *CombatSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	s.resolveHitZones(w)
	s.resolveProjectiles(w)
	s.resolveContact(w)
}

func (s *CombatSystem) resolveHitZones(w *ecs.World) {
	ecs.ForEach3(w, component.HitZoneComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(), func(_ ecs.Entity, zone *component.HitZone, transform *component.Transform, body *component.Body) {
		bb := body.Bounds(transform.Position)
		s.forEachEnemyIn(w, bb, func(target ecs.Entity) bool {
			if zone.Hit == nil {
				zone.Hit = make(map[uint64]bool)
			}
			if zone.Hit[uint64(target)] {
				return true
			}
			zone.Hit[uint64(target)] = true
			s.damageEnemy(w, target, zone.Damage)
			return true
		})
	})
}

func (s *CombatSystem) resolveProjectiles(w *ecs.World) {
	ecs.ForEach3(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, p *component.Projectile, transform *component.Transform, body *component.Body) {
		bb := body.Bounds(transform.Position)
		s.forEachEnemyIn(w, bb, func(target ecs.Entity) bool {
			s.damageEnemy(w, target, p.Damage)
			ecs.DestroyEntity(w, e)
			return false
		})
	})
}

func (s *CombatSystem) resolveContact(w *ecs.World) {
	pe, player, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok || player.Controller == nil || player.Controller.Dead() {
		return
	}
	transform, ok := ecs.Get(w, pe, component.TransformComponent.Kind())
	if !ok {
		return
	}
	body, ok := ecs.Get(w, pe, component.BodyComponent.Kind())
	if !ok {
		return
	}

	bb := body.Bounds(transform.Position)
	s.forEachEnemyIn(w, bb, func(target ecs.Entity) bool {
		enemy, _ := ecs.Get(w, target, component.EnemyComponent.Kind())
		player.Controller.TakeDamage(enemy.ContactDamage)
		return !player.Controller.Dead()
	})
}

// forEachEnemyIn calls fn for every enemy whose body overlaps bb until fn
// returns false.
func (s *CombatSystem) forEachEnemyIn(w *ecs.World, bb cp.BB, fn func(ecs.Entity) bool) {
	done := false
	ecs.ForEach3(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, _ *component.Enemy, transform *component.Transform, body *component.Body) {
		if done || !body.Bounds(transform.Position).Intersects(bb) {
			return
		}
		done = !fn(e)
	})
}

func (s *CombatSystem) damageEnemy(w *ecs.World, e ecs.Entity, amount int) {
	health, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok || !health.ApplyDamage(amount) {
		return
	}

	if transform, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		if _, err := entity.NewEffect(w, s.particles, enemyDeathEffect, transform.Position, 0); err != nil {
			s.log.Warn("spawn death effect", "entity", e, "err", err)
		}
	}
	ecs.DestroyEntity(w, e)
	w.Events().Push(ecs.Event{Kind: ecs.EventEnemyKilled, Entity: e})
	s.log.Debug("enemy killed", "entity", e)
}
