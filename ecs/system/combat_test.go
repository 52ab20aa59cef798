package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

func addHitZone(t *testing.T, w *ecs.World, pos cp.Vector, damage int) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.HitZoneComponent.Kind(), &component.HitZone{Facing: 1, Damage: damage})
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos})
	mustAdd(t, w, e, component.BodyComponent.Kind(), &component.Body{Width: 1.2, Height: 1})
	return e
}

func TestHitZoneDamagesEachEnemyOnce(t *testing.T) {
	w := ecs.NewWorld()
	enemy := addEnemy(t, w, cp.Vector{X: 1}, 1, 3)
	addHitZone(t, w, cp.Vector{X: 0.5}, 2)
	s := NewCombatSystem(prefabs.DefaultParticleSpec(), quietLogger())

	s.Update(w)
	s.Update(w)
	health, _ := ecs.Get(w, enemy, component.HealthComponent.Kind())
	if health.Current != 1 {
		t.Fatalf("expected a single hit, health %d", health.Current)
	}

	addHitZone(t, w, cp.Vector{X: 1.5}, 2)
	s.Update(w)
	if ecs.IsAlive(w, enemy) {
		t.Fatalf("expected enemy killed by the second zone")
	}
	events := w.Events().Drain()
	if len(events) != 1 || events[0].Entity != enemy {
		t.Fatalf("expected one kill event, got %v", events)
	}
	_, effect, ok := ecs.First(w, component.EffectComponent.Kind())
	if !ok || effect.Name != enemyDeathEffect {
		t.Fatalf("expected a death effect, got %+v", effect)
	}
}

func TestProjectileHitsOneEnemy(t *testing.T) {
	w := ecs.NewWorld()
	a := addEnemy(t, w, cp.Vector{X: 0}, 1, 3)
	b := addEnemy(t, w, cp.Vector{X: 0.1}, 1, 3)

	p := ecs.CreateEntity(w)
	mustAdd(t, w, p, component.ProjectileComponent.Kind(), &component.Projectile{Direction: 1, Speed: 20, Damage: 1})
	mustAdd(t, w, p, component.TransformComponent.Kind(), &component.Transform{})
	mustAdd(t, w, p, component.BodyComponent.Kind(), &component.Body{Width: 0.4, Height: 0.2})

	NewCombatSystem(prefabs.DefaultParticleSpec(), quietLogger()).Update(w)

	if ecs.IsAlive(w, p) {
		t.Fatalf("expected projectile spent")
	}
	ha, _ := ecs.Get(w, a, component.HealthComponent.Kind())
	hb, _ := ecs.Get(w, b, component.HealthComponent.Kind())
	if total := ha.Current + hb.Current; total != 5 {
		t.Fatalf("expected exactly one point of damage, health %d and %d", ha.Current, hb.Current)
	}
}

func TestEnemyContactDamagesPlayer(t *testing.T) {
	w := newFloorWorld(-10, 10)
	_, c := addPlayer(t, w, cp.Vector{Y: 0.8})
	addEnemy(t, w, cp.Vector{X: 0.5, Y: 0.45}, 1, 3)
	before := c.Health()

	s := NewCombatSystem(prefabs.DefaultParticleSpec(), quietLogger())
	s.Update(w)
	if got := c.Health(); got != before-1 {
		t.Fatalf("expected contact damage, health %d -> %d", before, got)
	}

	s.Update(w)
	if got := c.Health(); got != before-1 {
		t.Fatalf("expected invulnerability after the hit, health %d", got)
	}
}
