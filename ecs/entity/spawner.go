package entity

import (
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/controller"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

var _ controller.Spawner = (*worldSpawner)(nil)

// worldSpawner turns controller requests into entities. Damage values are
// read from the controller's live config so hot-reloaded tuning applies to
// the next attack.
type worldSpawner struct {
	w          *ecs.World
	log        *slog.Logger
	owner      ecs.Entity
	ctrl       *controller.Controller
	hitZone    prefabs.HitZoneSpec
	projectile prefabs.ProjectileSpec
	particles  prefabs.ParticleSpec

	nextZone controller.HitZoneID
	zones    map[controller.HitZoneID]ecs.Entity
}

func (s *worldSpawner) SpawnEffect(kind controller.EffectKind, pos cp.Vector, rotation float64) {
	if _, err := NewEffect(s.w, s.particles, kind.String(), pos, rotation); err != nil {
		s.log.Warn("spawn effect", "kind", kind, "err", err)
	}
}

func (s *worldSpawner) SpawnHitZone(facing float64) controller.HitZoneID {
	s.nextZone++
	id := s.nextZone

	offset := cp.Vector{X: s.hitZone.OffsetX, Y: s.hitZone.OffsetY}
	origin := cp.Vector{}
	if s.ctrl != nil {
		origin = s.ctrl.Position()
	}

	e, err := newHitZone(s.w, component.HitZone{
		ID:     id,
		Owner:  uint64(s.owner),
		Facing: facing,
		Offset: offset,
		Damage: s.meleeDamage(),
	}, origin.Add(cp.Vector{X: offset.X * facing, Y: offset.Y}), s.hitZone)
	if err != nil {
		s.log.Warn("spawn hit zone", "err", err)
		return id
	}
	s.zones[id] = e
	return id
}

func (s *worldSpawner) DespawnHitZone(id controller.HitZoneID) {
	e, ok := s.zones[id]
	if !ok {
		return
	}
	delete(s.zones, id)
	ecs.DestroyEntity(s.w, e)
}

func (s *worldSpawner) SpawnProjectile(pos cp.Vector, direction float64) {
	if _, err := NewProjectile(s.w, s.projectile, pos, direction, s.rangedDamage()); err != nil {
		s.log.Warn("spawn projectile", "err", err)
	}
}

func (s *worldSpawner) meleeDamage() int {
	if s.ctrl == nil {
		return 0
	}
	return s.ctrl.Config().MeleeDamage
}

func (s *worldSpawner) rangedDamage() int {
	if s.ctrl == nil {
		return 0
	}
	return s.ctrl.Config().RangedDamage
}

func newHitZone(w *ecs.World, zone component.HitZone, pos cp.Vector, spec prefabs.HitZoneSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	zone.Hit = make(map[uint64]bool)
	if err := ecs.Add(w, e, component.HitZoneComponent.Kind(), &zone); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{Width: spec.Width, Height: spec.Height}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.AppearanceComponent.Kind(), &component.Appearance{Color: defaultHitZoneColor, Layer: layerHitZone}); err != nil {
		return 0, err
	}
	return e, nil
}
