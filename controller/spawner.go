package controller

import "github.com/jakecoffman/cp"

// EffectKind selects the visual effect to spawn.
type EffectKind uint8

const (
	EffectJump EffectKind = iota + 1
	EffectDash
	EffectDamage
)

func (k EffectKind) String() string {
	switch k {
	case EffectJump:
		return "jump"
	case EffectDash:
		return "dash"
	case EffectDamage:
		return "damage"
	}
	return "unknown"
}

// HitZoneID is an opaque handle to a spawned melee hit-zone.
type HitZoneID uint64

// Spawner creates the transient objects the controller emits. Rotation is in
// degrees; facing and direction are -1 or 1.
type Spawner interface {
	SpawnEffect(kind EffectKind, pos cp.Vector, rotation float64)
	SpawnHitZone(facing float64) HitZoneID
	DespawnHitZone(id HitZoneID)
	SpawnProjectile(pos cp.Vector, direction float64)
}

type noopSpawner struct{}

func (noopSpawner) SpawnEffect(EffectKind, cp.Vector, float64) {}
func (noopSpawner) SpawnHitZone(float64) HitZoneID { return 0 }
func (noopSpawner) DespawnHitZone(HitZoneID) {}
func (noopSpawner) SpawnProjectile(cp.Vector, float64) {}
