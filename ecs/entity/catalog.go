package entity

import (
	"fmt"

	"github.com/milk9111/platformer/prefabs"
)

// Catalog holds every prefab the level builder draws from.
type Catalog struct {
	Player     prefabs.PlayerSpec
	Enemy      prefabs.EnemySpec
	Projectile prefabs.ProjectileSpec
	Particle   prefabs.ParticleSpec
	Background prefabs.BackgroundSpec
}

// DefaultCatalog returns the built-in prefab values without touching any
// files.
func DefaultCatalog() Catalog {
	return Catalog{
		Player:     prefabs.DefaultPlayerSpec(),
		Enemy:      prefabs.DefaultEnemySpec(),
		Projectile: prefabs.DefaultProjectileSpec(),
		Particle:   prefabs.DefaultParticleSpec(),
		Background: prefabs.DefaultBackgroundSpec(),
	}
}

func LoadCatalog() (Catalog, error) {
	var (
		c   Catalog
		err error
	)
	if c.Player, err = prefabs.LoadPlayerSpec(); err != nil {
		return c, fmt.Errorf("entity: load catalog: %w", err)
	}
	if c.Enemy, err = prefabs.LoadEnemySpec(); err != nil {
		return c, fmt.Errorf("entity: load catalog: %w", err)
	}
	if c.Projectile, err = prefabs.LoadProjectileSpec(); err != nil {
		return c, fmt.Errorf("entity: load catalog: %w", err)
	}
	if c.Particle, err = prefabs.LoadParticleSpec(); err != nil {
		return c, fmt.Errorf("entity: load catalog: %w", err)
	}
	if c.Background, err = prefabs.LoadBackgroundSpec(); err != nil {
		return c, fmt.Errorf("entity: load catalog: %w", err)
	}
	return c, nil
}
