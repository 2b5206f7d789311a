package mob

import (
	"fmt"

	"github.com/openwave/mobcore/document"
	"github.com/openwave/mobcore/vmath"
)

// MobSpawners is the named group of sub-entity spawners on a mob.
// Behaviors reference spawners by their map key.
type MobSpawners struct {
	Spawners map[string]MobSpawner `toml:"spawners"`
}

// MobSpawner periodically spawns another mob at an offset.
type MobSpawner struct {
	// Timer is the spawn period in seconds.
	Timer    float64    `toml:"timer"`
	Position vmath.Vec2 `toml:"position"`
	Rotation float64    `toml:"rotation"`
	// MobRef is the referenced mob, e.g. "mobs/xhitara/grunt.mob".
	MobRef string `toml:"mob_ref"`
}

type mobSpawnerShadow MobSpawner

// UnmarshalDocument decodes a spawner table, requiring timer and mob_ref.
func (s *MobSpawner) UnmarshalDocument(data any) error {
	tbl, ok := data.(document.Table)
	if !ok {
		return fmt.Errorf("mob spawner must be a table, got %T", data)
	}
	if _, ok := tbl["timer"]; !ok {
		return fmt.Errorf("missing required field %q", "timer")
	}
	if _, ok := tbl["mob_ref"]; !ok {
		return fmt.Errorf("missing required field %q", "mob_ref")
	}
	return document.Decode(tbl, (*mobSpawnerShadow)(s))
}

// ProjectileSpawners is the named group of projectile spawners on a mob.
type ProjectileSpawners struct {
	Spawners map[string]ProjectileSpawner `toml:"spawners"`
}

// ProjectileSpawner periodically fires a projectile of a given type and
// faction. The multipliers scale the mob's base projectile attributes
// and default to 1.
type ProjectileSpawner struct {
	Timer                  float64    `toml:"timer"`
	Position               vmath.Vec2 `toml:"position"`
	Rotation               float64    `toml:"rotation"`
	ProjectileType         string     `toml:"projectile_type"`
	Faction                string     `toml:"faction"`
	SpeedMultiplier        float64    `toml:"speed_multiplier"`
	DamageMultiplier       float64    `toml:"damage_multiplier"`
	RangeSecondsMultiplier float64    `toml:"range_seconds_multiplier"`
}

type projectileSpawnerShadow ProjectileSpawner

// UnmarshalDocument decodes a spawner table, requiring timer,
// projectile_type, and faction, and defaulting the multipliers to 1.
func (s *ProjectileSpawner) UnmarshalDocument(data any) error {
	tbl, ok := data.(document.Table)
	if !ok {
		return fmt.Errorf("projectile spawner must be a table, got %T", data)
	}
	for _, field := range []string{"timer", "projectile_type", "faction"} {
		if _, ok := tbl[field]; !ok {
			return fmt.Errorf("missing required field %q", field)
		}
	}
	s.SpeedMultiplier = 1.0
	s.DamageMultiplier = 1.0
	s.RangeSecondsMultiplier = 1.0
	return document.Decode(tbl, (*projectileSpawnerShadow)(s))
}
