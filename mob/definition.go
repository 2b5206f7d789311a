// Package mob defines the typed, fully-merged form of one mob template
// and its strict decoding from a raw document.
package mob

import (
	"fmt"

	"github.com/openwave/mobcore/behavior"
	"github.com/openwave/mobcore/document"
	"github.com/openwave/mobcore/vmath"
)

// Decoration is a sprite attached to a mob at an offset, encoded in
// documents as a two-element tuple: ["media/glow.aseprite", [x, y]].
type Decoration struct {
	Sprite string
	Offset vmath.Vec2
}

// UnmarshalDocument decodes the [sprite, [x, y]] tuple.
func (d *Decoration) UnmarshalDocument(data any) error {
	arr, ok := data.([]any)
	if !ok {
		return fmt.Errorf("decoration must be [sprite, [x, y]], got %T", data)
	}
	if len(arr) != 2 {
		return fmt.Errorf("decoration must be [sprite, [x, y]], got %d elements", len(arr))
	}
	sprite, ok := arr[0].(string)
	if !ok {
		return fmt.Errorf("decoration sprite must be a string, got %T", arr[0])
	}
	var offset vmath.Vec2
	if err := offset.UnmarshalDocument(arr[1]); err != nil {
		return fmt.Errorf("decoration offset: %w", err)
	}
	d.Sprite = sprite
	d.Offset = offset
	return nil
}

// Definition is one fully-merged mob template.
type Definition struct {
	// Name is the display name. Required.
	Name string `toml:"name"`
	// Spawnable marks mobs that may be spawned directly; jointed parts
	// that only exist as children of a parent set it to false.
	Spawnable bool `toml:"spawnable"`

	// Physical.
	Colliders      []Collider `toml:"colliders"`
	ZLevel         float64    `toml:"z_level"`
	RotationLocked bool       `toml:"rotation_locked"`

	// Movement.
	MaxLinearSpeed      vmath.Vec2 `toml:"max_linear_speed"`
	LinearAcceleration  vmath.Vec2 `toml:"linear_acceleration"`
	LinearDeceleration  vmath.Vec2 `toml:"linear_deceleration"`
	AngularAcceleration float64    `toml:"angular_acceleration"`
	AngularDeceleration float64    `toml:"angular_deceleration"`
	MaxAngularSpeed     float64    `toml:"max_angular_speed"`

	// Physics.
	Restitution              float64        `toml:"restitution"`
	Friction                 float64        `toml:"friction"`
	ColliderDensity          float64        `toml:"collider_density"`
	CollisionLayerMembership []PhysicsLayer `toml:"collision_layer_membership"`
	CollisionLayerFilter     []PhysicsLayer `toml:"collision_layer_filter"`

	// Combat.
	Health                 int      `toml:"health"`
	TargetingRange         *float64 `toml:"targeting_range"`
	ProjectileSpeed        float64  `toml:"projectile_speed"`
	ProjectileDamage       int      `toml:"projectile_damage"`
	ProjectileRangeSeconds float64  `toml:"projectile_range_seconds"`

	// Visual.
	// Sprite is the sprite file path relative to the assets directory.
	// Required. The engine treats it as an opaque reference string.
	Sprite      string       `toml:"sprite"`
	Decorations []Decoration `toml:"decorations"`

	// Spawners.
	MobSpawners        *MobSpawners        `toml:"mob_spawners"`
	ProjectileSpawners *ProjectileSpawners `toml:"projectile_spawners"`

	// Joints.
	JointedMobs []JointedMobRef `toml:"jointed_mobs"`

	// Behavior.
	BehaviorTransmitter bool           `toml:"behavior_transmitter"`
	Behavior            *behavior.Node `toml:"behavior"`
}

// Default attribute values applied before decoding.
const (
	DefaultZLevel                 = 0.0
	DefaultRotationLocked         = true
	DefaultAngularAcceleration    = 0.1
	DefaultAngularDeceleration    = 0.1
	DefaultMaxAngularSpeed        = 1.0
	DefaultRestitution            = 0.5
	DefaultFriction               = 0.5
	DefaultColliderDensity        = 1.0
	DefaultProjectileSpeed        = 100.0
	DefaultProjectileDamage       = 5
	DefaultHealth                 = 50
	DefaultProjectileRangeSeconds = 1.0
	DefaultSpawnable              = true
)

// NewDefault returns a definition populated with the documented default
// for every optional field. Decoding a document over it leaves absent
// fields at these values.
func NewDefault() *Definition {
	return &Definition{
		Spawnable: DefaultSpawnable,
		Colliders: []Collider{
			{Shape: ColliderShape{Kind: ShapeRectangle, Width: 10.0, Height: 10.0}},
		},
		ZLevel:              DefaultZLevel,
		RotationLocked:      DefaultRotationLocked,
		MaxLinearSpeed:      vmath.Vec2{X: 20.0, Y: 20.0},
		LinearAcceleration:  vmath.Vec2{X: 0.1, Y: 0.1},
		LinearDeceleration:  vmath.Vec2{X: 0.3, Y: 0.3},
		AngularAcceleration: DefaultAngularAcceleration,
		AngularDeceleration: DefaultAngularDeceleration,
		MaxAngularSpeed:     DefaultMaxAngularSpeed,
		Restitution:         DefaultRestitution,
		Friction:            DefaultFriction,
		ColliderDensity:     DefaultColliderDensity,
		CollisionLayerMembership: []PhysicsLayer{
			LayerEnemyMob,
		},
		CollisionLayerFilter: []PhysicsLayer{
			LayerAllyMob, LayerAllyProjectile, LayerEnemyMob, LayerPlayer, LayerEnemyTentacle,
		},
		Health:                 DefaultHealth,
		ProjectileSpeed:        DefaultProjectileSpeed,
		ProjectileDamage:       DefaultProjectileDamage,
		ProjectileRangeSeconds: DefaultProjectileRangeSeconds,
	}
}

// FromDocument strictly decodes a merged document table into a
// definition. Unknown fields and wrong types are errors; absent optional
// fields keep their defaults.
func FromDocument(tbl document.Table) (*Definition, error) {
	def := NewDefault()
	if err := document.Decode(tbl, def); err != nil {
		return nil, err
	}
	if def.Name == "" {
		return nil, fmt.Errorf("missing required field %q", "name")
	}
	if def.Sprite == "" {
		return nil, fmt.Errorf("missing required field %q", "sprite")
	}
	return def, nil
}
