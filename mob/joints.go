package mob

import (
	"math/rand"

	"github.com/openwave/mobcore/vmath"
)

// JointedMobRef declares a sub-mob attached to this mob at an offset and
// anchor pair, optionally repeated as a chain.
type JointedMobRef struct {
	// Key identifies this joint slot; behaviors reference joints by key.
	Key string `toml:"key"`
	// MobRef is the referenced mob file, e.g. "mobs/ferritharax/body.mob".
	// Lookups normalize it, so either form is accepted.
	MobRef string `toml:"mob_ref"`

	OffsetPos  vmath.Vec2 `toml:"offset_pos"`
	OffsetRot  float64    `toml:"offset_rot"`
	Anchor1Pos vmath.Vec2 `toml:"anchor_1_pos"`
	Anchor2Pos vmath.Vec2 `toml:"anchor_2_pos"`

	// Compliance is joint softness; lower is stiffer.
	Compliance float64 `toml:"compliance"`

	AngleLimitRange *JointAngleLimit `toml:"angle_limit_range"`
	Chain           *Chain           `toml:"chain"`
}

// JointAngleLimit bounds a revolute joint in degrees with a resistance
// torque.
type JointAngleLimit struct {
	Min    float64 `toml:"min"`
	Max    float64 `toml:"max"`
	Torque float64 `toml:"torque"`
}

// Chain declares a run of repeated joint segments with per-segment
// offset deltas.
type Chain struct {
	Length       int          `toml:"length"`
	PosOffset    vmath.Vec2   `toml:"pos_offset"`
	AnchorOffset vmath.Vec2   `toml:"anchor_offset"`
	RandomChain  *RandomChain `toml:"random_chain"`
}

// Roll returns the effective segment count. Fixed chains return their
// declared Length; random chains start at MinLength and grow one
// segment at a time, stopping early when an EndChance roll succeeds and
// never exceeding Length. A nil rng uses the global source.
func (c *Chain) Roll(rng *rand.Rand) int {
	if c.RandomChain == nil {
		return c.Length
	}
	roll := rand.Float64
	if rng != nil {
		roll = rng.Float64
	}
	n := c.RandomChain.MinLength
	if n < 1 {
		n = 1
	}
	for n < c.Length && roll() >= c.RandomChain.EndChance {
		n++
	}
	return n
}

// RandomChain makes a chain terminate at a random length: at least
// MinLength segments, then each further segment ends the chain with
// probability EndChance.
type RandomChain struct {
	MinLength int     `toml:"min_length"`
	EndChance float64 `toml:"end_chance"`
}
