// Package joint expands a mob's declared joint and chain relationships
// into a flat list of positioned parts, bounded by a recursion depth.
package joint

import (
	"math/rand"

	"github.com/openwave/mobcore/logger"
	"github.com/openwave/mobcore/mob"
	"github.com/openwave/mobcore/vmath"
)

// MaxRecursionDepth bounds joint resolution. Accidentally cyclic joint
// graphs terminate here instead of looping.
const MaxRecursionDepth = 10

// ResolvedPart is one placed sub-mob produced by Resolve.
type ResolvedPart struct {
	// Sprite is the part's sprite reference, empty when the referenced
	// mob declares none.
	Sprite string
	// Offset is the cumulative position relative to the root mob.
	Offset vmath.Vec2
	ZLevel float64
	// Depth is the recursion level the part was resolved at. The root
	// mob itself is depth 0 and is not included in the results.
	Depth       int
	Decorations []mob.Decoration
}

// Resolver loads a mob definition by raw or normalized reference.
// registry.Registry.GetMob satisfies it.
type Resolver func(ref string) (*mob.Definition, bool)

// Resolve walks def's jointed mobs and appends one ResolvedPart per
// placed sub-mob to results. Chain joints emit one part per segment at
// offset_pos + pos_offset*i, and only the last segment recurses into
// its own joints. References that fail to resolve are skipped; sibling
// branches continue.
//
// Random chain lengths are rolled with rng; a nil rng uses the global
// source.
func Resolve(def *mob.Definition, parentOffset vmath.Vec2, depth int, results *[]ResolvedPart, resolve Resolver, rng *rand.Rand) {
	if depth >= MaxRecursionDepth {
		logger.Log.Warnf("joint resolution for %q stopped at depth %d", def.Name, depth)
		return
	}

	for _, ref := range def.JointedMobs {
		sub, ok := resolve(ref.MobRef)
		if !ok {
			continue
		}

		if ref.Chain != nil {
			n := ref.Chain.Roll(rng)
			for i := 0; i < n; i++ {
				offset := parentOffset.
					Add(ref.OffsetPos).
					Add(ref.Chain.PosOffset.Scale(float64(i)))
				*results = append(*results, part(sub, offset, depth))
				if i == n-1 {
					Resolve(sub, offset, depth+1, results, resolve, rng)
				}
			}
			continue
		}

		offset := parentOffset.Add(ref.OffsetPos)
		*results = append(*results, part(sub, offset, depth))
		Resolve(sub, offset, depth+1, results, resolve, rng)
	}
}

func part(def *mob.Definition, offset vmath.Vec2, depth int) ResolvedPart {
	return ResolvedPart{
		Sprite:      def.Sprite,
		Offset:      offset,
		ZLevel:      def.ZLevel,
		Depth:       depth,
		Decorations: def.Decorations,
	}
}
