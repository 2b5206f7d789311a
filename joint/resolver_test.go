package joint

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openwave/mobcore/mob"
	"github.com/openwave/mobcore/vmath"
)

func mapResolver(mobs map[string]*mob.Definition) Resolver {
	return func(ref string) (*mob.Definition, bool) {
		def, ok := mobs[ref]
		return def, ok
	}
}

func TestResolveChainOffsets(t *testing.T) {
	segment := &mob.Definition{Name: "Segment", Sprite: "segment.png"}
	root := &mob.Definition{
		Name: "Root",
		JointedMobs: []mob.JointedMobRef{
			{
				Key:    "tail",
				MobRef: "segment",
				Chain: &mob.Chain{
					Length:    3,
					PosOffset: vmath.Vec2{X: 1, Y: 0},
				},
			},
		},
	}

	var results []ResolvedPart
	Resolve(root, vmath.Zero, 0, &results, mapResolver(map[string]*mob.Definition{
		"segment": segment,
	}), nil)

	require.Len(t, results, 3)
	assert.Equal(t, vmath.Vec2{X: 0, Y: 0}, results[0].Offset)
	assert.Equal(t, vmath.Vec2{X: 1, Y: 0}, results[1].Offset)
	assert.Equal(t, vmath.Vec2{X: 2, Y: 0}, results[2].Offset)
	for _, part := range results {
		assert.Equal(t, "segment.png", part.Sprite)
		assert.Equal(t, 0, part.Depth)
	}
}

func TestResolveOnlyLastChainSegmentRecurses(t *testing.T) {
	tip := &mob.Definition{Name: "Tip", Sprite: "tip.png"}
	segment := &mob.Definition{
		Name:   "Segment",
		Sprite: "segment.png",
		JointedMobs: []mob.JointedMobRef{
			{Key: "tip", MobRef: "tip", OffsetPos: vmath.Vec2{X: 0, Y: 1}},
		},
	}
	root := &mob.Definition{
		Name: "Root",
		JointedMobs: []mob.JointedMobRef{
			{
				Key:    "tail",
				MobRef: "segment",
				Chain:  &mob.Chain{Length: 2, PosOffset: vmath.Vec2{X: 1, Y: 0}},
			},
		},
	}

	var results []ResolvedPart
	Resolve(root, vmath.Zero, 0, &results, mapResolver(map[string]*mob.Definition{
		"segment": segment,
		"tip":     tip,
	}), nil)

	// Two chain segments plus one tip hanging off the last segment.
	require.Len(t, results, 3)

	var tips []ResolvedPart
	for _, part := range results {
		if part.Sprite == "tip.png" {
			tips = append(tips, part)
		}
	}
	require.Len(t, tips, 1)
	assert.Equal(t, vmath.Vec2{X: 1, Y: 1}, tips[0].Offset)
	assert.Equal(t, 1, tips[0].Depth)
}

func TestResolveDepthBound(t *testing.T) {
	// The mob joints onto itself; only the depth bound stops recursion.
	loop := &mob.Definition{Name: "Loop", Sprite: "loop.png"}
	loop.JointedMobs = []mob.JointedMobRef{
		{Key: "self", MobRef: "loop", OffsetPos: vmath.Vec2{X: 1, Y: 0}},
	}

	var results []ResolvedPart
	Resolve(loop, vmath.Zero, 0, &results, mapResolver(map[string]*mob.Definition{
		"loop": loop,
	}), nil)

	assert.Len(t, results, MaxRecursionDepth)
}

func TestResolveMissingRefSkipsBranch(t *testing.T) {
	arm := &mob.Definition{Name: "Arm", Sprite: "arm.png"}
	root := &mob.Definition{
		Name: "Root",
		JointedMobs: []mob.JointedMobRef{
			{Key: "ghost", MobRef: "missing"},
			{Key: "arm", MobRef: "arm", OffsetPos: vmath.Vec2{X: 2, Y: 0}},
		},
	}

	var results []ResolvedPart
	Resolve(root, vmath.Zero, 0, &results, mapResolver(map[string]*mob.Definition{
		"arm": arm,
	}), nil)

	require.Len(t, results, 1)
	assert.Equal(t, vmath.Vec2{X: 2, Y: 0}, results[0].Offset)
}

func TestResolveRandomChain(t *testing.T) {
	segment := &mob.Definition{Name: "Segment", Sprite: "segment.png"}
	root := &mob.Definition{
		Name: "Root",
		JointedMobs: []mob.JointedMobRef{
			{
				Key:    "tail",
				MobRef: "segment",
				Chain: &mob.Chain{
					Length:      4,
					PosOffset:   vmath.Vec2{X: 1, Y: 0},
					RandomChain: &mob.RandomChain{MinLength: 2, EndChance: 0.5},
				},
			},
		},
	}
	resolver := mapResolver(map[string]*mob.Definition{"segment": segment})

	rng := rand.New(rand.NewSource(1))
	var results []ResolvedPart
	Resolve(root, vmath.Zero, 0, &results, resolver, rng)
	assert.GreaterOrEqual(t, len(results), 2)
	assert.LessOrEqual(t, len(results), 4)

	// A nil rng is valid for random chains too.
	results = nil
	Resolve(root, vmath.Zero, 0, &results, resolver, nil)
	assert.GreaterOrEqual(t, len(results), 2)
	assert.LessOrEqual(t, len(results), 4)
}
