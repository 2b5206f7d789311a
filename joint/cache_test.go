package joint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openwave/mobcore/document"
	"github.com/openwave/mobcore/registry"
)

func buildTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.Build(map[string]document.Table{
		"boss.mob": {
			"name":   "Boss",
			"sprite": "boss.png",
			"jointed_mobs": []document.Table{
				{
					"key":        "left_arm",
					"mob_ref":    "mobs/arm.mob",
					"offset_pos": []any{-2.0, 0.0},
				},
				{
					"key":        "right_arm",
					"mob_ref":    "arm",
					"offset_pos": []any{2.0, 0.0},
				},
			},
		},
		"arm.mob": {
			"name":      "Arm",
			"sprite":    "arm.png",
			"spawnable": false,
		},
	}, nil, nil)
	require.Empty(t, reg.Failures())
	return reg
}

func TestCacheRebuild(t *testing.T) {
	reg := buildTestRegistry(t)
	cache := NewCache()

	require.True(t, cache.NeedsRebuild("boss"))
	parts := cache.Parts("boss", reg, nil)
	require.Len(t, parts, 2)
	assert.False(t, cache.NeedsRebuild("boss"))

	// A different mob is stale even without invalidation.
	assert.True(t, cache.NeedsRebuild("arm"))

	cache.Invalidate()
	assert.True(t, cache.NeedsRebuild("boss"))
}

func TestCacheMissingMob(t *testing.T) {
	reg := buildTestRegistry(t)
	cache := NewCache()

	assert.Empty(t, cache.Parts("phantom", reg, nil))
	assert.False(t, cache.NeedsRebuild("phantom"))
}

func TestFindParents(t *testing.T) {
	reg := buildTestRegistry(t)

	// Both joint slots reference the arm, under different ref forms.
	parents := FindParents("mobs/arm.mob", reg)
	require.Len(t, parents, 2)
	for _, parent := range parents {
		assert.Equal(t, "boss", parent.Key)
		assert.Equal(t, "Boss", parent.Name)
	}

	assert.Empty(t, FindParents("boss", reg))
}
