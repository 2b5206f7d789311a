package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openwave/mobcore/document"
)

func baseDoc(name string) document.Table {
	return document.Table{
		"name":   name,
		"sprite": "mobs/" + name + ".png",
	}
}

func TestBuildLookup(t *testing.T) {
	reg := Build(map[string]document.Table{
		"drone.mob": baseDoc("Drone"),
	}, nil, nil)

	require.Equal(t, 1, reg.Len())

	def, ok := reg.GetMob("drone")
	require.True(t, ok)
	assert.Equal(t, "Drone", def.Name)

	// Raw and normalized forms resolve to the same entry.
	def2, ok := reg.GetMob("mobs/drone.mob")
	require.True(t, ok)
	assert.Same(t, def, def2)

	assert.True(t, reg.Contains("drone"))
	assert.False(t, reg.Contains("missing"))
}

func TestBuildPerEntityIsolation(t *testing.T) {
	reg := Build(map[string]document.Table{
		"good.mob": baseDoc("Good"),
		"bad.mob": {
			"name":      "Bad",
			"sprite":    "bad.png",
			"not_a_key": true,
		},
	}, nil, nil)

	assert.Equal(t, 1, reg.Len())
	assert.True(t, reg.Contains("good"))
	assert.False(t, reg.Contains("bad"))

	require.Len(t, reg.Failures(), 1)
	assert.Equal(t, "bad", reg.Failures()[0].Key)
}

func TestBuildPatchWithoutBase(t *testing.T) {
	reg := Build(nil, nil, map[string]document.Table{
		"ghost.mobpatch": {"health": int64(10)},
	})

	assert.Equal(t, 0, reg.Len())
	assert.Empty(t, reg.Failures())
}

func TestBuildPatchMergesIntoBase(t *testing.T) {
	base := baseDoc("Drone")
	base["health"] = int64(50)

	reg := Build(
		map[string]document.Table{"drone.mob": base},
		nil,
		map[string]document.Table{"drone.mobpatch": {"health": int64(200)}},
	)

	def, ok := reg.GetMob("drone")
	require.True(t, ok)
	assert.Equal(t, 200, def.Health)
	assert.Equal(t, "Drone", def.Name)
}

func TestBuildPatchDoesNotMutateBaseDoc(t *testing.T) {
	base := baseDoc("Drone")
	base["health"] = int64(50)
	baseDocs := map[string]document.Table{"drone.mob": base}

	Build(baseDocs, nil, map[string]document.Table{
		"drone.mobpatch": {"health": int64(200)},
	})

	assert.Equal(t, int64(50), base["health"])
}

func TestBuildExtendedOverridesBase(t *testing.T) {
	reg := Build(
		map[string]document.Table{"drone.mob": baseDoc("Original")},
		map[string]document.Table{"drone.mob": baseDoc("Extended")},
		nil,
	)

	def, ok := reg.GetMob("drone")
	require.True(t, ok)
	assert.Equal(t, "Extended", def.Name)
}

func TestBuildBehaviorTree(t *testing.T) {
	doc := baseDoc("Drone")
	doc["behavior"] = document.Table{
		"type": "Forever",
		"children": []document.Table{
			{
				"type": "Action",
				"name": "Dive",
				"behaviors": []document.Table{
					{"action": "MoveDown"},
				},
			},
		},
	}

	reg := Build(map[string]document.Table{"drone.mob": doc}, nil, nil)

	tree, ok := reg.GetBehavior("drone")
	require.True(t, ok)
	require.NotNil(t, tree.Root)

	_, ok = reg.GetBehavior("missing")
	assert.False(t, ok)
}

func TestSpawnableMobs(t *testing.T) {
	part := baseDoc("Part")
	part["spawnable"] = false

	reg := Build(map[string]document.Table{
		"boss.mob": baseDoc("Boss"),
		"part.mob": part,
	}, nil, nil)

	spawnable := reg.SpawnableMobs()
	require.Len(t, spawnable, 1)
	assert.Equal(t, "boss", spawnable[0].Key)
	assert.Equal(t, "Boss", spawnable[0].Def.Name)
	assert.Equal(t, []string{"boss", "part"}, reg.Keys())
}
