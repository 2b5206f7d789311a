package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeScalarOverride(t *testing.T) {
	base := Table{"health": int64(50), "name": "Drone"}
	Merge(base, Table{"health": int64(200)})

	assert.Equal(t, int64(200), base["health"])
	assert.Equal(t, "Drone", base["name"])
}

func TestMergeNestedPreservation(t *testing.T) {
	base := Table{
		"spawner": Table{"timer": 1.0, "count": int64(3)},
	}
	Merge(base, Table{
		"spawner": Table{"timer": 0.5},
	})

	spawner, ok := base["spawner"].(Table)
	require.True(t, ok)
	assert.Equal(t, 0.5, spawner["timer"])
	assert.Equal(t, int64(3), spawner["count"])
}

func TestMergeArrayReplacesWholesale(t *testing.T) {
	base := Table{"layers": []any{"a", "b", "c"}}

	Merge(base, Table{"layers": []any{"x"}})
	assert.Equal(t, []any{"x"}, base["layers"])

	Merge(base, Table{"layers": []any{}})
	assert.Equal(t, []any{}, base["layers"])
}

func TestMergeTypeMismatchReplaces(t *testing.T) {
	base := Table{"collider": Table{"width": 10.0}}
	Merge(base, Table{"collider": "none"})

	assert.Equal(t, "none", base["collider"])
}

func TestMergeAddsNewKeys(t *testing.T) {
	base := Table{"name": "Drone"}
	Merge(base, Table{"extra": Table{"deep": int64(1)}})

	extra, ok := base["extra"].(Table)
	require.True(t, ok)
	assert.Equal(t, int64(1), extra["deep"])
}

func TestCloneIsolatesMutation(t *testing.T) {
	base := Table{
		"nested": Table{"value": int64(1)},
		"list":   []any{int64(1), int64(2)},
	}
	clone := Clone(base)

	clone["nested"].(Table)["value"] = int64(99)
	clone["list"].([]any)[0] = int64(99)

	assert.Equal(t, int64(1), base["nested"].(Table)["value"])
	assert.Equal(t, int64(1), base["list"].([]any)[0])
}
