package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRef(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"mobs/ferritharax/body.mob", "ferritharax/body"},
		{"ferritharax/body", "ferritharax/body"},
		{"mobs/ferritharax/body.mobpatch", "ferritharax/body"},
		{"drone.mob", "drone"},
		{"drone", "drone"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeRef(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeRefIdempotent(t *testing.T) {
	refs := []string{
		"mobs/a/b.mob",
		"mobs/a/b.mobpatch",
		"a/b",
		"mobs/x.mob",
		"",
	}
	for _, ref := range refs {
		once := NormalizeRef(ref)
		assert.Equal(t, once, NormalizeRef(once), "input %q", ref)
	}
}

func TestNormalizeRefEquivalentForms(t *testing.T) {
	assert.Equal(t, NormalizeRef("mobs/a/b.mob"), NormalizeRef("a/b"))
	assert.Equal(t, NormalizeRef("mobs/a/b.mobpatch"), NormalizeRef("a/b"))
}
