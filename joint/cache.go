package joint

import (
	"math/rand"

	"github.com/openwave/mobcore/registry"
	"github.com/openwave/mobcore/vmath"
)

// ParentRef identifies a mob that attaches another mob through one of
// its joint slots.
type ParentRef struct {
	// Key is the parent mob's registry key.
	Key string
	// Name is the parent mob's display name.
	Name string
	// JointedKey is the joint slot the child occupies on the parent.
	JointedKey string
}

// Cache holds the resolved part list for one mob and rebuilds it lazily
// when the mob or its joint graph changes. Editors invalidate on every
// content edit; the resolve only reruns on the next read.
type Cache struct {
	parts        []ResolvedPart
	parents      []ParentRef
	currentRef   string
	needsRebuild bool
}

// NewCache returns an empty cache that rebuilds on first use.
func NewCache() *Cache {
	return &Cache{needsRebuild: true}
}

// Invalidate marks the cached parts stale without discarding them.
func (c *Cache) Invalidate() {
	c.needsRebuild = true
}

// NeedsRebuild reports whether the cache is stale for ref, either
// because it was invalidated or because it was built for another mob.
func (c *Cache) NeedsRebuild(ref string) bool {
	return c.needsRebuild || c.currentRef != registry.NormalizeRef(ref)
}

// Parts returns the cached resolved parts, rebuilding when stale.
func (c *Cache) Parts(ref string, reg *registry.Registry, rng *rand.Rand) []ResolvedPart {
	if c.NeedsRebuild(ref) {
		c.Rebuild(ref, reg, rng)
	}
	return c.parts
}

// Parents returns the cached parent references, rebuilding when stale.
func (c *Cache) Parents(ref string, reg *registry.Registry, rng *rand.Rand) []ParentRef {
	if c.NeedsRebuild(ref) {
		c.Rebuild(ref, reg, rng)
	}
	return c.parents
}

// Rebuild resolves ref's joint hierarchy and parent references from
// reg. A missing mob clears the cache rather than erroring.
func (c *Cache) Rebuild(ref string, reg *registry.Registry, rng *rand.Rand) {
	c.parts = nil
	c.parents = nil
	c.currentRef = registry.NormalizeRef(ref)
	c.needsRebuild = false

	def, ok := reg.GetMob(ref)
	if !ok {
		return
	}
	Resolve(def, vmath.Zero, 0, &c.parts, reg.GetMob, rng)
	c.parents = FindParents(ref, reg)
}

// FindParents scans every mob in reg for joint slots that reference
// ref, returning one ParentRef per referencing slot.
func FindParents(ref string, reg *registry.Registry) []ParentRef {
	target := registry.NormalizeRef(ref)
	var parents []ParentRef
	for _, key := range reg.Keys() {
		def, ok := reg.GetMob(key)
		if !ok {
			continue
		}
		for _, joint := range def.JointedMobs {
			if registry.NormalizeRef(joint.MobRef) == target {
				parents = append(parents, ParentRef{
					Key:        key,
					Name:       def.Name,
					JointedKey: joint.Key,
				})
			}
		}
	}
	return parents
}
