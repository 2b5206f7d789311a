// Package registry builds the queryable collection of resolved mob
// definitions and pre-built behavior trees from raw documents, and
// canonicalizes the reference strings that key it.
package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/openwave/mobcore/behavior"
	"github.com/openwave/mobcore/document"
	"github.com/openwave/mobcore/logger"
	"github.com/openwave/mobcore/mob"
)

// BuildError records one mob that failed to deserialize during Build.
type BuildError struct {
	Key string
	Err error
}

func (e BuildError) Error() string {
	return fmt.Sprintf("%s: %v", e.Key, e.Err)
}

// Registry resolves mob references to merged definitions and pre-built
// behavior trees. It is built wholesale per content reload and must be
// treated as an immutable snapshot afterwards.
type Registry struct {
	mobs      map[string]*mob.Definition
	behaviors map[string]*behavior.Tree
	failures  []BuildError
}

// Build assembles a registry from raw documents keyed by source path.
//
// Processing order:
//  1. Collect base documents under their normalized keys.
//  2. Overlay extended documents; an existing key is replaced.
//  3. Merge each patch into a clone of its pre-patch base/extended
//     value. Patches never compound with each other, and a patch with
//     no base is skipped with a warning.
//  4. Deserialize every merged document. Failures are isolated per mob
//     and reported together afterwards.
//  5. Pre-build behavior trees for every mob that declares one.
func Build(baseDocs, extendedDocs, patchDocs map[string]document.Table) *Registry {
	raw := make(map[string]document.Table, len(baseDocs)+len(extendedDocs))

	for path, tbl := range baseDocs {
		key := NormalizeRef(path)
		if key == "" {
			logger.Log.Warnf("skipping base mob with unusable path %q", path)
			continue
		}
		raw[key] = tbl
	}
	logger.Log.Debugf("collected %d base mob documents", len(raw))

	for path, tbl := range extendedDocs {
		key := NormalizeRef(path)
		if key == "" {
			logger.Log.Warnf("skipping extended mob with unusable path %q", path)
			continue
		}
		if _, exists := raw[key]; exists {
			logger.Log.Infof("extended mob %q overrides base mob", key)
		}
		raw[key] = tbl
	}

	// Patch results live apart from raw so every patch merge starts
	// from the pristine base/extended value.
	patched := make(map[string]document.Table)
	for path, tbl := range patchDocs {
		key := NormalizeRef(path)
		base, exists := raw[key]
		if !exists {
			logger.Log.Warnf("no base mob found for patch %q, skipping (use %s for new mobs)", key, BaseExtension)
			continue
		}
		merged := document.Clone(base)
		document.Merge(merged, tbl)
		patched[key] = merged
	}

	r := &Registry{
		mobs:      make(map[string]*mob.Definition, len(raw)),
		behaviors: make(map[string]*behavior.Tree),
	}

	for key, tbl := range raw {
		if withPatch, ok := patched[key]; ok {
			tbl = withPatch
		}
		def, err := mob.FromDocument(tbl)
		if err != nil {
			r.failures = append(r.failures, BuildError{Key: key, Err: err})
			continue
		}
		r.mobs[key] = def
		if def.Behavior != nil {
			r.behaviors[key] = behavior.Build(def.Behavior)
		}
	}

	if len(r.failures) > 0 {
		// One batch report instead of a line per failure.
		msgs := make([]string, len(r.failures))
		for i, f := range r.failures {
			msgs[i] = f.Error()
		}
		sort.Strings(msgs)
		logger.Log.Warnf("%d mob(s) failed to deserialize:\n  %s",
			len(r.failures), strings.Join(msgs, "\n  "))
	}
	logger.Log.Infof("built mob registry: %d mobs, %d behavior trees, %d failures",
		len(r.mobs), len(r.behaviors), len(r.failures))

	return r
}

// GetMob returns the definition for a raw or normalized reference.
func (r *Registry) GetMob(ref string) (*mob.Definition, bool) {
	def, ok := r.mobs[NormalizeRef(ref)]
	return def, ok
}

// GetBehavior returns the pre-built behavior tree for a reference, if
// the mob exists and declares one.
func (r *Registry) GetBehavior(ref string) (*behavior.Tree, bool) {
	tree, ok := r.behaviors[NormalizeRef(ref)]
	return tree, ok
}

// Contains reports whether a mob exists for the reference.
func (r *Registry) Contains(ref string) bool {
	_, ok := r.mobs[NormalizeRef(ref)]
	return ok
}

// Keys returns all registered mob keys, sorted.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.mobs))
	for key := range r.mobs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// SpawnableMob pairs a registry key with its definition.
type SpawnableMob struct {
	Key string
	Def *mob.Definition
}

// SpawnableMobs returns the mobs that may be spawned directly (jointed
// parts opt out via spawnable = false), sorted by key.
func (r *Registry) SpawnableMobs() []SpawnableMob {
	mobs := make([]SpawnableMob, 0, len(r.mobs))
	for key, def := range r.mobs {
		if def.Spawnable {
			mobs = append(mobs, SpawnableMob{Key: key, Def: def})
		}
	}
	sort.Slice(mobs, func(i, j int) bool { return mobs[i].Key < mobs[j].Key })
	return mobs
}

// Failures returns the per-mob deserialization failures from Build.
func (r *Registry) Failures() []BuildError {
	return r.failures
}

// Len returns the number of registered mobs.
func (r *Registry) Len() int {
	return len(r.mobs)
}

// IsEmpty reports whether no mobs are registered.
func (r *Registry) IsEmpty() bool {
	return len(r.mobs) == 0
}
