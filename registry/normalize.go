package registry

import "strings"

const (
	// refPrefix is the directory prefix stripped from reference paths.
	refPrefix = "mobs/"
	// BaseExtension marks complete mob documents.
	BaseExtension = ".mob"
	// PatchExtension marks partial override documents.
	PatchExtension = ".mobpatch"
)

// NormalizeRef canonicalizes a mob reference to its registry key:
// the "mobs/" prefix and the ".mob"/".mobpatch" suffix are stripped
// when present. Total and idempotent.
//
//	"mobs/ferritharax/body.mob"    -> "ferritharax/body"
//	"mobs/xhitara/spitter.mobpatch"-> "xhitara/spitter"
//	"ferritharax/body"             -> "ferritharax/body"
func NormalizeRef(ref string) string {
	key := strings.TrimPrefix(ref, refPrefix)
	if trimmed := strings.TrimSuffix(key, BaseExtension); trimmed != key {
		return trimmed
	}
	return strings.TrimSuffix(key, PatchExtension)
}
