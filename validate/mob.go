package validate

import (
	"fmt"

	"github.com/openwave/mobcore/document"
)

// Mob validates a raw mob document. For a base document required fields
// must be present; for a patch document presence is optional but present
// fields are still type- and range-checked. The walk never fails — every
// finding accumulates into the result.
func Mob(tbl document.Table, isPatch bool) Result {
	var result Result

	if !isPatch {
		checkRequiredString(&result, tbl, "name")
	} else if name, ok := tbl["name"]; ok {
		checkStringValue(&result, name, "name")
	}
	if sprite, ok := tbl["sprite"]; ok {
		checkStringValue(&result, sprite, "sprite")
	} else if !isPatch {
		result.AddError("sprite", "Required field is missing")
	}

	if health, ok := tbl["health"]; ok {
		checkPositiveInteger(&result, health, "health")
	}

	// Movement.
	checkOptionalVec2(&result, tbl, "max_linear_speed")
	checkOptionalVec2(&result, tbl, "linear_acceleration")
	checkOptionalVec2(&result, tbl, "linear_deceleration")
	checkOptionalPositiveNumber(&result, tbl, "max_angular_speed")
	checkOptionalPositiveNumber(&result, tbl, "angular_acceleration")
	checkOptionalPositiveNumber(&result, tbl, "angular_deceleration")

	// Physics.
	checkOptionalNumberRange(&result, tbl, "restitution", 0.0, 1.0)
	checkOptionalNumberRange(&result, tbl, "friction", 0.0, 10.0)
	checkOptionalPositiveNumber(&result, tbl, "collider_density")

	// Combat.
	checkOptionalPositiveNumber(&result, tbl, "projectile_speed")
	checkOptionalPositiveInteger(&result, tbl, "projectile_damage")
	checkOptionalPositiveNumber(&result, tbl, "projectile_range_seconds")
	checkOptionalPositiveNumber(&result, tbl, "targeting_range")

	if colliders, ok := tbl["colliders"]; ok {
		checkColliders(&result, colliders)
	}
	if spawners, ok := tbl["projectile_spawners"]; ok {
		checkProjectileSpawners(&result, spawners)
	}
	if spawners, ok := tbl["mob_spawners"]; ok {
		checkMobSpawners(&result, spawners)
	}
	if b, ok := tbl["behavior"]; ok {
		checkBehavior(&result, b, "behavior")
	}
	if jointed, ok := tbl["jointed_mobs"]; ok {
		checkJointedMobs(&result, jointed)
	}
	if decorations, ok := tbl["decorations"]; ok {
		checkDecorations(&result, decorations)
	}

	return result
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func asArray(v any) ([]any, bool) {
	if arr, ok := v.([]any); ok {
		return arr, true
	}
	if tables, ok := v.([]document.Table); ok {
		arr := make([]any, len(tables))
		for i, t := range tables {
			arr[i] = t
		}
		return arr, true
	}
	return nil, false
}

func checkRequiredString(result *Result, tbl document.Table, field string) {
	value, ok := tbl[field]
	if !ok {
		result.AddError(field, "Required field is missing")
		return
	}
	checkStringValue(result, value, field)
}

func checkStringValue(result *Result, value any, path string) {
	s, ok := value.(string)
	if !ok {
		result.AddError(path, "Must be a string")
		return
	}
	if s == "" {
		result.AddError(path, "Cannot be empty")
	}
}

func checkPositiveInteger(result *Result, value any, path string) {
	n, ok := value.(int64)
	if !ok {
		result.AddError(path, "Must be an integer")
		return
	}
	if n <= 0 {
		result.AddError(path, "Must be a positive integer")
	}
}

func checkOptionalPositiveInteger(result *Result, tbl document.Table, field string) {
	if value, ok := tbl[field]; ok {
		checkPositiveInteger(result, value, field)
	}
}

func checkOptionalPositiveNumber(result *Result, tbl document.Table, field string) {
	value, ok := tbl[field]
	if !ok {
		return
	}
	n, isNum := asNumber(value)
	if !isNum {
		result.AddError(field, "Must be a number")
		return
	}
	if n <= 0 {
		result.AddError(field, "Must be positive")
	}
}

func checkOptionalNumberRange(result *Result, tbl document.Table, field string, min, max float64) {
	value, ok := tbl[field]
	if !ok {
		return
	}
	n, isNum := asNumber(value)
	if !isNum {
		result.AddError(field, "Must be a number")
		return
	}
	if n < min || n > max {
		result.AddError(field, fmt.Sprintf("Must be between %g and %g", min, max))
	}
}

func checkVec2Value(result *Result, value any, path string) {
	arr, ok := asArray(value)
	if !ok {
		result.AddError(path, "Must be an array [x, y]")
		return
	}
	if len(arr) != 2 {
		result.AddError(path, "Must be an array of 2 numbers [x, y]")
		return
	}
	for i, v := range arr {
		if _, isNum := asNumber(v); !isNum {
			result.AddError(path, fmt.Sprintf("Element %d must be a number", i))
		}
	}
}

func checkOptionalVec2(result *Result, tbl document.Table, field string) {
	if value, ok := tbl[field]; ok {
		checkVec2Value(result, value, field)
	}
}

func checkColliders(result *Result, value any) {
	arr, ok := asArray(value)
	if !ok {
		result.AddError("colliders", "Must be an array")
		return
	}

	for i, collider := range arr {
		path := fmt.Sprintf("colliders[%d]", i)
		tbl, ok := collider.(document.Table)
		if !ok {
			result.AddError(path, "Must be a table")
			continue
		}

		shape, ok := tbl["shape"]
		if !ok {
			result.AddError(path, "Missing required field 'shape'")
		} else {
			checkColliderShape(result, shape, path+".shape")
		}

		if pos, ok := tbl["position"]; ok {
			checkVec2Value(result, pos, path+".position")
		}
		if rot, ok := tbl["rotation"]; ok {
			if _, isNum := asNumber(rot); !isNum {
				result.AddError(path+".rotation", "Must be a number")
			}
		}
	}
}

func checkColliderShape(result *Result, value any, path string) {
	tbl, ok := value.(document.Table)
	if !ok {
		result.AddError(path, "Shape must be a table")
		return
	}
	if len(tbl) != 1 {
		result.AddError(path, "Shape must have exactly one type")
		return
	}

	for shapeType, dims := range tbl {
		switch shapeType {
		case "Rectangle":
			checkShapeDims(result, dims, path, "Rectangle requires [width, height]", true)
		case "Circle":
			r, isNum := asNumber(dims)
			if !isNum {
				result.AddError(path, "Circle requires a radius number")
			} else if r <= 0 {
				result.AddError(path, "Circle radius must be positive")
			}
		case "Capsule":
			checkShapeDims(result, dims, path, "Capsule requires [radius, half_length]", false)
		default:
			result.AddWarning(path, fmt.Sprintf("Unknown shape type '%s'", shapeType))
		}
	}
}

func checkShapeDims(result *Result, dims any, path, requirement string, positive bool) {
	arr, ok := asArray(dims)
	if !ok || len(arr) != 2 {
		result.AddError(path, requirement)
		return
	}
	if !positive {
		return
	}
	for i, dim := range arr {
		n, isNum := asNumber(dim)
		if !isNum {
			result.AddError(path, fmt.Sprintf("Dimension %d must be a number", i))
		} else if n <= 0 {
			result.AddError(path, fmt.Sprintf("Dimension %d must be positive", i))
		}
	}
}

func checkProjectileSpawners(result *Result, value any) {
	tbl, ok := value.(document.Table)
	if !ok {
		result.AddError("projectile_spawners", "Must be a table")
		return
	}
	spawners, ok := tbl["spawners"]
	if !ok {
		return
	}
	spawnersTable, ok := spawners.(document.Table)
	if !ok {
		result.AddError("projectile_spawners.spawners", "Must be a table")
		return
	}

	for key, spawner := range spawnersTable {
		path := "projectile_spawners.spawners." + key
		spawnerTable, ok := spawner.(document.Table)
		if !ok {
			result.AddError(path, "Must be a table")
			continue
		}
		checkSpawnerTimer(result, spawnerTable, path)
		for _, field := range []string{"projectile_type", "faction"} {
			if _, ok := spawnerTable[field]; !ok {
				result.AddError(path, fmt.Sprintf("Missing required field '%s'", field))
			}
		}
	}
}

func checkMobSpawners(result *Result, value any) {
	tbl, ok := value.(document.Table)
	if !ok {
		result.AddError("mob_spawners", "Must be a table")
		return
	}
	spawners, ok := tbl["spawners"]
	if !ok {
		return
	}
	spawnersTable, ok := spawners.(document.Table)
	if !ok {
		result.AddError("mob_spawners.spawners", "Must be a table")
		return
	}

	for key, spawner := range spawnersTable {
		path := "mob_spawners.spawners." + key
		spawnerTable, ok := spawner.(document.Table)
		if !ok {
			result.AddError(path, "Must be a table")
			continue
		}
		checkSpawnerTimer(result, spawnerTable, path)
		if _, ok := spawnerTable["mob_ref"]; !ok {
			result.AddError(path, "Missing required field 'mob_ref'")
		}
	}
}

func checkSpawnerTimer(result *Result, tbl document.Table, path string) {
	timer, ok := tbl["timer"]
	if !ok {
		result.AddError(path, "Missing required field 'timer'")
		return
	}
	t, isNum := asNumber(timer)
	if !isNum {
		result.AddError(path+".timer", "Must be a number")
		return
	}
	if t <= 0 {
		result.AddError(path+".timer", "Must be positive")
	}
}

var knownBehaviorTypes = map[string]bool{
	"Forever": true, "Sequence": true, "Fallback": true,
	"While": true, "IfThen": true,
	"Wait": true, "Action": true, "Trigger": true,
}

func checkBehavior(result *Result, value any, path string) {
	tbl, ok := value.(document.Table)
	if !ok {
		result.AddError(path, "Must be a table")
		return
	}

	nodeType, ok := tbl["type"]
	if !ok {
		result.AddError(path, "Missing required field 'type'")
	} else if typeStr, isStr := nodeType.(string); !isStr {
		result.AddError(path+".type", "Must be a string")
	} else if !knownBehaviorTypes[typeStr] {
		result.AddWarning(path+".type", fmt.Sprintf("Unknown behavior type '%s'", typeStr))
	}

	if children, ok := tbl["children"]; ok {
		arr, isArr := asArray(children)
		if !isArr {
			result.AddError(path+".children", "Must be an array")
		} else {
			for i, child := range arr {
				checkBehavior(result, child, fmt.Sprintf("%s.children[%d]", path, i))
			}
		}
	}
	for _, slot := range []string{"condition", "child", "then_child", "else_child"} {
		if node, ok := tbl[slot]; ok {
			checkBehavior(result, node, path+"."+slot)
		}
	}
}

func checkJointedMobs(result *Result, value any) {
	arr, ok := asArray(value)
	if !ok {
		result.AddError("jointed_mobs", "Must be an array")
		return
	}

	for i, joint := range arr {
		path := fmt.Sprintf("jointed_mobs[%d]", i)
		tbl, ok := joint.(document.Table)
		if !ok {
			result.AddError(path, "Must be a table")
			continue
		}
		for _, field := range []string{"key", "mob_ref"} {
			if _, ok := tbl[field]; !ok {
				result.AddError(path, fmt.Sprintf("Missing required field '%s'", field))
			}
		}
		if offset, ok := tbl["offset_pos"]; ok {
			checkVec2Value(result, offset, path+".offset_pos")
		}
		if chain, ok := tbl["chain"]; ok {
			checkChain(result, chain, path+".chain")
		}
	}
}

func checkChain(result *Result, value any, path string) {
	tbl, ok := value.(document.Table)
	if !ok {
		result.AddError(path, "Must be a table")
		return
	}
	length, ok := tbl["length"]
	if !ok {
		result.AddError(path, "Missing required field 'length'")
	} else {
		checkPositiveInteger(result, length, path+".length")
	}
	if offset, ok := tbl["pos_offset"]; ok {
		checkVec2Value(result, offset, path+".pos_offset")
	}
	if offset, ok := tbl["anchor_offset"]; ok {
		checkVec2Value(result, offset, path+".anchor_offset")
	}
}

func checkDecorations(result *Result, value any) {
	arr, ok := asArray(value)
	if !ok {
		result.AddError("decorations", "Must be an array")
		return
	}

	for i, decoration := range arr {
		path := fmt.Sprintf("decorations[%d]", i)
		decArr, ok := decoration.([]any)
		if !ok {
			result.AddError(path, "Must be an array [sprite_key, [x, y]]")
			continue
		}
		if len(decArr) != 2 {
			result.AddError(path, "Must be [sprite_key, [x, y]]")
			continue
		}
		if _, isStr := decArr[0].(string); !isStr {
			result.AddError(path, "First element must be a string (sprite key)")
		}
		checkVec2Value(result, decArr[1], path+"[1]")
	}
}
