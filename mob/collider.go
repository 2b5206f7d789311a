package mob

import (
	"fmt"

	"github.com/openwave/mobcore/document"
	"github.com/openwave/mobcore/vmath"
)

// ShapeKind is the collider shape variant.
type ShapeKind string

const (
	ShapeRectangle ShapeKind = "Rectangle"
	ShapeCircle    ShapeKind = "Circle"
	ShapeCapsule   ShapeKind = "Capsule"
)

// ColliderShape is one collision shape. Documents encode it as a
// single-key table whose key names the variant:
//
//	shape = { Rectangle = [width, height] }
//	shape = { Circle = radius }
//	shape = { Capsule = [radius, half_length] }
type ColliderShape struct {
	Kind ShapeKind

	// Rectangle.
	Width  float64
	Height float64

	// Circle and Capsule.
	Radius float64

	// Capsule.
	HalfLength float64
}

// UnmarshalDocument decodes the single-key shape table.
func (s *ColliderShape) UnmarshalDocument(data any) error {
	tbl, ok := data.(document.Table)
	if !ok {
		return fmt.Errorf("shape must be a table, got %T", data)
	}
	if len(tbl) != 1 {
		return fmt.Errorf("shape must have exactly one type, got %d keys", len(tbl))
	}

	for kind, dims := range tbl {
		switch ShapeKind(kind) {
		case ShapeRectangle:
			w, h, err := twoNumbers(dims)
			if err != nil {
				return fmt.Errorf("Rectangle requires [width, height]: %w", err)
			}
			s.Kind = ShapeRectangle
			s.Width, s.Height = w, h
		case ShapeCircle:
			r, ok := asFloat(dims)
			if !ok {
				return fmt.Errorf("Circle requires a radius number, got %T", dims)
			}
			s.Kind = ShapeCircle
			s.Radius = r
		case ShapeCapsule:
			r, hl, err := twoNumbers(dims)
			if err != nil {
				return fmt.Errorf("Capsule requires [radius, half_length]: %w", err)
			}
			s.Kind = ShapeCapsule
			s.Radius, s.HalfLength = r, hl
		default:
			return fmt.Errorf("unknown shape type %q", kind)
		}
	}
	return nil
}

func twoNumbers(data any) (float64, float64, error) {
	arr, ok := data.([]any)
	if !ok {
		return 0, 0, fmt.Errorf("expected array, got %T", data)
	}
	if len(arr) != 2 {
		return 0, 0, fmt.Errorf("expected 2 elements, got %d", len(arr))
	}
	a, ok := asFloat(arr[0])
	if !ok {
		return 0, 0, fmt.Errorf("element 0 is not a number")
	}
	b, ok := asFloat(arr[1])
	if !ok {
		return 0, 0, fmt.Errorf("element 1 is not a number")
	}
	return a, b, nil
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// Collider pairs a shape with its local placement on the mob.
type Collider struct {
	Shape    ColliderShape `toml:"shape"`
	Position vmath.Vec2    `toml:"position"`
	Rotation float64       `toml:"rotation"`
}

// PhysicsLayer names a collision layer for membership/filter lists.
type PhysicsLayer string

const (
	LayerAllyMob         PhysicsLayer = "AllyMob"
	LayerAllyProjectile  PhysicsLayer = "AllyProjectile"
	LayerEnemyMob        PhysicsLayer = "EnemyMob"
	LayerEnemyProjectile PhysicsLayer = "EnemyProjectile"
	LayerEnemyTentacle   PhysicsLayer = "EnemyTentacle"
	LayerPlayer          PhysicsLayer = "Player"
)
