package vmath

import "fmt"

// Vec2 is a 2D vector used for offsets, anchors, and positions.
// Documents encode it as a two-element array [x, y].
type Vec2 struct {
	X float64
	Y float64
}

// Zero is the origin vector.
var Zero = Vec2{}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// String returns the document form "[x, y]".
func (v Vec2) String() string {
	return fmt.Sprintf("[%g, %g]", v.X, v.Y)
}

// UnmarshalDocument decodes a [x, y] array from a parsed document value.
func (v *Vec2) UnmarshalDocument(data any) error {
	arr, ok := data.([]any)
	if !ok {
		return fmt.Errorf("expected [x, y] array, got %T", data)
	}
	if len(arr) != 2 {
		return fmt.Errorf("expected 2 elements, got %d", len(arr))
	}
	x, ok := toFloat(arr[0])
	if !ok {
		return fmt.Errorf("element 0 is not a number: %T", arr[0])
	}
	y, ok := toFloat(arr[1])
	if !ok {
		return fmt.Errorf("element 1 is not a number: %T", arr[1])
	}
	v.X, v.Y = x, y
	return nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}
