package document

import (
	"fmt"
	"reflect"
	"strings"
)

// Unmarshaler lets a type take over its own decoding from a parsed
// document value. Used for shapes that do not map onto structs directly:
// [x, y] vectors, single-key shape tables, and tagged behavior nodes.
type Unmarshaler interface {
	UnmarshalDocument(data any) error
}

// Decode maps a generic parsed value onto the value pointed to by v
// using reflection. Struct fields are matched by their `toml` tag.
//
// Decoding is strict and default-preserving: a document key with no
// matching struct field is an error, while a struct field with no
// matching document key keeps whatever value it already holds — callers
// populate defaults before decoding.
func Decode(data any, v any) error {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return fmt.Errorf("decode target must be a non-nil pointer")
	}
	return decodeValue(data, val.Elem())
}

func decodeValue(data any, val reflect.Value) error {
	if data == nil {
		return nil
	}

	// Custom decoding hook takes precedence over reflection.
	if val.CanAddr() {
		if u, ok := val.Addr().Interface().(Unmarshaler); ok {
			return u.UnmarshalDocument(data)
		}
	}

	switch val.Kind() {
	case reflect.Ptr:
		elem := reflect.New(val.Type().Elem())
		if err := decodeValue(data, elem.Elem()); err != nil {
			return err
		}
		val.Set(elem)

	case reflect.Struct:
		tbl, ok := data.(Table)
		if !ok {
			return fmt.Errorf("expected table, got %T", data)
		}
		return decodeStruct(tbl, val)

	case reflect.Slice:
		items, ok := data.([]any)
		if !ok {
			// Arrays of tables parse as []map[string]any.
			tables, tok := data.([]Table)
			if !tok {
				return fmt.Errorf("expected array, got %T", data)
			}
			items = make([]any, len(tables))
			for i, t := range tables {
				items[i] = t
			}
		}
		out := reflect.MakeSlice(val.Type(), len(items), len(items))
		for i := range items {
			if err := decodeValue(items[i], out.Index(i)); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		val.Set(out)

	case reflect.Map:
		if val.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("only string-keyed maps are supported")
		}
		tbl, ok := data.(Table)
		if !ok {
			return fmt.Errorf("expected table, got %T", data)
		}
		out := reflect.MakeMap(val.Type())
		elemType := val.Type().Elem()
		for key, item := range tbl {
			elem := reflect.New(elemType).Elem()
			if err := decodeValue(item, elem); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			out.SetMapIndex(reflect.ValueOf(key), elem)
		}
		val.Set(out)

	case reflect.Interface:
		val.Set(reflect.ValueOf(data))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := toInt(data)
		if !ok {
			return fmt.Errorf("expected integer, got %T", data)
		}
		val.SetInt(n)

	case reflect.Float32, reflect.Float64:
		f, ok := toFloat(data)
		if !ok {
			return fmt.Errorf("expected number, got %T", data)
		}
		val.SetFloat(f)

	case reflect.String:
		s, ok := data.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", data)
		}
		val.SetString(s)

	case reflect.Bool:
		b, ok := data.(bool)
		if !ok {
			return fmt.Errorf("expected boolean, got %T", data)
		}
		val.SetBool(b)

	default:
		return fmt.Errorf("unsupported target kind %s", val.Kind())
	}

	return nil
}

func decodeStruct(data Table, val reflect.Value) error {
	typ := val.Type()
	fields := make(map[string]int, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		tag := typ.Field(i).Tag.Get("toml")
		if tag == "" || tag == "-" {
			continue
		}
		key := strings.Split(tag, ",")[0]
		fields[key] = i
	}

	for key, item := range data {
		idx, known := fields[key]
		if !known {
			return fmt.Errorf("unknown field %q", key)
		}
		if err := decodeValue(item, val.Field(idx)); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		// TOML distinguishes 5 from 5.0; accept whole floats for
		// integer fields the way the merged map may carry them.
		if n == float64(int64(n)) {
			return int64(n), true
		}
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}
