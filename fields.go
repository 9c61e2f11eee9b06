package dossier

import (
	"encoding/json"
	"math"
)

// Payload accessors for loaders.
//
// A payload decoded by the json codec carries numbers as float64, the yaml
// codec produces int, and msgpack picks the narrowest integer type that
// fits. The helpers below accept any of these shapes so a loader works the
// same behind every codec.

// String returns the string stored under key.
func String(data map[string]any, key string) (string, error) {
	v, ok := data[key]
	if !ok {
		return "", missingField(key)
	}
	s, ok := v.(string)
	if !ok {
		return "", wrongType(key, "string", v)
	}
	return s, nil
}

// OptionalString returns the string stored under key, or def when the key
// is absent or null.
func OptionalString(data map[string]any, key, def string) (string, error) {
	if v, ok := data[key]; !ok || v == nil {
		return def, nil
	}
	return String(data, key)
}

// Int returns the integer stored under key.
// Floats are accepted only when they carry no fractional part.
func Int(data map[string]any, key string) (int64, error) {
	v, ok := data[key]
	if !ok {
		return 0, missingField(key)
	}
	n, ok := toInt(v)
	if !ok {
		return 0, wrongType(key, "integer", v)
	}
	return n, nil
}

// OptionalInt returns the integer stored under key, or def when the key is
// absent or null.
func OptionalInt(data map[string]any, key string, def int64) (int64, error) {
	if v, ok := data[key]; !ok || v == nil {
		return def, nil
	}
	return Int(data, key)
}

// Float returns the number stored under key.
func Float(data map[string]any, key string) (float64, error) {
	v, ok := data[key]
	if !ok {
		return 0, missingField(key)
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, wrongType(key, "number", v)
	}
	return f, nil
}

// OptionalFloat returns the number stored under key, or def when the key is
// absent or null.
func OptionalFloat(data map[string]any, key string, def float64) (float64, error) {
	if v, ok := data[key]; !ok || v == nil {
		return def, nil
	}
	return Float(data, key)
}

// Bool returns the boolean stored under key.
func Bool(data map[string]any, key string) (bool, error) {
	v, ok := data[key]
	if !ok {
		return false, missingField(key)
	}
	b, ok := v.(bool)
	if !ok {
		return false, wrongType(key, "boolean", v)
	}
	return b, nil
}

// Map returns the nested object stored under key.
func Map(data map[string]any, key string) (map[string]any, error) {
	v, ok := data[key]
	if !ok {
		return nil, missingField(key)
	}
	if v == nil {
		return nil, wrongType(key, "object", v)
	}
	m, ok := asMap(v)
	if !ok {
		return nil, wrongType(key, "object", v)
	}
	return m, nil
}

// Slice returns the array stored under key.
func Slice(data map[string]any, key string) ([]any, error) {
	v, ok := data[key]
	if !ok {
		return nil, missingField(key)
	}
	s, ok := v.([]any)
	if !ok {
		return nil, wrongType(key, "array", v)
	}
	return s, nil
}

// StringSlice returns the array of strings stored under key.
func StringSlice(data map[string]any, key string) ([]string, error) {
	items, err := Slice(data, key)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, wrongType(key, "array of strings", item)
		}
		out[i] = s
	}
	return out, nil
}

// IntMap returns the object of integers stored under key.
func IntMap(data map[string]any, key string) (map[string]int64, error) {
	m, err := Map(data, key)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(m))
	for k, v := range m {
		n, ok := toInt(v)
		if !ok {
			return nil, wrongType(key+"."+k, "integer", v)
		}
		out[k] = n
	}
	return out, nil
}

// FloatMap returns the object of numbers stored under key.
func FloatMap(data map[string]any, key string) (map[string]float64, error) {
	m, err := Map(data, key)
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		f, ok := toFloat(v)
		if !ok {
			return nil, wrongType(key+"."+k, "number", v)
		}
		out[k] = f
	}
	return out, nil
}

// FloatSlice returns the array of numbers stored under key.
func FloatSlice(data map[string]any, key string) ([]float64, error) {
	items, err := Slice(data, key)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(items))
	for i, item := range items {
		f, ok := toFloat(item)
		if !ok {
			return nil, wrongType(key, "array of numbers", item)
		}
		out[i] = f
	}
	return out, nil
}

func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), uint64(n) <= math.MaxInt64
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), n <= math.MaxInt64
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int64, bool) {
	if f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		i, ok := toInt(v)
		return float64(i), ok
	}
}
