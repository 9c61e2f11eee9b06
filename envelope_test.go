package dossier

import (
	"errors"
	"testing"
)

type wrapped struct{}

func (wrapped) Class() string          { return "Wrapped" }
func (wrapped) ToDict() map[string]any { return map[string]any{"k": "v"} }

func TestWrap(t *testing.T) {
	env := Wrap(wrapped{})
	if env.Class != "Wrapped" || env.Data["k"] != "v" {
		t.Errorf("Wrap() = %+v", env)
	}

	m := env.Map()
	if m["class"] != "Wrapped" {
		t.Errorf("Map()[class] = %v", m["class"])
	}
	if data, ok := m["data"].(map[string]any); !ok || data["k"] != "v" {
		t.Errorf("Map()[data] = %v", m["data"])
	}
}

func TestParseEnvelope(t *testing.T) {
	env, err := ParseEnvelope(map[string]any{
		"class": "Foo",
		"data":  map[string]any{"x": 1},
	})
	if err != nil {
		t.Fatalf("ParseEnvelope() error: %v", err)
	}
	if env.Class != "Foo" || env.Data["x"] != 1 {
		t.Errorf("ParseEnvelope() = %+v", env)
	}
}

func TestParseEnvelope_DataDefaults(t *testing.T) {
	for name, m := range map[string]map[string]any{
		"absent": {"class": "Foo"},
		"null":   {"class": "Foo", "data": nil},
	} {
		t.Run(name, func(t *testing.T) {
			env, err := ParseEnvelope(m)
			if err != nil {
				t.Fatalf("ParseEnvelope() error: %v", err)
			}
			if env.Data == nil || len(env.Data) != 0 {
				t.Errorf("Data = %v, want empty map", env.Data)
			}
		})
	}
}

func TestParseEnvelope_AnyKeyedData(t *testing.T) {
	env, err := ParseEnvelope(map[string]any{
		"class": "Foo",
		"data":  map[any]any{"x": 1},
	})
	if err != nil {
		t.Fatalf("ParseEnvelope() error: %v", err)
	}
	if env.Data["x"] != 1 {
		t.Errorf("Data = %v", env.Data)
	}
}

func TestParseEnvelope_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		in    map[string]any
		field string
	}{
		{"nil map", nil, "class"},
		{"missing class", map[string]any{"data": map[string]any{}}, "class"},
		{"class not string", map[string]any{"class": 1}, "class"},
		{"empty class", map[string]any{"class": ""}, "class"},
		{"data not map", map[string]any{"class": "Foo", "data": "x"}, "data"},
		{"data non-string keys", map[string]any{"class": "Foo", "data": map[any]any{1: "x"}}, "data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEnvelope(tt.in)
			if !errors.Is(err, ErrInvalidEnvelope) {
				t.Fatalf("ParseEnvelope() error = %v, want ErrInvalidEnvelope", err)
			}
			var ee *EnvelopeError
			if !errors.As(err, &ee) || ee.Field != tt.field {
				t.Errorf("EnvelopeError = %+v, want field %q", ee, tt.field)
			}
		})
	}
}
