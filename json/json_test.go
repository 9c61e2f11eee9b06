package json

import (
	"testing"

	"github.com/zoobzio/dossier"
)

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/json" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/json")
	}
}

func TestEnvelopeRoundTrip(t *testing.T) {
	c := New()

	original := dossier.Envelope{
		Class: "CategoricalColumn",
		Data: map[string]any{
			"name":       "state",
			"categories": map[string]any{"CA": int64(3), "WA": int64(1)},
			"nested":     dossier.Envelope{Class: "Inner", Data: map[string]any{"k": "v"}}.Map(),
		},
	}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var raw map[string]any
	if err := c.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	env, err := dossier.ParseEnvelope(raw)
	if err != nil {
		t.Fatalf("ParseEnvelope() error: %v", err)
	}
	if env.Class != original.Class {
		t.Errorf("Class = %q, want %q", env.Class, original.Class)
	}

	categories, err := dossier.IntMap(env.Data, "categories")
	if err != nil {
		t.Fatalf("IntMap(categories) error: %v", err)
	}
	if categories["CA"] != 3 || categories["WA"] != 1 {
		t.Errorf("categories = %v", categories)
	}

	nested, err := dossier.Map(env.Data, "nested")
	if err != nil {
		t.Fatalf("Map(nested) error: %v", err)
	}
	inner, err := dossier.ParseEnvelope(nested)
	if err != nil {
		t.Fatalf("ParseEnvelope(nested) error: %v", err)
	}
	if inner.Class != "Inner" || inner.Data["k"] != "v" {
		t.Errorf("nested envelope = %+v", inner)
	}
}

var invalidInput = []byte(`{"class": `)

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var v map[string]any
	if err := c.Unmarshal(invalidInput, &v); err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}
