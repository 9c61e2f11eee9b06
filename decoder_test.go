package dossier_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/zoobzio/dossier"
	"github.com/zoobzio/dossier/json"
	dossiertest "github.com/zoobzio/dossier/testing"
)

func TestDecoder_ResolveClass(t *testing.T) {
	dec := dossier.NewDecoder(dossiertest.FooRegistry(t))

	loader, err := dec.ResolveClass("Foo")
	if err != nil {
		t.Fatalf("ResolveClass(Foo) error: %v", err)
	}
	p, err := loader(context.Background(), map[string]any{"x": 3})
	if err != nil {
		t.Fatalf("loader error: %v", err)
	}
	if p.(*dossiertest.Foo).X != 3 {
		t.Errorf("x = %d, want 3", p.(*dossiertest.Foo).X)
	}

	_, err = dec.ResolveClass("Bar")
	if !errors.Is(err, dossier.ErrUnknownClass) {
		t.Fatalf("ResolveClass(Bar) error = %v, want ErrUnknownClass", err)
	}
	if !strings.Contains(err.Error(), `"Bar"`) {
		t.Errorf("error %q should name the class", err.Error())
	}
	if !strings.Contains(err.Error(), "profiler") {
		t.Errorf("error %q should name the family", err.Error())
	}
}

func TestDecoder_ResolveClass_Repeatable(t *testing.T) {
	reg := dossiertest.FooRegistry(t)
	dec := dossier.NewDecoder(reg)

	for i := 0; i < 3; i++ {
		if _, err := dec.ResolveClass("Foo"); err != nil {
			t.Fatalf("ResolveClass #%d error: %v", i, err)
		}
		if _, err := dec.ResolveClass("Missing"); err == nil {
			t.Fatalf("ResolveClass(Missing) #%d should fail", i)
		}
	}

	if reg.Len() != 1 {
		t.Errorf("Len() = %d, lookups must not mutate the registry", reg.Len())
	}
}

func TestDecoder_UnknownClassError_Family(t *testing.T) {
	reg := dossier.NewRegistry[dossier.Compiler](dossier.FamilyCompiler)
	dec := dossier.NewDecoder(reg)

	_, err := dec.ResolveClass("Nope")

	var uce *dossier.UnknownClassError
	if !errors.As(err, &uce) {
		t.Fatalf("error = %T, want *UnknownClassError", err)
	}
	if uce.Family != dossier.FamilyCompiler || uce.Class != "Nope" {
		t.Errorf("UnknownClassError = %+v", uce)
	}
	if want := `invalid compiler class "Nope": failed to load`; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestDecoder_Load(t *testing.T) {
	dec := dossier.NewDecoder(dossiertest.FooRegistry(t))

	p, err := dec.Load(context.Background(), dossier.Envelope{
		Class: "Foo",
		Data:  map[string]any{"x": 1},
	})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	foo, ok := p.(*dossiertest.Foo)
	if !ok {
		t.Fatalf("Load() returned %T, want *Foo", p)
	}
	if foo.X != 1 {
		t.Errorf("x = %d, want 1", foo.X)
	}
}

func TestDecoder_Load_UnknownSkipsLoaders(t *testing.T) {
	counter := &dossiertest.CountingLoader[dossier.ColumnProfiler]{Loader: dossiertest.LoadFoo}
	reg := dossier.NewRegistry[dossier.ColumnProfiler](dossier.FamilyProfiler)
	reg.MustRegister("Foo", counter.Load)
	dec := dossier.NewDecoder(reg)

	_, err := dec.Load(context.Background(), dossier.Envelope{Class: "Missing", Data: map[string]any{}})
	if !errors.Is(err, dossier.ErrUnknownClass) {
		t.Fatalf("Load() error = %v, want ErrUnknownClass", err)
	}
	if counter.Calls() != 0 {
		t.Errorf("loader ran %d times, want 0", counter.Calls())
	}
}

func TestDecoder_Load_LoaderErrorUnchanged(t *testing.T) {
	dec := dossier.NewDecoder(dossiertest.FooRegistry(t))

	_, err := dec.Load(context.Background(), dossier.Envelope{Class: "Foo", Data: map[string]any{}})

	var fe *dossier.FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("Load() error = %T %v, want *FieldError", err, err)
	}
	if fe.Field != "x" || !errors.Is(err, dossier.ErrMissingField) {
		t.Errorf("FieldError = %+v", fe)
	}
	if errors.Is(err, dossier.ErrUnknownClass) || errors.Is(err, dossier.ErrInvalidEnvelope) {
		t.Error("loader error should not be reinterpreted by the decoder")
	}
}

func TestDecoder_Load_ReturnsLoaderErrorIdentity(t *testing.T) {
	sentinel := errors.New("boom")
	reg := dossier.NewRegistry[dossier.ColumnProfiler](dossier.FamilyProfiler)
	reg.MustRegister("Boom", func(context.Context, map[string]any) (dossier.ColumnProfiler, error) {
		return nil, sentinel
	})
	dec := dossier.NewDecoder(reg)

	_, err := dec.Load(context.Background(), dossier.Envelope{Class: "Boom"})
	if err != sentinel {
		t.Errorf("Load() error = %v, want the loader's error itself", err)
	}
}

func TestDecoder_Load_NilData(t *testing.T) {
	var got map[string]any
	reg := dossier.NewRegistry[dossier.ColumnProfiler](dossier.FamilyProfiler)
	reg.MustRegister("Probe", func(_ context.Context, data map[string]any) (dossier.ColumnProfiler, error) {
		got = data
		return &dossiertest.Foo{}, nil
	})
	dec := dossier.NewDecoder(reg)

	if _, err := dec.Load(context.Background(), dossier.Envelope{Class: "Probe"}); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got == nil {
		t.Error("loader should receive an empty map, not nil")
	}
}

func TestDecoder_LoadMap(t *testing.T) {
	dec := dossier.NewDecoder(dossiertest.FooRegistry(t))

	p, err := dec.LoadMap(context.Background(), map[string]any{
		"class": "Foo",
		"data":  map[string]any{"x": float64(5)},
	})
	if err != nil {
		t.Fatalf("LoadMap() error: %v", err)
	}
	if p.(*dossiertest.Foo).X != 5 {
		t.Errorf("x = %d, want 5", p.(*dossiertest.Foo).X)
	}

	_, err = dec.LoadMap(context.Background(), map[string]any{"data": map[string]any{}})
	if !errors.Is(err, dossier.ErrInvalidEnvelope) {
		t.Errorf("LoadMap(no class) error = %v, want ErrInvalidEnvelope", err)
	}
}

func TestDecoder_Decode(t *testing.T) {
	dec := dossier.NewDecoder(dossiertest.FooRegistry(t), dossier.WithCodec(json.New()))

	p, err := dec.Decode(context.Background(), []byte(`{"class": "Foo", "data": {"x": 1}}`))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if p.(*dossiertest.Foo).X != 1 {
		t.Errorf("x = %d, want 1", p.(*dossiertest.Foo).X)
	}
}

func TestDecoder_Decode_Errors(t *testing.T) {
	dec := dossier.NewDecoder(dossiertest.FooRegistry(t), dossier.WithCodec(json.New()))

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"malformed", `{"class": `, dossier.ErrUnmarshal},
		{"unknown class", `{"class": "Missing", "data": {}}`, dossier.ErrUnknownClass},
		{"class not string", `{"class": 3, "data": {}}`, dossier.ErrInvalidEnvelope},
		{"data not object", `{"class": "Foo", "data": [1]}`, dossier.ErrInvalidEnvelope},
		{"missing field", `{"class": "Foo", "data": {}}`, dossier.ErrMissingField},
		{"wrong field type", `{"class": "Foo", "data": {"x": "one"}}`, dossier.ErrFieldType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dec.Decode(context.Background(), []byte(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecoder_NoCodec(t *testing.T) {
	dec := dossier.NewDecoder(dossiertest.FooRegistry(t))

	if dec.Codec() != nil {
		t.Error("Codec() should be nil without WithCodec")
	}
	if _, err := dec.Decode(context.Background(), []byte(`{}`)); !errors.Is(err, dossier.ErrNoCodec) {
		t.Errorf("Decode() error = %v, want ErrNoCodec", err)
	}
	if _, err := dec.Encode(&dossiertest.Foo{}); !errors.Is(err, dossier.ErrNoCodec) {
		t.Errorf("Encode() error = %v, want ErrNoCodec", err)
	}
}

func TestDecoder_EncodeDecode(t *testing.T) {
	dec := dossier.NewDecoder(dossiertest.FooRegistry(t), dossier.WithCodec(json.New()))

	data, err := dec.Encode(&dossiertest.Foo{X: 42})
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	p, err := dec.Decode(context.Background(), data)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if p.(*dossiertest.Foo).X != 42 {
		t.Errorf("x = %d, want 42", p.(*dossiertest.Foo).X)
	}
}

func TestDecoder_Family(t *testing.T) {
	dec := dossier.NewDecoder(dossier.NewRegistry[dossier.Compiler](dossier.FamilyCompiler))
	if dec.Family() != dossier.FamilyCompiler {
		t.Errorf("Family() = %q, want compiler", dec.Family())
	}
}
