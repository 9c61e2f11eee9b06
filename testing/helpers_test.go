package testing

import (
	"context"
	"errors"
	"testing"

	"github.com/zoobzio/dossier"
)

func TestLoadFoo(t *testing.T) {
	p, err := LoadFoo(context.Background(), map[string]any{"x": 9})
	if err != nil {
		t.Fatalf("LoadFoo() error: %v", err)
	}
	if p.(*Foo).X != 9 {
		t.Errorf("X = %d, want 9", p.(*Foo).X)
	}

	if _, err := LoadFoo(context.Background(), map[string]any{}); !errors.Is(err, dossier.ErrMissingField) {
		t.Errorf("LoadFoo(empty) error = %v, want ErrMissingField", err)
	}
}

func TestCountingLoader(t *testing.T) {
	c := &CountingLoader[dossier.ColumnProfiler]{Loader: LoadFoo}

	for i := 0; i < 2; i++ {
		_, _ = c.Load(context.Background(), map[string]any{"x": 1})
	}
	if c.Calls() != 2 {
		t.Errorf("Calls() = %d, want 2", c.Calls())
	}
}

func TestFooRegistry(t *testing.T) {
	reg := FooRegistry(t)
	if reg.Len() != 1 || reg.Sealed() {
		t.Errorf("FooRegistry() len=%d sealed=%v", reg.Len(), reg.Sealed())
	}
}

func TestSamples(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range SampleProfilers() {
		if seen[p.Class()] {
			t.Errorf("duplicate sample profiler %s", p.Class())
		}
		seen[p.Class()] = true
	}
	if len(seen) != 7 {
		t.Errorf("SampleProfilers() covers %d classes, want 7", len(seen))
	}
	if n := len(SampleCompilers()); n != 3 {
		t.Errorf("SampleCompilers() = %d, want 3", n)
	}
}
