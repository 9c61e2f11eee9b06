package dossier_test

import (
	"testing"

	"github.com/zoobzio/dossier"
	dossiertest "github.com/zoobzio/dossier/testing"
)

type Widget struct {
	Size int
}

func TestClassName(t *testing.T) {
	if got := dossier.ClassName[Widget](); got != "Widget" {
		t.Errorf("ClassName[Widget]() = %q, want Widget", got)
	}
	if got, want := dossier.ClassName[dossiertest.Foo](), (&dossiertest.Foo{}).Class(); got != want {
		t.Errorf("ClassName[Foo]() = %q, want %q", got, want)
	}
}
