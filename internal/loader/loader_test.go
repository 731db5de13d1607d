package loader

import (
	"testing"

	"github.com/availcore/avail/internal/dispatch"
	"github.com/availcore/avail/internal/object"
	"github.com/availcore/avail/internal/typesystem"
)

func TestInstallRegistersDefinitions(t *testing.T) {
	reg := dispatch.NewRegistry()
	l := New(reg)

	code := &object.CompiledCode{NumArgs: 1, Name: "describe"}
	fn := object.NewFunction(code, nil)
	mod := &Module{
		Name: "core",
		Installs: []MethodInstall{
			{BundleName: "describe", Signature: []typesystem.Type{typesystem.TCon{Name: "Int"}}, Body: fn},
		},
	}

	if err := l.Install(mod, nil); err != nil {
		t.Fatalf("Install: %v", err)
	}
	if !l.IsLoaded("core") {
		t.Fatal("expected module to be loaded")
	}

	b, err := reg.Lookup("describe", 1)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(b.Definitions) != 1 {
		t.Fatalf("expected 1 definition, got %d", len(b.Definitions))
	}
}

func TestInstallRejectsMissingDependency(t *testing.T) {
	reg := dispatch.NewRegistry()
	l := New(reg)
	mod := &Module{Name: "extras"}
	if err := l.Install(mod, []string{"core"}); err == nil {
		t.Fatal("expected missing-dependency error")
	}
}
