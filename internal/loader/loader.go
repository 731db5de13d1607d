// Package loader installs pre-built compiled modules into the
// runtime's dispatch registry (spec §6 "a module loader installs
// compiled code into bundles and triggers dispatch-tree rebuilds").
// It is deliberately not a source-file loader: parsing surface syntax,
// resolving on-disk module paths, and the on-disk module repository
// format are named in the specification only as external
// collaborators this core depends on, not components it implements.
package loader

import (
	"fmt"

	"github.com/availcore/avail/internal/dispatch"
	"github.com/availcore/avail/internal/object"
	"github.com/availcore/avail/internal/typesystem"
)

// MethodInstall is one method definition a module contributes to a
// bundle, with its signature already resolved to concrete types (name
// resolution against a module's own type declarations is the surface
// compiler's job, out of scope here).
type MethodInstall struct {
	BundleName string
	Signature  []typesystem.Type
	Body       *object.Function
}

// Module is a pre-compiled unit: a name plus the method definitions it
// contributes. It stands in for what the teacher's modules.Module
// tracks (name, exports, analysis state) minus everything tied to
// parsing source text.
type Module struct {
	Name     string
	Installs []MethodInstall
}

// Loader mirrors the teacher's cache/cycle-detection shape
// (internal/modules.Loader: LoadedModules, Processing) but installs
// compiled modules into a Registry instead of reading files from disk.
type Loader struct {
	Registry *dispatch.Registry

	loaded     map[string]*Module
	processing map[string]bool
}

func New(registry *dispatch.Registry) *Loader {
	return &Loader{
		Registry:   registry,
		loaded:     map[string]*Module{},
		processing: map[string]bool{},
	}
}

// Install registers every definition a module contributes, which
// invalidates each touched bundle's cached dispatch tree so the next
// lookup rebuilds it (handled by Bundle.AddDefinition). dependencies
// lists modules that must already be installed, giving the loader the
// same cyclic-dependency detection the teacher's file loader performs
// against its own Processing map.
func (l *Loader) Install(mod *Module, dependencies []string) error {
	if l.processing[mod.Name] {
		return fmt.Errorf("cyclic-module-dependency: %s", mod.Name)
	}
	if _, ok := l.loaded[mod.Name]; ok {
		return nil // idempotent re-install
	}

	l.processing[mod.Name] = true
	defer delete(l.processing, mod.Name)

	for _, dep := range dependencies {
		if _, ok := l.loaded[dep]; !ok {
			return fmt.Errorf("module %s depends on %s, which is not yet installed", mod.Name, dep)
		}
	}

	for _, inst := range mod.Installs {
		bundle := l.Registry.GetOrCreate(inst.BundleName, len(inst.Signature))
		if err := bundle.AddDefinition(&dispatch.Definition{Signature: inst.Signature, Body: inst.Body}); err != nil {
			return fmt.Errorf("module %s: %w", mod.Name, err)
		}
	}

	l.loaded[mod.Name] = mod
	return nil
}

// IsLoaded reports whether a module has already been installed.
func (l *Loader) IsLoaded(name string) bool {
	_, ok := l.loaded[name]
	return ok
}
