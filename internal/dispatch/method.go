// Package dispatch implements Avail's multimethod dispatch engine: a
// lazily-expanded decision tree over a message's argument types, built
// once per bundle and memoized (spec §4.3).
package dispatch

import (
	"fmt"

	"github.com/availcore/avail/internal/object"
	"github.com/availcore/avail/internal/typesystem"
)

// Definition is one concrete implementation registered against a
// Bundle: a declared signature (one type per argument position) and
// the function body to invoke when the signature is the unique most
// specific match (spec §3 "method definition").
type Definition struct {
	Signature []typesystem.Type
	Body      *object.Function
}

func (d *Definition) arity() int { return len(d.Signature) }

// sameSignature reports whether two definitions declare identical
// argument types, which Avail rejects at definition time (spec §7
// "identical signature" error).
func sameSignature(a, b []typesystem.Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].String() != b[i].String() {
			return false
		}
	}
	return true
}

// Bundle is the dispatch root for one message name: every Definition
// sharing that name and arity, plus the lazily-built decision tree
// used to resolve a call's argument types to a Definition quickly
// (spec §4.3 "multimethod dispatch tree").
type Bundle struct {
	Name        string
	Arity       int
	Definitions []*Definition
	root        *node // rebuilt (lazily) whenever Definitions changes
}

func NewBundle(name string, arity int) *Bundle {
	return &Bundle{Name: name, Arity: arity}
}

// AddDefinition registers a new implementation. It is an error to
// register two definitions with identical signatures (spec §7).
func (b *Bundle) AddDefinition(d *Definition) error {
	if d.arity() != b.Arity {
		return fmt.Errorf("incorrect-number-of-arguments: bundle %s expects %d arguments, got %d",
			b.Name, b.Arity, d.arity())
	}
	for _, existing := range b.Definitions {
		if sameSignature(existing.Signature, d.Signature) {
			return fmt.Errorf("method-is-already-defined: %s%v", b.Name, d.Signature)
		}
	}
	b.Definitions = append(b.Definitions, d)
	b.root = nil // invalidate: next lookup rebuilds lazily
	return nil
}
