package dispatch

import (
	"fmt"

	"github.com/availcore/avail/internal/object"
	"github.com/availcore/avail/internal/typesystem"
)

// LookupError reports the two ways a lookup can fail to resolve a
// single Definition (spec §7), distinguished by Kind.
type LookupError struct {
	Bundle string
	Kind   string // "no-method" or "ambiguous-method"
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s: no unique most-specific definition for %s", e.Kind, e.Bundle)
}

// LookupByTypes resolves the most specific Definition whose signature
// accepts argTypes, rebuilding/extending the bundle's memoized
// decision tree as needed (spec §4.3).
func (b *Bundle) LookupByTypes(argTypes []typesystem.Type) (*Definition, error) {
	if len(argTypes) != b.Arity {
		return nil, fmt.Errorf("incorrect-number-of-arguments: %s expects %d, got %d", b.Name, b.Arity, len(argTypes))
	}
	if b.root == nil {
		b.root = newRootNode(b.Definitions)
	}
	results := lookupNode(b.root, argTypes, b.Arity)
	switch len(results) {
	case 0:
		return nil, &LookupError{Bundle: b.Name, Kind: "no-method"}
	case 1:
		return results[0], nil
	default:
		return nil, &LookupError{Bundle: b.Name, Kind: "ambiguous-method"}
	}
}

// LookupByValues is the common call-site path: derive each argument's
// runtime type and delegate to LookupByTypes (spec §4.3 "dispatch by
// the runtime types of the supplied arguments").
func (b *Bundle) LookupByValues(args []object.Value) (*Definition, error) {
	types := make([]typesystem.Type, len(args))
	for i, a := range args {
		types[i] = a.Kind()
	}
	return b.LookupByTypes(types)
}

func lookupNode(n *node, argTypes []typesystem.Type, arity int) []*Definition {
	n.expand(arity)
	if n.branches == nil {
		return n.result
	}

	var gathered []*Definition
	seen := map[*Definition]bool{}
	actual := argTypes[n.splitOn]
	for _, br := range n.branches {
		if !typesystem.IsSubtypeOf(actual, br.argType) && br.argType.String() != actual.String() {
			continue
		}
		for _, d := range lookupNode(br.child, argTypes, arity) {
			if !seen[d] {
				seen[d] = true
				gathered = append(gathered, d)
			}
		}
	}
	if len(gathered) <= 1 {
		return gathered
	}
	return mostSpecificSet(gathered)
}
