package typesystem

// subtype.go is the nominal subtype lattice the dispatch engine needs
// (spec §4.3): "is every value of type A also a value of type B?" is a
// different question than the teacher's original Hindley-Milner unifier
// answered, so it is implemented directly against the type vocabulary in
// types.go rather than derived from unification.

var parents = map[string][]string{
	"Int":          {"Number"},
	"Float":        {"Number"},
	"Number":       {"AnyType"},
	"Boolean":      {"AnyType"},
	"Nil":          {"AnyType"},
	"String":       {"Tuple", "AnyType"},
	"Tuple":        {"AnyType"},
	"Set":          {"AnyType"},
	"Map":          {"AnyType"},
	"Atom":         {"AnyType"},
	"Function":     {"AnyType"},
	"Variable":     {"AnyType"},
	"Continuation": {"AnyType"},
	"Fiber":        {"AnyType"},
	"Type":         {"AnyType"},
}

// RegisterSubtype records that child is a direct subtype of parent, for
// nominal types beyond the builtin hierarchy above (mirrors the way
// Avail's bootstrap registers the builtin kind hierarchy before any user
// code runs). internal/loader does not call it; callers register their
// own types.
func RegisterSubtype(child, parent string) {
	for _, p := range parents[child] {
		if p == parent {
			return
		}
	}
	parents[child] = append(parents[child], parent)
}

func ancestorsOf(name string) []string {
	seen := map[string]bool{name: true}
	queue := []string{name}
	var out []string
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, p := range parents[n] {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
				queue = append(queue, p)
			}
		}
	}
	return out
}

// IsSubtypeOf reports whether every value of type sub is also a value of
// type sup — the question the dispatch tree's type-tests need answered
// (spec §4.3). AnyType is the top of the lattice; a bottom/"impossible"
// type is never produced by this core so no explicit Bottom is modeled.
func IsSubtypeOf(sub, sup Type) bool {
	if sup == nil || sub == nil {
		return false
	}
	if eqType(sub, sup) {
		return true
	}
	if subCon, ok := sup.(TCon); ok && subCon.Name == "AnyType" {
		return true
	}

	switch s := sub.(type) {
	case TCon:
		if supCon, ok := sup.(TCon); ok {
			if s.Name == supCon.Name {
				return true
			}
			for _, a := range ancestorsOf(s.Name) {
				if a == supCon.Name {
					return true
				}
			}
			return false
		}

	case TApp:
		supApp, ok := sup.(TApp)
		if !ok {
			break
		}
		if !eqType(s.Constructor, supApp.Constructor) {
			return false
		}
		if len(s.Args) != len(supApp.Args) {
			return false
		}
		for i := range s.Args {
			if !IsSubtypeOf(s.Args[i], supApp.Args[i]) {
				return false
			}
		}
		return true

	case TTuple:
		supTup, ok := sup.(TTuple)
		if !ok {
			break
		}
		if len(s.Elements) != len(supTup.Elements) {
			return false
		}
		for i := range s.Elements {
			if !IsSubtypeOf(s.Elements[i], supTup.Elements[i]) {
				return false
			}
		}
		return true

	case TUnion:
		for _, variant := range s.Types {
			if !IsSubtypeOf(variant, sup) {
				return false
			}
		}
		return true
	}

	if supUnion, ok := sup.(TUnion); ok {
		for _, variant := range supUnion.Types {
			if IsSubtypeOf(sub, variant) {
				return true
			}
		}
		return false
	}

	return false
}

func eqType(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.String() == b.String()
}

// MostSpecific returns true if a is strictly more specific than b (a <: b
// and not b <: a). Used by the dispatch engine's leaf construction (spec
// §4.3 "remove any definition strictly less specific than another").
func MostSpecific(a, b Type) bool {
	return IsSubtypeOf(a, b) && !IsSubtypeOf(b, a)
}
