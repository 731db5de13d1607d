package typesystem

import (
	"fmt"
	"strings"
)

// Type is the type-tag vocabulary the dispatch engine tests values
// against (spec §4.3 multimethod dispatch, spec §3 "every value belongs
// to exactly one primitive kind"). There is no unifier or inference
// engine behind it: a value either belongs to a type or it doesn't,
// decided by IsSubtypeOf in subtype.go.
type Type interface {
	String() string
	Kind() Kind
}

// TCon is a nominal type constant, either a builtin kind (Int, Tuple,
// AnyType) or a name registered by RegisterSubtype at load time.
type TCon struct {
	Name string
}

func (t TCon) String() string { return t.Name }
func (t TCon) Kind() Kind     { return Star }

// TApp is a parameterized type such as Tuple<Int> or Map<Atom, Int>.
type TApp struct {
	Constructor Type
	Args        []Type
}

func (t TApp) String() string {
	if len(t.Args) == 0 {
		return t.Constructor.String()
	}
	args := make([]string, len(t.Args))
	for i, a := range t.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s<%s>", t.Constructor.String(), strings.Join(args, ", "))
}

func (t TApp) Kind() Kind { return Star }

// TTuple is a fixed-arity tuple type such as (Int, Atom).
type TTuple struct {
	Elements []Type
}

func (t TTuple) String() string {
	elems := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		elems[i] = e.String()
	}
	return fmt.Sprintf("(%s)", strings.Join(elems, ", "))
}

func (t TTuple) Kind() Kind { return Star }

// TUnion is a type satisfied by any of its member types, such as a
// primitive's declared failure type (spec §6 "primitives") when the
// primitive can fail with more than one code.
type TUnion struct {
	Types []Type // at least 2
}

func (t TUnion) String() string {
	parts := make([]string, len(t.Types))
	for i, typ := range t.Types {
		parts[i] = typ.String()
	}
	return strings.Join(parts, " | ")
}

func (t TUnion) Kind() Kind { return Star }
