package object

import "github.com/availcore/avail/internal/typesystem"

// TypeValue lets a typesystem.Type itself be pushed and manipulated as
// an ordinary Avail value (spec §3 "type (itself a first-class
// value)", used by get-type-at-depth and by super calls, which
// dispatch on a statically recorded type rather than a runtime one).
type TypeValue struct {
	T typesystem.Type
}

func NewTypeValue(t typesystem.Type) *TypeValue { return &TypeValue{T: t} }

func (t *TypeValue) Mutability() Mutability { return Shared }
func (t *TypeValue) Promote(Mutability)      {}

// Kind of a type is the type of types; Avail calls this a meta-level
// construct, but for dispatch purposes treating it as its own nominal
// Type is sufficient since no method ever needs to specialize on "the
// type of a type" here.
func (t *TypeValue) Kind() typesystem.Type { return typesystem.TCon{Name: "Type"} }
func (t *TypeValue) Inspect() string       { return t.T.String() }
func (t *TypeValue) Hash() uint32 {
	h := uint32(2166136261)
	for _, c := range t.T.String() {
		h = (h ^ uint32(c)) * 16777619
	}
	return h
}

func (t *TypeValue) EqualsObject(other Object) bool {
	ot, ok := other.(*TypeValue)
	return ok && ot.T.String() == t.T.String()
}
