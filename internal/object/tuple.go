package object

import (
	"bytes"
	"fmt"

	"github.com/availcore/avail/internal/typesystem"
)

// Tuple is Avail's ordered, possibly-specialized sequence (spec §3).
// Specialization (byte/nybble/int tuples) is tracked as a hint so the
// interpreter can pick a tighter element type without needing a distinct
// Go representation per variant; the backing store is always []Value.
type Tuple struct {
	elems []Value
	mut   Mutability
	hint  specialization
}

type specialization uint8

const (
	specObject specialization = iota
	specByte                  // every element is an Int in [0, 255]
	specNybble                // every element is an Int in [0, 15]
	specInt                   // every element is an Int
)

func NewTuple(elems []Value) *Tuple {
	t := &Tuple{elems: elems, mut: Mutable}
	t.recomputeHint()
	return t
}

func EmptyTuple() *Tuple { return NewTuple(nil) }

func (t *Tuple) recomputeHint() {
	hint := specByte
	for _, e := range t.elems {
		if !e.IsInt() {
			t.hint = specObject
			return
		}
		v := e.AsInt()
		if hint == specByte && (v < 0 || v > 255) {
			hint = specInt
		}
	}
	if hint == specByte {
		allNybble := true
		for _, e := range t.elems {
			if v := e.AsInt(); v < 0 || v > 15 {
				allNybble = false
				break
			}
		}
		if allNybble {
			hint = specNybble
		}
	}
	t.hint = hint
}

func (t *Tuple) Len() int { return len(t.elems) }

// At returns the 1-indexed element (Avail tuples are 1-indexed).
func (t *Tuple) At(i int) Value {
	if i < 1 || i > len(t.elems) {
		panic(fmt.Sprintf("tuple index out of bounds: %d (len %d)", i, len(t.elems)))
	}
	return t.elems[i-1]
}

// AtPut returns a new tuple with index i (1-indexed) replaced, honoring
// canDestroy: when canDestroy is true and the receiver is mutable and
// exclusively owned, the mutation happens in place (spec §3 I1, §8
// scenario 2's canDestroy convention generalizes here).
func (t *Tuple) AtPut(i int, v Value, canDestroy bool) *Tuple {
	if i < 1 || i > len(t.elems) {
		panic(fmt.Sprintf("tuple index out of bounds: %d (len %d)", i, len(t.elems)))
	}
	if canDestroy && t.mut == Mutable {
		t.elems[i-1] = v
		t.recomputeHint()
		return t
	}
	cp := make([]Value, len(t.elems))
	copy(cp, t.elems)
	cp[i-1] = v
	return NewTuple(cp)
}

func (t *Tuple) Append(v Value, canDestroy bool) *Tuple {
	if canDestroy && t.mut == Mutable {
		t.elems = append(t.elems, v)
		t.recomputeHint()
		return t
	}
	cp := make([]Value, len(t.elems)+1)
	copy(cp, t.elems)
	cp[len(t.elems)] = v
	return NewTuple(cp)
}

func (t *Tuple) Concat(other *Tuple) *Tuple {
	cp := make([]Value, len(t.elems)+len(other.elems))
	copy(cp, t.elems)
	copy(cp[len(t.elems):], other.elems)
	return NewTuple(cp)
}

func (t *Tuple) Elements() []Value { return t.elems }

func (t *Tuple) Mutability() Mutability { return t.mut }

// Promote moves the tuple (and, transitively, every element) to at least
// level `to`. A tuple is shared iff every element is shared (I1).
func (t *Tuple) Promote(to Mutability) {
	if to <= t.mut {
		return
	}
	for _, e := range t.elems {
		if e.IsObj() {
			if m, ok := e.Obj.(Mutabler); ok {
				MustPromote(m, to)
			}
		}
	}
	t.mut = to
}

func (t *Tuple) Kind() typesystem.Type {
	elem := typesystem.Type(typesystem.TCon{Name: "AnyType"})
	switch t.hint {
	case specByte, specNybble, specInt:
		elem = typesystem.TCon{Name: "Int"}
	}
	return typesystem.TApp{Constructor: typesystem.TCon{Name: "Tuple"}, Args: []typesystem.Type{elem}}
}

func (t *Tuple) Inspect() string {
	var b bytes.Buffer
	b.WriteByte('<')
	for i, e := range t.elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.Inspect())
	}
	b.WriteByte('>')
	return b.String()
}

func (t *Tuple) Hash() uint32 {
	var h uint32 = 2166136261
	for _, e := range t.elems {
		h = (h ^ e.Hash()) * 16777619
	}
	return h
}

func (t *Tuple) EqualsObject(other Object) bool {
	ot, ok := other.(*Tuple)
	if !ok || len(ot.elems) != len(t.elems) {
		return false
	}
	for i := range t.elems {
		if !t.elems[i].Equals(ot.elems[i]) {
			return false
		}
	}
	return true
}
