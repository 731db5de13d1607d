package object

import (
	"github.com/availcore/avail/internal/typesystem"
	"github.com/google/uuid"
)

// Atom is a nominal value with identity, used as dictionary keys and
// method names (spec §3, GLOSSARY). Identity is ID, a UUID: equality
// and hashing use it rather than the Go pointer, so atoms survive a
// serialize/deserialize round trip (spec §6 round-trip law) without
// depending on process-local pointer identity.
type Atom struct {
	Name       string
	ID         uuid.UUID
	Special    bool // special atoms are non-mutable (spec §3)
	properties *hamt
	mut        Mutability
}

func NewAtom(name string) *Atom {
	return &Atom{Name: name, ID: uuid.New(), properties: emptyHamt(), mut: Immutable}
}

// NewSpecialAtom constructs one of the runtime's built-in non-mutable
// atoms (e.g. true/false sentinels, end-of-file markers).
func NewSpecialAtom(name string) *Atom {
	a := NewAtom(name)
	a.Special = true
	a.mut = Shared
	return a
}

func (a *Atom) GetProperty(key Value) (Value, bool) { return a.properties.Get(key) }

// SetProperty fails for special atoms: their property map is fixed at
// construction (spec error code "special-atom").
func (a *Atom) SetProperty(key, value Value) error {
	if a.Special {
		return ErrSpecialAtom
	}
	a.properties = a.properties.Put(key, value)
	return nil
}

func (a *Atom) Mutability() Mutability { return a.mut }
func (a *Atom) Promote(to Mutability) {
	if to > a.mut {
		a.mut = to
	}
}

func (a *Atom) Kind() typesystem.Type { return typesystem.TCon{Name: "Atom"} }
func (a *Atom) Inspect() string       { return "$" + a.Name }
func (a *Atom) Hash() uint32 {
	h := uint32(2166136261)
	for _, b := range a.ID {
		h = (h ^ uint32(b)) * 16777619
	}
	return h
}

// Atoms compare by identity (ID), not by name: two atoms with the same
// name are still distinct values unless they are literally the same atom.
func (a *Atom) EqualsObject(other Object) bool {
	oa, ok := other.(*Atom)
	return ok && oa.ID == a.ID
}
