// Package object implements Avail's value universe: the tagged value
// representation, the mutable/immutable/shared lifecycle, and the
// concrete value variants (tuple, set, map, atom, variable, function,
// compiled code, continuation) described in spec §3.
package object

import "fmt"

// Mutability is a point on the monotone lattice mutable -> immutable -> shared.
type Mutability uint8

const (
	Mutable Mutability = iota
	Immutable
	Shared
)

func (m Mutability) String() string {
	switch m {
	case Mutable:
		return "mutable"
	case Immutable:
		return "immutable"
	case Shared:
		return "shared"
	default:
		return "unknown"
	}
}

// CanTransitionTo reports whether m -> to is a legal (monotone) transition.
// The lattice only ever moves forward: mutable -> immutable -> shared.
// A transition to the same state is a no-op and always allowed (promotion
// is idempotent, per spec §4.4 "Ordering guarantees").
func (m Mutability) CanTransitionTo(to Mutability) bool {
	return to >= m
}

// Mutabler is implemented by every heap-allocated value variant so the
// interpreter can enforce the lattice uniformly regardless of concrete
// representation.
type Mutabler interface {
	Mutability() Mutability
	// Promote moves the value at least to level `to`. Promoting a value
	// already at or beyond `to` is a no-op. Promoting never regresses.
	Promote(to Mutability)
}

// MustPromote panics if the requested transition would regress the
// lattice. Violating monotonicity is a programming error in the
// interpreter, not a language-level failure, so it is fatal (spec §7 tier 1).
func MustPromote(m Mutabler, to Mutability) {
	if !m.Mutability().CanTransitionTo(to) {
		panic(fmt.Sprintf("illegal mutability transition: %s -> %s", m.Mutability(), to))
	}
	m.Promote(to)
}
