package dispatch

import (
	"github.com/availcore/avail/internal/typesystem"
)

// node is one point in the lazily-expanded decision tree. An
// undecided node knows only the Definitions still qualified at this
// point (those whose signature is consistent with everything decided
// on the path from the root) and which argument positions remain
// untested. A decided node (branches != nil or result != nil) has
// been expanded and memoized; it is never rebuilt unless the bundle's
// Definitions change (handled by Bundle.root invalidation, not by
// this type).
type node struct {
	qualified []*Definition
	tested    map[int]bool // argument positions already used to split on this path

	// Decided state: exactly one of (branches, result) is set once
	// expanded.
	splitOn  int
	branches []*branch
	result   []*Definition // leaf: the most-specific-for-this-path winner set (len 1 = resolved, >1 = ambiguous, 0 = none)
}

type branch struct {
	argType typesystem.Type
	child   *node
}

func newRootNode(defs []*Definition) *node {
	return &node{qualified: append([]*Definition(nil), defs...), tested: map[int]bool{}}
}

// expand lazily builds this node's children the first time it is
// visited (spec §4.3 "lazily expanded, memoized"). Splitting chooses
// the leftmost argument position with the most distinct declared
// types among the qualified definitions (SPEC_FULL decision: leftmost
// max-partition-count tie-break), which keeps the tree shallow
// without favoring an arbitrary position order.
func (n *node) expand(arity int) {
	if n.branches != nil || n.result != nil {
		return
	}
	if len(n.qualified) <= 1 {
		n.result = n.qualified
		return
	}

	bestPos, bestCount := -1, -1
	for pos := 0; pos < arity; pos++ {
		if n.tested[pos] {
			continue
		}
		count := distinctTypeCount(n.qualified, pos)
		if count > bestCount {
			bestCount, bestPos = count, pos
		}
	}
	if bestPos == -1 || bestCount <= 1 {
		n.result = mostSpecificSet(n.qualified)
		return
	}

	n.splitOn = bestPos
	seen := map[string]bool{}
	for _, d := range n.qualified {
		t := d.Signature[bestPos]
		key := t.String()
		if seen[key] {
			continue
		}
		seen[key] = true

		childQualified := filterAtPosition(n.qualified, bestPos, t)
		childTested := map[int]bool{bestPos: true}
		for k := range n.tested {
			childTested[k] = true
		}
		n.branches = append(n.branches, &branch{
			argType: t,
			child:   &node{qualified: childQualified, tested: childTested},
		})
	}
}

// distinctTypeCount counts distinct declared types among defs at pos.
func distinctTypeCount(defs []*Definition, pos int) int {
	seen := map[string]bool{}
	for _, d := range defs {
		seen[d.Signature[pos].String()] = true
	}
	return len(seen)
}

// filterAtPosition keeps every definition whose type at pos is either
// equal to t or a supertype of t: those are still reachable candidates
// once an actual argument narrower than or equal to t is observed at
// this branch.
func filterAtPosition(defs []*Definition, pos int, t typesystem.Type) []*Definition {
	var out []*Definition
	for _, d := range defs {
		dt := d.Signature[pos]
		if dt.String() == t.String() || typesystem.IsSubtypeOf(t, dt) {
			out = append(out, d)
		}
	}
	return out
}

// mostSpecificSet returns the definitions not dominated by any other
// definition in defs (spec §4.3 "most specific leaf"). A singleton
// result means the call is resolved; more than one means the call is
// ambiguous (spec §7 "ambiguous method"); zero is impossible here
// since defs is always non-empty when this is called.
func mostSpecificSet(defs []*Definition) []*Definition {
	var winners []*Definition
	for _, candidate := range defs {
		dominated := false
		for _, other := range defs {
			if other == candidate {
				continue
			}
			if dominates(other, candidate) {
				dominated = true
				break
			}
		}
		if !dominated {
			winners = append(winners, candidate)
		}
	}
	return winners
}

// dominates reports whether a is at least as specific as b in every
// position and strictly more specific in at least one (spec
// typesystem.MostSpecific lifted pointwise across a signature).
func dominates(a, b *Definition) bool {
	strictlyBetter := false
	for i := range a.Signature {
		at, bt := a.Signature[i], b.Signature[i]
		if at.String() == bt.String() {
			continue
		}
		if typesystem.IsSubtypeOf(at, bt) {
			strictlyBetter = true
			continue
		}
		return false
	}
	return strictlyBetter
}
