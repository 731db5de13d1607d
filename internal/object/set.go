package object

import (
	"bytes"

	"github.com/availcore/avail/internal/typesystem"
)

// Set is Avail's unordered, deduplicated collection, backed by the shared
// HAMT (spec §3: "internally a hash-array-mapped trie of set-bins").
type Set struct {
	trie *hamt
	mut  Mutability
}

func EmptySet() *Set { return &Set{trie: emptyHamt(), mut: Mutable} }

func NewSetFromValues(vs []Value) *Set {
	s := EmptySet()
	t := s.trie
	for _, v := range vs {
		t = t.Put(v, v)
	}
	s.trie = t
	return s
}

func (s *Set) Len() int { return s.trie.Len() }

func (s *Set) Has(v Value) bool {
	_, ok := s.trie.Get(v)
	return ok
}

func (s *Set) With(v Value) *Set {
	return &Set{trie: s.trie.Put(v, v), mut: s.mut}
}

func (s *Set) Without(v Value) *Set {
	return &Set{trie: s.trie.Delete(v), mut: s.mut}
}

// Union implements scenario 2 (§8): the smaller input is iterated into
// the larger one's trie. When canDestroy is true and the larger input is
// mutable, that input's Set is updated to hold the union and returned;
// otherwise a fresh Set is returned and both inputs are left unchanged.
func Union(a, b *Set, canDestroy bool) *Set {
	small, big := a, b
	if small.Len() > big.Len() {
		small, big = big, small
	}
	result := big
	if !(canDestroy && result.mut == Mutable) {
		result = &Set{trie: big.trie, mut: big.mut}
	}
	t := result.trie
	small.trie.Range(func(k, v Value) bool {
		t = t.Put(k, v)
		return true
	})
	result.trie = t
	return result
}

func Intersection(a, b *Set) *Set {
	small, big := a, b
	if small.Len() > big.Len() {
		small, big = big, small
	}
	out := EmptySet()
	t := out.trie
	small.trie.Range(func(k, v Value) bool {
		if big.Has(k) {
			t = t.Put(k, v)
		}
		return true
	})
	out.trie = t
	return out
}

func (s *Set) AsTuple() *Tuple {
	var elems []Value
	s.trie.Range(func(k, v Value) bool {
		elems = append(elems, k)
		return true
	})
	return NewTuple(elems)
}

func (s *Set) Range(f func(v Value) bool) {
	s.trie.Range(func(k, v Value) bool { return f(k) })
}

func (s *Set) Mutability() Mutability { return s.mut }

func (s *Set) Promote(to Mutability) {
	if to <= s.mut {
		return
	}
	s.trie.Range(func(k, v Value) bool {
		if k.IsObj() {
			if m, ok := k.Obj.(Mutabler); ok {
				MustPromote(m, to)
			}
		}
		return true
	})
	s.mut = to
}

func (s *Set) Kind() typesystem.Type {
	return typesystem.TApp{Constructor: typesystem.TCon{Name: "Set"}, Args: []typesystem.Type{typesystem.TCon{Name: "AnyType"}}}
}

func (s *Set) Inspect() string {
	var b bytes.Buffer
	b.WriteByte('{')
	first := true
	s.trie.Range(func(k, v Value) bool {
		if !first {
			b.WriteString(", ")
		}
		b.WriteString(k.Inspect())
		first = false
		return true
	})
	b.WriteByte('}')
	return b.String()
}

func (s *Set) Hash() uint32 {
	var h uint32
	s.trie.Range(func(k, v Value) bool {
		h ^= k.Hash()
		return true
	})
	return h
}

func (s *Set) EqualsObject(other Object) bool {
	os, ok := other.(*Set)
	if !ok || os.Len() != s.Len() {
		return false
	}
	equal := true
	s.trie.Range(func(k, v Value) bool {
		if !os.Has(k) {
			equal = false
			return false
		}
		return true
	})
	return equal
}
