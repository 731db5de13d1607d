package object

import (
	"bytes"

	"github.com/availcore/avail/internal/typesystem"
)

// Map is Avail's key-deduplicated associative collection, sharing the
// Set's HAMT shape (spec §3 "same HAMT shape as set").
type Map struct {
	trie *hamt
	mut  Mutability
}

func EmptyAvailMap() *Map { return &Map{trie: emptyHamt(), mut: Mutable} }

func (m *Map) Len() int { return m.trie.Len() }

func (m *Map) Get(k Value) (Value, bool) { return m.trie.Get(k) }

func (m *Map) Put(k, v Value) *Map {
	return &Map{trie: m.trie.Put(k, v), mut: m.mut}
}

func (m *Map) Without(k Value) *Map {
	return &Map{trie: m.trie.Delete(k), mut: m.mut}
}

func (m *Map) Range(f func(k, v Value) bool) { m.trie.Range(f) }

func (m *Map) Keys() *Set {
	s := EmptySet()
	t := s.trie
	m.trie.Range(func(k, v Value) bool {
		t = t.Put(k, k)
		return true
	})
	s.trie = t
	return s
}

func (m *Map) Mutability() Mutability { return m.mut }

func (m *Map) Promote(to Mutability) {
	if to <= m.mut {
		return
	}
	m.trie.Range(func(k, v Value) bool {
		if k.IsObj() {
			if mm, ok := k.Obj.(Mutabler); ok {
				MustPromote(mm, to)
			}
		}
		if v.IsObj() {
			if mm, ok := v.Obj.(Mutabler); ok {
				MustPromote(mm, to)
			}
		}
		return true
	})
	m.mut = to
}

func (m *Map) Kind() typesystem.Type {
	any := typesystem.Type(typesystem.TCon{Name: "AnyType"})
	return typesystem.TApp{Constructor: typesystem.TCon{Name: "Map"}, Args: []typesystem.Type{any, any}}
}

func (m *Map) Inspect() string {
	var b bytes.Buffer
	b.WriteByte('{')
	first := true
	m.trie.Range(func(k, v Value) bool {
		if !first {
			b.WriteString(", ")
		}
		b.WriteString(k.Inspect())
		b.WriteString(" -> ")
		b.WriteString(v.Inspect())
		first = false
		return true
	})
	b.WriteByte('}')
	return b.String()
}

func (m *Map) Hash() uint32 {
	var h uint32
	m.trie.Range(func(k, v Value) bool {
		h ^= k.Hash()*31 + v.Hash()
		return true
	})
	return h
}

func (m *Map) EqualsObject(other Object) bool {
	om, ok := other.(*Map)
	if !ok || om.Len() != m.Len() {
		return false
	}
	equal := true
	m.trie.Range(func(k, v Value) bool {
		ov, ok := om.Get(k)
		if !ok || !ov.Equals(v) {
			equal = false
			return false
		}
		return true
	})
	return equal
}
