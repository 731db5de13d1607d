package object

// hamt is a persistent hash-array-mapped trie shared by Set and Map
// (spec §3: "internally a hash-array-mapped trie of set-bins"). It is
// grounded on the teacher's PersistentMap (internal/vm/globals_map.go),
// generalized from string keys to arbitrary Value keys via Value.Hash/
// Value.Equals, and carrying a payload Value so the same trie backs both
// Set (payload == key) and Map (payload == mapped value).
const (
	hamtBits = 5
	hamtSize = 1 << hamtBits
	hamtMask = hamtSize - 1
)

type hamtEntry struct {
	hash  uint32
	key   Value
	value Value
}

type hamtNode struct {
	bitmap   uint32
	contents []interface{} // *hamtEntry | *hamtNode | []*hamtEntry (collision bucket)
}

type hamt struct {
	root  *hamtNode
	count int
}

func emptyHamt() *hamt {
	return &hamt{}
}

func (h *hamt) Len() int { return h.count }

func (h *hamt) Get(key Value) (Value, bool) {
	if h.root == nil {
		return Value{}, false
	}
	return h.root.get(key.Hash(), key, 0)
}

func (h *hamt) Put(key, value Value) *hamt {
	var newRoot *hamtNode
	var added bool
	if h.root == nil {
		newRoot, added = (&hamtNode{}).put(key.Hash(), key, value, 0)
	} else {
		newRoot, added = h.root.put(key.Hash(), key, value, 0)
	}
	count := h.count
	if added {
		count++
	}
	return &hamt{root: newRoot, count: count}
}

func (h *hamt) Delete(key Value) *hamt {
	if h.root == nil {
		return h
	}
	newRoot, removed := h.root.delete(key.Hash(), key, 0)
	if !removed {
		return h
	}
	return &hamt{root: newRoot, count: h.count - 1}
}

func (h *hamt) Range(f func(key, value Value) bool) {
	if h.root != nil {
		h.root.iterate(f)
	}
}

func (n *hamtNode) get(hash uint32, key Value, shift uint) (Value, bool) {
	idx := (hash >> shift) & hamtMask
	bit := uint32(1) << idx
	if n.bitmap&bit == 0 {
		return Value{}, false
	}
	pos := popcount(n.bitmap & (bit - 1))
	switch v := n.contents[pos].(type) {
	case *hamtEntry:
		if v.hash == hash && v.key.Equals(key) {
			return v.value, true
		}
		return Value{}, false
	case *hamtNode:
		return v.get(hash, key, shift+hamtBits)
	case []*hamtEntry:
		for _, e := range v {
			if e.hash == hash && e.key.Equals(key) {
				return e.value, true
			}
		}
		return Value{}, false
	}
	return Value{}, false
}

func (n *hamtNode) put(hash uint32, key, value Value, shift uint) (*hamtNode, bool) {
	idx := (hash >> shift) & hamtMask
	bit := uint32(1) << idx

	newNode := &hamtNode{bitmap: n.bitmap, contents: make([]interface{}, len(n.contents))}
	copy(newNode.contents, n.contents)

	if n.bitmap&bit == 0 {
		newNode.bitmap |= bit
		pos := popcount(newNode.bitmap & (bit - 1))
		entry := &hamtEntry{hash: hash, key: key, value: value}
		newNode.contents = append(newNode.contents, nil)
		copy(newNode.contents[pos+1:], newNode.contents[pos:])
		newNode.contents[pos] = entry
		return newNode, true
	}

	pos := popcount(n.bitmap & (bit - 1))
	switch v := newNode.contents[pos].(type) {
	case *hamtEntry:
		if v.hash == hash && v.key.Equals(key) {
			newNode.contents[pos] = &hamtEntry{hash: hash, key: key, value: value}
			return newNode, false
		}
		if shift >= 30 {
			bucket := []*hamtEntry{v, {hash: hash, key: key, value: value}}
			newNode.contents[pos] = bucket
			return newNode, true
		}
		child := &hamtNode{}
		child, _ = child.put(v.hash, v.key, v.value, shift+hamtBits)
		child, added := child.put(hash, key, value, shift+hamtBits)
		newNode.contents[pos] = child
		return newNode, added
	case *hamtNode:
		newChild, added := v.put(hash, key, value, shift+hamtBits)
		newNode.contents[pos] = newChild
		return newNode, added
	case []*hamtEntry:
		for i, e := range v {
			if e.hash == hash && e.key.Equals(key) {
				newBucket := make([]*hamtEntry, len(v))
				copy(newBucket, v)
				newBucket[i] = &hamtEntry{hash: hash, key: key, value: value}
				newNode.contents[pos] = newBucket
				return newNode, false
			}
		}
		newBucket := make([]*hamtEntry, len(v)+1)
		copy(newBucket, v)
		newBucket[len(v)] = &hamtEntry{hash: hash, key: key, value: value}
		newNode.contents[pos] = newBucket
		return newNode, true
	}
	return newNode, false
}

func (n *hamtNode) delete(hash uint32, key Value, shift uint) (*hamtNode, bool) {
	idx := (hash >> shift) & hamtMask
	bit := uint32(1) << idx
	if n.bitmap&bit == 0 {
		return n, false
	}
	pos := popcount(n.bitmap & (bit - 1))

	newNode := &hamtNode{bitmap: n.bitmap, contents: make([]interface{}, len(n.contents))}
	copy(newNode.contents, n.contents)

	switch v := newNode.contents[pos].(type) {
	case *hamtEntry:
		if v.hash != hash || !v.key.Equals(key) {
			return n, false
		}
		newNode.bitmap &^= bit
		newNode.contents = append(newNode.contents[:pos], newNode.contents[pos+1:]...)
		return newNode, true
	case *hamtNode:
		newChild, removed := v.delete(hash, key, shift+hamtBits)
		if !removed {
			return n, false
		}
		newNode.contents[pos] = newChild
		return newNode, true
	case []*hamtEntry:
		for i, e := range v {
			if e.hash == hash && e.key.Equals(key) {
				newBucket := make([]*hamtEntry, 0, len(v)-1)
				newBucket = append(newBucket, v[:i]...)
				newBucket = append(newBucket, v[i+1:]...)
				newNode.contents[pos] = newBucket
				return newNode, true
			}
		}
		return n, false
	}
	return n, false
}

func (n *hamtNode) iterate(f func(key, value Value) bool) bool {
	for _, item := range n.contents {
		switch v := item.(type) {
		case *hamtEntry:
			if !f(v.key, v.value) {
				return false
			}
		case *hamtNode:
			if !v.iterate(f) {
				return false
			}
		case []*hamtEntry:
			for _, e := range v {
				if !f(e.key, e.value) {
					return false
				}
			}
		}
	}
	return true
}

func popcount(x uint32) int {
	x = x - ((x >> 1) & 0x55555555)
	x = (x & 0x33333333) + ((x >> 2) & 0x33333333)
	x = (x + (x >> 4)) & 0x0f0f0f0f
	x = x + (x >> 8)
	x = x + (x >> 16)
	return int(x & 0x3f)
}
