// Package serialize implements Avail's operation-tagged object-graph
// serialization stream (spec §6 "serialization"): every value is
// written as one tag byte identifying its kind followed by that kind's
// fixed encoding, so deserialization never needs reflection. This
// mirrors the teacher's own little-endian, hand-rolled binary framing
// for its Bundle format (internal/vm/bundle.go) rather than reaching
// for encoding/gob, which needs every concrete type pre-registered and
// cannot easily express the cyclic object graphs continuations
// introduce.
package serialize

// Tag identifies the shape of the value that follows in the stream.
type Tag byte

const (
	TagNil Tag = iota
	TagInt
	TagFloat
	TagBool
	TagTuple
	TagSet
	TagMap
	TagAtom
	TagBackReference // a previously-written atom, referenced by its index among the atoms written so far
)
