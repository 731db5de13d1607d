package serialize

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/availcore/avail/internal/object"
)

// Encoder writes Values to an operation-tagged stream. Atoms are
// written by reference after their first occurrence (keyed by pointer)
// and always carry their ID, so a decoded graph preserves the atom
// identity the runtime's own equality compares (spec §3 "atoms compare
// by identity").
type Encoder struct {
	buf       bytes.Buffer
	atomIndex map[*object.Atom]int
}

func NewEncoder() *Encoder {
	return &Encoder{atomIndex: map[*object.Atom]int{}}
}

func (e *Encoder) Bytes() []byte { return e.buf.Bytes() }

func (e *Encoder) putUint32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	e.buf.Write(b[:])
}

func (e *Encoder) putUint64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	e.buf.Write(b[:])
}

// Encode appends v's tagged encoding to the stream.
func (e *Encoder) Encode(v object.Value) error {
	switch {
	case v.IsNil():
		e.buf.WriteByte(byte(TagNil))
	case v.IsInt():
		e.buf.WriteByte(byte(TagInt))
		e.putUint64(uint64(v.AsInt()))
	case v.IsFloat():
		e.buf.WriteByte(byte(TagFloat))
		e.putUint64(math.Float64bits(v.AsFloat()))
	case v.IsBool():
		e.buf.WriteByte(byte(TagBool))
		if v.AsBool() {
			e.buf.WriteByte(1)
		} else {
			e.buf.WriteByte(0)
		}
	case v.IsObj():
		return e.encodeObject(v.Obj)
	default:
		return fmt.Errorf("serialize: unknown value type")
	}
	return nil
}

func (e *Encoder) encodeObject(o object.Object) error {
	switch obj := o.(type) {
	case *object.Tuple:
		e.buf.WriteByte(byte(TagTuple))
		e.putUint32(uint32(obj.Len()))
		for i := 1; i <= obj.Len(); i++ {
			if err := e.Encode(obj.At(i)); err != nil {
				return err
			}
		}
	case *object.Set:
		e.buf.WriteByte(byte(TagSet))
		e.putUint32(uint32(obj.Len()))
		var err error
		obj.Range(func(v object.Value) bool {
			err = e.Encode(v)
			return err == nil
		})
		if err != nil {
			return err
		}
	case *object.Map:
		e.buf.WriteByte(byte(TagMap))
		e.putUint32(uint32(obj.Len()))
		var err error
		obj.Range(func(k, v object.Value) bool {
			if err = e.Encode(k); err != nil {
				return false
			}
			err = e.Encode(v)
			return err == nil
		})
		if err != nil {
			return err
		}
	case *object.Atom:
		if idx, ok := e.atomIndex[obj]; ok {
			e.buf.WriteByte(byte(TagBackReference))
			e.putUint32(uint32(idx))
			return nil
		}
		e.atomIndex[obj] = len(e.atomIndex)
		e.buf.WriteByte(byte(TagAtom))
		nameBytes := []byte(obj.Name)
		e.putUint32(uint32(len(nameBytes)))
		e.buf.Write(nameBytes)
		e.buf.Write(obj.ID[:])
	default:
		return fmt.Errorf("serialize: %T is not serializable (function/continuation/variable identity is a module-repository concern, out of scope for this core)", o)
	}
	return nil
}
