package serialize

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/availcore/avail/internal/object"
	"github.com/google/uuid"
)

// Decoder reads a stream produced by Encoder back into Values.
type Decoder struct {
	buf   []byte
	pos   int
	atoms []*object.Atom
}

func NewDecoder(data []byte) *Decoder {
	return &Decoder{buf: data}
}

func (d *Decoder) readByte() (byte, error) {
	if d.pos >= len(d.buf) {
		return 0, fmt.Errorf("serialize: unexpected end of stream")
	}
	b := d.buf[d.pos]
	d.pos++
	return b, nil
}

func (d *Decoder) readUint32() (uint32, error) {
	if d.pos+4 > len(d.buf) {
		return 0, fmt.Errorf("serialize: unexpected end of stream reading uint32")
	}
	v := binary.LittleEndian.Uint32(d.buf[d.pos : d.pos+4])
	d.pos += 4
	return v, nil
}

func (d *Decoder) readUint64() (uint64, error) {
	if d.pos+8 > len(d.buf) {
		return 0, fmt.Errorf("serialize: unexpected end of stream reading uint64")
	}
	v := binary.LittleEndian.Uint64(d.buf[d.pos : d.pos+8])
	d.pos += 8
	return v, nil
}

func (d *Decoder) readBytes(n int) ([]byte, error) {
	if d.pos+n > len(d.buf) {
		return nil, fmt.Errorf("serialize: unexpected end of stream reading %d bytes", n)
	}
	b := d.buf[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

// Decode reads the next tagged Value from the stream.
func (d *Decoder) Decode() (object.Value, error) {
	tagByte, err := d.readByte()
	if err != nil {
		return object.Value{}, err
	}
	switch Tag(tagByte) {
	case TagNil:
		return object.NilValue(), nil
	case TagInt:
		v, err := d.readUint64()
		if err != nil {
			return object.Value{}, err
		}
		return object.IntValue(int64(v)), nil
	case TagFloat:
		v, err := d.readUint64()
		if err != nil {
			return object.Value{}, err
		}
		return object.FloatValue(math.Float64frombits(v)), nil
	case TagBool:
		b, err := d.readByte()
		if err != nil {
			return object.Value{}, err
		}
		return object.BoolValue(b != 0), nil
	case TagTuple:
		n, err := d.readUint32()
		if err != nil {
			return object.Value{}, err
		}
		elems := make([]object.Value, n)
		for i := range elems {
			elems[i], err = d.Decode()
			if err != nil {
				return object.Value{}, err
			}
		}
		return object.ObjValue(object.NewTuple(elems)), nil
	case TagSet:
		n, err := d.readUint32()
		if err != nil {
			return object.Value{}, err
		}
		elems := make([]object.Value, n)
		for i := range elems {
			elems[i], err = d.Decode()
			if err != nil {
				return object.Value{}, err
			}
		}
		return object.ObjValue(object.NewSetFromValues(elems)), nil
	case TagMap:
		n, err := d.readUint32()
		if err != nil {
			return object.Value{}, err
		}
		m := object.EmptyAvailMap()
		for i := uint32(0); i < n; i++ {
			k, err := d.Decode()
			if err != nil {
				return object.Value{}, err
			}
			v, err := d.Decode()
			if err != nil {
				return object.Value{}, err
			}
			m = m.Put(k, v)
		}
		return object.ObjValue(m), nil
	case TagAtom:
		nameLen, err := d.readUint32()
		if err != nil {
			return object.Value{}, err
		}
		nameBytes, err := d.readBytes(int(nameLen))
		if err != nil {
			return object.Value{}, err
		}
		idBytes, err := d.readBytes(16)
		if err != nil {
			return object.Value{}, err
		}
		a := object.NewAtom(string(nameBytes))
		a.ID, err = uuid.FromBytes(idBytes)
		if err != nil {
			return object.Value{}, err
		}
		d.atoms = append(d.atoms, a)
		return object.ObjValue(a), nil
	case TagBackReference:
		idx, err := d.readUint32()
		if err != nil {
			return object.Value{}, err
		}
		if int(idx) >= len(d.atoms) {
			return object.Value{}, fmt.Errorf("serialize: back-reference %d out of range", idx)
		}
		return object.ObjValue(d.atoms[idx]), nil
	default:
		return object.Value{}, fmt.Errorf("serialize: unknown tag %d", tagByte)
	}
}
