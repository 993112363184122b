package compact

import (
	"fmt"
	"unsafe"

	"github.com/compactbond/bondcb/lib/buffer"
	"github.com/compactbond/bondcb/lib/wire"
)

// Reader is a stateful CompactBinary v1 decoder over one Buffer.
type Reader struct {
	buf *buffer.Buffer
}

// NewReader binds a Reader to buf.
func NewReader(buf *buffer.Buffer) *Reader {
	return &Reader{buf: buf}
}

// StructBegin is a no-op in CompactBinary v1.
func (r *Reader) StructBegin() {}

// StructEnd is a no-op; callers detect the end of a struct by the STOP
// type returned from ReadFieldHeader, not by calling StructEnd.
func (r *Reader) StructEnd() {}

func (r *Reader) readByte() (byte, error) {
	b, ok := r.buf.ReadByte()
	if !ok {
		return 0, ErrTruncatedInput
	}
	return b, nil
}

// ReadFieldHeader parses one field header: the id-hint and type from the
// first byte, then zero, one, or two escape bytes depending on the hint.
// A returned type of TypeStop (or TypeStopBase) signals end of the
// current struct frame; the caller decides how to react — this method
// does no special-casing of STOP beyond returning it.
//
// The reader accepts any valid encoding of a given id, including a
// redundant escape a non-canonical writer might emit (e.g. hint-6 escape
// for an id that could have fit in the inline hint); only the writer is
// required to canonicalize.
func (r *Reader) ReadFieldHeader() (id uint16, typ Type, err error) {
	first, err := r.readByte()
	if err != nil {
		return 0, 0, err
	}
	hint := first >> 5
	typ = Type(first & 0x1F)

	switch {
	case hint < 6:
		return uint16(hint), typ, nil
	case hint == 6:
		b, err := r.readByte()
		if err != nil {
			return 0, 0, err
		}
		return uint16(b), typ, nil
	default:
		lo, err := r.readByte()
		if err != nil {
			return 0, 0, err
		}
		hi, err := r.readByte()
		if err != nil {
			return 0, 0, err
		}
		return uint16(lo) | uint16(hi)<<8, typ, nil
	}
}

func (r *Reader) readVarint16() (uint16, error) {
	var tmp [wire.MaxVarint16Bytes]byte
	n := r.buf.Peek(tmp[:])
	value, consumed, err := wire.Varint16(tmp[:n])
	if err != nil {
		return 0, ErrMalformedVarint
	}
	_, _ = r.buf.View(consumed)
	return value, nil
}

func (r *Reader) readVarint32() (uint32, error) {
	var tmp [wire.MaxVarint32Bytes]byte
	n := r.buf.Peek(tmp[:])
	value, consumed, err := wire.Varint32(tmp[:n])
	if err != nil {
		return 0, ErrMalformedVarint
	}
	_, _ = r.buf.View(consumed)
	return value, nil
}

func (r *Reader) readVarint64() (uint64, error) {
	var tmp [wire.MaxVarint64Bytes]byte
	n := r.buf.Peek(tmp[:])
	value, consumed, err := wire.Varint64(tmp[:n])
	if err != nil {
		return 0, ErrMalformedVarint
	}
	_, _ = r.buf.View(consumed)
	return value, nil
}

// ReadBoolValue reads a bare bool value.
func (r *Reader) ReadBoolValue() (bool, error) {
	b, err := r.readByte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

// ReadUint8Value reads a bare uint8 value.
func (r *Reader) ReadUint8Value() (uint8, error) {
	return r.readByte()
}

// ReadInt8Value reads a bare int8 value.
func (r *Reader) ReadInt8Value() (int8, error) {
	b, err := r.readByte()
	return int8(b), err
}

// ReadUint16Value reads a bare uint16 value (varint, bounded to
// wire.MaxVarint16Bytes and 16 significant bits).
func (r *Reader) ReadUint16Value() (uint16, error) {
	return r.readVarint16()
}

// ReadUint32Value reads a bare uint32 value (varint, bounded to
// wire.MaxVarint32Bytes and 32 significant bits).
func (r *Reader) ReadUint32Value() (uint32, error) {
	return r.readVarint32()
}

// ReadUint64Value reads a bare uint64 value (varint).
func (r *Reader) ReadUint64Value() (uint64, error) {
	return r.readVarint64()
}

// ReadInt16Value reads a bare int16 value (16-bit-bounded varint, then
// zigzag-decode).
func (r *Reader) ReadInt16Value() (int16, error) {
	v, err := r.readVarint16()
	if err != nil {
		return 0, err
	}
	return wire.ZigzagDecode16(v), nil
}

// ReadInt32Value reads a bare int32 value (32-bit-bounded varint, then
// zigzag-decode).
func (r *Reader) ReadInt32Value() (int32, error) {
	v, err := r.readVarint32()
	if err != nil {
		return 0, err
	}
	return wire.ZigzagDecode32(v), nil
}

// ReadInt64Value reads a bare int64 value (varint, then zigzag-decode).
func (r *Reader) ReadInt64Value() (int64, error) {
	v, err := r.readVarint64()
	if err != nil {
		return 0, err
	}
	return wire.ZigzagDecode64(v), nil
}

// ReadFloatValue reads a bare 4-byte little-endian float value.
func (r *Reader) ReadFloatValue() (float32, error) {
	view, ok := r.buf.View(4)
	if !ok {
		return 0, ErrTruncatedInput
	}
	return wire.Float32(view), nil
}

// ReadDoubleValue reads a bare 8-byte little-endian double value.
func (r *Reader) ReadDoubleValue() (float64, error) {
	view, ok := r.buf.View(8)
	if !ok {
		return 0, ErrTruncatedInput
	}
	return wire.Float64(view), nil
}

// ReadStringValue reads a UINT32-varint length N followed by a zero-copy
// view of the next N bytes. The returned string aliases the Buffer's
// backing storage — valid only for the Buffer's lifetime, and only safe
// when the Buffer was constructed with buffer.NewBorrowed or otherwise
// known not to be mutated concurrently with use of the returned string.
func (r *Reader) ReadStringValue() (string, error) {
	n, err := r.readVarint32()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	view, ok := r.buf.View(int(n))
	if !ok {
		return "", ErrTruncatedInput
	}
	return unsafe.String(&view[0], len(view)), nil
}

// ReadListBegin reads the element type byte and UINT32-varint count of a
// LIST field. The caller must then read exactly count values via the
// element type's _Value reader.
func (r *Reader) ReadListBegin() (elementType Type, count uint32, err error) {
	b, err := r.readByte()
	if err != nil {
		return 0, 0, err
	}
	n, err := r.readVarint32()
	if err != nil {
		return 0, 0, err
	}
	return Type(b), n, nil
}

// ReadSetBegin reads a SET field with the same framing as ReadListBegin.
func (r *Reader) ReadSetBegin() (elementType Type, count uint32, err error) {
	return r.ReadListBegin()
}

// ReadMapBegin reads the key type byte, value type byte, and
// UINT32-varint count of a MAP field. The caller must then read exactly
// count (key, value) pairs.
func (r *Reader) ReadMapBegin() (keyType, valueType Type, count uint32, err error) {
	kb, err := r.readByte()
	if err != nil {
		return 0, 0, 0, err
	}
	vb, err := r.readByte()
	if err != nil {
		return 0, 0, 0, err
	}
	n, err := r.readVarint32()
	if err != nil {
		return 0, 0, 0, err
	}
	return Type(kb), Type(vb), n, nil
}

// Skip consumes exactly one value of the given type, recursing into
// structs and containers so that unrecognized fields can be dropped
// without losing sync with the byte stream. STOP and STOP_BASE are both
// treated as "end of this struct frame" when skipping a nested STRUCT,
// per the core's no-inheritance model.
func (r *Reader) Skip(typ Type) error {
	switch typ {
	case TypeBool, TypeUint8, TypeInt8:
		_, err := r.readByte()
		return err

	case TypeUint16, TypeInt16:
		_, err := r.readVarint16()
		return err

	case TypeUint32, TypeInt32:
		_, err := r.readVarint32()
		return err

	case TypeUint64, TypeInt64:
		_, err := r.readVarint64()
		return err

	case TypeFloat:
		_, ok := r.buf.View(4)
		if !ok {
			return ErrTruncatedInput
		}
		return nil

	case TypeDouble:
		_, ok := r.buf.View(8)
		if !ok {
			return ErrTruncatedInput
		}
		return nil

	case TypeString, TypeWString:
		n, err := r.readVarint32()
		if err != nil {
			return err
		}
		if _, ok := r.buf.View(int(n)); !ok {
			return ErrTruncatedInput
		}
		return nil

	case TypeStruct:
		for {
			_, fieldType, err := r.ReadFieldHeader()
			if err != nil {
				return err
			}
			if fieldType == TypeStop || fieldType == TypeStopBase {
				return nil
			}
			if err := r.Skip(fieldType); err != nil {
				return err
			}
		}

	case TypeList, TypeSet:
		elementType, count, err := r.ReadListBegin()
		if err != nil {
			return err
		}
		for i := uint32(0); i < count; i++ {
			if err := r.Skip(elementType); err != nil {
				return err
			}
		}
		return nil

	case TypeMap:
		keyType, valueType, count, err := r.ReadMapBegin()
		if err != nil {
			return err
		}
		for i := uint32(0); i < count; i++ {
			if err := r.Skip(keyType); err != nil {
				return err
			}
			if err := r.Skip(valueType); err != nil {
				return err
			}
		}
		return nil

	default:
		return fmt.Errorf("%w: %s", ErrUnknownType, typ)
	}
}
