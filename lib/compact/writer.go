package compact

import (
	"github.com/compactbond/bondcb/lib/buffer"
	"github.com/compactbond/bondcb/lib/wire"
)

// Writer is a stateful CompactBinary v1 encoder over one Buffer.
type Writer struct {
	buf *buffer.Buffer
}

// NewWriter binds a Writer to buf. buf must be an owning (non-borrowed)
// buffer.
func NewWriter(buf *buffer.Buffer) *Writer {
	return &Writer{buf: buf}
}

// Bytes returns the bytes written so far.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// StructBegin is a no-op in CompactBinary v1, reserved for alignment with
// other Bond protocol versions that frame a struct header.
func (w *Writer) StructBegin() {}

// StructEnd emits the STOP marker that terminates a struct body.
func (w *Writer) StructEnd() error {
	return w.buf.WriteByte(byte(TypeStop))
}

// WriteFieldHeader emits the 1-3 byte field header for (id, typ), always
// choosing the shortest valid encoding: id 0-5 packs into the first
// byte's 3-bit hint, id 6-255 uses hint 6 plus one escape byte, id
// 256-65535 uses hint 7 plus two little-endian escape bytes.
func (w *Writer) WriteFieldHeader(id uint16, typ Type) error {
	switch {
	case id <= 5:
		return w.buf.WriteByte(byte(id)<<5 | byte(typ))
	case id <= 0xFF:
		if err := w.buf.WriteByte(6<<5 | byte(typ)); err != nil {
			return err
		}
		return w.buf.WriteByte(byte(id))
	default:
		if err := w.buf.WriteByte(7<<5 | byte(typ)); err != nil {
			return err
		}
		return w.buf.Write([]byte{byte(id), byte(id >> 8)})
	}
}

func (w *Writer) writeVarint64(value uint64) error {
	var tmp [wire.MaxVarint64Bytes]byte
	n := wire.PutVarint64(tmp[:], value)
	return w.buf.Write(tmp[:n])
}

// WriteBoolValue emits a bare bool value (1 byte: 0 = false, 1 = true).
func (w *Writer) WriteBoolValue(value bool) error {
	if value {
		return w.buf.WriteByte(1)
	}
	return w.buf.WriteByte(0)
}

// WriteBool emits a field header then a bool value.
func (w *Writer) WriteBool(id uint16, value bool) error {
	if err := w.WriteFieldHeader(id, TypeBool); err != nil {
		return err
	}
	return w.WriteBoolValue(value)
}

// WriteUint8Value emits a bare uint8 value (1 raw byte).
func (w *Writer) WriteUint8Value(value uint8) error {
	return w.buf.WriteByte(value)
}

// WriteUint8 emits a field header then a uint8 value.
func (w *Writer) WriteUint8(id uint16, value uint8) error {
	if err := w.WriteFieldHeader(id, TypeUint8); err != nil {
		return err
	}
	return w.WriteUint8Value(value)
}

// WriteInt8Value emits a bare int8 value (1 raw two's-complement byte).
func (w *Writer) WriteInt8Value(value int8) error {
	return w.buf.WriteByte(byte(value))
}

// WriteInt8 emits a field header then an int8 value.
func (w *Writer) WriteInt8(id uint16, value int8) error {
	if err := w.WriteFieldHeader(id, TypeInt8); err != nil {
		return err
	}
	return w.WriteInt8Value(value)
}

// WriteUint16Value emits a bare uint16 value as an unsigned varint.
func (w *Writer) WriteUint16Value(value uint16) error {
	return w.writeVarint64(uint64(value))
}

// WriteUint16 emits a field header then a uint16 value.
func (w *Writer) WriteUint16(id uint16, value uint16) error {
	if err := w.WriteFieldHeader(id, TypeUint16); err != nil {
		return err
	}
	return w.WriteUint16Value(value)
}

// WriteUint32Value emits a bare uint32 value as an unsigned varint.
func (w *Writer) WriteUint32Value(value uint32) error {
	return w.writeVarint64(uint64(value))
}

// WriteUint32 emits a field header then a uint32 value.
func (w *Writer) WriteUint32(id uint16, value uint32) error {
	if err := w.WriteFieldHeader(id, TypeUint32); err != nil {
		return err
	}
	return w.WriteUint32Value(value)
}

// WriteUint64Value emits a bare uint64 value as an unsigned varint.
func (w *Writer) WriteUint64Value(value uint64) error {
	return w.writeVarint64(value)
}

// WriteUint64 emits a field header then a uint64 value.
func (w *Writer) WriteUint64(id uint16, value uint64) error {
	if err := w.WriteFieldHeader(id, TypeUint64); err != nil {
		return err
	}
	return w.WriteUint64Value(value)
}

// WriteInt16Value emits a bare int16 value: zigzag, then varint.
func (w *Writer) WriteInt16Value(value int16) error {
	return w.writeVarint64(uint64(wire.ZigzagEncode16(value)))
}

// WriteInt16 emits a field header then an int16 value.
func (w *Writer) WriteInt16(id uint16, value int16) error {
	if err := w.WriteFieldHeader(id, TypeInt16); err != nil {
		return err
	}
	return w.WriteInt16Value(value)
}

// WriteInt32Value emits a bare int32 value: zigzag, then varint.
func (w *Writer) WriteInt32Value(value int32) error {
	return w.writeVarint64(uint64(wire.ZigzagEncode32(value)))
}

// WriteInt32 emits a field header then an int32 value.
func (w *Writer) WriteInt32(id uint16, value int32) error {
	if err := w.WriteFieldHeader(id, TypeInt32); err != nil {
		return err
	}
	return w.WriteInt32Value(value)
}

// WriteInt64Value emits a bare int64 value: zigzag, then varint.
func (w *Writer) WriteInt64Value(value int64) error {
	return w.writeVarint64(wire.ZigzagEncode64(value))
}

// WriteInt64 emits a field header then an int64 value.
func (w *Writer) WriteInt64(id uint16, value int64) error {
	if err := w.WriteFieldHeader(id, TypeInt64); err != nil {
		return err
	}
	return w.WriteInt64Value(value)
}

// WriteFloatValue emits a bare float value (4 bytes little-endian).
func (w *Writer) WriteFloatValue(value float32) error {
	var tmp [4]byte
	wire.PutFloat32(tmp[:], value)
	return w.buf.Write(tmp[:])
}

// WriteFloat emits a field header then a float value.
func (w *Writer) WriteFloat(id uint16, value float32) error {
	if err := w.WriteFieldHeader(id, TypeFloat); err != nil {
		return err
	}
	return w.WriteFloatValue(value)
}

// WriteDoubleValue emits a bare double value (8 bytes little-endian).
func (w *Writer) WriteDoubleValue(value float64) error {
	var tmp [8]byte
	wire.PutFloat64(tmp[:], value)
	return w.buf.Write(tmp[:])
}

// WriteDouble emits a field header then a double value.
func (w *Writer) WriteDouble(id uint16, value float64) error {
	if err := w.WriteFieldHeader(id, TypeDouble); err != nil {
		return err
	}
	return w.WriteDoubleValue(value)
}

// WriteStringValue emits a bare string value: a UINT32-varint byte
// length, then the raw bytes. No null terminator; an empty string
// encodes as a single 0x00 length byte.
func (w *Writer) WriteStringValue(s string) error {
	if err := w.writeVarint64(uint64(len(s))); err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}
	return w.buf.Write([]byte(s))
}

// WriteString emits a field header then a string value.
func (w *Writer) WriteString(id uint16, s string) error {
	if err := w.WriteFieldHeader(id, TypeString); err != nil {
		return err
	}
	return w.WriteStringValue(s)
}

// WriteListBegin emits a LIST field header, the element type byte, and
// the UINT32-varint count. The caller must then emit exactly count
// values via the element type's _Value writer; there is no end marker.
func (w *Writer) WriteListBegin(id uint16, elementType Type, count uint32) error {
	if err := w.WriteFieldHeader(id, TypeList); err != nil {
		return err
	}
	if err := w.buf.WriteByte(byte(elementType)); err != nil {
		return err
	}
	return w.writeVarint64(uint64(count))
}

// WriteSetBegin emits a SET field header with identical framing to
// WriteListBegin.
func (w *Writer) WriteSetBegin(id uint16, elementType Type, count uint32) error {
	if err := w.WriteFieldHeader(id, TypeSet); err != nil {
		return err
	}
	if err := w.buf.WriteByte(byte(elementType)); err != nil {
		return err
	}
	return w.writeVarint64(uint64(count))
}

// WriteMapBegin emits a MAP field header, key type byte, value type
// byte, and the UINT32-varint count. The caller must then emit exactly
// count (key, value) pairs using the respective _Value writers.
func (w *Writer) WriteMapBegin(id uint16, keyType, valueType Type, count uint32) error {
	if err := w.WriteFieldHeader(id, TypeMap); err != nil {
		return err
	}
	if err := w.buf.WriteByte(byte(keyType)); err != nil {
		return err
	}
	if err := w.buf.WriteByte(byte(valueType)); err != nil {
		return err
	}
	return w.writeVarint64(uint64(count))
}
