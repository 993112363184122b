// Package compact implements the Bond CompactBinary v1 wire format: a
// schema-less, field-tagged binary serialization with absolute field
// identifiers, LEB128 varints, and zigzag signed-integer mapping.
//
// # Overview
//
// Writer appends typed fields into a lib/buffer.Buffer. Reader walks an
// encoded byte sequence field-by-field, including a recursive Skip for
// forward-compatible handling of unknown fields. Writer and Reader never
// interact directly — an encoded Buffer is the only contract between
// them.
//
// # Key Features
//
//   - Bit-packed field headers (1-3 bytes) with a canonical shortest-form
//     writer and a tolerant reader (accepts any valid encoding of an id)
//   - LEB128 varints (via lib/wire) for 16/32/64-bit integer field values;
//     8-bit integers are single raw bytes
//   - Zero-copy string reads backed by the underlying Buffer
//   - Recursive Skip over structs, lists, sets, and maps for forward
//     compatibility
//
// # Dependencies
//
// lib/buffer for the byte store, lib/wire for varint/zigzag/float
// primitives. No third-party dependencies: the wire format is this
// package's entire job, and no ecosystem library offers a ready-made
// Bond CompactBinary framing layer to build on instead.
//
// # Scope
//
// Protocol version 1 (CompactBinary) only; little-endian hosts only; no
// schema description or IDL.
//
// # Thread Safety
//
// Writer and Reader are NOT thread-safe, and each binds exclusively to
// one Buffer for its lifetime. A Buffer must not be written and read
// concurrently.
package compact

// Type is the wire type code enumeration. Numeric values are part of the
// wire contract and must never change.
type Type uint8

const (
	TypeStop        Type = 0
	TypeStopBase    Type = 1
	TypeBool        Type = 2
	TypeUint8       Type = 3
	TypeUint16      Type = 4
	TypeUint32      Type = 5
	TypeUint64      Type = 6
	TypeFloat       Type = 7
	TypeDouble      Type = 8
	TypeString      Type = 9
	TypeStruct      Type = 10
	TypeList        Type = 11
	TypeSet         Type = 12
	TypeMap         Type = 13
	TypeInt8        Type = 14
	TypeInt16       Type = 15
	TypeInt32       Type = 16
	TypeInt64       Type = 17
	TypeWString     Type = 18
	TypeUnavailable Type = 127
)

// String names a Type for debugging/logging; unrecognized codes print as
// "UNKNOWN".
func (t Type) String() string {
	switch t {
	case TypeStop:
		return "STOP"
	case TypeStopBase:
		return "STOP_BASE"
	case TypeBool:
		return "BOOL"
	case TypeUint8:
		return "UINT8"
	case TypeUint16:
		return "UINT16"
	case TypeUint32:
		return "UINT32"
	case TypeUint64:
		return "UINT64"
	case TypeFloat:
		return "FLOAT"
	case TypeDouble:
		return "DOUBLE"
	case TypeString:
		return "STRING"
	case TypeStruct:
		return "STRUCT"
	case TypeList:
		return "LIST"
	case TypeSet:
		return "SET"
	case TypeMap:
		return "MAP"
	case TypeInt8:
		return "INT8"
	case TypeInt16:
		return "INT16"
	case TypeInt32:
		return "INT32"
	case TypeInt64:
		return "INT64"
	case TypeWString:
		return "WSTRING"
	case TypeUnavailable:
		return "UNAVAILABLE"
	default:
		return "UNKNOWN"
	}
}

// Protocol identifies a Bond wire protocol. The core implements Compact
// v1 only; the other codes are exposed for callers framing a marshaled
// envelope, which this package neither writes nor verifies.
type Protocol uint16

const (
	ProtocolMarshaled  Protocol = 0
	ProtocolFast       Protocol = 0x464D
	ProtocolCompact    Protocol = 0x4243
	ProtocolSimpleJSON Protocol = 0x4A53
	ProtocolSimple     Protocol = 0x5053
)

// ProtocolVersion is the only protocol version this package implements.
const ProtocolVersion = 1

// ListSubType distinguishes nullable/blob list encodings at the schema
// layer the original Bond IDL sits on top of. The wire bytes for LIST are
// identical regardless of subtype; this core never reads or writes a
// subtype marker itself. Exposed for callers building schema-aware
// layers on top of this codec.
type ListSubType uint8

const (
	ListSubTypeNone     ListSubType = 0
	ListSubTypeNullable ListSubType = 1
	ListSubTypeBlob     ListSubType = 2
)
