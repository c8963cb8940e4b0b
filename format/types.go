// Package format defines the wire kinds understood by binit and the fixed
// byte widths they occupy.
package format

// Kind identifies a value kind on the wire.
type Kind uint8

const (
	KindUint8   Kind = 0x1
	KindInt8    Kind = 0x2
	KindUint16  Kind = 0x3
	KindInt16   Kind = 0x4
	KindUint32  Kind = 0x5
	KindInt32   Kind = 0x6
	KindUint64  Kind = 0x7
	KindInt64   Kind = 0x8
	KindFloat32 Kind = 0x9
	KindFloat64 Kind = 0xA
	KindBool    Kind = 0xB
	KindString  Kind = 0xC // KindString is length-prefixed UTF-8 text.
	KindBytes   Kind = 0xD // KindBytes is a length-prefixed sequence of u8.

	// KindSequence marks the element-count prefix of a homogeneous sequence.
	KindSequence Kind = 0xE
)

// LengthPrefixSize is the width of the u32 prefix ahead of text, byte
// and sequence payloads.
const LengthPrefixSize = 4

// MaxLength is the largest count a length prefix can carry.
const MaxLength = 1<<32 - 1

// Size returns the fixed encoded width of k in bytes.
//
// Variable-length kinds report the width of their length prefix only.
func (k Kind) Size() int {
	switch k {
	case KindUint8, KindInt8, KindBool:
		return 1
	case KindUint16, KindInt16:
		return 2
	case KindUint32, KindInt32, KindFloat32:
		return 4
	case KindUint64, KindInt64, KindFloat64:
		return 8
	case KindString, KindBytes, KindSequence:
		return LengthPrefixSize
	default:
		return 0
	}
}

// Fixed reports whether k has a fixed width with no length prefix.
func (k Kind) Fixed() bool {
	switch k {
	case KindString, KindBytes, KindSequence:
		return false
	default:
		return k.Size() > 0
	}
}

func (k Kind) String() string {
	switch k {
	case KindUint8:
		return "Uint8"
	case KindInt8:
		return "Int8"
	case KindUint16:
		return "Uint16"
	case KindInt16:
		return "Int16"
	case KindUint32:
		return "Uint32"
	case KindInt32:
		return "Int32"
	case KindUint64:
		return "Uint64"
	case KindInt64:
		return "Int64"
	case KindFloat32:
		return "Float32"
	case KindFloat64:
		return "Float64"
	case KindBool:
		return "Bool"
	case KindString:
		return "String"
	case KindBytes:
		return "Bytes"
	case KindSequence:
		return "Sequence"
	default:
		return "Unknown"
	}
}
