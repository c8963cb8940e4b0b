// Package endian provides the byte order engine used by binit's wire format.
//
// The EndianEngine interface combines encoding/binary's ByteOrder and
// AppendByteOrder so the writer can append fixed-width values directly onto
// its buffer and the reader can decode them in place:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint32(buf, 42)
//	v := engine.Uint32(buf[:4])
//
// The binit wire format is always little-endian. GetBigEndianEngine exists
// for callers that frame binit payloads inside big-endian envelopes of their own.
//
// # Thread Safety
//
// The returned engines are immutable and stateless, and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
