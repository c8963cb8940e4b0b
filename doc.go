// Package binit provides a compact binary writer and reader for flat values.
//
// A Writer appends typed values to a growing byte buffer in a fixed
// little-endian wire format; a Reader walks a borrowed byte slice with a
// cursor and decodes the same values back, failing cleanly instead of reading
// past the end of its input.
//
// # Wire Format
//
//	u8 / i8                  1 byte
//	u16/i16, u32/i32, u64/i64 little-endian, 2 / 4 / 8 bytes
//	f32 / f64                little-endian IEEE-754 bits, 4 / 8 bytes
//	bool                     1 byte, 0x00 = false, 0x01 = true
//	string                   u32 byte length + UTF-8 bytes
//	sequence<T>              u32 element count + each element encoded as T
//
// There is no framing, versioning or schema: the reader must request the
// same kinds in the same order the writer produced them.
//
// # Basic Usage
//
// Writing:
//
//	w, _ := binit.NewWriter()
//	w.WriteUint32(42)
//	w.WriteString("Hello, World!")
//	w.WriteFloat64Slice([]float64{1.1, 2.2})
//	data := w.Finish()
//
// Reading:
//
//	r, _ := binit.NewReader(data)
//	n, err := r.ReadUint32()
//	if err != nil {
//	    return err
//	}
//	s, err := r.ReadString()
//	...
//
// # Errors
//
// Every failed read returns a *DecodeError wrapping one of ErrTruncatedInput,
// ErrInvalidUTF8, ErrInvalidBool or ErrLengthLimit, so callers can match with
// errors.Is. A failed read never moves the cursor: retrying at the same offset
// yields the same result, and sequence reads are all-or-nothing.
//
// # Thread Safety
//
// Writer and Reader are not safe for concurrent use. Independent readers over
// the same immutable slice may run in parallel. The source slice must not be
// modified while a Reader is using it.
package binit

import "github.com/arloliu/binit/internal/hash"

// Checksum returns the xxHash64 digest of an encoded buffer.
//
// It matches Writer.Checksum for the same bytes, so a receiver can verify a
// payload against a digest the sender transported out of band.
func Checksum(data []byte) uint64 {
	return hash.Sum64(data)
}
