package binit

import (
	"math"

	"github.com/arloliu/binit/endian"
	"github.com/arloliu/binit/format"
	"github.com/arloliu/binit/internal/hash"
	"github.com/arloliu/binit/internal/options"
	"github.com/arloliu/binit/internal/pool"
)

// Writer serializes values into a growing little-endian byte buffer.
//
// Every Write method appends immediately, in call order; none of them fail.
// Lengths of strings, byte slices and sequences are written as u32 prefixes:
// keeping them within 4GiB is the caller's responsibility.
//
// The buffer comes from a shared pool. Call Finish to take the encoded bytes,
// or Release to discard them; either one retires the writer and any further
// write panics.
type Writer struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
}

// NewWriter creates an empty Writer.
//
// Parameters:
//   - opts: Optional configuration (initial capacity)
//
// Returns:
//   - *Writer: A writer ready for appends
//   - error: Invalid option
func NewWriter(opts ...WriterOption) (*Writer, error) {
	cfg := &WriterConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	w := &Writer{
		buf:    pool.GetWriterBuffer(),
		engine: endian.GetLittleEndianEngine(),
	}
	w.buf.Grow(cfg.initialCapacity)

	return w, nil
}

// WriteUint8 appends a single byte.
func (w *Writer) WriteUint8(v uint8) {
	w.mustBuf().MustWriteByte(v)
}

// WriteInt8 appends the two's-complement bit pattern of v as a single byte.
func (w *Writer) WriteInt8(v int8) {
	w.mustBuf().MustWriteByte(byte(v))
}

// WriteUint16 appends v in 2 little-endian bytes.
func (w *Writer) WriteUint16(v uint16) {
	buf := w.mustBuf()
	buf.B = w.engine.AppendUint16(buf.B, v)
}

// WriteInt16 appends v in 2 little-endian bytes.
func (w *Writer) WriteInt16(v int16) {
	w.WriteUint16(uint16(v)) //nolint:gosec
}

// WriteUint32 appends v in 4 little-endian bytes.
func (w *Writer) WriteUint32(v uint32) {
	buf := w.mustBuf()
	buf.B = w.engine.AppendUint32(buf.B, v)
}

// WriteInt32 appends v in 4 little-endian bytes.
func (w *Writer) WriteInt32(v int32) {
	w.WriteUint32(uint32(v)) //nolint:gosec
}

// WriteUint64 appends v in 8 little-endian bytes.
func (w *Writer) WriteUint64(v uint64) {
	buf := w.mustBuf()
	buf.B = w.engine.AppendUint64(buf.B, v)
}

// WriteInt64 appends v in 8 little-endian bytes.
func (w *Writer) WriteInt64(v int64) {
	w.WriteUint64(uint64(v)) //nolint:gosec
}

// WriteFloat32 appends the IEEE-754 bits of v in 4 little-endian bytes.
// NaN payloads and the sign of zero are preserved.
func (w *Writer) WriteFloat32(v float32) {
	w.WriteUint32(math.Float32bits(v))
}

// WriteFloat64 appends the IEEE-754 bits of v in 8 little-endian bytes.
// NaN payloads and the sign of zero are preserved.
func (w *Writer) WriteFloat64(v float64) {
	w.WriteUint64(math.Float64bits(v))
}

// WriteBool appends 0x01 for true and 0x00 for false.
func (w *Writer) WriteBool(v bool) {
	w.mustBuf().MustWriteByte(boolByte(v))
}

// WriteString appends a u32 byte length followed by the UTF-8 bytes of s.
//
// The prefix counts bytes, not code points. s is written as given; the
// reader rejects invalid UTF-8.
func (w *Writer) WriteString(s string) {
	buf := w.mustBuf()
	buf.Grow(format.LengthPrefixSize + len(s))
	w.writeLength(len(s))
	buf.MustWriteString(s)
}

// WriteBytes appends a sequence of u8: a u32 count followed by the raw bytes.
func (w *Writer) WriteBytes(v []byte) {
	buf := w.mustBuf()
	buf.Grow(format.LengthPrefixSize + len(v))
	w.writeLength(len(v))
	buf.MustWrite(v)
}

// WriteInt8Slice appends a u32 count followed by one byte per element.
func (w *Writer) WriteInt8Slice(values []int8) {
	buf := w.beginSlice(len(values), format.KindInt8)
	for _, v := range values {
		buf.MustWriteByte(byte(v))
	}
}

// WriteUint16Slice appends a u32 count followed by each element in 2 bytes.
func (w *Writer) WriteUint16Slice(values []uint16) {
	buf := w.beginSlice(len(values), format.KindUint16)
	for _, v := range values {
		buf.B = w.engine.AppendUint16(buf.B, v)
	}
}

// WriteInt16Slice appends a u32 count followed by each element in 2 bytes.
func (w *Writer) WriteInt16Slice(values []int16) {
	buf := w.beginSlice(len(values), format.KindInt16)
	for _, v := range values {
		buf.B = w.engine.AppendUint16(buf.B, uint16(v)) //nolint:gosec
	}
}

// WriteUint32Slice appends a u32 count followed by each element in 4 bytes.
func (w *Writer) WriteUint32Slice(values []uint32) {
	buf := w.beginSlice(len(values), format.KindUint32)
	for _, v := range values {
		buf.B = w.engine.AppendUint32(buf.B, v)
	}
}

// WriteInt32Slice appends a u32 count followed by each element in 4 bytes.
func (w *Writer) WriteInt32Slice(values []int32) {
	buf := w.beginSlice(len(values), format.KindInt32)
	for _, v := range values {
		buf.B = w.engine.AppendUint32(buf.B, uint32(v)) //nolint:gosec
	}
}

// WriteUint64Slice appends a u32 count followed by each element in 8 bytes.
func (w *Writer) WriteUint64Slice(values []uint64) {
	buf := w.beginSlice(len(values), format.KindUint64)
	for _, v := range values {
		buf.B = w.engine.AppendUint64(buf.B, v)
	}
}

// WriteInt64Slice appends a u32 count followed by each element in 8 bytes.
func (w *Writer) WriteInt64Slice(values []int64) {
	buf := w.beginSlice(len(values), format.KindInt64)
	for _, v := range values {
		buf.B = w.engine.AppendUint64(buf.B, uint64(v)) //nolint:gosec
	}
}

// WriteFloat32Slice appends a u32 count followed by each element's bits in 4 bytes.
func (w *Writer) WriteFloat32Slice(values []float32) {
	buf := w.beginSlice(len(values), format.KindFloat32)
	for _, v := range values {
		buf.B = w.engine.AppendUint32(buf.B, math.Float32bits(v))
	}
}

// WriteFloat64Slice appends a u32 count followed by each element's bits in 8 bytes.
func (w *Writer) WriteFloat64Slice(values []float64) {
	buf := w.beginSlice(len(values), format.KindFloat64)
	for _, v := range values {
		buf.B = w.engine.AppendUint64(buf.B, math.Float64bits(v))
	}
}

// WriteBoolSlice appends a u32 count followed by one 0x00/0x01 byte per element.
func (w *Writer) WriteBoolSlice(values []bool) {
	buf := w.beginSlice(len(values), format.KindBool)
	for _, v := range values {
		buf.MustWriteByte(boolByte(v))
	}
}

// WriteStringSlice appends a u32 count followed by each string in the
// length-prefixed text encoding.
func (w *Writer) WriteStringSlice(values []string) {
	buf := w.mustBuf()

	totalSize := format.LengthPrefixSize
	for _, s := range values {
		totalSize += format.LengthPrefixSize + len(s)
	}
	buf.Grow(totalSize)

	w.writeLength(len(values))
	for _, s := range values {
		w.writeLength(len(s))
		buf.MustWriteString(s)
	}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.mustBuf().Len()
}

// Bytes returns a view of the bytes written so far.
//
// The returned slice shares the writer's buffer: it is valid until the next
// write, Reset, Finish or Release, and must not be modified.
func (w *Writer) Bytes() []byte {
	return w.mustBuf().Bytes()
}

// Checksum returns the xxHash64 digest of the bytes written so far.
func (w *Writer) Checksum() uint64 {
	return hash.Sum64(w.mustBuf().Bytes())
}

// Reset discards everything written so far and keeps the buffer for reuse.
func (w *Writer) Reset() {
	w.mustBuf().Reset()
}

// Finish returns the encoded bytes and retires the writer.
//
// The result is an exact-size copy owned by the caller; the internal buffer
// goes back to the pool. Any later call on the writer panics.
func (w *Writer) Finish() []byte {
	buf := w.mustBuf()

	out := make([]byte, buf.Len())
	copy(out, buf.B)
	w.Release()

	return out
}

// Release discards the encoded bytes and returns the buffer to the pool.
// It is safe to call more than once.
func (w *Writer) Release() {
	if w.buf != nil {
		pool.PutWriterBuffer(w.buf)
		w.buf = nil
	}
}

func (w *Writer) mustBuf() *pool.ByteBuffer {
	if w.buf == nil {
		panic("writer already finished - cannot use after Finish() or Release()")
	}

	return w.buf
}

func (w *Writer) writeLength(n int) {
	w.buf.B = w.engine.AppendUint32(w.buf.B, uint32(n)) //nolint:gosec
}

// beginSlice reserves room for a whole fixed-width sequence and writes its count.
func (w *Writer) beginSlice(count int, elem format.Kind) *pool.ByteBuffer {
	buf := w.mustBuf()
	buf.Grow(format.LengthPrefixSize + count*elem.Size())
	w.writeLength(count)

	return buf
}

func boolByte(v bool) byte {
	if v {
		return 1
	}

	return 0
}
