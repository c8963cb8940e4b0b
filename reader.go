package binit

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/arloliu/binit/endian"
	"github.com/arloliu/binit/format"
	"github.com/arloliu/binit/internal/options"
)

// Reader decodes values written by Writer from a borrowed byte slice.
//
// The reader keeps a cursor into data and advances it by exactly the bytes
// each successful read consumes. A failed read returns a *DecodeError and
// leaves the cursor where it was, so the reader stays usable and a retry at
// the same offset is well-defined.
//
// The reader never modifies data, but it does not copy it either: the
// caller must keep data unchanged for as long as the reader is in use.
type Reader struct {
	data   []byte
	off    int
	engine endian.EndianEngine
	maxLen int
}

// NewReader creates a Reader positioned at the start of data.
//
// Parameters:
//   - data: Encoded bytes, borrowed for the reader's lifetime
//   - opts: Optional configuration (collection length limit)
//
// Returns:
//   - *Reader: A reader at offset 0
//   - error: Invalid option
func NewReader(data []byte, opts ...ReaderOption) (*Reader, error) {
	cfg := &ReaderConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Reader{
		data:   data,
		engine: endian.GetLittleEndianEngine(),
		maxLen: cfg.maxCollectionLength,
	}, nil
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.off
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.data) - r.off
}

// Size returns the total length of the underlying data.
func (r *Reader) Size() int {
	return len(r.data)
}

// Exhausted reports whether every byte has been consumed.
func (r *Reader) Exhausted() bool {
	return r.off == len(r.data)
}

// Reset rewinds the cursor to the start of the data.
func (r *Reader) Reset() {
	r.off = 0
}

// Skip advances the cursor by n bytes without decoding them.
func (r *Reader) Skip(n int) error {
	if n < 0 {
		return fmt.Errorf("binit: negative skip length %d", n)
	}
	if _, err := r.take(format.KindBytes, n); err != nil {
		return err
	}

	return nil
}

// ReadUint8 reads a single byte.
func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.take(format.KindUint8, 1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// ReadInt8 reads a single byte as a two's-complement int8.
func (r *Reader) ReadInt8() (int8, error) {
	b, err := r.take(format.KindInt8, 1)
	if err != nil {
		return 0, err
	}

	return int8(b[0]), nil //nolint:gosec
}

// ReadUint16 reads 2 little-endian bytes.
func (r *Reader) ReadUint16() (uint16, error) {
	return r.readUint16(format.KindUint16)
}

// ReadInt16 reads 2 little-endian bytes as a two's-complement int16.
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.readUint16(format.KindInt16)
	return int16(v), err //nolint:gosec
}

// ReadUint32 reads 4 little-endian bytes.
func (r *Reader) ReadUint32() (uint32, error) {
	return r.readUint32(format.KindUint32)
}

// ReadInt32 reads 4 little-endian bytes as a two's-complement int32.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.readUint32(format.KindInt32)
	return int32(v), err //nolint:gosec
}

// ReadUint64 reads 8 little-endian bytes.
func (r *Reader) ReadUint64() (uint64, error) {
	return r.readUint64(format.KindUint64)
}

// ReadInt64 reads 8 little-endian bytes as a two's-complement int64.
func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.readUint64(format.KindInt64)
	return int64(v), err //nolint:gosec
}

// ReadFloat32 reads 4 little-endian bytes as IEEE-754 bits.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.readUint32(format.KindFloat32)
	return math.Float32frombits(v), err
}

// ReadFloat64 reads 8 little-endian bytes as IEEE-754 bits.
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.readUint64(format.KindFloat64)
	return math.Float64frombits(v), err
}

// ReadBool reads a single byte: 0x00 is false, 0x01 is true.
// Any other value fails with ErrInvalidBool.
func (r *Reader) ReadBool() (bool, error) {
	if err := r.ensure(format.KindBool, 1); err != nil {
		return false, err
	}

	switch b := r.data[r.off]; b {
	case 0:
		r.off++
		return false, nil
	case 1:
		r.off++
		return true, nil
	default:
		return false, &DecodeError{
			Kind:   format.KindBool,
			Offset: r.off,
			Need:   1,
			Have:   int(b),
			Err:    ErrInvalidBool,
		}
	}
}

// ReadString reads a u32 byte length followed by that many UTF-8 bytes.
//
// The payload is copied out of the source. Invalid UTF-8 fails with
// ErrInvalidUTF8 and, like every other failure, leaves the cursor before
// the length prefix.
func (r *Reader) ReadString() (string, error) {
	start := r.off

	b, err := r.readPrefixed(format.KindString)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(b) {
		r.off = start

		return "", &DecodeError{
			Kind:   format.KindString,
			Offset: start,
			Need:   len(b),
			Err:    ErrInvalidUTF8,
		}
	}

	return string(b), nil
}

// ReadBytes reads a u32 count followed by that many raw bytes and returns a copy.
func (r *Reader) ReadBytes() ([]byte, error) {
	b, err := r.readPrefixed(format.KindBytes)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(b))
	copy(out, b)

	return out, nil
}

// ReadBytesView is ReadBytes without the copy.
//
// The returned slice aliases the reader's source and has its capacity
// clipped to its length, so appending to it never touches the source.
func (r *Reader) ReadBytesView() ([]byte, error) {
	return r.readPrefixed(format.KindBytes)
}

// ReadInt8Slice reads a u32 count followed by that many int8 values.
func (r *Reader) ReadInt8Slice() ([]int8, error) {
	return readSlice(r, format.KindInt8, r.ReadInt8)
}

// ReadUint16Slice reads a u32 count followed by that many uint16 values.
func (r *Reader) ReadUint16Slice() ([]uint16, error) {
	return readSlice(r, format.KindUint16, r.ReadUint16)
}

// ReadInt16Slice reads a u32 count followed by that many int16 values.
func (r *Reader) ReadInt16Slice() ([]int16, error) {
	return readSlice(r, format.KindInt16, r.ReadInt16)
}

// ReadUint32Slice reads a u32 count followed by that many uint32 values.
func (r *Reader) ReadUint32Slice() ([]uint32, error) {
	return readSlice(r, format.KindUint32, r.ReadUint32)
}

// ReadInt32Slice reads a u32 count followed by that many int32 values.
func (r *Reader) ReadInt32Slice() ([]int32, error) {
	return readSlice(r, format.KindInt32, r.ReadInt32)
}

// ReadUint64Slice reads a u32 count followed by that many uint64 values.
func (r *Reader) ReadUint64Slice() ([]uint64, error) {
	return readSlice(r, format.KindUint64, r.ReadUint64)
}

// ReadInt64Slice reads a u32 count followed by that many int64 values.
func (r *Reader) ReadInt64Slice() ([]int64, error) {
	return readSlice(r, format.KindInt64, r.ReadInt64)
}

// ReadFloat32Slice reads a u32 count followed by that many float32 values.
func (r *Reader) ReadFloat32Slice() ([]float32, error) {
	return readSlice(r, format.KindFloat32, r.ReadFloat32)
}

// ReadFloat64Slice reads a u32 count followed by that many float64 values.
func (r *Reader) ReadFloat64Slice() ([]float64, error) {
	return readSlice(r, format.KindFloat64, r.ReadFloat64)
}

// ReadBoolSlice reads a u32 count followed by that many bool values.
func (r *Reader) ReadBoolSlice() ([]bool, error) {
	return readSlice(r, format.KindBool, r.ReadBool)
}

// ReadStringSlice reads a u32 count followed by that many length-prefixed strings.
func (r *Reader) ReadStringSlice() ([]string, error) {
	return readSlice(r, format.KindString, r.ReadString)
}

// readSlice decodes a counted sequence, one element at a time.
//
// A count larger than the data can hold is not rejected up front: the
// element that runs out of bytes reports the truncation. On any element
// error the cursor rewinds to the start of the count prefix.
func readSlice[T any](r *Reader, elem format.Kind, read func() (T, error)) ([]T, error) {
	start := r.off

	count, err := r.readLength(format.KindSequence)
	if err != nil {
		return nil, err
	}

	// Never preallocate more elements than the remaining bytes could hold.
	hint := uint64(r.Len()) / uint64(elem.Size())
	if uint64(count) < hint {
		hint = uint64(count)
	}
	out := make([]T, 0, int(hint)) //nolint:gosec

	for i := uint32(0); i < count; i++ {
		v, err := read()
		if err != nil {
			r.off = start
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// readPrefixed reads a u32 length and returns a view of that many bytes.
func (r *Reader) readPrefixed(kind format.Kind) ([]byte, error) {
	start := r.off

	n, err := r.readLength(kind)
	if err != nil {
		return nil, err
	}

	if uint64(n) > uint64(r.Len()) {
		r.off = start
		return nil, &DecodeError{
			Kind:   kind,
			Offset: r.off,
			Need:   format.LengthPrefixSize + int(n),
			Have:   r.Len(),
			Err:    ErrTruncatedInput,
		}
	}

	b, _ := r.take(kind, int(n))

	return b, nil
}

// readLength reads a u32 length prefix and applies the configured limit.
func (r *Reader) readLength(kind format.Kind) (uint32, error) {
	if err := r.ensure(kind, format.LengthPrefixSize); err != nil {
		return 0, err
	}

	n := r.engine.Uint32(r.data[r.off:])
	if r.maxLen > 0 && uint64(n) > uint64(r.maxLen) {
		return 0, &DecodeError{
			Kind:   kind,
			Offset: r.off,
			Need:   int(n),
			Have:   r.maxLen,
			Err:    ErrLengthLimit,
		}
	}
	r.off += format.LengthPrefixSize

	return n, nil
}

func (r *Reader) readUint16(kind format.Kind) (uint16, error) {
	b, err := r.take(kind, 2)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint16(b), nil
}

func (r *Reader) readUint32(kind format.Kind) (uint32, error) {
	b, err := r.take(kind, 4)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint32(b), nil
}

func (r *Reader) readUint64(kind format.Kind) (uint64, error) {
	b, err := r.take(kind, 8)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint64(b), nil
}

// take returns the next n bytes and advances past them.
func (r *Reader) take(kind format.Kind, n int) ([]byte, error) {
	if err := r.ensure(kind, n); err != nil {
		return nil, err
	}

	end := r.off + n
	b := r.data[r.off:end:end]
	r.off = end

	return b, nil
}

// ensure checks that n bytes remain without moving the cursor.
func (r *Reader) ensure(kind format.Kind, n int) error {
	if n > r.Len() {
		return &DecodeError{
			Kind:   kind,
			Offset: r.off,
			Need:   n,
			Have:   r.Len(),
			Err:    ErrTruncatedInput,
		}
	}

	return nil
}
