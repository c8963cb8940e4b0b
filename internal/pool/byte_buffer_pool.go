package pool

import "sync"

const (
	WriterBufferDefaultSize  = 512       // WriterBufferDefaultSize is the capacity of a fresh writer buffer.
	WriterBufferMaxThreshold = 64 * 1024 // 64KiB; larger buffers are not returned to the pool
)

// ByteBuffer is an append-only byte slice with an amortized growth strategy.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// MustWriteString appends the bytes of s without an intermediate []byte conversion.
func (bb *ByteBuffer) MustWriteString(s string) {
	bb.B = append(bb.B, s...)
}

// MustWriteByte appends a single byte.
func (bb *ByteBuffer) MustWriteByte(b byte) {
	bb.B = append(bb.B, b)
}

// Grow ensures the buffer can hold requiredBytes more bytes without reallocating.
// If the buffer has sufficient capacity, Grow does nothing.
//
// The growth strategy is as follows:
//   - For small buffers, grow by WriterBufferDefaultSize to minimize reallocations.
//   - For larger buffers, grow by 25% of current capacity to balance memory usage and reallocation cost.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := WriterBufferDefaultSize
	if cap(bb.B) > 4*WriterBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// It uses sync.Pool internally. Buffers that grew beyond maxThreshold are
// dropped on Put instead of being retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
// A maxThreshold of zero keeps buffers of any size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var writerDefaultPool = NewByteBufferPool(WriterBufferDefaultSize, WriterBufferMaxThreshold)

// GetWriterBuffer retrieves a ByteBuffer from the default writer pool.
func GetWriterBuffer() *ByteBuffer {
	return writerDefaultPool.Get()
}

// PutWriterBuffer returns a ByteBuffer to the default writer pool.
func PutWriterBuffer(bb *ByteBuffer) {
	writerDefaultPool.Put(bb)
}
