package binit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestWriter(t *testing.T, opts ...WriterOption) *Writer {
	t.Helper()

	w, err := NewWriter(opts...)
	require.NoError(t, err)
	t.Cleanup(w.Release)

	return w
}

func TestNewWriter(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		w := newTestWriter(t)
		require.Equal(t, 0, w.Len())
		require.Empty(t, w.Bytes())
	})

	t.Run("initial capacity", func(t *testing.T) {
		w := newTestWriter(t, WithInitialCapacity(100_000))
		require.GreaterOrEqual(t, w.buf.Cap(), 100_000)
		require.Equal(t, 0, w.Len())
	})

	t.Run("negative capacity", func(t *testing.T) {
		w, err := NewWriter(WithInitialCapacity(-1))
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid initial capacity")
		require.Nil(t, w)
	})
}

func TestWriter_FixedWidth(t *testing.T) {
	tests := []struct {
		name     string
		write    func(w *Writer)
		expected []byte
	}{
		{"uint8", func(w *Writer) { w.WriteUint8(0xAB) }, []byte{0xAB}},
		{"int8 min", func(w *Writer) { w.WriteInt8(-128) }, []byte{0x80}},
		{"int8 -1", func(w *Writer) { w.WriteInt8(-1) }, []byte{0xFF}},
		{"uint16", func(w *Writer) { w.WriteUint16(0x0102) }, []byte{0x02, 0x01}},
		{"int16 min", func(w *Writer) { w.WriteInt16(math.MinInt16) }, []byte{0x00, 0x80}},
		{"uint32", func(w *Writer) { w.WriteUint32(0x01020304) }, []byte{0x04, 0x03, 0x02, 0x01}},
		{"int32 -2", func(w *Writer) { w.WriteInt32(-2) }, []byte{0xFE, 0xFF, 0xFF, 0xFF}},
		{
			"uint64", func(w *Writer) { w.WriteUint64(0x0102030405060708) },
			[]byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01},
		},
		{
			"int64 min", func(w *Writer) { w.WriteInt64(math.MinInt64) },
			[]byte{0, 0, 0, 0, 0, 0, 0, 0x80},
		},
		{"float32 one", func(w *Writer) { w.WriteFloat32(1.0) }, []byte{0x00, 0x00, 0x80, 0x3F}},
		{
			"float64 one", func(w *Writer) { w.WriteFloat64(1.0) },
			[]byte{0, 0, 0, 0, 0, 0, 0xF0, 0x3F},
		},
		{
			"float64 negative zero", func(w *Writer) { w.WriteFloat64(math.Copysign(0, -1)) },
			[]byte{0, 0, 0, 0, 0, 0, 0, 0x80},
		},
		{"bool true", func(w *Writer) { w.WriteBool(true) }, []byte{0x01}},
		{"bool false", func(w *Writer) { w.WriteBool(false) }, []byte{0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWriter(t)
			tt.write(w)
			require.Equal(t, tt.expected, w.Bytes())
			require.Equal(t, len(tt.expected), w.Len())
		})
	}
}

func TestWriter_WriteString(t *testing.T) {
	t.Run("ascii", func(t *testing.T) {
		w := newTestWriter(t)
		w.WriteString("Hello, World!")

		data := w.Bytes()
		require.Len(t, data, 4+13)
		require.Equal(t, []byte{13, 0, 0, 0}, data[:4])
		require.Equal(t, "Hello, World!", string(data[4:]))
	})

	t.Run("empty", func(t *testing.T) {
		w := newTestWriter(t)
		w.WriteString("")
		require.Equal(t, []byte{0, 0, 0, 0}, w.Bytes())
	})

	t.Run("prefix counts bytes not code points", func(t *testing.T) {
		w := newTestWriter(t)
		w.WriteString("🚀✨")

		data := w.Bytes()
		require.Equal(t, []byte{7, 0, 0, 0}, data[:4])
		require.Equal(t, "🚀✨", string(data[4:]))
	})
}

func TestWriter_WriteBytes(t *testing.T) {
	w := newTestWriter(t)
	w.WriteBytes([]byte{1, 2, 3, 4, 5})
	w.WriteBytes(nil)

	require.Equal(t, []byte{5, 0, 0, 0, 1, 2, 3, 4, 5, 0, 0, 0, 0}, w.Bytes())
}

func TestWriter_Slices(t *testing.T) {
	tests := []struct {
		name     string
		write    func(w *Writer)
		expected []byte
	}{
		{
			"int16", func(w *Writer) { w.WriteInt16Slice([]int16{-1, -2, -3}) },
			[]byte{3, 0, 0, 0, 0xFF, 0xFF, 0xFE, 0xFF, 0xFD, 0xFF},
		},
		{
			"int8", func(w *Writer) { w.WriteInt8Slice([]int8{-1, 127}) },
			[]byte{2, 0, 0, 0, 0xFF, 0x7F},
		},
		{
			"uint16", func(w *Writer) { w.WriteUint16Slice([]uint16{0x0102}) },
			[]byte{1, 0, 0, 0, 0x02, 0x01},
		},
		{
			"uint32", func(w *Writer) { w.WriteUint32Slice([]uint32{1, 0xFFFFFFFF}) },
			[]byte{2, 0, 0, 0, 1, 0, 0, 0, 0xFF, 0xFF, 0xFF, 0xFF},
		},
		{
			"int32", func(w *Writer) { w.WriteInt32Slice([]int32{-1}) },
			[]byte{1, 0, 0, 0, 0xFF, 0xFF, 0xFF, 0xFF},
		},
		{
			"uint64", func(w *Writer) { w.WriteUint64Slice([]uint64{1}) },
			[]byte{1, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			"int64", func(w *Writer) { w.WriteInt64Slice([]int64{-1}) },
			[]byte{1, 0, 0, 0, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
		},
		{
			"float32", func(w *Writer) { w.WriteFloat32Slice([]float32{1.0}) },
			[]byte{1, 0, 0, 0, 0x00, 0x00, 0x80, 0x3F},
		},
		{
			"float64", func(w *Writer) { w.WriteFloat64Slice([]float64{1.0}) },
			[]byte{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0xF0, 0x3F},
		},
		{
			"bool", func(w *Writer) { w.WriteBoolSlice([]bool{true, false, true}) },
			[]byte{3, 0, 0, 0, 1, 0, 1},
		},
		{
			"string", func(w *Writer) { w.WriteStringSlice([]string{"ab", ""}) },
			[]byte{2, 0, 0, 0, 2, 0, 0, 0, 'a', 'b', 0, 0, 0, 0},
		},
		{
			"empty", func(w *Writer) { w.WriteFloat64Slice(nil) },
			[]byte{0, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWriter(t)
			tt.write(w)
			require.Equal(t, tt.expected, w.Bytes())
		})
	}
}

func TestWriter_AppendsInCallOrder(t *testing.T) {
	w := newTestWriter(t)

	w.WriteUint8(1)
	require.Equal(t, 1, w.Len())
	w.WriteUint32(2)
	require.Equal(t, 5, w.Len())
	w.WriteString("xy")
	require.Equal(t, 11, w.Len())
	w.WriteBool(true)

	require.Equal(t, []byte{1, 2, 0, 0, 0, 2, 0, 0, 0, 'x', 'y', 1}, w.Bytes())
}

func TestWriter_GrowsPastPooledCapacity(t *testing.T) {
	w := newTestWriter(t)

	values := make([]uint64, 10_000)
	for i := range values {
		values[i] = uint64(i)
	}
	w.WriteUint64Slice(values)

	require.Equal(t, 4+8*len(values), w.Len())
}

func TestWriter_Finish(t *testing.T) {
	w, err := NewWriter()
	require.NoError(t, err)

	w.WriteUint16(0xBEEF)
	data := w.Finish()

	require.Equal(t, []byte{0xEF, 0xBE}, data)
	require.Equal(t, len(data), cap(data), "Finish should return an exact-size copy")

	require.Panics(t, func() { w.WriteUint8(1) })
	require.Panics(t, func() { _ = w.Bytes() })
	require.Panics(t, func() { _ = w.Finish() })
	require.NotPanics(t, w.Release)
}

func TestWriter_Release(t *testing.T) {
	w, err := NewWriter()
	require.NoError(t, err)

	w.WriteString("discarded")
	w.Release()
	w.Release()

	require.Panics(t, func() { w.WriteString("again") })
}

func TestWriter_Reset(t *testing.T) {
	w := newTestWriter(t)

	w.WriteString("first")
	w.Reset()
	require.Equal(t, 0, w.Len())

	w.WriteUint8(7)
	require.Equal(t, []byte{7}, w.Bytes())
}

func TestWriter_Checksum(t *testing.T) {
	w := newTestWriter(t)
	empty := w.Checksum()

	w.WriteString("Hello, World!")
	w.WriteInt64Slice([]int64{1, -1})
	sum := w.Checksum()

	require.NotEqual(t, empty, sum)
	require.Equal(t, sum, w.Checksum(), "checksum should be stable")
	require.Equal(t, sum, Checksum(w.Bytes()))

	data := w.Finish()
	require.Equal(t, sum, Checksum(data))
}

func BenchmarkWriter_Primitives(b *testing.B) {
	for b.Loop() {
		w, _ := NewWriter()
		w.WriteUint32(42)
		w.WriteInt64(-42)
		w.WriteFloat64(math.Pi)
		w.WriteBool(true)
		w.WriteString("Hello, World!")
		w.Release()
	}
}

func BenchmarkWriter_Float64Slice(b *testing.B) {
	values := make([]float64, 1024)
	for i := range values {
		values[i] = float64(i) * 0.5
	}

	for b.Loop() {
		w, _ := NewWriter()
		w.WriteFloat64Slice(values)
		w.Release()
	}
}
