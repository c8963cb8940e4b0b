package binit

import (
	"fmt"

	"github.com/arloliu/binit/internal/options"
)

// WriterConfig holds Writer settings assembled from WriterOptions.
type WriterConfig struct {
	initialCapacity int
}

func (c *WriterConfig) setInitialCapacity(n int) error {
	if n < 0 {
		return fmt.Errorf("invalid initial capacity: %d", n)
	}
	c.initialCapacity = n

	return nil
}

// WriterOption is a functional option for configuring a Writer.
type WriterOption = options.Option[*WriterConfig]

// WithInitialCapacity pre-grows the writer's buffer to hold at least n bytes.
//
// Use it when the encoded size is known up front to avoid regrowth while writing.
func WithInitialCapacity(n int) WriterOption {
	return options.New(func(c *WriterConfig) error {
		return c.setInitialCapacity(n)
	})
}

// ReaderConfig holds Reader settings assembled from ReaderOptions.
type ReaderConfig struct {
	maxCollectionLength int
}

func (c *ReaderConfig) setMaxCollectionLength(n int) error {
	if n < 0 {
		return fmt.Errorf("invalid max collection length: %d", n)
	}
	c.maxCollectionLength = n

	return nil
}

// ReaderOption is a functional option for configuring a Reader.
type ReaderOption = options.Option[*ReaderConfig]

// WithMaxCollectionLength bounds the length prefix of strings, byte slices and
// sequences. A prefix above n fails with ErrLengthLimit before any payload is
// read. Zero, the default, disables the check.
func WithMaxCollectionLength(n int) ReaderOption {
	return options.New(func(c *ReaderConfig) error {
		return c.setMaxCollectionLength(n)
	})
}
