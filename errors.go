package binit

import (
	"errors"
	"fmt"

	"github.com/arloliu/binit/format"
)

var (
	// ErrTruncatedInput reports fewer remaining bytes than the read needs.
	ErrTruncatedInput = errors.New("binit: truncated input")
	// ErrInvalidUTF8 reports a string payload that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("binit: invalid UTF-8 text")
	// ErrInvalidBool reports a boolean byte other than 0 or 1.
	ErrInvalidBool = errors.New("binit: invalid boolean encoding")
	// ErrLengthLimit reports a length prefix above the reader's configured maximum.
	ErrLengthLimit = errors.New("binit: length exceeds limit")
)

// DecodeError describes a failed read.
//
// Need and Have depend on the cause:
//   - ErrTruncatedInput: bytes required and bytes remaining
//   - ErrLengthLimit: declared length and configured limit
//   - ErrInvalidUTF8: declared byte length of the text, Have is unused
//   - ErrInvalidBool: Have holds the offending byte value
type DecodeError struct {
	Kind   format.Kind // Kind is the value kind being decoded.
	Offset int         // Offset is where the failing element starts.
	Need   int
	Have   int
	Err    error
}

func (e *DecodeError) Error() string {
	switch e.Err {
	case ErrTruncatedInput:
		return fmt.Sprintf("%v: reading %s at offset %d: need %d bytes, have %d",
			e.Err, e.Kind, e.Offset, e.Need, e.Have)
	case ErrLengthLimit:
		return fmt.Sprintf("%v: reading %s at offset %d: length %d, limit %d",
			e.Err, e.Kind, e.Offset, e.Need, e.Have)
	case ErrInvalidUTF8:
		return fmt.Sprintf("%v: reading %s at offset %d: %d bytes",
			e.Err, e.Kind, e.Offset, e.Need)
	case ErrInvalidBool:
		return fmt.Sprintf("%v: reading %s at offset %d: byte 0x%02x",
			e.Err, e.Kind, e.Offset, e.Have)
	default:
		return fmt.Sprintf("binit: reading %s at offset %d: %v", e.Kind, e.Offset, e.Err)
	}
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
