package base64

import (
	"errors"
	"fmt"
)

// The kinds of DecodeError.
var (
	// ErrInvalidLength means the number of symbols cannot form
	// complete groups.
	ErrInvalidLength = errors.New("base64: invalid input length")
	// ErrInvalidSymbol means a byte outside the alphabet was
	// found where one is not permitted.
	ErrInvalidSymbol = errors.New("base64: invalid symbol")
	// ErrMalformedPadding means padding was found somewhere other
	// than the end of the final group, or more than two padding
	// symbols were found.
	ErrMalformedPadding = errors.New("base64: malformed padding")
)

// DecodeError describes why Decode rejected its input.
//
// It matches its Kind with errors.Is.
type DecodeError struct {
	// Kind is ErrInvalidLength, ErrInvalidSymbol, or
	// ErrMalformedPadding.
	Kind error
	// Offset is the index in the caller's input of the offending
	// byte. It is unused for ErrInvalidLength.
	Offset int
	// Byte is the offending byte for ErrInvalidSymbol.
	Byte byte
	// Symbols is the number of symbols counted for
	// ErrInvalidLength.
	Symbols int
}

var _ error = (*DecodeError)(nil)

func (e *DecodeError) Error() string {
	switch e.Kind {
	case ErrInvalidLength:
		return fmt.Sprintf("%v: %d symbols", e.Kind, e.Symbols)
	case ErrInvalidSymbol:
		return fmt.Sprintf("%v %q at offset %d", e.Kind, e.Byte, e.Offset)
	default:
		return fmt.Sprintf("%v at offset %d", e.Kind, e.Offset)
	}
}

func (e *DecodeError) Unwrap() error {
	return e.Kind
}
