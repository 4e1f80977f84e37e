package base64

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultLineLength is the wrap width used when the caller does
// not choose one.
const DefaultLineLength = 76

// ErrLineLength is returned when a line length is negative or
// cannot be parsed.
var ErrLineLength = errors.New("base64: invalid line length")

// EncodeConfig controls the layout of encoded output.
type EncodeConfig struct {
	// LineLength is the number of symbols on each output line.
	// Zero disables wrapping. Negative values are treated as
	// zero; use NewEncodeConfig to reject them instead.
	LineLength int
}

// DefaultEncodeConfig returns an EncodeConfig that wraps lines at
// DefaultLineLength symbols.
func DefaultEncodeConfig() EncodeConfig {
	return EncodeConfig{LineLength: DefaultLineLength}
}

// NewEncodeConfig returns an EncodeConfig that wraps lines after n
// symbols, or not at all if n is zero.
func NewEncodeConfig(n int) (EncodeConfig, error) {
	if n < 0 {
		return EncodeConfig{}, fmt.Errorf("%w: %d", ErrLineLength, n)
	}
	return EncodeConfig{LineLength: n}, nil
}

// ParseLineLength parses the decimal line length s.
//
// An empty s selects DefaultLineLength and "0" disables wrapping.
func ParseLineLength(s string) (EncodeConfig, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultEncodeConfig(), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return EncodeConfig{}, fmt.Errorf("%w: %q", ErrLineLength, s)
	}
	return NewEncodeConfig(n)
}

// width returns the wrap width, or zero if wrapping is disabled.
func (c EncodeConfig) width() int {
	if c.LineLength > 0 {
		return c.LineLength
	}
	return 0
}

// EncodedLen returns the size in bytes of the encoding of n
// source bytes, including line breaks and the final newline.
func EncodedLen(n int, cfg EncodeConfig) int {
	if n == 0 {
		return 0
	}
	size := (n + 2) / 3 * 4
	if w := cfg.width(); w > 0 {
		size += (size - 1) / w
	}
	return size + 1
}

// Encode returns the Base64 encoding of src laid out according to
// cfg.
//
// Every non-empty encoding ends with exactly one '\n'. Encoding an
// empty src returns an empty result: there is no line to
// terminate, which matches GNU base64.
func Encode(src []byte, cfg EncodeConfig) []byte {
	dst := make([]byte, EncodedLen(len(src), cfg))
	if len(src) == 0 {
		return dst
	}
	w := lineWriter{dst: dst, width: cfg.width()}
	encode(&w, src)
	w.dst[w.n] = '\n'
	return dst
}

// EncodeToString is like Encode but returns a string.
func EncodeToString(src []byte, cfg EncodeConfig) string {
	return string(Encode(src, cfg))
}

// lineWriter places symbols into dst, breaking lines every width
// symbols.
type lineWriter struct {
	dst   []byte
	n     int // bytes written
	col   int // symbols on the current line
	width int // zero disables wrapping
}

func (w *lineWriter) put(c byte) {
	if w.width > 0 && w.col == w.width {
		w.dst[w.n] = '\n'
		w.n++
		w.col = 0
	}
	w.dst[w.n] = c
	w.n++
	w.col++
}

func encode(w *lineWriter, src []byte) {
	// Convert 3 -> 4.
	for len(src) >= 3 {
		v := uint(src[0])<<16 | uint(src[1])<<8 | uint(src[2])
		w.put(lookup(v >> 18 & 0x3f))
		w.put(lookup(v >> 12 & 0x3f))
		w.put(lookup(v >> 6 & 0x3f))
		w.put(lookup(v & 0x3f))
		src = src[3:]
	}

	switch len(src) {
	case 2:
		v := uint(src[0])<<16 | uint(src[1])<<8
		w.put(lookup(v >> 18 & 0x3f))
		w.put(lookup(v >> 12 & 0x3f))
		w.put(lookup(v >> 6 & 0x3f))
		w.put(Padding)
	case 1:
		v := uint(src[0]) << 16
		w.put(lookup(v >> 18 & 0x3f))
		w.put(lookup(v >> 12 & 0x3f))
		w.put(Padding)
		w.put(Padding)
	}
}
