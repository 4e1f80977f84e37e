package base64

import "bytes"

// DecodeConfig controls how tolerant Decode is of stray bytes.
type DecodeConfig struct {
	// IgnoreGarbage discards every byte outside Alphabet before
	// decoding. Padding and newlines are discarded too, so a
	// final group of two or three symbols is accepted without
	// padding.
	IgnoreGarbage bool
}

// DecodedLen returns the maximum length in bytes of the decoding
// of n bytes of Base64 text.
func DecodedLen(n int) int {
	return n / 4 * 3
}

// Decode returns the bytes represented by the Base64 text src.
//
// If IgnoreGarbage is false, src may contain the symbols of
// Alphabet, '\n' and '\r' anywhere, and up to two Padding symbols
// at the end of the final group. The number of symbols, including
// padding, must be a multiple of four.
//
// On failure Decode returns a nil slice and a *DecodeError.
func Decode(src []byte, cfg DecodeConfig) ([]byte, error) {
	if cfg.IgnoreGarbage {
		return decodeLenient(src)
	}
	return decodeStrict(src)
}

// DecodeString is like Decode but takes a string.
func DecodeString(s string, cfg DecodeConfig) ([]byte, error) {
	return Decode([]byte(s), cfg)
}

func decodeStrict(src []byte) ([]byte, error) {
	data := make([]byte, len(src))
	n := 0
	for i, c := range src {
		data[n] = c
		switch {
		case symbolMask(c) == 1, c == Padding:
			n++
		case newlineMask(c) == 1:
		default:
			return nil, &DecodeError{Kind: ErrInvalidSymbol, Offset: i, Byte: c}
		}
	}
	data = data[:n]

	if len(data)%4 != 0 {
		return nil, &DecodeError{Kind: ErrInvalidLength, Symbols: len(data)}
	}

	pad := 0
	for pad < len(data) && data[len(data)-1-pad] == Padding {
		pad++
	}
	if pad > 2 {
		return nil, &DecodeError{
			Kind:   ErrMalformedPadding,
			Offset: offsetOf(src, len(data)-pad),
		}
	}
	body := data[:len(data)-pad]
	if i := bytes.IndexByte(body, Padding); i >= 0 {
		return nil, &DecodeError{
			Kind:   ErrMalformedPadding,
			Offset: offsetOf(src, i),
		}
	}
	return decodeGroups(body), nil
}

func decodeLenient(src []byte) ([]byte, error) {
	// Every byte is copied; only symbols advance n.
	data := make([]byte, len(src))
	n := 0
	for _, c := range src {
		data[n] = c
		n += symbolMask(c)
	}
	data = data[:n]

	if len(data)%4 == 1 {
		return nil, &DecodeError{Kind: ErrInvalidLength, Symbols: len(data)}
	}
	return decodeGroups(data), nil
}

// decodeGroups decodes data, which must contain only symbols and
// must not end in a group of exactly one symbol.
func decodeGroups(data []byte) []byte {
	dst := make([]byte, DecodedLen(len(data))+trailingLen(len(data)%4))
	n := 0
	for len(data) >= 4 {
		c0, _ := ValueFor(data[0])
		c1, _ := ValueFor(data[1])
		c2, _ := ValueFor(data[2])
		c3, _ := ValueFor(data[3])

		dst[n+0] = c0<<2 | c1>>4
		dst[n+1] = c1<<4 | c2>>2
		dst[n+2] = c2<<6 | c3

		data = data[4:]
		n += 3
	}

	switch len(data) {
	case 3:
		c0, _ := ValueFor(data[0])
		c1, _ := ValueFor(data[1])
		c2, _ := ValueFor(data[2])

		dst[n+0] = c0<<2 | c1>>4
		dst[n+1] = c1<<4 | c2>>2
	case 2:
		c0, _ := ValueFor(data[0])
		c1, _ := ValueFor(data[1])

		dst[n+0] = c0<<2 | c1>>4
	}
	return dst
}

// trailingLen returns the number of bytes carried by a final group
// of r symbols.
func trailingLen(r int) int {
	if r < 2 {
		return 0
	}
	return r - 1
}

// offsetOf returns the index in src of the i'th byte that is not
// a newline.
func offsetOf(src []byte, i int) int {
	for j, c := range src {
		if newlineMask(c) == 1 {
			continue
		}
		if i == 0 {
			return j
		}
		i--
	}
	return len(src)
}
