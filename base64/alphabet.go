package base64

import "github.com/ericlagergren/b64"

// Alphabet is the standard Base64 alphabet. The symbol for the
// 6-bit value v is Alphabet[v].
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"+/"

// Padding is the padding symbol. It is not part of Alphabet.
const Padding = '='

// SymbolFor returns the symbol for the sextet v.
//
// Only the low six bits of v are used.
func SymbolFor(v byte) byte {
	return lookup(uint(v & 0x3f))
}

// ValueFor returns the sextet for the symbol c.
//
// It reports false for every byte that is not in Alphabet,
// including Padding and newlines. Letters are case sensitive.
func ValueFor(c byte) (byte, bool) {
	v := revLookup(uint(c))
	return v & 0x3f, v != 0xff
}

// IsSymbol reports whether c is in Alphabet.
func IsSymbol(c byte) bool {
	return symbolMask(c) == 1
}

// symbolMask returns 1 if c is in Alphabet and 0 otherwise.
func symbolMask(c byte) int {
	return b64.ByteInRange(c, 'A', 'Z') |
		b64.ByteInRange(c, 'a', 'z') |
		b64.ByteInRange(c, '0', '9') |
		b64.ByteEq(c, '+') |
		b64.ByteEq(c, '/')
}

// newlineMask returns 1 if c is '\n' or '\r' and 0 otherwise.
func newlineMask(c byte) int {
	return b64.ByteEq(c, '\n') | b64.ByteEq(c, '\r')
}

// lookup converts the sextet c to its symbol.
//
// c must be in [0, 63].
//
// See http://0x80.pl/notesen/2016-01-12-sse-base64-encoding.html
func lookup(c uint) byte {
	// Assume [0, 25] ('A').
	s := uint('A')
	// [26, 51]: 'a' - 26 - 'A' = 6.
	s += (26 - c - 1) >> 8 & 6
	// [52, 61]: '0' - 52 - 71 = -75.
	s -= (52 - c - 1) >> 8 & 75
	// 62: '+' - 62 + 4 = -15.
	s -= (62 - c - 1) >> 8 & 15
	// 63: '/' - 63 + 19 = 3.
	s += (63 - c - 1) >> 8 & 3
	return byte(c + s)
}

// revLookup converts the symbol c to its sextet, or 0xff if c is
// not a symbol.
func revLookup(c uint) byte {
	// Each term is its shift when c is inside the range and zero
	// otherwise:
	//
	//    'A'-'Z': -65 (191 mod 64)
	//    'a'-'z': -71 (185 mod 64)
	//    '0'-'9': +4
	//    '+':     +19
	//    '/':     +16
	s := ((((64 - c) & (c - 91)) >> 8) & 191) ^
		((((96 - c) & (c - 123)) >> 8) & 185) ^
		((((47 - c) & (c - 58)) >> 8) & 4) ^
		((((42 - c) & (c - 44)) >> 8) & 19) ^
		((((46 - c) & (c - 48)) >> 8) & 16)
	// s == 0 means c matched no range.
	return byte((s+c)&0x3f | ((((0 - s) >> 8) & 0xff) ^ 0xff))
}
