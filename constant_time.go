package b64

import "crypto/subtle"

// ByteEq returns 1 if x == y and 0 otherwise.
func ByteEq(x, y uint8) int {
	return subtle.ConstantTimeByteEq(x, y)
}

// ByteLessOrEq returns 1 if x <= y and 0 otherwise.
func ByteLessOrEq(x, y uint8) int {
	return subtle.ConstantTimeLessOrEq(int(x), int(y))
}

// ByteInRange returns 1 if lo <= x <= hi and 0 otherwise.
func ByteInRange(x, lo, hi uint8) int {
	return ByteLessOrEq(lo, x) & ByteLessOrEq(x, hi)
}
