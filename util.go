package huffman

import (
	mathbits "math/bits"
)

func log2uint64(x uint64) uint {
	if x == 0 {
		x = 1
	}
	return uint(mathbits.Len64(x))
}

// MinFixedWidth returns the smallest number of bits that gives each of n
// distinct symbols its own fixed-width code.  The result is never below 1.
func MinFixedWidth(n int) uint {
	if n <= 1 {
		return 1
	}
	return log2uint64(uint64(n - 1))
}
