package core

import "math"

// WordScore returns the points for a cleared word of n letters:
// nothing below three letters, powers of three up to ten letters, then
// powers of four on top of 3^7. The result saturates at math.MaxInt.
func WordScore(n int) int {
	switch {
	case n < MinWordLen:
		return 0
	case n <= 10:
		return pow(3, n-3)
	default:
		return mulSat(pow(3, 7), pow(4, n-10))
	}
}

func pow(base, exp int) int {
	out := 1
	for range exp {
		out = mulSat(out, base)
	}
	return out
}

// mulSat multiplies non-negative a and b, clamping at math.MaxInt.
func mulSat(a, b int) int {
	if a != 0 && b > math.MaxInt/a {
		return math.MaxInt
	}
	return a * b
}
