package lcmsvc

// GCD returns the greatest common divisor of two non-negative integers.
func GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of two non-negative integers.
// LCM with a zero operand is zero.
func LCM(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	return a / GCD(a, b) * b
}
