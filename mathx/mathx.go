// Package mathx provides small integer reductions used alongside the geo
// types in grid computations.
package mathx

import "golang.org/x/exp/constraints"

// GCD returns the greatest common divisor of a and b. The result is never
// negative; GCD(0, 0) is 0.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// LCM returns the least common multiple of a and b, or 0 when either is 0.
func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		return -l
	}
	return l
}

// GCDAll folds GCD over nums, starting from 0.
func GCDAll[T constraints.Integer](nums ...T) T {
	var acc T
	for _, n := range nums {
		acc = GCD(acc, n)
	}
	return acc
}

// LCMAll folds LCM over nums, starting from 1.
func LCMAll[T constraints.Integer](nums ...T) T {
	acc := T(1)
	for _, n := range nums {
		acc = LCM(acc, n)
	}
	return acc
}
