// Package buf grows scratch slices that are reused across layouts.
package buf

import "math/bits"

// Capacity returns the smallest power of two that is >= n.
// Capacity(0) is 0.
func Capacity(n int) int {
	if n <= 0 {
		return 0
	}
	if n&(n-1) == 0 {
		return n
	}
	return 1 << bits.Len(uint(n))
}

// Grow returns s resliced to length n. When the capacity of s is too small
// a new backing array sized by Capacity(n) is allocated and the existing
// elements are copied. Capacity never shrinks.
func Grow[T any](s []T, n int) []T {
	if n <= cap(s) {
		return s[:n]
	}
	grown := make([]T, n, Capacity(n))
	copy(grown, s)
	return grown
}

// Reserve is like Grow but keeps the current length, so the caller can
// append up to n elements without reallocation.
func Reserve[T any](s []T, n int) []T {
	if n <= cap(s) {
		return s
	}
	grown := make([]T, len(s), Capacity(n))
	copy(grown, s)
	return grown
}
