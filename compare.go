package inplace

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b hold the same number of pairwise equal
// elements.
func Equal[T comparable, S any](a, b *Vector[T, S]) bool {
	return slices.Equal(a.live(), b.live())
}

// EqualFunc is Equal using eq for the element comparison.
func EqualFunc[T, S any](a, b *Vector[T, S], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.live(), b.live(), eq)
}

// Compare orders a and b lexicographically and returns -1, 0 or +1.
func Compare[T cmp.Ordered, S any](a, b *Vector[T, S]) int {
	return slices.Compare(a.live(), b.live())
}

// CompareFunc is Compare using compare for the element comparison.
func CompareFunc[T, S any](a, b *Vector[T, S], compare func(T, T) int) int {
	return slices.CompareFunc(a.live(), b.live(), compare)
}

// Less reports whether a orders before b.
func Less[T cmp.Ordered, S any](a, b *Vector[T, S]) bool {
	return Compare(a, b) < 0
}
