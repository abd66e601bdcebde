package inplace

import "iter"

// Slice returns the live elements. The slice aliases the vector and is
// invalidated by any call that relocates or destroys elements.
func (v *Vector[T, S]) Slice() []T {
	return v.live()
}

// All yields index/value pairs front to back.
func (v *Vector[T, S]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.live() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values yields the elements front to back.
func (v *Vector[T, S]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.live() {
			if !yield(x) {
				return
			}
		}
	}
}

// Backward yields index/value pairs back to front.
func (v *Vector[T, S]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s := v.live()
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}
