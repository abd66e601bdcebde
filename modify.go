package inplace

import (
	"fmt"
	"iter"
)

// Resize sets the length to n, destroying the tail or default-constructing
// new elements. A failed construction restores the previous length.
func (v *Vector[T, S]) Resize(n int) error {
	if n < 0 || n > v.capacity() {
		return ErrCapacityExceeded
	}
	if n <= v.size {
		v.shrinkTo(n)
		return nil
	}
	return v.appendDefault(n - v.size)
}

// ResizeWith is Resize filling new elements with copies of value.
func (v *Vector[T, S]) ResizeWith(n int, value T) error {
	if n < 0 || n > v.capacity() {
		return ErrCapacityExceeded
	}
	if n <= v.size {
		v.shrinkTo(n)
		return nil
	}
	return v.appendRepeat(n-v.size, &value)
}

// Assign replaces the contents with copies of src. The capacity check comes
// first; on a copy failure the vector is left empty. src must not alias the
// vector's own elements.
func (v *Vector[T, S]) Assign(src ...T) error {
	if len(src) > v.capacity() {
		return ErrCapacityExceeded
	}
	if v.overlaps(src) {
		panic("inplace: Assign source aliases the vector")
	}
	v.Clear()
	return v.appendCopies(src)
}

// AssignN replaces the contents with n copies of value.
func (v *Vector[T, S]) AssignN(n int, value T) error {
	if n < 0 || n > v.capacity() {
		return ErrCapacityExceeded
	}
	v.Clear()
	return v.appendRepeat(n, &value)
}

// AssignSeq replaces the contents with the values of seq, which are moved in.
// seq is drained into scratch storage before v changes, so it may read from
// v itself; for a Destroyer element type such a seq must yield clones, since
// the old contents are destroyed afterwards. A sequence longer than the capacity leaves v unchanged and
// returns ErrCapacityExceeded.
func (v *Vector[T, S]) AssignSeq(seq iter.Seq[T]) error {
	var next Vector[T, S]
	for x := range seq {
		if next.TryPushBack(x) == nil {
			next.Clear()
			return ErrCapacityExceeded
		}
	}
	v.MoveFrom(&next)
	return nil
}

// Erase removes elements [first, last) and returns first, the index of the
// element that now follows the gap. The erased elements are destroyed and
// the tail is moved left. It panics on an invalid range.
func (v *Vector[T, S]) Erase(first, last int) int {
	if first < 0 || first > last || last > v.size {
		panic(fmt.Sprintf("inplace: Erase range [%d:%d] out of range with length %d", first, last, v.size))
	}
	removed := last - first
	if removed == 0 {
		return first
	}
	s := v.slots()
	if !v.pol.bulkDestroy() {
		for i := first; i < last; i++ {
			any(&s[i]).(Destroyer).Destroy()
		}
	}
	copy(s[first:], s[last:v.size])
	v.vacate(v.size-removed, v.size)
	v.size -= removed
	return first
}

// EraseAt removes element i.
func (v *Vector[T, S]) EraseAt(i int) int {
	return v.Erase(i, i+1)
}

// Insert copies src in front of position pos and returns pos. It fails with
// ErrCapacityExceeded when src does not fit; a copy failure leaves the
// vector unchanged.
func (v *Vector[T, S]) Insert(pos int, src ...T) (int, error) {
	v.checkPos(pos)
	if len(src) > v.room() {
		return pos, ErrCapacityExceeded
	}
	mark := v.size
	if err := v.appendCopies(src); err != nil {
		return pos, err
	}
	v.rotateIn(pos, mark)
	return pos, nil
}

// InsertN inserts n copies of value in front of position pos.
func (v *Vector[T, S]) InsertN(pos, n int, value T) (int, error) {
	v.checkPos(pos)
	if n < 0 || n > v.room() {
		return pos, ErrCapacityExceeded
	}
	mark := v.size
	if err := v.appendRepeat(n, &value); err != nil {
		return pos, err
	}
	v.rotateIn(pos, mark)
	return pos, nil
}

// Emplace constructs one element in place with fn in front of position pos.
func (v *Vector[T, S]) Emplace(pos int, fn func(*T) error) (int, error) {
	v.checkPos(pos)
	if v.size == v.capacity() {
		return pos, ErrCapacityExceeded
	}
	mark := v.size
	if _, err := v.UncheckedEmplaceBack(fn); err != nil {
		return pos, err
	}
	v.rotateIn(pos, mark)
	return pos, nil
}

func (v *Vector[T, S]) checkPos(pos int) {
	if pos < 0 || pos > v.size {
		panic(fmt.Sprintf("inplace: insert position %d out of range with length %d", pos, v.size))
	}
}

// rotateIn moves the elements appended after mark to position pos.
func (v *Vector[T, S]) rotateIn(pos, mark int) {
	if pos == mark || mark == v.size {
		return
	}
	rotate(v.slots()[pos:v.size], mark-pos)
}

// Swap exchanges the contents of v and other. The common prefix is swapped
// element by element, then the longer tail is moved across.
func (v *Vector[T, S]) Swap(other *Vector[T, S]) {
	if v == other {
		return
	}
	small, large := v, other
	if small.size > large.size {
		small, large = large, small
	}
	ss, ls := small.slots(), large.slots()
	n := small.size
	for i := 0; i < n; i++ {
		ss[i], ls[i] = ls[i], ss[i]
	}
	copy(ss[n:large.size], ls[n:large.size])
	small.size = large.size
	large.vacate(n, large.size)
	large.size = n
}

// Swap exchanges the contents of a and b.
func Swap[T, S any](a, b *Vector[T, S]) {
	a.Swap(b)
}

// Clone returns an element-aware copy of v.
func (v *Vector[T, S]) Clone() (Vector[T, S], error) {
	var c Vector[T, S]
	if err := c.appendCopies(v.live()); err != nil {
		return Vector[T, S]{}, err
	}
	return c, nil
}

// CopyFrom replaces the contents of v with copies of src's elements.
func (v *Vector[T, S]) CopyFrom(src *Vector[T, S]) error {
	if v == src {
		return nil
	}
	return v.Assign(src.live()...)
}

// MoveFrom replaces the contents of v with src's elements and leaves src
// empty. No element hooks run for the moved elements.
func (v *Vector[T, S]) MoveFrom(src *Vector[T, S]) {
	if v == src {
		return
	}
	v.Clear()
	n := src.size
	copy(v.slots(), src.live())
	v.size = n
	src.vacate(0, n)
	src.size = 0
}
