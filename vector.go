package inplace

import "fmt"

// Vector is a sequence of at most N elements of T stored in S, which must be
// the array type [N]T.
type Vector[T any, S any] struct {
	data S
	size int
	pol  *policy
}

// Make returns a vector holding n default-constructed elements.
func Make[T, S any](n int) (Vector[T, S], error) {
	var v Vector[T, S]
	if err := v.Resize(n); err != nil {
		return Vector[T, S]{}, err
	}
	return v, nil
}

// Repeat returns a vector holding n copies of value.
func Repeat[T, S any](n int, value T) (Vector[T, S], error) {
	var v Vector[T, S]
	if err := v.AssignN(n, value); err != nil {
		return Vector[T, S]{}, err
	}
	return v, nil
}

// From returns a vector holding copies of src.
func From[T, S any](src ...T) (Vector[T, S], error) {
	var v Vector[T, S]
	if err := v.Append(src...); err != nil {
		return Vector[T, S]{}, err
	}
	return v, nil
}

func (v *Vector[T, S]) Len() int { return v.size }

// Cap returns N. It never changes over the lifetime of the type.
func (v *Vector[T, S]) Cap() int { return policyFor[T, S]().capacity }

// MaxSize is Cap.
func (v *Vector[T, S]) MaxSize() int { return v.Cap() }

func (v *Vector[T, S]) Empty() bool { return v.size == 0 }

func (v *Vector[T, S]) Full() bool { return v.size == v.Cap() }

// Available returns how many more elements fit.
func (v *Vector[T, S]) Available() int { return v.Cap() - v.size }

// capacity and room are the mutator-side Cap and Available; they cache the
// policy on v.
func (v *Vector[T, S]) capacity() int { return v.policy().capacity }

func (v *Vector[T, S]) room() int { return v.policy().capacity - v.size }

// At returns a pointer to element i, or ErrOutOfRange.
func (v *Vector[T, S]) At(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, ErrOutOfRange
	}
	return &v.live()[i], nil
}

// Index returns a pointer to element i. It panics when i is out of range.
func (v *Vector[T, S]) Index(i int) *T {
	return &v.live()[i]
}

// Get returns element i by value. It panics when i is out of range.
func (v *Vector[T, S]) Get(i int) T {
	return v.live()[i]
}

// Front returns the first element. It panics on an empty vector.
func (v *Vector[T, S]) Front() *T {
	return &v.live()[0]
}

// Back returns the last element. It panics on an empty vector.
func (v *Vector[T, S]) Back() *T {
	return &v.live()[v.size-1]
}

// PushBack moves value into a new last element.
func (v *Vector[T, S]) PushBack(value T) (*T, error) {
	if v.size == v.capacity() {
		return nil, ErrCapacityExceeded
	}
	return v.UncheckedPushBack(value), nil
}

// TryPushBack is PushBack returning nil instead of an error when full.
func (v *Vector[T, S]) TryPushBack(value T) *T {
	if v.size == v.capacity() {
		return nil
	}
	return v.UncheckedPushBack(value)
}

// UncheckedPushBack appends without a capacity check; the caller guarantees
// room. It panics when the vector is full.
func (v *Vector[T, S]) UncheckedPushBack(value T) *T {
	s := v.slots()
	s[v.size] = value
	v.size++
	return &s[v.size-1]
}

// EmplaceBack constructs a new last element in place with fn. If fn fails
// the vector is unchanged and its error is returned.
func (v *Vector[T, S]) EmplaceBack(fn func(*T) error) (*T, error) {
	if v.size == v.capacity() {
		return nil, ErrCapacityExceeded
	}
	return v.UncheckedEmplaceBack(fn)
}

// TryEmplaceBack is EmplaceBack returning (nil, nil) when full.
func (v *Vector[T, S]) TryEmplaceBack(fn func(*T) error) (*T, error) {
	if v.size == v.capacity() {
		return nil, nil
	}
	return v.UncheckedEmplaceBack(fn)
}

// UncheckedEmplaceBack is EmplaceBack without the capacity check.
func (v *Vector[T, S]) UncheckedEmplaceBack(fn func(*T) error) (*T, error) {
	if err := v.construct(v.size, fn); err != nil {
		return nil, err
	}
	v.size++
	return &v.slots()[v.size-1], nil
}

// PopBack destroys the last element. It panics on an empty vector.
func (v *Vector[T, S]) PopBack() {
	if v.size == 0 {
		panic("inplace: PopBack on empty vector")
	}
	v.shrinkTo(v.size - 1)
}

// Clear destroys all elements.
func (v *Vector[T, S]) Clear() {
	v.shrinkTo(0)
}

// Append copies src to the end. Either all of src fits or nothing changes.
func (v *Vector[T, S]) Append(src ...T) error {
	if len(src) > v.room() {
		return ErrCapacityExceeded
	}
	return v.appendCopies(src)
}

// TryAppend copies as much of src as fits and returns the part that did not.
// An error from a Cloner stops the copy; elements appended by this call are
// kept and rest starts at the element that failed.
func (v *Vector[T, S]) TryAppend(src []T) (rest []T, err error) {
	n := min(len(src), v.room())
	p := v.policy()
	if p.bulkCopy() {
		copy(v.slots()[v.size:], src[:n])
		v.size += n
		return src[n:], nil
	}
	for i := 0; i < n; i++ {
		if err := v.constructCopy(v.size, &src[i]); err != nil {
			return src[i:], err
		}
		v.size++
	}
	return src[n:], nil
}

// appendCopies copy-constructs src past the end; room is already checked. A
// failed copy rolls back every element this call added.
func (v *Vector[T, S]) appendCopies(src []T) error {
	p := v.policy()
	if p.bulkCopy() {
		copy(v.slots()[v.size:], src)
		v.size += len(src)
		return nil
	}
	mark := v.size
	for i := range src {
		if err := v.constructCopy(v.size, &src[i]); err != nil {
			v.rollback(mark)
			return err
		}
		v.size++
	}
	return nil
}

// appendRepeat copy-constructs n copies of value past the end.
func (v *Vector[T, S]) appendRepeat(n int, value *T) error {
	mark := v.size
	for ; n > 0; n-- {
		if err := v.constructCopy(v.size, value); err != nil {
			v.rollback(mark)
			return err
		}
		v.size++
	}
	return nil
}

// appendDefault default-constructs n elements past the end.
func (v *Vector[T, S]) appendDefault(n int) error {
	p := v.policy()
	if p.bulkInit() {
		clear(v.slots()[v.size : v.size+n])
		v.size += n
		return nil
	}
	mark := v.size
	for ; n > 0; n-- {
		if err := v.constructDefault(v.size); err != nil {
			v.rollback(mark)
			return err
		}
		v.size++
	}
	return nil
}

func (v *Vector[T, S]) String() string {
	return fmt.Sprint(v.live())
}
