package inplace

import (
	"slices"
	"unsafe"
)

// Slots [0, size) are live; [size, cap) are vacant and never handed out.
// Vacant slots of plain-data element types may hold stale bits, so every
// construction path writes the whole slot first.

func (v *Vector[T, S]) policy() *policy {
	if v.pol == nil {
		v.pol = policyFor[T, S]()
	}
	return v.pol
}

// slots returns all N slots. Callers hold the resolved policy.
func (v *Vector[T, S]) slots() []T {
	n := v.policy().capacity
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&v.data)), n)
}

// live returns the live prefix without touching the policy, so readers never
// write to the vector.
func (v *Vector[T, S]) live() []T {
	if v.size == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&v.data)), v.size)
}

// construct builds slot i in place with fn. On error the slot is zeroed and
// stays vacant.
func (v *Vector[T, S]) construct(i int, fn func(*T) error) error {
	p := &v.slots()[i]
	var zero T
	*p = zero
	if err := fn(p); err != nil {
		*p = zero
		return err
	}
	return nil
}

// constructDefault builds the zero value in slot i and runs Init when the
// element type has one.
func (v *Vector[T, S]) constructDefault(i int) error {
	p := &v.slots()[i]
	var zero T
	*p = zero
	if !v.pol.init {
		return nil
	}
	if err := any(p).(Initializer).Init(); err != nil {
		*p = zero
		return err
	}
	return nil
}

// constructCopy copy-constructs slot i from src.
func (v *Vector[T, S]) constructCopy(i int, src *T) error {
	s := v.slots()
	if !v.pol.clone {
		s[i] = *src
		return nil
	}
	c, err := any(src).(Cloner[T]).Clone()
	if err != nil {
		return err
	}
	s[i] = c
	return nil
}

// destroy runs Destroy on slots [lo, hi) and vacates them.
func (v *Vector[T, S]) destroy(lo, hi int) {
	s := v.slots()[lo:hi]
	if !v.policy().bulkDestroy() {
		for i := range s {
			any(&s[i]).(Destroyer).Destroy()
		}
	}
	v.vacate(lo, hi)
}

// vacate zeroes slots [lo, hi) whose values were relocated or destroyed.
func (v *Vector[T, S]) vacate(lo, hi int) {
	if lo >= hi || !v.policy().pointers {
		return
	}
	clear(v.slots()[lo:hi])
}

// shrinkTo destroys the tail down to n live elements.
func (v *Vector[T, S]) shrinkTo(n int) {
	if n >= v.size {
		return
	}
	v.destroy(n, v.size)
	v.size = n
}

// rollback destroys everything constructed past mark and restores size.
func (v *Vector[T, S]) rollback(mark int) {
	v.shrinkTo(mark)
}

// overlaps reports whether src shares memory with this vector's slots.
func (v *Vector[T, S]) overlaps(src []T) bool {
	if len(src) == 0 || unsafe.Sizeof(src[0]) == 0 {
		return false
	}
	s := v.slots()
	if len(s) == 0 {
		return false
	}
	lo := uintptr(unsafe.Pointer(&s[0]))
	hi := lo + uintptr(len(s))*unsafe.Sizeof(s[0])
	first := uintptr(unsafe.Pointer(&src[0]))
	last := first + uintptr(len(src))*unsafe.Sizeof(src[0])
	return first < hi && lo < last
}

// rotate moves s[mid:] in front of s[:mid] in place.
func rotate[T any](s []T, mid int) {
	slices.Reverse(s[:mid])
	slices.Reverse(s[mid:])
	slices.Reverse(s)
}
