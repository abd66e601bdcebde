package inplace

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/rawbytedev/inplace/internal/common"
)

// Initializer is implemented by element types whose default construction
// does more than produce the zero value. Init runs on a freshly zeroed slot;
// a non-nil error leaves the slot vacant.
type Initializer interface {
	Init() error
}

// Cloner is implemented by element types whose copies must not share state
// with the original. Without it, copying an element is plain assignment.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Destroyer is implemented by element types that release resources when
// they leave a vector. Destroy must not fail.
type Destroyer interface {
	Destroy()
}

// policy is the capability set of one storage type. It is immutable once
// published.
type policy struct {
	capacity int
	elem     reflect.Type
	init     bool // Initializer
	clone    bool // Cloner[T]
	destroy  bool // Destroyer
	pointers bool // vacated slots must be zeroed
}

// bulkInit reports whether default construction is a plain clear.
func (p *policy) bulkInit() bool { return !p.init }

// bulkCopy reports whether copy construction is a plain copy.
func (p *policy) bulkCopy() bool { return !p.clone }

// bulkDestroy reports whether destruction needs no per-element call.
func (p *policy) bulkDestroy() bool { return !p.destroy }

// policyKey identifies a policy by element and storage type together; one
// storage type may be paired with many element types.
type policyKey struct {
	elem    reflect.Type
	storage reflect.Type
}

var (
	policyMu sync.RWMutex
	policies = make(map[policyKey]*policy)
)

// policyFor resolves the capability set for storage S holding T.
func policyFor[T, S any]() *policy {
	et, st := reflect.TypeFor[T](), reflect.TypeFor[S]()
	key := policyKey{elem: et, storage: st}
	policyMu.RLock()
	if p, ok := policies[key]; ok {
		policyMu.RUnlock()
		return p
	}
	policyMu.RUnlock()

	policyMu.Lock()
	defer policyMu.Unlock()

	// Double-check
	if p, ok := policies[key]; ok {
		return p
	}

	n, ok := common.ArrayLen(st, et)
	if !ok {
		panic(fmt.Errorf("%w: have %v, want [N]%v", ErrStorage, st, et))
	}
	p := &policy{
		capacity: n,
		elem:     et,
		init:     common.Implements(et, reflect.TypeFor[Initializer]()),
		clone:    common.Implements(et, reflect.TypeFor[Cloner[T]]()),
		destroy:  common.Implements(et, reflect.TypeFor[Destroyer]()),
		pointers: common.HasPointers(et),
	}
	policies[key] = p
	return p
}

// Capabilities describes how a Vector with storage S handles its elements.
type Capabilities struct {
	Capacity int
	// Initializer, Cloner and Destroyer report which element hooks are used.
	Initializer bool
	Cloner      bool
	Destroyer   bool
	// Pointers reports whether vacated slots are zeroed for the collector.
	Pointers bool
}

// CapabilitiesOf reports the capability set resolved for storage S. It
// panics with ErrStorage when S is not [N]T.
func CapabilitiesOf[T, S any]() Capabilities {
	p := policyFor[T, S]()
	return Capabilities{
		Capacity:    p.capacity,
		Initializer: p.init,
		Cloner:      p.clone,
		Destroyer:   p.destroy,
		Pointers:    p.pointers,
	}
}
