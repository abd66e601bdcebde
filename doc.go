// Package inplace implements a fixed-capacity vector whose elements live
// inside the vector value itself.
//
// # Overview
//
// A Vector holds at most N elements and never allocates. N is carried by the
// storage array type, since Go generics cannot take a constant parameter:
//
//	var v inplace.Vector[string, [4]string]
//	_, err := v.PushBack("hello") // ErrCapacityExceeded once four are held
//
// The zero value is an empty vector ready for use. Slots past Len are vacant
// and are never returned to callers.
//
// # Element hooks
//
// Element types may opt into lifetime hooks:
//
//   - Initializer: Init runs after a slot is zeroed by Resize, Make and friends.
//   - Cloner[T]: Clone is used whenever an element is copied (Append, Assign,
//     Insert, Repeat, Clone, CopyFrom).
//   - Destroyer: Destroy runs exactly once when an element leaves the vector.
//
// Types without hooks take bulk copy/clear paths with identical results.
// Errors returned by Init or Clone abort the operation; everything the call
// had added is destroyed and the length is restored before the error is
// returned unchanged.
//
// # Moves
//
// Relocating elements (Erase, Insert, Swap, MoveFrom) is a plain Go
// assignment followed by zeroing the source slot; it never calls hooks and
// never fails. Assigning one Vector to another with = is also a plain copy;
// use Clone or CopyFrom for element-aware copies.
//
// # Concurrency
//
// A Vector is not synchronized. Concurrent readers are safe only while no
// goroutine mutates it. Pointers and slices obtained from a vector are
// invalidated by any call that relocates or destroys their slots.
package inplace
