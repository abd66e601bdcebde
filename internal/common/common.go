package common

import (
	"reflect"
)

// IsPlainKind reports whether values of kind k never hold pointers.
func IsPlainKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}

// HasPointers reports whether a value of type t may reference memory the
// garbage collector tracks. Arrays and structs are inspected recursively.
func HasPointers(t reflect.Type) bool {
	switch k := t.Kind(); {
	case IsPlainKind(k):
		return false
	case k == reflect.Array:
		return t.Len() > 0 && HasPointers(t.Elem())
	case k == reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if HasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// ArrayLen returns N when storage is the array type [N]elem.
func ArrayLen(storage, elem reflect.Type) (int, bool) {
	if storage.Kind() != reflect.Array || storage.Elem() != elem {
		return 0, false
	}
	return storage.Len(), true
}

// Implements reports whether *t carries the methods of iface, which covers
// both value and pointer receivers.
func Implements(t, iface reflect.Type) bool {
	return reflect.PointerTo(t).Implements(iface)
}
