package memo

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

type stringerKey struct {
	typ reflect.Type
	s   string
}

// refKey identifies slices and maps by their backing storage. Holding the
// pointer keeps the storage alive for as long as the key is cached.
type refKey struct {
	typ reflect.Type
	ptr unsafe.Pointer
	len int
}

type digestKey struct {
	typ reflect.Type
	sum uint64
}

// keyOf turns an input selector result into a cache key.
//
//   - fmt.Stringer values are keyed by their String() output
//   - slices and maps are keyed by identity, like a reference comparison
//   - funcs never produce a cache hit
//   - other comparable values are used as-is
//   - anything else is keyed by an xxhash digest of its %#v rendering
func keyOf(v any) Key {
	if v == nil {
		return nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return v
	}

	if stringer, ok := v.(fmt.Stringer); ok {
		return stringerKey{typ: rv.Type(), s: stringer.String()}
	}

	switch rv.Kind() {
	case reflect.Slice:
		return refKey{typ: rv.Type(), ptr: rv.UnsafePointer(), len: rv.Len()}
	case reflect.Map:
		return refKey{typ: rv.Type(), ptr: rv.UnsafePointer()}
	case reflect.Func:
		return new(struct{ _ byte })
	}

	if rv.Comparable() {
		return v
	}
	return digestKey{
		typ: rv.Type(),
		sum: xxhash.Sum64String(fmt.Sprintf("%#v", v)),
	}
}
