package views

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/on-the-ground/computed_views/shared/helper"
)

// Accessor reads one value out of a state. A View's Select method is an
// Accessor.
type Accessor func(state any) any

// Definitions names the accessors of a view map.
type Definitions map[string]Accessor

// Map exposes a fixed set of accessors over one state. Every read calls
// the accessor again; caching is up to the accessor. A Map can't be
// modified once built.
type Map struct {
	state     any
	accessors Definitions
	keys      []string
}

// BuildMap returns a constructor of Maps over defs. defs is copied, so
// later changes to it don't affect the constructor.
func BuildMap(defs Definitions) func(state any) *Map {
	accessors := maps.Clone(defs)
	keys := slices.Sorted(maps.Keys(accessors))

	return func(state any) *Map {
		return &Map{
			state:     state,
			accessors: accessors,
			keys:      keys,
		}
	}
}

// Get reads key. If the accessor returns a func, the func itself is
// returned.
func (m *Map) Get(key string) (any, bool) {
	accessor, ok := m.accessors[key]
	if !ok {
		return nil, false
	}
	return accessor(m.state), true
}

func (m *Map) Has(key string) bool {
	_, ok := m.accessors[key]
	return ok
}

// Keys returns the keys in sorted order.
func (m *Map) Keys() []string {
	return slices.Clone(m.keys)
}

func (m *Map) Len() int {
	return len(m.keys)
}

// All reads every key in sorted order. Values are computed as the
// iteration reaches them.
func (m *Map) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, key := range m.keys {
			if !yield(key, m.accessors[key](m.state)) {
				return
			}
		}
	}
}

// Lookup reads key as a T.
func Lookup[T any](m *Map, key string) (T, error) {
	return helper.GetTypedValueOf[T](func() (any, error) {
		v, ok := m.Get(key)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
		}
		return v, nil
	})
}

// MustLookup is the panic-on-failure variant of Lookup.
func MustLookup[T any](m *Map, key string) T {
	v, err := Lookup[T](m, key)
	if err != nil {
		panic(err)
	}
	return v
}
