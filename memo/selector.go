package memo

import (
	"fmt"
	"reflect"
	"sync/atomic"
)

// Options tunes a Selector. Pass it as the last argument of New.
type Options struct {
	// CacheSize sets how many input combinations are kept: between
	// CacheSize and 2*CacheSize, see Trie. Default 1.
	CacheSize uint32
}

// Source is anything that derives a value from a state. Selectors and
// views satisfy it, so they can feed other selectors.
type Source interface {
	Select(state any) any
}

// Selector is a memoized derivation of a state value. It runs its input
// selectors on every call and only runs the combiner when their results
// differ from a cached combination.
type Selector struct {
	inputs   []func(any) any
	combiner reflect.Value
	argTypes []reflect.Type
	cache    *Trie[any]

	recomputations atomic.Int64
}

// New builds a Selector from one or more input selectors followed by the
// combiner, optionally followed by Options.
//
// An input selector is a func(S) X or a Source. Input selectors may also be
// given as a single []any. The combiner takes one argument per input
// selector and returns one value.
func New(args ...any) (*Selector, error) {
	opts := Options{CacheSize: 1}
	if n := len(args); n > 0 {
		if o, ok := args[n-1].(Options); ok {
			if o.CacheSize > 0 {
				opts.CacheSize = o.CacheSize
			}
			args = args[:n-1]
		}
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: missing", ErrInvalidCombiner)
	}

	combiner := reflect.ValueOf(args[len(args)-1])
	if combiner.Kind() != reflect.Func || combiner.IsNil() || combiner.Type().NumOut() != 1 || combiner.Type().IsVariadic() {
		return nil, fmt.Errorf("%w: want a func returning one value, got %T", ErrInvalidCombiner, args[len(args)-1])
	}

	rawInputs := args[:len(args)-1]
	if len(rawInputs) == 1 {
		if list, ok := rawInputs[0].([]any); ok {
			rawInputs = list
		}
	}
	if len(rawInputs) == 0 {
		return nil, ErrNoInputSelectors
	}

	ct := combiner.Type()
	if ct.NumIn() != len(rawInputs) {
		return nil, fmt.Errorf("%w: combiner takes %d, got %d input selectors", ErrCombinerArity, ct.NumIn(), len(rawInputs))
	}

	s := &Selector{
		inputs:   make([]func(any) any, len(rawInputs)),
		combiner: combiner,
		argTypes: make([]reflect.Type, ct.NumIn()),
		cache:    NewTrie[any](opts.CacheSize),
	}
	for i := range s.argTypes {
		s.argTypes[i] = ct.In(i)
	}

	for i, raw := range rawInputs {
		if src, ok := raw.(Source); ok {
			s.inputs[i] = src.Select
			continue
		}

		fv := reflect.ValueOf(raw)
		if fv.Kind() != reflect.Func || fv.IsNil() {
			return nil, fmt.Errorf("%w: #%d is %T", ErrInvalidInputSelector, i, raw)
		}
		ft := fv.Type()
		if ft.NumIn() != 1 || ft.NumOut() != 1 || ft.IsVariadic() {
			return nil, fmt.Errorf("%w: #%d must take and return one value, got %v", ErrInvalidInputSelector, i, ft)
		}
		if !ft.Out(0).AssignableTo(s.argTypes[i]) {
			return nil, fmt.Errorf("%w: #%d returns %v, combiner wants %v", ErrCombinerArgType, i, ft.Out(0), s.argTypes[i])
		}
		s.inputs[i] = adaptInput(i, fv)
	}

	return s, nil
}

// MustNew is the panic-on-failure variant of New.
func MustNew(args ...any) *Selector {
	s, err := New(args...)
	if err != nil {
		panic(err)
	}
	return s
}

// Select derives the value for state, reusing the cached result when every
// input selector returns a value seen before.
func (s *Selector) Select(state any) any {
	results := make([]any, len(s.inputs))
	keys := make([]Key, len(s.inputs))
	for i, input := range s.inputs {
		results[i] = input(state)
		keys[i] = keyOf(results[i])
	}

	if v, ok := s.cache.Load(keys); ok {
		return v
	}

	s.recomputations.Add(1)
	v := s.combine(results)
	s.cache.Store(keys, v)
	return v
}

// Recomputations reports how many times the combiner has run.
func (s *Selector) Recomputations() int {
	return int(s.recomputations.Load())
}

func (s *Selector) ResetRecomputations() {
	s.recomputations.Store(0)
}

// ResultFunc returns the combiner as it was passed to New.
func (s *Selector) ResultFunc() any {
	return s.combiner.Interface()
}

func (s *Selector) combine(results []any) any {
	in := make([]reflect.Value, len(results))
	for i, r := range results {
		v, ok := argValue(s.argTypes[i], r)
		if !ok {
			panic(fmt.Errorf("%w: argument #%d wants %v, got %T", ErrCombinerArgType, i, s.argTypes[i], r))
		}
		in[i] = v
	}
	return s.combiner.Call(in)[0].Interface()
}

func adaptInput(i int, fv reflect.Value) func(any) any {
	want := fv.Type().In(0)
	return func(state any) any {
		arg, ok := argValue(want, state)
		if !ok {
			panic(fmt.Errorf("%w: input selector #%d wants %v, got %T", ErrStateType, i, want, state))
		}
		return fv.Call([]reflect.Value{arg})[0].Interface()
	}
}

// argValue converts v into a call argument of type t. A nil v becomes the
// zero value of nillable types.
func argValue(t reflect.Type, v any) (reflect.Value, bool) {
	if v == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
			return reflect.Zero(t), true
		}
		return reflect.Value{}, false
	}

	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, false
	}
	return rv, true
}
