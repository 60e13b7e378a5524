package memo

import (
	"sync"
	"sync/atomic"
)

// Key is a hashable cache key derived from an input selector result.
// See keyOf for how arbitrary values are turned into keys.
type Key any

// Trie is a bounded cache addressed by a path of keys.
//
// It keeps two generations of nested sync.Maps. Stores go to the head
// generation; once maxSize stores have landed there the generations rotate
// and the older one is dropped, so the trie holds between maxSize and
// 2*maxSize entries.
type Trie[O any] struct {
	memos   [2]atomic.Pointer[sync.Map]
	headIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
}

func (t *Trie[O]) Load(keys []Key) (O, bool) {
	headIdx := t.headIdx.Load()
	for _, idx := range [2]uint32{headIdx, 1 - headIdx} {
		m, k, ok := t.lookup(t.memos[idx].Load(), keys)
		if !ok {
			continue
		}
		if v, ok := m.Load(k); ok {
			// a nil value fails a plain assertion
			val, _ := v.(O)
			return val, true
		}
	}
	var zero O
	return zero, false
}

func (t *Trie[O]) Store(keys []Key, value O) {
	if swapped := t.size.CompareAndSwap(t.maxSize, 0); swapped {
		next := 1 - t.headIdx.Load()
		t.memos[next].Store(&sync.Map{})
		t.headIdx.Store(next)
	}
	m, k := t.traverse(t.memos[t.headIdx.Load()].Load(), keys)
	m.Store(k, value)
	t.size.Add(1)
}

// lookup walks the path without creating intermediate maps.
func (t *Trie[O]) lookup(targetMap *sync.Map, keys []Key) (*sync.Map, Key, bool) {
	length := len(keys)
	if length == 0 {
		panic("lookup: empty keys")
	}

	for _, k := range keys[:length-1] {
		v, ok := targetMap.Load(k)
		if !ok {
			return nil, nil, false
		}
		targetMap = v.(*sync.Map)
	}
	return targetMap, keys[length-1], true
}

func (t *Trie[O]) traverse(targetMap *sync.Map, keys []Key) (*sync.Map, Key) {
	length := len(keys)
	if length == 0 {
		panic("traverse: empty keys")
	}

	for _, k := range keys[:length-1] {
		v, _ := targetMap.LoadOrStore(k, &sync.Map{})
		targetMap = v.(*sync.Map)
	}
	return targetMap, keys[length-1]
}

func NewTrie[O any](maxSize uint32) *Trie[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	t := &Trie[O]{maxSize: maxSize}
	t.memos[0].Store(&sync.Map{})
	t.memos[1].Store(&sync.Map{})
	return t
}
