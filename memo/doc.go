// Package memo provides a memoized selector: a derivation of a state value
// that caches its result until its inputs change.
//
// A Selector is built from input selectors and a combiner:
//
//	total := memo.MustNew(
//	    func(s Cart) []Item { return s.Items },
//	    func(items []Item) int { return len(items) },
//	)
//	total.Select(cart)
//
// Every call runs the input selectors. The combiner only runs when the
// combination of their results has not been seen before, and each such run
// is counted by Recomputations.
//
// Input results are compared as cache keys:
//   - comparable values by ==,
//   - fmt.Stringer values by String(),
//   - slices and maps by identity (replace them, don't mutate them),
//   - other values by a digest of their contents.
//
// WARNING: the combiner must be pure. A combiner that reads time, I/O or
// anything outside its arguments will serve stale results.
package memo
