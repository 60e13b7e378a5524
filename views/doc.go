// Package views names memoized selectors and reports when they recompute.
//
// A view is declared with an optional name, one or more input selectors and
// a combiner, the same arguments memo.New takes:
//
//	view := views.CreateBuilder()("Users")
//	active := view("ActiveUsers", selectUsers, func(users []User) []User { ... })
//
// Each time the combiner actually runs, the view writes one line to its
// sink:
//
//	[Users] - **** ActiveUsers **** - Recomputations: 0 => 1
//
// Unnamed views get a number from the runtime's counter instead. Frequent
// lines for the same view point at inputs that change more often than
// they should.
//
// Views are grouped into a read-only Map over one state with BuildMap, so
// that callers read derived values by key without holding the state.
//
// Everything shared (the name counter, the default sink, per-view stats)
// lives in a Runtime. The package-level functions use Default, which tests
// can replace with ResetDefault.
package views
