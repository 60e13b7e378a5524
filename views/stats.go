package views

import (
	"cmp"
	"slices"
	"sync"

	"github.com/rickb777/date/v2/timespan"
)

// Stats is a snapshot of one instrumented view's recomputations.
type Stats struct {
	Name           string
	Recomputations int

	// LastRecomputation spans the call that last recomputed the view.
	LastRecomputation timespan.TimeSpan
}

type viewStats struct {
	mu    sync.Mutex
	stats Stats
}

func (s *viewStats) record(recomputations int, span timespan.TimeSpan) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.Recomputations = recomputations
	s.stats.LastRecomputation = span
}

func (s *viewStats) snapshot() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stats
}

// register keeps s for the lifetime of the runtime. Entries are added once
// per declared view and never removed, so views are meant to be declared
// once (at package level or at startup), not rebuilt per call.
func (r *Runtime) register(s *viewStats) {
	r.statsMu.Lock()
	defer r.statsMu.Unlock()

	r.stats = append(r.stats, s)
}

// Stats lists every instrumented view built by the runtime, most
// recomputed first. Views that never recomputed are included, and so are
// views that are no longer referenced.
func (r *Runtime) Stats() []Stats {
	r.statsMu.Lock()
	out := make([]Stats, 0, len(r.stats))
	for _, s := range r.stats {
		out = append(out, s.snapshot())
	}
	r.statsMu.Unlock()

	slices.SortStableFunc(out, func(a, b Stats) int {
		if c := cmp.Compare(b.Recomputations, a.Recomputations); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}
