package views

import (
	"fmt"
	"time"

	"github.com/rickb777/date/v2/timespan"

	"github.com/on-the-ground/computed_views/views/log"
)

// View derives a value from a state.
type View interface {
	Select(state any) any
}

// Memoized is what views are built on: a View that counts how many times
// it actually recomputed.
type Memoized interface {
	View
	Recomputations() int
}

// Memoizer builds a Memoized view from the arguments of a view declaration.
type Memoizer func(args ...any) (Memoized, error)

// NamedView builds the memoized view for d and, if cfg asks for it, wraps
// it so that every recomputation is logged under d.Name.
//
// With recomputation tracking off the memoized view is returned as is.
func (r *Runtime) NamedView(d CallDescriptor, cfg Config) (View, error) {
	view, err := r.memoizer(d.Args...)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidView, d.Name, err)
	}

	r.logger.Sugar().Debugf("created view: name: %v, instrumented: %v, runtimeId: %v", d.Name, cfg.ViewRecomputations, r.id)
	if !cfg.ViewRecomputations {
		return view, nil
	}

	sink := cfg.Log
	if sink == nil {
		sink = r.sink
	}

	named := &namedView{
		name:  d.Name,
		view:  view,
		log:   sink,
		stats: &viewStats{stats: Stats{Name: d.Name}},
	}
	r.register(named.stats)
	return named, nil
}

// namedView reports recomputations of the view it wraps. It adds no caching
// of its own. Not safe for concurrent use.
type namedView struct {
	name  string
	view  Memoized
	log   log.Sink
	last  int
	stats *viewStats
}

func (v *namedView) Select(state any) any {
	started := time.Now()
	result := v.view.Select(state)
	computations := v.view.Recomputations()

	// a reset of the memoized view's counter is reported like any other change
	if computations != v.last {
		v.log(fmt.Sprintf("%s - Recomputations: %d => %d", v.name, v.last, computations))
		v.stats.record(computations, timespan.BetweenTimes(started, time.Now()))
		v.last = computations
	}

	return result
}

func (v *namedView) Name() string {
	return v.name
}

func (v *namedView) Recomputations() int {
	return v.view.Recomputations()
}
