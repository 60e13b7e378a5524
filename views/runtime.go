package views

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/computed_views/memo"
	"github.com/on-the-ground/computed_views/views/log"
)

// Runtime owns the state shared by the views it builds: the auto-name
// counter, the default log sink, the memoizer and the per-view stats.
//
// Create one per process (or per test) and build views from it. The
// package-level functions use Default. The runtime remembers every
// instrumented view it builds, so declare views once rather than per call.
type Runtime struct {
	id       uuid.UUID
	counter  atomic.Int64
	sink     log.Sink
	logger   *zap.Logger
	memoizer Memoizer

	statsMu sync.Mutex
	stats   []*viewStats
}

type RuntimeOption func(*Runtime)

// WithDefaultSink replaces the sink used by configs that don't set one.
func WithDefaultSink(sink log.Sink) RuntimeOption {
	return func(r *Runtime) {
		if sink != nil {
			r.sink = sink
		}
	}
}

// WithLogger sets the logger for the runtime's own debug output and for
// sinks built by ConfigFromBindings.
func WithLogger(logger *zap.Logger) RuntimeOption {
	return func(r *Runtime) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMemoizer swaps the memoization primitive views are built on.
func WithMemoizer(m Memoizer) RuntimeOption {
	return func(r *Runtime) {
		if m != nil {
			r.memoizer = m
		}
	}
}

func NewRuntime(opts ...RuntimeOption) *Runtime {
	r := &Runtime{
		id:       uuid.New(),
		sink:     log.Stdout(),
		logger:   zap.NewNop(),
		memoizer: newSelector,
	}
	r.counter.Store(1)
	for _, opt := range opts {
		opt(r)
	}
	r.logger.Sugar().Debugf("created views runtime: runtimeId: %v", r.id)
	return r
}

func (r *Runtime) ID() uuid.UUID {
	return r.id
}

func newSelector(args ...any) (Memoized, error) {
	sel, err := memo.New(args...)
	if err != nil {
		return nil, err
	}
	return sel, nil
}

var (
	defaultMu      sync.Mutex
	defaultRuntime *Runtime
)

// Default returns the process-wide Runtime, creating it on first use.
func Default() *Runtime {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultRuntime == nil {
		defaultRuntime = NewRuntime()
	}
	return defaultRuntime
}

// ResetDefault replaces the process-wide Runtime with a fresh one and
// returns it. Builders obtained before the reset keep the old Runtime.
func ResetDefault(opts ...RuntimeOption) *Runtime {
	r := NewRuntime(opts...)

	defaultMu.Lock()
	defaultRuntime = r
	defaultMu.Unlock()

	return r
}
