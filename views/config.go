package views

import (
	"fmt"

	"github.com/on-the-ground/computed_views/shared/helper"
	"github.com/on-the-ground/computed_views/views/configkeys"
	"github.com/on-the-ground/computed_views/views/log"
)

// Config controls how a builder instruments its views.
type Config struct {
	// Log receives one line per recomputation.
	Log log.Sink

	// ViewRecomputations turns instrumentation on. When false views are
	// returned exactly as the memoizer built them.
	ViewRecomputations bool
}

type Option func(*Config)

func WithLog(sink log.Sink) Option {
	return func(c *Config) { c.Log = sink }
}

func WithViewRecomputations(enabled bool) Option {
	return func(c *Config) { c.ViewRecomputations = enabled }
}

// WithConfig replaces every field, e.g. with the result of ConfigFromBindings.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}

// NewConfig applies opts over the defaults: the runtime's sink and
// recomputation tracking on.
func (r *Runtime) NewConfig(opts ...Option) Config {
	cfg := Config{
		Log:                r.sink,
		ViewRecomputations: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Log == nil {
		cfg.Log = r.sink
	}
	return cfg
}

// ConfigFromBindings reads a Config from a flat key/value map.
//
//   - configkeys.ConfigViewsViewRecomputations: bool
//   - configkeys.ConfigViewsLogLevel: one of info, warn, error, debug. Routes
//     the log lines to the runtime's zap logger at that level.
//
// Missing keys keep their defaults.
func (r *Runtime) ConfigFromBindings(bindings map[string]any) (Config, error) {
	cfg := r.NewConfig()

	lookup := func(key string) func() (any, bool) {
		return func() (any, bool) {
			v, ok := bindings[key]
			return v, ok
		}
	}

	if _, found := bindings[configkeys.ConfigViewsViewRecomputations]; found {
		enabled, ok := helper.GetTypedValueOf2[bool](lookup(configkeys.ConfigViewsViewRecomputations))
		if !ok {
			return Config{}, fmt.Errorf("%w: %s must be a bool", ErrInvalidConfigValue, configkeys.ConfigViewsViewRecomputations)
		}
		cfg.ViewRecomputations = enabled
	}

	if _, found := bindings[configkeys.ConfigViewsLogLevel]; found {
		level, ok := helper.GetTypedValueOf2[string](lookup(configkeys.ConfigViewsLogLevel))
		if !ok {
			return Config{}, fmt.Errorf("%w: %s must be a string", ErrInvalidConfigValue, configkeys.ConfigViewsLogLevel)
		}
		switch l := log.Level(level); l {
		case log.LevelInfo, log.LevelWarn, log.LevelError, log.LevelDebug:
			cfg.Log = log.Zap(r.logger, l)
		default:
			return Config{}, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfigValue, level)
		}
	}

	return cfg, nil
}
