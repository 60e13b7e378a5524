package views

import "errors"

var (
	// ErrInvalidView wraps a memoizer error raised while building a view.
	ErrInvalidView = errors.New("invalid view")

	// ErrUnknownKey is returned by Lookup for a key outside the map definition.
	ErrUnknownKey = errors.New("unknown view map key")

	// ErrInvalidConfigValue is returned by ConfigFromBindings for a mistyped or unknown value.
	ErrInvalidConfigValue = errors.New("invalid config value")
)
