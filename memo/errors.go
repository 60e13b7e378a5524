package memo

import "errors"

// Construction errors, returned by New and raised by MustNew.
var (
	ErrNoInputSelectors     = errors.New("selector needs at least one input selector")
	ErrInvalidInputSelector = errors.New("invalid input selector")
	ErrInvalidCombiner      = errors.New("invalid combiner")
	ErrCombinerArity        = errors.New("combiner arity does not match input selectors")
	ErrCombinerArgType      = errors.New("combiner argument type mismatch")
)

// ErrStateType is raised when Select is called with a state an input
// selector cannot accept.
var ErrStateType = errors.New("state type mismatch")
