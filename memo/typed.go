package memo

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

// Typed is a Selector with compile-time checked state and result types.
type Typed[S, R any] struct {
	sel *Selector
}

func (t *Typed[S, R]) Select(state S) R {
	return as[R](t.sel.Select(state))
}

func (t *Typed[S, R]) Recomputations() int {
	return t.sel.Recomputations()
}

// Untyped exposes the underlying Selector, e.g. to feed it to another
// selector or to a view builder.
func (t *Typed[S, R]) Untyped() *Selector {
	return t.sel
}

func Select1[S, A, R any](
	in1 func(S) A,
	combine func(A) R,
	opts ...Options,
) *Typed[S, R] {
	return newTyped[S, R](opts, in1, combine)
}

func Select2[S, A, B, R any](
	in1 func(S) A,
	in2 func(S) B,
	combine func(A, B) R,
	opts ...Options,
) *Typed[S, R] {
	return newTyped[S, R](opts, in1, in2, combine)
}

func Select3[S, A, B, C, R any](
	in1 func(S) A,
	in2 func(S) B,
	in3 func(S) C,
	combine func(A, B, C) R,
	opts ...Options,
) *Typed[S, R] {
	return newTyped[S, R](opts, in1, in2, in3, combine)
}

func newTyped[S, R any](opts []Options, args ...any) *Typed[S, R] {
	if len(opts) > 0 {
		args = append(args, opts[0])
	}
	return &Typed[S, R]{sel: MustNew(args...)}
}
