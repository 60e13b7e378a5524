package views

import (
	"errors"

	"github.com/on-the-ground/computed_views/shared/helper"
)

// Factory declares views: an optional name followed by the memoizer
// arguments. It panics if the memoizer rejects the arguments.
type Factory func(raw ...any) View

// Try is the non-panicking variant of calling f.
func (f Factory) Try(raw ...any) (view View, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.Is(e, ErrInvalidView) {
				err = e
				return
			}
			panic(r)
		}
	}()
	return f(raw...), nil
}

// CreateBuilder binds a Config, then a prefix, and returns a Factory whose
// views are named "[prefix] - name". Views from one Factory share the
// Config but each keeps its own cache and recomputation count.
//
//	view := rt.CreateBuilder(views.WithLog(sink))("Users")
//	active := view("ActiveUsers", selectUsers, filterActive)
func (r *Runtime) CreateBuilder(opts ...Option) func(prefix string) Factory {
	cfg := r.NewConfig(opts...)
	return func(prefix string) Factory {
		return func(raw ...any) View {
			d := r.Normalize(raw...)
			d.Name = "[" + prefix + "] - " + d.Name
			return mustView(r.NamedView(d, cfg))
		}
	}
}

// New declares a view with the default Config and no prefix.
func (r *Runtime) New(raw ...any) View {
	return mustView(r.NamedView(r.Normalize(raw...), r.NewConfig()))
}

// CreateBuilder uses the Default runtime.
func CreateBuilder(opts ...Option) func(prefix string) Factory {
	return Default().CreateBuilder(opts...)
}

// New uses the Default runtime.
func New(raw ...any) View {
	return Default().New(raw...)
}

// Typed adapts v to a typed func. It panics if v returns something other
// than R.
func Typed[S, R any](v View) func(S) R {
	return func(state S) R {
		return helper.MustGetTypedValue[R](func() (any, error) {
			return v.Select(state), nil
		})
	}
}

func mustView(v View, err error) View {
	if err != nil {
		panic(err)
	}
	return v
}
