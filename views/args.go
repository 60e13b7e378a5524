package views

import (
	"slices"
	"strconv"
)

// CallDescriptor is a view declaration split into its name and the
// arguments for the memoizer.
type CallDescriptor struct {
	Name string
	Args []any
}

// Normalize extracts the view name from raw.
//
// A leading string is taken as the name and framed with "****" so
// user-given names stand out in the log. Without one, the name is the next
// value of the runtime's auto-name counter. Auto names are not stable
// across process restarts.
func (r *Runtime) Normalize(raw ...any) CallDescriptor {
	if len(raw) > 0 {
		if label, ok := raw[0].(string); ok {
			return CallDescriptor{
				Name: "**** " + label + " ****",
				Args: slices.Clone(raw[1:]),
			}
		}
	}

	n := r.counter.Add(1) - 1
	return CallDescriptor{
		Name: strconv.FormatInt(n, 10),
		Args: slices.Clone(raw),
	}
}

// Normalize uses the Default runtime.
func Normalize(raw ...any) CallDescriptor {
	return Default().Normalize(raw...)
}
