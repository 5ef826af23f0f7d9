package script

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/san-kum/strarray/internal/strarray"
)

// Handler applies one step to arr. The returned string is the step's
// output, if any.
type Handler func(arr *strarray.Array, step Step, out io.Writer) (string, error)

type Registry struct {
	ops map[string]Handler
}

func NewRegistry() *Registry {
	r := &Registry{ops: make(map[string]Handler)}

	r.ops["insert"] = func(arr *strarray.Array, step Step, out io.Writer) (string, error) {
		arr.Insert(step.Value, step.Index)
		return "", nil
	}
	r.ops["append"] = func(arr *strarray.Array, step Step, out io.Writer) (string, error) {
		arr.Append(step.Value)
		return "", nil
	}
	r.ops["remove"] = func(arr *strarray.Array, step Step, out io.Writer) (string, error) {
		return "", arr.Remove(step.Value)
	}
	r.ops["read"] = func(arr *strarray.Array, step Step, out io.Writer) (string, error) {
		v, err := arr.Read(step.Index)
		if err != nil {
			return "", err
		}
		_, err = fmt.Fprintln(out, strconv.Quote(v))
		return v, err
	}
	r.ops["print"] = func(arr *strarray.Array, step Step, out io.Writer) (string, error) {
		return arr.String(), arr.Print(out)
	}

	return r
}

func (r *Registry) Get(op string) (Handler, error) {
	h, ok := r.ops[op]
	if !ok {
		return nil, fmt.Errorf("unknown op: %s", op)
	}
	return h, nil
}

// Register adds or replaces the handler for op.
func (r *Registry) Register(op string, h Handler) {
	r.ops[op] = h
}

func (r *Registry) ListOps() []string {
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
