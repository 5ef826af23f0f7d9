package strarray

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Array is a growable sequence of strings that owns every value it holds.
// Slots at or beyond Len() are always empty.
type Array struct {
	elements  []string
	count     int
	destroyed bool
	log       *slog.Logger
	observers []Observer
}

// New allocates an array with exactly capacity empty slots.
func New(capacity int, opts ...Option) (*Array, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	a := &Array{
		elements:  make([]string, capacity),
		log:       defaultLogger(),
		observers: make([]Observer, 0),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Destroy releases every stored value and the slot storage. The array must
// not be used afterwards.
func (a *Array) Destroy() {
	a.mustBeLive()
	for i := 0; i < a.count; i++ {
		a.elements[i] = ""
	}
	a.elements = nil
	a.count = 0
	a.destroyed = true
}

func (a *Array) IsDestroyed() bool { return a.destroyed }

func (a *Array) Len() int {
	a.mustBeLive()
	return a.count
}

func (a *Array) Cap() int {
	a.mustBeLive()
	return len(a.elements)
}

// Read returns the element at index. An index outside [0, Len()) yields an
// *IndexError and leaves the array untouched.
func (a *Array) Read(index int) (string, error) {
	a.mustBeLive()
	if index < 0 || index >= a.count {
		a.log.Warn("index out of range", "op", "read", "index", index, "count", a.count)
		return "", &IndexError{Op: "read", Index: index, Count: a.count}
	}
	return a.elements[index], nil
}

// Insert stores a copy of value at index, shifting later elements one slot
// to the right. index may equal Len(). Any other out-of-range index is a
// caller bug and panics with a fatal *IndexError before anything changes.
func (a *Array) Insert(value string, index int) {
	a.mustBeLive()
	if index < 0 || index > a.count {
		err := &IndexError{Op: "insert", Index: index, Count: a.count, Fatal: true}
		a.log.Error("index out of range", "op", "insert", "index", index, "count", a.count)
		panic(err)
	}

	if a.count == len(a.elements) {
		a.grow()
	}

	for i := a.count; i > index; i-- {
		a.elements[i] = a.elements[i-1]
	}
	a.elements[index] = strings.Clone(value)
	a.count++

	for _, o := range a.observers {
		o.OnInsert(index, a.count)
	}
}

// Append is Insert at Len().
func (a *Array) Append(value string) {
	a.mustBeLive()
	a.Insert(value, a.count)
}

// Remove drops the first element equal to value and closes the gap. When no
// element matches, nothing changes and a *ValueError is returned.
func (a *Array) Remove(value string) error {
	a.mustBeLive()
	found := -1
	for i := 0; i < a.count; i++ {
		if a.elements[i] == value {
			found = i
			break
		}
	}
	if found < 0 {
		a.log.Warn("value not found", "op", "remove", "value", value)
		return &ValueError{Value: value}
	}

	a.elements[found] = ""
	for i := found; i < a.count-1; i++ {
		a.elements[i] = a.elements[i+1]
	}
	a.count--
	a.elements[a.count] = ""

	for _, o := range a.observers {
		o.OnRemove(found, a.count)
	}
	return nil
}

// Elements returns a copy of the live elements in order.
func (a *Array) Elements() []string {
	a.mustBeLive()
	out := make([]string, a.count)
	copy(out, a.elements[:a.count])
	return out
}

func (a *Array) String() string {
	if a.destroyed {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < a.count; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(a.elements[i])
	}
	sb.WriteByte(']')
	return sb.String()
}

// Print writes the bracketed rendering followed by a newline.
func (a *Array) Print(w io.Writer) error {
	a.mustBeLive()
	_, err := fmt.Fprintln(w, a.String())
	return err
}

// grow doubles the slot storage. Value ownership moves to the new slots.
func (a *Array) grow() {
	from := len(a.elements)
	to := from * 2
	next := make([]string, to)
	for i := 0; i < a.count; i++ {
		next[i] = a.elements[i]
	}
	a.elements = next

	a.log.Debug("grow", "from", from, "to", to)
	for _, o := range a.observers {
		o.OnGrow(from, to)
	}
}

func (a *Array) mustBeLive() {
	if a.destroyed {
		panic(ErrDestroyed)
	}
}
