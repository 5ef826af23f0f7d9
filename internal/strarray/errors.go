package strarray

import (
	"errors"
	"fmt"
)

// Domain errors for array operations.
var (
	// ErrIndexOutOfRange indicates an index outside the live range.
	ErrIndexOutOfRange = errors.New("strarray: index out of range")

	// ErrValueNotFound indicates Remove found no equal element.
	ErrValueNotFound = errors.New("strarray: value not found")

	// ErrInvalidCapacity indicates a non-positive initial capacity.
	ErrInvalidCapacity = errors.New("strarray: capacity must be at least 1")

	// ErrDestroyed indicates use of an array after Destroy.
	ErrDestroyed = errors.New("strarray: array used after destroy")
)

// IndexError wraps ErrIndexOutOfRange with the offending index.
// Fatal is set when the error came from a contract violation in Insert or
// Append rather than from a lookup miss in Read.
type IndexError struct {
	Op    string
	Index int
	Count int
	Fatal bool
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d is out of range (count %d)", e.Op, e.Index, e.Count)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// ValueError wraps ErrValueNotFound with the searched value.
type ValueError struct {
	Value string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("remove: value %q not found", e.Value)
}

func (e *ValueError) Unwrap() error {
	return ErrValueNotFound
}

// IsFatal reports whether err carries an IndexError raised by a contract
// violation.
func IsFatal(err error) bool {
	var ie *IndexError
	return errors.As(err, &ie) && ie.Fatal
}
