package list

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds = errors.New("list: index out of bounds")
	ErrEmptyList   = errors.New("list: empty list")

	// ErrModified is the panic value of a cursor that is advanced after
	// its list was structurally modified.
	ErrModified = errors.New("list: modified during iteration")
)

// IndexError reports an index outside [0, Len).
// It wraps ErrOutOfBounds.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("list: index %d out of bounds with length %d", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrOutOfBounds
}
