package sequence

import "fmt"

// IndexOutOfRange is returned for positional access outside of [0…Len).
type IndexOutOfRange struct {
	Index int
	Size  int
}

func (e IndexOutOfRange) Error() string {
	return fmt.Sprintf("sequence index out of range: %d with length %d", e.Index, e.Size)
}

// NameNotFound is returned by name lookups without a matching entry.
type NameNotFound struct {
	Name string
}

func (e NameNotFound) Error() string {
	return fmt.Sprintf("sequence has no entry named %q", e.Name)
}
