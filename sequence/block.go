package sequence

import "fmt"

/*
Remarks:
--------

- A block couples the reference count with the payload. Handles never hold the
  count separately, so count and storage are created and dropped together.

- A block with refs > 1 is never written to. Every mutating operation of a
  Sequence calls detach first.

- A block is unsharable while its owner has handed out pointers into it (Ref,
  LookupRef, Refs, Mutable). Clones of an unsharable block get a copy of their own.
  The next mutation through the owner makes the block sharable again.

*/

// block is the storage shared between handles.
type block[T any] struct {
	refs       int
	unsharable bool
	values     []T
	names      []string
	tracker    *Tracker
}

func newBlock[T any](capacity int, tracker *Tracker) *block[T] {
	blk := &block[T]{
		refs:    1,
		values:  make([]T, 0, capacity),
		names:   make([]string, 0, capacity),
		tracker: tracker,
	}
	tracker.allocated()
	return blk
}

// clone creates an unshared copy of blk with identical content and order.
func (blk *block[T]) clone() *block[T] {
	n := len(blk.values)
	c := cap(blk.values)
	cow := &block[T]{
		refs:    1,
		values:  make([]T, n, c),
		names:   make([]string, n, c),
		tracker: blk.tracker,
	}
	copy(cow.values, blk.values)
	copy(cow.names, blk.names)
	blk.tracker.allocated()
	return cow
}

func (blk *block[T]) len() int {
	assertThat(len(blk.values) == len(blk.names), "inconsistency: %d values vs. %d names",
		len(blk.values), len(blk.names))
	return len(blk.values)
}

// find returns the position of the first entry named name, or -1.
func (blk *block[T]) find(name string) int {
	for i, n := range blk.names {
		if n == name {
			return i
		}
	}
	return -1
}

func (blk *block[T]) acquire() *block[T] {
	blk.refs++
	return blk
}

// share returns blk with one more reference, or an unshared copy of blk if
// pointers into blk are live.
func (blk *block[T]) share() *block[T] {
	if blk.unsharable {
		tracer().Debugf("copying unsharable %v", blk)
		return blk.clone()
	}
	return blk.acquire()
}

// release drops one reference. The last reference frees the payload.
func (blk *block[T]) release() {
	assertThat(blk.refs > 0, "inconsistency: release of unreferenced block")
	blk.refs--
	if blk.refs > 0 {
		return
	}
	tracer().Debugf("releasing storage block of length %d", len(blk.values))
	blk.values = nil
	blk.names = nil
	blk.tracker.released()
}

func (blk *block[T]) String() string {
	return fmt.Sprintf("block(refs=%d, len=%d, cap=%d, sharable=%v)", blk.refs, len(blk.values), cap(blk.values), !blk.unsharable)
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("sequence: "+msg, msgargs...)
		panic(msg)
	}
}
