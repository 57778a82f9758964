/*
Package sequence implements a copy-on-write, reference-counted sequence of
named values.

A Sequence stores pairs ⟨value, name⟩ in insertion order. Values are accessed by
position in constant time, or by name with a linear scan returning the first
entry carrying that name. Several entries may share a name.

Copies of a sequence are cheap: Clone shares the underlying storage block with
the original and increments the block's reference count. The first mutation
through any of the handles detaches it, i.e. gives it a private copy of the
block. Read-only operations never detach.

	a := sequence.New[int]()
	a.Append(1, "one")
	b := a.Clone()         // b shares storage with a
	b.Append(2, "two")     // b detaches, a is unchanged
	v, _ := a.Lookup("one") // v == 1

Go has no copy constructors or destructors, so handle bookkeeping is explicit:
Clone and Assign create additional owners of a block, Release gives up
ownership. Assigning a *Sequence with `=` aliases the handle, not the block.

# Concurrency

Sequences are not safe for concurrent use. Handles sharing a block share an
unsynchronized reference count, therefore clients using sibling handles from
different goroutines have to synchronize access to all of them.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package sequence

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cow.sequence'.
func tracer() tracing.Trace {
	return tracing.Select("cow.sequence")
}
