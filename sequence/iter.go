package sequence

import "iter"

// Iterators follow the rules for slices: they see the storage block the
// sequence references when iteration starts. Mutating the sequence while
// iterating is allowed but the iterator goes on with the old block, as long
// as it is still referenced.

// Values iterates over the values in insertion order. It never detaches.
func (s *Sequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s.blk == nil {
			return
		}
		for _, v := range s.blk.values {
			if !yield(v) {
				return
			}
		}
	}
}

// Names iterates over the names in insertion order. It never detaches.
func (s *Sequence[T]) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		if s.blk == nil {
			return
		}
		for _, n := range s.blk.names {
			if !yield(n) {
				return
			}
		}
	}
}

// Entries iterates over positions and entries. It never detaches.
func (s *Sequence[T]) Entries() iter.Seq2[int, Entry[T]] {
	return func(yield func(int, Entry[T]) bool) {
		if s.blk == nil {
			return
		}
		blk := s.blk
		for i := range blk.values {
			if !yield(i, Entry[T]{Value: blk.values[i], Name: blk.names[i]}) {
				return
			}
		}
	}
}

// Refs iterates over positions and references to values, allowing clients to
// modify values in place:
//
//	for _, v := range seq.Refs() {
//		*v *= 2
//	}
//
// Starting the iteration detaches s from shared storage.
func (s *Sequence[T]) Refs() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		s.detach()
		s.blk.unsharable = true
		values := s.blk.values
		for i := range values {
			if !yield(i, &values[i]) {
				return
			}
		}
	}
}

// Mutable iterates over positions and references to entries, allowing clients
// to modify values and names in place. Starting the iteration detaches s from
// shared storage.
func (s *Sequence[T]) Mutable() iter.Seq2[int, EntryRef[T]] {
	return func(yield func(int, EntryRef[T]) bool) {
		s.detach()
		blk := s.blk
		blk.unsharable = true
		for i := range blk.values {
			if !yield(i, EntryRef[T]{Value: &blk.values[i], Name: &blk.names[i]}) {
				return
			}
		}
	}
}
