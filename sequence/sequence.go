package sequence

import (
	"fmt"
	"slices"
	"strings"
)

// Sequence is an ordered collection of named values with copy-on-write
// storage. An empty instance is usable as an empty sequence, i.e. this is legal:
//
//	var seq sequence.Sequence[int]
//	seq.Append(42, "answer")
//
// Sequences have to be used by pointer; copying the struct itself bypasses the
// reference count (go vet reports such copies). Use Clone to create an
// additional handle.
type Sequence[T any] struct {
	_ noCopy
	props
	blk *block[T]
}

// noCopy makes go vet's copylocks check flag value copies of a Sequence.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Entry is a read-only ⟨value, name⟩ pair, as returned by At.
type Entry[T any] struct {
	Value T
	Name  string
}

// EntryRef references the value and name of an entry of an unshared block,
// as returned by Ref. It is valid until the next mutation of the sequence.
// Handles cloned from the sequence while an EntryRef is valid get their own
// copy of the storage, so writes through the EntryRef never reach them.
type EntryRef[T any] struct {
	Value *T
	Name  *string
}

type props struct {
	capacity int
	tracker  *Tracker
}

// New constructs an empty sequence with options, if you need any.
// Use it like this:
//
//	seq := sequence.New[string](sequence.WithCapacity(64))
func New[T any](opts ...Option) *Sequence[T] {
	s := &Sequence[T]{}
	for _, option := range opts {
		s.props = option(s.props)
	}
	s.blk = newBlock[T](s.capacity, s.tracker)
	return s
}

// Option is a type to help initializing sequences at creation time.
type Option func(props) props

// WithCapacity is an option to reserve space for n entries.
func WithCapacity(n int) Option {
	return func(p props) props {
		p.capacity = max(0, n)
		return p
	}
}

// WithTracker is an option to account created and freed storage blocks
// with tr, including blocks created by detaching clones of the sequence.
func WithTracker(tr *Tracker) Option {
	return func(p props) props {
		p.tracker = tr
		return p
	}
}

// --- Handles ---------------------------------------------------------------

// Clone returns a new handle sharing storage with s. Clone does not copy
// any entries; the first mutation through either handle will. If references
// obtained from Ref, LookupRef, Refs or Mutable are still valid, Clone copies
// the entries right away.
func (s *Sequence[T]) Clone() *Sequence[T] {
	c := &Sequence[T]{props: s.props}
	if s.blk != nil {
		c.blk = s.blk.share()
	}
	return c
}

// Assign makes s share the storage of other, releasing the storage s held
// before. Assigning a sequence to itself is a no-op.
func (s *Sequence[T]) Assign(other *Sequence[T]) {
	if s == other || s.blk != nil && s.blk == other.blk {
		return
	}
	var blk *block[T]
	if other.blk != nil {
		blk = other.blk.share()
	}
	s.Release()
	s.props = other.props
	s.blk = blk
}

// Release gives up the handle's reference to its storage. Storage is freed
// when the last handle referencing it is released. Afterwards s is an empty
// sequence and may be used again. Releasing twice is harmless.
func (s *Sequence[T]) Release() {
	if s.blk == nil {
		return
	}
	s.blk.release()
	s.blk = nil
}

// RefCount returns the number of handles sharing storage with s, including s.
// It is 0 for a sequence without storage.
func (s *Sequence[T]) RefCount() int {
	if s.blk == nil {
		return 0
	}
	return s.blk.refs
}

// SharesStorage is true if s and other currently reference the same block.
func (s *Sequence[T]) SharesStorage(other *Sequence[T]) bool {
	return s.blk != nil && s.blk == other.blk
}

// --- API -------------------------------------------------------------------

// Len returns the number of entries.
func (s *Sequence[T]) Len() int {
	if s.blk == nil {
		return 0
	}
	return s.blk.len()
}

// IsEmpty is true if s has no entries.
func (s *Sequence[T]) IsEmpty() bool {
	return s.Len() == 0
}

// Cap returns the number of entries s can hold without re-allocating storage.
func (s *Sequence[T]) Cap() int {
	if s.blk == nil {
		return 0
	}
	return cap(s.blk.values)
}

// Append adds an entry to the end of s.
func (s *Sequence[T]) Append(value T, name string) {
	s.detach()
	s.blk.values = append(s.blk.values, value)
	s.blk.names = append(s.blk.names, name)
}

// At returns the entry at position i. At never detaches.
func (s *Sequence[T]) At(i int) (Entry[T], error) {
	if err := s.checkIndex(i); err != nil {
		return Entry[T]{}, err
	}
	return Entry[T]{Value: s.blk.values[i], Name: s.blk.names[i]}, nil
}

// Ref returns references to the value and name at position i, detaching
// s from shared storage first. An index out of range is reported before
// any detachment happens.
func (s *Sequence[T]) Ref(i int) (EntryRef[T], error) {
	if err := s.checkIndex(i); err != nil {
		return EntryRef[T]{}, err
	}
	s.detach()
	s.blk.unsharable = true
	return EntryRef[T]{Value: &s.blk.values[i], Name: &s.blk.names[i]}, nil
}

// Lookup returns the value of the first entry named name. Lookup never detaches.
func (s *Sequence[T]) Lookup(name string) (T, error) {
	value, found := s.Find(name)
	if !found {
		return value, NameNotFound{Name: name}
	}
	return value, nil
}

// Find locates the first entry named name and returns its value.
// If `name` is not found, the zero value for type T will be returned, together with found=false.
func (s *Sequence[T]) Find(name string) (T, bool) {
	var zero T
	if s.blk == nil {
		return zero, false
	}
	if i := s.blk.find(name); i >= 0 {
		return s.blk.values[i], true
	}
	return zero, false
}

// LookupRef returns a reference to the value of the first entry named name.
// s will be detached only if such an entry exists.
func (s *Sequence[T]) LookupRef(name string) (*T, error) {
	i := -1
	if s.blk != nil {
		i = s.blk.find(name)
	}
	if i < 0 {
		return nil, NameNotFound{Name: name}
	}
	s.detach() // keeps positions
	s.blk.unsharable = true
	return &s.blk.values[i], nil
}

// Reserve makes room for at least n entries without changing the content.
// Reserve counts as a mutation: a shared sequence gets its own storage first.
func (s *Sequence[T]) Reserve(n int) {
	s.detach()
	if n > cap(s.blk.values) {
		grow := n - len(s.blk.values)
		tracer().Debugf("reserving storage for %d entries", n)
		s.blk.values = slices.Grow(s.blk.values, grow)
		s.blk.names = slices.Grow(s.blk.names, grow)
	}
}

// Clear removes all entries. If s shares storage, the shared block is left
// untouched and s continues with fresh, empty storage.
func (s *Sequence[T]) Clear() {
	if s.blk == nil {
		return
	}
	if s.blk.refs > 1 {
		tracer().Debugf("clearing shared sequence, dropping reference to %v", s.blk)
		tr := s.blk.tracker
		s.blk.release()
		s.blk = newBlock[T](s.capacity, tr)
		return
	}
	clear(s.blk.values)
	clear(s.blk.names)
	s.blk.unsharable = false
	s.blk.values = s.blk.values[:0]
	s.blk.names = s.blk.names[:0]
}

// Equal reports whether s and other hold the same names and values in the
// same order, comparing values with eq. Equal never detaches.
func (s *Sequence[T]) Equal(other *Sequence[T], eq func(T, T) bool) bool {
	if s.SharesStorage(other) {
		return true
	}
	if s.Len() != other.Len() {
		return false
	}
	for i := 0; i < s.Len(); i++ {
		if s.blk.names[i] != other.blk.names[i] || !eq(s.blk.values[i], other.blk.values[i]) {
			return false
		}
	}
	return true
}

func (s *Sequence[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	for i, e := range s.Entries() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%s:%v", e.Name, e.Value))
	}
	b.WriteByte(']')
	return b.String()
}

// --- Internals -------------------------------------------------------------

func (s *Sequence[T]) checkIndex(i int) error {
	if n := s.Len(); i < 0 || i >= n {
		return IndexOutOfRange{Index: i, Size: n}
	}
	return nil
}

// detach makes sure s is the only owner of its storage block, copying the
// block if it is shared. References handed out before are void afterwards,
// so the block becomes sharable again.
func (s *Sequence[T]) detach() {
	if s.blk == nil {
		s.blk = newBlock[T](s.capacity, s.tracker)
		return
	}
	if s.blk.refs == 1 {
		s.blk.unsharable = false
		return
	}
	tracer().Debugf("detaching from shared %v", s.blk)
	cow := s.blk.clone()
	s.blk.release()
	s.blk = cow
}
