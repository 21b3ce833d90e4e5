package seq

import (
	"iter"
	"log/slog"
)

// Cursor is a traversal position over one source.
//
// Next returns false once the source is exhausted, and keeps returning false
// afterwards. Stop releases the traversal. Calling Next after Stop reports
// exhaustion.
type Cursor[T any] interface {
	Next() (T, bool)
	Stop()
}

// Iterable is a re-iterable source: each call to Cursor opens a fresh,
// independent traversal.
type Iterable[T any] interface {
	Cursor() Cursor[T]
}

// Sized sources know their length without iterating.
type Sized interface {
	Len() int
}

// LowerBound returns a lower bound of the number of elements of src.
//
// Never iterates. Returns 0 when src does not know its length.
func LowerBound[T any](src Iterable[T]) int {
	if s, ok := src.(Sized); ok {
		return max(0, s.Len())
	}
	return 0
}

type sliceSource[T any] []T

// Slice returns a re-iterable source over values.
func Slice[T any](values ...T) Iterable[T] {
	return sliceSource[T](values)
}

// FromSlice is Slice for an existing slice. The slice is not copied.
func FromSlice[T any, S ~[]T](s S) Iterable[T] {
	return sliceSource[T](s)
}

func (s sliceSource[T]) Len() int {
	return len(s)
}

func (s sliceSource[T]) Cursor() Cursor[T] {
	return &sliceCursor[T]{values: s}
}

type sliceCursor[T any] struct {
	values []T
	index  int
}

func (c *sliceCursor[T]) Next() (v T, ok bool) {
	if c.index >= len(c.values) {
		return
	}
	v = c.values[c.index]
	c.index++
	return v, true
}

func (c *sliceCursor[T]) Stop() {
	c.index = len(c.values)
}

type seqSource[T any] struct {
	seq iter.Seq[T]
}

// FromSeq wraps an iterator function. The source is re-iterable as long as
// seq can be ranged over several times.
func FromSeq[T any](seq iter.Seq[T]) Iterable[T] {
	return seqSource[T]{seq: seq}
}

func (s seqSource[T]) Cursor() Cursor[T] {
	return pull(s.seq)
}

// pullCursor adapts iter.Pull. The coroutine is stopped as soon as the
// sequence is exhausted.
type pullCursor[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

func pull[T any](seq iter.Seq[T]) *pullCursor[T] {
	next, stop := iter.Pull(seq)
	return &pullCursor[T]{next: next, stop: stop}
}

func (c *pullCursor[T]) Next() (v T, ok bool) {
	if c.done {
		return
	}
	v, ok = c.next()
	if !ok {
		c.Stop()
	}
	return
}

func (c *pullCursor[T]) Stop() {
	if c.done {
		return
	}
	c.done = true
	c.stop()
}

type onceSource[T any] struct {
	seq    iter.Seq[T]
	opened bool
}

// FromOnce wraps a single-pass iterator function.
//
// The first Cursor call returns the live traversal. Later calls return an
// exhausted cursor: a single-pass source cannot be restarted.
func FromOnce[T any](seq iter.Seq[T]) Iterable[T] {
	return &onceSource[T]{seq: seq}
}

func (s *onceSource[T]) Cursor() Cursor[T] {
	if s.opened {
		slog.Debug("Restarting single-pass source.")
		return exhausted[T]{}
	}
	s.opened = true
	return pull(s.seq)
}

type exhausted[T any] struct{}

func (exhausted[T]) Next() (v T, ok bool) { return }
func (exhausted[T]) Stop()                {}

// CountingSource records how many traversals were opened on its source.
type CountingSource[T any] struct {
	src    Iterable[T]
	opened int
}

// Counting wraps src to observe restarts.
func Counting[T any](src Iterable[T]) *CountingSource[T] {
	return &CountingSource[T]{src: src}
}

func (c *CountingSource[T]) Cursor() Cursor[T] {
	c.opened++
	return c.src.Cursor()
}

// Opened returns the number of cursors opened so far.
func (c *CountingSource[T]) Opened() int {
	return c.opened
}

// Restarts returns the number of cursors opened after the first one.
func (c *CountingSource[T]) Restarts() int {
	return max(0, c.opened-1)
}

