package seq

import (
	"golang.org/x/exp/constraints"
)

type countSource[T constraints.Integer] struct {
	start, step T
}

// Count returns the infinite progression start, start+step, start+2*step...
//
// Overflow wraps like regular Go integer arithmetic.
func Count[T constraints.Integer](start, step T) Iterable[T] {
	return countSource[T]{start: start, step: step}
}

func (s countSource[T]) Cursor() Cursor[T] {
	return &countCursor[T]{next: s.start, step: s.step}
}

type countCursor[T constraints.Integer] struct {
	next, step T
	stopped    bool
}

func (c *countCursor[T]) Next() (v T, ok bool) {
	if c.stopped {
		return
	}
	v = c.next
	c.next += c.step
	return v, true
}

func (c *countCursor[T]) Stop() {
	c.stopped = true
}

type repeatSource[T any] struct {
	value T
	times int
}

// Repeat returns a source yielding value times times. A negative times
// repeats forever.
func Repeat[T any](value T, times int) Iterable[T] {
	if times < 0 {
		return repeatSource[T]{value: value, times: -1}
	}
	return sizedRepeat[T]{repeatSource[T]{value: value, times: times}}
}

// Only bounded repetitions are sized.
type sizedRepeat[T any] struct {
	repeatSource[T]
}

func (s sizedRepeat[T]) Len() int {
	return s.times
}

func (s repeatSource[T]) Cursor() Cursor[T] {
	return &repeatCursor[T]{value: s.value, left: s.times}
}

type repeatCursor[T any] struct {
	value T
	left  int
}

func (c *repeatCursor[T]) Next() (v T, ok bool) {
	if c.left == 0 {
		return
	}
	if c.left > 0 {
		c.left--
	}
	return c.value, true
}

func (c *repeatCursor[T]) Stop() {
	c.left = 0
}
