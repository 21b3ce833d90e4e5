package seq

import (
	"iter"
)

// ZipIterator pairs elements of two sources until both are exhausted. The
// shorter side is padded with its fill value.
//
// Sources are traversed once, single-pass sources are fine.
type ZipIterator[A, B any] struct {
	first      Cursor[A]
	second     Cursor[B]
	firstFill  A
	secondFill B
	firstDone  bool
	secondDone bool
}

func ZipLongest[A, B any](first Iterable[A], second Iterable[B], firstFill A, secondFill B) *ZipIterator[A, B] {
	return &ZipIterator[A, B]{
		first:      first.Cursor(),
		second:     second.Cursor(),
		firstFill:  firstFill,
		secondFill: secondFill,
	}
}

func (z *ZipIterator[A, B]) Next() (p Pair[A, B], ok bool) {
	var okFirst, okSecond bool
	// An exhausted side is never advanced again.
	if !z.firstDone {
		p.First, okFirst = z.first.Next()
		z.firstDone = !okFirst
	}
	if !z.secondDone {
		p.Second, okSecond = z.second.Next()
		z.secondDone = !okSecond
	}

	if !okFirst && !okSecond {
		z.Stop()
		return Pair[A, B]{}, false
	}
	if !okFirst {
		p.First = z.firstFill
	}
	if !okSecond {
		p.Second = z.secondFill
	}
	return p, true
}

func (z *ZipIterator[A, B]) Stop() {
	z.firstDone = true
	z.secondDone = true
	z.first.Stop()
	z.second.Stop()
}

// Cursor returns the iterator itself. A zip is a single-pass source.
func (z *ZipIterator[A, B]) Cursor() Cursor[Pair[A, B]] {
	return z
}

func (z *ZipIterator[A, B]) All() iter.Seq[Pair[A, B]] {
	return All[Pair[A, B]](z)
}
