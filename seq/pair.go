package seq

import (
	"fmt"
	"iter"
	"log/slog"
)

type Pair[A, B any] struct {
	First  A
	Second B
}

func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

func (p Pair[A, B]) Values() (A, B) {
	return p.First, p.Second
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// PairIterator enumerates the Cartesian product of two sources, second
// source varying fastest.
//
// The first source is consumed exactly once: it may be infinite or
// single-pass. The second source is restarted for each element of the first
// source and must be re-iterable.
type PairIterator[A, B any] struct {
	first      Cursor[A]
	second     Iterable[B]
	inner      Cursor[B]
	current    A
	hasCurrent bool
	// Second source holds no element.
	empty bool
	// Current pass on second source yielded at least one element.
	yielded bool
	done    bool
}

func ProductPair[A, B any](first Iterable[A], second Iterable[B]) *PairIterator[A, B] {
	p := &PairIterator[A, B]{
		first:  first.Cursor(),
		second: second,
		inner:  second.Cursor(),
		empty:  isEmpty(second),
	}
	p.current, p.hasCurrent = p.first.Next()
	return p
}

func isEmpty[T any](src Iterable[T]) bool {
	s, ok := src.(Sized)
	return ok && s.Len() == 0
}

func (p *PairIterator[A, B]) Next() (Pair[A, B], bool) {
	for !p.done {
		// Never consume first source when second one is empty.
		if p.empty || !p.hasCurrent {
			p.Stop()
			break
		}

		if v, ok := p.inner.Next(); ok {
			p.yielded = true
			return MakePair(p.current, v), true
		}

		if !p.yielded {
			slog.Debug("Second source of pair product is empty.")
			p.empty = true
			continue
		}

		p.current, p.hasCurrent = p.first.Next()
		if !p.hasCurrent {
			continue
		}
		p.inner.Stop()
		p.inner = p.second.Cursor()
		p.yielded = false
	}
	return Pair[A, B]{}, false
}

func (p *PairIterator[A, B]) Stop() {
	if p.done {
		return
	}
	p.done = true
	p.hasCurrent = false
	var zero A
	p.current = zero
	p.first.Stop()
	p.inner.Stop()
}

// Cursor returns the iterator itself. A product is a single-pass source.
func (p *PairIterator[A, B]) Cursor() Cursor[Pair[A, B]] {
	return p
}

func (p *PairIterator[A, B]) All() iter.Seq[Pair[A, B]] {
	return All[Pair[A, B]](p)
}
