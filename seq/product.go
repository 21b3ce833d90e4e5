package seq

import (
	"iter"
	"log/slog"
	"slices"
)

// ProductIterator enumerates the Cartesian product of sources of the same
// type, in odometer order: the last source varies fastest.
//
// Every source but the first is restarted each time the sources on its left
// advance, and thus must be re-iterable.
type ProductIterator[T any] struct {
	sources []Iterable[T]
	cursors []Cursor[T]
	current []T
	started bool
	done    bool
}

// Product binds a product iterator to sources. One cursor per source is
// opened immediately. Product of no source is empty.
func Product[T any](sources ...Iterable[T]) *ProductIterator[T] {
	p := &ProductIterator[T]{
		sources: sources,
		cursors: make([]Cursor[T], len(sources)),
		current: make([]T, len(sources)),
		done:    len(sources) == 0,
	}
	for i, src := range sources {
		p.cursors[i] = src.Cursor()
	}
	return p
}

// Next returns the next combination. The returned slice is owned by the
// caller.
func (p *ProductIterator[T]) Next() ([]T, bool) {
	if p.done {
		return nil, false
	}

	if !p.started {
		p.started = true
		for i, c := range p.cursors {
			v, ok := c.Next()
			if !ok {
				// Multiplying by empty breaks everything.
				slog.Debug("Empty source in product.", "index", i)
				p.Stop()
				return nil, false
			}
			p.current[i] = v
		}
		return slices.Clone(p.current), true
	}

	// Loop sources from right to left to find the right-most one
	// which is not exhausted. Sources on its right rollover.
	//
	// (0, 1, 1) -> (0, 1, 2)
	// OR
	// (0, 1, 2) -> (0, 2, 0) if last source is exhausted.
	for i := len(p.cursors) - 1; i >= 0; i-- {
		v, ok := p.cursors[i].Next()
		if !ok {
			continue
		}
		p.current[i] = v
		if !p.rewind(i + 1) {
			return nil, false
		}
		return slices.Clone(p.current), true
	}

	// First source is exhausted. We have rolled over all sources.
	p.Stop()
	return nil, false
}

// rewind restarts every source from index from and loads their first value.
func (p *ProductIterator[T]) rewind(from int) bool {
	for i := from; i < len(p.cursors); i++ {
		p.cursors[i].Stop()
		p.cursors[i] = p.sources[i].Cursor()
		v, ok := p.cursors[i].Next()
		if !ok {
			// Source is not re-iterable or changed since first pass.
			slog.Debug("Product source restarted empty.", "index", i)
			p.Stop()
			return false
		}
		p.current[i] = v
	}
	return true
}

// Stop ends the product and stops all cursors.
func (p *ProductIterator[T]) Stop() {
	if p.done && p.current == nil {
		return
	}
	p.done = true
	p.current = nil
	for _, c := range p.cursors {
		c.Stop()
	}
}

// Cursor returns the iterator itself. A product is a single-pass source.
func (p *ProductIterator[T]) Cursor() Cursor[[]T] {
	return p
}

func (p *ProductIterator[T]) All() iter.Seq[[]T] {
	return All[[]T](p)
}
