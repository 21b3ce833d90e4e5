package seq

import (
	"iter"
)

// All adapts a cursor for range loops. The cursor is stopped when the loop
// ends, including on break.
func All[V any](c Cursor[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		defer c.Stop()
		for {
			v, ok := c.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect drains c into a slice. Never returns for infinite cursors.
func Collect[V any](c Cursor[V]) (out []V) {
	defer c.Stop()
	for {
		v, ok := c.Next()
		if !ok {
			return
		}
		out = append(out, v)
	}
}

// Take drains at most n values from c. c is left open to continue
// consuming it.
func Take[V any](c Cursor[V], n int) (out []V) {
	for range n {
		v, ok := c.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return
}
