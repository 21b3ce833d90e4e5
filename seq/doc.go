// Package seq implements lazy combinators over possibly infinite sources.
//
// Each combinator is an explicit state object. Next advances exactly one
// logical step and reports exhaustion with false, forever after. All adapts
// any combinator for range loops:
//
//	for t := range seq.Product(seq.Slice(1, 2), seq.Slice(3, 4)).All() {
//		fmt.Println(t) // [1 3] [1 4] [2 3] [2 4]
//	}
//
// Sources come in two flavors. Iterable sources open a fresh cursor on each
// Cursor call. FromOnce sources are single-pass. Cartesian products restart
// every dimension but the first one, so these dimensions must be
// re-iterable.
//
// Combinators are not safe for concurrent use.
package seq
