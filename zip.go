package seqwise

import "iter"

// Zip2 combines two views into one view of per-position [Pair] bundles.
//
// On every step the component cursors are advanced in lock-step, left to
// right. The composed view ends at the position where the first component
// ends: its length is the minimum of the component lengths, and unequal
// lengths are intentional truncation, not an error. Components after the
// first exhausted one are not advanced on the final step.
//
// The composed view is reentrant if and only if both components are.
func Zip2[A, B any](a View[A], b View[B]) View[Pair[A, B]] {
	return View[Pair[A, B]]{
		reentrant: a.reentrant && b.reentrant,
		seq: func(yield func(Pair[A, B]) bool) {
			nextA, stopA := iter.Pull(a.All())
			defer stopA()
			nextB, stopB := iter.Pull(b.All())
			defer stopB()

			for {
				x, ok := nextA()
				if !ok {
					return
				}
				y, ok := nextB()
				if !ok {
					return
				}
				if !yield(Pair[A, B]{x, y}) {
					return
				}
			}
		},
	}
}

// Zip3 combines three views into one view of per-position [Triple] bundles.
// Termination and reentrancy rules are the same as for [Zip2].
func Zip3[A, B, C any](a View[A], b View[B], c View[C]) View[Triple[A, B, C]] {
	return View[Triple[A, B, C]]{
		reentrant: a.reentrant && b.reentrant && c.reentrant,
		seq: func(yield func(Triple[A, B, C]) bool) {
			nextA, stopA := iter.Pull(a.All())
			defer stopA()
			nextB, stopB := iter.Pull(b.All())
			defer stopB()
			nextC, stopC := iter.Pull(c.All())
			defer stopC()

			for {
				x, ok := nextA()
				if !ok {
					return
				}
				y, ok := nextB()
				if !ok {
					return
				}
				z, ok := nextC()
				if !ok {
					return
				}
				if !yield(Triple[A, B, C]{x, y, z}) {
					return
				}
			}
		},
	}
}

// Zip4 combines four views into one view of per-position [Quad] bundles.
// Termination and reentrancy rules are the same as for [Zip2].
func Zip4[A, B, C, D any](a View[A], b View[B], c View[C], d View[D]) View[Quad[A, B, C, D]] {
	return View[Quad[A, B, C, D]]{
		reentrant: a.reentrant && b.reentrant && c.reentrant && d.reentrant,
		seq: func(yield func(Quad[A, B, C, D]) bool) {
			nextA, stopA := iter.Pull(a.All())
			defer stopA()
			nextB, stopB := iter.Pull(b.All())
			defer stopB()
			nextC, stopC := iter.Pull(c.All())
			defer stopC()
			nextD, stopD := iter.Pull(d.All())
			defer stopD()

			for {
				x, ok := nextA()
				if !ok {
					return
				}
				y, ok := nextB()
				if !ok {
					return
				}
				z, ok := nextC()
				if !ok {
					return
				}
				w, ok := nextD()
				if !ok {
					return
				}
				if !yield(Quad[A, B, C, D]{x, y, z, w}) {
					return
				}
			}
		},
	}
}

// ZipSame combines any number of same-typed views into one view of [Tuple]
// bundles, one slot per component in argument order. It complements the
// fixed-arity [Zip2], [Zip3] and [Zip4] forms when the component count is
// not known statically. Termination and reentrancy rules are the same as
// for [Zip2]. ZipSame of zero views is an empty view.
func ZipSame[A any](vs ...View[A]) View[Tuple] {
	if len(vs) == 0 {
		return Empty[Tuple]()
	}

	reentrant := true
	for _, v := range vs {
		reentrant = reentrant && v.reentrant
	}

	return View[Tuple]{
		reentrant: reentrant,
		seq: func(yield func(Tuple) bool) {
			nexts := make([]func() (A, bool), len(vs))
			for i, v := range vs {
				next, stop := iter.Pull(v.All())
				defer stop()
				nexts[i] = next
			}

			for {
				bundle := make(Tuple, len(nexts))
				for i, next := range nexts {
					x, ok := next()
					if !ok {
						return
					}
					bundle[i] = x
				}
				if !yield(bundle) {
					return
				}
			}
		},
	}
}

// Enumerate pairs each item of a view with its position, counting from
// start. It is [Zip2] of an unbounded counter and the view:
//
//	seqwise.Enumerate(seqwise.FromSlice([]string{"a", "b"}), 10)
//	// yields {10, "a"}, {11, "b"}
//
// The result is reentrant if and only if v is.
func Enumerate[A any](v View[A], start int) View[Pair[int, A]] {
	return Zip2(Iota(start), v)
}
