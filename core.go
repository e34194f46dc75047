package seqwise

import "iter"

// View is a lazily evaluated sequence of items of type A.
//
// A View is a value: it is cheap to pass around, is never mutated after
// construction, and composes by wrapping. All adaptors in this package
// ([Zip2], [Map], [Flatten], ...) take views and return new views without
// touching the underlying sources.
//
// Every view carries a traversal classification, fixed at the moment the
// view is built:
//   - a reentrant (multi-pass) view can be traversed any number of times
//     and observes the same items on each pass;
//   - a single-pass view may only be correctly traversed once. Traversing
//     it again is not an error, but observes no items.
//
// Adaptors propagate the classification structurally: a composed view is
// reentrant if and only if all of its inputs are.
//
// The zero value is a valid empty reentrant view.
type View[A any] struct {
	seq       iter.Seq[A]
	reentrant bool
}

// All returns the view's items as a standard iterator, suitable for
// range-over-func loops:
//
//	for x := range v.All() {
//		...
//	}
//
// Breaking out of the loop early is always safe and requires no cleanup.
func (v View[A]) All() iter.Seq[A] {
	if v.seq == nil {
		return func(yield func(A) bool) {}
	}
	return v.seq
}

// Pull returns a cursor over the view's items for callers that drive the
// traversal manually. Each call to next returns the next item; the second
// return value becomes false once the end of the view is reached.
// The caller must call stop when done with the cursor.
func (v View[A]) Pull() (next func() (A, bool), stop func()) {
	return iter.Pull(v.All())
}

// Reentrant reports whether the view is classified as multi-pass.
func (v View[A]) Reentrant() bool {
	return v.reentrant
}

// Empty returns an empty reentrant view.
func Empty[A any]() View[A] {
	return View[A]{reentrant: true}
}

// Iota returns an unbounded reentrant view counting up from start.
// It is primarily useful as a zip component: zipping an unbounded view
// against a finite one truncates it, which is exactly how [Enumerate]
// is built.
func Iota(start int) View[int] {
	return View[int]{
		reentrant: true,
		seq: func(yield func(int) bool) {
			for i := start; ; i++ {
				if !yield(i) {
					return
				}
			}
		},
	}
}
