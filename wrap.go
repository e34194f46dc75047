package seqwise

// FromSlice converts a slice into a reentrant view over its elements.
// The view borrows the slice: no elements are copied, and the slice must
// stay alive (and unmodified, if stable results are expected) for as long
// as the view is traversed.
func FromSlice[S ~[]A, A any](s S) View[A] {
	return View[A]{
		reentrant: true,
		seq: func(yield func(A) bool) {
			for _, x := range s {
				if !yield(x) {
					return
				}
			}
		},
	}
}

// FromSliceRef converts a slice into a reentrant view of pointers into the
// slice's storage. Unlike [FromSlice], which yields element values, the
// returned view lets callers read and write elements in place:
//
//	for p := range seqwise.FromSliceRef(items).All() {
//		p.Count++
//	}
//
// The pointers are valid only while the original slice is alive.
func FromSliceRef[S ~[]A, A any](s S) View[*A] {
	return View[*A]{
		reentrant: true,
		seq: func(yield func(*A) bool) {
			for i := range s {
				if !yield(&s[i]) {
					return
				}
			}
		},
	}
}

// FromChan converts a channel into a single-pass view. The view yields
// items until the channel is closed. Receiving from a channel consumes it,
// so a second traversal of the view observes no items.
func FromChan[A any](ch <-chan A) View[A] {
	if ch == nil {
		return View[A]{}
	}
	return View[A]{
		seq: func(yield func(A) bool) {
			for x := range ch {
				if !yield(x) {
					return
				}
			}
		},
	}
}

// FromNext promotes a bare cursor into a view. The next function is the
// weakest source this package accepts: it returns the next item and true,
// or a zero item and false once the source is exhausted. Nothing stronger
// is assumed, so the resulting view is classified single-pass.
func FromNext[A any](next func() (A, bool)) View[A] {
	if next == nil {
		return View[A]{}
	}
	return View[A]{
		seq: func(yield func(A) bool) {
			for {
				x, ok := next()
				if !ok {
					return
				}
				if !yield(x) {
					return
				}
			}
		},
	}
}

// Reentrant reclassifies a view as multi-pass. Promotion from sources
// whose traversal guarantees are not structurally evident ([FromSeq],
// [FromNext]) defaults to the conservative single-pass classification;
// Reentrant is the caller's declaration that the underlying source can in
// fact be traversed repeatedly with consistent results. The declaration is
// not verified.
func Reentrant[A any](v View[A]) View[A] {
	v.reentrant = true
	return v
}
