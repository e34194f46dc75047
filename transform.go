package seqwise

// Map applies a transformation function to each item of a view. The
// function is applied at access time, on every traversal; results are
// never cached.
//
// Map is a visiting (non-consuming) projection: it reads items without
// consuming the source beyond what the consumer drives, so the result is
// reentrant if and only if v is reentrant. That classification assumes f
// is pure. If f has side effects, honoring the reentrancy guarantee is the
// caller's responsibility; the engine does not enforce purity at run time.
func Map[A, B any](v View[A], f func(A) B) View[B] {
	return View[B]{
		reentrant: v.reentrant,
		seq: func(yield func(B) bool) {
			for x := range v.All() {
				if !yield(f(x)) {
					return
				}
			}
		},
	}
}

// Visit is [Map] under the name that spells out its guarantee: the
// projection observes items without consuming the underlying source.
func Visit[A, B any](v View[A], f func(A) B) View[B] {
	return Map(v, f)
}
