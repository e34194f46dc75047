package seqwise

import "iter"

// FromSeq promotes a standard iterator into a view.
//
// An iter.Seq carries no information about whether it can be replayed, so
// the resulting view is classified single-pass — the most conservative
// category. Wrap the result in [Reentrant] if the iterator is known to be
// replayable:
//
//	v := seqwise.Reentrant(seqwise.FromSeq(slices.Values(s)))
func FromSeq[A any](seq iter.Seq[A]) View[A] {
	if seq == nil {
		return View[A]{}
	}
	return View[A]{seq: seq}
}

// Common converts a view back into the single protocol shared by all
// generic downstream consumers: a standard iter.Seq. It is the last step
// of an adaptor chain, applied immediately before the result is consumed
// by code that knows nothing about views:
//
//	s := slices.Collect(seqwise.Common(v))
//
// Common changes no observed values; it only erases the adaptor chain
// behind the uniform iterator shape.
func Common[A any](v View[A]) iter.Seq[A] {
	return v.All()
}
