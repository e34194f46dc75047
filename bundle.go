package seqwise

import "reflect"

// Decomposable is the fixed-arity element access protocol. A type that
// implements it declares that it is an ordered aggregate of Len() elements
// addressable by index, and thereby opts in to recursive expansion by
// [Flatten].
//
// Implementing Decomposable is the only permission [Flatten] recognizes:
// an aggregate that merely resembles a tuple is never expanded.
type Decomposable interface {
	// Len returns the number of elements. It must be constant for a given
	// type and independent of the element values.
	Len() int

	// At returns the i-th element, counting from the left.
	// Behavior for i outside [0, Len()) is undefined.
	At(i int) any
}

// Pair is a fixed two-element bundle, the element type produced by [Zip2]
// and [Enumerate]. Its fields hold whatever the component views yielded:
// values for value views, pointers for views built with [FromSliceRef].
// Assigning a Pair copies only those slot representations, never the data
// behind a pointer slot.
type Pair[A, B any] struct {
	V1 A
	V2 B
}

func (p Pair[A, B]) Len() int { return 2 }

func (p Pair[A, B]) At(i int) any {
	switch i {
	case 0:
		return p.V1
	default:
		return p.V2
	}
}

// Triple is a fixed three-element bundle, the element type produced by [Zip3].
type Triple[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

func (t Triple[A, B, C]) Len() int { return 3 }

func (t Triple[A, B, C]) At(i int) any {
	switch i {
	case 0:
		return t.V1
	case 1:
		return t.V2
	default:
		return t.V3
	}
}

// Quad is a fixed four-element bundle, the element type produced by [Zip4].
type Quad[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

func (q Quad[A, B, C, D]) Len() int { return 4 }

func (q Quad[A, B, C, D]) At(i int) any {
	switch i {
	case 0:
		return q.V1
	case 1:
		return q.V2
	case 2:
		return q.V3
	default:
		return q.V4
	}
}

// Tuple is a plain value aggregate: the materialized form of a bundle or
// flattening proxy. Converting to a Tuple (via [Materialize] or
// [Proxy.Values]) is the one place where elements are copied out of their
// source, and it only ever happens on an explicit call.
type Tuple []any

func (t Tuple) Len() int { return len(t) }

func (t Tuple) At(i int) any { return t[i] }

// Equal reports whether two tuples have the same arity and deeply equal
// elements at every position.
func (t Tuple) Equal(o Tuple) bool {
	if len(t) != len(o) {
		return false
	}
	for i := range t {
		if !reflect.DeepEqual(t[i], o[i]) {
			return false
		}
	}
	return true
}
