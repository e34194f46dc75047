package seqwise

// Proxy presents a [Decomposable] aggregate with every nested decomposable
// element expanded in place, depth first, into a single level. A Proxy is
// a non-owning lazy wrapper: building one copies nothing, and element
// access resolves through the original aggregate on every call.
//
// Proxy itself implements [Decomposable] with the flattened arity, so
// proxies nest and compose with any generic consumer of the protocol.
// The expansion depth is fixed by the shapes of the wrapped aggregates;
// only types that implement [Decomposable] are ever expanded.
type Proxy struct {
	inner Decomposable
}

// NewProxy wraps a decomposable aggregate in a flattening proxy.
func NewProxy(d Decomposable) Proxy {
	return Proxy{inner: d}
}

// Len returns the flattened arity: the sum over the wrapped aggregate's
// elements of each element's own flattened arity, with atoms counting as
// one.
func (p Proxy) Len() int {
	return flatLen(p.inner)
}

// At returns the i-th atom of the flattened form, resolving depth first
// through nested decomposable elements.
func (p Proxy) At(i int) any {
	return flatAt(p.inner, i)
}

// Values materializes the flattened form into a plain [Tuple]. This is the
// explicit conversion point: it is the only operation on a Proxy that
// copies elements out of the underlying aggregate.
func (p Proxy) Values() Tuple {
	return appendFlat(nil, p.inner)
}

func flatLen(d Decomposable) int {
	n := 0
	for i := 0; i < d.Len(); i++ {
		if sub, ok := d.At(i).(Decomposable); ok {
			n += flatLen(sub)
		} else {
			n++
		}
	}
	return n
}

// flatAt returns the i-th atom of d's flattened form, or nil when i is
// past its end.
func flatAt(d Decomposable, i int) any {
	for j := 0; j < d.Len(); j++ {
		x := d.At(j)
		if sub, ok := x.(Decomposable); ok {
			n := flatLen(sub)
			if i < n {
				return flatAt(sub, i)
			}
			i -= n
			continue
		}
		if i == 0 {
			return x
		}
		i--
	}
	return nil
}

func appendFlat(dst Tuple, d Decomposable) Tuple {
	for i := 0; i < d.Len(); i++ {
		x := d.At(i)
		if sub, ok := x.(Decomposable); ok {
			dst = appendFlat(dst, sub)
		} else {
			dst = append(dst, x)
		}
	}
	return dst
}

// Flatten expands the structurally decomposable items of a view. It is a
// visiting projection (see [Map]) whose function wraps every item that
// implements [Decomposable] in a [Proxy] and passes every other item
// through unchanged, so on a view of atoms Flatten is the identity
// transformation.
//
// Nothing is expanded eagerly: each Proxy resolves element access lazily,
// and materialization happens only on an explicit [Materialize] or
// [Proxy.Values] call. The result is reentrant if and only if v is.
func Flatten[A any](v View[A]) View[any] {
	return Map(v, func(a A) any {
		if d, ok := any(a).(Decomposable); ok {
			return Proxy{inner: d}
		}
		return a
	})
}

// Materialize converts a value into its flattened [Tuple] form: a
// [Decomposable] becomes the depth-first expansion of its atoms, and any
// other value becomes a one-element tuple. This is an explicit copying
// conversion, never performed implicitly during iteration.
func Materialize(x any) Tuple {
	if d, ok := x.(Decomposable); ok {
		return appendFlat(nil, d)
	}
	return Tuple{x}
}
