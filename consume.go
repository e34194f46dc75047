package seqwise

// ToSlice drives a view to completion and collects all its items into a
// slice. A nil slice is returned for an empty view.
func ToSlice[A any](v View[A]) []A {
	var res []A
	for x := range v.All() {
		res = append(res, x)
	}
	return res
}

// ToMap drives a view of pairs to completion and inserts each pair into a
// map, first elements as keys. Later pairs overwrite earlier ones with the
// same key.
func ToMap[K comparable, V any](v View[Pair[K, V]]) map[K]V {
	res := make(map[K]V)
	for p := range v.All() {
		res[p.V1] = p.V2
	}
	return res
}

// ForEach applies f to each item of a view, in order, and blocks until the
// view is exhausted.
func ForEach[A any](v View[A], f func(A)) {
	for x := range v.All() {
		f(x)
	}
}

// Count drives a view to completion and returns the number of items it
// yielded.
func Count[A any](v View[A]) int {
	n := 0
	for range v.All() {
		n++
	}
	return n
}

// First returns the first item of a view, or false if the view is empty.
// Only one item is consumed from the underlying source.
func First[A any](v View[A]) (A, bool) {
	for x := range v.All() {
		return x, true
	}
	var zero A
	return zero, false
}
