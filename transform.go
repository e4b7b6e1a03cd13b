package deque

// Map, FilterMap, Foldl and Foldr are free functions, not methods, because
// a Go method cannot introduce a type parameter beyond its receiver's —
// Deque[T] has no way to express a Map method returning Deque[U].

// Map applies f to every element, preserving order and deque shape.
func Map[T, U any](f func(T) U, d Deque[T]) Deque[U] {
	return &deque[U]{s: mapSpine[T, U](f, d.spine())}
}

// FilterMap applies g to every element, keeping the mapped value wherever
// g reports ok, preserving order.
func FilterMap[T, U any](g func(T) (U, bool), d Deque[T]) Deque[U] {
	return &deque[U]{s: filterMapSpine[T, U](g, d.spine())}
}

// Foldl folds f over d's elements left to right, seed first.
func Foldl[T, B any](f func(B, T) B, seed B, d Deque[T]) B {
	return foldlSpine[T, B](f, seed, d.spine())
}

// Foldr folds f over d's elements right to left, seed last.
func Foldr[T, B any](f func(T, B) B, seed B, d Deque[T]) B {
	return foldrSpine[T, B](f, seed, d.spine())
}

// Equals reports whether a and b contain the same elements in the same
// order, according to eq. It never compares spine structure: two deques
// with equal contents may have been built with different internal shapes.
func Equals[T any](a, b Deque[T], eq Equaler[T]) bool {
	return equalsSpine[T](a.spine(), b.spine(), eq)
}
