package deque

import "iter"

// deque is the concrete, unexported implementation of Deque[T]. It is a
// thin handle around a *spine; every method threads through to a free
// function in spine.go instantiated at T.
type deque[T any] struct {
	s *spine
}

// Empty returns the empty deque.
func Empty[T any]() Deque[T] {
	return &deque[T]{s: emptySpine()}
}

// Singleton returns a deque holding exactly one element.
func Singleton[T any](a T) Deque[T] {
	return &deque[T]{s: singleSpine[T](a)}
}

// FromSlice builds a deque from xs, front to back, in O(n) amortized time.
func FromSlice[T any](xs []T) Deque[T] {
	return &deque[T]{s: fromSliceSpine[T](xs)}
}

// FromSeq builds a deque from a sequence, front to back.
func FromSeq[T any](seq iter.Seq[T]) Deque[T] {
	s := emptySpine()
	for x := range seq {
		s = pushBackSpine[T](s, x)
	}
	return &deque[T]{s: s}
}

// Initialize returns a deque of n elements where element i is f(i).
// n <= 0 yields the empty deque. The source material peels the final
// buffer off a freshly built middle via a trailing popBack; that is called
// out as an implementation choice, not a contract, so this builds the
// index slice directly and delegates to the same FromSlice path everything
// else uses.
func Initialize[T any](n int, f func(int) T) Deque[T] {
	if n <= 0 {
		return Empty[T]()
	}
	xs := make([]T, n)
	for i := range xs {
		xs[i] = f(i)
	}
	return FromSlice(xs)
}

// Repeat returns a deque of n copies of v.
func Repeat[T any](n int, v T) Deque[T] {
	return Initialize(n, func(int) T { return v })
}

// Range returns a deque of the integers lo..hi inclusive, or empty if hi < lo.
func Range(lo, hi int) Deque[int] {
	if hi < lo {
		return Empty[int]()
	}
	return Initialize(hi-lo+1, func(i int) int { return lo + i })
}

func (d *deque[T]) spine() *spine { return d.s }

func (d *deque[T]) Size() int { return spineLen(d.s) }

func (d *deque[T]) IsEmpty() bool { return d.s.kind == spineEmptyKind }

func (d *deque[T]) String() string {
	return formatCollection("Deque", d.Seq())
}

func (d *deque[T]) PushFront(element T) Deque[T] {
	return &deque[T]{s: pushFrontSpine[T](element, d.s)}
}

func (d *deque[T]) PopFront() (T, Deque[T], bool) {
	head, rest, ok := popFrontSpine[T](d.s)
	if !ok {
		return head, d, false
	}
	return head, &deque[T]{s: rest}, true
}

func (d *deque[T]) PeekFront() (T, bool) {
	return spineFirst[T](d.s)
}

func (d *deque[T]) PushBack(element T) Deque[T] {
	return &deque[T]{s: pushBackSpine[T](d.s, element)}
}

func (d *deque[T]) PopBack() (T, Deque[T], bool) {
	last, rest, ok := popBackSpine[T](d.s)
	if !ok {
		return last, d, false
	}
	return last, &deque[T]{s: rest}, true
}

func (d *deque[T]) PeekBack() (T, bool) {
	return spineLast[T](d.s)
}

func (d *deque[T]) Left(n int) Deque[T] {
	return &deque[T]{s: leftSpine[T](n, d.s)}
}

func (d *deque[T]) Right(n int) Deque[T] {
	return &deque[T]{s: rightSpine[T](n, d.s)}
}

func (d *deque[T]) DropLeft(n int) Deque[T] {
	return &deque[T]{s: dropLeftSpine[T](n, d.s)}
}

func (d *deque[T]) DropRight(n int) Deque[T] {
	return &deque[T]{s: dropRightSpine[T](n, d.s)}
}

func (d *deque[T]) Append(other Deque[T]) Deque[T] {
	return &deque[T]{s: appendSpine[T](d.s, other.spine())}
}

func (d *deque[T]) Filter(predicate func(element T) bool) Deque[T] {
	return &deque[T]{s: filterSpine[T](predicate, d.s)}
}

func (d *deque[T]) Partition(predicate func(element T) bool) (Deque[T], Deque[T]) {
	yes, no := partitionSpine[T](predicate, d.s)
	return &deque[T]{s: yes}, &deque[T]{s: no}
}

func (d *deque[T]) Member(element T, eq Equaler[T]) bool {
	return memberSpine[T](element, eq, d.s)
}

func (d *deque[T]) ToSlice() []T {
	return toSliceSpine[T](d.s)
}

func (d *deque[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range toSliceSpine[T](d.s) {
			if !yield(v) {
				return
			}
		}
	}
}

func (d *deque[T]) Reversed() iter.Seq[T] {
	return func(yield func(T) bool) {
		xs := toSliceSpine[T](d.s)
		for i := len(xs) - 1; i >= 0; i-- {
			if !yield(xs[i]) {
				return
			}
		}
	}
}

// Compile-time conformance
var (
	_ Deque[int] = (*deque[int])(nil)
)
