package deque

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These exercise the hard requirement in the source material: building and
// tearing down a 10,000-element deque must not recurse on the call stack
// per user element. Spine recursion (O(log n) deep) is fine; recursion
// keyed to n is not. If fromSequence, member or the drop loops ever
// regress to per-element recursion, these tests will stack-overflow
// rather than merely run slow.
const stackSafetySize = 10_000

func TestStackSafety_FromSliceAndPopFront(t *testing.T) {
	xs := make([]int, stackSafetySize)
	for i := range xs {
		xs[i] = i
	}
	d := FromSlice(xs)
	require.Equal(t, stackSafetySize, d.Size())

	cur := d
	for i := 0; i < stackSafetySize; i++ {
		v, rest, ok := cur.PopFront()
		require.True(t, ok)
		require.Equal(t, i, v)
		cur = rest
	}
	assert.True(t, cur.IsEmpty())
}

func TestStackSafety_PopBack(t *testing.T) {
	xs := make([]int, stackSafetySize)
	for i := range xs {
		xs[i] = i
	}
	d := FromSlice(xs)

	cur := d
	for i := stackSafetySize - 1; i >= 0; i-- {
		v, rest, ok := cur.PopBack()
		require.True(t, ok)
		require.Equal(t, i, v)
		cur = rest
	}
	assert.True(t, cur.IsEmpty())
}

func TestStackSafety_FoldlFoldrMap(t *testing.T) {
	xs := make([]int, stackSafetySize)
	for i := range xs {
		xs[i] = i
	}
	d := FromSlice(xs)

	sum := Foldl(func(acc, x int) int { return acc + x }, 0, d)
	want := 0
	for _, x := range xs {
		want += x
	}
	assert.Equal(t, want, sum)

	sumR := Foldr(func(x, acc int) int { return acc + x }, 0, d)
	assert.Equal(t, want, sumR)

	doubled := Map(func(x int) int { return x * 2 }, d)
	assert.Equal(t, stackSafetySize, doubled.Size())
}

func TestStackSafety_PushFrontBuild(t *testing.T) {
	d := Empty[int]()
	for i := 0; i < stackSafetySize; i++ {
		d = d.PushFront(i)
	}
	assert.Equal(t, stackSafetySize, d.Size())
	v, ok := d.PeekFront()
	require.True(t, ok)
	assert.Equal(t, stackSafetySize-1, v)
}

func TestStackSafety_DropLeftDropRight(t *testing.T) {
	xs := make([]int, stackSafetySize)
	for i := range xs {
		xs[i] = i
	}
	d := FromSlice(xs)

	assert.Equal(t, xs[stackSafetySize/2:], d.DropLeft(stackSafetySize/2).ToSlice())
	assert.Equal(t, xs[:stackSafetySize/2], d.DropRight(stackSafetySize/2).ToSlice())
}

func TestStackSafety_Member(t *testing.T) {
	xs := make([]int, stackSafetySize)
	for i := range xs {
		xs[i] = i
	}
	d := FromSlice(xs)
	assert.True(t, d.Member(stackSafetySize-1, EqualFunc[int]()))
	assert.False(t, d.Member(-1, EqualFunc[int]()))
}
