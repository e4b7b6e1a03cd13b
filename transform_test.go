package deque

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransform_MapFunctorLaw(t *testing.T) {
	xs := []int{1, 2, 3, 4}
	f := func(x int) string { return strconv.Itoa(x * x) }

	left := Map(f, FromSlice(xs))
	mapped := make([]string, len(xs))
	for i, x := range xs {
		mapped[i] = f(x)
	}
	right := FromSlice(mapped)

	assert.True(t, Equals(left, right, EqualFunc[string]()))
}

func TestTransform_FilterMap(t *testing.T) {
	xs := FromSlice([]int{1, 2, 3, 4, 5, 6})
	evensSquared := FilterMap(func(x int) (int, bool) {
		if x%2 != 0 {
			return 0, false
		}
		return x * x, true
	}, xs)
	assert.Equal(t, []int{4, 16, 36}, evensSquared.ToSlice())
}

func TestTransform_FoldlFoldrAgreeWithSliceFolds(t *testing.T) {
	xs := []int{1, 2, 3, 4, 5}
	d := FromSlice(xs)

	gotL := Foldl(func(acc, x int) int { return acc*10 + x }, 0, d)
	wantL := 0
	for _, x := range xs {
		wantL = wantL*10 + x
	}
	assert.Equal(t, wantL, gotL)

	gotR := Foldr(func(x, acc int) int { return acc*10 + x }, 0, d)
	wantR := 0
	for i := len(xs) - 1; i >= 0; i-- {
		wantR = wantR*10 + xs[i]
	}
	assert.Equal(t, wantR, gotR)
}

func TestTransform_Equals(t *testing.T) {
	eq := EqualFunc[int]()
	a := FromSlice([]int{1, 2, 3})
	b := Empty[int]().PushBack(1).PushBack(2).PushBack(3)
	assert.True(t, Equals(a, b, eq))

	c := FromSlice([]int{1, 2})
	assert.False(t, Equals(a, c, eq))

	d := FromSlice([]int{1, 2, 4})
	assert.False(t, Equals(a, d, eq))
}
