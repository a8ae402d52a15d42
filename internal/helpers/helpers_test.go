package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice(t *testing.T) {
	a := make([]int, 0, 5)
	b := append(a[:0], 1, 2, 3, 4)
	c := append(a[:0], 4, 5, 6)

	assert.Equal(t, []int{}, a)
	assert.Equal(t, []int{4, 5, 6, 4}, b)
	assert.Equal(t, []int{4, 5, 6}, c)
}

func TestSliceHelpers(t *testing.T) {
	xs := []int{1, 2, 3, 4}

	assert.Equal(t, []int{2, 4, 6, 8}, MapSlice(xs, func(x int) int { return x * 2 }))
	assert.Equal(t, []int{2, 4}, FilterSlice(xs, func(x int) bool { return x%2 == 0 }))
	assert.Equal(t, 10, ReduceSlice(xs, 0, func(acc int, x int) int { return acc + x }))

	found := FindInSlice(xs, func(x int) bool { return x > 2 })
	assert.True(t, found.HasValue())
	assert.Equal(t, 3, found.Value())
	assert.True(t, FindInSlice(xs, func(x int) bool { return x > 4 }).IsEmpty())

	assert.True(t, Contains(xs, 4))
	assert.False(t, Contains(xs, 5))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, 3, Min(3, 5))
	assert.Equal(t, 5, Max(3, 5))
	assert.Equal(t, 2, AbsDiff(3, 5))
	assert.Equal(t, 2, AbsDiff(5, 3))
	assert.Equal(t, -1, MinInt(-1, 0))
}

func TestPool(t *testing.T) {
	get, release, stats := CreatePool(func() []int { return make([]int, 0, 8) }, func(t *[]int) { *t = (*t)[:0] })

	a := get()
	*a = append(*a, 1, 2, 3)
	release(a)

	b := get()
	assert.Equal(t, 0, len(*b))
	assert.Equal(t, 8, cap(*b))

	s := stats()
	assert.Equal(t, 1, s.creates)
	assert.Equal(t, 1, s.hits)
	assert.Equal(t, 1, s.resets)
}
