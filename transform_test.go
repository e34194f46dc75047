package seqwise

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	t.Run("values", func(t *testing.T) {
		v := Map(FromSlice([]int{1, 2, 3}), strconv.Itoa)
		assert.Equal(t, []string{"1", "2", "3"}, ToSlice(v))
	})

	t.Run("applied at access time", func(t *testing.T) {
		calls := 0
		v := Map(FromSlice([]int{1, 2, 3}), func(x int) int {
			calls++
			return x * 2
		})
		require.Equal(t, 0, calls) // nothing runs until the view is driven

		ToSlice(v)
		require.Equal(t, 3, calls)

		// Results are never cached: a second pass re-applies the function.
		ToSlice(v)
		assert.Equal(t, 6, calls)
	})

	t.Run("partial traversal", func(t *testing.T) {
		calls := 0
		v := Map(FromSlice([]int{1, 2, 3, 4}), func(x int) int {
			calls++
			return x
		})

		x, ok := First(v)
		require.True(t, ok)
		assert.Equal(t, 1, x)
		assert.Equal(t, 1, calls)
	})

	t.Run("reentrancy propagation", func(t *testing.T) {
		v := Map(FromSlice([]int{1, 2}), strconv.Itoa)
		require.True(t, v.Reentrant())
		assert.Equal(t, ToSlice(v), ToSlice(v))

		ch := make(chan int, 2)
		ch <- 1
		ch <- 2
		close(ch)
		sp := Map(FromChan(ch), strconv.Itoa)
		require.False(t, sp.Reentrant())

		assert.Equal(t, []string{"1", "2"}, ToSlice(sp))
		assert.Empty(t, ToSlice(sp)) // exhausted, not an error
	})
}

func TestVisit(t *testing.T) {
	src := []int{1, 2, 3}
	v := Visit(FromSlice(src), func(x int) int { return -x })

	require.True(t, v.Reentrant())
	assert.Equal(t, []int{-1, -2, -3}, ToSlice(v))

	// Visiting never consumes or mutates the source.
	assert.Equal(t, []int{1, 2, 3}, src)
	assert.Equal(t, []int{-1, -2, -3}, ToSlice(v))
}

func TestMapChaining(t *testing.T) {
	v := Map(Map(FromSlice([]int{1, 2, 3}), func(x int) int { return x + 1 }), strconv.Itoa)

	require.True(t, v.Reentrant())
	assert.Equal(t, []string{"2", "3", "4"}, ToSlice(v))
}
