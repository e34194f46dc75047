package seqwise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSlice(t *testing.T) {
	t.Run("values", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3}, ToSlice(FromSlice([]int{1, 2, 3})))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, ToSlice(Empty[int]()))
	})
}

func TestToMap(t *testing.T) {
	t.Run("pairs", func(t *testing.T) {
		v := Zip2(FromSlice([]string{"a", "b"}), FromSlice([]int{1, 2}))
		assert.Equal(t, map[string]int{"a": 1, "b": 2}, ToMap(v))
	})

	t.Run("later pairs win", func(t *testing.T) {
		v := FromSlice([]Pair[string, int]{{"a", 1}, {"a", 2}})
		assert.Equal(t, map[string]int{"a": 2}, ToMap(v))
	})

	t.Run("empty", func(t *testing.T) {
		m := ToMap(Empty[Pair[string, int]]())
		require.NotNil(t, m)
		assert.Empty(t, m)
	})
}

func TestForEach(t *testing.T) {
	var got []int
	ForEach(FromSlice([]int{1, 2, 3}), func(x int) {
		got = append(got, x)
	})
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 0, Count(Empty[int]()))
	assert.Equal(t, 3, Count(FromSlice([]int{1, 2, 3})))
	assert.Equal(t, 2, Count(Zip2(FromSlice([]int{1, 2}), Iota(0))))
}

func TestFirst(t *testing.T) {
	t.Run("value", func(t *testing.T) {
		x, ok := First(FromSlice([]int{7, 8}))
		require.True(t, ok)
		assert.Equal(t, 7, x)
	})

	t.Run("empty", func(t *testing.T) {
		_, ok := First(Empty[int]())
		assert.False(t, ok)
	})

	t.Run("consumes one item only", func(t *testing.T) {
		n := 0
		v := FromNext(func() (int, bool) {
			n++
			return n, true
		})

		x, ok := First(v)
		require.True(t, ok)
		assert.Equal(t, 1, x)
		assert.Equal(t, 1, n)
	})
}
