package orderedmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedMap(t *testing.T) {
	t.Run("basic operations", func(t *testing.T) {
		om := NewOrderedMap[string, int]()

		om.Set("one", 1)
		om.Set("two", 2)
		om.Set("three", 3)

		val, exists := om.Get("two")
		assert.True(t, exists)
		assert.Equal(t, 2, val)

		om.Set("two", 22)
		val, exists = om.Get("two")
		assert.True(t, exists)
		assert.Equal(t, 22, val)
		assert.Equal(t, []string{"one", "two", "three"}, om.Keys())

		val, exists = om.Get("four")
		assert.False(t, exists)
		assert.Zero(t, val)
		assert.False(t, om.Has("four"))
	})

	t.Run("delete keeps order of the rest", func(t *testing.T) {
		om := NewOrderedMap[string, int]()
		om.Set("a", 1)
		om.Set("b", 2)
		om.Set("c", 3)

		om.Delete("b")
		om.Delete("missing")

		assert.Equal(t, 2, om.Count())
		assert.Equal(t, []string{"a", "c"}, om.Keys())
	})

	t.Run("iteration", func(t *testing.T) {
		om := NewOrderedMap[int, string]()
		assert.Nil(t, om.Front())

		om.Set(3, "c")
		om.Set(1, "a")
		om.Set(2, "b")

		var keys []int
		var values []string
		for it := om.Front(); it != nil; it = it.Next() {
			keys = append(keys, it.Key())
			values = append(values, it.Value())
		}
		assert.Equal(t, []int{3, 1, 2}, keys)
		assert.Equal(t, []string{"c", "a", "b"}, values)
	})

	t.Run("clear", func(t *testing.T) {
		om := NewOrderedMap[string, bool]()
		om.Set("x", true)
		om.Clear()
		require.Equal(t, 0, om.Count())
		om.Set("y", true)
		assert.Equal(t, []string{"y"}, om.Keys())
	})

	t.Run("nil map counts zero", func(t *testing.T) {
		var om *OrderedMap[string, int]
		assert.Equal(t, 0, om.Count())
	})
}
