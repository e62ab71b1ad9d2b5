package set_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/denismitr/intset/set"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntSet_String(t *testing.T) {
	t.Run("empty and singleton side by side", func(t *testing.T) {
		s1 := set.New()
		s2 := set.Of(-5)

		assert.Equal(t, "Set is empty! { -5 }", set.Join(s1, s2))
		assert.Equal(t, "Set is empty! { -5 }", fmt.Sprintf("%s %s", s1, s2))
	})

	t.Run("two sets built from vectors", func(t *testing.T) {
		s1 := set.FromSlice([]int{5, 3, 1})
		s2 := set.FromSlice([]int{4, 3, 4, 20, 15})

		assert.Equal(t, "{ 1 3 5 } { 3 4 15 20 }", set.Join(s1, s2))
	})

	t.Run("join of nothing is empty", func(t *testing.T) {
		assert.Equal(t, "", set.Join())
	})
}

func TestIntSet_WriteTo(t *testing.T) {
	t.Run("writes the rendering", func(t *testing.T) {
		var buf bytes.Buffer
		n, err := set.FromSlice([]int{2, 1}).WriteTo(&buf)
		require.NoError(t, err)

		assert.Equal(t, "{ 1 2 }", buf.String())
		assert.Equal(t, int64(len("{ 1 2 }")), n)
	})
}
