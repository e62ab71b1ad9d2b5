package laws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("same seed same trials", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Trials = 25

		assert.Equal(t, generate(cfg), generate(cfg))
	})

	t.Run("values stay in range", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Trials = 100
		cfg.MaxSize = 5
		cfg.MaxValue = 3

		for _, in := range generate(cfg) {
			for _, vs := range [][]int{in.A, in.B, in.C} {
				require.LessOrEqual(t, len(vs), 5)
				for _, v := range vs {
					assert.GreaterOrEqual(t, v, -3)
					assert.LessOrEqual(t, v, 3)
				}
			}
		}
	})
}

func TestDistinct(t *testing.T) {
	t.Run("sorted without repeats", func(t *testing.T) {
		in := []int{4, 3, 4, 20, 15}
		assert.Equal(t, []int{3, 4, 15, 20}, distinct(in))
		assert.Equal(t, []int{4, 3, 4, 20, 15}, in)
		assert.Equal(t, "{ 3 4 15 20 }", render(distinct(in)))
		assert.Equal(t, "Set is empty!", render(nil))
	})
}

func TestCheckLaw(t *testing.T) {
	t.Run("leaked nodes are reported", func(t *testing.T) {
		leaky := Law{
			Name: "leaky",
			Check: func(b *bench, in Input) error {
				b.from(in.A).Clone()
				return nil
			},
		}

		err := checkLaw(leaky, Input{A: []int{1, 2}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "3 nodes still live")
	})

	t.Run("panics become violations", func(t *testing.T) {
		broken := Law{
			Name: "broken",
			Check: func(b *bench, in Input) error {
				panic("nope")
			},
		}

		err := checkLaw(broken, Input{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "panic: nope")
	})
}
