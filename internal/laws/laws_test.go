package laws_test

import (
	"context"
	"math"
	"testing"

	"github.com/denismitr/intset/internal/laws"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCheck(t *testing.T) {
	t.Run("every law holds with concurrency", func(t *testing.T) {
		cfg := laws.DefaultConfig()
		cfg.Trials = 300
		cfg.Concurrency = 8

		summary, err := laws.Check(context.Background(), cfg, zap.NewNop())
		require.NoError(t, err)

		assert.True(t, summary.OK())
		assert.Equal(t, 300, summary.Trials)
		assert.Equal(t, 300*len(laws.All()), summary.Checks)
		assert.Equal(t, laws.Names(), summary.Laws)
	})

	t.Run("single worker and large values", func(t *testing.T) {
		cfg := laws.DefaultConfig()
		cfg.Trials = 50
		cfg.Concurrency = 1
		cfg.MaxSize = 40
		cfg.MaxValue = 1_000_000
		cfg.Seed = 99

		summary, err := laws.Check(context.Background(), cfg, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, 50, summary.Trials)
	})

	t.Run("empty operands only", func(t *testing.T) {
		cfg := laws.DefaultConfig()
		cfg.Trials = 20
		cfg.MaxSize = 0

		summary, err := laws.Check(context.Background(), cfg, zap.NewNop())
		require.NoError(t, err)
		assert.True(t, summary.OK())
	})

	t.Run("selected laws only", func(t *testing.T) {
		cfg := laws.DefaultConfig()
		cfg.Trials = 10
		cfg.Laws = []string{"identity", "singleton"}

		summary, err := laws.Check(context.Background(), cfg, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, []string{"identity", "singleton"}, summary.Laws)
		assert.Equal(t, 20, summary.Checks)
	})

	t.Run("unknown law", func(t *testing.T) {
		cfg := laws.DefaultConfig()
		cfg.Laws = []string{"identity", "commutativity-of-nothing"}

		_, err := laws.Check(context.Background(), cfg, zap.NewNop())
		require.Error(t, err)
		assert.True(t, errors.Is(err, laws.ErrUnknownLaw))
		assert.Contains(t, err.Error(), "commutativity-of-nothing")
	})

	t.Run("invalid config", func(t *testing.T) {
		broken := map[string]func(cfg *laws.Config){
			"no workers":       func(cfg *laws.Config) { cfg.Concurrency = 0 },
			"huge max value":   func(cfg *laws.Config) { cfg.MaxValue = math.MaxInt },
			"huge max size":    func(cfg *laws.Config) { cfg.MaxSize = math.MaxInt },
			"negative max":     func(cfg *laws.Config) { cfg.MaxValue = -1 },
			"too many trials":  func(cfg *laws.Config) { cfg.Trials = math.MaxInt },
			"too many workers": func(cfg *laws.Config) { cfg.Concurrency = math.MaxInt32 },
		}

		for name, mutate := range broken {
			cfg := laws.DefaultConfig()
			mutate(&cfg)

			_, err := laws.Check(context.Background(), cfg, zap.NewNop())
			require.Error(t, err, name)
			assert.True(t, errors.Is(err, laws.ErrInvalidConfig), name)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := laws.Check(ctx, laws.DefaultConfig(), zap.NewNop())
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestFailures_Error(t *testing.T) {
	t.Run("joins violations", func(t *testing.T) {
		f := laws.Failures{
			&laws.Violation{Law: "identity", Trial: 2, Input: laws.Input{A: []int{1}, X: 3}, Err: errors.New("A+{} == A: x != y")},
			errors.New("other"),
		}

		assert.Equal(
			t,
			"2 law violations: law identity broken on trial 2 (A=[1] B=[] C=[] x=3): A+{} == A: x != y, other",
			f.Error(),
		)
	})
}

func TestSelect(t *testing.T) {
	t.Run("no names selects everything", func(t *testing.T) {
		selected, err := laws.Select(nil)
		require.NoError(t, err)
		assert.Len(t, selected, len(laws.All()))
	})
}
