package laws

import (
	"context"
	"sort"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var errAlwaysBroken = errors.New("always broken")

func brokenLaw() Law {
	return Law{
		Name: "broken",
		Check: func(b *bench, in Input) error {
			b.from(in.A)
			return errAlwaysBroken
		},
	}
}

func trialsOf(t *testing.T, failures Failures) []int {
	t.Helper()

	out := make([]int, 0, len(failures))
	for _, err := range failures {
		var v *Violation
		require.True(t, errors.As(err, &v))
		out = append(out, v.Trial)
	}
	return out
}

func TestReduce(t *testing.T) {
	t.Run("threshold stops the run early", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Trials = 200

		f := newFlow(1, []Law{brokenLaw()})
		f.start(context.Background())
		go feed(context.Background(), generate(cfg), f)

		s := reduce(f, 3)

		assert.GreaterOrEqual(t, len(s.Failures), 3)
		assert.Less(t, s.Trials, 200)
		assert.Equal(t, 0, trialsOf(t, s.Failures)[0])
	})

	t.Run("failures come back ordered by trial", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Trials = 100

		f := newFlow(8, []Law{brokenLaw(), All()[0]})
		f.start(context.Background())
		go feed(context.Background(), generate(cfg), f)

		s := reduce(f, 0)

		require.Len(t, s.Failures, 100)
		assert.Equal(t, 100, s.Trials)
		assert.Equal(t, 200, s.Checks)

		trials := trialsOf(t, s.Failures)
		assert.True(t, sort.IntsAreSorted(trials))
		assert.Equal(t, 0, trials[0])
		assert.Equal(t, 99, trials[99])
	})
}

func TestCheck_Violations(t *testing.T) {
	t.Run("failures are returned as the error", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Trials = 40
		cfg.ErrorThreshold = 0

		summary, err := check(context.Background(), cfg, []Law{brokenLaw()}, zap.NewNop())
		require.Error(t, err)
		assert.False(t, summary.OK())
		assert.Equal(t, []string{"broken"}, summary.Laws)

		var failures Failures
		require.True(t, errors.As(err, &failures))
		assert.Len(t, failures, 40)
		assert.True(t, errors.Is(failures[0], errAlwaysBroken))
		assert.Contains(t, err.Error(), "40 law violations: law broken broken on trial 0")
	})

	t.Run("default threshold caps the violations", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Trials = 300
		cfg.Concurrency = 1

		summary, err := check(context.Background(), cfg, []Law{brokenLaw()}, zap.NewNop())
		require.Error(t, err)
		assert.GreaterOrEqual(t, len(summary.Failures), cfg.ErrorThreshold)
		assert.Less(t, summary.Trials, 300)
	})
}
