package laws

import (
	"context"
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type Config struct {
	Trials         int
	Concurrency    int
	Seed           int64
	MaxSize        int
	MaxValue       int
	ErrorThreshold int
	Laws           []string
}

// Upper bounds keep generated operands within int range on every platform.
const (
	maxTrials   = 1_000_000
	maxWorkers  = 1024
	maxSetSize  = 10_000
	maxAbsValue = math.MaxInt32 / 2
)

func DefaultConfig() Config {
	return Config{
		Trials:         500,
		Concurrency:    4,
		Seed:           1,
		MaxSize:        12,
		MaxValue:       20,
		ErrorThreshold: 10,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Trials <= 0 || c.Trials > maxTrials:
		return errors.Wrapf(ErrInvalidConfig, "trials must be in [1, %d], got %d", maxTrials, c.Trials)
	case c.Concurrency <= 0 || c.Concurrency > maxWorkers:
		return errors.Wrapf(ErrInvalidConfig, "concurrency must be in [1, %d], got %d", maxWorkers, c.Concurrency)
	case c.MaxSize < 0 || c.MaxSize > maxSetSize:
		return errors.Wrapf(ErrInvalidConfig, "max size must be in [0, %d], got %d", maxSetSize, c.MaxSize)
	case c.MaxValue < 0 || c.MaxValue > maxAbsValue:
		return errors.Wrapf(ErrInvalidConfig, "max value must be in [0, %d], got %d", maxAbsValue, c.MaxValue)
	case c.ErrorThreshold < 0:
		return errors.Wrapf(ErrInvalidConfig, "error threshold must not be negative, got %d", c.ErrorThreshold)
	}
	return nil
}

type Summary struct {
	Trials   int
	Laws     []string
	Checks   int
	Failures Failures
}

func (s Summary) OK() bool {
	return len(s.Failures) == 0
}

// Names lists every known law name.
func Names() []string {
	return lo.Map(All(), func(l Law, _ int) string {
		return l.Name
	})
}

// Select returns the laws with the given names, or all of them when names
// is empty.
func Select(names []string) ([]Law, error) {
	if len(names) == 0 {
		return All(), nil
	}

	if unknown := lo.Without(names, Names()...); len(unknown) > 0 {
		return nil, errors.Wrap(ErrUnknownLaw, strings.Join(unknown, ", "))
	}

	return lo.Filter(All(), func(l Law, _ int) bool {
		return lo.Contains(names, l.Name)
	}), nil
}

// Check runs cfg.Trials random trials through a pool of cfg.Concurrency
// workers. A zero ErrorThreshold never stops the run early.
func Check(ctx context.Context, cfg Config, logger *zap.Logger) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}

	selected, err := Select(cfg.Laws)
	if err != nil {
		return Summary{}, err
	}

	return check(ctx, cfg, selected, logger)
}

func check(ctx context.Context, cfg Config, selected []Law, logger *zap.Logger) (Summary, error) {
	logger.Debug("checking laws",
		zap.Int("trials", cfg.Trials),
		zap.Int("concurrency", cfg.Concurrency),
		zap.Int64("seed", cfg.Seed),
		zap.Int("laws", len(selected)),
	)

	inputs := generate(cfg)

	f := newFlow(cfg.Concurrency, selected)
	f.start(ctx)

	go feed(ctx, inputs, f)

	summary := reduce(f, cfg.ErrorThreshold)
	summary.Laws = lo.Map(selected, func(l Law, _ int) string {
		return l.Name
	})

	if err := ctx.Err(); err != nil {
		return summary, errors.Wrap(err, "law check interrupted")
	}

	if !summary.OK() {
		logger.Warn("law violations", zap.Int("count", len(summary.Failures)))
		return summary, summary.Failures
	}

	logger.Debug("laws hold", zap.Int("trials", summary.Trials), zap.Int("checks", summary.Checks))
	return summary, nil
}

func reduce(f *flow, threshold int) Summary {
	var s Summary
	for out := range f.outCh {
		s.Trials++
		s.Checks += out.checks
		s.Failures = append(s.Failures, out.violations...)

		if threshold > 0 && len(s.Failures) >= threshold {
			f.stop()
		}
	}

	sort.SliceStable(s.Failures, func(i, j int) bool {
		return trialOf(s.Failures[i]) < trialOf(s.Failures[j])
	})

	return s
}

func trialOf(err error) int {
	var v *Violation
	if errors.As(err, &v) {
		return v.Trial
	}
	return -1
}

func generate(cfg Config) []Input {
	rnd := rand.New(rand.NewSource(cfg.Seed))

	values := func() []int {
		out := make([]int, rnd.Intn(cfg.MaxSize+1))
		for i := range out {
			out[i] = rnd.Intn(2*cfg.MaxValue+1) - cfg.MaxValue
		}
		return out
	}

	inputs := make([]Input, 0, cfg.Trials)
	for i := 0; i < cfg.Trials; i++ {
		in := Input{A: values(), B: values(), C: values()}
		in.X = rnd.Intn(2*cfg.MaxValue+1) - cfg.MaxValue

		// every fourth trial compares a set with a shuffled copy of itself
		if i%4 == 3 {
			in.B = append([]int(nil), in.A...)
			rnd.Shuffle(len(in.B), func(a, b int) {
				in.B[a], in.B[b] = in.B[b], in.B[a]
			})
		}

		inputs = append(inputs, in)
	}
	return inputs
}
