package phases

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

var (
	ErrPhasesFailed = errors.New("phases failed")
	ErrUnknownPhase = errors.New("unknown phase")
)

// catalogue is the phase list Run draws from.
var catalogue = All

type (
	Failure struct {
		ID  int
		Err error
	}

	Report struct {
		Passed []int
		Failed []Failure
	}

	RunOption func(rc *runConfig)

	runConfig struct {
		ids      []int
		failFast bool
	}
)

// Only restricts the run to the given phase ids.
func Only(ids ...int) RunOption {
	return func(rc *runConfig) {
		rc.ids = append(rc.ids, ids...)
	}
}

// FailFast stops the run at the first failed phase.
func FailFast() RunOption {
	return func(rc *runConfig) {
		rc.failFast = true
	}
}

func (r Report) OK() bool {
	return len(r.Failed) == 0
}

// Run executes the selected phases in order and writes a transcript to w.
func Run(ctx context.Context, w io.Writer, logger *zap.Logger, options ...RunOption) (Report, error) {
	var rc runConfig
	for _, o := range options {
		o(&rc)
	}

	selected, err := selectPhases(catalogue(), rc.ids)
	if err != nil {
		return Report{}, err
	}

	var report Report
	started := false
	for _, p := range selected {

		if err := ctx.Err(); err != nil {
			return report, errors.Wrap(err, "phases interrupted")
		}

		if started {
			fmt.Fprintln(w)
		}
		started = true
		for _, title := range p.Titles {
			fmt.Fprintf(w, "TEST PHASE %d: %s\n", p.ID, title)
		}

		err = runPhase(p)
		if err != nil {
			logger.Error("phase failed", zap.Int("phase", p.ID), zap.Error(err))
			fmt.Fprintf(w, "FAILED: %s\n", err)
			report.Failed = append(report.Failed, Failure{ID: p.ID, Err: err})
			if rc.failFast {
				break
			}
			continue
		}

		logger.Debug("phase passed", zap.Int("phase", p.ID))
		report.Passed = append(report.Passed, p.ID)
	}

	if !report.OK() {
		return report, errors.Wrap(ErrPhasesFailed, failedIDs(report.Failed))
	}

	fmt.Fprint(w, "\nSuccess!!\n")
	return report, nil
}

// runPhase turns a node counter panic into a phase failure and checks that
// the phase freed every node it built.
func runPhase(p Phase) (err error) {
	env := newEnv()

	defer func() {
		if r := recover(); r != nil {
			if rErr, ok := r.(error); ok {
				err = errors.Wrapf(rErr, "phase %d panicked", p.ID)
				return
			}
			err = errors.Errorf("phase %d panicked: %v", p.ID, r)
		}
	}()

	if err := p.Run(env); err != nil {
		return errors.Wrapf(err, "phase %d", p.ID)
	}

	if err := env.ExpectLive(0); err != nil {
		return errors.Wrapf(err, "phase %d leaked nodes", p.ID)
	}

	return nil
}

func selectPhases(all []Phase, ids []int) ([]Phase, error) {
	if len(ids) == 0 {
		return all, nil
	}

	known := lo.Associate(all, func(p Phase) (int, bool) {
		return p.ID, true
	})
	if unknown := lo.Reject(ids, func(id int, _ int) bool { return known[id] }); len(unknown) > 0 {
		return nil, errors.Wrapf(ErrUnknownPhase, "%v", unknown)
	}

	return lo.Filter(all, func(p Phase, _ int) bool {
		return lo.Contains(ids, p.ID)
	}), nil
}

func failedIDs(failed []Failure) string {
	ids := make([]string, 0, len(failed))
	for _, f := range failed {
		ids = append(ids, fmt.Sprintf("%d", f.ID))
	}
	return "phase " + strings.Join(ids, ", ")
}
