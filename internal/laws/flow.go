package laws

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

type (
	flow struct {
		inCh        chan trial
		outCh       chan outcome
		closeCh     chan struct{}
		closeOnce   sync.Once
		laws        []Law
		concurrency int
		tasks       sync.WaitGroup
	}

	trial struct {
		idx   int
		input Input
	}

	outcome struct {
		idx        int
		checks     int
		violations []error
	}
)

func newFlow(concurrency int, laws []Law) *flow {
	return &flow{
		inCh:        make(chan trial),
		outCh:       make(chan outcome),
		closeCh:     make(chan struct{}),
		laws:        laws,
		concurrency: concurrency,
	}
}

func (f *flow) start(ctx context.Context) {
	for i := 0; i < f.concurrency; i++ {
		f.tasks.Add(1)

		go func() {
			defer f.tasks.Done()
			for {
				select {
				case t, ok := <-f.inCh:
					if !ok {
						return
					}
					select {
					case f.outCh <- f.run(t):
					case <-f.closeCh:
						return
					case <-ctx.Done():
						return
					}
				case <-f.closeCh:
					return
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		f.tasks.Wait()
		close(f.outCh)
	}()
}

// run applies every law to one trial. Each law gets its own bench and must
// leave zero live nodes once its sets are released.
func (f *flow) run(t trial) outcome {
	out := outcome{idx: t.idx}
	for _, law := range f.laws {
		out.checks++
		if err := checkLaw(law, t.input); err != nil {
			out.violations = append(out.violations, &Violation{
				Law:   law.Name,
				Trial: t.idx,
				Input: t.input,
				Err:   err,
			})
		}
	}
	return out
}

func checkLaw(law Law, in Input) (err error) {
	b := newBench()

	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("panic: %v", r)
		}
	}()

	err = law.Check(b, in)
	b.release()

	if live := b.counter.Live(); live != 0 && err == nil {
		err = errors.Errorf("%d nodes still live after release", live)
	}
	return err
}

func (f *flow) stop() {
	f.closeOnce.Do(func() {
		close(f.closeCh)
	})
}

func feed(ctx context.Context, inputs []Input, f *flow) {
	defer close(f.inCh)
	for i, in := range inputs {
		select {
		case f.inCh <- trial{idx: i, input: in}:
			continue
		case <-f.closeCh:
			return
		case <-ctx.Done():
			return
		}
	}
}
