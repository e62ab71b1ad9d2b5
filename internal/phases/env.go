package phases

import (
	"github.com/denismitr/intset/set"
	"github.com/pkg/errors"
)

// Env gives a phase a private node counter and a block scope for the sets
// it creates.
type Env struct {
	counter *set.NodeCounter
}

func newEnv() *Env {
	return &Env{counter: set.NewNodeCounter()}
}

// Scope collects the sets built inside one block and releases them when the
// block ends, newest first.
type Scope struct {
	opt   set.Option
	owned []*set.IntSet
}

// Block runs fn with a fresh scope and frees everything it owns afterwards,
// even when fn fails.
func (e *Env) Block(fn func(sc *Scope) error) error {
	sc := &Scope{opt: set.WithTracker(e.counter)}
	defer sc.release()

	return fn(sc)
}

func (sc *Scope) own(s *set.IntSet) *set.IntSet {
	sc.owned = append(sc.owned, s)
	return s
}

func (sc *Scope) release() {
	for i := len(sc.owned) - 1; i >= 0; i-- {
		sc.owned[i].Release()
	}
	sc.owned = nil
}

func (sc *Scope) Empty() *set.IntSet {
	return sc.own(set.New(sc.opt))
}

func (sc *Scope) Of(v int) *set.IntSet {
	return sc.own(set.Of(v, sc.opt))
}

func (sc *Scope) From(values ...int) *set.IntSet {
	return sc.own(set.FromSlice(values, sc.opt))
}

// Keep binds a derived set to the scope.
func (sc *Scope) Keep(s *set.IntSet) *set.IntSet {
	return sc.own(s)
}

// Temp builds a short-lived set outside the scope. The caller must Drop it.
func (sc *Scope) Temp(values ...int) *set.IntSet {
	return set.FromSlice(values, sc.opt)
}

// Drop frees temporaries that are not bound to the scope.
func (sc *Scope) Drop(temps ...*set.IntSet) {
	for _, t := range temps {
		t.Release()
	}
}

// Move assigns tmp to dst and frees tmp.
func (sc *Scope) Move(dst, tmp *set.IntSet) {
	dst.Assign(tmp)
	tmp.Release()
}

// Check evaluates pred against a temporary result and frees it.
func (sc *Scope) Check(tmp *set.IntSet, pred func(s *set.IntSet) bool) bool {
	defer tmp.Release()
	return pred(tmp)
}

func (e *Env) ExpectLive(want int64) error {
	if have := e.counter.Live(); have != want {
		return errors.Errorf("expected %d live nodes, got %d", want, have)
	}
	return nil
}

func Expect(cond bool, what string) error {
	if !cond {
		return errors.Errorf("assertion failed: %s", what)
	}
	return nil
}

func ExpectRender(have, want string) error {
	if have != want {
		return errors.Errorf("expected rendering %q, got %q", want, have)
	}
	return nil
}

// Checks keeps the first failed expectation of a phase.
type Checks struct {
	err error
}

func (c *Checks) Add(err error) {
	if c.err == nil && err != nil {
		c.err = err
	}
}

func (c *Checks) Err() error {
	return c.err
}
