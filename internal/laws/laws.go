// Package laws checks the algebraic laws of set.IntSet against randomly
// generated operands.
package laws

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/denismitr/intset/set"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Input holds the operands of one trial.
type Input struct {
	A, B, C []int
	X       int
}

type Law struct {
	Name  string
	Check func(b *bench, in Input) error
}

// bench owns every set a law builds so the trial can free them and verify
// the node count afterwards.
type bench struct {
	counter *set.NodeCounter
	opt     set.Option
	owned   []*set.IntSet
}

func newBench() *bench {
	c := set.NewNodeCounter()
	return &bench{counter: c, opt: set.WithTracker(c)}
}

func (b *bench) keep(s *set.IntSet) *set.IntSet {
	b.owned = append(b.owned, s)
	return s
}

func (b *bench) from(values []int) *set.IntSet {
	return b.keep(set.FromSlice(values, b.opt))
}

func (b *bench) of(v int) *set.IntSet {
	return b.keep(set.Of(v, b.opt))
}

func (b *bench) empty() *set.IntSet {
	return b.keep(set.New(b.opt))
}

func (b *bench) release() {
	for i := len(b.owned) - 1; i >= 0; i-- {
		b.owned[i].Release()
	}
	b.owned = nil
}

func equal(what string, have, want *set.IntSet) error {
	if !have.Equal(want) {
		return errors.Errorf("%s: %s != %s", what, have, want)
	}
	return nil
}

func holds(cond bool, what string) error {
	if !cond {
		return errors.Errorf("%s does not hold", what)
	}
	return nil
}

func distinct[T constraints.Integer](values []T) []T {
	out := slices.Clone(values)
	slices.Sort(out)
	return slices.Compact(out)
}

func render(values []int) string {
	if len(values) == 0 {
		return set.EmptyMarker
	}

	var sb strings.Builder
	sb.WriteString("{ ")
	for _, v := range values {
		sb.WriteString(strconv.Itoa(v))
		sb.WriteString(" ")
	}
	sb.WriteString("}")
	return sb.String()
}

// All returns every known law.
func All() []Law {
	return []Law{
		{Name: "union-commutative", Check: unionCommutative},
		{Name: "union-associative", Check: unionAssociative},
		{Name: "intersection-commutative", Check: intersectionCommutative},
		{Name: "intersection-associative", Check: intersectionAssociative},
		{Name: "identity", Check: identity},
		{Name: "idempotence", Check: idempotence},
		{Name: "subset-order", Check: subsetOrder},
		{Name: "singleton", Check: singleton},
		{Name: "construction", Check: construction},
		{Name: "membership", Check: membership},
		{Name: "without", Check: without},
		{Name: "copy-independence", Check: copyIndependence},
		{Name: "assign-independence", Check: assignIndependence},
	}
}

func unionCommutative(b *bench, in Input) error {
	x, y := b.from(in.A), b.from(in.B)
	return equal("A+B == B+A", b.keep(x.Union(y)), b.keep(y.Union(x)))
}

func unionAssociative(b *bench, in Input) error {
	x, y, z := b.from(in.A), b.from(in.B), b.from(in.C)
	left := b.keep(b.keep(x.Union(y)).Union(z))
	right := b.keep(x.Union(b.keep(y.Union(z))))
	return equal("(A+B)+C == A+(B+C)", left, right)
}

func intersectionCommutative(b *bench, in Input) error {
	x, y := b.from(in.A), b.from(in.B)
	return equal("A*B == B*A", b.keep(x.Intersect(y)), b.keep(y.Intersect(x)))
}

func intersectionAssociative(b *bench, in Input) error {
	x, y, z := b.from(in.A), b.from(in.B), b.from(in.C)
	left := b.keep(b.keep(x.Intersect(y)).Intersect(z))
	right := b.keep(x.Intersect(b.keep(y.Intersect(z))))
	return equal("(A*B)*C == A*(B*C)", left, right)
}

func identity(b *bench, in Input) error {
	x, empty := b.from(in.A), b.empty()

	if err := equal("A+{} == A", b.keep(x.Union(empty)), x); err != nil {
		return err
	}
	if err := equal("A*{} == {}", b.keep(x.Intersect(empty)), empty); err != nil {
		return err
	}
	if err := equal("A-{} == A", b.keep(x.Difference(empty)), x); err != nil {
		return err
	}
	if err := equal("{}-A == {}", b.keep(empty.Difference(x)), empty); err != nil {
		return err
	}
	return equal("A-A == {}", b.keep(x.Difference(x)), empty)
}

func idempotence(b *bench, in Input) error {
	x := b.from(in.A)
	if err := equal("A+A == A", b.keep(x.Union(x)), x); err != nil {
		return err
	}
	return equal("A*A == A", b.keep(x.Intersect(x)), x)
}

func subsetOrder(b *bench, in Input) error {
	x, y := b.from(in.A), b.from(in.B)

	if err := holds(x.IsSubsetOf(x), "A <= A"); err != nil {
		return err
	}
	if err := holds(!x.IsProperSubsetOf(x), "not A < A"); err != nil {
		return err
	}
	if x.Equal(y) {
		if err := holds(x.IsSubsetOf(y) && y.IsSubsetOf(x), "A == B implies mutual subset"); err != nil {
			return err
		}
	}
	if err := holds(x.IsSubsetOf(b.keep(x.Union(y))), "A <= A+B"); err != nil {
		return err
	}
	if err := holds(b.keep(x.Intersect(y)).IsSubsetOf(x), "A*B <= A"); err != nil {
		return err
	}
	want := x.NotEqual(y) && x.IsSubsetOf(y)
	return holds(x.IsProperSubsetOf(y) == want, "A < B iff A != B and A <= B")
}

func singleton(b *bench, in Input) error {
	s := b.of(in.X)

	if err := holds(s.Len() == 1, "|{x}| == 1"); err != nil {
		return err
	}
	if err := holds(s.Has(in.X) && !s.Has(in.X+1) && !s.Has(in.X-1), "{x} has only x"); err != nil {
		return err
	}
	return equal("{x}-x == {}", b.keep(s.Without(in.X)), b.empty())
}

func construction(b *bench, in Input) error {
	x := b.from(in.A)
	want := distinct(in.A)

	if err := holds(x.Len() == len(want), fmt.Sprintf("|A| == %d", len(want))); err != nil {
		return err
	}
	if err := holds(slices.Equal(x.Items(), want), "items are the distinct inputs in order"); err != nil {
		return err
	}
	if err := holds(slices.IsSorted(x.Items()), "items are sorted"); err != nil {
		return err
	}
	if have, wantRender := x.String(), render(want); have != wantRender {
		return errors.Errorf("rendering %q, want %q", have, wantRender)
	}
	return nil
}

func membership(b *bench, in Input) error {
	x, y := b.from(in.A), b.from(in.B)
	sum, common, diff := b.keep(x.Union(y)), b.keep(x.Intersect(y)), b.keep(x.Difference(y))

	for _, v := range sum.Items() {
		inA, inB := x.Has(v), y.Has(v)
		if err := holds(inA || inB, fmt.Sprintf("%d in A+B comes from A or B", v)); err != nil {
			return err
		}
		if err := holds(common.Has(v) == (inA && inB), fmt.Sprintf("%d in A*B", v)); err != nil {
			return err
		}
		if err := holds(diff.Has(v) == (inA && !inB), fmt.Sprintf("%d in A-B", v)); err != nil {
			return err
		}
	}
	return holds(sum.Len() == common.Len()+diff.Len()+b.keep(y.Difference(x)).Len(), "|A+B| == |A*B|+|A-B|+|B-A|")
}

func without(b *bench, in Input) error {
	x := b.from(in.A)
	return equal("A-x == A-{x}", b.keep(x.Without(in.X)), b.keep(x.Difference(b.of(in.X))))
}

func copyIndependence(b *bench, in Input) error {
	x, y := b.from(in.A), b.from(in.B)
	before, size := x.String(), x.Len()

	cp := b.keep(x.Clone())
	cp.Assign(b.keep(cp.Union(y)))
	cp.Assign(b.keep(cp.Without(in.X)))

	return holds(x.String() == before && x.Len() == size, "mutating a copy leaves the source intact")
}

func assignIndependence(b *bench, in Input) error {
	x, y := b.from(in.A), b.from(in.B)
	before, size := x.String(), x.Len()

	t1, t2 := b.empty(), b.empty()
	t1.Assign(t2.Assign(x))
	t2.Assign(b.keep(t2.Union(y)))
	t1.Assign(b.keep(t1.Without(in.X)))

	if err := holds(x.String() == before && x.Len() == size, "mutating an assignment target leaves the source intact"); err != nil {
		return err
	}
	return equal("chained target", t2, b.keep(x.Union(y)))
}
