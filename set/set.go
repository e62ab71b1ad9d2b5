// Package set provides an ordered set of integers kept as a strictly
// increasing singly linked chain behind a sentinel node.
package set

import (
	"github.com/pkg/errors"
)

var ErrNegativeNodeCount = errors.New("live node count went negative")

type (
	// Reader is the read side shared by every set in this package.
	Reader interface {
		Has(item int) bool
		Len() int
		IsEmpty() bool
		Items() []int
	}

	config struct {
		tracker NodeTracker
	}

	Option func(c *config)
)

var _ Reader = (*IntSet)(nil)

// WithTracker makes every node allocated or freed by the set report to t.
func WithTracker(t NodeTracker) Option {
	return func(c *config) {
		if t != nil {
			c.tracker = t
		}
	}
}

func IsSubsetOrEqual(a, b *IntSet) bool {
	return a.IsSubsetOf(b)
}

func Equal(a, b *IntSet) bool {
	return a.Equal(b)
}

func NotEqual(a, b *IntSet) bool {
	return a.NotEqual(b)
}

func IsProperSubset(a, b *IntSet) bool {
	return a.IsProperSubsetOf(b)
}

func Union(a, b *IntSet) *IntSet {
	return a.Union(b)
}

func Intersection(a, b *IntSet) *IntSet {
	return a.Intersect(b)
}

func Difference(a, b *IntSet) *IntSet {
	return a.Difference(b)
}

func DifferenceWithValue(a *IntSet, x int) *IntSet {
	return a.Without(x)
}
