package set

import (
	"sync/atomic"

	"github.com/pkg/errors"
)

type node struct {
	value int
	next  *node
}

// NodeTracker observes chain allocations. Sets call Acquire for every node
// they create, sentinel included, and Release for every node they free.
type NodeTracker interface {
	Acquire()
	Release()
}

type noopTracker struct{}

func (noopTracker) Acquire() {}
func (noopTracker) Release() {}

// NodeCounter counts live nodes across all sets sharing it.
// The zero value is ready to use.
type NodeCounter struct {
	live atomic.Int64
}

var _ NodeTracker = (*NodeCounter)(nil)

func NewNodeCounter() *NodeCounter {
	return &NodeCounter{}
}

func (c *NodeCounter) Acquire() {
	c.live.Add(1)
}

// Release panics when more nodes are freed than were ever allocated,
// which only happens on a double release or a corrupted chain.
func (c *NodeCounter) Release() {
	if n := c.live.Add(-1); n < 0 {
		panic(errors.Wrapf(ErrNegativeNodeCount, "count is %d", n))
	}
}

func (c *NodeCounter) Live() int64 {
	return c.live.Load()
}
