package set

// IntSet is an ordered set of distinct integers. Values live in a chain
// hanging off a sentinel head and strictly increase along it.
//
// The zero value is an empty set. An IntSet is not safe for concurrent
// mutation. Derived sets never share nodes with their operands.
type IntSet struct {
	head    *node
	size    int
	tracker NodeTracker
}

// New returns an empty set.
func New(options ...Option) *IntSet {
	cfg := config{tracker: noopTracker{}}
	for _, o := range options {
		o(&cfg)
	}

	return newWithTracker(cfg.tracker)
}

// Of returns the singleton {v}.
func Of(v int, options ...Option) *IntSet {
	s := New(options...)
	s.insert(v)
	return s
}

// FromSlice builds a set from values in any order. Repeated values
// collapse to one element.
func FromSlice(values []int, options ...Option) *IntSet {
	s := New(options...)
	s.insertSlice(values)
	return s
}

func newWithTracker(t NodeTracker) *IntSet {
	s := &IntSet{tracker: t}
	s.head = s.newNode(0, nil)
	return s
}

func (s *IntSet) nodeTracker() NodeTracker {
	if s.tracker == nil {
		return noopTracker{}
	}
	return s.tracker
}

func (s *IntSet) newNode(v int, next *node) *node {
	s.nodeTracker().Acquire()
	return &node{value: v, next: next}
}

// first returns the first real node, or nil for an empty or released set.
func (s *IntSet) first() *node {
	if s.head == nil {
		return nil
	}
	return s.head.next
}

func (s *IntSet) insert(v int) {
	if s.head == nil {
		s.head = s.newNode(0, nil)
	}

	prev := s.head
	for prev.next != nil && prev.next.value < v {
		prev = prev.next
	}

	if prev.next == nil || prev.next.value != v {
		prev.next = s.newNode(v, prev.next)
		s.size++
	}
}

func (s *IntSet) insertSlice(values []int) {
	for _, v := range values {
		s.insert(v)
	}
}

// Clone returns a deep copy sharing only the tracker with s.
func (s *IntSet) Clone() *IntSet {
	return s.cloneWith(s.tracker)
}

func (s *IntSet) cloneWith(t NodeTracker) *IntSet {
	c := newWithTracker(t)
	for curr := s.first(); curr != nil; curr = curr.next {
		c.insert(curr.value)
	}
	return c
}

// Assign replaces the contents of s with an independent copy of src and
// frees the chain s held before. It returns s, so assignments chain:
// a.Assign(b.Assign(c)).
func (s *IntSet) Assign(src *IntSet) *IntSet {
	c := src.cloneWith(s.tracker)

	s.head, c.head = c.head, s.head
	s.size, c.size = c.size, s.size

	c.Release()
	return s
}

// Release frees every node of the chain, sentinel included. A released set
// reads as empty. Calling Release more than once is a no-op.
func (s *IntSet) Release() {
	curr := s.head
	s.head = nil
	s.size = 0

	for curr != nil {
		next := curr.next
		curr.next = nil
		s.nodeTracker().Release()
		curr = next
	}
}

// Len returns the cardinality of the set.
func (s *IntSet) Len() int {
	return s.size
}

func (s *IntSet) IsEmpty() bool {
	return s.size == 0
}

func (s *IntSet) Has(x int) bool {
	for curr := s.first(); curr != nil; curr = curr.next {
		if curr.value == x {
			return true
		}
	}
	return false
}

// Items returns the elements in increasing order.
func (s *IntSet) Items() []int {
	items := make([]int, 0, s.size)
	for curr := s.first(); curr != nil; curr = curr.next {
		items = append(items, curr.value)
	}
	return items
}

func (s *IntSet) ForEach(f func(value int, order int)) {
	order := 0
	for curr := s.first(); curr != nil; curr = curr.next {
		f(curr.value, order)
		order++
	}
}

func (s *IntSet) ForEachUntil(f func(value int, order int) bool) {
	order := 0
	for curr := s.first(); curr != nil; curr = curr.next {
		if canGoOn := f(curr.value, order); !canGoOn {
			return
		}
		order++
	}
}
