package set

// IsSubsetOf reports whether every element of s is an element of b.
func (s *IntSet) IsSubsetOf(b *IntSet) bool {
	curr := s.first()
	for curr != nil && b.Has(curr.value) {
		curr = curr.next
	}
	return curr == nil
}

func (s *IntSet) Equal(b *IntSet) bool {
	return b.IsSubsetOf(s) && s.IsSubsetOf(b)
}

func (s *IntSet) NotEqual(b *IntSet) bool {
	return !s.Equal(b)
}

func (s *IntSet) IsProperSubsetOf(b *IntSet) bool {
	return s.NotEqual(b) && s.IsSubsetOf(b)
}

// Union returns a new set holding the elements of s and b.
func (s *IntSet) Union(b *IntSet) *IntSet {
	values := make([]int, 0, s.size+b.size)
	values = append(values, b.Items()...)
	values = append(values, s.Items()...)

	return s.derive(values)
}

// Intersect returns a new set holding the elements of b that s also has.
func (s *IntSet) Intersect(b *IntSet) *IntSet {
	var values []int
	for curr := b.first(); curr != nil; curr = curr.next {
		if s.Has(curr.value) {
			values = append(values, curr.value)
		}
	}

	return s.derive(values)
}

// Difference returns a new set holding the elements of s that b lacks.
func (s *IntSet) Difference(b *IntSet) *IntSet {
	var values []int
	for curr := s.first(); curr != nil; curr = curr.next {
		if !b.Has(curr.value) {
			values = append(values, curr.value)
		}
	}

	if len(values) == 0 {
		return newWithTracker(s.tracker)
	}

	return s.derive(values)
}

// Without returns s minus the singleton {x}.
func (s *IntSet) Without(x int) *IntSet {
	single := newWithTracker(s.tracker)
	single.insert(x)
	defer single.Release()

	return s.Difference(single)
}

// derive builds a result set on the tracker of s.
func (s *IntSet) derive(values []int) *IntSet {
	result := newWithTracker(s.tracker)
	result.insertSlice(values)
	return result
}
