package set

import (
	"io"
	"strconv"
	"strings"
)

const EmptyMarker = "Set is empty!"

// String renders the set as "{ 1 3 5 }", or EmptyMarker when it has no
// elements.
func (s *IntSet) String() string {
	var b strings.Builder
	s.render(&b)
	return b.String()
}

func (s *IntSet) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

// Join renders sets one after another separated by a single space.
func Join(sets ...*IntSet) string {
	var b strings.Builder
	for i, s := range sets {
		if i != 0 {
			b.WriteString(" ")
		}
		s.render(&b)
	}
	return b.String()
}

func (s *IntSet) render(b *strings.Builder) {
	if s.IsEmpty() {
		b.WriteString(EmptyMarker)
		return
	}

	b.WriteString("{ ")
	for curr := s.first(); curr != nil; curr = curr.next {
		b.WriteString(strconv.Itoa(curr.value))
		b.WriteString(" ")
	}
	b.WriteString("}")
}
