// Package phases is the scenario harness for the set package. Every phase
// builds sets inside block scopes, checks their cardinality, rendering and
// the number of live chain nodes, and must leave no node behind.
package phases

import (
	"github.com/denismitr/intset/set"
)

type Phase struct {
	ID     int
	Titles []string
	Run    func(e *Env) error
}

// All returns the phases in the order they are meant to run.
func All() []Phase {
	return []Phase{
		{
			ID: 0,
			Titles: []string{
				"default constructor and constructor int -> Set",
				"cardinality and empty",
			},
			Run: constructors,
		},
		{
			ID:     1,
			Titles: []string{"constructor from a vector", "cardinality and empty"},
			Run:    fromVector,
		},
		{ID: 2, Titles: []string{"copy constructor"}, Run: copyConstructor},
		{ID: 3, Titles: []string{"operator="}, Run: assignment},
		{ID: 4, Titles: []string{"member"}, Run: member},
		{ID: 5, Titles: []string{"equality, subset, strict subset"}, Run: comparisons},
		{ID: 6, Titles: []string{"union"}, Run: union},
		{ID: 7, Titles: []string{"intersection"}, Run: intersection},
		{ID: 8, Titles: []string{"difference"}, Run: difference},
		{ID: 9, Titles: []string{"mixed-mode set difference"}, Run: differenceWithValue},
		{ID: 10, Titles: []string{"union, intersection, and difference"}, Run: mixed},
	}
}

func constructors(e *Env) error {
	return e.Block(func(sc *Scope) error {
		var c Checks

		s1 := sc.Empty()
		c.Add(e.ExpectLive(1))
		c.Add(Expect(s1.Len() == 0, "S1 has no elements"))
		c.Add(Expect(s1.IsEmpty(), "S1 is empty"))

		s2 := sc.Of(-5)
		c.Add(e.ExpectLive(3))
		c.Add(Expect(s2.Len() == 1, "S2 has one element"))
		c.Add(Expect(!s2.IsEmpty(), "S2 is not empty"))

		c.Add(ExpectRender(set.Join(s1, s2), "Set is empty! { -5 }"))
		return c.Err()
	})
}

func fromVector(e *Env) error {
	return e.Block(func(sc *Scope) error {
		var c Checks

		s1 := sc.From(5, 3, 1)
		c.Add(e.ExpectLive(4))
		c.Add(Expect(s1.Len() == 3, "S1 has three elements"))
		c.Add(Expect(!s1.IsEmpty(), "S1 is not empty"))

		s2 := sc.From(4, 3, 4, 20, 15)
		c.Add(e.ExpectLive(9))
		c.Add(Expect(s2.Len() == 4, "S2 has four elements"))
		c.Add(Expect(!s2.IsEmpty(), "S2 is not empty"))

		c.Add(ExpectRender(set.Join(s1, s2), "{ 1 3 5 } { 3 4 15 20 }"))
		return c.Err()
	})
}

func copyConstructor(e *Env) error {
	return e.Block(func(sc *Scope) error {
		var c Checks

		s1 := sc.From(3, 3, 5, 1)
		c.Add(e.ExpectLive(4))

		s2 := sc.Keep(s1.Clone())
		c.Add(e.ExpectLive(8))
		c.Add(Expect(s1.Len() == s2.Len(), "copy has the same cardinality"))

		c.Add(ExpectRender(set.Join(s1, s2), "{ 1 3 5 } { 1 3 5 }"))
		return c.Err()
	})
}

func assignment(e *Env) error {
	return e.Block(func(sc *Scope) error {
		var c Checks

		s1 := sc.Empty()
		c.Add(e.ExpectLive(1))

		s2 := sc.From(1, 3, 5)
		c.Add(e.ExpectLive(5))

		s3 := sc.From(3, 8, 2, -1)
		c.Add(e.ExpectLive(10))

		s1.Assign(s2.Assign(s3))
		c.Add(e.ExpectLive(15))
		c.Add(Expect(s1.Len() == s2.Len(), "S1 and S2 have the same cardinality"))
		c.Add(Expect(s2.Len() == s3.Len(), "S2 and S3 have the same cardinality"))
		c.Add(ExpectRender(set.Join(s1, s2, s3), "{ -1 2 3 8 } { -1 2 3 8 } { -1 2 3 8 }"))

		sc.Move(s1, sc.Temp())
		c.Add(e.ExpectLive(11))
		c.Add(Expect(s1.IsEmpty(), "S1 is empty after assigning an empty set"))
		c.Add(ExpectRender(s1.String(), "Set is empty!"))

		return c.Err()
	})
}

func member(e *Env) error {
	return e.Block(func(sc *Scope) error {
		var c Checks

		s1 := sc.From(5, 1, 3, 1)
		c.Add(e.ExpectLive(4))
		c.Add(Expect(s1.Len() == 3, "S1 has three elements"))

		c.Add(Expect(s1.Has(1), "1 is a member"))
		c.Add(Expect(!s1.Has(2), "2 is not a member"))
		c.Add(Expect(s1.Has(3), "3 is a member"))
		c.Add(Expect(s1.Has(5), "5 is a member"))
		c.Add(Expect(!s1.Has(99999), "99999 is not a member"))

		return c.Err()
	})
}

func comparisons(e *Env) error {
	return e.Block(func(sc *Scope) error {
		var c Checks

		s1 := sc.From(8, 3, 5, 1, 3)
		c.Add(e.ExpectLive(5))
		c.Add(Expect(s1.Len() == 4, "S1 has four elements"))

		s2 := sc.From(3, 5)
		c.Add(e.ExpectLive(8))
		c.Add(Expect(s2.Len() == 2, "S2 has two elements"))

		c.Add(Expect(s2.IsSubsetOf(s1), "S2 <= S1"))
		c.Add(Expect(!s1.IsSubsetOf(s2), "not S1 <= S2"))
		c.Add(Expect(!s1.IsProperSubsetOf(s1), "not S1 < S1"))
		c.Add(Expect(!s1.Equal(s2), "not S1 == S2"))
		c.Add(Expect(s1.NotEqual(s2), "S1 != S2"))

		notSubset := sc.Check(sc.Temp(10, 3, 5, 8), func(s *set.IntSet) bool {
			return !s.IsSubsetOf(s2)
		})
		c.Add(Expect(notSubset, "not {3 5 8 10} <= S2"))

		return c.Err()
	})
}

func union(e *Env) error {
	return e.Block(func(sc *Scope) error {
		var c Checks

		s1 := sc.From(5, 3, 1, 8, 1)
		c.Add(e.ExpectLive(5))

		s2 := sc.From(2, 7, 3)
		c.Add(e.ExpectLive(9))

		s3 := sc.Empty()
		c.Add(e.ExpectLive(10))

		sc.Move(s3, s1.Union(s2))
		c.Add(e.ExpectLive(16))
		c.Add(Expect(s3.Len() == 6, "S3 has six elements"))

		c.Add(Expect(sc.Check(sc.Temp(1, 2, 3, 5, 7, 8), s3.Equal), "S3 == {1 2 3 5 7 8}"))

		left, right := sc.Temp(), sc.Temp()
		partial := left.Union(s1)
		s4 := sc.Keep(partial.Union(right))
		sc.Drop(left, partial, right)
		c.Add(e.ExpectLive(21))

		c.Add(Expect(s4.Equal(s1), "S4 == S1"))
		c.Add(Expect(sc.Check(s1.Union(s1), s1.Equal), "S1 + S1 == S1"))

		return c.Err()
	})
}

func intersection(e *Env) error {
	return e.Block(func(sc *Scope) error {
		var c Checks

		s1 := sc.From(5, 3, 1, 8, 1)
		c.Add(e.ExpectLive(5))

		s2 := sc.From(2, 7, 3)
		c.Add(e.ExpectLive(9))

		s3 := sc.Keep(s1.Intersect(s2))
		c.Add(e.ExpectLive(11))
		c.Add(Expect(s3.Len() == 1, "S3 has one element"))

		c.Add(Expect(sc.Check(sc.Temp(3), s3.Equal), "S3 == {3}"))

		empty, expected := sc.Temp(), sc.Temp()
		c.Add(Expect(sc.Check(empty.Intersect(s1), expected.Equal), "{} * S1 == {}"))
		sc.Drop(empty, expected)

		return c.Err()
	})
}

func difference(e *Env) error {
	return e.Block(func(sc *Scope) error {
		var c Checks

		s1 := sc.From(5, 3, 1, 8, 1)
		c.Add(e.ExpectLive(5))

		s2 := sc.From(2, 7, 3)
		c.Add(e.ExpectLive(9))

		s3 := sc.Keep(s1.Difference(s2))
		c.Add(e.ExpectLive(13))
		c.Add(Expect(s3.Len() == 3, "S3 has three elements"))

		c.Add(Expect(sc.Check(sc.Temp(1, 5, 8), s3.Equal), "S3 == {1 5 8}"))

		empty := sc.Temp()
		c.Add(Expect(sc.Check(s1.Difference(empty), s1.Equal), "S1 - {} == S1"))
		c.Add(Expect(sc.Check(empty.Difference(s1), empty.Equal), "{} - S1 == {}"))
		c.Add(Expect(sc.Check(s1.Difference(s1), empty.Equal), "S1 - S1 == {}"))
		sc.Drop(empty)

		return c.Err()
	})
}

func differenceWithValue(e *Env) error {
	return e.Block(func(sc *Scope) error {
		var c Checks

		s1 := sc.From(5, 3, 1, 8, 1)
		c.Add(e.ExpectLive(5))

		s2 := sc.Keep(s1.Without(5))
		c.Add(e.ExpectLive(9))
		c.Add(Expect(s2.Len() == 3, "S2 has three elements"))

		c.Add(Expect(sc.Check(sc.Temp(1, 3, 8), s2.Equal), "S2 == {1 3 8}"))

		sc.Move(s2, s2.Without(999))
		c.Add(Expect(s2.Equal(s2), "S2 == S2"))

		single, empty := sc.Temp(33), sc.Temp()
		c.Add(Expect(sc.Check(single.Without(33), empty.Equal), "{33} - 33 == {}"))
		sc.Drop(single, empty)

		return c.Err()
	})
}

func mixed(e *Env) error {
	return e.Block(func(sc *Scope) error {
		var c Checks

		s1 := sc.From(1, 3, 5)
		s2 := sc.From(3, 2, 4)
		s3 := sc.From(10, 3)
		c.Add(e.ExpectLive(11))

		withoutFive := s1.Without(5)
		sum := s1.Union(s2)
		diff := withoutFive.Difference(sum)
		sc.Move(s3, diff.Without(99999))
		sc.Drop(withoutFive, sum, diff)
		c.Add(e.ExpectLive(9))

		empty := sc.Temp()
		c.Add(Expect(s3.Equal(empty), "S3 == {}"))
		sc.Drop(empty)

		withoutTwo := s2.Without(2)
		joined := s1.Union(s3)
		three := sc.Temp(3)
		c.Add(Expect(sc.Check(withoutTwo.Intersect(joined), three.Equal), "(S2 - 2) * (S1 + S3) == {3}"))
		sc.Drop(withoutTwo, joined, three)

		return c.Err()
	})
}
