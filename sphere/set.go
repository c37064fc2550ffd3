package sphere

import (
	"fmt"
	"math"
)

// A Set is a multiset of arcospheres: for each sphere, how many of it the
// set holds. The zero value is the empty set.
//
// A Set is a plain comparable array, so it can be used directly as a map
// key; the array content is also the canonical byte encoding of the set.
type Set [Dimension]uint8

// ErrOverflow is returned when a per-sphere count would exceed 255.
var ErrOverflow = fmt.Errorf("arcosphere count overflow")

// ErrUnderflow is returned when a subtraction would drive a count negative.
var ErrUnderflow = fmt.Errorf("arcosphere count underflow")

// NewSet returns the set holding the given spheres.
func NewSet(spheres ...Sphere) Set {
	var set Set
	for _, s := range spheres {
		set[s]++
	}
	return set
}

// Len returns the total number of spheres in the set.
func (s Set) Len() int {
	n := 0
	for _, c := range s {
		n += int(c)
	}
	return n
}

// IsEmpty returns true iff the set holds no sphere.
func (s Set) IsEmpty() bool {
	return s == Set{}
}

// Count returns the number of copies of sp in the set.
func (s Set) Count(sp Sphere) int {
	return int(s[sp])
}

// Contains returns true iff the set holds at least as many copies of every
// sphere as other does.
func (s Set) Contains(other Set) bool {
	for i := 0; i < Dimension; i++ {
		if s[i] < other[i] {
			return false
		}
	}
	return true
}

// Disjoint returns true iff no sphere appears in both sets.
func (s Set) Disjoint(other Set) bool {
	for i := 0; i < Dimension; i++ {
		if s[i] > 0 && other[i] > 0 {
			return false
		}
	}
	return true
}

// Add returns the pointwise sum of both sets.
// It returns ErrOverflow if a count would exceed the representable maximum.
func (s Set) Add(other Set) (Set, error) {
	for i := 0; i < Dimension; i++ {
		if int(s[i])+int(other[i]) > math.MaxUint8 {
			return Set{}, ErrOverflow
		}
		s[i] += other[i]
	}
	return s, nil
}

// Sub returns the pointwise difference of both sets.
// It returns ErrUnderflow unless s.Contains(other).
func (s Set) Sub(other Set) (Set, error) {
	for i := 0; i < Dimension; i++ {
		if s[i] < other[i] {
			return Set{}, ErrUnderflow
		}
		s[i] -= other[i]
	}
	return s, nil
}

// Mul returns the set with every count multiplied by n.
// It returns ErrOverflow if a count would exceed the representable maximum.
func (s Set) Mul(n int) (Set, error) {
	for i := 0; i < Dimension; i++ {
		c := int(s[i]) * n
		if c > math.MaxUint8 {
			return Set{}, ErrOverflow
		}
		s[i] = uint8(c)
	}
	return s, nil
}

// Insert adds one copy of sp to the set.
func (s *Set) Insert(sp Sphere) {
	if s[sp] == math.MaxUint8 {
		panic("arcosphere count overflow")
	}
	s[sp]++
}

// Remove takes one copy of sp out of the set.
func (s *Set) Remove(sp Sphere) {
	if s[sp] == 0 {
		panic("arcosphere count underflow")
	}
	s[sp]--
}

// Polarity returns the number of negative and positive spheres in the set.
func (s Set) Polarity() (neg, pos int) {
	for i := 0; i < Dimension; i++ {
		if Sphere(i).Polarity() == Negative {
			neg += int(s[i])
		} else {
			pos += int(s[i])
		}
	}
	return neg, pos
}

// Negatives returns the number of negative spheres in the set.
func (s Set) Negatives() int {
	neg, _ := s.Polarity()
	return neg
}

// Positives returns the number of positive spheres in the set.
func (s Set) Positives() int {
	_, pos := s.Polarity()
	return pos
}

// Bytes returns the canonical encoding of the set: the eight counts in
// sphere order. Equal sets produce identical byte strings.
func (s Set) Bytes() []byte {
	return append([]byte(nil), s[:]...)
}

// Compare orders sets on their canonical encoding, reversed per sphere so
// that sets holding earlier-alphabet spheres sort first: for equal sizes
// this matches the lexicographic order of the text forms, "E" before "G".
// It returns -1, 0 or 1 as s sorts before, equal to or after other.
func (s Set) Compare(other Set) int {
	for i := 0; i < Dimension; i++ {
		if s[i] != other[i] {
			if s[i] > other[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Spheres returns the content of the set, expanded in canonical order.
func (s Set) Spheres() []Sphere {
	spheres := make([]Sphere, 0, s.Len())
	for i := 0; i < Dimension; i++ {
		for n := uint8(0); n < s[i]; n++ {
			spheres = append(spheres, Sphere(i))
		}
	}
	return spheres
}
