package solver

import "github.com/matthieu-m/arcosphere/sphere"

// An Enumerator produces the candidate catalyst multisets of a problem,
// lazily, in non-decreasing size order; within a size, candidates come in
// lexicographic order over the sphere alphabet. The stream is
// deterministic and free of duplicates.
//
// Candidates that arithmetic alone proves useless are skipped: when the
// problem requires inversions, a start state of fewer than four spheres
// can never fire one.
type Enumerator struct {
	problem *Problem
	maxSize int

	size       int
	candidates []sphere.Set
	next       int
}

// NewEnumerator returns an enumerator over the catalysts of size 0 up to
// and including maxSize.
func NewEnumerator(pb *Problem, maxSize int) *Enumerator {
	return &Enumerator{problem: pb, maxSize: maxSize, size: -1}
}

// Next returns the next candidate, or false when the enumeration is over.
func (e *Enumerator) Next() (sphere.Set, bool) {
	for {
		if e.size >= 0 && e.next < len(e.candidates) {
			candidate := e.candidates[e.next]
			e.next++
			if e.admissible(candidate) {
				return candidate, true
			}
			continue
		}
		if e.size >= e.maxSize {
			return sphere.Set{}, false
		}
		e.size++
		e.candidates = combinations(e.size)
		e.next = 0
	}
}

// admissible is a pure arithmetic filter; it never searches.
func (e *Enumerator) admissible(candidate sphere.Set) bool {
	if e.problem.MinInversions() == 0 {
		return true
	}
	return e.problem.scaledSource.Len()+candidate.Len() >= 4
}

// combinations returns every multiset of the given size, in lexicographic
// order over the sphere alphabet: for size 2, EE, EG, EL, ... ZZ.
func combinations(size int) []sphere.Set {
	var result []sphere.Set
	var build func(first sphere.Sphere, left int, acc sphere.Set)
	build = func(first sphere.Sphere, left int, acc sphere.Set) {
		if left == 0 {
			result = append(result, acc)
			return
		}
		for s := first; s < sphere.Dimension; s++ {
			withS := acc
			withS[s]++
			build(s, left-1, withS)
		}
	}
	build(sphere.Epsilon, size, sphere.Set{})
	return result
}
