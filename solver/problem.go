package solver

import (
	"fmt"

	"github.com/matthieu-m/arcosphere/recipe"
	"github.com/matthieu-m/arcosphere/sphere"
)

// A Problem is a (source, target, catalog) triple with a repetition
// factor, plus the invariants precomputed from them. It is constructed
// once per solve and never mutated.
type Problem struct {
	// Source and Target of a single conversion.
	Source sphere.Set
	Target sphere.Set
	// Count is the repetition factor: the problem converts Count copies
	// of Source into Count copies of Target.
	Count int
	// Catalog of usable recipes.
	Catalog *recipe.Catalog

	scaledSource sphere.Set
	scaledTarget sphere.Set
	delta        int
	lowerBound   int
}

// NewProblem validates the inputs and precomputes the problem invariants.
func NewProblem(source, target sphere.Set, catalog *recipe.Catalog, count int) (*Problem, error) {
	if catalog == nil {
		return nil, fmt.Errorf("nil catalog")
	}
	if count < 1 {
		return nil, fmt.Errorf("invalid repetition %d", count)
	}
	scaledSource, err := source.Mul(count)
	if err != nil {
		return nil, fmt.Errorf("source with repetition %d: %w", count, err)
	}
	scaledTarget, err := target.Mul(count)
	if err != nil {
		return nil, fmt.Errorf("target with repetition %d: %w", count, err)
	}

	pb := &Problem{
		Source:       source,
		Target:       target,
		Count:        count,
		Catalog:      catalog,
		scaledSource: scaledSource,
		scaledTarget: scaledTarget,
		delta:        scaledTarget.Negatives() - scaledSource.Negatives(),
	}
	pb.lowerBound = pb.computeLowerBound()
	return pb, nil
}

// PolarityDelta returns the difference in negative sphere counts between
// the scaled target and the scaled source. Foldings preserve it; each
// inversion shifts it by 4, so it must be a multiple of 4 for a solution
// to exist.
func (pb *Problem) PolarityDelta() int {
	return pb.delta
}

// MinInversions returns the number of inversion steps any path of the
// problem must contain: |PolarityDelta| / 4.
func (pb *Problem) MinInversions() int {
	if pb.delta < 0 {
		return -pb.delta / 4
	}
	return pb.delta / 4
}

// LowerBound returns a lower bound on the length of any path: the
// mandatory inversions, plus the foldings needed to cover the per-sphere
// deficit the inversions cannot.
func (pb *Problem) LowerBound() int {
	return pb.lowerBound
}

func (pb *Problem) computeLowerBound() int {
	deficit := 0
	for i := 0; i < sphere.Dimension; i++ {
		if pb.scaledTarget[i] > pb.scaledSource[i] {
			deficit += int(pb.scaledTarget[i] - pb.scaledSource[i])
		}
	}
	inversions := pb.MinInversions()
	remaining := deficit - 4*inversions
	if remaining <= 0 {
		return inversions
	}
	// A folding creates at most two of the missing spheres.
	return inversions + (remaining+1)/2
}

// Feasible returns nil if a solution can exist, and ErrNoSolution wrapped
// with the reason otherwise. Catalysts cannot help any of these cases:
// they are added to both sides, so neither the size difference nor the
// polarity delta depends on them.
func (pb *Problem) Feasible() error {
	if pb.scaledSource.Len() != pb.scaledTarget.Len() {
		return fmt.Errorf("%w: recipes preserve the sphere count, but source has %d spheres and target %d",
			ErrNoSolution, pb.scaledSource.Len(), pb.scaledTarget.Len())
	}
	if pb.delta%4 != 0 {
		return fmt.Errorf("%w: polarity delta %d is not a multiple of 4", ErrNoSolution, pb.delta)
	}
	if pb.delta != 0 {
		needed := 4
		if pb.delta < 0 {
			needed = -4
		}
		available := false
		for _, r := range pb.Catalog.Inversions() {
			if r.PolarityShift() == needed {
				available = true
				break
			}
		}
		if !available {
			return fmt.Errorf("%w: polarity delta %d needs an inversion the catalog does not have", ErrNoSolution, pb.delta)
		}
	}
	return nil
}

// start returns the search start state for the given catalysts.
func (pb *Problem) start(catalysts sphere.Set) (sphere.Set, error) {
	return pb.scaledSource.Add(catalysts)
}

// goal returns the search goal state for the given catalysts.
func (pb *Problem) goal(catalysts sphere.Set) (sphere.Set, error) {
	return pb.scaledTarget.Add(catalysts)
}
