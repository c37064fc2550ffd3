package solver

import (
	"context"
	"fmt"

	"github.com/matthieu-m/arcosphere/recipe"
	"github.com/matthieu-m/arcosphere/sphere"
)

// A searcher runs the bounded breadth-first search for one catalyst
// candidate. Each searcher owns its frontier and visited set exclusively;
// it only publishes its final result.
type searcher struct {
	catalog  *recipe.Catalog
	maxDepth int
	maxNodes int

	expanded int
}

// A pred is an incoming edge of the state graph: firing recipe on from
// leads to the annotated state.
type pred struct {
	from   sphere.Set
	recipe int
}

// run returns every shortest recipe sequence from start to goal, as
// catalog indices, one canonical ordering per equivalence class.
//
// It returns (nil, nil) when the search space is exhausted without
// reaching goal, ErrTruncated when a cap is exceeded first, and
// ErrCancelled when the context is cancelled between levels.
func (s *searcher) run(ctx context.Context, start, goal sphere.Set) ([][]int, error) {
	if start == goal {
		return [][]int{{}}, nil
	}

	depths := map[sphere.Set]int{start: 0}
	preds := make(map[sphere.Set][]pred)
	frontier := []sphere.Set{start}

	for depth := 0; ; depth++ {
		if err := ctx.Err(); err != nil {
			return nil, ErrCancelled
		}
		if depth == s.maxDepth {
			return nil, fmt.Errorf("%w: depth cap %d exceeded", ErrTruncated, s.maxDepth)
		}

		var next []sphere.Set
		found := false
		for _, state := range frontier {
			for _, ri := range s.catalog.Applicable(state) {
				successor, err := s.catalog.Recipe(ri).Apply(state)
				if err != nil {
					return nil, &InternalError{Cause: err}
				}
				if d, ok := depths[successor]; ok {
					if d == depth+1 {
						preds[successor] = append(preds[successor], pred{from: state, recipe: ri})
					}
					continue
				}
				depths[successor] = depth + 1
				preds[successor] = []pred{{from: state, recipe: ri}}
				next = append(next, successor)
				if successor == goal {
					found = true
				}
			}
		}
		s.expanded += len(next)

		if found {
			return s.reconstruct(preds, goal, depth+1), nil
		}
		if len(next) == 0 {
			return nil, nil
		}
		if s.maxNodes > 0 && len(next) > s.maxNodes {
			return nil, fmt.Errorf("%w: node cap %d exceeded (%d states)", ErrTruncated, s.maxNodes, len(next))
		}
		frontier = next
	}
}

// reconstruct walks the predecessor graph backwards from goal, emitting
// every distinct shortest sequence.
//
// Sequences differing only by swapping independent adjacent steps are the
// same logical path; only the canonical ordering of each equivalence
// class is emitted. A pair of adjacent steps is swappable when their
// inputs are disjoint and jointly available before the first one fires;
// the canonical ordering never places the higher-indexed recipe first.
// Orders that are not swappable are genuinely distinct and all kept.
func (s *searcher) reconstruct(preds map[sphere.Set][]pred, goal sphere.Set, length int) [][]int {
	var result [][]int
	suffix := make([]int, 0, length)

	var walk func(state sphere.Set, depth int)
	walk = func(state sphere.Set, depth int) {
		if depth == 0 {
			sequence := make([]int, len(suffix))
			for i, ri := range suffix {
				sequence[len(suffix)-1-i] = ri
			}
			result = append(result, sequence)
			return
		}
		for _, p := range preds[state] {
			if len(suffix) > 0 && !s.canonical(p, suffix[len(suffix)-1]) {
				continue
			}
			suffix = append(suffix, p.recipe)
			walk(p.from, depth-1)
			suffix = suffix[:len(suffix)-1]
		}
	}
	walk(goal, length)
	return result
}

// canonical reports whether recipe p.recipe may immediately precede next
// in a canonical sequence.
func (s *searcher) canonical(p pred, next int) bool {
	if p.recipe <= next {
		return true
	}
	return !swappable(p.from, s.catalog.Recipe(p.recipe), s.catalog.Recipe(next))
}

// swappable reports whether both orderings of a then b are valid from the
// given state: their inputs are disjoint and jointly contained in it.
func swappable(state sphere.Set, a, b recipe.Recipe) bool {
	if !a.Input.Disjoint(b.Input) {
		return false
	}
	joint, err := a.Input.Add(b.Input)
	if err != nil {
		return false
	}
	return state.Contains(joint)
}
