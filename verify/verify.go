// Package verify replays a transformation path to check its legitimacy:
// every recipe must exist in the catalog, every step must be applicable to
// the running multiset, and the final multiset must be the target with the
// catalysts recovered.
package verify

import (
	"fmt"

	"github.com/matthieu-m/arcosphere/path"
	"github.com/matthieu-m/arcosphere/recipe"
	"github.com/matthieu-m/arcosphere/sphere"
)

// Reason describes why a path failed to verify.
type Reason uint8

const (
	// UnknownRecipe: a step names a recipe absent from the catalog.
	UnknownRecipe = Reason(iota)
	// RecipeNotApplicable: a step's input is not contained in the running
	// multiset.
	RecipeNotApplicable
	// TargetMismatch: after the last step, the running multiset does not
	// contain the target.
	TargetMismatch
	// CatalystsNotRecovered: the target is reached but the remainder is
	// not the declared catalysts.
	CatalystsNotRecovered
)

func (r Reason) String() string {
	switch r {
	case UnknownRecipe:
		return "unknown recipe"
	case RecipeNotApplicable:
		return "recipe not applicable"
	case TargetMismatch:
		return "target mismatch"
	case CatalystsNotRecovered:
		return "catalysts not recovered"
	default:
		panic("invalid reason")
	}
}

// An Error reports the first verification failure of a path.
type Error struct {
	// Reason of the failure.
	Reason Reason
	// Step is the index of the failing recipe in the path, or -1 when the
	// failure concerns the final state.
	Step int
	// Recipe is the failing recipe, for step failures.
	Recipe recipe.Recipe
	// State is the running multiset when the failure was detected.
	State sphere.Set
}

func (e *Error) Error() string {
	switch e.Reason {
	case UnknownRecipe:
		return fmt.Sprintf("unknown recipe %s at step %d", e.Recipe, e.Step)
	case RecipeNotApplicable:
		return fmt.Sprintf("could not apply %s at step %d on %s", e.Recipe, e.Step, e.State)
	case TargetMismatch:
		return fmt.Sprintf("did not reach the target, reached %s instead", e.State)
	case CatalystsNotRecovered:
		return fmt.Sprintf("did not recover the catalysts, got %s left instead", e.State)
	default:
		panic("invalid reason")
	}
}

// Path replays p from its start multiset and returns nil iff it is valid:
// every recipe exists in c, fires on the running multiset in order, and the
// final multiset is the target with the catalysts recovered.
func Path(p path.Path, c *recipe.Catalog) error {
	if p.Count < 1 {
		return fmt.Errorf("invalid repetition %d", p.Count)
	}
	for i, r := range p.Recipes {
		if _, err := c.Find(r.Input, r.Output); err != nil {
			return &Error{Reason: UnknownRecipe, Step: i, Recipe: r}
		}
	}

	state, err := p.Start()
	if err != nil {
		return fmt.Errorf("invalid start state: %w", err)
	}
	for i, r := range p.Recipes {
		if !state.Contains(r.Input) {
			return &Error{Reason: RecipeNotApplicable, Step: i, Recipe: r, State: state}
		}
		if state, err = r.Apply(state); err != nil {
			return fmt.Errorf("internal: applying %s at step %d: %w", r, i, err)
		}
	}

	target, err := p.Target.Mul(p.Count)
	if err != nil {
		return fmt.Errorf("invalid target state: %w", err)
	}
	if !state.Contains(target) {
		return &Error{Reason: TargetMismatch, Step: -1, State: state}
	}
	remainder, err := state.Sub(target)
	if err != nil {
		return fmt.Errorf("internal: removing target: %w", err)
	}
	if remainder != p.Catalysts {
		return &Error{Reason: CatalystsNotRecovered, Step: -1, State: remainder}
	}
	return nil
}
