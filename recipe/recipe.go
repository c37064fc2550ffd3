package recipe

import (
	"fmt"

	"github.com/matthieu-m/arcosphere/sphere"
)

// Kind is the shape of a recipe: folding or inversion.
type Kind uint8

const (
	// Folding preserves the polarity counts of the set it is applied to.
	Folding = Kind(iota)
	// Inversion flips the polarity of four spheres at once.
	Inversion
)

func (k Kind) String() string {
	switch k {
	case Folding:
		return "folding"
	case Inversion:
		return "inversion"
	default:
		panic("invalid kind")
	}
}

// A Recipe is a rewrite rule: it consumes Input and produces Output.
// Recipes are immutable values; two recipes are the same iff their inputs
// and outputs are equal.
type Recipe struct {
	Name   string
	Input  sphere.Set
	Output sphere.Set
}

// negativeSet is the complete negative class, ELPX.
var negativeSet = sphere.NewSet(sphere.Epsilon, sphere.Lambda, sphere.Phi, sphere.Xi)

// positiveSet is the complete positive class, GOTZ.
var positiveSet = sphere.NewSet(sphere.Gamma, sphere.Omega, sphere.Theta, sphere.Zeta)

// Kind returns the shape of the recipe.
// It only makes sense on a validated recipe.
func (r Recipe) Kind() Kind {
	if r.Input == negativeSet || r.Input == positiveSet {
		return Inversion
	}
	return Folding
}

// Validate checks that the recipe is well formed: the total sphere count is
// preserved, and the recipe is either a folding (one negative and one
// positive sphere on each side) or an inversion (one complete polarity
// class to the other).
func (r Recipe) Validate() error {
	if r.Input.Len() != r.Output.Len() {
		return fmt.Errorf("recipe %s does not preserve the number of spheres", r)
	}
	inNeg, inPos := r.Input.Polarity()
	outNeg, outPos := r.Output.Polarity()
	switch {
	case inNeg == 1 && inPos == 1 && outNeg == 1 && outPos == 1:
		return nil
	case r.Input == negativeSet && r.Output == positiveSet:
		return nil
	case r.Input == positiveSet && r.Output == negativeSet:
		return nil
	default:
		return fmt.Errorf("recipe %s is neither a folding nor an inversion", r)
	}
}

// Applicable returns true iff the recipe can fire on the given set.
func (r Recipe) Applicable(set sphere.Set) bool {
	return set.Contains(r.Input)
}

// Apply fires the recipe on the given set, consuming its input and adding
// its output. It returns sphere.ErrUnderflow if the input is not contained
// in the set, and sphere.ErrOverflow if a count overflows.
func (r Recipe) Apply(set sphere.Set) (sphere.Set, error) {
	rest, err := set.Sub(r.Input)
	if err != nil {
		return sphere.Set{}, err
	}
	return rest.Add(r.Output)
}

// PolarityShift returns by how much the recipe changes the number of
// negative spheres of the set it fires on: 0 for foldings, +4 or -4 for
// inversions.
func (r Recipe) PolarityShift() int {
	inNeg, _ := r.Input.Polarity()
	outNeg, _ := r.Output.Polarity()
	return outNeg - inNeg
}

func (r Recipe) String() string {
	return fmt.Sprintf("%s -> %s", r.Input, r.Output)
}
