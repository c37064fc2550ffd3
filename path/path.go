package path

import (
	"strconv"
	"strings"

	"github.com/matthieu-m/arcosphere/recipe"
	"github.com/matthieu-m/arcosphere/sphere"
)

// A Path converts Source*Count + Catalysts into Target*Count + Catalysts by
// firing Recipes in order.
type Path struct {
	// Source and Target are the sets of a single conversion, before the
	// repetition factor is applied.
	Source sphere.Set
	Target sphere.Set
	// Count is the repetition factor: the path converts Count copies of
	// Source into Count copies of Target in one run. At least 1.
	Count int
	// Catalysts are extra spheres injected at the start and recovered at
	// the end. May be empty.
	Catalysts sphere.Set
	// Recipes to fire, in order.
	Recipes []recipe.Recipe
	// Stages is the number of recipes in each stage, summing to
	// len(Recipes). A nil Stages means one stage per recipe.
	Stages []int
}

// Start returns the multiset the path starts from: Source*Count + Catalysts.
func (p Path) Start() (sphere.Set, error) {
	scaled, err := p.Source.Mul(p.Count)
	if err != nil {
		return sphere.Set{}, err
	}
	return scaled.Add(p.Catalysts)
}

// End returns the multiset the path must end on: Target*Count + Catalysts.
func (p Path) End() (sphere.Set, error) {
	scaled, err := p.Target.Mul(p.Count)
	if err != nil {
		return sphere.Set{}, err
	}
	return scaled.Add(p.Catalysts)
}

// Len returns the number of recipes in the path.
func (p Path) Len() int {
	return len(p.Recipes)
}

// Steps returns the recipes grouped by stage.
// With a nil Stages, every recipe is its own stage.
func (p Path) Steps() [][]recipe.Recipe {
	if p.Stages == nil {
		steps := make([][]recipe.Recipe, len(p.Recipes))
		for i := range p.Recipes {
			steps[i] = p.Recipes[i : i+1]
		}
		return steps
	}
	steps := make([][]recipe.Recipe, 0, len(p.Stages))
	next := 0
	for _, n := range p.Stages {
		steps = append(steps, p.Recipes[next:next+n])
		next += n
	}
	return steps
}

// Compare orders paths by length first (fewer recipes better), then by
// canonical text, so that sorting a slice of paths is deterministic.
func (p Path) Compare(other Path) int {
	if len(p.Recipes) != len(other.Recipes) {
		if len(p.Recipes) < len(other.Recipes) {
			return -1
		}
		return 1
	}
	return strings.Compare(p.String(), other.String())
}

// Equal returns true iff both paths have the same endpoints, count,
// catalysts and recipe sequence. Stage grouping is not compared.
func (p Path) Equal(other Path) bool {
	if p.Source != other.Source || p.Target != other.Target ||
		p.Count != other.Count || p.Catalysts != other.Catalysts ||
		len(p.Recipes) != len(other.Recipes) {
		return false
	}
	for i, r := range p.Recipes {
		if r.Input != other.Recipes[i].Input || r.Output != other.Recipes[i].Output {
			return false
		}
	}
	return true
}

// String returns the canonical text of the path.
func (p Path) String() string {
	var sb strings.Builder
	sb.WriteString(p.Source.String())
	sb.WriteString(" -> ")
	sb.WriteString(p.Target.String())
	if p.Count > 1 {
		sb.WriteString(" x")
		sb.WriteString(strconv.Itoa(p.Count))
	}
	if !p.Catalysts.IsEmpty() {
		sb.WriteString(" + ")
		sb.WriteString(p.Catalysts.String())
	}
	if len(p.Recipes) == 0 {
		return sb.String()
	}
	sb.WriteString(" => ")
	for i, stage := range p.Steps() {
		if i > 0 {
			sb.WriteString(" | ")
		}
		for j, r := range stage {
			if j > 0 {
				sb.WriteString(" // ")
			}
			sb.WriteString(r.String())
		}
	}
	return sb.String()
}
