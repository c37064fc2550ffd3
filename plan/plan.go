package plan

import (
	"fmt"
	"strings"

	"github.com/matthieu-m/arcosphere/path"
	"github.com/matthieu-m/arcosphere/recipe"
	"github.com/matthieu-m/arcosphere/sphere"
	"github.com/matthieu-m/arcosphere/verify"
)

// A Stage is a set of recipes firing concurrently within one step of the
// scheduled plan.
type Stage struct {
	// Reserved are the spheres of the pre-stage multiset not consumed by
	// this stage, preserved for later stages.
	Reserved sphere.Set
	// Working are the spheres consumed by this stage's recipes.
	Working sphere.Set
	// Released are the spheres of the post-stage multiset that no later
	// stage consumes; they can be handed back to the caller. Releases are
	// cumulative: a sphere released at stage i is still reported at i+1.
	Released sphere.Set
	// Recipes firing in this stage. Their inputs are pairwise disjoint.
	Recipes []recipe.Recipe
}

// A Plan is a valid path regrouped into concurrent stages.
type Plan struct {
	// Path is the scheduled path, with Stages reflecting the grouping.
	Path path.Path
	// Stages of the plan, in execution order.
	Stages []Stage
}

// Schedule verifies p and groups its recipes into stages: each stage is
// the longest prefix of the remaining steps whose inputs are pairwise
// disjoint and jointly contained in the pending multiset.
//
// The input path's own stage grouping, if any, is ignored; scheduling
// always starts from the flat recipe sequence. An invalid path is
// rejected with the verification error naming the failing step.
func Schedule(p path.Path, c *recipe.Catalog) (*Plan, error) {
	if err := verify.Path(p, c); err != nil {
		return nil, fmt.Errorf("cannot schedule an invalid path: %w", err)
	}

	pending, err := p.Start()
	if err != nil {
		return nil, err
	}

	plan := &Plan{Path: p}
	remaining := p.Recipes
	for len(remaining) > 0 {
		var working sphere.Set
		k := 0
		for _, r := range remaining {
			if !working.Disjoint(r.Input) {
				break
			}
			joint, err := working.Add(r.Input)
			if err != nil || !pending.Contains(joint) {
				break
			}
			working = joint
			k++
		}
		if k == 0 {
			// Cannot happen on a verified path.
			return nil, fmt.Errorf("internal: no applicable step among %d remaining", len(remaining))
		}

		post, err := pending.Sub(working)
		if err != nil {
			return nil, fmt.Errorf("internal: %w", err)
		}
		reserved := post
		for _, r := range remaining[:k] {
			if post, err = post.Add(r.Output); err != nil {
				return nil, fmt.Errorf("internal: %w", err)
			}
		}

		var released sphere.Set
		for i := 0; i < sphere.Dimension; i++ {
			needed := false
			for _, r := range remaining[k:] {
				if r.Input[i] > 0 {
					needed = true
					break
				}
			}
			if !needed {
				released[i] = post[i]
			}
		}

		plan.Stages = append(plan.Stages, Stage{
			Reserved: reserved,
			Working:  working,
			Released: released,
			Recipes:  remaining[:k],
		})
		pending = post
		remaining = remaining[k:]
	}

	end, err := p.End()
	if err != nil {
		return nil, err
	}
	if pending != end {
		return nil, fmt.Errorf("internal: reached %s instead of %s", pending, end)
	}

	plan.Path.Stages = make([]int, len(plan.Stages))
	for i, stage := range plan.Stages {
		plan.Path.Stages[i] = len(stage.Recipes)
	}
	return plan, nil
}

// Flatten returns the concatenated recipe sequence of the plan, in the
// original path order.
func (pl *Plan) Flatten() []recipe.Recipe {
	var recipes []recipe.Recipe
	for _, stage := range pl.Stages {
		recipes = append(recipes, stage.Recipes...)
	}
	return recipes
}

// String returns the stage listing, one numbered line per stage.
func (pl *Plan) String() string {
	var sb strings.Builder
	for i, stage := range pl.Stages {
		fmt.Fprintf(&sb, "  %d. [%s] + [%s] + [%s] |", i+1, stage.Reserved, stage.Working, stage.Released)
		for j, r := range stage.Recipes {
			if j > 0 {
				sb.WriteString(" //")
			}
			fmt.Fprintf(&sb, " %s", r)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
