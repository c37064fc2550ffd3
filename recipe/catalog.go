package recipe

import (
	"fmt"

	"github.com/matthieu-m/arcosphere/sphere"
)

// A Catalog is an immutable, ordered collection of recipes.
// The order of the recipes is the total order used everywhere determinism
// matters: applicable-recipe scans, path canonicalization, tie-breaks.
type Catalog struct {
	recipes []Recipe
}

// New builds a catalog from the given recipes.
// Every recipe must validate, and no two recipes may share the same
// input/output pair.
func New(recipes ...Recipe) (*Catalog, error) {
	for i, r := range recipes {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		for _, prev := range recipes[:i] {
			if prev.Input == r.Input && prev.Output == r.Output {
				return nil, fmt.Errorf("duplicate recipe %s", r)
			}
		}
	}
	c := &Catalog{recipes: make([]Recipe, len(recipes))}
	copy(c.recipes, recipes)
	return c, nil
}

// Len returns the number of recipes in the catalog.
func (c *Catalog) Len() int {
	return len(c.recipes)
}

// Recipe returns the recipe at the given index.
func (c *Catalog) Recipe(i int) Recipe {
	return c.recipes[i]
}

// Recipes returns a copy of the recipes, in catalog order.
func (c *Catalog) Recipes() []Recipe {
	return append([]Recipe(nil), c.recipes...)
}

// Applicable returns the indices of the recipes that can fire on the given
// set, in catalog order. With an 8-sphere alphabet and ~10 recipes a linear
// scan beats any indexing structure.
func (c *Catalog) Applicable(set sphere.Set) []int {
	var indices []int
	for i, r := range c.recipes {
		if r.Applicable(set) {
			indices = append(indices, i)
		}
	}
	return indices
}

// Find returns the recipe with the given input and output.
func (c *Catalog) Find(input, output sphere.Set) (Recipe, error) {
	for _, r := range c.recipes {
		if r.Input == input && r.Output == output {
			return r, nil
		}
	}
	return Recipe{}, fmt.Errorf("unknown recipe %s -> %s", input, output)
}

// Foldings returns the folding recipes, in catalog order.
func (c *Catalog) Foldings() []Recipe {
	return c.ofKind(Folding)
}

// Inversions returns the inversion recipes, in catalog order.
func (c *Catalog) Inversions() []Recipe {
	return c.ofKind(Inversion)
}

func (c *Catalog) ofKind(kind Kind) []Recipe {
	var recipes []Recipe
	for _, r := range c.recipes {
		if r.Kind() == kind {
			recipes = append(recipes, r)
		}
	}
	return recipes
}

// WithoutInversions returns a catalog holding only the folding recipes.
func (c *Catalog) WithoutInversions() *Catalog {
	return &Catalog{recipes: c.Foldings()}
}

// Without returns a catalog with the named recipes removed.
func (c *Catalog) Without(names ...string) *Catalog {
	excluded := make(map[string]bool, len(names))
	for _, name := range names {
		excluded[name] = true
	}
	var recipes []Recipe
	for _, r := range c.recipes {
		if !excluded[r.Name] {
			recipes = append(recipes, r)
		}
	}
	return &Catalog{recipes: recipes}
}

// SpaceExploration returns the default catalog: the ten arcosphere recipes
// of the Space Exploration mod, two inversions followed by eight foldings.
func SpaceExploration() *Catalog {
	mustParse := func(text string) sphere.Set {
		set, err := sphere.Parse(text)
		if err != nil {
			panic(err)
		}
		return set
	}
	mk := func(name, input, output string) Recipe {
		return Recipe{Name: name, Input: mustParse(input), Output: mustParse(output)}
	}
	c, err := New(
		mk("GOTZ", "GOTZ", "ELPX"),
		mk("ELPX", "ELPX", "GOTZ"),
		mk("EO", "EO", "LG"),
		mk("ET", "ET", "PO"),
		mk("LO", "LO", "XT"),
		mk("LT", "LT", "EZ"),
		mk("PG", "PG", "XO"),
		mk("PZ", "PZ", "EG"),
		mk("XG", "XG", "LZ"),
		mk("XZ", "XZ", "PT"),
	)
	if err != nil {
		panic(err)
	}
	return c
}
