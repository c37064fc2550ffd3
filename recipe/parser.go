package recipe

import (
	"fmt"
	"strings"

	"github.com/matthieu-m/arcosphere/sphere"
)

// ParseRule parses the text form of a rewrite rule, "EO -> LG", into its
// input and output sets. Grouping brackets, as in "[EO] -> [LG]", are
// accepted and ignored.
func ParseRule(text string) (input, output sphere.Set, err error) {
	before, after, found := strings.Cut(text, "->")
	if !found {
		return sphere.Set{}, sphere.Set{}, fmt.Errorf("ill-formed recipe %q: missing \"->\"", text)
	}
	if input, err = sphere.Parse(before); err != nil {
		return sphere.Set{}, sphere.Set{}, fmt.Errorf("ill-formed recipe %q: %v", text, err)
	}
	if output, err = sphere.Parse(after); err != nil {
		return sphere.Set{}, sphere.Set{}, fmt.Errorf("ill-formed recipe %q: %v", text, err)
	}
	return input, output, nil
}

// Parse parses the text form of a rule and resolves it to a recipe of the
// catalog. Rules naming unknown recipes are rejected.
func (c *Catalog) Parse(text string) (Recipe, error) {
	input, output, err := ParseRule(text)
	if err != nil {
		return Recipe{}, err
	}
	return c.Find(input, output)
}
