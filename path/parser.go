package path

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matthieu-m/arcosphere/recipe"
	"github.com/matthieu-m/arcosphere/sphere"
)

// Parse parses the canonical text of a path, resolving every recipe
// against the given catalog. Whitespace around separators is flexible, and
// grouping brackets inside sets are ignored.
//
// A path with no "=>" segment, e.g. "EL -> EL", is the empty path.
func Parse(text string, c *recipe.Catalog) (Path, error) {
	head, steps, hasSteps := strings.Cut(text, "=>")

	p, err := parseHead(head)
	if err != nil {
		return Path{}, err
	}
	if !hasSteps {
		return p, nil
	}

	for _, stage := range strings.Split(steps, "|") {
		n := 0
		for _, rule := range strings.Split(stage, "//") {
			rule = strings.TrimSpace(rule)
			if rule == "" {
				return Path{}, fmt.Errorf("ill-formed path: empty recipe in %q", stage)
			}
			r, err := c.Parse(rule)
			if err != nil {
				return Path{}, err
			}
			p.Recipes = append(p.Recipes, r)
			n++
		}
		p.Stages = append(p.Stages, n)
	}
	return p, nil
}

// parseHead parses "SOURCE -> TARGET [xN] [+ CATALYSTS]".
func parseHead(head string) (Path, error) {
	p := Path{Count: 1}

	before, after, found := strings.Cut(head, "->")
	if !found {
		return Path{}, fmt.Errorf("ill-formed path %q: missing \"->\"", strings.TrimSpace(head))
	}
	var err error
	if p.Source, err = sphere.Parse(before); err != nil {
		return Path{}, fmt.Errorf("could not parse SOURCE: %v", err)
	}

	fields := strings.Fields(after)
	if len(fields) == 0 {
		return Path{}, fmt.Errorf("ill-formed path %q: missing TARGET", strings.TrimSpace(head))
	}
	if p.Target, err = sphere.Parse(fields[0]); err != nil {
		return Path{}, fmt.Errorf("could not parse TARGET: %v", err)
	}

	fields = fields[1:]
	for len(fields) > 0 {
		switch {
		case fields[0][0] == 'x':
			count, err := strconv.Atoi(fields[0][1:])
			if err != nil || count < 1 {
				return Path{}, fmt.Errorf("invalid repetition %q", fields[0])
			}
			if count > 255 {
				return Path{}, fmt.Errorf("repetition %q too large", fields[0])
			}
			p.Count = count
			fields = fields[1:]
		case fields[0] == "+":
			if len(fields) < 2 {
				return Path{}, fmt.Errorf("missing CATALYSTS after \"+\"")
			}
			if p.Catalysts, err = sphere.Parse(fields[1]); err != nil {
				return Path{}, fmt.Errorf("could not parse CATALYSTS: %v", err)
			}
			fields = fields[2:]
		case fields[0][0] == '+':
			if p.Catalysts, err = sphere.Parse(fields[0][1:]); err != nil {
				return Path{}, fmt.Errorf("could not parse CATALYSTS: %v", err)
			}
			fields = fields[1:]
		default:
			return Path{}, fmt.Errorf("unexpected token %q in path head", fields[0])
		}
	}
	return p, nil
}
