package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/matthieu-m/arcosphere/path"
	"github.com/matthieu-m/arcosphere/plan"
	"github.com/matthieu-m/arcosphere/recipe"
	"github.com/matthieu-m/arcosphere/solver"
)

var (
	headline = color.New(color.Bold)
	pathText = color.New(color.FgCyan)
	okText   = color.New(color.FgGreen)
)

func setupColor(noColor bool) {
	if noColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

// printSolution writes the solved paths, scheduled, ordered by stage or
// recipe count.
func printSolution(w io.Writer, solution *solver.Solution, c *recipe.Catalog, withPlan bool, sortBy string) error {
	plans := make([]*plan.Plan, len(solution.Paths))
	for i, p := range solution.Paths {
		pl, err := plan.Schedule(p, c)
		if err != nil {
			return err
		}
		plans[i] = pl
	}
	if sortBy == "stages" {
		sort.SliceStable(plans, func(i, j int) bool {
			return len(plans[i].Stages) < len(plans[j].Stages)
		})
	}

	headline.Fprintf(w, "%d path(s) with %d catalyst(s), %d recipe(s):\n",
		len(plans), solution.CatalystSize, solution.Length)
	for _, pl := range plans {
		pathText.Fprintln(w, pl.Path.String())
		if withPlan {
			fmt.Fprint(w, pl.String())
		}
	}
	return nil
}

func printValid(w io.Writer, p path.Path) {
	okText.Fprintf(w, "valid path: %s\n", p)
}

func printPlan(w io.Writer, pl *plan.Plan) {
	pathText.Fprintln(w, pl.Path.String())
	fmt.Fprint(w, pl.String())
}
