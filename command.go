package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/matthieu-m/arcosphere/path"
	"github.com/matthieu-m/arcosphere/plan"
	"github.com/matthieu-m/arcosphere/recipe"
	"github.com/matthieu-m/arcosphere/solver"
	"github.com/matthieu-m/arcosphere/sphere"
	"github.com/matthieu-m/arcosphere/verify"
)

type appOptions struct {
	verbose     bool
	noColor     bool
	catalogPath string
}

// catalog returns the recipe catalog to work with: the Space Exploration
// default, or the one named with --catalog.
func (o *appOptions) catalog() (*recipe.Catalog, error) {
	if o.catalogPath == "" {
		return recipe.SpaceExploration(), nil
	}
	c, err := recipe.Load(o.catalogPath)
	if err != nil {
		return nil, inputError(err)
	}
	return c, nil
}

func (o *appOptions) logger() zerolog.Logger {
	level := zerolog.WarnLevel
	if o.verbose {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func newRootCommand() *cobra.Command {
	opts := &appOptions{}

	root := &cobra.Command{
		Use:   "arcosphere",
		Short: "arcosphere finds, checks and schedules arcosphere transformation paths",
		Long: `arcosphere finds, checks and schedules arcosphere transformation paths.

Sets of arcospheres are written as concatenated abbreviations in the
order E, G, L, O, P, T, X, Z; a path is written as

  SOURCE -> TARGET [xCOUNT] [+ CATALYSTS] => RECIPE (| RECIPE)*

Exit codes: 0 success, 1 no solution or invalid path, 2 caps exceeded,
3 malformed input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupColor(opts.noColor)
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "sets verbose mode on")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disables colored output")
	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "recipe catalog TOML file (default: Space Exploration)")

	root.AddCommand(newSolveCommand(opts), newVerifyCommand(opts), newPlanCommand(opts))
	return root
}

func newSolveCommand(opts *appOptions) *cobra.Command {
	var (
		repetitions  int
		maxCatalysts int
		maxDepth     int
		maxNodes     int
		parallel     bool
		catalysts    string
		withPlan     bool
		sortBy       string
	)

	defaults := solver.DefaultOptions()
	cmd := &cobra.Command{
		Use:   "solve [options] SOURCE TARGET",
		Short: "Finds the minimum-catalyst paths from SOURCE to TARGET",
		Args:  exactArgs(2, "specify exactly two positional arguments: SOURCE and TARGET"),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := sphere.Parse(args[0])
			if err != nil {
				return inputError(fmt.Errorf("could not parse SOURCE %q: %v", args[0], err))
			}
			target, err := sphere.Parse(args[1])
			if err != nil {
				return inputError(fmt.Errorf("could not parse TARGET %q: %v", args[1], err))
			}
			c, err := opts.catalog()
			if err != nil {
				return err
			}
			if repetitions < 1 {
				return inputError(fmt.Errorf("repetitions must be at least 1, got %d", repetitions))
			}
			if sortBy != "stages" && sortBy != "recipes" {
				return inputError(fmt.Errorf("unknown sort order %q, only stages and recipes are accepted", sortBy))
			}

			options := solver.Options{
				MaxCatalysts: maxCatalysts,
				MaxDepth:     maxDepth,
				MaxNodes:     maxNodes,
				Repetitions:  repetitions,
				Parallel:     parallel,
			}
			if catalysts != "" {
				pinned, err := sphere.Parse(catalysts)
				if err != nil {
					return inputError(fmt.Errorf("could not parse CATALYSTS %q: %v", catalysts, err))
				}
				options.Catalysts = &pinned
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			s := solver.New(c).WithOptions(options).WithLogger(opts.logger())
			solution, err := s.Solve(ctx, source, target)
			if err != nil {
				return err
			}
			return printSolution(cmd.OutOrStdout(), solution, c, withPlan, sortBy)
		},
	}

	cmd.Flags().IntVarP(&repetitions, "repetitions", "n", defaults.Repetitions, "number of SOURCE -> TARGET conversions per run")
	cmd.Flags().IntVar(&maxCatalysts, "max-catalysts", defaults.MaxCatalysts, "largest catalyst size to enumerate")
	cmd.Flags().IntVar(&maxDepth, "max-depth", defaults.MaxDepth, "largest number of recipes in a path")
	cmd.Flags().IntVar(&maxNodes, "max-nodes", defaults.MaxNodes, "largest search frontier, 0 for no cap")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "searches catalyst candidates in parallel")
	cmd.Flags().StringVar(&catalysts, "catalysts", "", "pins the catalyst multiset instead of enumerating")
	cmd.Flags().BoolVarP(&withPlan, "plan", "p", false, "prints the staged execution plan of each path")
	cmd.Flags().StringVarP(&sortBy, "sort", "s", "stages", "orders the output by \"stages\" or \"recipes\"")
	return cmd
}

func newVerifyCommand(opts *appOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verify PATH",
		Short: "Replays PATH and checks that it is legitimate",
		Args:  exactArgs(1, "specify exactly one positional argument: PATH"),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.catalog()
			if err != nil {
				return err
			}
			p, err := path.Parse(args[0], c)
			if err != nil {
				return inputError(err)
			}
			if err := verify.Path(p, c); err != nil {
				return err
			}
			printValid(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

func newPlanCommand(opts *appOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "plan PATH",
		Short: "Schedules PATH into concurrent stages",
		Args:  exactArgs(1, "specify exactly one positional argument: PATH"),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.catalog()
			if err != nil {
				return err
			}
			p, err := path.Parse(args[0], c)
			if err != nil {
				return inputError(err)
			}
			pl, err := plan.Schedule(p, c)
			if err != nil {
				return err
			}
			printPlan(cmd.OutOrStdout(), pl)
			return nil
		},
	}
}

func exactArgs(n int, message string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return inputError(fmt.Errorf("%s", message))
		}
		return nil
	}
}
