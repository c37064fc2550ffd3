package solver

import (
	"context"
	"errors"
	"runtime"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/matthieu-m/arcosphere/path"
	"github.com/matthieu-m/arcosphere/recipe"
	"github.com/matthieu-m/arcosphere/sphere"
)

// Options bound and shape a solve. The zero value is not useful; start
// from DefaultOptions.
type Options struct {
	// MaxCatalysts is the largest catalyst size enumerated, inclusive.
	MaxCatalysts int
	// MaxDepth is the largest number of recipes in a path.
	MaxDepth int
	// MaxNodes caps the size of a search frontier. 0 means no cap.
	MaxNodes int
	// Repetitions is the problem multiplier: the solve converts
	// Repetitions copies of source into as many copies of target in one
	// run. At least 1.
	Repetitions int
	// Parallel permits fanning candidate searches out to a worker pool.
	// The output is byte-identical either way.
	Parallel bool
	// Catalysts, when non-nil, pins the catalyst multiset: only this
	// candidate is searched.
	Catalysts *sphere.Set
}

// DefaultOptions returns the options used by New: sufficient for every
// conversion of the default Space Exploration catalog.
func DefaultOptions() Options {
	return Options{
		MaxCatalysts: 8,
		MaxDepth:     10,
		MaxNodes:     1 << 20,
		Repetitions:  1,
	}
}

// Stats counts the work done by the last call to Solve.
type Stats struct {
	// Candidates is the number of catalyst candidates searched.
	Candidates int
	// Expanded is the number of multiset states expanded across all
	// searches.
	Expanded int
	// Truncated is the number of candidate searches that hit a cap.
	Truncated int
	// Paths is the number of paths returned.
	Paths int
}

// A Solver drives the catalyst enumeration and the per-candidate
// searches for a fixed catalog.
type Solver struct {
	// Stats of the last call to Solve.
	Stats Stats

	catalog *recipe.Catalog
	options Options
	logger  zerolog.Logger
}

// New creates a solver for the given catalog, with default options and no
// logging.
func New(catalog *recipe.Catalog) *Solver {
	return &Solver{catalog: catalog, options: DefaultOptions(), logger: zerolog.Nop()}
}

// WithOptions returns the solver with its options replaced.
func (s *Solver) WithOptions(options Options) *Solver {
	s.options = options
	return s
}

// WithLogger returns the solver with its logger replaced.
func (s *Solver) WithLogger(logger zerolog.Logger) *Solver {
	s.logger = logger
	return s
}

// A Solution is the set of minimal paths of a problem: all paths share
// the minimum catalyst size and, within it, the minimum length.
type Solution struct {
	// CatalystSize shared by every path.
	CatalystSize int
	// Length shared by every path.
	Length int
	// Paths, sorted by catalysts in sphere.Set.Compare order, then by
	// canonical text.
	Paths []path.Path
}

// Solve returns the paths converting source into target with the fewest
// catalysts and, among those, the fewest recipes.
//
// It reports ErrNoSolution when the exhaustive enumeration within the
// caps finds nothing, ErrTruncated when a cap cut at least one search
// short and nothing was found, and ErrCancelled on context cancellation.
func (s *Solver) Solve(ctx context.Context, source, target sphere.Set) (*Solution, error) {
	s.Stats = Stats{}

	pb, err := NewProblem(source, target, s.catalog, s.options.Repetitions)
	if err != nil {
		return nil, err
	}
	if err := pb.Feasible(); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Stringer("source", pb.scaledSource).
		Stringer("target", pb.scaledTarget).
		Int("polarity_delta", pb.PolarityDelta()).
		Int("min_inversions", pb.MinInversions()).
		Int("lower_bound", pb.LowerBound()).
		Msg("solving")

	if s.options.Catalysts != nil {
		return s.finish(pb, s.searchBatch(ctx, pb, []sphere.Set{*s.options.Catalysts}))
	}

	enumerator := NewEnumerator(pb, s.options.MaxCatalysts)
	var batch []sphere.Set
	batchSize := 0
	for {
		candidate, ok := enumerator.Next()
		if ok && candidate.Len() == batchSize {
			batch = append(batch, candidate)
			continue
		}

		if len(batch) > 0 {
			s.logger.Debug().Int("size", batchSize).Int("candidates", len(batch)).Msg("searching catalysts")
			results := s.searchBatch(ctx, pb, batch)
			if results.err != nil || len(results.found) > 0 {
				return s.finish(pb, results)
			}
		}
		if !ok {
			break
		}
		batch = append(batch[:0], candidate)
		batchSize = candidate.Len()
	}

	if s.Stats.Truncated > 0 {
		return nil, ErrTruncated
	}
	return nil, ErrNoSolution
}

// A candidateResult pairs a catalyst candidate with its shortest
// sequences, as catalog indices.
type candidateResult struct {
	catalysts sphere.Set
	sequences [][]int
}

type batchResults struct {
	found []candidateResult
	err   error
}

// searchBatch searches every candidate of a batch, sequentially or on a
// worker pool. Results keep the batch order, so the outcome does not
// depend on scheduling.
func (s *Solver) searchBatch(ctx context.Context, pb *Problem, batch []sphere.Set) batchResults {
	searchers := make([]*searcher, len(batch))
	sequences := make([][][]int, len(batch))
	errs := make([]error, len(batch))

	run := func(i int) {
		searchers[i] = &searcher{catalog: pb.Catalog, maxDepth: s.options.MaxDepth, maxNodes: s.options.MaxNodes}
		start, err := pb.start(batch[i])
		if err != nil {
			errs[i] = &InternalError{Cause: err}
			return
		}
		goal, err := pb.goal(batch[i])
		if err != nil {
			errs[i] = &InternalError{Cause: err}
			return
		}
		sequences[i], errs[i] = searchers[i].run(ctx, start, goal)
	}

	if s.options.Parallel {
		group := new(errgroup.Group)
		group.SetLimit(runtime.NumCPU())
		for i := range batch {
			i := i
			group.Go(func() error {
				run(i)
				return nil
			})
		}
		_ = group.Wait()
	} else {
		for i := range batch {
			run(i)
		}
	}

	results := batchResults{}
	for i := range batch {
		s.Stats.Candidates++
		s.Stats.Expanded += searchers[i].expanded
		switch {
		case errs[i] == nil:
			if len(sequences[i]) > 0 {
				results.found = append(results.found, candidateResult{catalysts: batch[i], sequences: sequences[i]})
			}
		case errors.Is(errs[i], ErrTruncated):
			s.Stats.Truncated++
			s.logger.Debug().Stringer("catalysts", batch[i]).Err(errs[i]).Msg("search truncated")
		default:
			// Cancellation or an internal error aborts the whole solve.
			results.err = errs[i]
			return results
		}
	}
	return results
}

// finish turns the kept candidates into a solution: filter to the global
// minimum length, then sort deterministically.
func (s *Solver) finish(pb *Problem, results batchResults) (*Solution, error) {
	if results.err != nil {
		return nil, results.err
	}
	if len(results.found) == 0 {
		if s.Stats.Truncated > 0 {
			return nil, ErrTruncated
		}
		return nil, ErrNoSolution
	}

	shortest := -1
	for _, result := range results.found {
		for _, sequence := range result.sequences {
			if shortest < 0 || len(sequence) < shortest {
				shortest = len(sequence)
			}
		}
	}

	solution := &Solution{CatalystSize: results.found[0].catalysts.Len(), Length: shortest}
	for _, result := range results.found {
		for _, sequence := range result.sequences {
			if len(sequence) != shortest {
				continue
			}
			recipes := make([]recipe.Recipe, len(sequence))
			for i, ri := range sequence {
				recipes[i] = pb.Catalog.Recipe(ri)
			}
			solution.Paths = append(solution.Paths, path.Path{
				Source:    pb.Source,
				Target:    pb.Target,
				Count:     pb.Count,
				Catalysts: result.catalysts,
				Recipes:   recipes,
			})
		}
	}

	sort.Slice(solution.Paths, func(i, j int) bool {
		if c := solution.Paths[i].Catalysts.Compare(solution.Paths[j].Catalysts); c != 0 {
			return c < 0
		}
		return solution.Paths[i].Compare(solution.Paths[j]) < 0
	})

	s.Stats.Paths = len(solution.Paths)
	s.logger.Debug().
		Int("catalysts", solution.CatalystSize).
		Int("length", solution.Length).
		Int("paths", len(solution.Paths)).
		Msg("solved")
	return solution, nil
}
