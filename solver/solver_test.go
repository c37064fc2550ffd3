package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthieu-m/arcosphere/recipe"
	"github.com/matthieu-m/arcosphere/sphere"
	"github.com/matthieu-m/arcosphere/verify"
)

func TestSolveIdentity(t *testing.T) {
	s := New(recipe.SpaceExploration())
	set := mustParse(t, "EL")

	solution, err := s.Solve(context.Background(), set, set)
	require.NoError(t, err)
	require.Len(t, solution.Paths, 1)
	assert.Equal(t, 0, solution.CatalystSize)
	assert.Equal(t, 0, solution.Length)
	assert.Empty(t, solution.Paths[0].Recipes)
	assert.True(t, solution.Paths[0].Catalysts.IsEmpty())
}

func TestSolveEmpty(t *testing.T) {
	s := New(recipe.SpaceExploration())

	solution, err := s.Solve(context.Background(), sphere.Set{}, sphere.Set{})
	require.NoError(t, err)
	require.Len(t, solution.Paths, 1)
	assert.Equal(t, 0, solution.Length)
}

func TestSolveSingleFolding(t *testing.T) {
	s := New(recipe.SpaceExploration())

	solution, err := s.Solve(context.Background(), mustParse(t, "EO"), mustParse(t, "LG"))
	require.NoError(t, err)
	require.Len(t, solution.Paths, 1)
	assert.Equal(t, 0, solution.CatalystSize)
	assert.Equal(t, 1, solution.Length)
	assert.Equal(t, "EO", solution.Paths[0].Recipes[0].Name)
}

func TestSolveSingleInversion(t *testing.T) {
	s := New(recipe.SpaceExploration())

	solution, err := s.Solve(context.Background(), mustParse(t, "ELPX"), mustParse(t, "GOTZ"))
	require.NoError(t, err)
	require.Len(t, solution.Paths, 1)
	assert.Equal(t, 0, solution.CatalystSize)
	assert.Equal(t, 1, solution.Length)
	assert.Equal(t, "ELPX", solution.Paths[0].Recipes[0].Name)
}

// Spec data: EP -> LX needs one positive catalyst, either G or O.
func TestSolveSpaceFolding(t *testing.T) {
	s := New(recipe.SpaceExploration())

	solution, err := s.Solve(context.Background(), mustParse(t, "EP"), mustParse(t, "LX"))
	require.NoError(t, err)
	assert.Equal(t, 1, solution.CatalystSize)
	assert.Equal(t, 2, solution.Length)
	require.Len(t, solution.Paths, 2)

	// Deterministic order: catalyst G sorts before catalyst O.
	first, second := solution.Paths[0], solution.Paths[1]
	assert.Equal(t, "G", first.Catalysts.String())
	assert.Equal(t, "PG", first.Recipes[0].Name)
	assert.Equal(t, "EO", first.Recipes[1].Name)
	assert.Equal(t, "O", second.Catalysts.String())
	assert.Equal(t, "EO", second.Recipes[0].Name)
	assert.Equal(t, "PG", second.Recipes[1].Name)
}

func TestSolvePinnedCatalyst(t *testing.T) {
	catalysts := mustParse(t, "O")
	s := New(recipe.SpaceExploration())
	options := DefaultOptions()
	options.Catalysts = &catalysts
	s.WithOptions(options)

	solution, err := s.Solve(context.Background(), mustParse(t, "EP"), mustParse(t, "LX"))
	require.NoError(t, err)
	require.Len(t, solution.Paths, 1)
	assert.Equal(t, "O", solution.Paths[0].Catalysts.String())
	assert.Equal(t, 2, solution.Length)
}

// Spec data: LGZ -> LOT admits exactly two paths, with catalyst P or X.
func TestSolveTwoCatalysts(t *testing.T) {
	s := New(recipe.SpaceExploration())

	solution, err := s.Solve(context.Background(), mustParse(t, "LGZ"), mustParse(t, "LOT"))
	require.NoError(t, err)
	assert.Equal(t, 1, solution.CatalystSize)
	assert.Equal(t, 2, solution.Length)
	require.Len(t, solution.Paths, 2)
	assert.Equal(t, "P", solution.Paths[0].Catalysts.String())
	assert.Equal(t, "X", solution.Paths[1].Catalysts.String())
}

// PXOT -> ELGZ admits singleton-catalyst paths with catalyst E, G, L or
// Z. Larger catalysts could allow shorter paths, but the catalyst size is
// the primary minimization key: the singletons win.
func TestSolveCatalystSizeIsPrimary(t *testing.T) {
	s := New(recipe.SpaceExploration())

	solution, err := s.Solve(context.Background(), mustParse(t, "OPTX"), mustParse(t, "EGLZ"))
	require.NoError(t, err)
	assert.Equal(t, 1, solution.CatalystSize)
	assert.Equal(t, 4, solution.Length)

	catalysts := make(map[string]bool)
	for _, p := range solution.Paths {
		catalysts[p.Catalysts.String()] = true
		assert.Len(t, p.Recipes, 4)
	}
	assert.Equal(t, map[string]bool{"E": true, "G": true, "L": true, "Z": true}, catalysts)
}

func TestSolveRepetitions(t *testing.T) {
	s := New(recipe.SpaceExploration())
	options := DefaultOptions()
	options.Repetitions = 2
	s.WithOptions(options)

	solution, err := s.Solve(context.Background(), mustParse(t, "EP"), mustParse(t, "LX"))
	require.NoError(t, err)
	assert.Equal(t, 1, solution.CatalystSize)
	assert.Equal(t, 4, solution.Length)
	for _, p := range solution.Paths {
		assert.Equal(t, 2, p.Count)
		assert.Contains(t, []string{"G", "O"}, p.Catalysts.String())
	}
}

func TestSolveRestrictedCatalog(t *testing.T) {
	// Restricted catalogs are plain values; the solver only ever uses the
	// recipes it is handed.
	c := recipe.SpaceExploration().Without("EO")
	s := New(c)

	solution, err := s.Solve(context.Background(), mustParse(t, "LGZ"), mustParse(t, "LOT"))
	require.NoError(t, err)
	assert.Equal(t, 1, solution.CatalystSize)
	assert.Equal(t, 2, solution.Length)
	for _, p := range solution.Paths {
		for _, r := range p.Recipes {
			assert.NotEqual(t, "EO", r.Name)
		}
	}
}

func TestSolveNoSolutionOnPolarityMismatch(t *testing.T) {
	s := New(recipe.SpaceExploration())

	_, err := s.Solve(context.Background(), mustParse(t, "EP"), mustParse(t, "EG"))
	assert.ErrorIs(t, err, ErrNoSolution)

	_, err = s.Solve(context.Background(), mustParse(t, "EP"), mustParse(t, "L"))
	assert.ErrorIs(t, err, ErrNoSolution)
}

func TestSolveCatalystCapBelowMinimum(t *testing.T) {
	s := New(recipe.SpaceExploration())
	options := DefaultOptions()
	options.MaxCatalysts = 0
	s.WithOptions(options)

	// EP -> LX needs one catalyst: with the cap at zero the search is
	// exhaustive and comes back empty, without tripping any cap.
	_, err := s.Solve(context.Background(), mustParse(t, "EP"), mustParse(t, "LX"))
	assert.ErrorIs(t, err, ErrNoSolution)
	assert.NotErrorIs(t, err, ErrTruncated)
	assert.Zero(t, s.Stats.Truncated)
}

func TestSolveDepthCapTruncates(t *testing.T) {
	s := New(recipe.SpaceExploration())
	options := DefaultOptions()
	options.MaxDepth = 1
	options.MaxCatalysts = 1
	s.WithOptions(options)

	_, err := s.Solve(context.Background(), mustParse(t, "EP"), mustParse(t, "LX"))
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestSolveCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(recipe.SpaceExploration())
	_, err := s.Solve(ctx, mustParse(t, "EP"), mustParse(t, "LX"))
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestSolveParallelIsDeterministic(t *testing.T) {
	sequential := New(recipe.SpaceExploration())
	seqSolution, err := sequential.Solve(context.Background(), mustParse(t, "OPTX"), mustParse(t, "EGLZ"))
	require.NoError(t, err)

	options := DefaultOptions()
	options.Parallel = true
	parallel := New(recipe.SpaceExploration()).WithOptions(options)
	parSolution, err := parallel.Solve(context.Background(), mustParse(t, "OPTX"), mustParse(t, "EGLZ"))
	require.NoError(t, err)

	require.Len(t, parSolution.Paths, len(seqSolution.Paths))
	for i := range seqSolution.Paths {
		assert.Equal(t, seqSolution.Paths[i].String(), parSolution.Paths[i].String())
	}
}

func TestSolvedPathsVerify(t *testing.T) {
	c := recipe.SpaceExploration()
	s := New(c)
	pairs := [][2]string{
		{"EP", "LX"},
		{"LGZ", "LOT"},
		{"OPTX", "EGLZ"},
		{"EO", "LG"},
	}
	for _, pair := range pairs {
		solution, err := s.Solve(context.Background(), mustParse(t, pair[0]), mustParse(t, pair[1]))
		require.NoError(t, err, "%s -> %s", pair[0], pair[1])
		for _, p := range solution.Paths {
			assert.NoError(t, verify.Path(p, c), "path %s", p)
		}
	}
}

func TestSolveStats(t *testing.T) {
	s := New(recipe.SpaceExploration())
	solution, err := s.Solve(context.Background(), mustParse(t, "EP"), mustParse(t, "LX"))
	require.NoError(t, err)
	assert.Equal(t, len(solution.Paths), s.Stats.Paths)
	assert.Greater(t, s.Stats.Candidates, 0)
	assert.Greater(t, s.Stats.Expanded, 0)
}
