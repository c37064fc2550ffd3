/*
Package solver finds minimum-catalyst transformation paths between two
sets of arcospheres.

Given a source and a target set, the solver looks for the sequences of
recipes turning source into target. Most conversions are impossible on
their own: extra spheres, the catalysts, must be injected into the start
state and are recovered at the end. The solver minimizes the number of
catalysts first and the number of recipes second, and returns every path
achieving both minima.

Solving a problem

Create a solver from a recipe catalog, then solve:

	s := solver.New(recipe.SpaceExploration())
	solution, err := s.Solve(context.Background(), source, target)

The solution holds every minimal path, deterministically ordered; two
invocations with equal inputs produce byte-identical output, whether or
not the parallel option is set.

Searching

The solver enumerates candidate catalysts in non-decreasing size order
and, for each candidate, runs a breadth-first search over multiset states
recording every shortest recipe sequence from source+catalysts to
target+catalysts. The first candidate size with a non-empty result is the
catalyst floor; the remaining candidates of that size are still searched,
then all paths are filtered to the shortest length.

Termination is controlled by caps rather than wall clock: the catalyst
size cap, the search depth cap and the frontier node cap. When a cap is
exceeded before the search completed, Solve reports ErrTruncated; when
the search completes without finding anything, it reports ErrNoSolution.
Cancellation is cooperative through the context, polled between search
levels.
*/
package solver
