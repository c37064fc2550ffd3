// Package path models transformation paths: ordered recipe sequences
// turning a source set of arcospheres, plus catalysts, into a target set,
// returning the catalysts at the end.
//
// Paths have a canonical text form, stable across runs:
//
//	EP -> LX x2 + G => GP -> OX | EO -> GL | GP -> OX | EO -> GL
//
// The head names the source and target, an optional repetition factor
// ("x2") and optional catalysts ("+ G"). The steps after "=>" are stages
// separated by "|"; recipes within a stage, separated by "//", run
// concurrently. Solver output uses one stage per recipe; the plan package
// regroups them.
package path
