// Package plan groups the steps of a valid path into the fewest stages
// honouring the data dependencies on the running multiset, so that the
// recipes of a stage can fire concurrently.
//
// Each stage carries three multisets describing the sphere flow:
//
//   - reserved: spheres preserved for later stages;
//   - working: spheres consumed by the stage's recipes;
//   - released: spheres no longer needed by any later stage, which can be
//     handed back to the caller.
//
// A plan prints one line per stage:
//
//	1. [P] + [EO] + [L] | EO -> GL
//	2. [L] + [GP] + [LOX] | GP -> OX
package plan
