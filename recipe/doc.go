// Package recipe models the rewrite rules transforming sets of arcospheres,
// and the immutable catalogs grouping them.
//
// A recipe consumes one set of spheres and produces another of the same
// size. Two shapes exist:
//
//   - a folding consumes one negative and one positive sphere and produces
//     one negative and one positive sphere, preserving polarity counts;
//   - an inversion consumes the complete negative set ELPX and produces the
//     complete positive set GOTZ, or the other way around, flipping the
//     polarity of four spheres at once.
//
// The default catalog, SpaceExploration, holds the ten recipes of the
// Space Exploration mod: eight foldings and the two inversions. Restricted
// catalogs are plain values derived with Without or WithoutInversions; the
// solver is indifferent to which catalog it is handed.
//
// Catalogs can also be loaded from a TOML file, see Load.
package recipe
