// Package sphere defines the arcosphere alphabet and the multiset of
// arcospheres every other package works with.
//
// There are eight arcospheres, split into two polarity classes: the
// negative spheres Epsilon, Lambda, Phi and Xi, and the positive spheres
// Gamma, Omega, Theta and Zeta. A Set counts how many of each sphere it
// holds; it is a fixed-width array of counts, so adding, subtracting and
// containment checks are a handful of byte operations and the array itself
// is the canonical encoding used as a map key.
//
// Sets have a text form: the concatenation of the sphere abbreviations in
// the fixed order E, G, L, O, P, T, X, Z. "EEG" is two Epsilon and one
// Gamma, and "" is the empty set.
//
//	set, err := sphere.Parse("ELPX")
package sphere
