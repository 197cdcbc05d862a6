// Package dpgrid implements the Gotoh three-matrix affine-gap dynamic
// program: M (ending in a substitution), Ix (ending in a gap in A), and Iy
// (ending in a gap in B). Each cell carries a score and the full set of
// back-pointers that reproduce it, so the traceback engine can enumerate
// every co-optimal alignment rather than just one.
package dpgrid
