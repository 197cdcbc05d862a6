// Package align is the driver that composes numeric, subtable, gapmodel,
// dpgrid, and traceback into one pairwise-alignment run: validate a
// Request, fill the grid, and hand back a Run exposing the best score and
// an alignment enumerator.
package align
