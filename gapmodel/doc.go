// Package gapmodel holds the four affine gap-penalty parameters — open and
// extend cost for a gap in each sequence direction — and validates them at
// construction so the DP filler never has to check sign again.
package gapmodel
