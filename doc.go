// Package alignkit is a pairwise sequence aligner: global (Needleman-Wunsch
// style) and local (Smith-Waterman style) alignment under an affine gap
// cost model, with exhaustive enumeration of every co-optimal alignment.
//
// The core is organized as a small pipeline of packages, each owning one
// concern:
//
//	numeric/   — generic Number constraint and the tolerance-aware Kernel
//	alphabet/  — ordered, deduplicated symbol sets
//	seq/       — validated sequences over an alphabet
//	subtable/  — substitution score tables
//	gapmodel/  — affine gap cost parameters
//	dpgrid/    — the Gotoh three-matrix dynamic program
//	traceback/ — chunked, exhaustive co-optimal alignment enumeration
//	align/     — the driver composing the above into one run
//	ioformat/  — the line-oriented input grammar and streaming output writer
//	cmd/       — the alignkit CLI
//
// Library callers use align.Execute directly; cmd/alignkit is the
// command-line entry point over ioformat's wire format.
package alignkit
