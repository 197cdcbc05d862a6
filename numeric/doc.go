// Package numeric supplies the tolerance-aware score comparator shared by
// the generic components of alignkit: the DP filler's tie collection and
// local-mode clamp, and the start-cell selection the traceback engine
// begins from, all route through the same Kernel so that "is this a tie?"
// answers the same question everywhere. The best score itself is the plain
// maximum of the candidate cells.
package numeric
