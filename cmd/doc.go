// Package cmd wires alignkit's ioformat and align packages into a Cobra
// CLI: read a request file, run the aligner, stream the result, with
// leveled logging, an optional CPU profile, and a progress bar over the
// alignments streamed so far.
package cmd
