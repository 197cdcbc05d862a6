package cmd

import (
	"os"
	"strconv"
	"time"

	"github.com/katalvlaran/alignkit/align"
	"github.com/katalvlaran/alignkit/ioformat"
	"github.com/katalvlaran/alignkit/numeric"
	"github.com/katalvlaran/alignkit/traceback"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/shenwei356/xopen"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// RootCmd is alignkit's Cobra entry point.
var RootCmd = &cobra.Command{
	Use:   "alignkit",
	Short: "Pairwise sequence alignment with affine gap costs",
}

var alignCmd = &cobra.Command{
	Use:   "align <input> <output>",
	Short: "Align two sequences and write every co-optimal alignment",
	Args:  cobra.ExactArgs(2),
	RunE:  runAlign,
}

func init() {
	alignCmd.Flags().BoolP("verbose", "v", false, "print progress to stderr")
	alignCmd.Flags().Bool("cpu-profile", false, "write a CPU profile to the working directory")
	alignCmd.Flags().Bool("verify", false, "independently recompute every streamed alignment's score and warn on mismatch")
	RootCmd.AddCommand(alignCmd)
}

func runAlign(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	cpuProfile, _ := cmd.Flags().GetBool("cpu-profile")
	verify, _ := cmd.Flags().GetBool("verify")

	setupLogging(verbose)
	if cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	inPath, outPath := args[0], args[1]

	reader, err := xopen.Ropen(inPath)
	if err != nil {
		return errors.Wrapf(ioformat.ErrIoFailure, "opening %s: %v", inPath, err)
	}
	defer reader.Close()

	log.Infof("parsing request from %s", inPath)
	_, _, a, b, mode, gaps, table, err := ioformat.ParseRequest[float64](reader)
	if err != nil {
		return err
	}

	timeStart := time.Now()
	run, err := align.Execute(align.Request[float64]{A: a, B: b, Table: table, Gaps: gaps, Mode: mode})
	if err != nil {
		return err
	}
	log.Infof("best score %v computed in %s", run.BestScore(), time.Since(timeStart))

	var out *os.File
	if outPath == "-" {
		out = os.Stdout
	} else {
		out, err = os.Create(outPath)
		if err != nil {
			return errors.Wrapf(ioformat.ErrIoFailure, "creating %s: %v", outPath, err)
		}
		defer out.Close()
	}

	var pbs *mpb.Progress
	var bar *mpb.Bar
	if verbose {
		pbs = mpb.New(mpb.WithWidth(40), mpb.WithOutput(os.Stderr))
		bar = pbs.AddBar(0,
			mpb.PrependDecorators(
				decor.Name("alignments streamed: ", decor.WC{W: len("alignments streamed: "), C: decor.DindentRight}),
			),
			mpb.AppendDecorators(
				decor.Any(func(decor.Statistics) string {
					return strconv.FormatInt(bar.Current(), 10)
				}),
			),
		)
	}

	kernel := numeric.NewDefaultKernel[float64]()
	enumerator := run.Alignments()
	next := func() ([]traceback.Alignment, bool) {
		chunk, done := enumerator.Next()
		if verify {
			for _, al := range chunk {
				if got := recomputeScore(al, table, gaps); !kernel.Equal(got, run.BestScore()) {
					log.Warningf("alignment %q/%q recomputed to %v, want %v", al.A, al.B, got, run.BestScore())
				}
			}
		}
		if bar != nil {
			bar.IncrBy(len(chunk))
		}
		return chunk, done
	}

	if err := ioformat.WriteResult(out, run.BestScore(), next); err != nil {
		return err
	}

	if pbs != nil {
		bar.SetTotal(bar.Current(), true)
		pbs.Wait()
	}
	return nil
}
