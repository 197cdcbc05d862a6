package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/alignkit/numeric"
	"github.com/katalvlaran/alignkit/traceback"
	"github.com/pkg/errors"
)

// WriteResult streams spec.md §6's output grammar: the best score, then
// one blank-line-separated pair of aligned rows per alignment, flushing
// after each chunk pulled from next. It never materializes the full
// alignment set in memory.
func WriteResult[T numeric.Number](w io.Writer, best T, next func() ([]traceback.Alignment, bool)) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, formatScore(best)); err != nil {
		return errors.Wrap(ErrIoFailure, err.Error())
	}

	for {
		chunk, done := next()
		for _, al := range chunk {
			if _, err := fmt.Fprintf(bw, "\n%s\n%s\n", al.A, al.B); err != nil {
				return errors.Wrap(ErrIoFailure, err.Error())
			}
		}
		if err := bw.Flush(); err != nil {
			return errors.Wrap(ErrIoFailure, err.Error())
		}
		if done {
			return nil
		}
	}
}

func formatScore[T numeric.Number](v T) string {
	switch value := any(v).(type) {
	case float32:
		return strconv.FormatFloat(float64(value), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}
