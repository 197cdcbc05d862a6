package ioformat

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/alignkit/alphabet"
	"github.com/katalvlaran/alignkit/dpgrid"
	"github.com/katalvlaran/alignkit/gapmodel"
	"github.com/katalvlaran/alignkit/numeric"
	"github.com/katalvlaran/alignkit/seq"
	"github.com/katalvlaran/alignkit/subtable"
	"github.com/pkg/errors"
)

// ParseRequest reads the exact line-oriented grammar of spec.md §6 from r
// and returns every value align.Request[T] needs. Blank lines mid-file are
// rejected; a stream that ends before all required lines are seen reports
// ErrInputMissing.
func ParseRequest[T numeric.Number](r io.Reader) (alphaA, alphaB *alphabet.Alphabet, a, b *seq.Sequence, mode dpgrid.Mode, gaps gapmodel.Model[T], table *subtable.Table[T], err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	next := func(label string) (string, error) {
		if !scanner.Scan() {
			if scanner.Err() != nil {
				return "", errors.Wrapf(ErrIoFailure, "reading %s: %v", label, scanner.Err())
			}
			return "", errors.Wrapf(ErrInputMissing, "%s", label)
		}
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" {
			return "", errors.Wrapf(ErrInputMalformed, "%s: blank line", label)
		}
		return line, nil
	}

	rawA, e := next("sequence A")
	if e != nil {
		return nil, nil, nil, nil, mode, gaps, nil, e
	}
	rawB, e := next("sequence B")
	if e != nil {
		return nil, nil, nil, nil, mode, gaps, nil, e
	}

	modeLine, e := next("mode")
	if e != nil {
		return nil, nil, nil, nil, mode, gaps, nil, e
	}
	modeVal, convErr := strconv.Atoi(modeLine)
	if convErr != nil {
		return nil, nil, nil, nil, mode, gaps, nil, errors.Wrapf(ErrInputMalformed, "mode: %v", convErr)
	}
	switch modeVal {
	case 0:
		mode = dpgrid.Global
	case 1:
		mode = dpgrid.Local
	default:
		return nil, nil, nil, nil, mode, gaps, nil, errors.Wrapf(ErrUnknownMode, "%d", modeVal)
	}

	gapLine, e := next("gap penalties")
	if e != nil {
		return nil, nil, nil, nil, mode, gaps, nil, e
	}
	gapFields := strings.Fields(gapLine)
	if len(gapFields) != 4 {
		return nil, nil, nil, nil, mode, gaps, nil, errors.Wrapf(ErrInputMalformed, "gap penalties: want 4 fields, got %d", len(gapFields))
	}
	gapValues := make([]T, 4)
	for i, field := range gapFields {
		v, convErr := parseNumber[T](field)
		if convErr != nil {
			return nil, nil, nil, nil, mode, gaps, nil, errors.Wrapf(ErrInputMalformed, "gap penalties: %v", convErr)
		}
		gapValues[i] = v
	}
	gaps, gapErr := gapmodel.New(gapValues[0], gapValues[1], gapValues[2], gapValues[3])
	if gapErr != nil {
		return nil, nil, nil, nil, mode, gaps, nil, gapErr
	}

	alphaA, e = parseAlphabet(next, "alphabet A")
	if e != nil {
		return nil, nil, nil, nil, mode, gaps, nil, e
	}
	alphaB, e = parseAlphabet(next, "alphabet B")
	if e != nil {
		return nil, nil, nil, nil, mode, gaps, nil, e
	}

	a, seqErr := seq.New(rawA, alphaA)
	if seqErr != nil {
		return nil, nil, nil, nil, mode, gaps, nil, seqErr
	}
	b, seqErr = seq.New(rawB, alphaB)
	if seqErr != nil {
		return nil, nil, nil, nil, mode, gaps, nil, seqErr
	}

	var entries []subtable.Entry[T]
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" {
			return nil, nil, nil, nil, mode, gaps, nil, errors.Wrap(ErrInputMalformed, "substitution entry: blank line")
		}
		fields := strings.Fields(line)
		if len(fields) != 5 {
			return nil, nil, nil, nil, mode, gaps, nil, errors.Wrapf(ErrInputMalformed, "substitution entry: want 5 fields, got %d", len(fields))
		}
		ia, err1 := strconv.Atoi(fields[0])
		ib, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			return nil, nil, nil, nil, mode, gaps, nil, errors.Wrap(ErrInputMalformed, "substitution entry: index not an integer")
		}
		ca := []rune(fields[2])
		cb := []rune(fields[3])
		if len(ca) != 1 || len(cb) != 1 {
			return nil, nil, nil, nil, mode, gaps, nil, errors.Wrap(ErrInputMalformed, "substitution entry: character field must be one rune")
		}
		score, convErr := parseNumber[T](fields[4])
		if convErr != nil {
			return nil, nil, nil, nil, mode, gaps, nil, errors.Wrapf(ErrInputMalformed, "substitution entry: %v", convErr)
		}
		entries = append(entries, subtable.Entry[T]{IA: ia - 1, IB: ib - 1, CA: ca[0], CB: cb[0], Score: score})
	}
	if scanner.Err() != nil {
		return nil, nil, nil, nil, mode, gaps, nil, errors.Wrap(ErrIoFailure, scanner.Err().Error())
	}

	table, tblErr := subtable.NewTable(alphaA, alphaB, entries)
	if tblErr != nil {
		return nil, nil, nil, nil, mode, gaps, nil, tblErr
	}

	return alphaA, alphaB, a, b, mode, gaps, table, nil
}

func parseAlphabet(next func(string) (string, error), label string) (*alphabet.Alphabet, error) {
	countLine, err := next(label + " count")
	if err != nil {
		return nil, err
	}
	count, convErr := strconv.Atoi(countLine)
	if convErr != nil {
		return nil, errors.Wrapf(ErrInputMalformed, "%s count: %v", label, convErr)
	}

	symbolsLine, err := next(label)
	if err != nil {
		return nil, err
	}
	if len([]rune(symbolsLine)) != count {
		return nil, errors.Wrapf(ErrInputMalformed, "%s: declared %d symbols, got %d", label, count, len([]rune(symbolsLine)))
	}

	return alphabet.NewFromString(symbolsLine)
}

func parseNumber[T numeric.Number](field string) (T, error) {
	var zero T
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return zero, err
	}
	return T(v), nil
}
