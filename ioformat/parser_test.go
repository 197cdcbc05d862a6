package ioformat_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/alignkit/dpgrid"
	"github.com/katalvlaran/alignkit/ioformat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validInput = `ACGT
ACGT
0
1.0 1.0 1.0 1.0
4
ACGT
4
ACGT
1 1 A A 1
1 2 A C -1
1 3 A G -1
1 4 A T -1
2 1 C A -1
2 2 C C 1
2 3 C G -1
2 4 C T -1
3 1 G A -1
3 2 G C -1
3 3 G G 1
3 4 G T -1
4 1 T A -1
4 2 T C -1
4 3 T G -1
4 4 T T 1
`

func TestParseRequest_ValidInput(t *testing.T) {
	alphaA, alphaB, a, b, mode, gaps, table, err := ioformat.ParseRequest[float64](strings.NewReader(validInput))
	require.NoError(t, err)
	assert.Equal(t, 4, alphaA.Len())
	assert.Equal(t, 4, alphaB.Len())
	assert.Equal(t, 4, a.Len())
	assert.Equal(t, 4, b.Len())
	assert.Equal(t, dpgrid.Global, mode)
	assert.Equal(t, 1.0, gaps.OpenX())
	assert.Equal(t, 1.0, table.ScoreAt(0, 0))
}

func TestParseRequest_MissingLine(t *testing.T) {
	_, _, _, _, _, _, _, err := ioformat.ParseRequest[float64](strings.NewReader("ACGT\n"))
	assert.ErrorIs(t, err, ioformat.ErrInputMissing)
}

func TestParseRequest_BlankLineRejected(t *testing.T) {
	bad := "ACGT\n\n0\n1 1 1 1\n"
	_, _, _, _, _, _, _, err := ioformat.ParseRequest[float64](strings.NewReader(bad))
	assert.ErrorIs(t, err, ioformat.ErrInputMalformed)
}

func TestParseRequest_UnknownMode(t *testing.T) {
	bad := "AC\nAC\n7\n1 1 1 1\n2\nAC\n2\nAC\n1 1 A A 1\n1 2 A C -1\n2 1 C A -1\n2 2 C C 1\n"
	_, _, _, _, _, _, _, err := ioformat.ParseRequest[float64](strings.NewReader(bad))
	assert.ErrorIs(t, err, ioformat.ErrUnknownMode)
}

func TestParseRequest_AlphabetCountMismatch(t *testing.T) {
	bad := "AC\nAC\n0\n1 1 1 1\n3\nAC\n2\nAC\n"
	_, _, _, _, _, _, _, err := ioformat.ParseRequest[float64](strings.NewReader(bad))
	assert.ErrorIs(t, err, ioformat.ErrInputMalformed)
}
