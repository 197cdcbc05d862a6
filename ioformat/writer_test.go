package ioformat_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/alignkit/ioformat"
	"github.com/katalvlaran/alignkit/traceback"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteResult_SingleChunk(t *testing.T) {
	var buf bytes.Buffer
	alignments := []traceback.Alignment{{A: "ACGT", B: "ACGT"}}
	served := false
	next := func() ([]traceback.Alignment, bool) {
		if served {
			return nil, true
		}
		served = true
		return alignments, true
	}

	err := ioformat.WriteResult(&buf, 4.0, next)
	require.NoError(t, err)
	assert.Equal(t, "4\n\nACGT\nACGT\n", buf.String())
}

func TestWriteResult_MultipleChunks(t *testing.T) {
	var buf bytes.Buffer
	chunks := [][]traceback.Alignment{
		{{A: "AC", B: "AC"}},
		{{A: "A_", B: "AC"}},
	}
	i := 0
	next := func() ([]traceback.Alignment, bool) {
		chunk := chunks[i]
		i++
		return chunk, i >= len(chunks)
	}

	err := ioformat.WriteResult(&buf, 2.0, next)
	require.NoError(t, err)
	assert.Equal(t, "2\n\nAC\nAC\n\nA_\nAC\n", buf.String())
}
