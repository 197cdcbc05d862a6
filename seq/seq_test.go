package seq_test

import (
	"testing"

	"github.com/katalvlaran/alignkit/alphabet"
	"github.com/katalvlaran/alignkit/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_UnknownSymbol(t *testing.T) {
	a, err := alphabet.NewFromString("ACGT")
	require.NoError(t, err)

	_, err = seq.New("ACGX", a)
	assert.ErrorIs(t, err, seq.ErrUnknownSymbol)
}

func TestNew_EmptyIsValid(t *testing.T) {
	a, err := alphabet.NewFromString("ACGT")
	require.NoError(t, err)

	s, err := seq.New("", a)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestSequence_AtAndIndexAtAreOneBased(t *testing.T) {
	a, err := alphabet.NewFromString("ACGT")
	require.NoError(t, err)

	s, err := seq.New("ACGT", a)
	require.NoError(t, err)

	assert.Equal(t, 'A', s.At(1))
	assert.Equal(t, 'T', s.At(4))
	assert.Equal(t, 0, s.IndexAt(1))
	assert.Equal(t, 3, s.IndexAt(4))
}

func TestSequence_String(t *testing.T) {
	a, err := alphabet.NewFromString("ACGT")
	require.NoError(t, err)

	s, err := seq.New("ACGT", a)
	require.NoError(t, err)
	assert.Equal(t, "ACGT", s.String())
}
