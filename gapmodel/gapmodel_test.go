package gapmodel_test

import (
	"testing"

	"github.com/katalvlaran/alignkit/gapmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NegativeRejected(t *testing.T) {
	_, err := gapmodel.New(1.0, 1.0, -1.0, 1.0)
	assert.ErrorIs(t, err, gapmodel.ErrInvalidGapPenalty)
}

func TestNew_ZeroAllowed(t *testing.T) {
	m, err := gapmodel.New(0.0, 0.0, 0.0, 0.0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, m.OpenX())
}

func TestAccessors(t *testing.T) {
	m, err := gapmodel.New(2.0, 1.0, 3.0, 1.5)
	require.NoError(t, err)
	assert.Equal(t, 2.0, m.OpenX())
	assert.Equal(t, 1.0, m.ExtendX())
	assert.Equal(t, 3.0, m.OpenY())
	assert.Equal(t, 1.5, m.ExtendY())
}
