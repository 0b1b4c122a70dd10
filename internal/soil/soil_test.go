package soil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAtterbergLimits(t *testing.T) {
	limits, err := NewAtterbergLimits(37.7, 23.8)
	require.NoError(t, err)
	assert.InDelta(t, 13.9, limits.PlasticityIndex(), 1e-9)

	_, err = NewAtterbergLimits(20, 25)
	assert.ErrorIs(t, err, ErrInvalidLimits)

	_, err = NewAtterbergLimits(-1, 0)
	assert.ErrorIs(t, err, ErrInvalidLimits)
}

func TestALine(t *testing.T) {
	limits, err := NewAtterbergLimits(34.1, 21.1)
	require.NoError(t, err)

	assert.InDelta(t, 10.293, limits.ALine(), 0.001)
	assert.True(t, limits.AboveALine())
	assert.False(t, limits.InHatchedZone())

	hatched, err := NewAtterbergLimits(25, 19)
	require.NoError(t, err)
	assert.True(t, hatched.AboveALine())
	assert.True(t, hatched.InHatchedZone())
}

func TestConsistencyIndices(t *testing.T) {
	limits, err := NewAtterbergLimits(40, 20)
	require.NoError(t, err)

	li, err := limits.LiquidityIndex(25)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, li, 1e-9)

	ci, err := limits.ConsistencyIndex(25)
	require.NoError(t, err)
	assert.InDelta(t, 75.0, ci, 1e-9)

	nonplastic, err := NewAtterbergLimits(30, 30)
	require.NoError(t, err)
	_, err = nonplastic.LiquidityIndex(25)
	assert.ErrorIs(t, err, ErrInvalidLimits)
}

func TestNewPSD(t *testing.T) {
	psd, err := NewPSD(47.44, 49.06, 3.5)
	require.NoError(t, err)
	assert.False(t, psd.GravelDominated())
	assert.False(t, psd.HasSizes())

	_, err = NewPSD(50, 30, 10)
	assert.ErrorIs(t, err, ErrInvalidPSD)

	_, err = NewPSD(-1, 51, 50)
	assert.ErrorIs(t, err, ErrInvalidPSD)
}

func TestGradationCoefficients(t *testing.T) {
	sizes := SizeDistribution{D10: 0.1, D30: 0.5, D60: 2.0}
	assert.InDelta(t, 20.0, sizes.CoeffOfUniformity(), 1e-9)
	assert.InDelta(t, 1.25, sizes.CoeffOfCurvature(), 1e-9)
}

func TestWellGraded(t *testing.T) {
	gravel, err := NewPSD(3, 30, 67)
	require.NoError(t, err)

	_, err = gravel.WellGraded()
	assert.ErrorIs(t, err, ErrInvalidPSD)

	gravel.Sizes = &SizeDistribution{D10: 0.1, D30: 0.5, D60: 2.0}
	well, err := gravel.WellGraded()
	require.NoError(t, err)
	assert.True(t, well)

	sand, err := NewPSD(4, 90, 6)
	require.NoError(t, err)
	sand.Sizes = &SizeDistribution{D10: 0.15, D30: 0.2, D60: 0.3}
	well, err = sand.WellGraded()
	require.NoError(t, err)
	assert.False(t, well) // Cu = 2, below the sand threshold of 6
}
