package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitWeightsFromSPT(t *testing.T) {
	w, err := UnitWeightsFromSPT(15)
	require.NoError(t, err)
	assert.InDelta(t, 17.5, w.Moist, 1e-9)
	assert.InDelta(t, 19.05, w.Saturated, 1e-9)
	assert.InDelta(t, 8.95, w.Submerged, 1e-9)

	_, err = UnitWeightsFromSPT(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestCompressionIndex(t *testing.T) {
	assert.InDelta(t, 0.21, CompressionIndexSkempton(40), 1e-9)
	assert.InDelta(t, 0.27, CompressionIndexTerzaghi(40), 1e-9)
	assert.InDelta(t, 0.148, CompressionIndexHough(0.78), 1e-9)
}

func TestFrictionAngleWolff(t *testing.T) {
	assert.InDelta(t, 32.884, FrictionAngleWolff(20), 1e-9)
}

func TestFrictionAngleKulhawyMayne(t *testing.T) {
	phi, err := FrictionAngleKulhawyMayne(22.5, 100, 101.325)
	require.NoError(t, err)
	assert.InDelta(t, 41.5, phi, 0.05)

	_, err = FrictionAngleKulhawyMayne(22.5, 100, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = FrictionAngleKulhawyMayne(22.5, -1, 101.325)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestUndrainedStrength(t *testing.T) {
	cu, err := UndrainedStrengthStroud(22.5, 3.5)
	require.NoError(t, err)
	assert.InDelta(t, 78.75, cu, 1e-9)

	_, err = UndrainedStrengthStroud(22.5, 7.0)
	assert.ErrorIs(t, err, ErrOutOfRange)

	assert.InDelta(t, 20.25, UndrainedStrengthSkempton(100, 25), 1e-9)
}

func TestElasticModulusBowles(t *testing.T) {
	assert.InDelta(t, 12000.0, ElasticModulusBowles(22.5), 1e-9)
}

func TestFoundationDepthRankine(t *testing.T) {
	d, err := FoundationDepthRankine(350, 18, 35)
	require.NoError(t, err)
	assert.InDelta(t, 1.4, d, 1e-9)

	_, err = FoundationDepthRankine(350, 0, 35)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
