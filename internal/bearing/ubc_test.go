package bearing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soilworks/internal/foundation"
)

func squareFooting(t *testing.T, depth, width float64) foundation.Size {
	t.Helper()
	size, err := foundation.NewSize(foundation.Square, depth, width, 0)
	require.NoError(t, err)
	return size
}

func TestTerzaghiFactors(t *testing.T) {
	assert.InDelta(t, 5.7, TerzaghiNc(0), 1e-9)
	assert.InDelta(t, 1.0, TerzaghiNq(0), 0.01)
	assert.InDelta(t, 0.0, TerzaghiNgamma(0), 0.01)

	assert.InDelta(t, 9.61, TerzaghiNc(10), 0.02)
	assert.InDelta(t, 2.69, TerzaghiNq(10), 0.02)
	assert.InDelta(t, 0.42, TerzaghiNgamma(10), 0.02)

	assert.InDelta(t, 25.13, TerzaghiNc(25), 0.02)
	assert.InDelta(t, 12.72, TerzaghiNq(25), 0.02)
	assert.InDelta(t, 8.21, TerzaghiNgamma(25), 0.02)
}

func TestHansenFactors(t *testing.T) {
	assert.InDelta(t, 5.14, HansenNc(0), 1e-9)
	assert.InDelta(t, 1.0, HansenNq(0), 0.01)
	assert.InDelta(t, 0.0, HansenNgamma(0), 0.01)

	assert.InDelta(t, 8.35, HansenNc(10), 0.02)
	assert.InDelta(t, 2.47, HansenNq(10), 0.02)
	assert.InDelta(t, 0.47, HansenNgamma(10), 0.02)
}

func TestVesicFactors(t *testing.T) {
	assert.InDelta(t, 5.14, VesicNc(0), 1e-9)
	assert.InDelta(t, 8.35, VesicNc(10), 0.02)
	assert.InDelta(t, 2.47, VesicNq(10), 0.02)
	assert.InDelta(t, 1.22, VesicNgamma(10), 0.02)
}

func TestTerzaghiBearingCapacity(t *testing.T) {
	props := SoilProperties{FrictionAngle: 25, Cohesion: 15, MoistUnitWeight: 18}
	size := squareFooting(t, 1.0, 1.5)

	calc, err := NewTerzaghiUBC(props, size, false)
	require.NoError(t, err)
	assert.InDelta(t, 807.66, calc.BearingCapacity(), 1.0)
}

func TestTerzaghiLocalShear(t *testing.T) {
	props := SoilProperties{FrictionAngle: 25, Cohesion: 15, MoistUnitWeight: 18}
	size := squareFooting(t, 1.0, 1.5)

	general, err := NewTerzaghiUBC(props, size, false)
	require.NoError(t, err)
	local, err := NewTerzaghiUBC(props, size, true)
	require.NoError(t, err)

	assert.Less(t, local.BearingCapacity(), general.BearingCapacity())
}

func TestHansenBearingCapacity(t *testing.T) {
	props := SoilProperties{FrictionAngle: 25, Cohesion: 15, MoistUnitWeight: 18}
	size := squareFooting(t, 1.0, 1.5)

	calc, err := NewHansenUBC(props, size, 0, false)
	require.NoError(t, err)
	assert.InDelta(t, 869.89, calc.BearingCapacity(), 1.0)

	sc, sq, sgamma := calc.ShapeFactors()
	assert.InDelta(t, 1.3, sc, 1e-9)
	assert.InDelta(t, 1.2, sq, 1e-9)
	assert.InDelta(t, 0.8, sgamma, 1e-9)

	dc, dq, dgamma := calc.DepthFactors()
	assert.InDelta(t, 1.2333, dc, 0.001)
	assert.InDelta(t, 1.2333, dq, 0.001)
	assert.InDelta(t, 1.0, dgamma, 1e-9)

	ic, iq, igamma := calc.InclinationFactors()
	assert.InDelta(t, 1.0, ic, 1e-9)
	assert.InDelta(t, 1.0, iq, 1e-9)
	assert.InDelta(t, 1.0, igamma, 1e-9)
}

func TestVesicBearingCapacity(t *testing.T) {
	props := SoilProperties{FrictionAngle: 25, Cohesion: 15, MoistUnitWeight: 18}
	size := squareFooting(t, 1.0, 1.5)

	calc, err := NewVesicUBC(props, size, 0, false)
	require.NoError(t, err)
	assert.InDelta(t, 1024.0, calc.BearingCapacity(), 1.5)

	sc, sq, sgamma := calc.ShapeFactors()
	assert.InDelta(t, 1.514, sc, 0.01)
	assert.InDelta(t, 1.466, sq, 0.01)
	assert.InDelta(t, 0.6, sgamma, 1e-9)
}

func TestVesicInclination(t *testing.T) {
	props := SoilProperties{FrictionAngle: 25, Cohesion: 15, MoistUnitWeight: 18}
	size := squareFooting(t, 1.0, 1.5)

	calc, err := NewVesicUBC(props, size, 18, false)
	require.NoError(t, err)

	ic, iq, igamma := calc.InclinationFactors()
	assert.InDelta(t, 0.64, ic, 1e-9)
	assert.InDelta(t, 0.64, iq, 1e-9)
	assert.InDelta(t, 0.0784, igamma, 1e-6)
}

func TestWaterTableReducesCapacity(t *testing.T) {
	props := SoilProperties{FrictionAngle: 25, Cohesion: 15, MoistUnitWeight: 18}
	dry := squareFooting(t, 1.0, 1.5)
	wet, err := dry.WithGroundWaterLevel(0.3)
	require.NoError(t, err)

	dryCalc, err := NewTerzaghiUBC(props, dry, false)
	require.NoError(t, err)
	wetCalc, err := NewTerzaghiUBC(props, wet, false)
	require.NoError(t, err)

	assert.Less(t, wetCalc.BearingCapacity(), dryCalc.BearingCapacity())
}

func TestSoilValidation(t *testing.T) {
	size := squareFooting(t, 1.0, 1.5)

	_, err := NewTerzaghiUBC(SoilProperties{FrictionAngle: -1, MoistUnitWeight: 18}, size, false)
	assert.ErrorIs(t, err, ErrInvalidSoil)

	_, err = NewTerzaghiUBC(SoilProperties{FrictionAngle: 25, Cohesion: -1, MoistUnitWeight: 18}, size, false)
	assert.ErrorIs(t, err, ErrInvalidSoil)

	_, err = NewHansenUBC(SoilProperties{FrictionAngle: 25, MoistUnitWeight: 18}, size, 95, false)
	assert.ErrorIs(t, err, ErrInvalidSoil)

	_, err = NewVesicUBC(SoilProperties{FrictionAngle: 25, MoistUnitWeight: 0}, size, 0, false)
	assert.ErrorIs(t, err, ErrInvalidSoil)
}
