package spt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesignN(t *testing.T) {
	readings := []float64{7.0, 15.0, 18.0}

	weighted, err := WeightedDesignN(readings)
	require.NoError(t, err)
	assert.InDelta(t, 9.4, weighted, 1e-9)

	average, err := AverageDesignN(readings)
	require.NoError(t, err)
	assert.InDelta(t, 13.3, average, 1e-9)

	minimum, err := MinimumDesignN(readings)
	require.NoError(t, err)
	assert.InDelta(t, 7.0, minimum, 1e-9)
}

func TestDesignNEmpty(t *testing.T) {
	_, err := WeightedDesignN(nil)
	assert.ErrorIs(t, err, ErrNoReadings)

	_, err = AverageDesignN(nil)
	assert.ErrorIs(t, err, ErrNoReadings)

	_, err = MinimumDesignN(nil)
	assert.ErrorIs(t, err, ErrNoReadings)
}

func TestEnergyCorrection(t *testing.T) {
	ec := NewEnergyCorrection(30)
	corrected, err := ec.CorrectedN()
	require.NoError(t, err)
	assert.InDelta(t, 22.5, corrected, 1e-9)
}

func TestEnergyCorrectionComponents(t *testing.T) {
	ec := NewEnergyCorrection(30)
	ec.Hammer = HammerAutomatic
	ec.BoreholeDiameter = 120
	ec.RodLength = 8

	eh, err := ec.HammerEfficiency()
	require.NoError(t, err)
	assert.InDelta(t, 0.70, eh, 1e-9)
	assert.InDelta(t, 1.05, ec.BoreholeCorrection(), 1e-9)
	assert.InDelta(t, 0.95, ec.RodLengthCorrection(), 1e-9)

	ec.Sampler = SamplerNonStandard
	cs, err := ec.SamplerCorrection()
	require.NoError(t, err)
	assert.InDelta(t, 1.20, cs, 1e-9)
}

func TestEnergyCorrectionValidation(t *testing.T) {
	ec := NewEnergyCorrection(0)
	_, err := ec.CorrectedN()
	assert.Error(t, err)

	ec = NewEnergyCorrection(30)
	ec.Hammer = HammerType("trip")
	_, err = ec.CorrectedN()
	assert.Error(t, err)
}

func TestOverburdenCorrections(t *testing.T) {
	tests := []struct {
		method string
		stdN   float64
		eop    float64
		want   float64
	}{
		{"gibbs_holtz", 22.5, 100, 23.2},
		{"bazaraa_peck", 22.5, 100, 21.0},
		{"peck", 23, 100, 23.0},
		{"liao_whitman", 23, 100, 23.0},
		{"skempton", 22.5, 100, 22.0},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			corr, err := NewOverburdenCorrection(tt.method, tt.stdN, tt.eop)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, corr.CorrectedN(), 1e-9)
		})
	}
}

func TestBazaraaPeckStandardPressure(t *testing.T) {
	corr, err := NewBazaraaPeck(20, 71.8)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, corr.CorrectionFactor(), 1e-9)
	assert.InDelta(t, 20.0, corr.CorrectedN(), 1e-9)
}

func TestOverburdenCorrectionCap(t *testing.T) {
	// Very shallow test depth drives the factor above 2; the corrected
	// value may not exceed twice the input.
	corr, err := NewLiaoWhitman(10, 10)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, corr.CorrectedN(), 1e-9)
}

func TestOverburdenCorrectionValidation(t *testing.T) {
	_, err := NewGibbsHoltz(0, 100)
	assert.Error(t, err)

	_, err = NewPeck(20, 0)
	assert.Error(t, err)

	_, err = NewOverburdenCorrection("meyerhof", 20, 100)
	assert.Error(t, err)
}

func TestDilatancyCorrection(t *testing.T) {
	assert.InDelta(t, 10.0, DilatancyCorrection(10), 1e-9)
	assert.InDelta(t, 15.0, DilatancyCorrection(15), 1e-9)
	assert.InDelta(t, 22.5, DilatancyCorrection(30), 1e-9)
}
