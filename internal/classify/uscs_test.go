package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soilworks/internal/soil"
)

func uscsSample(t *testing.T, ll, pl, fines, sand, gravel float64, organic bool) *USCS {
	t.Helper()
	limits, err := soil.NewAtterbergLimits(ll, pl)
	require.NoError(t, err)
	psd, err := soil.NewPSD(fines, sand, gravel)
	require.NoError(t, err)
	return NewUSCS(limits, psd, organic)
}

func TestUSCSFineGrained(t *testing.T) {
	tests := []struct {
		name    string
		ll, pl  float64
		organic bool
		want    string
	}{
		{"high plasticity clay", 55, 25, false, "CH"},
		{"high plasticity silt", 55, 40, false, "MH"},
		{"high plasticity organic", 55, 40, true, "OH"},
		{"low plasticity clay", 35, 15, false, "CL"},
		{"low plasticity silt", 45, 40, false, "ML"},
		{"low plasticity organic", 45, 40, true, "OL"},
		{"hatched zone", 22, 16, false, "ML-CL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clf := uscsSample(t, tt.ll, tt.pl, 60, 30, 10, tt.organic)
			got, err := clf.Classify()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Symbol)
		})
	}
}

func TestUSCSCoarseWithFines(t *testing.T) {
	tests := []struct {
		name                string
		ll, pl              float64
		fines, sand, gravel float64
		want                string
	}{
		{"clayey sand", 34.1, 21.1, 47.88, 37.84, 14.28, "SC"},
		{"silty sand", 30, 25, 20, 70, 10, "SM"},
		{"dual suffix sand", 25, 19, 20, 70, 10, "SM-SC"},
		{"clayey gravel", 34.1, 21.1, 20, 30, 50, "GC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clf := uscsSample(t, tt.ll, tt.pl, tt.fines, tt.sand, tt.gravel, false)
			got, err := clf.Classify()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Symbol)
		})
	}
}

func TestUSCSCleanCoarse(t *testing.T) {
	// Without gradation diameters both candidates are reported.
	clf := uscsSample(t, 0, 0, 3, 30, 67, false)
	got, err := clf.Classify()
	require.NoError(t, err)
	assert.Equal(t, "GW or GP", got.Symbol)

	// Well graded gravel once diameters are known.
	clf.psd.Sizes = &soil.SizeDistribution{D10: 0.1, D30: 0.5, D60: 2.0}
	got, err = clf.Classify()
	require.NoError(t, err)
	assert.Equal(t, "GW", got.Symbol)

	// Poorly graded sand.
	clf = uscsSample(t, 0, 0, 4, 90, 6, false)
	clf.psd.Sizes = &soil.SizeDistribution{D10: 0.15, D30: 0.2, D60: 0.3}
	got, err = clf.Classify()
	require.NoError(t, err)
	assert.Equal(t, "SP", got.Symbol)
}

func TestUSCSBorderlineFines(t *testing.T) {
	// 5-12% fines without diameters: dual alternatives.
	clf := uscsSample(t, 25, 15, 8, 80, 12, false)
	got, err := clf.Classify()
	require.NoError(t, err)
	assert.Equal(t, "SW-SC or SP-SC", got.Symbol)

	// With diameters the gradation resolves.
	clf.psd.Sizes = &soil.SizeDistribution{D10: 0.15, D30: 0.2, D60: 0.3}
	got, err = clf.Classify()
	require.NoError(t, err)
	assert.Equal(t, "SP-SC", got.Symbol)
}

func TestClassifySample(t *testing.T) {
	limits, err := soil.NewAtterbergLimits(37.7, 23.8)
	require.NoError(t, err)
	psd, err := soil.NewPSD(47.44, 49.06, 3.5)
	require.NoError(t, err)

	got, err := ClassifySample(soil.Sample{Name: "BH-1/2", Limits: limits, PSD: psd})
	require.NoError(t, err)
	assert.Equal(t, "SC", got.Symbol)
}
