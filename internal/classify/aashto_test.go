package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAASHTOClassify(t *testing.T) {
	tests := []struct {
		name            string
		liquidLimit     float64
		plasticityIndex float64
		fines           float64
		want            string
	}{
		{"clayey soil", 37.7, 13.9, 47.44, "A-6(4)"},
		{"fine sand", 15, 0, 8, "A-3(0)"},
		{"stone fragments", 25, 5, 12, "A-1-a(0)"},
		{"silty gravel", 35, 8, 30, "A-2-4(0)"},
		{"clayey gravel", 38, 12, 30, "A-2-6(0)"},
		{"clayey sand", 30.2, 23.9, 11.18, "A-2-6(0)"},
		{"silty soil", 45, 8, 60, "A-5(5)"},
		{"moderately plastic clay", 55, 22, 60, "A-7-5(12)"},
		{"highly plastic clay", 50, 25, 60, "A-7-6(13)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clf, err := NewAASHTO(tt.liquidLimit, tt.plasticityIndex, tt.fines)
			require.NoError(t, err)
			assert.Equal(t, tt.want, clf.Classify().Symbol)
		})
	}
}

func TestAASHTOGroupIndex(t *testing.T) {
	clf, err := NewAASHTO(37.7, 13.9, 47.44)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, clf.GroupIndex(), 1e-9)

	// Negative raw index floors at zero.
	clf, err = NewAASHTO(25, 5, 12)
	require.NoError(t, err)
	assert.Zero(t, clf.GroupIndex())
}

func TestAASHTOOmitGroupIndex(t *testing.T) {
	clf, err := NewAASHTO(37.7, 13.9, 47.44)
	require.NoError(t, err)
	clf.OmitGroupIndex = true
	assert.Equal(t, "A-6", clf.Classify().Symbol)
}

func TestAASHTOValidation(t *testing.T) {
	_, err := NewAASHTO(30, 40, 50)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewAASHTO(30, 10, 150)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewAASHTO(-5, 0, 50)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAASHTODescription(t *testing.T) {
	clf, err := NewAASHTO(37.7, 13.9, 47.44)
	require.NoError(t, err)
	got := clf.Classify()
	assert.NotEmpty(t, got.Description)
}
