package soil

import (
	"errors"
	"fmt"
	"math"

	"soilworks/internal/mathx"
)

// ErrInvalidPSD is returned when the particle size fractions do not add up
// or a gradation coefficient is requested without sieve diameters.
var ErrInvalidPSD = errors.New("soil: invalid particle size distribution")

// SizeDistribution holds the characteristic particle diameters (mm) read
// off the gradation curve at 10%, 30% and 60% passing.
type SizeDistribution struct {
	D10 float64
	D30 float64
	D60 float64
}

// CoeffOfUniformity is Cu = D60 / D10.
func (s SizeDistribution) CoeffOfUniformity() float64 {
	return mathx.Round(s.D60/s.D10, 2)
}

// CoeffOfCurvature is Cc = D30^2 / (D60 * D10).
func (s SizeDistribution) CoeffOfCurvature() float64 {
	return mathx.Round((s.D30*s.D30)/(s.D60*s.D10), 2)
}

// PSD is the particle size distribution of a sample, as percentages of
// fines (silt and clay), sand, and gravel. The optional Sizes carry the
// gradation-curve diameters needed for Cu and Cc.
type PSD struct {
	Fines  float64
	Sand   float64
	Gravel float64

	Sizes *SizeDistribution
}

// NewPSD validates that the three fractions sum to 100 (within 0.01) and
// are individually non-negative.
func NewPSD(fines, sand, gravel float64) (PSD, error) {
	if fines < 0 || sand < 0 || gravel < 0 {
		return PSD{}, fmt.Errorf("%w: fractions must be non-negative", ErrInvalidPSD)
	}
	if total := fines + sand + gravel; math.Abs(total-100.0) > 0.01 {
		return PSD{}, fmt.Errorf("%w: fractions sum to %.2f, expected 100", ErrInvalidPSD, total)
	}
	return PSD{Fines: fines, Sand: sand, Gravel: gravel}, nil
}

// GravelDominated reports whether gravel outweighs sand in the coarse
// fraction. Gravel-dominated samples classify with the G prefix, sand
// dominated with S.
func (p PSD) GravelDominated() bool {
	return p.Gravel > p.Sand
}

// HasSizes reports whether gradation-curve diameters are available, which
// decides whether a definite gradation symbol or a dual alternative is
// reported.
func (p PSD) HasSizes() bool {
	return p.Sizes != nil
}

// WellGraded applies the USCS gradation criterion for the dominant coarse
// fraction: gravels need Cu >= 4, sands Cu >= 6, both need 1 < Cc < 3.
func (p PSD) WellGraded() (bool, error) {
	if !p.HasSizes() {
		return false, fmt.Errorf("%w: gradation sizes required", ErrInvalidPSD)
	}
	cu := p.Sizes.CoeffOfUniformity()
	cc := p.Sizes.CoeffOfCurvature()
	if p.GravelDominated() {
		return cu >= 4.0 && cc > 1.0 && cc < 3.0, nil
	}
	return cu >= 6.0 && cc > 1.0 && cc < 3.0, nil
}

// Sample aggregates the index properties of one soil specimen.
type Sample struct {
	Name    string
	Limits  AtterbergLimits
	PSD     PSD
	Organic bool
}
