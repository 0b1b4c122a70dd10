// Package soil defines the index properties of a soil sample: Atterberg
// limits and particle size distribution. These are the raw inputs every
// classification and correlation downstream consumes.
package soil

import (
	"errors"
	"fmt"

	"soilworks/internal/mathx"
)

// ErrInvalidLimits is returned when Atterberg limits are inconsistent,
// for example a plastic limit greater than the liquid limit.
var ErrInvalidLimits = errors.New("soil: invalid atterberg limits")

// AtterbergLimits holds the water contents (in percent) at which a
// fine-grained soil changes consistency.
type AtterbergLimits struct {
	// LiquidLimit is the water content beyond which the soil flows under
	// its own weight.
	LiquidLimit float64

	// PlasticLimit is the water content at which plastic deformation can
	// be initiated; also the minimum water content at which the soil can
	// be rolled into a 3mm thread without crumbling.
	PlasticLimit float64
}

// NewAtterbergLimits validates and returns the limits. Both limits must be
// non-negative and the plastic limit may not exceed the liquid limit.
func NewAtterbergLimits(liquidLimit, plasticLimit float64) (AtterbergLimits, error) {
	if liquidLimit < 0 || plasticLimit < 0 {
		return AtterbergLimits{}, fmt.Errorf("%w: limits must be non-negative (LL=%v, PL=%v)",
			ErrInvalidLimits, liquidLimit, plasticLimit)
	}
	if plasticLimit > liquidLimit {
		return AtterbergLimits{}, fmt.Errorf("%w: plastic limit %v exceeds liquid limit %v",
			ErrInvalidLimits, plasticLimit, liquidLimit)
	}
	return AtterbergLimits{LiquidLimit: liquidLimit, PlasticLimit: plasticLimit}, nil
}

// PlasticityIndex is the range of water content over which the soil
// remains plastic (LL - PL).
func (a AtterbergLimits) PlasticityIndex() float64 {
	return a.LiquidLimit - a.PlasticLimit
}

// ALine returns the plasticity-chart A-line value at the sample's liquid
// limit. Soils plotting above the A-line are clay-like, below are
// silt-like.
func (a AtterbergLimits) ALine() float64 {
	return 0.73 * (a.LiquidLimit - 20.0)
}

// AboveALine reports whether the sample plots above the A-line on the
// plasticity chart.
func (a AtterbergLimits) AboveALine() bool {
	return a.PlasticityIndex() > a.ALine()
}

// InHatchedZone reports whether the sample plots in the hatched region of
// the plasticity chart (4 <= PI <= 7) where classification is ambiguous
// and a dual symbol is reported.
func (a AtterbergLimits) InHatchedZone() bool {
	pi := a.PlasticityIndex()
	return pi >= 4.0 && pi <= 7.0
}

// LiquidityIndex locates the natural water content nmc relative to the
// plastic range: (nmc - PL) / PI.
func (a AtterbergLimits) LiquidityIndex(nmc float64) (float64, error) {
	pi := a.PlasticityIndex()
	if pi == 0 {
		return 0, fmt.Errorf("%w: zero plasticity index", ErrInvalidLimits)
	}
	return mathx.Round((nmc-a.PlasticLimit)/pi*100.0, 2), nil
}

// ConsistencyIndex is the complement of the liquidity index:
// (LL - nmc) / PI.
func (a AtterbergLimits) ConsistencyIndex(nmc float64) (float64, error) {
	pi := a.PlasticityIndex()
	if pi == 0 {
		return 0, fmt.Errorf("%w: zero plasticity index", ErrInvalidLimits)
	}
	return mathx.Round((a.LiquidLimit-nmc)/pi*100.0, 2), nil
}
