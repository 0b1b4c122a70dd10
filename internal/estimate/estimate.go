// Package estimate provides empirical correlations that infer soil
// parameters from index properties and SPT blow counts: unit weights,
// compression index, internal friction angle, undrained shear strength,
// elastic modulus and minimum foundation depth.
package estimate

import (
	"errors"
	"fmt"
	"math"

	"soilworks/internal/mathx"
)

// ErrOutOfRange is returned when a correlation input falls outside its
// calibrated range.
var ErrOutOfRange = errors.New("estimate: parameter out of range")

// UnitWeights are the bulk unit weight estimates (kN/m^3) from a single
// corrected SPT blow count.
type UnitWeights struct {
	Moist     float64
	Saturated float64
	Submerged float64
}

// UnitWeightsFromSPT estimates moist, saturated and submerged unit
// weights from the energy-corrected blow count N60.
func UnitWeightsFromSPT(n60 float64) (UnitWeights, error) {
	if n60 < 0 {
		return UnitWeights{}, fmt.Errorf("%w: N60 %v is negative", ErrOutOfRange, n60)
	}
	return UnitWeights{
		Moist:     mathx.Round(16.0+0.1*n60, 2),
		Saturated: mathx.Round(16.8+0.15*n60, 2),
		Submerged: mathx.Round(8.8+0.01*n60, 2),
	}, nil
}

// CompressionIndexSkempton estimates Cc from the liquid limit for
// remoulded clays (Skempton, 1944).
func CompressionIndexSkempton(liquidLimit float64) float64 {
	return mathx.Round(0.007*(liquidLimit-10.0), 3)
}

// CompressionIndexTerzaghi estimates Cc from the liquid limit for
// normally consolidated clays (Terzaghi and Peck, 1967).
func CompressionIndexTerzaghi(liquidLimit float64) float64 {
	return mathx.Round(0.009*(liquidLimit-10.0), 3)
}

// CompressionIndexHough estimates Cc from the in-situ void ratio
// (Hough, 1957).
func CompressionIndexHough(voidRatio float64) float64 {
	return mathx.Round(0.29*(voidRatio-0.27), 3)
}

// FrictionAngleWolff estimates the internal friction angle (degrees) of
// cohesionless soil from N60 (Wolff, 1989).
func FrictionAngleWolff(n60 float64) float64 {
	return mathx.Round(27.1+0.3*n60-0.00054*n60*n60, 3)
}

// FrictionAngleKulhawyMayne estimates the internal friction angle
// (degrees) from N60 and the effective overburden pressure, both
// normalised by atmospheric pressure (Kulhawy and Mayne, 1990).
func FrictionAngleKulhawyMayne(n60, eop, atmPressure float64) (float64, error) {
	if atmPressure <= 0 {
		return 0, fmt.Errorf("%w: atmospheric pressure %v must be positive", ErrOutOfRange, atmPressure)
	}
	if eop < 0 {
		return 0, fmt.Errorf("%w: overburden pressure %v is negative", ErrOutOfRange, eop)
	}
	ratio := n60 / (12.2 + 20.3*eop/atmPressure)
	return mathx.Round(mathx.AtanDeg(math.Pow(ratio, 0.34)), 3), nil
}

// UndrainedStrengthStroud estimates the undrained shear strength (kPa)
// as k * N60 (Stroud, 1974). k must lie within [3.5, 6.5].
func UndrainedStrengthStroud(n60, k float64) (float64, error) {
	if k < 3.5 || k > 6.5 {
		return 0, fmt.Errorf("%w: k %v outside [3.5, 6.5]", ErrOutOfRange, k)
	}
	return mathx.Round(k*n60, 2), nil
}

// UndrainedStrengthSkempton estimates the undrained shear strength (kPa)
// from the effective overburden pressure and plasticity index
// (Skempton, 1957).
func UndrainedStrengthSkempton(eop, plasticityIndex float64) float64 {
	return mathx.Round(eop*(0.11+0.0037*plasticityIndex), 2)
}

// ElasticModulusBowles estimates the soil elastic modulus (kPa) from N60
// (Bowles, 1997).
func ElasticModulusBowles(n60 float64) float64 {
	return mathx.Round(320.0*(n60+15.0), 2)
}

// FoundationDepthRankine is the Rankine minimum embedment depth (m) for
// a footing carrying the allowable pressure qa.
func FoundationDepthRankine(allowablePressure, unitWeight, frictionAngle float64) (float64, error) {
	if unitWeight <= 0 {
		return 0, fmt.Errorf("%w: unit weight %v must be positive", ErrOutOfRange, unitWeight)
	}
	k := (1.0 - mathx.SinDeg(frictionAngle)) / (1.0 + mathx.SinDeg(frictionAngle))
	return mathx.Round((allowablePressure/unitWeight)*k*k, 1), nil
}
