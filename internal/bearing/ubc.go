// Package bearing computes the bearing capacity of shallow foundations:
// ultimate capacity by the Terzaghi (1943), Hansen (1961) and Vesic
// (1973) methods, and allowable capacity from corrected SPT N-values by
// the Bowles, Meyerhof and Terzaghi settlement-limited methods.
//
// All pressures are in kPa, unit weights in kN/m^3, angles in degrees and
// lengths in metres.
package bearing

import (
	"errors"
	"fmt"

	"soilworks/internal/foundation"
	"soilworks/internal/mathx"
)

// Capacities are reported to two decimal places.
const precision = 2

// ErrInvalidSoil is returned for non-physical soil strength parameters.
var ErrInvalidSoil = errors.New("bearing: invalid soil parameters")

// SoilProperties are the shear strength and weight parameters of the
// bearing stratum.
type SoilProperties struct {
	// FrictionAngle is the angle of internal friction (degrees).
	FrictionAngle float64

	// Cohesion of the soil (kPa).
	Cohesion float64

	// MoistUnitWeight of the soil above the water table (kN/m^3).
	MoistUnitWeight float64
}

func (p SoilProperties) validate() error {
	if p.FrictionAngle < 0 || p.FrictionAngle >= 90 {
		return fmt.Errorf("%w: friction angle %v outside [0, 90)", ErrInvalidSoil, p.FrictionAngle)
	}
	if p.Cohesion < 0 {
		return fmt.Errorf("%w: cohesion %v is negative", ErrInvalidSoil, p.Cohesion)
	}
	if p.MoistUnitWeight <= 0 {
		return fmt.Errorf("%w: unit weight %v must be positive", ErrInvalidSoil, p.MoistUnitWeight)
	}
	return nil
}

// ubc carries the state shared by the ultimate bearing capacity methods.
// Local shear failure, when requested, reduces the strength parameters up
// front: c' = 2/3 c, phi' = atan(2/3 tan(phi)).
type ubc struct {
	frictionAngle   float64
	cohesion        float64
	moistUnitWeight float64
	loadAngle       float64
	size            foundation.Size
}

func newUBC(props SoilProperties, size foundation.Size, loadAngle float64, localShear bool) (ubc, error) {
	if err := props.validate(); err != nil {
		return ubc{}, err
	}
	if loadAngle < 0 || loadAngle >= 90 {
		return ubc{}, fmt.Errorf("%w: load inclination %v outside [0, 90)", ErrInvalidSoil, loadAngle)
	}

	phi := props.FrictionAngle
	c := props.Cohesion
	if localShear {
		c = 2.0 / 3.0 * c
		phi = mathx.AtanDeg(2.0 / 3.0 * mathx.TanDeg(phi))
	}

	return ubc{
		frictionAngle:   phi,
		cohesion:        c,
		moistUnitWeight: props.MoistUnitWeight,
		loadAngle:       loadAngle,
		size:            size,
	}, nil
}

// surchargeWaterCorrection reduces the effective surcharge when the water
// table rises above the foundation base.
func (u ubc) surchargeWaterCorrection() float64 {
	if !u.size.HasWaterTable() {
		return 1.0
	}
	above := u.size.Depth - u.size.GroundWaterLevel
	if above < 0 {
		above = 0
	}
	corr := 1.0 - 0.5*above/u.size.Depth
	if corr > 1.0 {
		corr = 1.0
	}
	return corr
}

// embedmentWaterCorrection reduces the unit weight term when the water
// table sits within one footing width below the base.
func (u ubc) embedmentWaterCorrection() float64 {
	if !u.size.HasWaterTable() {
		return 1.0
	}
	below := u.size.GroundWaterLevel - u.size.Depth
	if below < 0 {
		below = 0
	}
	corr := 0.5 + 0.5*below/u.size.EffectiveWidth()
	if corr > 1.0 {
		corr = 1.0
	}
	return corr
}

// factorSet is the full set of bearing capacity, shape, depth and
// inclination factors for one method.
type factorSet struct {
	nc, nq, ngamma float64
	sc, sq, sgamma float64
	dc, dq, dgamma float64
	ic, iq, igamma float64
}

// ultimate evaluates the general bearing capacity equation
//
//	qu = c Nc sc dc ic + q Nq sq dq iq + 0.5 gamma B' Ngamma sg dg ig
//
// with the water corrections applied to the surcharge and embedment
// terms.
func (u ubc) ultimate(f factorSet) float64 {
	cohesion := u.cohesion * f.nc * f.sc * f.dc * f.ic

	surcharge := u.moistUnitWeight * u.size.Depth *
		f.nq * f.sq * f.dq * f.iq * u.surchargeWaterCorrection()

	embedment := 0.5 * u.moistUnitWeight * u.size.EffectiveWidth() *
		f.ngamma * f.sgamma * f.dgamma * f.igamma * u.embedmentWaterCorrection()

	return mathx.Round(cohesion+surcharge+embedment, precision)
}
