// Package spt implements standard penetration test (SPT) corrections and
// design N-value selection: energy standardization to N60, overburden
// pressure corrections, and the Terzaghi-Peck dilatancy correction for
// fine saturated sands.
package spt

import (
	"errors"
	"fmt"

	"soilworks/internal/mathx"
)

// Corrected N-values are reported to one decimal place.
const precision = 1

// ErrNoReadings is returned when a design N-value is requested for an
// empty set of readings.
var ErrNoReadings = errors.New("spt: no N-value readings")

// WeightedDesignN computes the weighted average of the N-values in the
// foundation influence zone, weighting the i-th reading from the base by
// 1/i^2 so the closest reading dominates.
func WeightedDesignN(readings []float64) (float64, error) {
	if len(readings) == 0 {
		return 0, ErrNoReadings
	}
	var sumTotal, sumWeights float64
	for i, n := range readings {
		w := 1.0 / float64((i+1)*(i+1))
		sumTotal += w * n
		sumWeights += w
	}
	return mathx.Round(sumTotal/sumWeights, precision), nil
}

// AverageDesignN is the arithmetic mean of the readings in the influence
// zone.
func AverageDesignN(readings []float64) (float64, error) {
	if len(readings) == 0 {
		return 0, ErrNoReadings
	}
	var sum float64
	for _, n := range readings {
		sum += n
	}
	return mathx.Round(sum/float64(len(readings)), precision), nil
}

// MinimumDesignN takes the lowest reading in the influence zone as the
// design value, per Terzaghi & Peck (1948).
func MinimumDesignN(readings []float64) (float64, error) {
	if len(readings) == 0 {
		return 0, ErrNoReadings
	}
	minN := readings[0]
	for _, n := range readings[1:] {
		if n < minN {
			minN = n
		}
	}
	return mathx.Round(minN, precision), nil
}

// HammerType identifies the SPT hammer, which fixes the energy efficiency
// of the blow.
type HammerType string

const (
	HammerAutomatic HammerType = "automatic"
	HammerDonut1    HammerType = "donut_1"
	HammerDonut2    HammerType = "donut_2"
	HammerSafety    HammerType = "safety"
	HammerDrop      HammerType = "drop"
	HammerPin       HammerType = "pin"
)

var hammerEfficiency = map[HammerType]float64{
	HammerAutomatic: 0.70,
	HammerDonut1:    0.60,
	HammerDonut2:    0.50,
	HammerSafety:    0.55,
	HammerDrop:      0.45,
	HammerPin:       0.45,
}

// SamplerType identifies the split-spoon sampler configuration.
type SamplerType string

const (
	SamplerStandard    SamplerType = "standard"
	SamplerNonStandard SamplerType = "non_standard"
)

var samplerCorrection = map[SamplerType]float64{
	SamplerStandard:    1.00,
	SamplerNonStandard: 1.20,
}

// EnergyCorrection standardizes a recorded field N-value for the driving
// energy actually delivered, producing N60 (or N at another target energy
// ratio):
//
//	N_energy = (Eh * Cb * Cs * Cr * N) / energy
type EnergyCorrection struct {
	// RecordedN is the raw field SPT N-value.
	RecordedN float64

	// EnergyRatio is the target energy ratio; 0.6 yields N60.
	EnergyRatio float64

	// BoreholeDiameter in mm.
	BoreholeDiameter float64

	// RodLength in metres.
	RodLength float64

	Hammer  HammerType
	Sampler SamplerType
}

// NewEnergyCorrection returns an energy correction with the customary
// defaults: 60% target energy, 65mm borehole, 3m rods, donut hammer and
// standard sampler.
func NewEnergyCorrection(recordedN float64) EnergyCorrection {
	return EnergyCorrection{
		RecordedN:        recordedN,
		EnergyRatio:      0.6,
		BoreholeDiameter: 65.0,
		RodLength:        3.0,
		Hammer:           HammerDonut1,
		Sampler:          SamplerStandard,
	}
}

// HammerEfficiency returns the energy efficiency Eh for the hammer type.
func (e EnergyCorrection) HammerEfficiency() (float64, error) {
	eff, ok := hammerEfficiency[e.Hammer]
	if !ok {
		return 0, fmt.Errorf("spt: unknown hammer type %q", e.Hammer)
	}
	return eff, nil
}

// BoreholeCorrection returns Cb from the borehole diameter band.
func (e EnergyCorrection) BoreholeCorrection() float64 {
	switch {
	case e.BoreholeDiameter <= 115:
		return 1.00
	case e.BoreholeDiameter <= 150:
		return 1.05
	default:
		return 1.15
	}
}

// SamplerCorrection returns Cs for the sampler configuration.
func (e EnergyCorrection) SamplerCorrection() (float64, error) {
	corr, ok := samplerCorrection[e.Sampler]
	if !ok {
		return 0, fmt.Errorf("spt: unknown sampler type %q", e.Sampler)
	}
	return corr, nil
}

// RodLengthCorrection returns Cr from the rod length band.
func (e EnergyCorrection) RodLengthCorrection() float64 {
	switch {
	case e.RodLength <= 4.0:
		return 0.75
	case e.RodLength <= 6.0:
		return 0.85
	case e.RodLength <= 10.0:
		return 0.95
	default:
		return 1.00
	}
}

// CorrectedN applies the full energy correction to the recorded N-value.
func (e EnergyCorrection) CorrectedN() (float64, error) {
	if e.RecordedN <= 0 {
		return 0, fmt.Errorf("spt: recorded N-value must be positive, got %v", e.RecordedN)
	}
	if e.EnergyRatio <= 0 {
		return 0, fmt.Errorf("spt: energy ratio must be positive, got %v", e.EnergyRatio)
	}
	eh, err := e.HammerEfficiency()
	if err != nil {
		return 0, err
	}
	cs, err := e.SamplerCorrection()
	if err != nil {
		return 0, err
	}
	corr := eh * e.BoreholeCorrection() * cs * e.RodLengthCorrection() / e.EnergyRatio
	return mathx.Round(corr*e.RecordedN, precision), nil
}

// DilatancyCorrection applies the Terzaghi & Peck (1948) correction for
// dense fine saturated sands. Overburden correction, where used, is
// applied before this one.
func DilatancyCorrection(stdN float64) float64 {
	if stdN <= 15.0 {
		return mathx.Round(stdN, precision)
	}
	return mathx.Round(15.0+0.5*(stdN-15.0), precision)
}
