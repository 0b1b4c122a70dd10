package classify

import (
	"fmt"

	"soilworks/internal/soil"
)

// Prefixes and suffixes of USCS group symbols.
const (
	gravelSymbol     = "G"
	sandSymbol       = "S"
	siltSymbol       = "M"
	claySymbol       = "C"
	organicSymbol    = "O"
	wellGradedSymbol = "W"
	poorGradedSymbol = "P"
	lowPlasticity    = "L"
	highPlasticity   = "H"
)

// USCS classifies a soil under the Unified Soil Classification System
// from its Atterberg limits and particle size distribution.
type USCS struct {
	limits  soil.AtterbergLimits
	psd     soil.PSD
	organic bool
}

// NewUSCS returns a USCS classifier for the given sample properties.
func NewUSCS(limits soil.AtterbergLimits, psd soil.PSD, organic bool) *USCS {
	return &USCS{limits: limits, psd: psd, organic: organic}
}

// ClassifySample is a convenience wrapper classifying a soil.Sample.
func ClassifySample(s soil.Sample) (Classification, error) {
	return NewUSCS(s.Limits, s.PSD, s.Organic).Classify()
}

// Classify returns the USCS group for the sample. Samples with between 5%
// and 12% fines, or coarse samples without gradation-curve diameters,
// yield dual or alternative symbols (e.g. "GW-GM", "GW or GP").
func (c *USCS) Classify() (Classification, error) {
	if c.psd.Fines >= 50 {
		return c.fineGrained(), nil
	}
	return c.coarseGrained()
}

// fineGrained classifies silts and clays from the plasticity chart.
func (c *USCS) fineGrained() Classification {
	if c.limits.LiquidLimit >= 50 {
		// High plasticity.
		if c.limits.AboveALine() {
			return symbolOf(claySymbol + highPlasticity)
		}
		if c.organic {
			return symbolOf(organicSymbol + highPlasticity)
		}
		return symbolOf(siltSymbol + highPlasticity)
	}

	// Low plasticity.
	switch {
	case c.limits.AboveALine() && c.limits.PlasticityIndex() > 7:
		return symbolOf(claySymbol + lowPlasticity)
	case c.limits.AboveALine() && c.limits.InHatchedZone():
		return symbolOf("ML-CL")
	case c.organic:
		return symbolOf(organicSymbol + lowPlasticity)
	default:
		return symbolOf(siltSymbol + lowPlasticity)
	}
}

// coarseGrained classifies gravels and sands.
func (c *USCS) coarseGrained() (Classification, error) {
	prefix := sandSymbol
	if c.psd.GravelDominated() {
		prefix = gravelSymbol
	}

	switch {
	case c.psd.Fines > 12:
		return c.coarseWithFines(prefix), nil
	case c.psd.Fines < 5:
		return c.cleanCoarse(prefix)
	default:
		return c.borderlineCoarse(prefix)
	}
}

// coarseWithFines handles samples with more than 12% fines, where the
// fines govern and the plasticity chart picks the suffix.
func (c *USCS) coarseWithFines(prefix string) Classification {
	switch {
	case c.limits.AboveALine() && c.limits.PlasticityIndex() > 7:
		return symbolOf(prefix + claySymbol)
	case c.limits.AboveALine() && c.limits.InHatchedZone():
		return symbolOf(fmt.Sprintf("%[1]sM-%[1]sC", prefix))
	default:
		return symbolOf(prefix + siltSymbol)
	}
}

// cleanCoarse handles samples with less than 5% fines, classified purely
// on gradation. Without gradation diameters both candidates are reported.
func (c *USCS) cleanCoarse(prefix string) (Classification, error) {
	if !c.psd.HasSizes() {
		symbol := fmt.Sprintf("%[1]sW or %[1]sP", prefix)
		return Classification{Symbol: symbol}, nil
	}
	wellGraded, err := c.psd.WellGraded()
	if err != nil {
		return Classification{}, err
	}
	if wellGraded {
		return symbolOf(prefix + wellGradedSymbol), nil
	}
	return symbolOf(prefix + poorGradedSymbol), nil
}

// borderlineCoarse handles the 5-12% fines band, which always gets a dual
// symbol combining gradation and fines character.
func (c *USCS) borderlineCoarse(prefix string) (Classification, error) {
	fines := siltSymbol
	if c.limits.AboveALine() && c.limits.PlasticityIndex() > 7 {
		fines = claySymbol
	}

	if !c.psd.HasSizes() {
		symbol := fmt.Sprintf("%[1]sW-%[1]s%[2]s or %[1]sP-%[1]s%[2]s", prefix, fines)
		return Classification{Symbol: symbol}, nil
	}

	wellGraded, err := c.psd.WellGraded()
	if err != nil {
		return Classification{}, err
	}
	grade := poorGradedSymbol
	if wellGraded {
		grade = wellGradedSymbol
	}
	return symbolOf(fmt.Sprintf("%[1]s%[2]s-%[1]s%[3]s", prefix, grade, fines)), nil
}

func symbolOf(symbol string) Classification {
	return Classification{Symbol: symbol, Description: describe(symbol)}
}
