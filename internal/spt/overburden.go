package spt

import (
	"fmt"
	"math"

	"soilworks/internal/mathx"
)

// OverburdenCorrection normalizes a standardized SPT N-value to a
// reference effective overburden pressure. Implementations provide the
// correction factor Cn; the corrected value is capped at twice the input
// so shallow readings are not inflated unrealistically.
type OverburdenCorrection interface {
	// CorrectionFactor returns Cn for the given effective overburden
	// pressure (kPa).
	CorrectionFactor() float64

	// CorrectedN applies the correction to the standardized N-value.
	CorrectedN() float64
}

// opc carries the fields shared by all overburden pressure corrections.
type opc struct {
	// StdN is the N-value already standardized for field procedures.
	StdN float64

	// EOP is the effective overburden pressure at the test depth (kPa).
	EOP float64
}

func (o opc) cap(factor float64) float64 {
	corrected := factor * o.StdN
	return mathx.Round(math.Min(corrected, 2.0*o.StdN), precision)
}

func (o opc) validate() error {
	if o.StdN <= 0 {
		return fmt.Errorf("spt: standardized N-value must be positive, got %v", o.StdN)
	}
	if o.EOP <= 0 {
		return fmt.Errorf("spt: effective overburden pressure must be positive, got %v", o.EOP)
	}
	return nil
}

// GibbsHoltz is the overburden correction of Gibbs & Holtz (1957):
// Cn = 350 / (eop + 70), halved when above 2.
type GibbsHoltz struct{ opc }

// NewGibbsHoltz validates and returns the correction.
func NewGibbsHoltz(stdN, eop float64) (GibbsHoltz, error) {
	c := GibbsHoltz{opc{StdN: stdN, EOP: eop}}
	return c, c.validate()
}

func (c GibbsHoltz) CorrectionFactor() float64 {
	corr := 350.0 / (c.EOP + 70.0)
	if corr > 2.0 {
		corr /= 2.0
	}
	return corr
}

func (c GibbsHoltz) CorrectedN() float64 { return c.cap(c.CorrectionFactor()) }

// BazaraaPeck is the overburden correction of Bazaraa (1967) and Peck &
// Bazaraa (1969), with a branch change at 71.8 kPa.
type BazaraaPeck struct{ opc }

// stdPressure is the pressure at which the Bazaraa-Peck correction is
// unity (kPa).
const stdPressure = 71.8

// NewBazaraaPeck validates and returns the correction.
func NewBazaraaPeck(stdN, eop float64) (BazaraaPeck, error) {
	c := BazaraaPeck{opc{StdN: stdN, EOP: eop}}
	return c, c.validate()
}

func (c BazaraaPeck) CorrectionFactor() float64 {
	switch {
	case mathx.IsClose(c.EOP, stdPressure, 0.01):
		return 1.0
	case c.EOP < stdPressure:
		return 4.0 / (1.0 + 0.0418*c.EOP)
	default:
		return 4.0 / (3.25 + 0.0104*c.EOP)
	}
}

func (c BazaraaPeck) CorrectedN() float64 { return c.cap(c.CorrectionFactor()) }

// Peck is the overburden correction of Peck et al (1974):
// Cn = 0.77 log10(2000 / eop).
type Peck struct{ opc }

// NewPeck validates and returns the correction.
func NewPeck(stdN, eop float64) (Peck, error) {
	c := Peck{opc{StdN: stdN, EOP: eop}}
	return c, c.validate()
}

func (c Peck) CorrectionFactor() float64 {
	return 0.77 * math.Log10(2000.0/c.EOP)
}

func (c Peck) CorrectedN() float64 { return c.cap(c.CorrectionFactor()) }

// LiaoWhitman is the overburden correction of Liao & Whitman (1986):
// Cn = sqrt(100 / eop).
type LiaoWhitman struct{ opc }

// NewLiaoWhitman validates and returns the correction.
func NewLiaoWhitman(stdN, eop float64) (LiaoWhitman, error) {
	c := LiaoWhitman{opc{StdN: stdN, EOP: eop}}
	return c, c.validate()
}

func (c LiaoWhitman) CorrectionFactor() float64 {
	return math.Sqrt(100.0 / c.EOP)
}

func (c LiaoWhitman) CorrectedN() float64 { return c.cap(c.CorrectionFactor()) }

// Skempton is the overburden correction of Skempton (1986):
// Cn = 2 / (1 + 0.01044 eop).
type Skempton struct{ opc }

// NewSkempton validates and returns the correction.
func NewSkempton(stdN, eop float64) (Skempton, error) {
	c := Skempton{opc{StdN: stdN, EOP: eop}}
	return c, c.validate()
}

func (c Skempton) CorrectionFactor() float64 {
	return 2.0 / (1.0 + 0.01044*c.EOP)
}

func (c Skempton) CorrectedN() float64 { return c.cap(c.CorrectionFactor()) }

// NewOverburdenCorrection constructs a correction by method name, for the
// CLI and profile layers.
func NewOverburdenCorrection(method string, stdN, eop float64) (OverburdenCorrection, error) {
	switch method {
	case "gibbs_holtz", "gibbs-holtz":
		return NewGibbsHoltz(stdN, eop)
	case "bazaraa_peck", "bazaraa-peck":
		return NewBazaraaPeck(stdN, eop)
	case "peck":
		return NewPeck(stdN, eop)
	case "liao_whitman", "liao-whitman":
		return NewLiaoWhitman(stdN, eop)
	case "skempton":
		return NewSkempton(stdN, eop)
	default:
		return nil, fmt.Errorf("spt: unknown overburden correction method %q", method)
	}
}
