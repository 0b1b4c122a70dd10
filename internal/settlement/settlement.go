// Package settlement computes one-dimensional primary consolidation
// settlement of clay layers.
package settlement

import (
	"errors"
	"fmt"
	"math"

	"soilworks/internal/estimate"
	"soilworks/internal/mathx"
)

// ErrInvalidLayer is returned for non-physical layer parameters.
var ErrInvalidLayer = errors.New("settlement: invalid layer parameters")

// ConsolidationLayer describes one compressible clay layer under an
// applied stress increment.
type ConsolidationLayer struct {
	// Thickness of the layer (m).
	Thickness float64

	// VoidRatio is the initial in-situ void ratio e0.
	VoidRatio float64

	// CompressionIndex Cc. When zero it is estimated from LiquidLimit.
	CompressionIndex float64

	// LiquidLimit (%) used to estimate Cc when none is given.
	LiquidLimit float64

	// EffectiveStress is the initial vertical effective stress at the
	// layer midpoint (kPa).
	EffectiveStress float64

	// StressIncrement is the added vertical stress at the layer
	// midpoint (kPa).
	StressIncrement float64
}

func (l ConsolidationLayer) compressionIndex() float64 {
	if l.CompressionIndex > 0 {
		return l.CompressionIndex
	}
	return estimate.CompressionIndexSkempton(l.LiquidLimit)
}

func (l ConsolidationLayer) validate() error {
	if l.Thickness <= 0 {
		return fmt.Errorf("%w: thickness %v must be positive", ErrInvalidLayer, l.Thickness)
	}
	if l.VoidRatio <= 0 {
		return fmt.Errorf("%w: void ratio %v must be positive", ErrInvalidLayer, l.VoidRatio)
	}
	if l.EffectiveStress <= 0 {
		return fmt.Errorf("%w: effective stress %v must be positive", ErrInvalidLayer, l.EffectiveStress)
	}
	if l.StressIncrement < 0 {
		return fmt.Errorf("%w: stress increment %v is negative", ErrInvalidLayer, l.StressIncrement)
	}
	if l.compressionIndex() <= 0 {
		return fmt.Errorf("%w: compression index %v must be positive", ErrInvalidLayer, l.compressionIndex())
	}
	return nil
}

// PrimaryConsolidation returns the primary consolidation settlement (m)
// of the layer:
//
//	S = Cc H / (1 + e0) * log10((s0 + ds) / s0)
func PrimaryConsolidation(layer ConsolidationLayer) (float64, error) {
	if err := layer.validate(); err != nil {
		return 0, err
	}
	cc := layer.compressionIndex()
	ratio := (layer.EffectiveStress + layer.StressIncrement) / layer.EffectiveStress
	s := cc * layer.Thickness / (1.0 + layer.VoidRatio) * math.Log10(ratio)
	return mathx.Round(s, 4), nil
}
