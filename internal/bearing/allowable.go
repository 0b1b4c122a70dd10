package bearing

import (
	"errors"
	"fmt"

	"soilworks/internal/foundation"
	"soilworks/internal/mathx"
)

// MaxTolerableSettlement is the settlement limit (mm) the allowable
// bearing capacity correlations were calibrated for.
const MaxTolerableSettlement = 25.4

// ErrSettlement is returned when the tolerable settlement exceeds the
// calibration limit.
var ErrSettlement = errors.New("bearing: tolerable settlement out of range")

// FoundationType selects the allowable capacity correlation variant.
type FoundationType string

const (
	PadFoundation FoundationType = "pad"
	MatFoundation FoundationType = "mat"
)

// AllowableBearingCapacity is a settlement-limited bearing capacity
// estimate from corrected SPT N-values.
type AllowableBearingCapacity interface {
	BearingCapacity() float64
}

// abc carries the state shared by the allowable capacity correlations.
type abc struct {
	correctedN    float64
	tolSettlement float64
	fndType       FoundationType
	size          foundation.Size
}

func newABC(correctedN, tolSettlement float64, fndType FoundationType, size foundation.Size) (abc, error) {
	if correctedN < 0 {
		return abc{}, fmt.Errorf("%w: corrected N %v is negative", ErrInvalidSoil, correctedN)
	}
	if tolSettlement <= 0 || tolSettlement > MaxTolerableSettlement {
		return abc{}, fmt.Errorf("%w: %v mm outside (0, %v]", ErrSettlement, tolSettlement, MaxTolerableSettlement)
	}
	switch fndType {
	case PadFoundation, MatFoundation:
	default:
		return abc{}, fmt.Errorf("%w: unknown foundation type %q", ErrInvalidSoil, fndType)
	}
	return abc{
		correctedN:    correctedN,
		tolSettlement: tolSettlement,
		fndType:       fndType,
		size:          size,
	}, nil
}

func (a abc) settlementRatio() float64 {
	return a.tolSettlement / MaxTolerableSettlement
}

func (a abc) depthFactor() float64 {
	fd := 1.0 + 0.33*a.size.Depth/a.size.Width
	if fd > 1.33 {
		fd = 1.33
	}
	return fd
}

func (a abc) widthTerm() float64 {
	b := a.size.Width
	t := (3.28*b + 1.0) / (3.28 * b)
	return t * t
}

// BowlesABC is the Bowles (1997) allowable bearing capacity correlation.
type BowlesABC struct {
	abc
}

// NewBowlesABC validates the inputs and returns the calculator.
func NewBowlesABC(correctedN, tolSettlement float64, fndType FoundationType, size foundation.Size) (*BowlesABC, error) {
	base, err := newABC(correctedN, tolSettlement, fndType, size)
	if err != nil {
		return nil, err
	}
	return &BowlesABC{abc: base}, nil
}

// BearingCapacity returns the allowable bearing capacity (kPa).
func (b *BowlesABC) BearingCapacity() float64 {
	var q float64
	switch {
	case b.fndType == MatFoundation:
		q = 11.98 * b.correctedN * b.depthFactor() * b.settlementRatio()
	case b.size.Width <= 1.2:
		q = 19.16 * b.correctedN * b.depthFactor() * b.settlementRatio()
	default:
		q = 11.98 * b.correctedN * b.widthTerm() * b.depthFactor() * b.settlementRatio()
	}
	return mathx.Round(q, precision)
}

// MeyerhofABC is the Meyerhof (1956) allowable bearing capacity
// correlation.
type MeyerhofABC struct {
	abc
}

// NewMeyerhofABC validates the inputs and returns the calculator.
func NewMeyerhofABC(correctedN, tolSettlement float64, fndType FoundationType, size foundation.Size) (*MeyerhofABC, error) {
	base, err := newABC(correctedN, tolSettlement, fndType, size)
	if err != nil {
		return nil, err
	}
	return &MeyerhofABC{abc: base}, nil
}

// BearingCapacity returns the allowable bearing capacity (kPa).
func (m *MeyerhofABC) BearingCapacity() float64 {
	var q float64
	switch {
	case m.fndType == MatFoundation:
		q = 8.0 * m.correctedN * m.depthFactor() * m.settlementRatio()
	case m.size.Width <= 1.2:
		q = 12.0 * m.correctedN * m.depthFactor() * m.settlementRatio()
	default:
		q = 8.0 * m.correctedN * m.widthTerm() * m.depthFactor() * m.settlementRatio()
	}
	return mathx.Round(q, precision)
}

// TerzaghiABC is the Terzaghi and Peck (1948) allowable bearing capacity
// correlation with an explicit water table correction.
type TerzaghiABC struct {
	abc
}

// NewTerzaghiABC validates the inputs and returns the calculator.
func NewTerzaghiABC(correctedN, tolSettlement float64, fndType FoundationType, size foundation.Size) (*TerzaghiABC, error) {
	base, err := newABC(correctedN, tolSettlement, fndType, size)
	if err != nil {
		return nil, err
	}
	return &TerzaghiABC{abc: base}, nil
}

// waterCorrection is the divisor cw, between 1 and 2, that discounts the
// capacity for a shallow water table.
func (t *TerzaghiABC) waterCorrection() float64 {
	if !t.size.HasWaterTable() {
		return 1.0
	}
	var cw float64
	if t.size.GroundWaterLevel <= t.size.Depth {
		cw = 2.0 - t.size.Depth/(2.0*t.size.Width)
	} else {
		cw = 2.0 - t.size.GroundWaterLevel/(2.0*t.size.Width)
	}
	if cw < 1.0 {
		cw = 1.0
	}
	if cw > 2.0 {
		cw = 2.0
	}
	return cw
}

// BearingCapacity returns the allowable bearing capacity (kPa).
func (t *TerzaghiABC) BearingCapacity() float64 {
	cw := t.waterCorrection()
	var q float64
	switch {
	case t.fndType == MatFoundation:
		q = 8.0 * t.correctedN * t.settlementRatio() / (cw * t.depthFactor())
	case t.size.Width <= 1.2:
		q = 12.0 * t.correctedN * t.settlementRatio() / (cw * t.depthFactor())
	default:
		q = 8.0 * t.correctedN * t.widthTerm() * t.settlementRatio() / (cw * t.depthFactor())
	}
	return mathx.Round(q, precision)
}

// NewAllowable builds the named allowable bearing capacity calculator.
// Recognised methods are "bowles", "meyerhof" and "terzaghi".
func NewAllowable(method string, correctedN, tolSettlement float64, fndType FoundationType, size foundation.Size) (AllowableBearingCapacity, error) {
	switch method {
	case "bowles":
		return NewBowlesABC(correctedN, tolSettlement, fndType, size)
	case "meyerhof":
		return NewMeyerhofABC(correctedN, tolSettlement, fndType, size)
	case "terzaghi":
		return NewTerzaghiABC(correctedN, tolSettlement, fndType, size)
	default:
		return nil, fmt.Errorf("%w: unknown allowable capacity method %q", ErrInvalidSoil, method)
	}
}
