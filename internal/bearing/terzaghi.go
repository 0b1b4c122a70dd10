package bearing

import (
	"math"

	"soilworks/internal/foundation"
	"soilworks/internal/mathx"
)

// TerzaghiNc is the Terzaghi (1943) bearing capacity factor Nc. At zero
// friction angle it takes the classical value 5.7.
func TerzaghiNc(frictionAngle float64) float64 {
	if mathx.IsClose(frictionAngle, 0, 0.01) {
		return 5.7
	}
	return mathx.Round(mathx.CotDeg(frictionAngle)*(terzaghiNq(frictionAngle)-1.0), precision)
}

// TerzaghiNq is the Terzaghi (1943) bearing capacity factor Nq.
func TerzaghiNq(frictionAngle float64) float64 {
	return mathx.Round(terzaghiNq(frictionAngle), precision)
}

func terzaghiNq(frictionAngle float64) float64 {
	num := math.Exp((3.0*math.Pi/2.0 - mathx.Deg2Rad(frictionAngle)) * mathx.TanDeg(frictionAngle))
	den := 2.0 * math.Pow(mathx.CosDeg(45.0+frictionAngle/2.0), 2)
	return num / den
}

// TerzaghiNgamma is the Terzaghi (1943) bearing capacity factor Ngamma
// using the Meyerhof interpolation (Nq - 1) tan(1.4 phi).
func TerzaghiNgamma(frictionAngle float64) float64 {
	return mathx.Round((terzaghiNq(frictionAngle)-1.0)*mathx.TanDeg(1.4*frictionAngle), precision)
}

// TerzaghiUBC computes ultimate bearing capacity by Terzaghi's method.
// The footing shape selects the cohesion and embedment coefficients:
//
//	strip:     qu = c Nc + q Nq + 0.5 gamma B Ngamma
//	square:    qu = 1.3 c Nc + q Nq + 0.4 gamma B Ngamma
//	circle:    qu = 1.3 c Nc + q Nq + 0.3 gamma B Ngamma
//	rectangle: qu = (1 + 0.3 B/L) c Nc + q Nq
//	                 + (1 - 0.2 B/L) 0.5 gamma B Ngamma
type TerzaghiUBC struct {
	ubc
}

// NewTerzaghiUBC validates the inputs and returns the calculator.
// localShear applies the reduced strength parameters for local shear
// failure.
func NewTerzaghiUBC(props SoilProperties, size foundation.Size, localShear bool) (*TerzaghiUBC, error) {
	base, err := newUBC(props, size, 0, localShear)
	if err != nil {
		return nil, err
	}
	return &TerzaghiUBC{ubc: base}, nil
}

// Nc returns the cohesion bearing capacity factor for the (possibly
// local-shear reduced) friction angle.
func (t *TerzaghiUBC) Nc() float64 { return TerzaghiNc(t.frictionAngle) }

// Nq returns the surcharge bearing capacity factor.
func (t *TerzaghiUBC) Nq() float64 { return TerzaghiNq(t.frictionAngle) }

// Ngamma returns the unit weight bearing capacity factor.
func (t *TerzaghiUBC) Ngamma() float64 { return TerzaghiNgamma(t.frictionAngle) }

// BearingCapacity returns the ultimate bearing capacity (kPa).
func (t *TerzaghiUBC) BearingCapacity() float64 {
	width, length, shape := t.size.FootingParams()

	var cohCoef, embCoef float64
	switch shape {
	case foundation.Strip:
		cohCoef, embCoef = 1.0, 0.5
	case foundation.Square:
		cohCoef, embCoef = 1.3, 0.4
	case foundation.Circle:
		cohCoef, embCoef = 1.3, 0.3
	default: // rectangle
		cohCoef = 1.0 + 0.3*width/length
		embCoef = (1.0 - 0.2*width/length) / 2.0
	}

	cohesion := cohCoef * t.cohesion * t.Nc()
	surcharge := t.moistUnitWeight * t.size.Depth * t.Nq() * t.surchargeWaterCorrection()
	embedment := embCoef * t.moistUnitWeight * width * t.Ngamma() * t.embedmentWaterCorrection()

	return mathx.Round(cohesion+surcharge+embedment, precision)
}
