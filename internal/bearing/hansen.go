package bearing

import (
	"math"

	"soilworks/internal/foundation"
	"soilworks/internal/mathx"
)

// HansenNc is the Hansen (1961) bearing capacity factor Nc. At zero
// friction angle it takes the Prandtl value 5.14.
func HansenNc(frictionAngle float64) float64 {
	if mathx.IsClose(frictionAngle, 0, 0.01) {
		return 5.14
	}
	return mathx.Round(mathx.CotDeg(frictionAngle)*(hansenNq(frictionAngle)-1.0), precision)
}

// HansenNq is the Hansen (1961) bearing capacity factor Nq.
func HansenNq(frictionAngle float64) float64 {
	return mathx.Round(hansenNq(frictionAngle), precision)
}

func hansenNq(frictionAngle float64) float64 {
	return math.Pow(mathx.TanDeg(45.0+frictionAngle/2.0), 2) *
		math.Exp(math.Pi*mathx.TanDeg(frictionAngle))
}

// HansenNgamma is the Hansen (1961) bearing capacity factor Ngamma.
func HansenNgamma(frictionAngle float64) float64 {
	return mathx.Round(1.8*(hansenNq(frictionAngle)-1.0)*mathx.TanDeg(frictionAngle), precision)
}

// HansenUBC computes ultimate bearing capacity by Hansen's method:
//
//	qu = c Nc sc dc ic + q Nq sq dq iq
//	     + 0.5 gamma B Ngamma sg dg ig
type HansenUBC struct {
	ubc
}

// NewHansenUBC validates the inputs and returns the calculator.
// loadAngle is the inclination of the applied load from the vertical in
// degrees.
func NewHansenUBC(props SoilProperties, size foundation.Size, loadAngle float64, localShear bool) (*HansenUBC, error) {
	base, err := newUBC(props, size, loadAngle, localShear)
	if err != nil {
		return nil, err
	}
	return &HansenUBC{ubc: base}, nil
}

func (h *HansenUBC) Nc() float64     { return HansenNc(h.frictionAngle) }
func (h *HansenUBC) Nq() float64     { return HansenNq(h.frictionAngle) }
func (h *HansenUBC) Ngamma() float64 { return HansenNgamma(h.frictionAngle) }

// ShapeFactors returns sc, sq and sgamma for the footing.
func (h *HansenUBC) ShapeFactors() (sc, sq, sgamma float64) {
	width, length, shape := h.size.FootingParams()

	switch shape {
	case foundation.Strip:
		sc, sq, sgamma = 1.0, 1.0, 1.0
	case foundation.Rectangle:
		sc = 1.0 + 0.2*width/length
		sq = 1.0 + 0.2*width/length
		sgamma = 1.0 - 0.4*width/length
	case foundation.Square:
		sc, sq, sgamma = 1.3, 1.2, 0.8
	case foundation.Circle:
		sc, sq, sgamma = 1.3, 1.2, 0.6
	}
	return sc, sq, sgamma
}

// DepthFactors returns dc, dq and dgamma for the footing.
func (h *HansenUBC) DepthFactors() (dc, dq, dgamma float64) {
	k := 1.0 + 0.35*h.size.Depth/h.size.Width
	return k, k, 1.0
}

// InclinationFactors returns ic, iq and igamma for the applied load.
func (h *HansenUBC) InclinationFactors() (ic, iq, igamma float64) {
	ic = 1.0
	if h.loadAngle > 0 && h.cohesion > 0 {
		ic = 1.0 - mathx.SinDeg(h.loadAngle)/(2.0*h.cohesion*h.size.Width*h.size.Length)
	}
	iq = 1.0 - (1.5*mathx.SinDeg(h.loadAngle))/mathx.CosDeg(h.loadAngle)
	igamma = iq * iq
	return ic, iq, igamma
}

// BearingCapacity returns the ultimate bearing capacity (kPa).
func (h *HansenUBC) BearingCapacity() float64 {
	f := factorSet{nc: h.Nc(), nq: h.Nq(), ngamma: h.Ngamma()}
	f.sc, f.sq, f.sgamma = h.ShapeFactors()
	f.dc, f.dq, f.dgamma = h.DepthFactors()
	f.ic, f.iq, f.igamma = h.InclinationFactors()
	return h.ultimate(f)
}
