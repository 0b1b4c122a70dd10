package bearing

import (
	"math"

	"soilworks/internal/foundation"
	"soilworks/internal/mathx"
)

// VesicNc is the Vesic (1973) bearing capacity factor Nc, identical to
// Hansen's.
func VesicNc(frictionAngle float64) float64 { return HansenNc(frictionAngle) }

// VesicNq is the Vesic (1973) bearing capacity factor Nq, identical to
// Hansen's.
func VesicNq(frictionAngle float64) float64 { return HansenNq(frictionAngle) }

// VesicNgamma is the Vesic (1973) bearing capacity factor
// Ngamma = 2 (Nq + 1) tan(phi).
func VesicNgamma(frictionAngle float64) float64 {
	return mathx.Round(2.0*(hansenNq(frictionAngle)+1.0)*mathx.TanDeg(frictionAngle), precision)
}

// VesicUBC computes ultimate bearing capacity by Vesic's method with his
// shape, depth and inclination factors.
type VesicUBC struct {
	ubc
}

// NewVesicUBC validates the inputs and returns the calculator.
func NewVesicUBC(props SoilProperties, size foundation.Size, loadAngle float64, localShear bool) (*VesicUBC, error) {
	base, err := newUBC(props, size, loadAngle, localShear)
	if err != nil {
		return nil, err
	}
	return &VesicUBC{ubc: base}, nil
}

func (v *VesicUBC) Nc() float64     { return VesicNc(v.frictionAngle) }
func (v *VesicUBC) Nq() float64     { return VesicNq(v.frictionAngle) }
func (v *VesicUBC) Ngamma() float64 { return VesicNgamma(v.frictionAngle) }

// ShapeFactors returns sc, sq and sgamma for the footing.
func (v *VesicUBC) ShapeFactors() (sc, sq, sgamma float64) {
	width, length, shape := v.size.FootingParams()
	nq := v.Nq()
	nc := v.Nc()
	tanPhi := mathx.TanDeg(v.frictionAngle)

	switch shape {
	case foundation.Strip:
		sc, sq, sgamma = 1.0, 1.0, 1.0
	case foundation.Rectangle:
		sc = 1.0 + (width/length)*(nq/nc)
		sq = 1.0 + (width/length)*tanPhi
		sgamma = 1.0 - 0.4*width/length
	default: // square or circle
		sc = 1.0 + nq/nc
		sq = 1.0 + tanPhi
		sgamma = 0.6
	}
	return sc, sq, sgamma
}

// DepthFactors returns dc, dq and dgamma for the footing.
func (v *VesicUBC) DepthFactors() (dc, dq, dgamma float64) {
	ratio := v.size.Depth / v.size.Width
	dc = 1.0 + 0.4*ratio
	dq = 1.0 + 2.0*mathx.TanDeg(v.frictionAngle)*
		math.Pow(1.0-mathx.SinDeg(v.frictionAngle), 2)*ratio
	return dc, dq, 1.0
}

// InclinationFactors returns ic, iq and igamma for the applied load.
func (v *VesicUBC) InclinationFactors() (ic, iq, igamma float64) {
	ic = math.Pow(1.0-v.loadAngle/90.0, 2)
	iq = ic
	if mathx.IsClose(v.frictionAngle, 0, 0.01) {
		igamma = 1.0
	} else {
		igamma = math.Pow(1.0-v.loadAngle/v.frictionAngle, 2)
	}
	return ic, iq, igamma
}

// BearingCapacity returns the ultimate bearing capacity (kPa).
func (v *VesicUBC) BearingCapacity() float64 {
	f := factorSet{nc: v.Nc(), nq: v.Nq(), ngamma: v.Ngamma()}
	f.sc, f.sq, f.sgamma = v.ShapeFactors()
	f.dc, f.dq, f.dgamma = v.DepthFactors()
	f.ic, f.iq, f.igamma = v.InclinationFactors()
	return v.ultimate(f)
}
