// Package mathx provides the small numeric helpers shared by the analysis
// packages: fixed-precision rounding, relative closeness, and trigonometry
// in degrees (geotechnical correlations are published in degrees, not
// radians).
package mathx

import "math"

// Round rounds x to the given number of decimal places.
func Round(x float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(x*pow) / pow
}

// IsClose reports whether a and b are equal within the relative tolerance
// relTol. Mirrors the behavior of a symmetric relative comparison with a
// tiny absolute floor so values near zero still compare sanely.
func IsClose(a, b, relTol float64) bool {
	const absTol = 1e-9
	diff := math.Abs(a - b)
	return diff <= math.Max(relTol*math.Max(math.Abs(a), math.Abs(b)), absTol)
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 { return deg * math.Pi / 180.0 }

// Rad2Deg converts radians to degrees.
func Rad2Deg(rad float64) float64 { return rad * 180.0 / math.Pi }

// TanDeg returns the tangent of an angle given in degrees.
func TanDeg(deg float64) float64 { return math.Tan(Deg2Rad(deg)) }

// SinDeg returns the sine of an angle given in degrees.
func SinDeg(deg float64) float64 { return math.Sin(Deg2Rad(deg)) }

// CosDeg returns the cosine of an angle given in degrees.
func CosDeg(deg float64) float64 { return math.Cos(Deg2Rad(deg)) }

// CotDeg returns the cotangent of an angle given in degrees.
func CotDeg(deg float64) float64 { return 1.0 / math.Tan(Deg2Rad(deg)) }

// AtanDeg returns the arc tangent of x in degrees.
func AtanDeg(x float64) float64 { return Rad2Deg(math.Atan(x)) }
