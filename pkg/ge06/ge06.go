// Package ge06 implements the two statistical primitives of the Final Acts
// of RRC-06 (GE06 Agreement) that the planning chain depends on: the
// log-frequency interpolation rule of Annex 2, A.2.1.6, and the Qi
// approximation of the inverse complementary normal distribution of
// A.2.1.12 (equations 26a-d).
package ge06

import (
	"fmt"
	"math"
)

// LogInterp interpolates (or extrapolates) a dB quantity between two
// frequency anchor points using the GE06 log-frequency rule:
//
//	v = vLow + (vHigh-vLow) * log10(f/fLow) / log10(fHigh/fLow)
//
// The caller selects the bracketing segment and the edge policy; passing a
// frequency outside [fLow, fHigh] extrapolates along the same segment.
func LogInterp(freqMHz, fLow, vLow, fHigh, vHigh float64) float64 {
	return vLow + (vHigh-vLow)*math.Log10(freqMHz/fLow)/math.Log10(fHigh/fLow)
}

// Constants of equation (26d).
const (
	qiC0 = 2.515517
	qiC1 = 0.802853
	qiC2 = 0.010328
	qiD1 = 1.432788
	qiD2 = 0.189269
	qiD3 = 0.001308
)

// Qi approximates the inverse complementary cumulative normal distribution
// function for x in [0.01, 0.99]. Outside that interval the rational
// approximation is not valid and an error is returned.
func Qi(x float64) (float64, error) {
	if !(x >= 0.01 && x <= 0.99) {
		return 0, fmt.Errorf("Qi(x) is defined only for 0.01 <= x <= 0.99; got x=%g", x)
	}
	if x <= 0.5 {
		return qiT(x) - qiXi(x), nil // (26a)
	}
	return -(qiT(1-x) - qiXi(1-x)), nil // (26b)
}

// qiT is T(z) = sqrt(-2 ln z), equation (26c).
func qiT(z float64) float64 {
	return math.Sqrt(-2 * math.Log(z))
}

// qiXi is the rational correction term of equation (26d).
func qiXi(z float64) float64 {
	t := qiT(z)
	num := qiC0 + qiC1*t + qiC2*t*t
	den := 1 + qiD1*t + qiD2*t*t + qiD3*t*t*t
	return num / den
}
