// Package stats provides the shared statistical primitives used by the
// forecasting, inventory and pricing components: a standard normal CDF,
// the service-level safety factor, and moment helpers. All functions are
// pure and return documented fallbacks instead of failing on degenerate
// numeric input.
package stats

import "math"

// NormalCDF returns P(Z <= z) for a standard normal variable.
// Monotonic in z, with NormalCDF(0) = 0.5.
func NormalCDF(z float64) float64 {
	if math.IsNaN(z) {
		return 0.5
	}
	return 0.5 * (1 + math.Erf(z/math.Sqrt2))
}

// Inverse normal CDF rational approximation (Acklam). Relative error is
// below 1.15e-9 over the full range.
var (
	invNormA = [6]float64{
		-3.969683028665376e+01, 2.209460984245205e+02, -2.759285104469687e+02,
		1.383577518672690e+02, -3.066479806614716e+01, 2.506628277459239e+00,
	}
	invNormB = [5]float64{
		-5.447609879822406e+01, 1.615858368580409e+02, -1.556989798598866e+02,
		6.680131188771972e+01, -1.328068155288572e+01,
	}
	invNormC = [6]float64{
		-7.784894002430293e-03, -3.223964580411365e-01, -2.400758277161838e+00,
		-2.549732539343734e+00, 4.374664141464968e+00, 2.938163982698783e+00,
	}
	invNormD = [4]float64{
		7.784695709041462e-03, 3.224671290700398e-01,
		2.445134137142996e+00, 3.754408661907416e+00,
	}
)

const (
	invNormLow  = 0.02425
	invNormHigh = 1 - invNormLow
)

// invNormalCDF returns the z with P(Z <= z) = p for p in (0, 1).
func invNormalCDF(p float64) float64 {
	switch {
	case p < invNormLow:
		q := math.Sqrt(-2 * math.Log(p))
		return (((((invNormC[0]*q+invNormC[1])*q+invNormC[2])*q+invNormC[3])*q+invNormC[4])*q + invNormC[5]) /
			((((invNormD[0]*q+invNormD[1])*q+invNormD[2])*q+invNormD[3])*q + 1)
	case p <= invNormHigh:
		q := p - 0.5
		r := q * q
		return (((((invNormA[0]*r+invNormA[1])*r+invNormA[2])*r+invNormA[3])*r+invNormA[4])*r + invNormA[5]) * q /
			(((((invNormB[0]*r+invNormB[1])*r+invNormB[2])*r+invNormB[3])*r+invNormB[4])*r + 1)
	default:
		q := math.Sqrt(-2 * math.Log(1-p))
		return -(((((invNormC[0]*q+invNormC[1])*q+invNormC[2])*q+invNormC[3])*q+invNormC[4])*q + invNormC[5]) /
			((((invNormD[0]*q+invNormD[1])*q+invNormD[2])*q+invNormD[3])*q + 1)
	}
}

// ServiceLevelZ maps a target service level to the safety factor z such
// that NormalCDF(z) = level. Monotonically increasing; the input is
// clamped to [0.5, 0.9999] so safety stock never goes negative or
// unbounded. Non-finite or non-positive input returns 0.
func ServiceLevelZ(level float64) float64 {
	if math.IsNaN(level) || math.IsInf(level, 0) || level <= 0 {
		return 0
	}
	if level < 0.5 {
		level = 0.5
	}
	if level > 0.9999 {
		level = 0.9999
	}
	return invNormalCDF(level)
}

// Mean returns the arithmetic mean of values, 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev returns the population standard deviation of values, 0 for a
// slice with fewer than two elements.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := Mean(values)
	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))
	return math.Sqrt(variance)
}

// CoefficientOfVariation returns the population standard deviation
// divided by the mean, or 0 when the mean is 0.
func CoefficientOfVariation(values []float64) float64 {
	mean := Mean(values)
	if mean == 0 {
		return 0
	}
	return StdDev(values) / mean
}
