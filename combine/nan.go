// SPDX-License-Identifier: MIT
package combine

import "math"

// NaN-skipping reducers (spec §4.5): coordinate-free, simple for the empty
// and single-frame fast paths, each parameterized only by the value
// returned when every sample is NaN.
//
// Per spec §9 "Fixed-arity explosion", 1-frame and 2-frame cases are
// hand-specialized to avoid touching the general loop's running-min/max
// state machine for the overwhelmingly common small-N case; 3 and beyond
// share one generic implementation. AverageNotNaN has no specialized
// branches and runs its single loop for every arity. Callers needing allocation-free
// dispatch for larger fixed arities should pass a stack-backed slice — the
// reducers below never retain or reslice their samples argument.

// FirstNotNaN returns the first non-NaN sample, or Default if all are NaN.
type FirstNotNaN struct{ Default float64 }

func (r FirstNotNaN) Get(_ []float64, samples []float64) float64 {
	switch len(samples) {
	case 0:
		return r.Default
	case 1:
		if !math.IsNaN(samples[0]) {
			return samples[0]
		}

		return r.Default
	case 2:
		if !math.IsNaN(samples[0]) {
			return samples[0]
		}
		if !math.IsNaN(samples[1]) {
			return samples[1]
		}

		return r.Default
	default:
		for _, v := range samples {
			if !math.IsNaN(v) {
				return v
			}
		}

		return r.Default
	}
}

func (FirstNotNaN) SimpleForEmptySpace() bool  { return true }
func (FirstNotNaN) SimpleForSingleFrame() bool { return true }
func (FirstNotNaN) CoordinateFree() bool       { return true }
func (r FirstNotNaN) OutsideValue() float64    { return r.Default }

// LastNotNaN returns the last non-NaN sample, or Default if all are NaN.
type LastNotNaN struct{ Default float64 }

func (r LastNotNaN) Get(_ []float64, samples []float64) float64 {
	switch len(samples) {
	case 0:
		return r.Default
	case 1:
		if !math.IsNaN(samples[0]) {
			return samples[0]
		}

		return r.Default
	case 2:
		if !math.IsNaN(samples[1]) {
			return samples[1]
		}
		if !math.IsNaN(samples[0]) {
			return samples[0]
		}

		return r.Default
	default:
		result := r.Default
		for _, v := range samples {
			if !math.IsNaN(v) {
				result = v
			}
		}

		return result
	}
}

func (LastNotNaN) SimpleForEmptySpace() bool  { return true }
func (LastNotNaN) SimpleForSingleFrame() bool { return true }
func (LastNotNaN) CoordinateFree() bool       { return true }
func (r LastNotNaN) OutsideValue() float64    { return r.Default }

// MinNotNaN returns the smallest non-NaN sample, or Default if all are NaN.
type MinNotNaN struct{ Default float64 }

func (r MinNotNaN) Get(_ []float64, samples []float64) float64 {
	switch len(samples) {
	case 0:
		return r.Default
	case 1:
		if !math.IsNaN(samples[0]) {
			return samples[0]
		}

		return r.Default
	case 2:
		return min2NotNaN(samples[0], samples[1], r.Default)
	default:
		found := false
		best := math.Inf(1)
		for _, v := range samples {
			if math.IsNaN(v) {
				continue
			}
			found = true
			if v < best {
				best = v
			}
		}
		if !found {
			return r.Default
		}

		return best
	}
}

func (MinNotNaN) SimpleForEmptySpace() bool  { return true }
func (MinNotNaN) SimpleForSingleFrame() bool { return true }
func (MinNotNaN) CoordinateFree() bool       { return true }
func (r MinNotNaN) OutsideValue() float64    { return r.Default }

func min2NotNaN(a, b, def float64) float64 {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return def
	case aNaN:
		return b
	case bNaN:
		return a
	case a < b:
		return a
	default:
		return b
	}
}

// MaxNotNaN returns the largest non-NaN sample, or Default if all are NaN.
type MaxNotNaN struct{ Default float64 }

func (r MaxNotNaN) Get(_ []float64, samples []float64) float64 {
	switch len(samples) {
	case 0:
		return r.Default
	case 1:
		if !math.IsNaN(samples[0]) {
			return samples[0]
		}

		return r.Default
	case 2:
		return max2NotNaN(samples[0], samples[1], r.Default)
	default:
		found := false
		best := math.Inf(-1)
		for _, v := range samples {
			if math.IsNaN(v) {
				continue
			}
			found = true
			if v > best {
				best = v
			}
		}
		if !found {
			return r.Default
		}

		return best
	}
}

func (MaxNotNaN) SimpleForEmptySpace() bool  { return true }
func (MaxNotNaN) SimpleForSingleFrame() bool { return true }
func (MaxNotNaN) CoordinateFree() bool       { return true }
func (r MaxNotNaN) OutsideValue() float64    { return r.Default }

func max2NotNaN(a, b, def float64) float64 {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return def
	case aNaN:
		return b
	case bNaN:
		return a
	case a > b:
		return a
	default:
		return b
	}
}

// AverageNotNaN returns the arithmetic mean of the non-NaN samples, or
// Default if all are NaN. A single non-NaN value averages to itself
// (spec §8 property 6).
type AverageNotNaN struct{ Default float64 }

func (r AverageNotNaN) Get(_ []float64, samples []float64) float64 {
	sum := 0.0
	n := 0
	for _, v := range samples {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return r.Default
	}

	return sum / float64(n)
}

func (AverageNotNaN) SimpleForEmptySpace() bool  { return true }
func (AverageNotNaN) SimpleForSingleFrame() bool { return true }
func (AverageNotNaN) CoordinateFree() bool       { return true }
func (r AverageNotNaN) OutsideValue() float64    { return r.Default }
