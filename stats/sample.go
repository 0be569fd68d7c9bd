// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrSampleSize is returned by operations that require at
	// least one observation.
	ErrSampleSize = errors.New("sample is too small")

	// ErrDecayRate is returned for a negative or non-finite decay
	// rate.
	ErrDecayRate = errors.New("decay rate must be finite and non-negative")
)

// Sample is a collection of possibly weighted data points.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Weights[i] is the weight of sample Xs[i]. If Weights is
	// nil, all Xs have weight 1. Weights must have the same
	// length of Xs and all values must be non-negative.
	Weights []float64
}

// Bounds returns the minimum and maximum values of the Sample.
//
// If the Sample is empty, Bounds returns NaN, NaN.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	return floats.Min(s.Xs), floats.Max(s.Xs)
}

// Sum returns the (possibly weighted) sum of the Sample.
func (s Sample) Sum() float64 {
	if s.Weights == nil {
		return floats.Sum(s.Xs)
	}
	return floats.Dot(s.Xs, s.Weights)
}

// Weight returns the total weight of the Sample.
func (s Sample) Weight() float64 {
	if s.Weights == nil {
		return float64(len(s.Xs))
	}
	return floats.Sum(s.Weights)
}

// Mean returns the arithmetic mean of the Sample.
//
// If the Sample is empty, Mean returns NaN.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.Mean(s.Xs, s.Weights)
}

// Variance returns the population variance of the Sample,
//
//	Σ w(x - mean)² / Σ w,
//
// which is not Bessel-corrected.
//
// If the Sample is empty, Variance returns NaN.
func (s Sample) Variance() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.PopVariance(s.Xs, s.Weights)
}

// StdDev returns the population standard deviation of the Sample.
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Finite returns a copy of s without the values that are infinite
// or NaN. The order of the remaining values and their weights is
// preserved.
func (s Sample) Finite() Sample {
	out := Sample{Xs: make([]float64, 0, len(s.Xs))}
	if s.Weights != nil {
		out.Weights = make([]float64, 0, len(s.Weights))
	}
	for i, x := range s.Xs {
		if math.IsInf(x, 0) || math.IsNaN(x) {
			continue
		}
		out.Xs = append(out.Xs, x)
		if s.Weights != nil {
			out.Weights = append(out.Weights, s.Weights[i])
		}
	}
	return out
}

// Finite returns the finite values of xs in order.
func Finite(xs []float64) []float64 {
	return Sample{Xs: xs}.Finite().Xs
}
