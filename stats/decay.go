// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// DefaultDecayRate is the decay rate used for recency-weighted
// summaries of game logs.
const DefaultDecayRate = 0.05

// DecayWeights returns n exponentially decaying weights,
//
//	w[i] = exp(-rate·i),
//
// indexed by recency rank: index 0 is the most recent observation and
// has weight 1. With rate 0 all weights are 1.
func DecayWeights(n int, rate float64) []float64 {
	ws := make([]float64, n)
	for i := range ws {
		ws[i] = math.Exp(-rate * float64(i))
	}
	return ws
}

// Decayed returns xs, which must be ordered most recent first,
// weighted by DecayWeights(len(xs), rate).
func Decayed(xs []float64, rate float64) Sample {
	return Sample{Xs: xs, Weights: DecayWeights(len(xs), rate)}
}

// A Summary is the weighted mean and population standard deviation
// of a sample.
type Summary struct {
	Mean   float64
	StdDev float64
}

// Summarize returns the recency-weighted mean and standard deviation
// of xs, which must be ordered most recent first.
//
// Summarize fails with ErrSampleSize if xs is empty and with
// ErrDecayRate if rate is negative, infinite or NaN.
func Summarize(xs []float64, rate float64) (Summary, error) {
	if len(xs) == 0 {
		return Summary{}, ErrSampleSize
	}
	if !(rate >= 0) || math.IsInf(rate, 1) {
		return Summary{}, ErrDecayRate
	}
	s := Decayed(xs, rate)
	return Summary{Mean: s.Mean(), StdDev: s.StdDev()}, nil
}
